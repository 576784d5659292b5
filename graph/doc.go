// Package graph provides an immutable compressed-sparse-row (CSR) graph
// representation built once from coordinate input.
//
// A Graph owns two slices: nodes, an offsets array of length nNodes+1, and
// edges, a neighbor-id array of length nEdges. nodes[u]..nodes[u+1] bounds
// the slice of edges holding u's neighbors. Construction is a single
// counting-sort pass over the coordinate input (row indices ir and column
// pointers jc); after construction the graph is read-only, which is what
// lets both the serial and parallel breadth-first traversals in this
// module read it from many goroutines without synchronization.
package graph
