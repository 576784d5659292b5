package graph

// Graph is an immutable CSR adjacency representation. nodes has length
// NNodes()+1; nodes[u]..nodes[u+1] bounds the slice of edges holding u's
// neighbor ids. Both slices are read-only after New returns.
type Graph struct {
	nNodes int
	nEdges int
	nodes  []int
	edges  []int
}

// New builds a Graph from coordinate arrays ir (row indices, length nnz)
// and jc (column pointers, length n+1), with dimensions (m, n, nnz). It
// counts each row's in-degree, prefix-sums the counts into offsets, then
// scatters column indices into the edges array at those offsets — a
// single counting-sort pass, performed once.
//
// ir and jc are borrowed only for the duration of the call; New does not
// retain them. Returns ErrDimensionMismatch if jc's length isn't n+1, if
// jc[n] doesn't equal nnz, or if nnz exceeds ir's length — any of which
// would otherwise let the scatter loop below write past edges.
func New(ir, jc []int, m, n, nnz int) (*Graph, error) {
	if len(jc) != n+1 || jc[n] != nnz || nnz > len(ir) {
		return nil, ErrDimensionMismatch
	}

	nodes := make([]int, m+1)
	edges := make([]int, nnz)

	w := make([]int, m)
	for i := 0; i < jc[n]; i++ {
		w[ir[i]]++
	}

	tempnz := 0
	for i := 0; i < m; i++ {
		prev := w[i]
		w[i] = tempnz
		tempnz += prev
	}
	nodes[m] = tempnz
	copy(nodes[:m], w)

	for i := 0; i < n; i++ {
		for j := jc[i]; j < jc[i+1]; j++ {
			row := ir[j]
			edges[w[row]] = i
			w[row]++
		}
	}

	return &Graph{nNodes: m, nEdges: nnz, nodes: nodes, edges: edges}, nil
}

// NNodes returns the number of vertices.
func (g *Graph) NNodes() int {
	return g.nNodes
}

// NEdges returns the total number of directed edge entries.
func (g *Graph) NEdges() int {
	return g.nEdges
}

// Neighbors returns u's neighbor-id slice. The returned slice aliases the
// graph's internal edges array and must not be mutated.
func (g *Graph) Neighbors(u int) []int {
	return g.edges[g.nodes[u]:g.nodes[u+1]]
}

// Offset returns the start index into Edges() of u's neighbor slice; it
// is the same bound Neighbors uses, exposed for callers that want to walk
// nodes/edges directly (e.g. the parallel node processor) without an
// extra slice header per call.
func (g *Graph) Offset(u int) int {
	return g.nodes[u]
}

// Edges returns the full backing neighbor-id array. The returned slice
// must not be mutated.
func (g *Graph) Edges() []int {
	return g.edges
}

// InRange reports whether s is a valid vertex id for this graph.
func (g *Graph) InRange(s int) bool {
	return s >= 0 && s < g.nNodes
}
