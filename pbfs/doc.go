// Package pbfs implements a level-synchronous parallel breadth-first
// traversal over a graph.Graph, using two bag.Reducer[int] frontiers that
// toggle between "current" and "next" one level at a time.
//
// Each level drains the current frontier through a recursive parallel
// walk (walkBag/walkPennant/procNodes) that fans out over the frontier's
// pennants and filling block, inserting untouched neighbors into the
// next frontier and writing their distance. Every write to the shared
// distances slice during that fan-out is intentionally unsynchronized:
// see procNodes for why that race is benign.
package pbfs
