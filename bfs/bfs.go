package bfs

import (
	"math"

	"github.com/katalvlaran/pbfsbag/graph"
)

// Infinity is the sentinel distance assigned to every vertex before
// traversal and left on any vertex the source cannot reach.
const Infinity = math.MaxUint32

// Run computes unweighted shortest-path hop distances from s over g,
// writing them into distances (caller-owned, length g.NNodes(); any prior
// contents are overwritten). Returns ErrSourceOutOfRange if s is outside
// [0, g.NNodes()), leaving distances untouched.
//
// The queue is drained with a strict head < tail termination check —
// the archival reference this traversal is modeled on used head <= tail,
// which reads one stale, already-harmless queue slot past the end; this
// implementation uses the corrected bound instead.
func Run(g *graph.Graph, s int, distances []uint32) error {
	if !g.InRange(s) {
		return ErrSourceOutOfRange
	}

	for i := range distances {
		distances[i] = Infinity
	}
	distances[s] = 0

	queue := make([]int, 1, g.NNodes())
	queue[0] = s

	for head := 0; head < len(queue); head++ {
		current := queue[head]
		newdist := distances[current] + 1
		for _, e := range g.Neighbors(current) {
			if newdist < distances[e] {
				queue = append(queue, e)
				distances[e] = newdist
			}
		}
	}

	return nil
}
