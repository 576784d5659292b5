package pbfs

import (
	"github.com/katalvlaran/pbfsbag/bag"
	"github.com/katalvlaran/pbfsbag/bfs"
	"github.com/katalvlaran/pbfsbag/graph"
	"github.com/katalvlaran/pbfsbag/internal/forkjoin"
)

// Engine runs parallel breadth-first traversals over a fixed graph.Graph.
// An Engine is safe to call Run on repeatedly (including concurrently,
// for distinct distances slices) since it holds no per-run state itself.
type Engine struct {
	g    *graph.Graph
	opts Options
}

// New builds an Engine over g with opts applied to the defaults. Returns
// ErrThresholdMismatch if the resolved BlockSize is not an exact multiple
// of Threshold.
func New(g *graph.Graph, opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.BlockSize%o.Threshold != 0 {
		return nil, ErrThresholdMismatch
	}

	return &Engine{g: g, opts: o}, nil
}

func (e *Engine) bagOpts() []bag.Option {
	return []bag.Option{bag.WithBlockSize(e.opts.BlockSize), bag.WithBagSize(e.opts.BagSize)}
}

// Run computes unweighted shortest-path hop distances from s, writing
// them into distances (caller-owned, length e.g.NNodes(); any prior
// contents are overwritten). Returns ErrSourceOutOfRange if s is outside
// [0, g.NNodes()), leaving distances untouched.
//
// A two-slot [2]*bag.Reducer[int] array toggles between "current" and
// "next" one level at a time — the REDUCER_PTRS shape of the reference
// this driver is modeled on, as opposed to a dynamically-sized reducer
// array.
func (e *Engine) Run(s int, distances []uint32) error {
	if !e.g.InRange(s) {
		return ErrSourceOutOfRange
	}

	n := e.g.NNodes()
	forkjoin.ParallelForEach(n, e.opts.Threshold, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			distances[i] = bfs.Infinity
		}
	})
	distances[s] = 0

	cfg := e.bagOpts()
	queue := [2]*bag.Reducer[int]{}
	queuei := 1

	neighbors := e.g.Neighbors(s)
	queue[queuei] = forkjoin.ParallelFor[*bag.Reducer[int]](
		len(neighbors), e.opts.Threshold,
		bag.Identity[int](cfg...), bag.Combine[int](),
		func(lo, hi int) *bag.Reducer[int] {
			r := bag.NewReducer[int](cfg...)
			for _, edge := range neighbors[lo:hi] {
				if edge != s {
					distances[edge] = 1
					if err := r.Insert(edge); err != nil {
						panic(err)
					}
				}
			}

			return r
		},
	)

	newdist := uint32(2)
	for !queue[queuei].IsEmpty() {
		other := 1 - queuei
		queue[other] = walkBag(e.g, queue[queuei].View(), newdist, distances, cfg, e.opts.Threshold)
		queuei = other
		newdist++
	}

	return nil
}
