package pbfs

import (
	"github.com/katalvlaran/pbfsbag/bag"
	"github.com/katalvlaran/pbfsbag/graph"
	"github.com/katalvlaran/pbfsbag/internal/forkjoin"
	"github.com/katalvlaran/pbfsbag/pennant"
)

// walkBag drains b, spawning one task per top-level pennant and one task
// per threshold-sized slice of the filling block, and returns the
// combined next-level reducer those tasks inserted into. Every pennant is
// popped from b; its filling block is read but left in place, so b still
// reports its filling size afterwards.
func walkBag(g *graph.Graph, b *bag.Bag[int], newdist uint32, distances []uint32, cfg []bag.Option, threshold int) *bag.Reducer[int] {
	scope := forkjoin.NewScope[*bag.Reducer[int]](bag.Identity[int](cfg...), bag.Combine[int]())

	for {
		p, ok := b.Split()
		if !ok {
			break
		}
		scope.Spawn(func() *bag.Reducer[int] {
			return walkPennant(g, p, newdist, distances, cfg, threshold)
		})
	}

	fillSize := b.GetFillingSize()
	n := b.GetFilling()
	extra := fillSize % threshold
	aligned := fillSize - extra

	if extra > 0 {
		tail := n[aligned:fillSize]
		scope.Spawn(func() *bag.Reducer[int] {
			r := bag.NewReducer[int](cfg...)
			procNodes(g, tail, newdist, distances, r)

			return r
		})
	}

	for i := 0; i < aligned; i += threshold {
		lo, hi := i, i+threshold
		slice := n[lo:hi]
		scope.Spawn(func() *bag.Reducer[int] {
			r := bag.NewReducer[int](cfg...)
			procNodes(g, slice, newdist, distances, r)

			return r
		})
	}

	return scope.Sync()
}

// walkPennant recursively spawns on p's children and, in parallel,
// processes p's own element block in threshold-sized slices (precondition:
// threshold divides the pennant's block capacity). p's children are
// detached once their subtrees have both been spawned, since nothing
// keeps a reference to them after this call returns.
func walkPennant(g *graph.Graph, p *pennant.Pennant[int], newdist uint32, distances []uint32, cfg []bag.Option, threshold int) *bag.Reducer[int] {
	scope := forkjoin.NewScope[*bag.Reducer[int]](bag.Identity[int](cfg...), bag.Combine[int]())

	if l := p.Left(); l != nil {
		scope.Spawn(func() *bag.Reducer[int] {
			return walkPennant(g, l, newdist, distances, cfg, threshold)
		})
	}
	if r := p.Right(); r != nil {
		scope.Spawn(func() *bag.Reducer[int] {
			return walkPennant(g, r, newdist, distances, cfg, threshold)
		})
	}

	els := p.Elements()
	for i := 0; i < len(els); i += threshold {
		lo := i
		hi := i + threshold
		if hi > len(els) {
			hi = len(els)
		}
		slice := els[lo:hi]
		scope.Spawn(func() *bag.Reducer[int] {
			r := bag.NewReducer[int](cfg...)
			procNodes(g, slice, newdist, distances, r)

			return r
		})
	}

	p.ClearChildren()

	return scope.Sync()
}

// procNodes scans each node u in nodes and inserts every neighbor whose
// recorded distance is still worse than newdist into next, the calling
// task's local frontier view.
//
// The read-then-write on distances[e] is intentionally unsynchronized:
// every concurrent writer at this level stores the identical value
// newdist, so a losing writer's store is idempotent, and a stale read
// can only cause a harmless duplicate insertion — never an incorrect
// distance. Do not add a lock here.
func procNodes(g *graph.Graph, nodes []int, newdist uint32, distances []uint32, next *bag.Reducer[int]) {
	for _, u := range nodes {
		for _, e := range g.Neighbors(u) {
			if newdist < distances[e] {
				if err := next.Insert(e); err != nil {
					panic(err)
				}
				distances[e] = newdist
			}
		}
	}
}
