// Package pbfsbag is a parallel breadth-first-search engine built on a
// bag/pennant frontier structure — a commutative, mergeable multiset with
// amortized O(1) insert, O(log n) merge, and O(1) amortized split.
//
// 🚀 What is pbfsbag?
//
//	A pure-Go library that brings together:
//		• Pennant: a complete binary tree of fixed-size element blocks,
//		  combined and split in O(1).
//		• Bag: a binomial-style sequence of pennants plus a partial
//		  "filling" block; the frontier container PBFS drains and refills
//		  every level.
//		• Graph (CSR): an immutable adjacency representation built once
//		  from coordinate input.
//		• Serial BFS: a queue-based oracle used to validate PBFS output.
//		• PBFS: a level-synchronous, fork-join parallel BFS over the bag.
//
// ✨ Why choose pbfsbag?
//
//   - Tested laws — merge commutativity, associativity and identity,
//     insert/merge equivalence and split-drain completeness are each
//     checked by fixed-input unit tests.
//   - Pure Go — no cgo, depends only on the standard library plus
//     testify in tests.
//   - Scales with cores — the PBFS walkers fan out across goroutines
//     with a tunable grain (THRESHOLD), mirroring the fork-join model
//     this design was distilled from.
//
// Under the hood, everything is organized under six subpackages:
//
//	pennant/           — the combine/split binary-tree block structure
//	bag/                — the binomial multiset built atop pennants, plus its reducer view
//	internal/forkjoin/  — a small spawn/sync/parallel-for emulation over goroutines
//	graph/              — the CSR adjacency representation
//	bfs/                — the sequential reference BFS
//	pbfs/               — the parallel BFS driver and walkers
//
// Quick mental model:
//
//	coordinate input → graph.Graph (build once)
//	  → pbfs.Engine.Run seeds the frontier bag from the source's neighbors
//	  → level by level, parallel walkers drain the current bag,
//	    write distances, and refill the next bag
//	  → swap, repeat until the frontier is empty
//
//	go get github.com/katalvlaran/pbfsbag
package pbfsbag
