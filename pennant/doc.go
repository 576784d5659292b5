// Package pennant implements the Pennant[T] data structure: a complete
// binary tree of fixed-capacity element blocks that a Bag uses as its
// binomial building blocks.
//
// A pennant of rank k holds exactly 2^k blocks of BlockSize elements each,
// arranged as a rooted binary tree whose shape is implicit — rank is never
// stored, only implied by the nesting of l/r children. combine and split
// are O(1), allocation-free, and are exact algebraic inverses of each
// other given equal-rank operands.
//
// What: a rank-k pennant's element block plus, if k > 0, two rank-(k-1)
// child pennants.
//
// Why: merging two equal-size binary-tree structures in O(1) is the
// operation a binomial-carry bag insert/merge needs at every step;
// Pennant is the unit that carry propagates.
//
// Determinism: combine and split are pure pointer rewrites — no
// allocation, no randomness, no hidden state.
//
// Complexity: combine O(1), split O(1), Elements O(1) (returns the
// existing block, no copy).
package pennant
