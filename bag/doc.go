// Package bag implements Bag[T]: a commutative, mergeable multiset built
// from pennant.Pennant[T] blocks in a binomial representation, plus a
// Reducer[T] view for use under a fork-join scheduler.
//
// What: bag[0..BagSize) holds at most one pennant per rank, encoding the
// element count in binary — bit i set iff bag[i] is non-nil, exactly as a
// binomial heap's root list does. A partially-filled "filling" block of
// capacity BlockSize absorbs single-element inserts until it is full,
// at which point it is promoted to a rank-0 pennant and carried into the
// binomial sequence.
//
// Why: this shape gives amortized O(1) insert (the binomial carry touches
// O(log n) slots only on the rare inserts that overflow a full filling
// block), O(log n) merge (a ripple-carry add over two binomial sequences),
// and O(1) amortized destructive split (pop the top pennant) — exactly
// the operations a parallel frontier container needs: cheap local
// inserts, cheap global merges, and splits that hand independent chunks
// to other workers without copying elements.
//
// Determinism: BlockSize/BagSize are resolved once at construction via
// functional Options and never change; insert/merge/split are otherwise
// free of randomness. Multiset content is always the exact union of what
// was inserted — only the internal pennant shape depends on call order.
//
// Complexity: Insert amortized O(1), Merge O(log n) pennant operations,
// Split O(1) amortized across a full drain, NumElements O(BagSize).
package bag
