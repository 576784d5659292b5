// Package forkjoin emulates the fork-join primitives a Cilk-style
// scheduler would supply natively: spawn a sibling task, sync on a scope's
// outstanding spawns, and a scoped parallel-for with a settable grain.
// Every spawned task contributes a per-goroutine local value that is
// combined into the scope's accumulator through a caller-supplied
// identity/combine pair — the reducer abstraction the rest of this module
// is built on.
//
// What: Scope[T] launches goroutines for Spawn'd work and reconciles each
// one's local T into a shared accumulator via combine, guarded by a mutex
// held only for the O(combine) merge itself, never for the work.
//
// Why: Go's runtime scheduler is already work-stealing across goroutines;
// this package only needs to add the spawn/sync bookkeeping and the
// reducer-style merge-on-completion that a Cilk program gets for free.
// No library in this codebase's dependency graph implements Cilk-style
// spawn/sync/reducer semantics, so this is built directly on
// sync.WaitGroup and sync.Mutex.
//
// Determinism: the set of values combined is deterministic (one per
// Spawn/Do call); the order combine observes them in across goroutines is
// not, which is exactly the ordering guarantee the reducer abstraction
// promises — combine must be commutative and associative over the values
// it receives.
package forkjoin
