package bag

import "github.com/katalvlaran/pbfsbag/pennant"

// Reducer is a per-worker view of a Bag, meant to be created once per
// goroutine spawned under a fork-join scope and reconciled into a parent
// view by Merge when that goroutine's work completes. A Reducer's own
// operations are sequential and non-suspending; all cross-worker
// coordination happens through Merge, exactly as spec'd for the host
// scheduler's reducer facility.
type Reducer[T any] struct {
	view *Bag[T]
}

// NewReducer creates an empty per-worker Reducer — the "identity" half of
// the reducer contract (Bag::identity in the reference this was modeled
// on: identity constructs an empty bag).
func NewReducer[T any](opts ...Option) *Reducer[T] {
	return &Reducer[T]{view: New[T](opts...)}
}

// View exposes the underlying Bag for read-only inspection (tests, or a
// driver that wants to call Split/PeekAt on a reconciled top-level
// reducer once spawning has finished).
func (r *Reducer[T]) View() *Bag[T] {
	return r.view
}

// Insert appends x to this worker's local view.
func (r *Reducer[T]) Insert(x T) error {
	return r.view.Insert(x)
}

// Merge folds that's local view into r's — the "reduce" half of the
// reducer contract (Bag::reduce in the reference: left.merge(right), then
// right is released). that must not be used again afterward.
func (r *Reducer[T]) Merge(that *Reducer[T]) error {
	return r.view.Merge(that.view)
}

// Split destructively pops the top pennant from this worker's view.
func (r *Reducer[T]) Split() (*pennant.Pennant[T], bool) {
	return r.view.Split()
}

// NumElements returns this worker's local element count.
func (r *Reducer[T]) NumElements() int {
	return r.view.NumElements()
}

// IsEmpty reports whether this worker's local view holds no elements.
func (r *Reducer[T]) IsEmpty() bool {
	return r.view.IsEmpty()
}

// Clear resets this worker's local view without releasing its pennants.
func (r *Reducer[T]) Clear() {
	r.view.Clear()
}

// Identity returns a Reducer constructor suitable for a forkjoin.Scope's
// identity argument: every spawned goroutine's accumulator starts as a
// fresh, empty, independently-configured Reducer.
func Identity[T any](opts ...Option) func() *Reducer[T] {
	return func() *Reducer[T] { return NewReducer[T](opts...) }
}

// Combine returns a forkjoin.Scope combine function that merges a
// completed goroutine's local Reducer into the scope's accumulator.
// Bag saturation is, per the spec's error-handling design, a programmer
// error the implementation may fail loudly on; since the scope combine
// contract carries no error channel, Combine panics rather than silently
// dropping the final carry pennant.
func Combine[T any]() func(dst **Reducer[T], src *Reducer[T]) {
	return func(dst **Reducer[T], src *Reducer[T]) {
		if err := (*dst).Merge(src); err != nil {
			panic(err)
		}
	}
}
