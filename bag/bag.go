package bag

import "github.com/katalvlaran/pbfsbag/pennant"

// Bag is a binomial-sequence multiset of pennant.Pennant[T] plus a
// partially-filled "filling" block. See package doc for the shape and
// the invariants every public operation restores before returning.
type Bag[T any] struct {
	cfg     Config
	entries []*pennant.Pennant[T] // length cfg.BagSize; entries[i] is nil or rank i
	fill    int                   // one past the highest populated index
	filling []T                   // capacity cfg.BlockSize
	size    int                   // valid elements in filling, 0 <= size < BlockSize
}

// New creates an empty Bag configured by opts (defaults: BlockSize=2048,
// BagSize=64).
func New[T any](opts ...Option) *Bag[T] {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Bag[T]{
		cfg:     cfg,
		entries: make([]*pennant.Pennant[T], cfg.BagSize),
		filling: make([]T, cfg.BlockSize),
	}
}

// Snapshot returns a shallow alias of b: it shares every pennant and the
// filling block. It exists only to capture a bag's state before a
// destructive Split in tests; the alias must never be mutated or
// destroyed independently of b, since it owns nothing of its own.
func (b *Bag[T]) Snapshot() *Bag[T] {
	entries := make([]*pennant.Pennant[T], len(b.entries))
	copy(entries, b.entries)

	return &Bag[T]{cfg: b.cfg, entries: entries, fill: b.fill, filling: b.filling, size: b.size}
}

// NumElements returns the total element count across the filling block
// and every populated pennant.
func (b *Bag[T]) NumElements() int {
	count := b.size
	k := 1
	for i := 0; i < b.fill; i++ {
		if b.entries[i] != nil {
			count += k * b.cfg.BlockSize
		}
		k *= 2
	}

	return count
}

// GetFill returns fill: one past the highest populated binomial slot.
func (b *Bag[T]) GetFill() int {
	return b.fill
}

// IsEmpty reports whether the bag holds no elements at all, including the
// filling block.
func (b *Bag[T]) IsEmpty() bool {
	return b.fill == 0 && b.size == 0
}

// GetFirst returns the rank-0 slot's pennant, or nil if absent.
func (b *Bag[T]) GetFirst() *pennant.Pennant[T] {
	return b.entries[0]
}

// GetFilling returns the bag's partially-filled block. Callers must treat
// it as read-only; Insert/Merge may replace it on the next call.
func (b *Bag[T]) GetFilling() []T {
	return b.filling[:b.size]
}

// GetFillingSize returns the number of valid elements in the filling
// block.
func (b *Bag[T]) GetFillingSize() int {
	return b.size
}

// Clear resets fill and size to zero without releasing any pennant or the
// filling block — callers use this only after a logical handover, e.g.
// after swapping roles between two bags in a level-synchronous loop.
func (b *Bag[T]) Clear() {
	b.fill = 0
	b.size = 0
}

// Insert appends x to the filling block. When the block becomes full, it
// is promoted to a rank-0 pennant and carried into the binomial sequence.
// Returns ErrBagSaturated if that carry propagates past BagSize.
func (b *Bag[T]) Insert(x T) error {
	b.filling[b.size] = x
	b.size++
	if b.size < b.cfg.BlockSize {
		return nil
	}

	c := pennant.New(b.filling)
	b.filling = make([]T, b.cfg.BlockSize)
	b.size = 0

	return b.carry(c)
}

// carry performs the binomial-carry insertion of a freshly-promoted
// rank-0 pennant c into the binomial sequence, combining with any
// existing same-rank entry and propagating upward.
func (b *Bag[T]) carry(c *pennant.Pennant[T]) error {
	for i := 0; i < b.cfg.BagSize; i++ {
		if i < b.fill && b.entries[i] != nil {
			c = b.entries[i].Combine(c)
			b.entries[i] = nil
			continue
		}
		b.entries[i] = c
		if b.fill < i+1 {
			b.fill = i + 1
		}

		return nil
	}
	b.fill = b.cfg.BagSize

	return ErrBagSaturated
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// Merge folds other into b: the resulting multiset is the union of both.
// other is left logically empty (fill and size reset to zero, filling
// released); other must not be used again, since with its filling block
// released an Insert into it panics.
// Returns ErrConfigMismatch if b and other were built with different
// tunables, or ErrBagSaturated if the binomial addition's final carry
// propagates past BagSize.
func (b *Bag[T]) Merge(other *Bag[T]) error {
	if b.cfg != other.cfg {
		return ErrConfigMismatch
	}

	var c *pennant.Pennant[T]
	var carry []T

	// Phase 1: filling reconciliation.
	if b.size < other.size {
		i := b.size - (b.cfg.BlockSize - other.size)
		if i >= 0 {
			copy(other.filling[other.size:b.cfg.BlockSize], b.filling[i:b.cfg.BlockSize])
			carry = other.filling
			b.size = i
		} else {
			copy(other.filling[other.size:other.size+b.size], b.filling[:b.size])
			b.filling = other.filling
			b.size += other.size
		}
	} else {
		i := other.size - (b.cfg.BlockSize - b.size)
		if i >= 0 {
			copy(b.filling[b.size:b.cfg.BlockSize], other.filling[i:other.size])
			carry = b.filling
			b.filling = other.filling
			b.size = i
		} else {
			copy(b.filling[b.size:b.size+other.size], other.filling[:other.size])
			b.size += other.size
		}
	}
	other.filling = nil
	other.size = 0

	if carry != nil {
		c = pennant.New(carry)
	}

	min, max := b.fill, other.fill
	if min > max {
		min, max = max, min
	}

	// Phase 2: binomial addition with carry, ripple over [0, min).
	for i := 0; i < min; i++ {
		bSet, oSet, cSet := b.entries[i] != nil, other.entries[i] != nil, c != nil
		switch {
		case !bSet && !oSet && !cSet:
			// nothing to do
		case !bSet && !oSet && cSet:
			b.entries[i] = c
			c = nil
		case !bSet && oSet && !cSet:
			b.entries[i] = other.entries[i]
			other.entries[i] = nil
		case !bSet && oSet && cSet:
			c = other.entries[i].Combine(c)
			other.entries[i] = nil
			b.entries[i] = nil
		case bSet && !oSet && !cSet:
			// b.entries[i] unchanged
		case bSet && !oSet && cSet:
			c = b.entries[i].Combine(c)
			b.entries[i] = nil
		case bSet && oSet && !cSet:
			c = b.entries[i].Combine(other.entries[i])
			other.entries[i] = nil
			b.entries[i] = nil
		default: // bSet && oSet && cSet
			c = other.entries[i].Combine(c)
			other.entries[i] = nil
		}
	}
	other.fill = 0

	i := min
	if b.fill == max {
		if c == nil {
			return nil
		}
		for ; i < b.cfg.BagSize; i++ {
			if i < max && b.entries[i] != nil {
				c = b.entries[i].Combine(c)
				b.entries[i] = nil
				continue
			}
			b.entries[i] = c
			b.fill = maxInt(max, i+1)

			return nil
		}
		b.fill = b.cfg.BagSize

		return ErrBagSaturated
	}

	// other.fill == max
	if c == nil {
		b.fill = max
		for j := i; j < b.fill; j++ {
			b.entries[j] = other.entries[j]
			other.entries[j] = nil
		}

		return nil
	}

	for ; i < b.cfg.BagSize; i++ {
		if i < max && other.entries[i] != nil {
			c = other.entries[i].Combine(c)
			b.entries[i] = nil
			other.entries[i] = nil
			continue
		}
		b.entries[i] = c
		b.fill = maxInt(max, i+1)
		for j := i + 1; j < b.fill; j++ {
			b.entries[j] = other.entries[j]
			other.entries[j] = nil
		}

		return nil
	}
	b.fill = b.cfg.BagSize

	return ErrBagSaturated
}

// Split destructively pops the top pennant: the highest-ranked populated
// slot. Returns (nil, false) if the bag has no pennants.
func (b *Bag[T]) Split() (*pennant.Pennant[T], bool) {
	if b.fill == 0 {
		return nil, false
	}
	b.fill--
	p := b.entries[b.fill]
	b.entries[b.fill] = nil

	for b.fill > 0 && b.entries[b.fill-1] == nil {
		b.fill--
	}

	return p, true
}

// PeekAt is a non-destructive indexed peek: it returns the pennant at pos
// without removing it from the bag, plus the largest populated index
// below pos (or -1 if none). Callers must not free or otherwise consume
// the returned pennant — it remains owned by the bag. This is external
// enumeration scaffolding, not part of the PBFS hot path.
func (b *Bag[T]) PeekAt(pos int) (*pennant.Pennant[T], int) {
	if pos < 0 || pos >= b.fill {
		return nil, b.fill - 1
	}
	p := b.entries[pos]
	for i := pos - 1; i >= 0; i-- {
		if b.entries[i] != nil {
			return p, i
		}
	}

	return p, -1
}
