package pbfs

// DefaultThreshold is the grain size for parallel node processing used
// when no WithThreshold option is supplied.
const DefaultThreshold = 256

// Options resolves the functional Options passed to New into the
// tunables a parallel traversal is built around.
type Options struct {
	// Threshold is the grain size for parallel node processing: the
	// number of frontier nodes (or pennant-block elements) a single
	// spawned task scans before yielding. Must divide BlockSize evenly.
	Threshold int

	// BlockSize is the bag's filling/pennant block capacity, forwarded
	// to the underlying bag.Config.
	BlockSize int

	// BagSize is the bag's binomial-sequence capacity, forwarded to the
	// underlying bag.Config.
	BagSize int
}

// Option configures Options before New resolves them.
type Option func(*Options)

// DefaultOptions returns the spec's default tunables
// (Threshold=256, BlockSize=2048, BagSize=64).
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		BlockSize: 2048,
		BagSize:   64,
	}
}

// WithThreshold overrides the parallel-processing grain size.
func WithThreshold(n int) Option {
	return func(o *Options) { o.Threshold = n }
}

// WithBlockSize overrides the bag/pennant block capacity.
func WithBlockSize(n int) Option {
	return func(o *Options) { o.BlockSize = n }
}

// WithBagSize overrides the bag's binomial-sequence capacity.
func WithBagSize(n int) Option {
	return func(o *Options) { o.BagSize = n }
}
