package bag

// DefaultBlockSize is the pennant element-block capacity used when no
// WithBlockSize option is supplied. It must be a power of two and, for
// pbfs's walkers, a multiple of the chosen THRESHOLD grain.
const DefaultBlockSize = 2048

// DefaultBagSize is the binomial-sequence capacity used when no
// WithBagSize option is supplied — large enough that a carry reaching
// 2^64 blocks is not a concern for any physical graph.
const DefaultBagSize = 64

// Config resolves the functional Options passed to New into the two
// tunables a Bag is built around.
type Config struct {
	// BlockSize is the fixed capacity of the filling block and of every
	// pennant's element block.
	BlockSize int

	// BagSize is the number of binomial slots — the maximum pennant rank
	// plus one that this bag can ever hold.
	BagSize int
}

// DefaultConfig returns the spec's default tunables (BlockSize=2048,
// BagSize=64).
func DefaultConfig() Config {
	return Config{BlockSize: DefaultBlockSize, BagSize: DefaultBagSize}
}

// Option configures a Bag's Config before construction.
type Option func(*Config)

// WithBlockSize overrides the filling/pennant block capacity.
func WithBlockSize(n int) Option {
	return func(c *Config) { c.BlockSize = n }
}

// WithBagSize overrides the binomial-sequence capacity.
func WithBagSize(n int) Option {
	return func(c *Config) { c.BagSize = n }
}
