package chainhash

// DefaultInitialCapacity is the number of buckets of a new Map
const DefaultInitialCapacity = 4

type mapConfig struct {
	initialCapacity int
}

func computeMapConfig(options []Option) mapConfig {
	conf := mapConfig{
		initialCapacity: DefaultInitialCapacity,
	}
	for _, fn := range options {
		fn(&conf)
	}
	return conf
}

// Option ...
type Option func(conf *mapConfig)

// WithInitialCapacity configures the number of buckets allocated up front,
// rounded up to a power of two, default is DefaultInitialCapacity
func WithInitialCapacity(capacity int) Option {
	return func(conf *mapConfig) {
		conf.initialCapacity = capacity
	}
}
