package linkedhash

import "github.com/QuangTung97/memkv/chainhash"

type mapConfig struct {
	initialCapacity int
}

func computeMapConfig(options []Option) mapConfig {
	conf := mapConfig{
		initialCapacity: chainhash.DefaultInitialCapacity,
	}
	for _, fn := range options {
		fn(&conf)
	}
	return conf
}

// Option ...
type Option func(conf *mapConfig)

// WithInitialCapacity configures the number of index buckets and entries allocated up front
func WithInitialCapacity(capacity int) Option {
	return func(conf *mapConfig) {
		conf.initialCapacity = capacity
	}
}
