package randmap

import (
	"math/rand"
	"time"

	"github.com/QuangTung97/memkv/chainhash"
)

type mapConfig struct {
	initialCapacity int
	rand            *rand.Rand
}

func computeMapConfig(options []Option) mapConfig {
	conf := mapConfig{
		initialCapacity: chainhash.DefaultInitialCapacity,
	}
	for _, fn := range options {
		fn(&conf)
	}
	if conf.rand == nil {
		conf.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return conf
}

// Option ...
type Option func(conf *mapConfig)

// WithInitialCapacity configures the number of entries allocated up front
func WithInitialCapacity(capacity int) Option {
	return func(conf *mapConfig) {
		conf.initialCapacity = capacity
	}
}

// WithRand configures the random source of RandomKey, *rand.Rand is NOT thread safe
func WithRand(r *rand.Rand) Option {
	return func(conf *mapConfig) {
		conf.rand = r
	}
}
