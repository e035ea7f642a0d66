package oahash

import "log"

// DefaultInitialCapacity is the number of slots of a new Map
const DefaultInitialCapacity = 4

type mapConfig struct {
	initialCapacity int
	errorLogger     func(err error)
}

func defaultErrorLogger(err error) {
	log.Println("[ERROR] oahash: probe error:", err)
}

func computeMapConfig(options []Option) mapConfig {
	conf := mapConfig{
		initialCapacity: DefaultInitialCapacity,
		errorLogger:     defaultErrorLogger,
	}
	for _, fn := range options {
		fn(&conf)
	}
	return conf
}

// Option ...
type Option func(conf *mapConfig)

// WithInitialCapacity configures the number of slots allocated up front,
// rounded up to a power of two, default is DefaultInitialCapacity
func WithInitialCapacity(capacity int) Option {
	return func(conf *mapConfig) {
		conf.initialCapacity = capacity
	}
}

// WithErrorLogger configures the logger called when the probe length guard fires
func WithErrorLogger(logger func(err error)) Option {
	return func(conf *mapConfig) {
		conf.errorLogger = logger
	}
}
