package lfu

import "github.com/QuangTung97/memkv"

type cacheConfig[K comparable, V any] struct {
	listener      memkv.EvictionListener[K, V]
	indexCapacity int
}

func computeCacheConfig[K comparable, V any](capacity int, options []Option[K, V]) cacheConfig[K, V] {
	conf := cacheConfig[K, V]{
		indexCapacity: capacity,
	}
	for _, fn := range options {
		fn(&conf)
	}
	return conf
}

// Option ...
type Option[K comparable, V any] func(conf *cacheConfig[K, V])

// WithEvictionListener configures the listener called after an entry was evicted
func WithEvictionListener[K comparable, V any](listener memkv.EvictionListener[K, V]) Option[K, V] {
	return func(conf *cacheConfig[K, V]) {
		conf.listener = listener
	}
}

// WithEvictCallback is WithEvictionListener with a function
func WithEvictCallback[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return WithEvictionListener[K, V](memkv.EvictFunc[K, V](fn))
}

// WithIndexCapacity configures the initial number of buckets of the key index, default is the cache capacity
func WithIndexCapacity[K comparable, V any](capacity int) Option[K, V] {
	return func(conf *cacheConfig[K, V]) {
		conf.indexCapacity = capacity
	}
}
