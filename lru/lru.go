// Package lru implements a fixed capacity cache evicting the least recently used entry
package lru

import (
	"fmt"

	"github.com/QuangTung97/memkv"
	"github.com/QuangTung97/memkv/chainhash"
	"github.com/QuangTung97/memkv/internal/arena"
)

// Cache is a least recently used cache.
// The front of the recency list is the least recently used entry, the back is the most recently used.
// Every index entry refers to a live node of the recency list, and both always have the same size
type Cache[K comparable, V any] struct {
	capacity int

	index   *chainhash.Map[K, arena.Index]
	entries arena.Arena[memkv.Entry[K, V]]
	recency arena.List

	listener memkv.EvictionListener[K, V]
	stats    memkv.Stats
}

var _ memkv.Cache[string, int] = &Cache[string, int]{}

// New creates a Cache holding at most capacity entries
func New[K comparable, V any](
	capacity int, hasher memkv.Hasher[K], options ...Option[K, V],
) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: lru capacity=%d", memkv.ErrInvalidCapacity, capacity)
	}
	if hasher == nil {
		return nil, memkv.ErrNilHasher
	}

	conf := computeCacheConfig(capacity, options)

	c := &Cache[K, V]{
		capacity: capacity,
		index:    chainhash.New[K, arena.Index](hasher, chainhash.WithInitialCapacity(conf.indexCapacity)),
		listener: conf.listener,
	}
	c.entries.Grow(capacity)
	return c, nil
}

// Get returns the value of key and makes key the most recently used
func (c *Cache[K, V]) Get(key K) (V, bool) {
	i, ok := c.index.Get(key)
	if !ok {
		c.stats.Misses++
		var empty V
		return empty, false
	}

	c.stats.Hits++
	c.entries.MoveToBack(&c.recency, &c.recency, i)
	return c.entries.Value(i).Value, true
}

// Put inserts or updates key and makes it the most recently used.
// Inserting a new key into a full cache evicts the least recently used one first
func (c *Cache[K, V]) Put(key K, value V) {
	i, ok := c.index.Get(key)
	if ok {
		c.entries.Value(i).Value = value
		c.entries.MoveToBack(&c.recency, &c.recency, i)
		return
	}

	var evicted memkv.Entry[K, V]
	needEvict := c.recency.Len() >= c.capacity
	if needEvict {
		evicted = c.entries.Remove(&c.recency, c.recency.Front())
		c.index.Erase(evicted.Key)
		c.stats.Evictions++
	}

	i = c.entries.PushBack(&c.recency, memkv.Entry[K, V]{Key: key, Value: value})
	c.index.Put(key, i)

	if needEvict && c.listener != nil {
		c.listener.OnEvict(evicted.Key, evicted.Value)
	}
}

// Peek returns the value of key without changing the recency order
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	i, ok := c.index.Get(key)
	if !ok {
		var empty V
		return empty, false
	}
	return c.entries.Value(i).Value, true
}

// Contains does not change the recency order
func (c *Cache[K, V]) Contains(key K) bool {
	return c.index.Contains(key)
}

// Erase removes key without calling the eviction listener
func (c *Cache[K, V]) Erase(key K) bool {
	i, ok := c.index.Get(key)
	if !ok {
		return false
	}
	c.index.Erase(key)
	c.entries.Remove(&c.recency, i)
	return true
}

// Clear removes all entries, keeps the stats
func (c *Cache[K, V]) Clear() {
	c.index.Clear()
	c.entries.Reset()
	c.recency = arena.List{}
}

// Size ...
func (c *Cache[K, V]) Size() int {
	return c.recency.Len()
}

// Empty ...
func (c *Cache[K, V]) Empty() bool {
	return c.recency.Empty()
}

// Capacity ...
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Keys returns keys from the least recently used to the most recently used
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.recency.Len())
	c.entries.Walk(&c.recency, func(_ arena.Index, e *memkv.Entry[K, V]) bool {
		keys = append(keys, e.Key)
		return true
	})
	return keys
}

// Stats ...
func (c *Cache[K, V]) Stats() memkv.Stats {
	return c.stats
}
