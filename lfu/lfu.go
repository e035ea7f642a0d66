// Package lfu implements a fixed capacity cache evicting the least frequently used entry.
// Among entries with the same frequency the least recently used one is evicted first
package lfu

import (
	"fmt"

	"github.com/QuangTung97/memkv"
	"github.com/QuangTung97/memkv/chainhash"
	"github.com/QuangTung97/memkv/internal/arena"
)

type lfuNode[K comparable, V any] struct {
	key   K
	value V
	freq  int
}

// Cache is a least frequently used cache.
//
// Every entry is a node in the list of its access frequency, lists are ordered
// from the least recently to the most recently accessed.
// The node stores the frequency, so the key index is also the key => frequency mapping.
// When not empty, minFreq is the smallest frequency having a non-empty list
type Cache[K comparable, V any] struct {
	capacity int

	index *chainhash.Map[K, arena.Index]
	nodes arena.Arena[lfuNode[K, V]]

	// frequency => list of nodes, empty lists are removed
	freqLists *chainhash.Map[int, arena.List]
	minFreq   int

	listener memkv.EvictionListener[K, V]
	stats    memkv.Stats
}

var _ memkv.Cache[string, int] = &Cache[string, int]{}

// New creates a Cache holding at most capacity entries
func New[K comparable, V any](
	capacity int, hasher memkv.Hasher[K], options ...Option[K, V],
) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: lfu capacity=%d", memkv.ErrInvalidCapacity, capacity)
	}
	if hasher == nil {
		return nil, memkv.ErrNilHasher
	}

	conf := computeCacheConfig(capacity, options)

	c := &Cache[K, V]{
		capacity:  capacity,
		index:     chainhash.New[K, arena.Index](hasher, chainhash.WithInitialCapacity(conf.indexCapacity)),
		freqLists: chainhash.New[int, arena.List](memkv.IntHasher[int]()),
		listener:  conf.listener,
	}
	c.nodes.Grow(capacity)
	return c, nil
}

// increaseFreq moves node i from the list of frequency f to the back of the list of f + 1
func (c *Cache[K, V]) increaseFreq(i arena.Index) {
	n := c.nodes.Value(i)
	f := n.freq
	n.freq++

	// Slot of f + 1 can resize the lists map, so it MUST be called before getting the list of f
	to := c.freqLists.Slot(f + 1)
	from := c.freqLists.Slot(f)
	c.nodes.MoveToBack(from, to, i)

	if from.Empty() {
		c.freqLists.Erase(f)
		if c.minFreq == f {
			c.minFreq = f + 1
		}
	}
}

func (c *Cache[K, V]) evict() lfuNode[K, V] {
	list := c.freqLists.Slot(c.minFreq)
	n := c.nodes.Remove(list, list.Front())
	if list.Empty() {
		c.freqLists.Erase(c.minFreq)
	}
	c.index.Erase(n.key)
	c.stats.Evictions++
	return n
}

// recomputeMinFreq scans all frequency lists, only needed after Erase
func (c *Cache[K, V]) recomputeMinFreq() {
	c.minFreq = 0
	c.freqLists.Range(func(freq int, _ arena.List) bool {
		if c.minFreq == 0 || freq < c.minFreq {
			c.minFreq = freq
		}
		return true
	})
}

// Get returns the value of key and increases its frequency by one
func (c *Cache[K, V]) Get(key K) (V, bool) {
	i, ok := c.index.Get(key)
	if !ok {
		c.stats.Misses++
		var empty V
		return empty, false
	}

	c.stats.Hits++
	c.increaseFreq(i)
	return c.nodes.Value(i).value, true
}

// Put updates key and increases its frequency by one, or inserts key with frequency 1.
// Inserting a new key into a full cache evicts the least frequently used one first
func (c *Cache[K, V]) Put(key K, value V) {
	i, ok := c.index.Get(key)
	if ok {
		c.increaseFreq(i)
		c.nodes.Value(i).value = value
		return
	}

	var evicted lfuNode[K, V]
	needEvict := c.index.Size() >= c.capacity
	if needEvict {
		evicted = c.evict()
	}

	i = c.nodes.PushBack(c.freqLists.Slot(1), lfuNode[K, V]{
		key:   key,
		value: value,
		freq:  1,
	})
	c.index.Put(key, i)
	c.minFreq = 1

	if needEvict && c.listener != nil {
		c.listener.OnEvict(evicted.key, evicted.value)
	}
}

// Peek returns the value of key without changing its frequency
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	i, ok := c.index.Get(key)
	if !ok {
		var empty V
		return empty, false
	}
	return c.nodes.Value(i).value, true
}

// Contains does not change the frequency of key
func (c *Cache[K, V]) Contains(key K) bool {
	return c.index.Contains(key)
}

// Frequency returns the number of accesses of key since it was inserted, counting the insertion
func (c *Cache[K, V]) Frequency(key K) (int, bool) {
	i, ok := c.index.Get(key)
	if !ok {
		return 0, false
	}
	return c.nodes.Value(i).freq, true
}

// MinFrequency returns the smallest frequency of all entries, false when the cache is empty
func (c *Cache[K, V]) MinFrequency() (int, bool) {
	if c.index.Empty() {
		return 0, false
	}
	return c.minFreq, true
}

// Erase removes key without calling the eviction listener
func (c *Cache[K, V]) Erase(key K) bool {
	i, ok := c.index.Get(key)
	if !ok {
		return false
	}

	f := c.nodes.Value(i).freq
	list := c.freqLists.Slot(f)
	c.nodes.Remove(list, i)
	c.index.Erase(key)

	if list.Empty() {
		c.freqLists.Erase(f)
		if c.minFreq == f {
			c.recomputeMinFreq()
		}
	}
	return true
}

// Clear removes all entries, keeps the stats
func (c *Cache[K, V]) Clear() {
	c.index.Clear()
	c.nodes.Reset()
	c.freqLists.Clear()
	c.minFreq = 0
}

// Size ...
func (c *Cache[K, V]) Size() int {
	return c.index.Size()
}

// Empty ...
func (c *Cache[K, V]) Empty() bool {
	return c.index.Empty()
}

// Capacity ...
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Stats ...
func (c *Cache[K, V]) Stats() memkv.Stats {
	return c.stats
}
