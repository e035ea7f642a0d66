// Package linkedhash implements a hash map that remembers the insertion order of its keys
package linkedhash

import (
	"github.com/QuangTung97/memkv"
	"github.com/QuangTung97/memkv/chainhash"
	"github.com/QuangTung97/memkv/internal/arena"
)

// Map is a chained hash map whose entries are also linked in insertion order.
// Updating an existing key keeps its position, erasing then inserting again moves it to the back
type Map[K comparable, V any] struct {
	index *chainhash.Map[K, arena.Index]

	entries arena.Arena[memkv.Entry[K, V]]
	order   arena.List
}

var _ memkv.Map[string, int] = &Map[string, int]{}

// New creates an empty Map, panics if hasher is nil
func New[K comparable, V any](hasher memkv.Hasher[K], options ...Option) *Map[K, V] {
	conf := computeMapConfig(options)

	m := &Map[K, V]{
		index: chainhash.New[K, arena.Index](hasher, chainhash.WithInitialCapacity(conf.initialCapacity)),
	}
	if conf.initialCapacity > 0 {
		m.entries.Grow(conf.initialCapacity)
	}
	return m
}

// Get ...
func (m *Map[K, V]) Get(key K) (V, bool) {
	i, ok := m.index.Get(key)
	if !ok {
		var empty V
		return empty, false
	}
	return m.entries.Value(i).Value, true
}

// Slot returns the value slot of key, appends key with the zero value if not found.
// The pointer becomes invalid after the next mutating call
func (m *Map[K, V]) Slot(key K) *V {
	i, ok := m.index.Get(key)
	if ok {
		return &m.entries.Value(i).Value
	}

	i = m.entries.PushBack(&m.order, memkv.Entry[K, V]{Key: key})
	m.index.Put(key, i)
	return &m.entries.Value(i).Value
}

// Put ...
func (m *Map[K, V]) Put(key K, value V) {
	*m.Slot(key) = value
}

// Contains ...
func (m *Map[K, V]) Contains(key K) bool {
	return m.index.Contains(key)
}

// Erase removes key from both the index and the order list
func (m *Map[K, V]) Erase(key K) bool {
	i, ok := m.index.Get(key)
	if !ok {
		return false
	}
	m.index.Erase(key)
	m.entries.Remove(&m.order, i)
	return true
}

// Clear removes all entries
func (m *Map[K, V]) Clear() {
	m.index.Clear()
	m.entries.Reset()
	m.order = arena.List{}
}

// Size ...
func (m *Map[K, V]) Size() int {
	return m.order.Len()
}

// Empty ...
func (m *Map[K, V]) Empty() bool {
	return m.order.Empty()
}

// Capacity returns the number of buckets of the index
func (m *Map[K, V]) Capacity() int {
	return m.index.Capacity()
}

// Range calls fn in insertion order until fn returns false.
// fn MUST NOT modify the map
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	m.entries.Walk(&m.order, func(_ arena.Index, e *memkv.Entry[K, V]) bool {
		return fn(e.Key, e.Value)
	})
}

// Keys returns all keys in insertion order
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Size())
	m.entries.Walk(&m.order, func(_ arena.Index, e *memkv.Entry[K, V]) bool {
		keys = append(keys, e.Key)
		return true
	})
	return keys
}

// Entries returns all key/value pairs in insertion order
func (m *Map[K, V]) Entries() []memkv.Entry[K, V] {
	result := make([]memkv.Entry[K, V], 0, m.Size())
	m.entries.Walk(&m.order, func(_ arena.Index, e *memkv.Entry[K, V]) bool {
		result = append(result, *e)
		return true
	})
	return result
}

func (m *Map[K, V]) entryAt(i arena.Index) (K, V, bool) {
	if i == arena.Nil {
		var key K
		var value V
		return key, value, false
	}
	e := m.entries.Value(i)
	return e.Key, e.Value, true
}

// Front returns the earliest inserted entry
func (m *Map[K, V]) Front() (K, V, bool) {
	return m.entryAt(m.order.Front())
}

// Back returns the latest inserted entry
func (m *Map[K, V]) Back() (K, V, bool) {
	return m.entryAt(m.order.Back())
}
