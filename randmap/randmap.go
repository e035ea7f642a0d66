// Package randmap implements a hash map that can return a uniformly random key in constant time
package randmap

import (
	"github.com/QuangTung97/memkv"
	"github.com/QuangTung97/memkv/chainhash"
)

// Map keeps entries densely packed in a slice, the key index stores the position of each entry.
// Erase moves the last entry into the hole, so positions are not stable
type Map[K comparable, V any] struct {
	entries []memkv.Entry[K, V]
	index   *chainhash.Map[K, int32]

	conf mapConfig
}

var _ memkv.Map[string, int] = &Map[string, int]{}

// New creates an empty Map, panics if hasher is nil
func New[K comparable, V any](hasher memkv.Hasher[K], options ...Option) *Map[K, V] {
	conf := computeMapConfig(options)

	m := &Map[K, V]{
		index: chainhash.New[K, int32](hasher, chainhash.WithInitialCapacity(conf.initialCapacity)),
		conf:  conf,
	}
	if conf.initialCapacity > 0 {
		m.entries = make([]memkv.Entry[K, V], 0, conf.initialCapacity)
	}
	return m
}

// Get ...
func (m *Map[K, V]) Get(key K) (V, bool) {
	pos, ok := m.index.Get(key)
	if !ok {
		var empty V
		return empty, false
	}
	return m.entries[pos].Value, true
}

// Slot returns the value slot of key, inserts the zero value if not found.
// The pointer becomes invalid after the next mutating call
func (m *Map[K, V]) Slot(key K) *V {
	pos, ok := m.index.Get(key)
	if !ok {
		pos = int32(len(m.entries))
		m.entries = append(m.entries, memkv.Entry[K, V]{Key: key})
		m.index.Put(key, pos)
	}
	return &m.entries[pos].Value
}

// Put ...
func (m *Map[K, V]) Put(key K, value V) {
	*m.Slot(key) = value
}

// Contains ...
func (m *Map[K, V]) Contains(key K) bool {
	return m.index.Contains(key)
}

// Erase moves the last entry to the position of key
func (m *Map[K, V]) Erase(key K) bool {
	pos, ok := m.index.Get(key)
	if !ok {
		return false
	}
	m.index.Erase(key)

	last := int32(len(m.entries) - 1)
	if pos != last {
		m.entries[pos] = m.entries[last]
		m.index.Put(m.entries[pos].Key, pos)
	}

	m.entries[last] = memkv.Entry[K, V]{}
	m.entries = m.entries[:last]
	return true
}

// RandomKey returns a key chosen with equal probability, false when empty
func (m *Map[K, V]) RandomKey() (K, bool) {
	if len(m.entries) == 0 {
		var empty K
		return empty, false
	}
	return m.entries[m.conf.rand.Intn(len(m.entries))].Key, true
}

// Clear ...
func (m *Map[K, V]) Clear() {
	clear(m.entries)
	m.entries = m.entries[:0]
	m.index.Clear()
}

// Size ...
func (m *Map[K, V]) Size() int {
	return len(m.entries)
}

// Empty ...
func (m *Map[K, V]) Empty() bool {
	return len(m.entries) == 0
}

// Range calls fn in position order until fn returns false.
// fn MUST NOT modify the map
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	for _, e := range m.entries {
		if !fn(e.Key, e.Value) {
			return
		}
	}
}
