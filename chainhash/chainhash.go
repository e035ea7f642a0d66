// Package chainhash implements a hash map using separate chaining.
// Chain nodes are stored in one slice and linked by index, a resize only relinks them.
package chainhash

import (
	"github.com/QuangTung97/memkv"
)

// noNode ends a chain, node indices start from 1
const noNode int32 = 0

type chainNode[K comparable, V any] struct {
	next  int32 // single linked list of a bucket, or of the free nodes
	key   K
	value V
}

// Map is a hash map where each bucket is a single linked chain of nodes.
// The number of buckets is always a power of two and is doubled when the
// load factor reaches 3/4
type Map[K comparable, V any] struct {
	hasher memkv.Hasher[K]

	buckets []int32 // head of chain of each bucket
	mask    uint64

	nodes []chainNode[K, V]
	free  int32
	size  int
}

var _ memkv.Map[string, int] = &Map[string, int]{}

// New creates an empty Map, panics if hasher is nil
func New[K comparable, V any](hasher memkv.Hasher[K], options ...Option) *Map[K, V] {
	if hasher == nil {
		panic(memkv.ErrNilHasher)
	}

	conf := computeMapConfig(options)
	capacity := memkv.RoundUpPowerOfTwo(conf.initialCapacity)

	return &Map[K, V]{
		hasher:  hasher,
		buckets: make([]int32, capacity),
		mask:    uint64(capacity - 1),
	}
}

func (m *Map[K, V]) at(i int32) *chainNode[K, V] {
	return &m.nodes[i-1]
}

func (m *Map[K, V]) bucketIndex(key K) uint64 {
	return m.hasher(key) & m.mask
}

func (m *Map[K, V]) allocNode(key K, next int32) int32 {
	n := chainNode[K, V]{
		next: next,
		key:  key,
	}

	if m.free != noNode {
		i := m.free
		m.free = m.at(i).next
		*m.at(i) = n
		return i
	}

	m.nodes = append(m.nodes, n)
	return int32(len(m.nodes))
}

func (m *Map[K, V]) releaseNode(i int32) {
	*m.at(i) = chainNode[K, V]{next: m.free}
	m.free = i
}

func (m *Map[K, V]) findNode(key K) int32 {
	for i := m.buckets[m.bucketIndex(key)]; i != noNode; i = m.at(i).next {
		if m.at(i).key == key {
			return i
		}
	}
	return noNode
}

func (m *Map[K, V]) needGrow() bool {
	return m.size*4 >= len(m.buckets)*3
}

// resize relinks every node into a new bucket array
func (m *Map[K, V]) resize(capacity int) {
	buckets := make([]int32, capacity)
	mask := uint64(capacity - 1)

	for _, head := range m.buckets {
		for i := head; i != noNode; {
			n := m.at(i)
			next := n.next

			b := m.hasher(n.key) & mask
			n.next = buckets[b]
			buckets[b] = i

			i = next
		}
	}

	m.buckets = buckets
	m.mask = mask
}

// Get ...
func (m *Map[K, V]) Get(key K) (V, bool) {
	i := m.findNode(key)
	if i == noNode {
		var empty V
		return empty, false
	}
	return m.at(i).value, true
}

// Slot returns the value slot of key, inserts the zero value if not found.
// The pointer becomes invalid after the next mutating call
func (m *Map[K, V]) Slot(key K) *V {
	i := m.findNode(key)
	if i != noNode {
		return &m.at(i).value
	}

	if m.needGrow() {
		m.resize(len(m.buckets) * 2)
	}

	b := m.bucketIndex(key)
	i = m.allocNode(key, m.buckets[b])
	m.buckets[b] = i
	m.size++

	return &m.at(i).value
}

// Put ...
func (m *Map[K, V]) Put(key K, value V) {
	*m.Slot(key) = value
}

// Contains ...
func (m *Map[K, V]) Contains(key K) bool {
	return m.findNode(key) != noNode
}

// Count returns the number of entries having key, always 0 or 1
func (m *Map[K, V]) Count(key K) int {
	count := 0
	for i := m.buckets[m.bucketIndex(key)]; i != noNode; i = m.at(i).next {
		if m.at(i).key == key {
			count++
		}
	}
	return count
}

// EraseCount removes every entry having key in its bucket, returns the number of removed entries
func (m *Map[K, V]) EraseCount(key K) int {
	b := m.bucketIndex(key)

	count := 0
	prev := noNode
	for i := m.buckets[b]; i != noNode; {
		next := m.at(i).next

		if m.at(i).key != key {
			prev = i
			i = next
			continue
		}

		if prev == noNode {
			m.buckets[b] = next
		} else {
			m.at(prev).next = next
		}
		m.releaseNode(i)
		count++

		i = next
	}

	m.size -= count
	return count
}

// Erase ...
func (m *Map[K, V]) Erase(key K) bool {
	return m.EraseCount(key) > 0
}

// Clear removes all entries, keeps the number of buckets
func (m *Map[K, V]) Clear() {
	clear(m.buckets)
	clear(m.nodes)
	m.nodes = m.nodes[:0]
	m.free = noNode
	m.size = 0
}

// Size ...
func (m *Map[K, V]) Size() int {
	return m.size
}

// Empty ...
func (m *Map[K, V]) Empty() bool {
	return m.size == 0
}

// Capacity returns the number of buckets
func (m *Map[K, V]) Capacity() int {
	return len(m.buckets)
}

// Range calls fn for every entry in bucket order until fn returns false.
// fn MUST NOT modify the map
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	for _, head := range m.buckets {
		for i := head; i != noNode; i = m.at(i).next {
			n := m.at(i)
			if !fn(n.key, n.value) {
				return
			}
		}
	}
}
