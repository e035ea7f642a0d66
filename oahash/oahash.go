// Package oahash implements a hash map using open addressing with linear probing.
// Deleted slots are kept as tombstones so that probe sequences stay connected.
package oahash

import (
	"fmt"

	"github.com/QuangTung97/memkv"
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotActive
	slotDeleted
)

type slot[K comparable, V any] struct {
	key   K
	value V
	state slotState
}

// Map is a hash map with linear probing.
// The number of active slots never exceeds half of the capacity,
// and active + deleted slots are kept below half of the capacity on insert,
// so every probe sequence ends at an empty slot.
type Map[K comparable, V any] struct {
	hasher memkv.Hasher[K]

	table      []slot[K, V]
	mask       uint64
	size       int
	tombstones int

	errorLogger func(err error)
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
		hasher:      hasher,
		table:       make([]slot[K, V], capacity),
		mask:        uint64(capacity - 1),
		errorLogger: conf.errorLogger,
	}
}

func (m *Map[K, V]) hashIndex(key K) uint64 {
	return m.hasher(key) & m.mask
}

// probe returns the slot of key when found, otherwise the empty slot ending the probe sequence.
// completed = false when the whole table was visited without reaching an empty slot
func (m *Map[K, V]) probe(key K) (index uint64, found bool, completed bool) {
	i := m.hashIndex(key)
	for step := 0; step < len(m.table); step++ {
		s := &m.table[i]
		switch s.state {
		case slotEmpty:
			return i, false, true
		case slotActive:
			if s.key == key {
				return i, true, true
			}
		default:
		}
		i = (i + 1) & m.mask
	}
	return 0, false, false
}

func (m *Map[K, V]) find(key K) (uint64, bool) {
	for {
		index, found, completed := m.probe(key)
		if completed {
			return index, found
		}

		m.errorLogger(fmt.Errorf(
			"%w: capacity=%d size=%d tombstones=%d",
			ErrProbeLimitExceeded, len(m.table), m.size, m.tombstones,
		))
		m.rehash(len(m.table))
	}
}

// rehash moves every active slot to a new table, dropping all tombstones
func (m *Map[K, V]) rehash(capacity int) {
	capacity = memkv.RoundUpPowerOfTwo(capacity)

	old := m.table
	m.table = make([]slot[K, V], capacity)
	m.mask = uint64(capacity - 1)
	m.tombstones = 0

	for k := range old {
		s := &old[k]
		if s.state != slotActive {
			continue
		}

		i := m.hashIndex(s.key)
		for m.table[i].state != slotEmpty {
			i = (i + 1) & m.mask
		}
		m.table[i] = *s
	}
}

func (m *Map[K, V]) reserve() {
	half := len(m.table) / 2
	if m.size >= half {
		m.rehash(len(m.table) * 2)
		return
	}
	if m.size+m.tombstones >= half {
		m.rehash(len(m.table))
	}
}

// insert puts key into the first non-active slot of its probe sequence,
// key MUST NOT be in the table
func (m *Map[K, V]) insert(key K) uint64 {
	m.reserve()

	i := m.hashIndex(key)
	for m.table[i].state == slotActive {
		i = (i + 1) & m.mask
	}

	s := &m.table[i]
	if s.state == slotDeleted {
		m.tombstones--
	}

	var empty V
	s.key = key
	s.value = empty
	s.state = slotActive
	m.size++

	return i
}

// Get ...
func (m *Map[K, V]) Get(key K) (V, bool) {
	index, found := m.find(key)
	if !found {
		var empty V
		return empty, false
	}
	return m.table[index].value, true
}

// Slot returns the value slot of key, inserts the zero value if not found.
// The pointer becomes invalid after the next mutating call
func (m *Map[K, V]) Slot(key K) *V {
	index, found := m.find(key)
	if !found {
		index = m.insert(key)
	}
	return &m.table[index].value
}

// Put ...
func (m *Map[K, V]) Put(key K, value V) {
	*m.Slot(key) = value
}

// Contains ...
func (m *Map[K, V]) Contains(key K) bool {
	_, found := m.find(key)
	return found
}

// Erase marks the slot of key as deleted
func (m *Map[K, V]) Erase(key K) bool {
	index, found := m.find(key)
	if !found {
		return false
	}

	m.table[index] = slot[K, V]{state: slotDeleted}
	m.size--
	m.tombstones++
	return true
}

// Clear removes all entries, keeps the capacity
func (m *Map[K, V]) Clear() {
	clear(m.table)
	m.size = 0
	m.tombstones = 0
}

// Size ...
func (m *Map[K, V]) Size() int {
	return m.size
}

// Empty ...
func (m *Map[K, V]) Empty() bool {
	return m.size == 0
}

// Capacity returns the number of slots
func (m *Map[K, V]) Capacity() int {
	return len(m.table)
}

// Range calls fn for every entry in slot order until fn returns false.
// fn MUST NOT modify the map
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	for k := range m.table {
		s := &m.table[k]
		if s.state != slotActive {
			continue
		}
		if !fn(s.key, s.value) {
			return
		}
	}
}
