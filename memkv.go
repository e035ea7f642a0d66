package memkv

// Hasher computes the hash value of a key.
// Equal keys MUST have equal hashes. Only the low bits are used for bucket selection,
// so a hasher should mix all input bits into them.
type Hasher[K any] func(key K) uint64

// Entry is a key/value pair
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// Map is the common operation set of the hash indices
// implementations of this interface are NOT thread safe
type Map[K comparable, V any] interface {
	// Get returns the value of key, the bool result is false when not found
	Get(key K) (V, bool)

	// Put inserts or updates the value of key
	Put(key K, value V)

	// Slot returns a pointer to the value of key, inserting the zero value when not found.
	// The pointer is only valid until the next mutating call
	Slot(key K) *V

	Contains(key K) bool

	// Erase removes key, returns false if key is not found
	Erase(key K) bool

	Clear()
	Size() int
	Empty() bool

	// Range calls fn for every entry until fn returns false
	Range(fn func(key K, value V) bool)
}

// Cache is the common operation set of the eviction caches
// implementations of this interface are NOT thread safe
type Cache[K comparable, V any] interface {
	// Get returns the value of key and marks key as accessed
	Get(key K) (V, bool)

	// Put inserts or updates the value of key, may evict another key when the cache is full
	Put(key K, value V)

	// Peek returns the value of key without marking key as accessed
	Peek(key K) (V, bool)

	Contains(key K) bool
	Erase(key K) bool
	Clear()
	Size() int
	Empty() bool

	// Capacity is the max number of entries, fixed at construction
	Capacity() int

	Stats() Stats
}

//go:generate moq -rm -out memkv_mocks.go . EvictionListener

// EvictionListener is notified after an entry has been evicted because of capacity.
// It is NOT called by Erase or Clear
type EvictionListener[K comparable, V any] interface {
	OnEvict(key K, value V)
}

// EvictFunc is a function implementing EvictionListener
type EvictFunc[K comparable, V any] func(key K, value V)

// OnEvict calls fn
func (fn EvictFunc[K, V]) OnEvict(key K, value V) {
	fn(key, value)
}

// Stats counts cache accesses
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRatio returns hits / (hits + misses), zero when there were no lookups
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
