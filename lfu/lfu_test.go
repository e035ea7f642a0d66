package lfu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QuangTung97/memkv"
	"github.com/QuangTung97/memkv/internal/arena"
)

type cacheTest struct {
	cache    *Cache[int, string]
	listener *memkv.EvictionListenerMock[int, string]
}

func newCacheTest(t *testing.T, capacity int) *cacheTest {
	c := &cacheTest{
		listener: &memkv.EvictionListenerMock[int, string]{
			OnEvictFunc: func(key int, value string) {},
		},
	}

	cache, err := New[int, string](capacity, memkv.IntHasher[int](),
		WithEvictionListener[int, string](c.listener),
	)
	require.Equal(t, nil, err)
	c.cache = cache
	return c
}

func (c *cacheTest) evictedKeys() []int {
	var keys []int
	for _, call := range c.listener.OnEvictCalls() {
		keys = append(keys, call.Key)
	}
	return keys
}

func (c *cacheTest) freq(key int) int {
	f, _ := c.cache.Frequency(key)
	return f
}

// listKeys returns keys of the list of frequency f, from front to back
func (c *cacheTest) listKeys(f int) []int {
	list, ok := c.cache.freqLists.Get(f)
	if !ok {
		return nil
	}
	var keys []int
	c.cache.nodes.Walk(&list, func(_ arena.Index, n *lfuNode[int, string]) bool {
		keys = append(keys, n.key)
		return true
	})
	return keys
}

func TestCache_New(t *testing.T) {
	t.Run("zero capacity", func(t *testing.T) {
		c, err := New[int, string](0, memkv.IntHasher[int]())
		assert.Nil(t, c)
		assert.Equal(t, true, errors.Is(err, memkv.ErrInvalidCapacity))
		assert.Equal(t, "memkv: capacity must be greater than zero: lfu capacity=0", err.Error())
	})

	t.Run("nil hasher", func(t *testing.T) {
		_, err := New[int, string](2, nil)
		assert.Equal(t, memkv.ErrNilHasher, err)
	})

	t.Run("empty", func(t *testing.T) {
		c := newCacheTest(t, 2)
		_, ok := c.cache.MinFrequency()
		assert.Equal(t, false, ok)
		assert.Equal(t, true, c.cache.Empty())
		assert.Equal(t, 2, c.cache.Capacity())
	})
}

func TestCache_Tie_Break_Law(t *testing.T) {
	c := newCacheTest(t, 2)

	c.cache.Put(1, "A")
	c.cache.Put(2, "B")

	v, ok := c.cache.Get(1)
	assert.Equal(t, true, ok)
	assert.Equal(t, "A", v)

	c.cache.Put(3, "C")

	assert.Equal(t, true, c.cache.Contains(1))
	assert.Equal(t, false, c.cache.Contains(2))
	assert.Equal(t, true, c.cache.Contains(3))

	assert.Equal(t, 2, c.freq(1))
	assert.Equal(t, 1, c.freq(3))

	minFreq, ok := c.cache.MinFrequency()
	assert.Equal(t, true, ok)
	assert.Equal(t, 1, minFreq)

	assert.Equal(t, []int{2}, c.evictedKeys())
	assert.Equal(t, "B", c.listener.OnEvictCalls()[0].Value)
}

func TestCache_Evicts_Least_Recent_Among_Same_Frequency(t *testing.T) {
	c := newCacheTest(t, 3)
	c.cache.Put(1, "A")
	c.cache.Put(2, "B")
	c.cache.Put(3, "C")

	c.cache.Get(2)
	c.cache.Get(1)
	c.cache.Get(3)
	assert.Equal(t, []int{2, 1, 3}, c.listKeys(2))
	assert.Equal(t, []int(nil), c.listKeys(1))

	minFreq, _ := c.cache.MinFrequency()
	assert.Equal(t, 2, minFreq)

	c.cache.Put(4, "D")
	assert.Equal(t, []int{2}, c.evictedKeys())
	assert.Equal(t, []int{1, 3}, c.listKeys(2))
	assert.Equal(t, []int{4}, c.listKeys(1))

	minFreq, _ = c.cache.MinFrequency()
	assert.Equal(t, 1, minFreq)
}

func TestCache_Put_Existing_Increases_Frequency(t *testing.T) {
	c := newCacheTest(t, 2)
	c.cache.Put(1, "A")
	c.cache.Put(1, "AA")
	c.cache.Put(1, "AAA")

	assert.Equal(t, 3, c.freq(1))
	assert.Equal(t, 1, c.cache.Size())

	v, ok := c.cache.Peek(1)
	assert.Equal(t, true, ok)
	assert.Equal(t, "AAA", v)
	assert.Equal(t, 3, c.freq(1))

	minFreq, _ := c.cache.MinFrequency()
	assert.Equal(t, 3, minFreq)

	c.cache.Put(2, "B")
	c.cache.Put(3, "C")
	assert.Equal(t, []int{2}, c.evictedKeys())
}

func TestCache_Min_Freq_Bumped_When_List_Emptied(t *testing.T) {
	c := newCacheTest(t, 2)
	c.cache.Put(1, "A")
	c.cache.Put(2, "B")

	c.cache.Get(1)
	minFreq, _ := c.cache.MinFrequency()
	assert.Equal(t, 1, minFreq)

	c.cache.Get(2)
	minFreq, _ = c.cache.MinFrequency()
	assert.Equal(t, 2, minFreq)

	// list of frequency 1 is removed
	assert.Equal(t, false, c.cache.freqLists.Contains(1))
	assert.Equal(t, 1, c.cache.freqLists.Size())
}

func TestCache_Erase(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		c := newCacheTest(t, 2)
		assert.Equal(t, false, c.cache.Erase(1))
	})

	t.Run("recomputes min frequency", func(t *testing.T) {
		c := newCacheTest(t, 3)
		c.cache.Put(1, "A")
		c.cache.Put(2, "B")
		c.cache.Put(3, "C")

		c.cache.Get(2)
		c.cache.Get(2)
		c.cache.Get(3)
		c.cache.Get(3)
		c.cache.Get(3)

		assert.Equal(t, true, c.cache.Erase(1))
		minFreq, _ := c.cache.MinFrequency()
		assert.Equal(t, 3, minFreq)

		assert.Equal(t, true, c.cache.Erase(2))
		minFreq, _ = c.cache.MinFrequency()
		assert.Equal(t, 4, minFreq)

		assert.Equal(t, true, c.cache.Erase(3))
		_, ok := c.cache.MinFrequency()
		assert.Equal(t, false, ok)
		assert.Equal(t, 0, c.cache.freqLists.Size())
		assert.Equal(t, 0, len(c.listener.OnEvictCalls()))
	})

	t.Run("keeps min frequency when list not empty", func(t *testing.T) {
		c := newCacheTest(t, 3)
		c.cache.Put(1, "A")
		c.cache.Put(2, "B")

		assert.Equal(t, true, c.cache.Erase(1))
		minFreq, _ := c.cache.MinFrequency()
		assert.Equal(t, 1, minFreq)
		assert.Equal(t, []int{2}, c.listKeys(1))
	})
}

func TestCache_Clear(t *testing.T) {
	c := newCacheTest(t, 2)
	c.cache.Put(1, "A")
	c.cache.Get(1)

	c.cache.Clear()
	assert.Equal(t, true, c.cache.Empty())
	assert.Equal(t, false, c.cache.Contains(1))
	_, ok := c.cache.MinFrequency()
	assert.Equal(t, false, ok)

	c.cache.Put(1, "X")
	assert.Equal(t, 1, c.freq(1))
	assert.Equal(t, memkv.Stats{Hits: 1}, c.cache.Stats())
}

func TestCache_Stats(t *testing.T) {
	c := newCacheTest(t, 1)
	c.cache.Put(1, "A")
	c.cache.Get(1)
	c.cache.Get(2)
	c.cache.Put(2, "B")

	assert.Equal(t, memkv.Stats{
		Hits:      1,
		Misses:    1,
		Evictions: 1,
	}, c.cache.Stats())
	assert.Equal(t, []int{1}, c.evictedKeys())
}

func TestCache_High_Frequencies(t *testing.T) {
	c := newCacheTest(t, 2)
	c.cache.Put(1, "A")
	for i := 0; i < 1000; i++ {
		c.cache.Get(1)
	}
	assert.Equal(t, 1001, c.freq(1))
	assert.Equal(t, 1, c.cache.freqLists.Size())

	minFreq, _ := c.cache.MinFrequency()
	assert.Equal(t, 1001, minFreq)
}
