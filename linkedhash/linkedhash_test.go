package linkedhash

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/QuangTung97/memkv"
)

func newStringMap() *Map[string, int] {
	return New[string, int](memkv.StringHash)
}

func TestMap_Insertion_Order(t *testing.T) {
	m := newStringMap()

	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("a", 3)

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	assert.Equal(t, []memkv.Entry[string, int]{
		{Key: "a", Value: 3},
		{Key: "b", Value: 2},
	}, m.Entries())
	assert.Equal(t, 2, m.Size())
}

func TestMap_Erase_Then_Insert_Moves_To_Back(t *testing.T) {
	m := newStringMap()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)

	assert.Equal(t, true, m.Erase("a"))
	assert.Equal(t, false, m.Erase("a"))
	assert.Equal(t, []string{"b", "c"}, m.Keys())

	m.Put("a", 4)
	assert.Equal(t, []string{"b", "c", "a"}, m.Keys())

	v, ok := m.Get("a")
	assert.Equal(t, true, ok)
	assert.Equal(t, 4, v)
}

func TestMap_Slot(t *testing.T) {
	m := newStringMap()

	*m.Slot("x")++
	*m.Slot("y")++
	*m.Slot("x")++

	assert.Equal(t, []memkv.Entry[string, int]{
		{Key: "x", Value: 2},
		{Key: "y", Value: 1},
	}, m.Entries())
}

func TestMap_Front_Back(t *testing.T) {
	m := newStringMap()

	_, _, ok := m.Front()
	assert.Equal(t, false, ok)
	_, _, ok = m.Back()
	assert.Equal(t, false, ok)

	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)

	k, v, ok := m.Front()
	assert.Equal(t, true, ok)
	assert.Equal(t, "a", k)
	assert.Equal(t, 1, v)

	k, v, ok = m.Back()
	assert.Equal(t, true, ok)
	assert.Equal(t, "c", k)
	assert.Equal(t, 3, v)

	m.Erase("a")
	k, _, _ = m.Front()
	assert.Equal(t, "b", k)
}

func TestMap_Clear(t *testing.T) {
	m := newStringMap()
	m.Put("a", 1)
	m.Put("b", 2)

	m.Clear()
	assert.Equal(t, true, m.Empty())
	assert.Equal(t, []string{}, m.Keys())
	assert.Equal(t, false, m.Contains("a"))

	m.Put("c", 3)
	m.Put("a", 4)
	assert.Equal(t, []string{"c", "a"}, m.Keys())
}

func TestMap_Range(t *testing.T) {
	m := newStringMap()
	m.Put("c", 1)
	m.Put("a", 2)
	m.Put("b", 3)

	var keys []string
	m.Range(func(key string, value int) bool {
		keys = append(keys, key)
		return key != "a"
	})
	assert.Equal(t, []string{"c", "a"}, keys)
}

func TestMap_Many_Keys(t *testing.T) {
	m := New[int, int](memkv.IntHasher[int](), WithInitialCapacity(0))

	const num = 5000
	for i := num - 1; i >= 0; i-- {
		m.Put(i, i*2)
	}
	assert.Equal(t, num, m.Size())

	keys := m.Keys()
	for i, k := range keys {
		assert.Equal(t, num-1-i, k)
	}

	for i := 0; i < num; i++ {
		v, ok := m.Get(i)
		assert.Equal(t, true, ok)
		assert.Equal(t, i*2, v)
	}
}
