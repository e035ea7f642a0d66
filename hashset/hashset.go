// Package hashset implements sets on top of the hash maps of this module
package hashset

import (
	"github.com/QuangTung97/memkv"
	"github.com/QuangTung97/memkv/linkedhash"
	"github.com/QuangTung97/memkv/oahash"
)

// Set is an unordered set using open addressing
type Set[K comparable] struct {
	m *oahash.Map[K, struct{}]
}

// New creates an empty Set, panics if hasher is nil
func New[K comparable](hasher memkv.Hasher[K], options ...oahash.Option) *Set[K] {
	return &Set[K]{
		m: oahash.New[K, struct{}](hasher, options...),
	}
}

// Insert returns true if key was not in the set
func (s *Set[K]) Insert(key K) bool {
	if s.m.Contains(key) {
		return false
	}
	s.m.Put(key, struct{}{})
	return true
}

// Contains ...
func (s *Set[K]) Contains(key K) bool {
	return s.m.Contains(key)
}

// Erase ...
func (s *Set[K]) Erase(key K) bool {
	return s.m.Erase(key)
}

// Clear ...
func (s *Set[K]) Clear() {
	s.m.Clear()
}

// Size ...
func (s *Set[K]) Size() int {
	return s.m.Size()
}

// Empty ...
func (s *Set[K]) Empty() bool {
	return s.m.Empty()
}

// Range calls fn for every key until fn returns false
func (s *Set[K]) Range(fn func(key K) bool) {
	s.m.Range(func(key K, _ struct{}) bool {
		return fn(key)
	})
}

// LinkedSet is a set that remembers the insertion order of its keys
type LinkedSet[K comparable] struct {
	m *linkedhash.Map[K, struct{}]
}

// NewLinked creates an empty LinkedSet, panics if hasher is nil
func NewLinked[K comparable](hasher memkv.Hasher[K], options ...linkedhash.Option) *LinkedSet[K] {
	return &LinkedSet[K]{
		m: linkedhash.New[K, struct{}](hasher, options...),
	}
}

// Insert returns true if key was not in the set, inserting an existing key keeps its position
func (s *LinkedSet[K]) Insert(key K) bool {
	if s.m.Contains(key) {
		return false
	}
	s.m.Put(key, struct{}{})
	return true
}

// Contains ...
func (s *LinkedSet[K]) Contains(key K) bool {
	return s.m.Contains(key)
}

// Erase ...
func (s *LinkedSet[K]) Erase(key K) bool {
	return s.m.Erase(key)
}

// Clear ...
func (s *LinkedSet[K]) Clear() {
	s.m.Clear()
}

// Size ...
func (s *LinkedSet[K]) Size() int {
	return s.m.Size()
}

// Empty ...
func (s *LinkedSet[K]) Empty() bool {
	return s.m.Empty()
}

// Keys returns keys in insertion order
func (s *LinkedSet[K]) Keys() []K {
	return s.m.Keys()
}

// Range calls fn in insertion order until fn returns false
func (s *LinkedSet[K]) Range(fn func(key K) bool) {
	s.m.Range(func(key K, _ struct{}) bool {
		return fn(key)
	})
}
