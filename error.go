package memkv

import "errors"

// ErrInvalidCapacity returned when constructing a cache with capacity <= 0
var ErrInvalidCapacity = errors.New("memkv: capacity must be greater than zero")

// ErrNilHasher when a nil Hasher is passed to a constructor
var ErrNilHasher = errors.New("memkv: hasher must not be nil")
