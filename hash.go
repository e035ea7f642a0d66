package memkv

import (
	"encoding/binary"
	"math/bits"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"golang.org/x/exp/constraints"
)

// StringHash hashes string keys using murmur3
func StringHash(key string) uint64 {
	return murmur3.Sum64([]byte(key))
}

// XXStringHash hashes string keys using xxhash, does not allocate
func XXStringHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// IntHasher returns a Hasher for integer keys.
// Integers are mixed with murmur3 because the indices only look at the low bits of a hash
func IntHasher[T constraints.Integer]() Hasher[T] {
	return func(key T) uint64 {
		var data [8]byte
		binary.LittleEndian.PutUint64(data[:], uint64(key))
		return murmur3.Sum64(data[:])
	}
}

// Key constraints for keys computing their own hash
type Key interface {
	comparable
	Hash() uint64
}

// KeyHasher returns a Hasher calling the Hash method of the key
func KeyHasher[K Key]() Hasher[K] {
	return func(key K) uint64 {
		return key.Hash()
	}
}

// RoundUpPowerOfTwo returns the smallest power of two >= n, and 1 for n <= 1
func RoundUpPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
