package sets

import (
	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
	"hash/maphash"
)

// HashFunc hashes a set element. Equal values must hash equally. Only the low
// 32 bits take part in choosing a slot.
type HashFunc[T any] func(T) uint64

// StringHash hashes strings with xxHash.
func StringHash(s string) uint64 {
	return xxhash.Sum64String(s)
}

// IntHash hashes an integer to itself, so consecutive values land in
// consecutive probe positions (spaced by the factor 3 of the probe).
func IntHash[T constraints.Integer](v T) uint64 {
	return uint64(v)
}

// comparableHash returns a maphash based hash under a fresh random seed.
func comparableHash[T comparable]() HashFunc[T] {
	seed := maphash.MakeSeed()
	return func(v T) uint64 {
		return maphash.Comparable(seed, v)
	}
}

// spread computes the probe start abs(v*3) before the modulo. The product
// wraps at the width of T. The magnitude of the most negative product is
// taken as unsigned, so the result is never negative.
func spread[T constraints.Integer](v T) uint64 {
	h := int64(v * 3)
	if h < 0 {
		return uint64(-h)
	}
	return uint64(h)
}
