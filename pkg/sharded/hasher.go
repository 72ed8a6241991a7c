package sharded

import (
	"github.com/zeebo/xxh3"
)

// Keyer is the set of integer key types which can be routed without
// an external hash function (the value itself is the hash).
type Keyer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Hasher maps a key to an unsigned 64-bit hash used for shard routing.
// It must be deterministic across calls; it does not need to be
// cryptographically strong, but a poor one will skew shard load.
type Hasher[K any] func(key K) uint64

// HashString hashes string keys with xxh3.
func HashString(key string) uint64 {
	return xxh3.HashString(key)
}

// HashBytes hashes byte-slice keys with xxh3.
func HashBytes(key []byte) uint64 {
	return xxh3.Hash(key)
}

// HashKeyer routes integer keys by their own value.
func HashKeyer[K Keyer](key K) uint64 {
	return uint64(key)
}
