package DSA

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hasher is a seed for xxhash. Different seeds give independent looking
// hash functions over the same input, which is what Bloom filters and hash
// tables built on top of it need. The zero value is a valid seed.
type Hasher uint64

// fmix64 is the murmur3 finalizer. It spreads the seed over all output bits.
func fmix64(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

// HashBytes hashes the given byte slice.
func (u Hasher) HashBytes(b []byte) uint64 {
	return fmix64(xxhash.Sum64(b) ^ uint64(u))
}

// HashString hashes a string without copying it.
func (u Hasher) HashString(s string) uint64 {
	return fmix64(xxhash.Sum64String(s) ^ uint64(u))
}

// HashInt hashes the little endian bytes of v.
func (u Hasher) HashInt(v int) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return u.HashBytes(buf[:])
}
