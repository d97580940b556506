package Maps

import (
	"math/bits"

	"github.com/Aldrin-Shanty/DSA"
)

const (
	// grow when size > len(buckets)*maxLoadNum/maxLoadDen.
	maxLoadNum, maxLoadDen = 3, 4
	minBuckets             = 8
)

type entry[K comparable, V any] struct {
	k    K
	v    V
	hash uint64
	next *entry[K, V]
}

// HashTable is a hash table with separate chaining. The number of buckets is
// a power of 2 and doubles once the load factor passes 0.75. Each entry
// caches its hash so resizing doesn't call HashF again.
// It isn't safe for concurrent use.
type HashTable[K comparable, V any] struct {
	buckets []*entry[K, V]
	size    uint
	HashF   func(K) uint64
}

// NewHashTable returns a HashTable that can hold about capacity pairs before
// growing.
func NewHashTable[K comparable, V any](capacity uint, hashF func(K) uint64) *HashTable[K, V] {
	return &HashTable[K, V]{buckets: make([]*entry[K, V], bucketsFor(capacity)), HashF: hashF}
}

// NewStringTable uses DSA.Hasher with the given seed.
func NewStringTable[V any](capacity uint, seed DSA.Hasher) *HashTable[string, V] {
	return NewHashTable[string, V](capacity, seed.HashString)
}

// NewIntTable uses DSA.Hasher with the given seed.
func NewIntTable[V any](capacity uint, seed DSA.Hasher) *HashTable[int, V] {
	return NewHashTable[int, V](capacity, seed.HashInt)
}

// bucketsFor the smallest power of 2 that holds n pairs under the load limit.
func bucketsFor(n uint) uint {
	need := (n*maxLoadDen + maxLoadNum - 1) / maxLoadNum
	if need <= minBuckets {
		return minBuckets
	}
	return 1 << bits.Len(need-1)
}

func (u *HashTable[K, V]) index(hash uint64) uint64 {
	return hash & uint64(len(u.buckets)-1)
}

// resize to n buckets, n must be a power of 2.
func (u *HashTable[K, V]) resize(n uint) {
	old := u.buckets
	u.buckets = make([]*entry[K, V], n)
	for _, head := range old {
		for e := head; e != nil; {
			next := e.next
			i := u.index(e.hash)
			e.next, u.buckets[i] = u.buckets[i], e
			e = next
		}
	}
}

func (u *HashTable[K, V]) find(k K, hash uint64) *entry[K, V] {
	for e := u.buckets[u.index(hash)]; e != nil; e = e.next {
		if e.hash == hash && e.k == k {
			return e
		}
	}
	return nil
}

// Put [Map.Put]
// Time: amortized O(1)
func (u *HashTable[K, V]) Put(k K, v V) (old V, replaced bool) {
	hash := u.HashF(k)
	if e := u.find(k, hash); e != nil {
		old, e.v = e.v, v
		return old, true
	}
	i := u.index(hash)
	u.buckets[i] = &entry[K, V]{k, v, hash, u.buckets[i]}
	u.size++
	if u.size*maxLoadDen > uint(len(u.buckets))*maxLoadNum {
		u.resize(uint(len(u.buckets)) << 1)
	}
	return
}

// Get [Map.Get]
func (u *HashTable[K, V]) Get(k K) (v V, ok bool) {
	if e := u.find(k, u.HashF(k)); e != nil {
		return e.v, true
	}
	return
}

// HasKey [Map.HasKey]
func (u *HashTable[K, V]) HasKey(k K) bool {
	return u.find(k, u.HashF(k)) != nil
}

// Remove [Map.Remove]
func (u *HashTable[K, V]) Remove(k K) bool {
	hash := u.HashF(k)
	for t := &u.buckets[u.index(hash)]; *t != nil; t = &(*t).next {
		if e := *t; e.hash == hash && e.k == k {
			*t = e.next
			u.size--
			return true
		}
	}
	return false
}

// Size [Map.Size]
func (u *HashTable[K, V]) Size() uint {
	return u.size
}

// Buckets is the current number of buckets.
func (u *HashTable[K, V]) Buckets() uint {
	return uint(len(u.buckets))
}

// LoadFactor is size over the number of buckets.
func (u *HashTable[K, V]) LoadFactor() float64 {
	return float64(u.size) / float64(len(u.buckets))
}

// Range [Map.Range]. Goes bucket by bucket.
func (u *HashTable[K, V]) Range(f func(K, V) bool) {
	for _, head := range u.buckets {
		for e := head; e != nil; e = e.next {
			if !f(e.k, e.v) {
				return
			}
		}
	}
}

// Clear [Map.Clear]. The buckets are kept.
func (u *HashTable[K, V]) Clear() {
	clear(u.buckets)
	u.size = 0
}

// Fit [Map.Fit]
func (u *HashTable[K, V]) Fit() {
	if n := bucketsFor(u.size); n < uint(len(u.buckets)) {
		u.resize(n)
	}
}
