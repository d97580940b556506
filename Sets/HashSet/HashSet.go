package HashSet

import (
	"math/bits"

	"github.com/Aldrin-Shanty/DSA"
)

// HashSet is an open addressing set with linear probing. Occupied slots are
// tracked in usedBkt and every slot caches the hash of its element, so
// growing never calls HashF. Remove shifts the rest of the probe run back,
// there are no tombstones. The table is kept at most 3/4 full.
type HashSet[E comparable] struct {
	bkt     []E
	usedBkt DSA.BitArray
	hashes  []uint64
	HashF   func(E) uint64
	sz      uint
}

// New HashSet that holds size elements without growing.
func New[E comparable](size uint, hashF func(E) uint64) *HashSet[E] {
	bktLen := uint(1) << bits.Len(size*4/3+1)
	return &HashSet[E]{bkt: make([]E, bktLen), usedBkt: DSA.NewBitArray(bktLen), hashes: make([]uint64, bktLen), HashF: hashF}
}

// NewStrings uses DSA.Hasher with the given seed.
func NewStrings(size uint, seed DSA.Hasher) *HashSet[string] {
	return New(size, seed.HashString)
}

// NewInts uses DSA.Hasher with the given seed.
func NewInts(size uint, seed DSA.Hasher) *HashSet[int] {
	return New(size, seed.HashInt)
}

func (u *HashSet[E]) mod(hash uint64) uint {
	return uint(hash) & uint(len(u.bkt)-1)
}

func (u *HashSet[E]) next(i uint) uint {
	return (i + 1) & uint(len(u.bkt)-1)
}

// find the slot holding e, or the free slot ending its probe run.
func (u *HashSet[E]) find(e E, hash uint64) (uint, bool) {
	i := u.mod(hash)
	for u.usedBkt.Get(i) {
		if u.hashes[i] == hash && u.bkt[i] == e {
			return i, true
		}
		i = u.next(i)
	}
	return i, false
}

func (u *HashSet[E]) fill(i uint, e E, hash uint64) {
	u.bkt[i], u.hashes[i] = e, hash
	u.usedBkt.Up(i)
}

func (u *HashSet[E]) expand() {
	newSize := uint(len(u.bkt)) << 1
	M := HashSet[E]{bkt: make([]E, newSize), usedBkt: DSA.NewBitArray(newSize), hashes: make([]uint64, newSize)}
	for i := range uint(len(u.bkt)) {
		if u.usedBkt.Get(i) {
			j := M.mod(u.hashes[i])
			for M.usedBkt.Get(j) {
				j = M.next(j)
			}
			M.fill(j, u.bkt[i], u.hashes[i])
		}
	}
	u.bkt, u.usedBkt, u.hashes = M.bkt, M.usedBkt, M.hashes
}

// Size of the set.
func (u *HashSet[E]) Size() uint {
	return u.sz
}

// Put e in the set. Returns false when e is already present.
func (u *HashSet[E]) Put(e E) bool {
	hash := u.HashF(e)
	i, ok := u.find(e, hash)
	if ok {
		return false
	}
	if (u.sz+1)*4 > uint(len(u.bkt))*3 {
		u.expand()
		i, _ = u.find(e, hash)
	}
	u.fill(i, e, hash)
	u.sz++
	return true
}

// Has e in the set.
func (u *HashSet[E]) Has(e E) bool {
	_, ok := u.find(e, u.HashF(e))
	return ok
}

// Remove e from the set. Returns false when e isn't present.
func (u *HashSet[E]) Remove(e E) bool {
	i, ok := u.find(e, u.HashF(e))
	if ok {
		u.removeAt(i)
	}
	return ok
}

// removeAt empties slot i and moves back every later element of the run
// whose home slot isn't cyclically in (i, j].
func (u *HashSet[E]) removeAt(i uint) {
	var zero E
	u.sz--
	for j := u.next(i); u.usedBkt.Get(j); j = u.next(j) {
		k := u.mod(u.hashes[j])
		if i <= j && i < k && k <= j || i > j && (i < k || k <= j) {
			continue
		}
		u.bkt[i], u.hashes[i] = u.bkt[j], u.hashes[j]
		i = j
	}
	u.bkt[i] = zero
	u.usedBkt.Down(i)
}

// Take removes and returns an arbitrary element. ok is false when the set is
// empty.
func (u *HashSet[E]) Take() (e E, ok bool) {
	for i := range uint(len(u.bkt)) {
		if u.usedBkt.Get(i) {
			e = u.bkt[i]
			u.removeAt(i)
			return e, true
		}
	}
	return
}

// Range calls f on every element in slot order until f returns false.
func (u *HashSet[E]) Range(f func(E) bool) {
	for i := range uint(len(u.bkt)) {
		if u.usedBkt.Get(i) && !f(u.bkt[i]) {
			return
		}
	}
}

// Clear the set, keeping its capacity.
func (u *HashSet[E]) Clear() {
	clear(u.bkt)
	u.usedBkt.Reset()
	u.sz = 0
}
