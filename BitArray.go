package DSA

import (
	"math/bits"
)

// NewBitArray that can hold at least size bits, all initially down.
func NewBitArray(size uint) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a fixed size array of bits. The zero value holds no bits.
// Copies share the same underlying memory.
type BitArray struct {
	bits []uint
}

// Len is the number of bits held, a multiple of bits.UintSize.
func (u BitArray) Len() uint {
	return uint(len(u.bits)) * bits.UintSize
}

func (u BitArray) Get(i uint) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Up(i uint) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i uint) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Count the bits that are up.
func (u BitArray) Count() (c uint) {
	for _, w := range u.bits {
		c += uint(bits.OnesCount(w))
	}
	return
}

// Reset puts every bit down.
func (u BitArray) Reset() {
	clear(u.bits)
}
