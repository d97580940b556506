// Package Probabilistic holds structures whose guarantees depend on hashing
// or randomness: a Bloom filter and a skip list.
package Probabilistic

import (
	"errors"
	"math"
	"sync"

	"github.com/Aldrin-Shanty/DSA"
)

const (
	// ln2Squared is ln(2) squared, used in the optimal bit-array size formula.
	ln2Squared = math.Ln2 * math.Ln2

	// seeds of the two base hashes.
	seed1, seed2 DSA.Hasher = 0x9e3779b97f4a7c15, 0xc2b2ae3d27d4eb4f
)

var (
	// ErrZeroN is returned when n (expected element count) is zero.
	ErrZeroN = errors.New("bloom: n must be positive")

	// ErrInvalidFP is returned when fp is not in the open interval (0, 1).
	ErrInvalidFP = errors.New("bloom: fp must be in the open interval (0, 1)")

	// ErrZeroSize is returned when the bit count or the hash count is zero.
	ErrZeroSize = errors.New("bloom: m and k must be positive")
)

// BloomFilter answers "definitely not added" or "possibly added". It is safe
// for concurrent use.
//
// The k bit positions of an element come from two base hashes by double
// hashing (Kirsch and Mitzenmacher, 2006): pos(i) = h1 + i*h2 mod m.
type BloomFilter struct {
	mu    sync.RWMutex
	bits  DSA.BitArray
	m     uint // Total bits.
	k     uint // Number of hash functions.
	count uint // Number of Add calls.
}

// NewBloomFilter creates a filter of m bits using k hash functions.
func NewBloomFilter(m, k uint) (*BloomFilter, error) {
	if m == 0 || k == 0 {
		return nil, ErrZeroSize
	}
	return &BloomFilter{bits: DSA.NewBitArray(m), m: m, k: k}, nil
}

// NewWithEstimates creates a filter sized for n expected elements at a
// false-positive rate of fp.
func NewWithEstimates(n uint, fp float64) (*BloomFilter, error) {
	if n == 0 {
		return nil, ErrZeroN
	}
	if fp <= 0 || fp >= 1 {
		return nil, ErrInvalidFP
	}
	m := optimalM(n, fp)
	return NewBloomFilter(m, optimalK(m, n))
}

// optimalM computes m = ceil(-n * ln(fp) / ln(2)^2).
func optimalM(n uint, fp float64) uint {
	return uint(math.Ceil(-float64(n) * math.Log(fp) / ln2Squared))
}

// optimalK computes k = round(m/n * ln(2)), at least 1.
func optimalK(m, n uint) uint {
	return max(1, uint(math.Round(float64(m)/float64(n)*math.Ln2)))
}

// hashKernel derives the two base hashes. h2 is forced odd so the step
// through the bit array is coprime with any even m.
func hashKernel(data []byte) (h1, h2 uint64) {
	return seed1.HashBytes(data), seed2.HashBytes(data) | 1
}

func hashKernelString(s string) (h1, h2 uint64) {
	return seed1.HashString(s), seed2.HashString(s) | 1
}

func (f *BloomFilter) set(h1, h2 uint64) {
	f.mu.Lock()
	for i := range uint64(f.k) {
		f.bits.Up(uint((h1 + i*h2) % uint64(f.m)))
	}
	f.count++
	f.mu.Unlock()
}

func (f *BloomFilter) test(h1, h2 uint64) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for i := range uint64(f.k) {
		if !f.bits.Get(uint((h1 + i*h2) % uint64(f.m))) {
			return false
		}
	}
	return true
}

// Add data to the filter.
func (f *BloomFilter) Add(data []byte) {
	f.set(hashKernel(data))
}

// AddString is Add without converting s to bytes.
func (f *BloomFilter) AddString(s string) {
	f.set(hashKernelString(s))
}

// Test reports whether data is possibly in the filter. False means it was
// never added.
func (f *BloomFilter) Test(data []byte) bool {
	return f.test(hashKernel(data))
}

// TestString is Test without converting s to bytes.
func (f *BloomFilter) TestString(s string) bool {
	return f.test(hashKernelString(s))
}

// Cap is the number of bits m.
func (f *BloomFilter) Cap() uint {
	return f.m
}

// K is the number of hash functions.
func (f *BloomFilter) K() uint {
	return f.k
}

// Count is the number of Add calls, duplicates included.
func (f *BloomFilter) Count() uint {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.count
}

// FillRatio is the fraction of bits that are up.
func (f *BloomFilter) FillRatio() float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return float64(f.bits.Count()) / float64(f.m)
}

// FalsePositiveRate expected after Count additions, (1 - e^(-kn/m))^k.
func (f *BloomFilter) FalsePositiveRate() float64 {
	n := float64(f.Count())
	k, m := float64(f.k), float64(f.m)
	return math.Pow(1-math.Exp(-k*n/m), k)
}

// Reset the filter without reallocating the bits.
func (f *BloomFilter) Reset() {
	f.mu.Lock()
	f.bits.Reset()
	f.count = 0
	f.mu.Unlock()
}
