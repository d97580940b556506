// Package RangeQuery holds trees answering aggregate queries over ranges of
// an array under point updates.
package RangeQuery

import "golang.org/x/exp/constraints"

// Number is what a FenwickTree can sum.
type Number interface {
	constraints.Integer | constraints.Float
}

// FenwickTree (binary indexed tree) over n elements, indexed from 0.
// Ranges are half-open. Indexes out of range panic like slice indexes do.
type FenwickTree[T Number] struct {
	t []T // 1-indexed, t[0] unused.
}

// NewFenwickTree holds a copy of data.
// Time: O(n)
func NewFenwickTree[T Number](data []T) *FenwickTree[T] {
	t := make([]T, len(data)+1)
	copy(t[1:], data)
	for i := 1; i < len(t); i++ {
		if j := i + i&-i; j < len(t) {
			t[j] += t[i]
		}
	}
	return &FenwickTree[T]{t}
}

// Len is the number of elements.
func (u *FenwickTree[T]) Len() int {
	return len(u.t) - 1
}

// Add d to element i.
// Time: O(log n)
func (u *FenwickTree[T]) Add(i int, d T) {
	if i < 0 || i >= u.Len() {
		panic("RangeQuery: index out of range")
	}
	for i++; i < len(u.t); i += i & -i {
		u.t[i] += d
	}
}

// PrefixSum of the elements [0, i).
// Time: O(log n)
func (u *FenwickTree[T]) PrefixSum(i int) (s T) {
	for ; i > 0; i -= i & -i {
		s += u.t[i]
	}
	return
}

// RangeSum of the elements [l, r).
func (u *FenwickTree[T]) RangeSum(l, r int) T {
	return u.PrefixSum(r) - u.PrefixSum(l)
}

// Get element i.
func (u *FenwickTree[T]) Get(i int) T {
	return u.RangeSum(i, i+1)
}

// Set element i to v.
func (u *FenwickTree[T]) Set(i int, v T) {
	u.Add(i, v-u.Get(i))
}
