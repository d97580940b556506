package RangeQuery

import "golang.org/x/exp/constraints"

// SegmentTree over n elements and an associative combine. It's the
// iterative bottom-up layout: leaves at t[n:2n], node i combines t[2i] and
// t[2i+1]. combine needn't be commutative, Query keeps the element order.
type SegmentTree[T any] struct {
	t       []T
	n       int
	combine func(a, b T) T
}

// NewSegmentTree holds a copy of data.
// Time: O(n)
func NewSegmentTree[T any](data []T, combine func(a, b T) T) *SegmentTree[T] {
	n := len(data)
	t := make([]T, 2*n)
	copy(t[n:], data)
	for i := n - 1; i > 0; i-- {
		t[i] = combine(t[2*i], t[2*i+1])
	}
	return &SegmentTree[T]{t, n, combine}
}

// NewSum answers range sums.
func NewSum[T Number](data []T) *SegmentTree[T] {
	return NewSegmentTree(data, func(a, b T) T { return a + b })
}

// NewMin answers range minimums.
func NewMin[T constraints.Ordered](data []T) *SegmentTree[T] {
	return NewSegmentTree(data, func(a, b T) T { return min(a, b) })
}

// NewMax answers range maximums.
func NewMax[T constraints.Ordered](data []T) *SegmentTree[T] {
	return NewSegmentTree(data, func(a, b T) T { return max(a, b) })
}

// Len is the number of elements.
func (u *SegmentTree[T]) Len() int {
	return u.n
}

// Get element i.
func (u *SegmentTree[T]) Get(i int) T {
	return u.t[u.n+i]
}

// Update element i to v.
// Time: O(log n)
func (u *SegmentTree[T]) Update(i int, v T) {
	if i < 0 || i >= u.n {
		panic("RangeQuery: index out of range")
	}
	i += u.n
	for u.t[i] = v; i > 1; i >>= 1 {
		u.t[i>>1] = u.combine(u.t[i&^1], u.t[i|1])
	}
}

// Query combines the elements [l, r) in order. ok is false when the range
// is empty.
// Time: O(log n)
func (u *SegmentTree[T]) Query(l, r int) (res T, ok bool) {
	if l < 0 || r > u.n {
		panic("RangeQuery: range out of bounds")
	}
	var left, right T
	hasL, hasR := false, false
	for l, r = l+u.n, r+u.n; l < r; l, r = l>>1, r>>1 {
		if l&1 == 1 {
			if hasL {
				left = u.combine(left, u.t[l])
			} else {
				left, hasL = u.t[l], true
			}
			l++
		}
		if r&1 == 1 {
			r--
			if hasR {
				right = u.combine(u.t[r], right)
			} else {
				right, hasR = u.t[r], true
			}
		}
	}
	switch {
	case hasL && hasR:
		return u.combine(left, right), true
	case hasL:
		return left, true
	case hasR:
		return right, true
	}
	return
}
