// Package Heaps holds priority queues: an array backed BinaryHeap and a
// FibHeap with handles for decrease-key.
package Heaps

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	ErrEmptyHeap   = errors.New("heap is empty")
	ErrKeyIncrease = errors.New("new key is greater than the current key")
)

// BinaryHeap is a heap in a slice. The element at the top is the one for
// which less holds against every other element.
// The zero value is meaningless, use New, NewMin or NewMax.
type BinaryHeap[T any] struct {
	s    []T
	less func(a, b T) bool
}

// New returns an empty BinaryHeap ordered by less.
func New[T any](less func(a, b T) bool) *BinaryHeap[T] {
	return &BinaryHeap[T]{less: less}
}

// NewMin returns an empty min-heap.
func NewMin[T constraints.Ordered]() *BinaryHeap[T] {
	return New(func(a, b T) bool { return a < b })
}

// NewMax returns an empty max-heap.
func NewMax[T constraints.Ordered]() *BinaryHeap[T] {
	return New(func(a, b T) bool { return a > b })
}

// Heapify builds a heap out of items in place, items is owned by the heap
// afterwards.
// Time: O(n)
func Heapify[T any](items []T, less func(a, b T) bool) *BinaryHeap[T] {
	u := &BinaryHeap[T]{items, less}
	for i := len(items)/2 - 1; i >= 0; i-- {
		u.down(i)
	}
	return u
}

func (u *BinaryHeap[T]) up(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !u.less(u.s[i], u.s[p]) {
			return
		}
		u.s[i], u.s[p] = u.s[p], u.s[i]
		i = p
	}
}

// down sifts s[i] down. Returns whether it moved.
func (u *BinaryHeap[T]) down(i int) bool {
	i0, n := i, len(u.s)
	for {
		c := 2*i + 1
		if c >= n {
			break
		}
		if r := c + 1; r < n && u.less(u.s[r], u.s[c]) {
			c = r
		}
		if !u.less(u.s[c], u.s[i]) {
			break
		}
		u.s[i], u.s[c] = u.s[c], u.s[i]
		i = c
	}
	return i > i0
}

// Push v.
// Time: O(log n)
func (u *BinaryHeap[T]) Push(v T) {
	u.s = append(u.s, v)
	u.up(len(u.s) - 1)
}

// Peek the top element.
func (u *BinaryHeap[T]) Peek() (v T, err error) {
	if len(u.s) == 0 {
		return v, ErrEmptyHeap
	}
	return u.s[0], nil
}

// Pop the top element.
// Time: O(log n)
func (u *BinaryHeap[T]) Pop() (v T, err error) {
	if len(u.s) == 0 {
		return v, ErrEmptyHeap
	}
	return u.removeAt(0), nil
}

func (u *BinaryHeap[T]) removeAt(i int) T {
	v, last := u.s[i], len(u.s)-1
	u.s[i] = u.s[last]
	var zero T
	u.s[last] = zero
	u.s = u.s[:last]
	if i < last && !u.down(i) {
		u.up(i)
	}
	return v
}

// Remove one element equivalent to v, meaning neither is less than the
// other. Returns false if there's none.
// Time: O(n)
func (u *BinaryHeap[T]) Remove(v T) bool {
	for i, w := range u.s {
		if !u.less(v, w) && !u.less(w, v) {
			u.removeAt(i)
			return true
		}
	}
	return false
}

// Len is the number of elements.
func (u *BinaryHeap[T]) Len() int {
	return len(u.s)
}

// Empty heap.
func (u *BinaryHeap[T]) Empty() bool {
	return len(u.s) == 0
}

// Values in heap order. The slice shouldn't be modified.
func (u *BinaryHeap[T]) Values() []T {
	return u.s
}
