// Package Lists holds singly and doubly linked lists.
package Lists

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// SNode is an element of a Singly list.
type SNode[T any] struct {
	V    T
	next *SNode[T]
}

// Next node, nil at the end of the list.
func (n *SNode[T]) Next() *SNode[T] {
	return n.next
}

// Singly is a singly linked list with a tail pointer for O(1) PushBack.
// The zero value is an empty list.
type Singly[T constraints.Ordered] struct {
	head, tail *SNode[T]
	sz         int
}

// Front node, nil if empty.
func (u *Singly[T]) Front() *SNode[T] {
	return u.head
}

// Len of the list.
func (u *Singly[T]) Len() int {
	return u.sz
}

// PushFront v.
func (u *Singly[T]) PushFront(v T) *SNode[T] {
	n := &SNode[T]{v, u.head}
	u.head = n
	if u.tail == nil {
		u.tail = n
	}
	u.sz++
	return n
}

// PushBack v.
func (u *Singly[T]) PushBack(v T) *SNode[T] {
	n := &SNode[T]{V: v}
	if u.tail == nil {
		u.head = n
	} else {
		u.tail.next = n
	}
	u.tail = n
	u.sz++
	return n
}

// InsertAfter puts v right after at, which must be a node of u.
func (u *Singly[T]) InsertAfter(at *SNode[T], v T) *SNode[T] {
	n := &SNode[T]{v, at.next}
	at.next = n
	if u.tail == at {
		u.tail = n
	}
	u.sz++
	return n
}

// DeleteAt removes the element at index i, counting from 0 at the front.
// Time: O(i)
func (u *Singly[T]) DeleteAt(i int) (v T, err error) {
	if i < 0 || i >= u.sz {
		return v, ErrIndexOutOfRange
	}
	t := &u.head
	var prev *SNode[T]
	for ; i > 0; i-- {
		prev = *t
		t = &(*t).next
	}
	n := *t
	*t = n.next
	if u.tail == n {
		u.tail = prev
	}
	u.sz--
	return n.V, nil
}

// Search returns the first node holding v, or nil.
func (u *Singly[T]) Search(v T) *SNode[T] {
	for n := u.head; n != nil; n = n.next {
		if n.V == v {
			return n
		}
	}
	return nil
}

// Reverse the list in place.
func (u *Singly[T]) Reverse() {
	var prev *SNode[T]
	u.tail = u.head
	for cur := u.head; cur != nil; {
		cur.next, prev, cur = prev, cur, cur.next
	}
	u.head = prev
}

// Sort the list in ascending order with a stable merge sort. Nodes are
// relinked, not copied.
// Time: O(n log n); Space: O(log n)
func (u *Singly[T]) Sort() {
	u.head = mergeSort(u.head, u.sz)
	u.tail = u.head
	for u.tail != nil && u.tail.next != nil {
		u.tail = u.tail.next
	}
}

// mergeSort the first n nodes starting at h, which must be the whole rest
// of the list.
func mergeSort[T constraints.Ordered](h *SNode[T], n int) *SNode[T] {
	if n <= 1 {
		return h
	}
	mid := h
	for range n/2 - 1 {
		mid = mid.next
	}
	r := mid.next
	mid.next = nil
	a, b := mergeSort(h, n/2), mergeSort(r, n-n/2)
	var dummy SNode[T]
	t := &dummy
	for a != nil && b != nil {
		if b.V < a.V {
			t.next, b = b, b.next
		} else {
			t.next, a = a, a.next
		}
		t = t.next
	}
	if a != nil {
		t.next = a
	} else {
		t.next = b
	}
	return dummy.next
}

// Values from front to back.
func (u *Singly[T]) Values() []T {
	s := make([]T, 0, u.sz)
	for n := u.head; n != nil; n = n.next {
		s = append(s, n.V)
	}
	return s
}
