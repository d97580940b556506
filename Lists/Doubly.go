package Lists

import (
	"golang.org/x/exp/constraints"
)

// DNode is an element of a Doubly list.
type DNode[T any] struct {
	V          T
	prev, next *DNode[T]
}

// Next node, nil at the back.
func (n *DNode[T]) Next() *DNode[T] {
	return n.next
}

// Prev node, nil at the front.
func (n *DNode[T]) Prev() *DNode[T] {
	return n.prev
}

// Doubly is a doubly linked list.
// The zero value is an empty list.
type Doubly[T constraints.Ordered] struct {
	head, tail *DNode[T]
	sz         int
}

func (u *Doubly[T]) Front() *DNode[T] {
	return u.head
}

func (u *Doubly[T]) Back() *DNode[T] {
	return u.tail
}

func (u *Doubly[T]) Len() int {
	return u.sz
}

// PushFront v.
func (u *Doubly[T]) PushFront(v T) *DNode[T] {
	n := &DNode[T]{V: v, next: u.head}
	if u.head == nil {
		u.tail = n
	} else {
		u.head.prev = n
	}
	u.head = n
	u.sz++
	return n
}

// PushBack v.
func (u *Doubly[T]) PushBack(v T) *DNode[T] {
	if u.tail == nil {
		return u.PushFront(v)
	}
	return u.InsertAfter(u.tail, v)
}

// InsertAfter puts v right after at, which must be a node of u.
func (u *Doubly[T]) InsertAfter(at *DNode[T], v T) *DNode[T] {
	n := &DNode[T]{V: v, prev: at, next: at.next}
	if at.next == nil {
		u.tail = n
	} else {
		at.next.prev = n
	}
	at.next = n
	u.sz++
	return n
}

// Remove n, which must be a node of u.
func (u *Doubly[T]) Remove(n *DNode[T]) {
	if n.prev == nil {
		u.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		u.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
	u.sz--
}

// DeleteAt removes the element at index i, walking from whichever end is
// closer.
// Time: O(min(i, n-i))
func (u *Doubly[T]) DeleteAt(i int) (v T, err error) {
	if i < 0 || i >= u.sz {
		return v, ErrIndexOutOfRange
	}
	var n *DNode[T]
	if i < u.sz/2 {
		for n = u.head; i > 0; i-- {
			n = n.next
		}
	} else {
		for n = u.tail; i < u.sz-1; i++ {
			n = n.prev
		}
	}
	u.Remove(n)
	return n.V, nil
}

// Search returns the first node holding v, or nil.
func (u *Doubly[T]) Search(v T) *DNode[T] {
	for n := u.head; n != nil; n = n.next {
		if n.V == v {
			return n
		}
	}
	return nil
}

// Reverse the list in place.
func (u *Doubly[T]) Reverse() {
	for n := u.head; n != nil; n = n.prev {
		n.prev, n.next = n.next, n.prev
	}
	u.head, u.tail = u.tail, u.head
}

// Sort the list in ascending order. It's an insertion sort over the links,
// stable and in place.
// Time: O(n^2)
func (u *Doubly[T]) Sort() {
	if u.head == nil {
		return
	}
	for cur := u.head.next; cur != nil; {
		next := cur.next
		if cur.V < cur.prev.V {
			at := cur.prev
			for at != nil && cur.V < at.V {
				at = at.prev
			}
			u.Remove(cur)
			u.sz++
			if at == nil {
				cur.next, u.head.prev, u.head = u.head, cur, cur
			} else {
				cur.prev, cur.next = at, at.next
				at.next.prev, at.next = cur, cur
			}
		}
		cur = next
	}
}

// Values from front to back.
func (u *Doubly[T]) Values() []T {
	s := make([]T, 0, u.sz)
	for n := u.head; n != nil; n = n.next {
		s = append(s, n.V)
	}
	return s
}
