package Heaps

import (
	"golang.org/x/exp/constraints"
)

// FibNode is a handle to an element of a FibHeap. It stays valid until the
// element is extracted or deleted.
type FibNode[K constraints.Ordered, V any] struct {
	key                        K
	Value                      V
	parent, child, left, right *FibNode[K, V]
	degree                     int
	mark                       bool
}

// Key of the node.
func (n *FibNode[K, V]) Key() K {
	return n.key
}

// FibHeap is a min Fibonacci heap. Roots and siblings are kept in circular
// doubly linked lists.
// The zero value is an empty heap.
type FibHeap[K constraints.Ordered, V any] struct {
	min *FibNode[K, V]
	sz  int
}

// NewFibHeap returns an empty FibHeap.
func NewFibHeap[K constraints.Ordered, V any]() *FibHeap[K, V] {
	return &FibHeap[K, V]{}
}

// splice the circular lists containing a and b.
func splice[K constraints.Ordered, V any](a, b *FibNode[K, V]) {
	ar, bl := a.right, b.left
	a.right, b.left = b, a
	bl.right, ar.left = ar, bl
}

// unlink x from its list, leaving it a list of its own.
func unlink[K constraints.Ordered, V any](x *FibNode[K, V]) {
	x.left.right, x.right.left = x.right, x.left
	x.left, x.right = x, x
}

func (u *FibHeap[K, V]) addRoot(x *FibNode[K, V]) {
	x.parent = nil
	if u.min == nil {
		u.min = x
		return
	}
	splice(u.min, x)
	if x.key < u.min.key {
		u.min = x
	}
}

// Len is the number of elements.
func (u *FibHeap[K, V]) Len() int {
	return u.sz
}

// Insert k with value v.
// Time: O(1)
func (u *FibHeap[K, V]) Insert(k K, v V) *FibNode[K, V] {
	x := &FibNode[K, V]{key: k, Value: v}
	x.left, x.right = x, x
	u.addRoot(x)
	u.sz++
	return x
}

// Min returns the node with the smallest key.
// Time: O(1)
func (u *FibHeap[K, V]) Min() (*FibNode[K, V], error) {
	if u.min == nil {
		return nil, ErrEmptyHeap
	}
	return u.min, nil
}

// ExtractMin removes and returns the node with the smallest key.
// Time: amortized O(log n)
func (u *FibHeap[K, V]) ExtractMin() (*FibNode[K, V], error) {
	z := u.min
	if z == nil {
		return nil, ErrEmptyHeap
	}
	if c := z.child; c != nil {
		for x := c; ; {
			x.parent = nil
			if x = x.right; x == c {
				break
			}
		}
		splice(z, c)
		z.child = nil
	}
	if z.right == z {
		u.min = nil
	} else {
		u.min = z.right
		unlink(z)
		u.consolidate()
	}
	z.degree, z.mark = 0, false
	u.sz--
	return z, nil
}

// consolidate links roots of equal degree until every degree is unique.
func (u *FibHeap[K, V]) consolidate() {
	var roots []*FibNode[K, V]
	for x := u.min; ; {
		roots = append(roots, x)
		if x = x.right; x == u.min {
			break
		}
	}
	var a []*FibNode[K, V]
	for _, x := range roots {
		unlink(x)
		d := x.degree
		for d < len(a) && a[d] != nil {
			y := a[d]
			if y.key < x.key {
				x, y = y, x
			}
			u.link(y, x)
			a[d] = nil
			d++
		}
		for d >= len(a) {
			a = append(a, nil)
		}
		a[d] = x
	}
	u.min = nil
	for _, x := range a {
		if x != nil {
			u.addRoot(x)
		}
	}
}

// link root y below root x.
func (u *FibHeap[K, V]) link(y, x *FibNode[K, V]) {
	y.parent, y.mark = x, false
	if x.child == nil {
		x.child = y
	} else {
		splice(x.child, y)
	}
	x.degree++
}

// DecreaseKey of x to k. x must belong to u.
// Time: amortized O(1)
func (u *FibHeap[K, V]) DecreaseKey(x *FibNode[K, V], k K) error {
	if k > x.key {
		return ErrKeyIncrease
	}
	x.key = k
	if y := x.parent; y != nil && x.key < y.key {
		u.cut(x, y)
		u.cascadingCut(y)
	}
	if x.key < u.min.key {
		u.min = x
	}
	return nil
}

// cut x from its parent y and make it a root.
func (u *FibHeap[K, V]) cut(x, y *FibNode[K, V]) {
	if x.right == x {
		y.child = nil
	} else if y.child == x {
		y.child = x.right
	}
	unlink(x)
	y.degree--
	x.mark = false
	u.addRoot(x)
}

func (u *FibHeap[K, V]) cascadingCut(y *FibNode[K, V]) {
	for z := y.parent; z != nil; y, z = z, z.parent {
		if !y.mark {
			y.mark = true
			return
		}
		u.cut(y, z)
	}
}

// Delete x from the heap. x must belong to u.
// Time: amortized O(log n)
func (u *FibHeap[K, V]) Delete(x *FibNode[K, V]) {
	if y := x.parent; y != nil {
		u.cut(x, y)
		u.cascadingCut(y)
	}
	u.min = x
	u.ExtractMin()
}

// Merge moves every element of other into u. other is empty afterwards.
// Time: O(1)
func (u *FibHeap[K, V]) Merge(other *FibHeap[K, V]) {
	if other.min == nil {
		return
	}
	if u.min == nil {
		u.min = other.min
	} else {
		splice(u.min, other.min)
		if other.min.key < u.min.key {
			u.min = other.min
		}
	}
	u.sz += other.sz
	other.min, other.sz = nil, 0
}
