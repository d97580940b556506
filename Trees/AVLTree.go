package Trees

import (
	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree with no repeated values. It maintains
// balance through rotations by keeping the heights of the two subtrees of
// every node within 1 of each other.
// The height of the tree is less than 1.44*log2(n+2), so D is O(log n).
// Each node stores its height in a uint8, which is more than enough for any
// tree that fits in memory.
type AVLTree[T constraints.Ordered] struct {
	base[T]
}

// MakeAVLTree returns an empty AVLTree.
// AVLTree shouldn't be created directly using struct literal.
func MakeAVLTree[T constraints.Ordered]() *AVLTree[T] {
	return &AVLTree[T]{makeBase[T]()}
}

// BuildAVLTree builds an AVLTree from the sorted slice recursively. This is
// faster than repeatedly calling Insert. The slice must be sorted in
// ascending order with no repeated elements, otherwise it panics with
// InvalidSliceError.
// Time: O(n).
func BuildAVLTree[T constraints.Ordered](sli []T) *AVLTree[T] {
	u := MakeAVLTree[T]()
	z := u.nilPtr
	var build func([]T) nodePtr[T]
	build = func(s []T) nodePtr[T] {
		if len(s) == 0 {
			return z
		}
		mid := len(s) >> 1
		l, r := build(s[0:mid]), build(s[mid+1:])
		if (l != z && !(l.v < s[mid])) || (r != z && !(s[mid] < r.v)) {
			panic(InvalidSliceError{l.v, s[mid], r.v})
		}
		n := &node[T]{s[mid], l, r, 0}
		fixHeight(n)
		return n
	}
	u.root, u.sz = build(sli), uint(len(sli))
	return u
}

// rebalance the subtree rooting at *curPtr after one of its children
// changed height by at most 1.
func (u *AVLTree[T]) rebalance(curPtr *nodePtr[T]) {
	cur := *curPtr
	fixHeight(cur)
	if b := balanceOf(cur); b > 1 {
		if balanceOf(cur.l) < 0 {
			rotateLeft(&cur.l)
		}
		rotateRight(curPtr)
	} else if b < -1 {
		if balanceOf(cur.r) > 0 {
			rotateRight(&cur.r)
		}
		rotateLeft(curPtr)
	}
}

// insert the value v to the subtree rooting at cur recursively. cur is
// passed by reference. Returns false when v is already in u.
func (u *AVLTree[T]) insert(curPtr *nodePtr[T], v T) bool {
	cur := *curPtr
	if cur == u.nilPtr {
		*curPtr = &node[T]{v, u.nilPtr, u.nilPtr, 1}
		return true
	}
	var inserted bool
	if v < cur.v {
		inserted = u.insert(&cur.l, v)
	} else if v > cur.v {
		inserted = u.insert(&cur.r, v)
	} else {
		return false
	}
	if inserted {
		u.rebalance(curPtr)
	}
	return inserted
}

// Insert [Tree.Insert]. Recursive. Duplicates are rejected.
// Time: O(log n)
func (u *AVLTree[T]) Insert(v T) bool {
	if u.insert(&u.root, v) {
		u.sz++
		return true
	}
	return false
}

// removeMin detaches the minimum of the subtree rooting at *curPtr and
// returns it.
func (u *AVLTree[T]) removeMin(curPtr *nodePtr[T]) nodePtr[T] {
	cur := *curPtr
	if cur.l == u.nilPtr {
		*curPtr = cur.r
		return cur
	}
	m := u.removeMin(&cur.l)
	u.rebalance(curPtr)
	return m
}

// remove v from the subtree rooting at cur recursively. cur is passed by
// reference. Returns false if v doesn't exist in u.
func (u *AVLTree[T]) remove(curPtr *nodePtr[T], v T) bool {
	cur := *curPtr
	if cur == u.nilPtr {
		return false
	}
	if v < cur.v {
		if !u.remove(&cur.l, v) {
			return false
		}
	} else if v > cur.v {
		if !u.remove(&cur.r, v) {
			return false
		}
	} else {
		if cur.l == u.nilPtr {
			*curPtr = cur.r
			return true
		} else if cur.r == u.nilPtr {
			*curPtr = cur.l
			return true
		}
		s := u.removeMin(&cur.r)
		s.l, s.r = cur.l, cur.r
		*curPtr = s
	}
	u.rebalance(curPtr)
	return true
}

// Delete [Tree.Delete]. Recursive.
// Time: O(log n)
func (u *AVLTree[T]) Delete(v T) bool {
	if u.remove(&u.root, v) {
		u.sz--
		return true
	}
	return false
}

// Corrupt [Tree.Corrupt]. Checks the ordering, the stored heights and that
// every balance factor is in [-1, 1]. Recursive.
func (u *AVLTree[T]) Corrupt() bool {
	if !u.nilIntact() || !u.ordered() {
		return true
	}
	var check func(nodePtr[T]) bool
	check = func(n nodePtr[T]) bool {
		if n == u.nilPtr {
			return true
		}
		if !check(n.l) || !check(n.r) {
			return false
		}
		if b := balanceOf(n); b < -1 || b > 1 {
			return false
		}
		return n.h == max(n.l.h, n.r.h)+1
	}
	return !check(u.root)
}
