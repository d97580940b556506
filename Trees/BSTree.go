package Trees

import (
	"golang.org/x/exp/constraints"
)

// BSTree is an unbalanced binary search tree with no repeated values.
// D is O(n) in the worst case, for example when the values are inserted in
// sorted order, so every operation here is iterative.
type BSTree[T constraints.Ordered] struct {
	base[T]
}

// MakeBSTree returns an empty BSTree.
func MakeBSTree[T constraints.Ordered]() *BSTree[T] {
	return &BSTree[T]{makeBase[T]()}
}

// link returns the pointer to the link that holds v, or to the nilPtr link
// where v would be inserted.
func (u *BSTree[T]) link(v T) *nodePtr[T] {
	t := &u.root
	for *t != u.nilPtr {
		if v < (*t).v {
			t = &(*t).l
		} else if v > (*t).v {
			t = &(*t).r
		} else {
			break
		}
	}
	return t
}

// Insert [Tree.Insert]. Duplicates are rejected.
// Time: O(D)
func (u *BSTree[T]) Insert(v T) bool {
	t := u.link(v)
	if *t != u.nilPtr {
		return false
	}
	*t = &node[T]{v, u.nilPtr, u.nilPtr, 0}
	u.sz++
	return true
}

// Delete [Tree.Delete]. A node with two children is replaced by its
// successor.
// Time: O(D)
func (u *BSTree[T]) Delete(v T) bool {
	t := u.link(v)
	cur := *t
	if cur == u.nilPtr {
		return false
	}
	if cur.l == u.nilPtr {
		*t = cur.r
	} else if cur.r == u.nilPtr {
		*t = cur.l
	} else {
		s := &cur.r
		for (*s).l != u.nilPtr {
			s = &(*s).l
		}
		cur.v = (*s).v
		*s = (*s).r
	}
	u.sz--
	return true
}

// Corrupt [Tree.Corrupt]. Only the ordering and the size can be broken.
func (u *BSTree[T]) Corrupt() bool {
	return !u.nilIntact() || !u.ordered()
}
