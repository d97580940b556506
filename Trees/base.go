package Trees

import (
	"github.com/Aldrin-Shanty/DSA/Queues"
	"golang.org/x/exp/constraints"
)

// base holds what AVLTree and BSTree have in common: lookups and traversals
// over nodes that carry no parent pointer.
type base[T constraints.Ordered] struct {
	root   nodePtr[T] //the root of the tree. It should be nilPtr initially.
	nilPtr nodePtr[T]
	sz     uint
}

func makeBase[T constraints.Ordered]() base[T] {
	z := newNilPtr[T]()
	return base[T]{root: z, nilPtr: z}
}

// Size [Tree.Size]
func (u *base[T]) Size() uint {
	return u.sz
}

// Clear [Tree.Clear]
func (u *base[T]) Clear() {
	u.root, u.sz = u.nilPtr, 0
}

func (u *base[T]) find(v T) nodePtr[T] {
	for cur := u.root; cur != u.nilPtr; {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return cur
		}
	}
	return u.nilPtr
}

// Search [Tree.Search]
// Time: O(D); Space: O(1)
func (u *base[T]) Search(v T) (T, bool) {
	n := u.find(v)
	return n.v, n != u.nilPtr
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *base[T]) Has(v T) bool {
	return u.find(v) != u.nilPtr
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *base[T]) Minimum() (T, bool) {
	if cur := u.root; cur == u.nilPtr {
		return cur.v, false
	} else {
		for cur.l != u.nilPtr {
			cur = cur.l
		}
		return cur.v, true
	}
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *base[T]) Maximum() (T, bool) {
	if cur := u.root; cur == u.nilPtr {
		return cur.v, false
	} else {
		for cur.r != u.nilPtr {
			cur = cur.r
		}
		return cur.v, true
	}
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *base[T]) Predecessor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *base[T]) Successor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

// InOrder [Tree.InOrder]
// Time: O(n); Space: O(D)
func (u *base[T]) InOrder(f func(T) bool) {
	var st []nodePtr[T]
	for cur := u.root; ; cur = cur.r {
		for ; cur != u.nilPtr; cur = cur.l {
			st = append(st, cur)
		}
		if len(st) == 0 {
			return
		}
		cur, st = st[len(st)-1], st[:len(st)-1]
		if !f(cur.v) {
			return
		}
	}
}

// PreOrder [Tree.PreOrder]
// Time: O(n); Space: O(D)
func (u *base[T]) PreOrder(f func(T) bool) {
	if u.root == u.nilPtr {
		return
	}
	st := []nodePtr[T]{u.root}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(cur.v) {
			return
		}
		if cur.r != u.nilPtr {
			st = append(st, cur.r)
		}
		if cur.l != u.nilPtr {
			st = append(st, cur.l)
		}
	}
}

// PostOrder [Tree.PostOrder]
// Time: O(n); Space: O(D)
func (u *base[T]) PostOrder(f func(T) bool) {
	var st []nodePtr[T]
	last := u.nilPtr
	for cur := u.root; cur != u.nilPtr || len(st) > 0; {
		if cur != u.nilPtr {
			st = append(st, cur)
			cur = cur.l
			continue
		}
		top := st[len(st)-1]
		if top.r != u.nilPtr && top.r != last {
			cur = top.r
			continue
		}
		if !f(top.v) {
			return
		}
		last = top
		st = st[:len(st)-1]
	}
}

// Height [Tree.Height]. Computed level by level so degenerate trees don't
// recurse deeply.
// Time: O(n)
func (u *base[T]) Height() uint {
	if u.root == u.nilPtr {
		return 0
	}
	q := Queues.MakeArrayQueue[nodePtr[T]](16)
	q.Push(u.root)
	var h uint
	for !q.Empty() {
		h++
		for range q.Size() {
			n, _ := q.Pop()
			if n.l != u.nilPtr {
				q.Push(n.l)
			}
			if n.r != u.nilPtr {
				q.Push(n.r)
			}
		}
	}
	return h
}

// ordered reports whether the in-order traversal is strictly increasing and
// has exactly sz elements.
func (u *base[T]) ordered() bool {
	var cnt uint
	ok := true
	var prev T
	u.InOrder(func(v T) bool {
		if cnt > 0 && v <= prev {
			ok = false
		}
		prev = v
		cnt++
		return ok
	})
	return ok && cnt == u.sz
}

// nilIntact reports whether nilPtr still looks like the sentinel.
func (u *base[T]) nilIntact() bool {
	z := u.nilPtr
	return z.l == z && z.r == z && z.h == 0
}
