package Trees

import (
	"math/bits"
	"strconv"

	"github.com/Aldrin-Shanty/DSA/Queues"
	"golang.org/x/exp/constraints"
)

// Color of a node in a RBTree.
type Color byte

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	}
	return "Color(" + strconv.Itoa(int(c)) + ")"
}

// A node in the RBTree. l and r are owned by the node, p is a back reference.
type rbNode[T any] struct {
	v       T
	c       Color
	l, r, p *rbNode[T]
}

// RBTree is a red-black tree. Duplicates are allowed: on insert an element
// equal to an existing one is placed in the right subtree of it, so the
// in-order traversal stays non-decreasing. Search and Delete descend the
// same way and stop at the first equal element, which means Delete removes
// exactly the element Search would have found.
// The tree holds a root pointer and a nilPtr that every leaf and the root's
// parent point to. nilPtr is black and is never written after MakeRBTree.
// The height of the tree is at most 2*log2(n+1).
type RBTree[T constraints.Ordered] struct {
	root, nilPtr *rbNode[T]
	sz           uint
}

// MakeRBTree returns an empty RBTree.
// RBTree shouldn't be created directly using struct literal.
func MakeRBTree[T constraints.Ordered]() *RBTree[T] {
	z := &rbNode[T]{c: Black}
	z.l, z.r, z.p = z, z, z
	return &RBTree[T]{root: z, nilPtr: z}
}

// Size [Tree.Size]
// Time: O(1)
func (u *RBTree[T]) Size() uint {
	return u.sz
}

// Clear [Tree.Clear]
func (u *RBTree[T]) Clear() {
	u.root, u.sz = u.nilPtr, 0
}

// search for v in the subtree rooted at from. Returns nilPtr if not found.
func (u *RBTree[T]) search(from *rbNode[T], v T) *rbNode[T] {
	for cur := from; cur != u.nilPtr; {
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
// Time: O(log n)
func (u *RBTree[T]) Search(v T) (T, bool) {
	n := u.search(u.root, v)
	return n.v, n != u.nilPtr
}

// Has [Tree.Has]
// Time: O(log n)
func (u *RBTree[T]) Has(v T) bool {
	return u.search(u.root, v) != u.nilPtr
}

func (u *RBTree[T]) minimum(n *rbNode[T]) *rbNode[T] {
	for n.l != u.nilPtr {
		n = n.l
	}
	return n
}

func (u *RBTree[T]) maximum(n *rbNode[T]) *rbNode[T] {
	for n.r != u.nilPtr {
		n = n.r
	}
	return n
}

// Minimum [Tree.Minimum]
func (u *RBTree[T]) Minimum() (T, bool) {
	if u.root == u.nilPtr {
		return u.nilPtr.v, false
	}
	return u.minimum(u.root).v, true
}

// Maximum [Tree.Maximum]
func (u *RBTree[T]) Maximum() (T, bool) {
	if u.root == u.nilPtr {
		return u.nilPtr.v, false
	}
	return u.maximum(u.root).v, true
}

// Predecessor [Tree.Predecessor]
// Time: O(log n); Space: O(1)
func (u *RBTree[T]) Predecessor(v T) (T, bool) {
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
// Time: O(log n); Space: O(1)
func (u *RBTree[T]) Successor(v T) (T, bool) {
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

// rotateLeft around x. x.r must not be nilPtr.
// Time: O(1)
func (u *RBTree[T]) rotateLeft(x *rbNode[T]) {
	y := x.r
	x.r = y.l
	if y.l != u.nilPtr {
		y.l.p = x
	}
	y.p = x.p
	if x.p == u.nilPtr {
		u.root = y
	} else if x == x.p.l {
		x.p.l = y
	} else {
		x.p.r = y
	}
	y.l = x
	x.p = y
}

// rotateRight around x. x.l must not be nilPtr.
// Time: O(1)
func (u *RBTree[T]) rotateRight(x *rbNode[T]) {
	y := x.l
	x.l = y.r
	if y.r != u.nilPtr {
		y.r.p = x
	}
	y.p = x.p
	if x.p == u.nilPtr {
		u.root = y
	} else if x == x.p.r {
		x.p.r = y
	} else {
		x.p.l = y
	}
	y.r = x
	x.p = y
}

// Insert [Tree.Insert]. Always returns true.
// Time: O(log n)
func (u *RBTree[T]) Insert(v T) bool {
	p := u.nilPtr
	for cur := u.root; cur != u.nilPtr; {
		p = cur
		if v < cur.v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	n := &rbNode[T]{v: v, c: Red, l: u.nilPtr, r: u.nilPtr, p: p}
	u.sz++
	if p == u.nilPtr {
		n.c = Black
		u.root = n
		return true
	} else if v < p.v {
		p.l = n
	} else {
		p.r = n
	}
	u.insertFixup(n)
	return true
}

// insertFixup restores the red-black properties after n was attached red.
// The loop runs while n and its parent are both red; the parent is then
// never the root, so the grandparent is a real node.
func (u *RBTree[T]) insertFixup(n *rbNode[T]) {
	for n.p.c == Red {
		if g := n.p.p; n.p == g.l {
			if y := g.r; y.c == Red {
				n.p.c, y.c, g.c = Black, Black, Red
				n = g
			} else {
				if n == n.p.r {
					n = n.p
					u.rotateLeft(n)
				}
				n.p.c, g.c = Black, Red
				u.rotateRight(g)
			}
		} else {
			if y := g.l; y.c == Red {
				n.p.c, y.c, g.c = Black, Black, Red
				n = g
			} else {
				if n == n.p.l {
					n = n.p
					u.rotateRight(n)
				}
				n.p.c, g.c = Black, Red
				u.rotateLeft(g)
			}
		}
	}
	u.root.c = Black
}

// transplant replaces the subtree rooted at a with the one rooted at b in
// a's parent. b's parent link is only written when b is a real node.
func (u *RBTree[T]) transplant(a, b *rbNode[T]) {
	if a.p == u.nilPtr {
		u.root = b
	} else if a == a.p.l {
		a.p.l = b
	} else {
		a.p.r = b
	}
	if b != u.nilPtr {
		b.p = a.p
	}
}

// Delete [Tree.Delete]
// Time: O(log n)
func (u *RBTree[T]) Delete(v T) bool {
	z := u.search(u.root, v)
	if z == u.nilPtr {
		return false
	}
	u.remove(z)
	u.sz--
	return true
}

// remove z from the tree. x is the node that moves into the position of the
// physically removed node and xp its parent; xp is tracked separately since
// x may be nilPtr, whose parent link is never written.
func (u *RBTree[T]) remove(z *rbNode[T]) {
	removed := z.c
	var x, xp *rbNode[T]
	if z.l == u.nilPtr {
		x, xp = z.r, z.p
		u.transplant(z, z.r)
	} else if z.r == u.nilPtr {
		x, xp = z.l, z.p
		u.transplant(z, z.l)
	} else {
		y := u.minimum(z.r)
		removed = y.c
		x = y.r
		if y.p == z {
			xp = y
		} else {
			xp = y.p
			u.transplant(y, y.r)
			y.r = z.r
			y.r.p = y
		}
		u.transplant(z, y)
		y.l = z.l
		y.l.p = y
		y.c = z.c
	}
	z.l, z.r, z.p = nil, nil, nil
	if removed == Black {
		u.deleteFixup(x, xp)
	}
}

// deleteFixup restores the black height after a black node was removed
// above x. x carries an extra black until it reaches a red node or the root.
func (u *RBTree[T]) deleteFixup(x, xp *rbNode[T]) {
	for x != u.root && x.c == Black {
		if x == xp.l {
			w := xp.r
			if w.c == Red {
				w.c, xp.c = Black, Red
				u.rotateLeft(xp)
				w = xp.r
			}
			if w.l.c == Black && w.r.c == Black {
				w.c = Red
				x, xp = xp, xp.p
			} else {
				if w.r.c == Black {
					w.l.c, w.c = Black, Red
					u.rotateRight(w)
					w = xp.r
				}
				w.c, xp.c, w.r.c = xp.c, Black, Black
				u.rotateLeft(xp)
				x = u.root
			}
		} else {
			w := xp.l
			if w.c == Red {
				w.c, xp.c = Black, Red
				u.rotateRight(xp)
				w = xp.l
			}
			if w.l.c == Black && w.r.c == Black {
				w.c = Red
				x, xp = xp, xp.p
			} else {
				if w.l.c == Black {
					w.r.c, w.c = Black, Red
					u.rotateLeft(w)
					w = xp.l
				}
				w.c, xp.c, w.l.c = xp.c, Black, Black
				u.rotateRight(xp)
				x = u.root
			}
		}
	}
	if x != u.nilPtr {
		x.c = Black
	}
}

// stack returns an empty slice large enough for any root to leaf path.
func (u *RBTree[T]) stack() []*rbNode[T] {
	return make([]*rbNode[T], 0, 2*bits.Len(u.sz)+1)
}

// InOrder [Tree.InOrder]
// Time: O(n); Space: O(log n)
func (u *RBTree[T]) InOrder(f func(T) bool) {
	st := u.stack()
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
// Time: O(n); Space: O(log n)
func (u *RBTree[T]) PreOrder(f func(T) bool) {
	if u.root == u.nilPtr {
		return
	}
	st := append(u.stack(), u.root)
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
// Time: O(n); Space: O(log n)
func (u *RBTree[T]) PostOrder(f func(T) bool) {
	st, last := u.stack(), u.nilPtr
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

type rbDepth[T any] struct {
	n *rbNode[T]
	d int
}

// Walk calls f on every element in pre-order together with its color and
// depth (root at 0), until f returns false. It exists for rendering.
func (u *RBTree[T]) Walk(f func(v T, c Color, depth int) bool) {
	if u.root == u.nilPtr {
		return
	}
	st := []rbDepth[T]{{u.root, 0}}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(top.n.v, top.n.c, top.d) {
			return
		}
		if top.n.r != u.nilPtr {
			st = append(st, rbDepth[T]{top.n.r, top.d + 1})
		}
		if top.n.l != u.nilPtr {
			st = append(st, rbDepth[T]{top.n.l, top.d + 1})
		}
	}
}

// Height [Tree.Height]. Computed level by level.
// Time: O(n)
func (u *RBTree[T]) Height() uint {
	if u.root == u.nilPtr {
		return 0
	}
	q := Queues.MakeArrayQueue[*rbNode[T]](1 << (bits.Len(u.sz) - 1))
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

// BlackHeight is the number of black nodes on the path from the root to
// any leaf, counting the root and not counting nilPtr. 0 for an empty tree.
func (u *RBTree[T]) BlackHeight() (h uint) {
	for cur := u.root; cur != u.nilPtr; cur = cur.l {
		if cur.c == Black {
			h++
		}
	}
	return
}

// Corrupt [Tree.Corrupt]. Checks the red-black properties, the ordering,
// the parent links, the size and that nilPtr is intact. Recursive.
// Time: O(n)
func (u *RBTree[T]) Corrupt() bool {
	z := u.nilPtr
	if z.c != Black || z.l != z || z.r != z || z.p != z {
		return true
	}
	if u.root != z && (u.root.c != Black || u.root.p != z) {
		return true
	}
	var check func(n *rbNode[T]) (bh, sz uint, ok bool)
	check = func(n *rbNode[T]) (uint, uint, bool) {
		if n == z {
			return 0, 0, true
		}
		if n.c != Red && n.c != Black {
			return 0, 0, false
		}
		if n.c == Red && (n.l.c == Red || n.r.c == Red) {
			return 0, 0, false
		}
		if (n.l != z && (n.l.p != n || n.l.v > n.v)) || (n.r != z && (n.r.p != n || n.r.v < n.v)) {
			return 0, 0, false
		}
		lbh, lsz, lok := check(n.l)
		rbh, rsz, rok := check(n.r)
		if !lok || !rok || lbh != rbh {
			return 0, 0, false
		}
		if n.c == Black {
			lbh++
		}
		return lbh, lsz + rsz + 1, true
	}
	_, sz, ok := check(u.root)
	if !ok || sz != u.sz {
		return true
	}
	sorted, first := true, true
	var prev T
	u.InOrder(func(v T) bool {
		if !first && v < prev {
			sorted = false
		}
		first, prev = false, v
		return sorted
	})
	return !sorted
}
