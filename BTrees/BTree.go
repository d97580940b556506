// Package BTrees holds the multiway search trees: a B-Tree keeping its keys in
// every node and a B+Tree keeping the records in a linked list of leaves.
package BTrees

import (
	"errors"
	"slices"

	"golang.org/x/exp/constraints"
)

var (
	ErrInvalidDegree = errors.New("minimum degree must be at least 2")
	ErrInvalidOrder  = errors.New("order must be at least 3")
)

// A node in the BTree. It's a leaf when kids is empty, otherwise
// len(kids) == len(keys)+1.
type bNode[T any] struct {
	keys []T
	kids []*bNode[T]
}

func (n *bNode[T]) leaf() bool {
	return len(n.kids) == 0
}

// BTree with minimum degree t: every node other than the root holds between
// t-1 and 2t-1 keys, and all leaves are at the same depth. Values are unique.
type BTree[T constraints.Ordered] struct {
	root *bNode[T] // nil when the tree is empty.
	t    int
	sz   uint
}

// NewBTree returns an empty BTree with minimum degree t.
func NewBTree[T constraints.Ordered](t int) (*BTree[T], error) {
	if t < 2 {
		return nil, ErrInvalidDegree
	}
	return &BTree[T]{t: t}, nil
}

// Degree is the minimum degree t.
func (u *BTree[T]) Degree() int {
	return u.t
}

// Size is the number of keys.
func (u *BTree[T]) Size() uint {
	return u.sz
}

// Height is the number of levels, 0 for an empty tree.
func (u *BTree[T]) Height() (h uint) {
	for n := u.root; n != nil; h++ {
		if n.leaf() {
			return h + 1
		}
		n = n.kids[0]
	}
	return
}

// Has v.
// Time: O(t*log_t n)
func (u *BTree[T]) Has(v T) bool {
	for n := u.root; n != nil; {
		i, found := slices.BinarySearch(n.keys, v)
		if found {
			return true
		}
		if n.leaf() {
			return false
		}
		n = n.kids[i]
	}
	return false
}

// Minimum key of the tree.
func (u *BTree[T]) Minimum() (v T, ok bool) {
	if u.root == nil {
		return
	}
	n := u.root
	for !n.leaf() {
		n = n.kids[0]
	}
	return n.keys[0], true
}

// Maximum key of the tree.
func (u *BTree[T]) Maximum() (v T, ok bool) {
	if u.root == nil {
		return
	}
	n := u.root
	for !n.leaf() {
		n = n.kids[len(n.kids)-1]
	}
	return n.keys[len(n.keys)-1], true
}

// InOrder calls f on every key in ascending order until f returns false.
// Recursive.
func (u *BTree[T]) InOrder(f func(T) bool) {
	var walk func(*bNode[T]) bool
	walk = func(n *bNode[T]) bool {
		for i, k := range n.keys {
			if !n.leaf() && !walk(n.kids[i]) {
				return false
			}
			if !f(k) {
				return false
			}
		}
		return n.leaf() || walk(n.kids[len(n.kids)-1])
	}
	if u.root != nil {
		walk(u.root)
	}
}

// splitChild splits the full child x.kids[i] around its median, which moves
// up into x.
func (u *BTree[T]) splitChild(x *bNode[T], i int) {
	y := x.kids[i]
	z := &bNode[T]{keys: slices.Clone(y.keys[u.t:])}
	if !y.leaf() {
		z.kids = slices.Clone(y.kids[u.t:])
		y.kids = y.kids[:u.t]
	}
	mid := y.keys[u.t-1]
	y.keys = y.keys[:u.t-1]
	x.keys = slices.Insert(x.keys, i, mid)
	x.kids = slices.Insert(x.kids, i+1, z)
}

func (u *BTree[T]) insertNonFull(x *bNode[T], v T) {
	for {
		i, _ := slices.BinarySearch(x.keys, v)
		if x.leaf() {
			x.keys = slices.Insert(x.keys, i, v)
			return
		}
		if len(x.kids[i].keys) == 2*u.t-1 {
			u.splitChild(x, i)
			if v > x.keys[i] {
				i++
			}
		}
		x = x.kids[i]
	}
}

// Insert v. Returns false when v is already in the tree. Full nodes on the
// way down are split before descending, so a single pass suffices.
// Time: O(t*log_t n)
func (u *BTree[T]) Insert(v T) bool {
	if u.Has(v) {
		return false
	}
	if u.root == nil {
		u.root = &bNode[T]{keys: []T{v}}
	} else {
		if len(u.root.keys) == 2*u.t-1 {
			u.root = &bNode[T]{kids: []*bNode[T]{u.root}}
			u.splitChild(u.root, 0)
		}
		u.insertNonFull(u.root, v)
	}
	u.sz++
	return true
}

// Delete v. Returns false when v isn't in the tree.
// Time: O(t*log_t n)
func (u *BTree[T]) Delete(v T) bool {
	if u.root == nil {
		return false
	}
	// The descent may merge the root's only two children even when v is
	// absent, so the root is collapsed either way.
	ok := u.remove(u.root, v)
	if len(u.root.keys) == 0 {
		if u.root.leaf() {
			u.root = nil
		} else {
			u.root = u.root.kids[0]
		}
	}
	if ok {
		u.sz--
	}
	return ok
}

// remove v from the subtree rooting at x. Every node remove descends into
// holds at least t keys, except the root.
func (u *BTree[T]) remove(x *bNode[T], v T) bool {
	i, found := slices.BinarySearch(x.keys, v)
	if x.leaf() {
		if found {
			x.keys = slices.Delete(x.keys, i, i+1)
		}
		return found
	}
	if found {
		if l := x.kids[i]; len(l.keys) >= u.t {
			p := l
			for !p.leaf() {
				p = p.kids[len(p.kids)-1]
			}
			pred := p.keys[len(p.keys)-1]
			x.keys[i] = pred
			return u.remove(l, pred)
		} else if r := x.kids[i+1]; len(r.keys) >= u.t {
			s := r
			for !s.leaf() {
				s = s.kids[0]
			}
			succ := s.keys[0]
			x.keys[i] = succ
			return u.remove(r, succ)
		}
		u.merge(x, i)
		return u.remove(x.kids[i], v)
	}
	if len(x.kids[i].keys) < u.t {
		i = u.fill(x, i)
	}
	return u.remove(x.kids[i], v)
}

// fill x.kids[i], which has t-1 keys, by borrowing from a sibling or merging
// with one. Returns the index of the child that now covers the old range.
func (u *BTree[T]) fill(x *bNode[T], i int) int {
	if i > 0 && len(x.kids[i-1].keys) >= u.t {
		u.borrowPrev(x, i)
	} else if i < len(x.keys) && len(x.kids[i+1].keys) >= u.t {
		u.borrowNext(x, i)
	} else if i < len(x.keys) {
		u.merge(x, i)
	} else {
		u.merge(x, i-1)
		i--
	}
	return i
}

func (u *BTree[T]) borrowPrev(x *bNode[T], i int) {
	c, s := x.kids[i], x.kids[i-1]
	c.keys = slices.Insert(c.keys, 0, x.keys[i-1])
	if !s.leaf() {
		c.kids = slices.Insert(c.kids, 0, s.kids[len(s.kids)-1])
		s.kids = s.kids[:len(s.kids)-1]
	}
	x.keys[i-1] = s.keys[len(s.keys)-1]
	s.keys = s.keys[:len(s.keys)-1]
}

func (u *BTree[T]) borrowNext(x *bNode[T], i int) {
	c, s := x.kids[i], x.kids[i+1]
	c.keys = append(c.keys, x.keys[i])
	if !s.leaf() {
		c.kids = append(c.kids, s.kids[0])
		s.kids = slices.Delete(s.kids, 0, 1)
	}
	x.keys[i] = s.keys[0]
	s.keys = slices.Delete(s.keys, 0, 1)
}

// merge x.kids[i+1] and the separator x.keys[i] into x.kids[i].
func (u *BTree[T]) merge(x *bNode[T], i int) {
	c, s := x.kids[i], x.kids[i+1]
	c.keys = append(append(c.keys, x.keys[i]), s.keys...)
	c.kids = append(c.kids, s.kids...)
	x.keys = slices.Delete(x.keys, i, i+1)
	x.kids = slices.Delete(x.kids, i+1, i+2)
}

// Corrupt returns whether a node has too few or too many keys, the keys are
// out of order, the children count is wrong, the leaves are at different
// depths or the size is off. Recursive.
func (u *BTree[T]) Corrupt() bool {
	if u.root == nil {
		return u.sz != 0
	}
	leafDepth := -1
	var cnt uint
	var check func(n *bNode[T], lo, hi *T, d int) bool
	check = func(n *bNode[T], lo, hi *T, d int) bool {
		if len(n.keys) > 2*u.t-1 || len(n.keys) == 0 || (n != u.root && len(n.keys) < u.t-1) {
			return false
		}
		for i, k := range n.keys {
			if (i > 0 && n.keys[i-1] >= k) || (lo != nil && k <= *lo) || (hi != nil && k >= *hi) {
				return false
			}
		}
		cnt += uint(len(n.keys))
		if n.leaf() {
			if leafDepth == -1 {
				leafDepth = d
			}
			return leafDepth == d
		}
		if len(n.kids) != len(n.keys)+1 {
			return false
		}
		for i, c := range n.kids {
			l, h := lo, hi
			if i > 0 {
				l = &n.keys[i-1]
			}
			if i < len(n.keys) {
				h = &n.keys[i]
			}
			if !check(c, l, h, d+1) {
				return false
			}
		}
		return true
	}
	return !check(u.root, nil, nil, 0) || cnt != u.sz
}
