package BTrees

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// A node in the BPlusTree.
// internal nodes: len(kids) == len(keys)+1, vals and next unused.
// leaf nodes: len(vals) == len(keys), next links to the leaf on the right.
type bpNode[K constraints.Ordered, V any] struct {
	leaf bool
	keys []K
	kids []*bpNode[K, V]
	vals []V
	next *bpNode[K, V]
}

// BPlusTree maps unique keys to values. Records live only in the leaves,
// which are linked in key order for range scans; internal nodes hold
// separators. A separator keys[i] bounds kids[i] from above (exclusive) and
// kids[i+1] from below (inclusive).
// order is the maximum number of keys of a node. Every node other than the
// root holds at least order/2 keys.
type BPlusTree[K constraints.Ordered, V any] struct {
	root  *bpNode[K, V]
	order int
	sz    uint
}

// NewBPlusTree returns an empty BPlusTree. order must be at least 3.
func NewBPlusTree[K constraints.Ordered, V any](order int) (*BPlusTree[K, V], error) {
	if order < 3 {
		return nil, ErrInvalidOrder
	}
	return &BPlusTree[K, V]{root: &bpNode[K, V]{leaf: true}, order: order}, nil
}

func (u *BPlusTree[K, V]) minKeys() int {
	return u.order / 2
}

// Order is the maximum number of keys in a node.
func (u *BPlusTree[K, V]) Order() int {
	return u.order
}

// Size is the number of records.
func (u *BPlusTree[K, V]) Size() uint {
	return u.sz
}

// Height is the number of levels, 0 for an empty tree.
func (u *BPlusTree[K, V]) Height() uint {
	if u.sz == 0 {
		return 0
	}
	h := uint(1)
	for n := u.root; !n.leaf; n = n.kids[0] {
		h++
	}
	return h
}

// childIndex is the index of the child of internal node n that covers k.
func childIndex[K constraints.Ordered, V any](n *bpNode[K, V], k K) int {
	i, found := slices.BinarySearch(n.keys, k)
	if found {
		i++
	}
	return i
}

func (u *BPlusTree[K, V]) findLeaf(k K) *bpNode[K, V] {
	n := u.root
	for !n.leaf {
		n = n.kids[childIndex(n, k)]
	}
	return n
}

// Get the value of k.
// Time: O(log n)
func (u *BPlusTree[K, V]) Get(k K) (v V, ok bool) {
	leaf := u.findLeaf(k)
	if i, found := slices.BinarySearch(leaf.keys, k); found {
		return leaf.vals[i], true
	}
	return
}

// Put k with v, replacing the value if k is already present. Returns true
// if k is new.
// Time: O(log n)
func (u *BPlusTree[K, V]) Put(k K, v V) bool {
	sep, right, inserted := u.insert(u.root, k, v)
	if right != nil {
		u.root = &bpNode[K, V]{keys: []K{sep}, kids: []*bpNode[K, V]{u.root, right}}
	}
	if inserted {
		u.sz++
	}
	return inserted
}

// insert into the subtree rooting at n. When n overflows it is split and the
// new right sibling is returned with the separator to put in the parent.
func (u *BPlusTree[K, V]) insert(n *bpNode[K, V], k K, v V) (sep K, right *bpNode[K, V], inserted bool) {
	if n.leaf {
		i, found := slices.BinarySearch(n.keys, k)
		if found {
			n.vals[i] = v
			return
		}
		n.keys = slices.Insert(n.keys, i, k)
		n.vals = slices.Insert(n.vals, i, v)
		inserted = true
		if len(n.keys) > u.order {
			mid := len(n.keys) / 2
			right = &bpNode[K, V]{
				leaf: true,
				keys: slices.Clone(n.keys[mid:]),
				vals: slices.Clone(n.vals[mid:]),
				next: n.next,
			}
			n.keys, n.vals, n.next = n.keys[:mid], n.vals[:mid], right
			sep = right.keys[0]
		}
		return
	}
	i := childIndex(n, k)
	s, r, inserted := u.insert(n.kids[i], k, v)
	if r == nil {
		return sep, nil, inserted
	}
	n.keys = slices.Insert(n.keys, i, s)
	n.kids = slices.Insert(n.kids, i+1, r)
	if len(n.keys) > u.order {
		mid := len(n.keys) / 2
		sep = n.keys[mid]
		right = &bpNode[K, V]{
			keys: slices.Clone(n.keys[mid+1:]),
			kids: slices.Clone(n.kids[mid+1:]),
		}
		n.keys, n.kids = n.keys[:mid], n.kids[:mid+1]
	}
	return sep, right, inserted
}

// Delete k. Returns false when k isn't in the tree.
// Time: O(log n)
func (u *BPlusTree[K, V]) Delete(k K) bool {
	if !u.remove(u.root, k) {
		return false
	}
	u.sz--
	if !u.root.leaf && len(u.root.keys) == 0 {
		u.root = u.root.kids[0]
	}
	return true
}

func (u *BPlusTree[K, V]) remove(n *bpNode[K, V], k K) bool {
	if n.leaf {
		i, found := slices.BinarySearch(n.keys, k)
		if found {
			n.keys = slices.Delete(n.keys, i, i+1)
			n.vals = slices.Delete(n.vals, i, i+1)
		}
		return found
	}
	i := childIndex(n, k)
	if !u.remove(n.kids[i], k) {
		return false
	}
	if len(n.kids[i].keys) < u.minKeys() {
		u.rebalance(n, i)
	}
	return true
}

// rebalance n.kids[i], which has one key too few, by borrowing from a
// sibling or merging with one. Separators in n are kept valid.
func (u *BPlusTree[K, V]) rebalance(n *bpNode[K, V], i int) {
	c := n.kids[i]
	if i > 0 && len(n.kids[i-1].keys) > u.minKeys() {
		l := n.kids[i-1]
		last := len(l.keys) - 1
		if c.leaf {
			c.keys = slices.Insert(c.keys, 0, l.keys[last])
			c.vals = slices.Insert(c.vals, 0, l.vals[last])
			l.keys, l.vals = l.keys[:last], l.vals[:last]
			n.keys[i-1] = c.keys[0]
		} else {
			c.keys = slices.Insert(c.keys, 0, n.keys[i-1])
			c.kids = slices.Insert(c.kids, 0, l.kids[last+1])
			n.keys[i-1] = l.keys[last]
			l.keys, l.kids = l.keys[:last], l.kids[:last+1]
		}
		return
	}
	if i < len(n.keys) && len(n.kids[i+1].keys) > u.minKeys() {
		r := n.kids[i+1]
		if c.leaf {
			c.keys = append(c.keys, r.keys[0])
			c.vals = append(c.vals, r.vals[0])
			r.keys, r.vals = slices.Delete(r.keys, 0, 1), slices.Delete(r.vals, 0, 1)
			n.keys[i] = r.keys[0]
		} else {
			c.keys = append(c.keys, n.keys[i])
			c.kids = append(c.kids, r.kids[0])
			n.keys[i] = r.keys[0]
			r.keys, r.kids = slices.Delete(r.keys, 0, 1), slices.Delete(r.kids, 0, 1)
		}
		return
	}
	if i > 0 {
		i--
	}
	u.merge(n, i)
}

// merge n.kids[i+1] into n.kids[i] and drop the separator n.keys[i].
func (u *BPlusTree[K, V]) merge(n *bpNode[K, V], i int) {
	l, r := n.kids[i], n.kids[i+1]
	if l.leaf {
		l.keys = append(l.keys, r.keys...)
		l.vals = append(l.vals, r.vals...)
		l.next = r.next
	} else {
		l.keys = append(append(l.keys, n.keys[i]), r.keys...)
		l.kids = append(l.kids, r.kids...)
	}
	n.keys = slices.Delete(n.keys, i, i+1)
	n.kids = slices.Delete(n.kids, i+1, i+2)
}

// Range calls f on every record with lo <= key < hi in ascending key order
// until f returns false. It follows the leaf chain.
func (u *BPlusTree[K, V]) Range(lo, hi K, f func(K, V) bool) {
	leaf := u.findLeaf(lo)
	i, _ := slices.BinarySearch(leaf.keys, lo)
	for ; leaf != nil; leaf, i = leaf.next, 0 {
		for ; i < len(leaf.keys); i++ {
			if leaf.keys[i] >= hi || !f(leaf.keys[i], leaf.vals[i]) {
				return
			}
		}
	}
}

// Ascend calls f on every record in ascending key order until f returns
// false.
func (u *BPlusTree[K, V]) Ascend(f func(K, V) bool) {
	n := u.root
	for !n.leaf {
		n = n.kids[0]
	}
	for ; n != nil; n = n.next {
		for i, k := range n.keys {
			if !f(k, n.vals[i]) {
				return
			}
		}
	}
}

// Corrupt returns whether the key counts, the key ordering against the
// separators, the leaf depths, the leaf chain or the size are broken.
// Recursive.
func (u *BPlusTree[K, V]) Corrupt() bool {
	leafDepth := -1
	var leaves []*bpNode[K, V]
	var check func(n *bpNode[K, V], lo, hi *K, d int) bool
	check = func(n *bpNode[K, V], lo, hi *K, d int) bool {
		if len(n.keys) > u.order || (n != u.root && len(n.keys) < u.minKeys()) {
			return false
		}
		for i, k := range n.keys {
			if (i > 0 && n.keys[i-1] >= k) || (lo != nil && k < *lo) || (hi != nil && k >= *hi) {
				return false
			}
		}
		if n.leaf {
			if len(n.vals) != len(n.keys) {
				return false
			}
			if leafDepth == -1 {
				leafDepth = d
			}
			leaves = append(leaves, n)
			return leafDepth == d
		}
		if len(n.kids) != len(n.keys)+1 || (n == u.root && len(n.keys) == 0) {
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
	if !check(u.root, nil, nil, 0) {
		return true
	}
	var cnt uint
	for i, l := range leaves {
		cnt += uint(len(l.keys))
		if i+1 < len(leaves) && l.next != leaves[i+1] {
			return true
		}
	}
	return leaves[len(leaves)-1].next != nil || cnt != u.sz
}
