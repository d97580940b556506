package Probabilistic

import (
	"errors"
	"math/rand"

	"golang.org/x/exp/constraints"
)

var ErrInvalidSkipList = errors.New("skip list needs max level >= 1 and 0 < p < 1")

type skipNode[T any] struct {
	v       T
	forward []*skipNode[T]
}

// SkipList is an ordered set kept in a hierarchy of linked lists. Every
// element is on level 0, and each element on level i is also on level i+1
// with probability p, up to maxLevel-1.
// Expected time of every operation is O(log n). It isn't safe for
// concurrent use.
type SkipList[T constraints.Ordered] struct {
	head     skipNode[T]
	level    int // number of levels in use.
	maxLevel int
	p        float64
	sz       uint
	rg       *rand.Rand
}

// NewSkipList with at most maxLevel levels and promotion probability p.
// The levels are drawn from a generator seeded with seed, so the shape of
// the list is reproducible.
func NewSkipList[T constraints.Ordered](maxLevel int, p float64, seed int64) (*SkipList[T], error) {
	if maxLevel < 1 || p <= 0 || p >= 1 {
		return nil, ErrInvalidSkipList
	}
	return &SkipList[T]{
		head:     skipNode[T]{forward: make([]*skipNode[T], maxLevel)},
		level:    1,
		maxLevel: maxLevel,
		p:        p,
		rg:       rand.New(rand.NewSource(seed)),
	}, nil
}

func (u *SkipList[T]) randomLevel() int {
	l := 1
	for l < u.maxLevel && u.rg.Float64() < u.p {
		l++
	}
	return l
}

// path fills update with the last node before v on every level in use and
// returns the node on level 0 that may hold v.
func (u *SkipList[T]) path(v T, update []*skipNode[T]) *skipNode[T] {
	cur := &u.head
	for i := u.level - 1; i >= 0; i-- {
		for cur.forward[i] != nil && cur.forward[i].v < v {
			cur = cur.forward[i]
		}
		if update != nil {
			update[i] = cur
		}
	}
	return cur.forward[0]
}

// Put v. Returns false when v is already present.
func (u *SkipList[T]) Put(v T) bool {
	update := make([]*skipNode[T], u.maxLevel)
	if n := u.path(v, update); n != nil && n.v == v {
		return false
	}
	l := u.randomLevel()
	for i := u.level; i < l; i++ {
		update[i] = &u.head
	}
	u.level = max(u.level, l)
	n := &skipNode[T]{v, make([]*skipNode[T], l)}
	for i := range l {
		n.forward[i], update[i].forward[i] = update[i].forward[i], n
	}
	u.sz++
	return true
}

// Has v.
func (u *SkipList[T]) Has(v T) bool {
	n := u.path(v, nil)
	return n != nil && n.v == v
}

// Remove v. Returns false when v isn't present.
func (u *SkipList[T]) Remove(v T) bool {
	update := make([]*skipNode[T], u.maxLevel)
	n := u.path(v, update)
	if n == nil || n.v != v {
		return false
	}
	for i := range len(n.forward) {
		update[i].forward[i] = n.forward[i]
	}
	for u.level > 1 && u.head.forward[u.level-1] == nil {
		u.level--
	}
	u.sz--
	return true
}

// Size is the number of elements.
func (u *SkipList[T]) Size() uint {
	return u.sz
}

// Range calls f on every element in ascending order until f returns false.
func (u *SkipList[T]) Range(f func(T) bool) {
	for n := u.head.forward[0]; n != nil; n = n.forward[0] {
		if !f(n.v) {
			return
		}
	}
}

// Level is the number of levels in use, 1 for an empty list.
func (u *SkipList[T]) Level() int {
	return u.level
}

// Levels lists the elements of every level in use, level 0 first.
func (u *SkipList[T]) Levels() [][]T {
	r := make([][]T, u.level)
	for i := range r {
		for n := u.head.forward[i]; n != nil; n = n.forward[i] {
			r[i] = append(r[i], n.v)
		}
	}
	return r
}
