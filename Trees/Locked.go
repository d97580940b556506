package Trees

import "sync"

// Locked makes any Tree safe for concurrent use. Reads share a sync.RWMutex,
// modifications hold it exclusively. The traversals hold the read lock while
// f runs, so f must not modify the tree.
type Locked[T any] struct {
	mu sync.RWMutex
	t  Tree[T]
}

// NewLocked wraps t. t shouldn't be used directly afterwards.
func NewLocked[T any](t Tree[T]) *Locked[T] {
	return &Locked[T]{t: t}
}

func (u *Locked[T]) Insert(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Insert(v)
}

func (u *Locked[T]) Delete(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Delete(v)
}

func (u *Locked[T]) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.t.Clear()
}

func (u *Locked[T]) Search(v T) (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Search(v)
}

func (u *Locked[T]) Has(v T) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Has(v)
}

func (u *Locked[T]) Minimum() (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Minimum()
}

func (u *Locked[T]) Maximum() (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Maximum()
}

func (u *Locked[T]) Predecessor(v T) (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Predecessor(v)
}

func (u *Locked[T]) Successor(v T) (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Successor(v)
}

func (u *Locked[T]) Size() uint {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Size()
}

func (u *Locked[T]) Height() uint {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Height()
}

func (u *Locked[T]) InOrder(f func(T) bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	u.t.InOrder(f)
}

func (u *Locked[T]) PreOrder(f func(T) bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	u.t.PreOrder(f)
}

func (u *Locked[T]) PostOrder(f func(T) bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	u.t.PostOrder(f)
}

func (u *Locked[T]) Corrupt() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Corrupt()
}
