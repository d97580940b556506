package Queues

// Deque is a double ended queue backed by a ring buffer. The zero value is
// an empty deque ready to use.
type Deque[T any] struct {
	content  []T
	head, sz uint
}

func MakeDeque[T any](initCap uint) *Deque[T] {
	return &Deque[T]{content: make([]T, initCap)}
}

func (u *Deque[T]) Size() uint {
	return u.sz
}

func (u *Deque[T]) Empty() bool {
	return u.sz == 0
}

func (u *Deque[T]) at(i uint) uint {
	return (u.head + i) % uint(len(u.content))
}

func (u *Deque[T]) grow() {
	if u.sz < uint(len(u.content)) {
		return
	}
	nc := make([]T, max(u.sz*2, 4))
	for i := uint(0); i < u.sz; i++ {
		nc[i] = u.content[u.at(i)]
	}
	u.content, u.head = nc, 0
}

// PushFront adds item before the current front.
func (u *Deque[T]) PushFront(item T) {
	u.grow()
	u.head = (u.head + uint(len(u.content)) - 1) % uint(len(u.content))
	u.content[u.head] = item
	u.sz++
}

// PushBack adds item after the current back.
func (u *Deque[T]) PushBack(item T) {
	u.grow()
	u.content[u.at(u.sz)] = item
	u.sz++
}

func (u *Deque[T]) PopFront() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyQueueError{}
	}
	item := u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = u.at(1)
	u.sz--
	return item, nil
}

func (u *Deque[T]) PopBack() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyQueueError{}
	}
	i := u.at(u.sz - 1)
	item := u.content[i]
	u.content[i] = *new(T)
	u.sz--
	return item, nil
}

func (u *Deque[T]) PeekFront() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyQueueError{}
	}
	return u.content[u.head], nil
}

func (u *Deque[T]) PeekBack() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyQueueError{}
	}
	return u.content[u.at(u.sz-1)], nil
}

// Push, Pop and Peek make Deque a Queue: items go in at the back and come
// out at the front.
func (u *Deque[T]) Push(item T) {
	u.PushBack(item)
}

func (u *Deque[T]) Pop() (T, error) {
	return u.PopFront()
}

func (u *Deque[T]) Peek() (T, error) {
	return u.PeekFront()
}

// Values from front to back.
func (u *Deque[T]) Values() []T {
	vs := make([]T, u.sz)
	for i := range vs {
		vs[i] = u.content[u.at(uint(i))]
	}
	return vs
}
