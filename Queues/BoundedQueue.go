package Queues

// BoundedQueue is a circular queue with a fixed capacity. Unlike ArrayQueue
// it never grows; pushing into a full queue is an error.
type BoundedQueue[T any] struct {
	content  []T
	head, sz uint
}

func MakeBoundedQueue[T any](capacity uint) *BoundedQueue[T] {
	return &BoundedQueue[T]{content: make([]T, capacity)}
}

func (u *BoundedQueue[T]) Cap() uint {
	return uint(len(u.content))
}

func (u *BoundedQueue[T]) Size() uint {
	return u.sz
}

func (u *BoundedQueue[T]) Empty() bool {
	return u.sz == 0
}

func (u *BoundedQueue[T]) Full() bool {
	return u.sz == uint(len(u.content))
}

// Push item at the back. Returns FullQueueError when the queue is full.
func (u *BoundedQueue[T]) Push(item T) error {
	if u.Full() {
		return &FullQueueError{Cap: u.Cap()}
	}
	u.content[(u.head+u.sz)%uint(len(u.content))] = item
	u.sz++
	return nil
}

func (u *BoundedQueue[T]) Pop() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyQueueError{}
	}
	item := u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

func (u *BoundedQueue[T]) Peek() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyQueueError{}
	}
	return u.content[u.head], nil
}

// Values from oldest to newest.
func (u *BoundedQueue[T]) Values() []T {
	vs := make([]T, u.sz)
	for i := range vs {
		vs[i] = u.content[(u.head+uint(i))%uint(len(u.content))]
	}
	return vs
}
