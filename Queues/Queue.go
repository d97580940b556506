package Queues

import "strconv"

// Queue is a FIFO container.
type Queue[T any] interface {
	Push(item T)
	// Pop the oldest item. Returns EmptyQueueError if there's nothing to pop.
	Pop() (T, error)
	// Peek the oldest item without removing it. Returns EmptyQueueError if
	// there's nothing to peek.
	Peek() (T, error)
	Empty() bool
	Size() uint
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}

// FullQueueError is returned by BoundedQueue when its capacity is reached.
type FullQueueError struct {
	Cap uint
}

func (e *FullQueueError) Error() string {
	return "Queue is Full: cannot Push beyond " + strconv.FormatUint(uint64(e.Cap), 10) + " items."
}
