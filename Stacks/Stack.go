package Stacks

// Stack is a LIFO container backed by a slice. The zero value is an empty
// stack ready to use.
type Stack[T any] struct {
	content []T
}

func MakeStack[T any](initCap uint) *Stack[T] {
	return &Stack[T]{make([]T, 0, initCap)}
}

type EmptyStackError struct {
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot Pop."
}

func (u *Stack[T]) Push(item T) {
	u.content = append(u.content, item)
}

// Pop the most recently pushed item.
func (u *Stack[T]) Pop() (T, error) {
	if len(u.content) == 0 {
		return *new(T), &EmptyStackError{}
	}
	top := u.content[len(u.content)-1]
	u.content[len(u.content)-1] = *new(T)
	u.content = u.content[:len(u.content)-1]
	return top, nil
}

// Peek the most recently pushed item without removing it.
func (u *Stack[T]) Peek() (T, error) {
	if len(u.content) == 0 {
		return *new(T), &EmptyStackError{}
	}
	return u.content[len(u.content)-1], nil
}

func (u *Stack[T]) Empty() bool {
	return len(u.content) == 0
}

func (u *Stack[T]) Size() uint {
	return uint(len(u.content))
}

// Values from bottom to top. The slice must not be modified.
func (u *Stack[T]) Values() []T {
	return u.content
}
