package Trees

import "fmt"

// Tree represents an ordered binary search tree implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x is the zero value and should not be used.
// If an implementation didn't specify anything special, then the implemented
// receivers follows the behaviors defined here. Methods implemented recursively
// should be noted, otherwise functions are implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if successful, false otherwise.
	//Whether duplicates are accepted depends on implementation.
	Insert(v T) bool
	//Delete one element equal to v from the Tree. Returning true if an element
	//was removed, false if v isn't in the tree.
	Delete(v T) bool
	//Search for an element equal to v.
	Search(v T) (T, bool)
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Size of the tree.
	Size() uint
	//Height is the number of nodes on the longest path from the root to a leaf.
	Height() uint
	//InOrder calls f on every element in ascending order until f returns false.
	//The tree must not be modified by f.
	InOrder(f func(T) bool)
	//PreOrder calls f on every element, parents before children, until f returns false.
	PreOrder(f func(T) bool)
	//PostOrder calls f on every element, children before parents, until f returns false.
	PostOrder(f func(T) bool)
	//Clear removes all elements.
	Clear()
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	//For balanced trees this includes the balancing invariants.
	Corrupt() bool
}

// Collect the elements visited by a traversal, for example Collect(t.InOrder).
func Collect[T any](walk func(func(T) bool)) []T {
	var s []T
	walk(func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

// InvalidSliceError is the panic value of the Build functions when the
// slice isn't sorted in strictly ascending order. L < M < R was expected.
type InvalidSliceError struct {
	L, M, R any
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("slice isn't strictly ascending around %v, %v, %v", e.L, e.M, e.R)
}
