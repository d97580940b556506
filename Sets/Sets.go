// Package Sets defines the set abstraction shared by the ordered and string
// set implementations elsewhere in the module.
package Sets

// Set is a collection of unique elements.
type Set[E any] interface {
	//Put e. Returns false when e is already in the set.
	Put(E) bool
	//Has e.
	Has(E) bool
	//Remove e. Returns false when e isn't in the set.
	Remove(E) bool
	//Size is the number of elements.
	Size() uint
	//Range calls f on every element until it returns false.
	Range(func(E) bool)
}

// Collect the elements of s in the order Range visits them.
func Collect[E any](s Set[E]) []E {
	r := make([]E, 0, s.Size())
	s.Range(func(e E) bool {
		r = append(r, e)
		return true
	})
	return r
}

// Equal reports whether a and b hold the same elements.
func Equal[E any](a, b Set[E]) bool {
	if a.Size() != b.Size() {
		return false
	}
	eq := true
	a.Range(func(e E) bool {
		eq = b.Has(e)
		return eq
	})
	return eq
}
