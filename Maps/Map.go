// Package Maps holds hash tables keyed by comparable types.
package Maps

// Map is an unordered association of unique keys to values.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined.
type Map[K comparable, V any] interface {
	//Put v at k. Returns the previous value and true if k was present.
	Put(k K, v V) (V, bool)
	//Get the value at k.
	Get(k K) (V, bool)
	//HasKey k.
	HasKey(k K) bool
	//Remove k. Returns false when k isn't present.
	Remove(k K) bool
	//Size is the number of keys.
	Size() uint
	//Range calls f on every pair until it returns false. The order is unspecified.
	Range(f func(K, V) bool)
	//Clear removes all pairs.
	Clear()
	//Fit shrinks the backing storage to the current size.
	Fit()
}
