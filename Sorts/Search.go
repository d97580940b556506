package Sorts

import "golang.org/x/exp/constraints"

// BinarySearch for target in the ascending slice s. Returns the index of a
// match or -1.
// Time: O(log n)
func BinarySearch[T constraints.Ordered](s []T, target T) int {
	lo, hi := 0, len(s)-1
	for lo <= hi {
		m := int(uint(lo+hi) >> 1)
		switch {
		case s[m] == target:
			return m
		case s[m] < target:
			lo = m + 1
		default:
			hi = m - 1
		}
	}
	return -1
}

// LeftBinarySearch for the first occurrence of target in the ascending
// slice s, or -1.
// Time: O(log n)
func LeftBinarySearch[T constraints.Ordered](s []T, target T) int {
	lo, hi := 0, len(s)
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		if s[m] < target {
			lo = m + 1
		} else {
			hi = m
		}
	}
	if lo < len(s) && s[lo] == target {
		return lo
	}
	return -1
}
