// Package Sorts holds the textbook comparison sorts, the integer and float
// distribution sorts and binary search over sorted slices. Every sort works
// in place on its argument.
package Sorts

import "golang.org/x/exp/constraints"

// Bubble sort, stopping after a pass without swaps. Stable.
// Time: O(n^2), O(n) on sorted input
func Bubble[T constraints.Ordered](s []T) {
	for n := len(s); n > 1; n-- {
		swapped := false
		for i := 1; i < n; i++ {
			if s[i] < s[i-1] {
				s[i], s[i-1] = s[i-1], s[i]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// Selection sort. Not stable.
// Time: O(n^2)
func Selection[T constraints.Ordered](s []T) {
	for i := range s {
		m := i
		for j := i + 1; j < len(s); j++ {
			if s[j] < s[m] {
				m = j
			}
		}
		s[i], s[m] = s[m], s[i]
	}
}

// Insertion sort. Stable.
// Time: O(n^2), O(n) on sorted input
func Insertion[T constraints.Ordered](s []T) {
	for i := 1; i < len(s); i++ {
		v, j := s[i], i
		for ; j > 0 && v < s[j-1]; j-- {
			s[j] = s[j-1]
		}
		s[j] = v
	}
}

// Shell sort with Knuth's gap sequence 1, 4, 13, 40, ... Not stable.
// Time: O(n^1.5)
func Shell[T constraints.Ordered](s []T) {
	gap := 1
	for gap < len(s)/3 {
		gap = 3*gap + 1
	}
	for ; gap > 0; gap /= 3 {
		for i := gap; i < len(s); i++ {
			v, j := s[i], i
			for ; j >= gap && v < s[j-gap]; j -= gap {
				s[j] = s[j-gap]
			}
			s[j] = v
		}
	}
}

// Quick sort with a median of three pivot and Hoare partitioning. It recurses
// on the smaller part and loops on the larger, so the stack stays O(log n).
// Short ranges are finished with insertion sort. Not stable.
// Time: O(n log n) expected, O(n^2) worst
func Quick[T constraints.Ordered](s []T) {
	for len(s) > 12 {
		p := partition(s)
		if p < len(s)-p {
			Quick(s[:p])
			s = s[p:]
		} else {
			Quick(s[p:])
			s = s[:p]
		}
	}
	Insertion(s)
}

// partition s around the median of its first, middle and last items. Returns
// p such that s[:p] <= pivot <= s[p:], with 0 < p < len(s).
func partition[T constraints.Ordered](s []T) int {
	lo, mid, hi := 0, len(s)/2, len(s)-1
	if s[mid] < s[lo] {
		s[mid], s[lo] = s[lo], s[mid]
	}
	if s[hi] < s[lo] {
		s[hi], s[lo] = s[lo], s[hi]
	}
	if s[hi] < s[mid] {
		s[hi], s[mid] = s[mid], s[hi]
	}
	pivot := s[mid]
	i, j := -1, len(s)
	for {
		for i++; s[i] < pivot; i++ {
		}
		for j--; pivot < s[j]; j-- {
		}
		if i >= j {
			return j + 1
		}
		s[i], s[j] = s[j], s[i]
	}
}

// Merge sort, top down with one scratch buffer. Stable.
// Time: O(n log n)
func Merge[T constraints.Ordered](s []T) {
	if len(s) < 2 {
		return
	}
	mergeSort(s, make([]T, len(s)))
}

func mergeSort[T constraints.Ordered](s, buf []T) {
	if len(s) < 2 {
		return
	}
	m := len(s) / 2
	mergeSort(s[:m], buf[:m])
	mergeSort(s[m:], buf[m:])
	if s[m-1] <= s[m] {
		return
	}
	copy(buf, s)
	i, j, k := 0, m, 0
	for ; i < m && j < len(s); k++ {
		if buf[j] < buf[i] {
			s[k] = buf[j]
			j++
		} else {
			s[k] = buf[i]
			i++
		}
	}
	copy(s[k:], buf[i:m])
	copy(s[k:], buf[j:len(s)])
}

// Heap sort on a max heap built in place. Not stable.
// Time: O(n log n)
func Heap[T constraints.Ordered](s []T) {
	for i := len(s)/2 - 1; i >= 0; i-- {
		siftDown(s, i)
	}
	for n := len(s) - 1; n > 0; n-- {
		s[0], s[n] = s[n], s[0]
		siftDown(s[:n], 0)
	}
}

func siftDown[T constraints.Ordered](s []T, i int) {
	for {
		c := 2*i + 1
		if c >= len(s) {
			return
		}
		if c+1 < len(s) && s[c] < s[c+1] {
			c++
		}
		if !(s[i] < s[c]) {
			return
		}
		s[i], s[c] = s[c], s[i]
		i = c
	}
}
