package Sorts

import (
	"errors"
	"math"
	"slices"
)

var ErrNegativeValue = errors.New("counting and radix sort need non-negative values")

// Counting sort for non-negative ints, stable, using a count array as long as
// the largest value. s is left untouched when it holds a negative value.
// Memory is O(max), so a single huge value such as 1<<40 exhausts it; use
// Radix for sparse large values.
// Time: O(n + max)
func Counting(s []int) error {
	m, err := maxOf(s)
	if err != nil || len(s) == 0 {
		return err
	}
	count := make([]int, m+1)
	for _, v := range s {
		count[v]++
	}
	i := 0
	for v, c := range count {
		for ; c > 0; c-- {
			s[i] = v
			i++
		}
	}
	return nil
}

// Radix sort for non-negative ints, least significant decimal digit first,
// with a stable counting pass per digit. s is left untouched when it holds a
// negative value.
// Time: O(d(n + 10)) for d digits in the largest value
func Radix(s []int) error {
	m, err := maxOf(s)
	if err != nil || len(s) == 0 {
		return err
	}
	out := make([]int, len(s))
	for place := 1; m/place > 0; place *= 10 {
		var count [10]int
		for _, v := range s {
			count[v/place%10]++
		}
		for d := 1; d < 10; d++ {
			count[d] += count[d-1]
		}
		for i := len(s) - 1; i >= 0; i-- {
			d := s[i] / place % 10
			count[d]--
			out[count[d]] = s[i]
		}
		copy(s, out)
		if place > math.MaxInt/10 {
			break
		}
	}
	return nil
}

func maxOf(s []int) (int, error) {
	m := 0
	for _, v := range s {
		if v < 0 {
			return 0, ErrNegativeValue
		}
		m = max(m, v)
	}
	return m, nil
}

// Bucket sort for float64, spreading the values over len(s) equal width
// buckets between the minimum and maximum and insertion sorting each. NaNs and
// infinities aren't supported. Stable.
// Time: O(n) expected on uniform input, O(n^2) worst
func Bucket(s []float64) {
	if len(s) < 2 {
		return
	}
	lo, hi := slices.Min(s), slices.Max(s)
	if lo == hi {
		return
	}
	n := len(s)
	buckets := make([][]float64, n)
	// Halved so hi-lo can't overflow for finite values.
	width := hi/2 - lo/2
	if width == 0 {
		Insertion(s)
		return
	}
	for _, v := range s {
		i := max(0, min(int((v/2-lo/2)/width*float64(n)), n-1))
		buckets[i] = append(buckets[i], v)
	}
	i := 0
	for _, b := range buckets {
		Insertion(b)
		i += copy(s[i:], b)
	}
}
