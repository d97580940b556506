package Strings

import (
	"cmp"
	"slices"
	"sort"
)

// SuffixArray of a text: the start offsets of all suffixes in lexicographic
// byte order, and the LCP array where lcp[i] is the length of the longest
// common prefix of the suffixes at sa[i-1] and sa[i] (lcp[0] = 0).
type SuffixArray struct {
	text string
	sa   []int
	lcp  []int
}

// NewSuffixArray builds the suffix array by prefix doubling and the LCP
// array with Kasai's algorithm.
// Time: O(n log^2 n)
func NewSuffixArray(text string) *SuffixArray {
	n := len(text)
	sa, rank, tmp := make([]int, n), make([]int, n), make([]int, n)
	for i := range n {
		sa[i], rank[i] = i, int(text[i])
	}
	for k := 1; ; k <<= 1 {
		// second is the rank of the suffix k bytes later, -1 past the end.
		second := func(i int) int {
			if i+k < n {
				return rank[i+k]
			}
			return -1
		}
		byPair := func(a, b int) int {
			if c := cmp.Compare(rank[a], rank[b]); c != 0 {
				return c
			}
			return cmp.Compare(second(a), second(b))
		}
		if n == 0 {
			break
		}
		slices.SortFunc(sa, byPair)
		tmp[sa[0]] = 0
		for i := 1; i < n; i++ {
			tmp[sa[i]] = tmp[sa[i-1]]
			if byPair(sa[i-1], sa[i]) < 0 {
				tmp[sa[i]]++
			}
		}
		copy(rank, tmp)
		if rank[sa[n-1]] == n-1 {
			break
		}
	}
	return &SuffixArray{text, sa, kasai(text, sa, rank)}
}

// kasai computes the LCP array given rank, the inverse of sa.
func kasai(text string, sa, rank []int) []int {
	n := len(text)
	lcp := make([]int, n)
	for i, h := 0, 0; i < n; i++ {
		if rank[i] == 0 {
			h = 0
			continue
		}
		j := sa[rank[i]-1]
		for i+h < n && j+h < n && text[i+h] == text[j+h] {
			h++
		}
		lcp[rank[i]] = h
		if h > 0 {
			h--
		}
	}
	return lcp
}

// Text indexed.
func (u *SuffixArray) Text() string {
	return u.text
}

// Suffixes are the suffix offsets in sorted order. It shouldn't be modified.
func (u *SuffixArray) Suffixes() []int {
	return u.sa
}

// LCP array. It shouldn't be modified.
func (u *SuffixArray) LCP() []int {
	return u.lcp
}

// bounds of the block of sa whose suffixes start with pattern.
func (u *SuffixArray) bounds(pattern string) (lo, hi int) {
	prefix := func(i int) string {
		s := u.text[u.sa[i]:]
		return s[:min(len(s), len(pattern))]
	}
	lo = sort.Search(len(u.sa), func(i int) bool { return prefix(i) >= pattern })
	hi = sort.Search(len(u.sa), func(i int) bool { return prefix(i) > pattern })
	return
}

// Search for pattern. Returns the offset of the lexicographically smallest
// suffix starting with pattern, or -1.
// Time: O(m log n)
func (u *SuffixArray) Search(pattern string) int {
	if lo, hi := u.bounds(pattern); lo < hi {
		return u.sa[lo]
	}
	return -1
}

// Lookup every offset of pattern in the text, ascending.
// Time: O(m log n + k log k)
func (u *SuffixArray) Lookup(pattern string) []int {
	lo, hi := u.bounds(pattern)
	r := slices.Clone(u.sa[lo:hi])
	slices.Sort(r)
	return r
}

// Count of the occurrences of pattern.
func (u *SuffixArray) Count(pattern string) int {
	lo, hi := u.bounds(pattern)
	return hi - lo
}

// LongestRepeated substring, the longest one occurring at least twice.
// Empty if there is none.
func (u *SuffixArray) LongestRepeated() string {
	best := 0
	for i, l := range u.lcp {
		if l > u.lcp[best] {
			best = i
		}
	}
	if len(u.lcp) == 0 || u.lcp[best] == 0 {
		return ""
	}
	return u.text[u.sa[best] : u.sa[best]+u.lcp[best]]
}
