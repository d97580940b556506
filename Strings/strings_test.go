package Strings

import (
	"math/rand"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/Aldrin-Shanty/DSA/Sets"
)

var rg = rand.New(rand.NewSource(0))

var _ Sets.Set[string] = (*Trie)(nil)

func TestTrie_Words(t *testing.T) {
	var tr Trie
	for _, w := range []string{"apple", "app", "application", "apt", "banana", "band", "bandana", "héllo"} {
		if !tr.Put(w) {
			t.Errorf("failed to put %q", w)
		}
	}
	if tr.Put("app") {
		t.Error("put a duplicate")
	}
	cases := map[string]uint{"app": 3, "ap": 4, "ban": 3, "band": 2, "c": 0, "": 8, "hé": 1}
	for p, want := range cases {
		if got := tr.CountPrefix(p); got != want {
			t.Errorf("prefix %q counts %d, want %d", p, got, want)
		}
	}
	if tr.Has("appl") || !tr.Has("apple") || !tr.HasPrefix("appl") {
		t.Error("has and has prefix disagree with the words")
	}
	var got []string
	tr.WithPrefix("ban", func(s string) bool {
		got = append(got, s)
		return true
	})
	if !slices.Equal(got, []string{"banana", "band", "bandana"}) {
		t.Errorf("words with prefix ban are %v", got)
	}
	if !tr.Remove("app") || tr.Remove("app") || tr.Has("app") || !tr.Has("apple") {
		t.Error("removing app broke the trie")
	}
	if !tr.Remove("bandana") || !tr.Has("band") || tr.CountPrefix("banda") != 0 {
		t.Error("removing bandana broke the trie")
	}
	all := Sets.Collect[string](&tr)
	if !slices.IsSorted(all) || tr.Size() != 6 || len(all) != 6 {
		t.Errorf("range gave %v", all)
	}
}

func TestTrie_Model(t *testing.T) {
	var tr Trie
	content := make(map[string]struct{})
	for range 5000 {
		b := make([]byte, 1+rg.Intn(5))
		for i := range b {
			b[i] = 'a' + byte(rg.Intn(3))
		}
		w := string(b)
		_, in := content[w]
		if rg.Intn(3) == 0 {
			if tr.Remove(w) != in {
				t.Fatalf("remove %q returned %v", w, !in)
			}
			delete(content, w)
		} else {
			if tr.Put(w) == in {
				t.Fatalf("put %q returned %v", w, in)
			}
			content[w] = struct{}{}
		}
	}
	if int(tr.Size()) != len(content) {
		t.Fatalf("size is %d, want %d", tr.Size(), len(content))
	}
	for _, p := range []string{"a", "ab", "cc", "bca"} {
		var want uint
		for w := range content {
			if strings.HasPrefix(w, p) {
				want++
			}
		}
		if got := tr.CountPrefix(p); got != want {
			t.Errorf("prefix %q counts %d, want %d", p, got, want)
		}
	}
}

// naiveSA sorts the suffixes directly.
func naiveSA(s string) []int {
	sa := make([]int, len(s))
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(a, b int) bool { return s[sa[a]:] < s[sa[b]:] })
	return sa
}

func TestSuffixArray_Banana(t *testing.T) {
	sa := NewSuffixArray("banana")
	if !slices.Equal(sa.Suffixes(), []int{5, 3, 1, 0, 4, 2}) {
		t.Errorf("suffix array is %v", sa.Suffixes())
	}
	if !slices.Equal(sa.LCP(), []int{0, 1, 3, 0, 0, 2}) {
		t.Errorf("lcp array is %v", sa.LCP())
	}
	if got := sa.Lookup("ana"); !slices.Equal(got, []int{1, 3}) {
		t.Errorf("lookup ana is %v", got)
	}
	if sa.Search("nab") != -1 || sa.Search("ban") != 0 || sa.Count("a") != 3 {
		t.Error("search disagrees with the text")
	}
	if sa.LongestRepeated() != "ana" {
		t.Errorf("longest repeated is %q", sa.LongestRepeated())
	}
}

func TestSuffixArray_Random(t *testing.T) {
	for range 50 {
		b := make([]byte, rg.Intn(200))
		for i := range b {
			b[i] = 'a' + byte(rg.Intn(3))
		}
		s := string(b)
		sa := NewSuffixArray(s)
		if !slices.Equal(sa.Suffixes(), naiveSA(s)) {
			t.Fatalf("suffix array of %q differs from the naive one", s)
		}
		for i := 1; i < len(s); i++ {
			x, y := s[sa.Suffixes()[i-1]:], s[sa.Suffixes()[i]:]
			h := 0
			for h < len(x) && h < len(y) && x[h] == y[h] {
				h++
			}
			if sa.LCP()[i] != h {
				t.Fatalf("lcp[%d] of %q is %d, want %d", i, s, sa.LCP()[i], h)
			}
		}
		p := "ab"
		var want []int
		for i := range len(s) {
			if strings.HasPrefix(s[i:], p) {
				want = append(want, i)
			}
		}
		if got := sa.Lookup(p); !slices.Equal(got, want) && len(got)+len(want) > 0 {
			t.Fatalf("lookup %q in %q is %v, want %v", p, s, got, want)
		}
	}
	if NewSuffixArray("").Search("a") != -1 {
		t.Error("found a pattern in the empty text")
	}
}
