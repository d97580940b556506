package RangeQuery

import (
	"math/rand"
	"testing"
)

var rg = rand.New(rand.NewSource(0))

func TestFenwickTree_Model(t *testing.T) {
	data := make([]int, 100)
	for i := range data {
		data[i] = rg.Intn(100) - 50
	}
	f := NewFenwickTree(data)
	for range 2000 {
		i := rg.Intn(len(data))
		switch rg.Intn(3) {
		case 0:
			d := rg.Intn(20) - 10
			f.Add(i, d)
			data[i] += d
		case 1:
			v := rg.Intn(100)
			f.Set(i, v)
			data[i] = v
		case 2:
			l := rg.Intn(len(data) + 1)
			r := l + rg.Intn(len(data)+1-l)
			want := 0
			for _, v := range data[l:r] {
				want += v
			}
			if got := f.RangeSum(l, r); got != want {
				t.Fatalf("sum of [%d, %d) is %d, want %d", l, r, got, want)
			}
		}
	}
	for i, v := range data {
		if f.Get(i) != v {
			t.Errorf("element %d is %d, want %d", i, f.Get(i), v)
		}
	}
}

func TestFenwickTree_Example(t *testing.T) {
	f := NewFenwickTree([]float64{1, 3, 5, 7, 9, 11})
	if f.PrefixSum(4) != 16 || f.RangeSum(1, 4) != 15 || f.Len() != 6 {
		t.Error("sums of 1 3 5 7 9 11 are wrong")
	}
	f.Set(0, 10)
	if f.PrefixSum(6) != 45 {
		t.Errorf("total after set is %f", f.PrefixSum(6))
	}
}

func TestSegmentTree_Model(t *testing.T) {
	for _, n := range []int{1, 2, 7, 64, 100} {
		data := make([]int, n)
		for i := range data {
			data[i] = rg.Intn(1000)
		}
		sum, mn, mx := NewSum(data), NewMin(data), NewMax(data)
		for range 500 {
			if rg.Intn(2) == 0 {
				i, v := rg.Intn(n), rg.Intn(1000)
				sum.Update(i, v)
				mn.Update(i, v)
				mx.Update(i, v)
				data[i] = v
				continue
			}
			l := rg.Intn(n + 1)
			r := l + rg.Intn(n+1-l)
			s, ok := sum.Query(l, r)
			if ok != (l < r) {
				t.Fatalf("n=%d: query [%d, %d) ok is %v", n, l, r, ok)
			}
			if !ok {
				continue
			}
			ws, wmn, wmx := 0, data[l], data[l]
			for _, v := range data[l:r] {
				ws += v
				wmn, wmx = min(wmn, v), max(wmx, v)
			}
			a, _ := mn.Query(l, r)
			b, _ := mx.Query(l, r)
			if s != ws || a != wmn || b != wmx {
				t.Fatalf("n=%d [%d, %d): got %d %d %d want %d %d %d", n, l, r, s, a, b, ws, wmn, wmx)
			}
		}
	}
}

func TestSegmentTree_Order(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e", "f", "g"}
	st := NewSegmentTree(words, func(a, b string) string { return a + b })
	for l := range len(words) {
		for r := l + 1; r <= len(words); r++ {
			want := ""
			for _, w := range words[l:r] {
				want += w
			}
			if got, _ := st.Query(l, r); got != want {
				t.Errorf("concatenation of [%d, %d) is %q, want %q", l, r, got, want)
			}
		}
	}
	st.Update(3, "X")
	if got, _ := st.Query(0, 7); got != "abcXefg" || st.Get(3) != "X" {
		t.Errorf("after update the concatenation is %q", got)
	}
}
