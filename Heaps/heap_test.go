package Heaps

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/emirpasic/gods/trees/binaryheap"
)

var rg = rand.New(rand.NewSource(0))

func TestBinaryHeap_AgainstGods(t *testing.T) {
	h := NewMin[int]()
	ref := binaryheap.NewWithIntComparator()
	for range 5000 {
		if rg.Intn(3) == 0 {
			want, ok := ref.Pop()
			got, err := h.Pop()
			if ok != (err == nil) || (ok && got != want.(int)) {
				t.Fatalf("pop gave %d,%v want %v,%v", got, err, want, ok)
			}
		} else {
			v := rg.Intn(1000)
			ref.Push(v)
			h.Push(v)
		}
		if h.Len() != ref.Size() {
			t.Fatalf("heap size is %d, want %d", h.Len(), ref.Size())
		}
	}
}

func TestBinaryHeap_Empty(t *testing.T) {
	h := NewMax[string]()
	if _, err := h.Pop(); err != ErrEmptyHeap {
		t.Errorf("pop on empty heap gave %v", err)
	}
	if _, err := h.Peek(); err != ErrEmptyHeap {
		t.Errorf("peek on empty heap gave %v", err)
	}
	h.Push("b")
	h.Push("c")
	h.Push("a")
	if v, _ := h.Peek(); v != "c" {
		t.Errorf("max is %q", v)
	}
}

func TestHeapify(t *testing.T) {
	s := rg.Perm(1000)
	h := Heapify(s, func(a, b int) bool { return a > b })
	if !h.Remove(500) || h.Remove(500) {
		t.Error("remove 500 should succeed exactly once")
	}
	var got []int
	for !h.Empty() {
		v, _ := h.Pop()
		got = append(got, v)
	}
	if len(got) != 999 || !slices.IsSortedFunc(got, func(a, b int) int { return b - a }) {
		t.Error("heapified slice doesn't pop in descending order")
	}
}

func TestFibHeap_Sort(t *testing.T) {
	h := NewFibHeap[int, struct{}]()
	p := rg.Perm(2000)
	for _, v := range p {
		h.Insert(v, struct{}{})
	}
	for i := range 2000 {
		n, err := h.ExtractMin()
		if err != nil || n.Key() != i {
			t.Fatalf("extracted %v,%v want %d", n, err, i)
		}
	}
	if _, err := h.ExtractMin(); err != ErrEmptyHeap {
		t.Errorf("extract on empty heap gave %v", err)
	}
}

func TestFibHeap_DecreaseKeyDelete(t *testing.T) {
	h := NewFibHeap[int, int]()
	nodes := make([]*FibNode[int, int], 1000)
	keys := make(map[int]int)
	for i := range nodes {
		nodes[i] = h.Insert(10000+i, i)
		keys[i] = 10000 + i
	}
	// consolidate once so that there are children to cut.
	n, _ := h.ExtractMin()
	delete(keys, n.Value)
	nodes[n.Value] = nil
	for range 3000 {
		i := rg.Intn(len(nodes))
		if nodes[i] == nil {
			continue
		}
		switch rg.Intn(4) {
		case 0:
			h.Delete(nodes[i])
			nodes[i] = nil
			delete(keys, i)
		default:
			k := nodes[i].Key() - rg.Intn(50)
			if err := h.DecreaseKey(nodes[i], k); err != nil {
				t.Fatal(err)
			}
			keys[i] = k
		}
	}
	if h.Len() != len(keys) {
		t.Fatalf("heap size is %d, want %d", h.Len(), len(keys))
	}
	if err := h.DecreaseKey(h.min, h.min.Key()+1); err != ErrKeyIncrease {
		t.Errorf("increasing a key gave %v", err)
	}
	prev := -1 << 31
	for h.Len() > 0 {
		n, _ := h.ExtractMin()
		if n.Key() < prev || keys[n.Value] != n.Key() {
			t.Fatalf("extracted key %d of %d after %d, want key %d", n.Key(), n.Value, prev, keys[n.Value])
		}
		prev = n.Key()
	}
}

func TestFibHeap_Merge(t *testing.T) {
	a, b := NewFibHeap[int, string](), NewFibHeap[int, string]()
	a.Insert(5, "five")
	a.Insert(3, "three")
	b.Insert(4, "four")
	b.Insert(1, "one")
	a.Merge(b)
	if a.Len() != 4 || b.Len() != 0 {
		t.Errorf("sizes are %d and %d", a.Len(), b.Len())
	}
	var got []string
	for a.Len() > 0 {
		n, _ := a.ExtractMin()
		got = append(got, n.Value)
	}
	if !slices.Equal(got, []string{"one", "three", "four", "five"}) {
		t.Errorf("merged order is %v", got)
	}
	if _, err := b.Min(); err != ErrEmptyHeap {
		t.Error("emptied heap has a minimum")
	}
}

func BenchmarkBinaryHeap(b *testing.B) {
	p := rand.Perm(1 << 14)
	for range b.N {
		h := NewMin[int]()
		for _, v := range p {
			h.Push(v)
		}
		for !h.Empty() {
			h.Pop()
		}
	}
}

func BenchmarkGodsBinaryHeap(b *testing.B) {
	p := rand.Perm(1 << 14)
	for range b.N {
		h := binaryheap.NewWithIntComparator()
		for _, v := range p {
			h.Push(v)
		}
		for !h.Empty() {
			h.Pop()
		}
	}
}
