package Maps

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/Aldrin-Shanty/DSA"
)

var rg = rand.New(rand.NewSource(0))

var _ Map[int, int] = (*HashTable[int, int])(nil)

func TestHashTable_Model(t *testing.T) {
	m := NewIntTable[int](0, DSA.Hasher(rg.Uint64()))
	content := make(map[int]int)
	for i := range 20000 {
		k := rg.Intn(5000)
		switch rg.Intn(3) {
		case 0:
			_, in := content[k]
			if m.Remove(k) != in {
				t.Fatalf("remove %d returned %v", k, !in)
			}
			delete(content, k)
		default:
			old, replaced := m.Put(k, i)
			if want, in := content[k]; replaced != in || (in && old != want) {
				t.Fatalf("put %d replaced %d,%v want %d,%v", k, old, replaced, want, in)
			}
			content[k] = i
		}
		if m.LoadFactor() > 0.75 {
			t.Fatalf("load factor %f after %d operations", m.LoadFactor(), i)
		}
	}
	if int(m.Size()) != len(content) {
		t.Fatalf("size is %d, want %d", m.Size(), len(content))
	}
	for k, v := range content {
		if got, ok := m.Get(k); !ok || got != v {
			t.Errorf("get %d is %d,%v want %d", k, got, ok, v)
		}
	}
	n := 0
	m.Range(func(k, v int) bool {
		if content[k] != v {
			t.Errorf("range gave %d for %d", v, k)
		}
		n++
		return true
	})
	if n != len(content) {
		t.Errorf("range visited %d pairs, want %d", n, len(content))
	}
}

func TestHashTable_FitClear(t *testing.T) {
	m := NewStringTable[int](0, 0)
	for i := range 1000 {
		m.Put(strconv.Itoa(i), i)
	}
	grown := m.Buckets()
	for i := range 990 {
		m.Remove(strconv.Itoa(i))
	}
	m.Fit()
	if m.Buckets() >= grown || m.Buckets() < 16 {
		t.Errorf("buckets after fit are %d, before %d", m.Buckets(), grown)
	}
	for i := 990; i < 1000; i++ {
		if !m.HasKey(strconv.Itoa(i)) {
			t.Errorf("lost key %d after fit", i)
		}
	}
	m.Clear()
	if m.Size() != 0 || m.HasKey("995") {
		t.Error("clear didn't empty the table")
	}
}

func TestHashTable_Collisions(t *testing.T) {
	m := NewHashTable[string, int](4, func(string) uint64 { return 7 })
	for i := range 100 {
		m.Put(strconv.Itoa(i), i)
	}
	for i := range 100 {
		if v, _ := m.Get(strconv.Itoa(i)); v != i {
			t.Fatalf("get %d is %d with a constant hash", i, v)
		}
	}
	if !m.Remove("50") || m.HasKey("50") || m.Size() != 99 {
		t.Error("remove failed with a constant hash")
	}
}
