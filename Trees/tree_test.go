package Trees

import (
	"slices"
	"sync"
	"testing"
)

// makers of the trees that reject duplicates.
var setTrees = map[string]func() Tree[int]{
	"AVLTree": func() Tree[int] { return MakeAVLTree[int]() },
	"BSTree":  func() Tree[int] { return MakeBSTree[int]() },
	"Locked":  func() Tree[int] { return NewLocked[int](MakeAVLTree[int]()) },
}

func TestTree_Set(t *testing.T) {
	for name, mk := range setTrees {
		t.Run(name, func(t *testing.T) {
			tree := mk()
			content := make(map[int]struct{})
			for range tAddN {
				v := rg.Intn(tAddValRange)
				_, in := content[v]
				if tree.Insert(v) == in {
					t.Errorf("insert %d returned %v", v, in)
				}
				content[v] = struct{}{}
			}
			if tree.Corrupt() {
				t.Fatal("tree is corrupt after insertions")
			}
			if int(tree.Size()) != len(content) {
				t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
			}
			for range tAddN {
				v := rg.Intn(tAddValRange)
				_, in := content[v]
				if tree.Delete(v) != in {
					t.Errorf("delete %d returned %v", v, !in)
				}
				delete(content, v)
			}
			if tree.Corrupt() {
				t.Fatal("tree is corrupt after deletions")
			}
			for k := range content {
				if !tree.Has(k) {
					t.Errorf("tree does not have key %d", k)
				}
			}
			all := Collect(tree.InOrder)
			if len(all) != len(content) || !slices.IsSorted(all) {
				t.Errorf("in-order has %d elements, want %d sorted", len(all), len(content))
			}
		})
	}
}

func TestAVLTree_Balanced(t *testing.T) {
	tree := MakeAVLTree[int]()
	for i := range 1 << 12 {
		tree.Insert(i)
		if i%512 == 0 && tree.Corrupt() {
			t.Fatalf("tree is corrupt after inserting %d", i)
		}
	}
	// h < 1.44*log2(n+2)
	if h := tree.Height(); h > 18 {
		t.Errorf("height %d of a sorted insertion is too large", h)
	}
	for i := 0; i < 1<<12; i += 2 {
		tree.Delete(i)
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt after deleting the evens")
	}
}

func TestBuildAVLTree(t *testing.T) {
	s := make([]int, 1000)
	for i := range s {
		s[i] = i * 3
	}
	tree := BuildAVLTree(s)
	if tree.Corrupt() {
		t.Fatal("built tree is corrupt")
	}
	if !slices.Equal(Collect(tree.InOrder), s) {
		t.Error("built tree doesn't hold the slice")
	}
	tree.Insert(1)
	if tree.Corrupt() || tree.Size() != 1001 {
		t.Error("built tree is corrupt after an insertion")
	}

	defer func() {
		if _, ok := recover().(InvalidSliceError); !ok {
			t.Error("unsorted slice didn't panic with InvalidSliceError")
		}
	}()
	BuildAVLTree([]int{1, 3, 2})
}

func TestBSTree_Degenerate(t *testing.T) {
	tree := MakeBSTree[int]()
	for i := range 1000 {
		tree.Insert(i)
	}
	if tree.Height() != 1000 {
		t.Errorf("height of a sorted insertion is %d, want 1000", tree.Height())
	}
	if got := Collect(tree.PreOrder)[:3]; !slices.Equal(got, []int{0, 1, 2}) {
		t.Errorf("pre-order starts with %v", got)
	}
	if got := Collect(tree.PostOrder)[:3]; !slices.Equal(got, []int{999, 998, 997}) {
		t.Errorf("post-order starts with %v", got)
	}
}

func TestBSTree_DeleteTwoChildren(t *testing.T) {
	tree := MakeBSTree[int]()
	for _, v := range []int{50, 30, 70, 60, 80, 65} {
		tree.Insert(v)
	}
	tree.Delete(50)
	if got := Collect(tree.InOrder); !slices.Equal(got, []int{30, 60, 65, 70, 80}) {
		t.Errorf("in-order is %v", got)
	}
	if got := Collect(tree.PreOrder); got[0] != 60 {
		t.Errorf("root is %d, want the successor 60", got[0])
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt")
	}
}

func TestLocked_Concurrent(t *testing.T) {
	tree := NewLocked[int](MakeRBTree[int]())
	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 500 {
				tree.Insert(w*1000 + i)
				tree.Has(i)
			}
		}()
	}
	wg.Wait()
	if tree.Size() != 8*500 || tree.Corrupt() {
		t.Errorf("tree size is %d, corrupt is %v", tree.Size(), tree.Corrupt())
	}
}
