package Lists

import (
	"math/rand"
	"slices"
	"testing"
)

var rg = rand.New(rand.NewSource(0))

// list is what both lists have in common, for running the same model test.
type list interface {
	PushFront(v int)
	PushBack(v int)
	DeleteAt(i int) (int, error)
	Has(v int) bool
	Reverse()
	Sort()
	Values() []int
	Len() int
}

type singly struct{ Singly[int] }

func (u *singly) PushFront(v int) { u.Singly.PushFront(v) }
func (u *singly) PushBack(v int)  { u.Singly.PushBack(v) }
func (u *singly) Has(v int) bool  { return u.Search(v) != nil }

type doubly struct{ Doubly[int] }

func (u *doubly) PushFront(v int) { u.Doubly.PushFront(v) }
func (u *doubly) PushBack(v int)  { u.Doubly.PushBack(v) }
func (u *doubly) Has(v int) bool  { return u.Search(v) != nil }

func TestList_Model(t *testing.T) {
	for name, l := range map[string]list{"Singly": &singly{}, "Doubly": &doubly{}} {
		t.Run(name, func(t *testing.T) {
			var model []int
			for range 3000 {
				switch rg.Intn(6) {
				case 0:
					v := rg.Intn(100)
					l.PushFront(v)
					model = slices.Insert(model, 0, v)
				case 1, 2:
					v := rg.Intn(100)
					l.PushBack(v)
					model = append(model, v)
				case 3:
					i := rg.Intn(len(model) + 2)
					v, err := l.DeleteAt(i)
					if i >= len(model) {
						if err != ErrIndexOutOfRange {
							t.Fatalf("delete at %d of %d gave %v", i, len(model), err)
						}
						continue
					}
					if err != nil || v != model[i] {
						t.Fatalf("delete at %d gave %d,%v want %d", i, v, err, model[i])
					}
					model = slices.Delete(model, i, i+1)
				case 4:
					if rg.Intn(10) == 0 {
						l.Reverse()
						slices.Reverse(model)
					}
				case 5:
					v := rg.Intn(100)
					if l.Has(v) != slices.Contains(model, v) {
						t.Fatalf("has %d is %v", v, l.Has(v))
					}
				}
				if l.Len() != len(model) {
					t.Fatalf("length is %d, want %d", l.Len(), len(model))
				}
			}
			if !slices.Equal(l.Values(), model) {
				t.Fatal("values differ from the model")
			}
			l.Sort()
			slices.Sort(model)
			if !slices.Equal(l.Values(), model) {
				t.Error("sorted values differ from the model")
			}
			l.PushBack(1000)
			if v := l.Values(); v[len(v)-1] != 1000 {
				t.Error("tail is stale after sort")
			}
		})
	}
}

func TestSingly_InsertAfter(t *testing.T) {
	var l Singly[string]
	a := l.PushBack("a")
	l.PushBack("c")
	l.InsertAfter(a, "b")
	last := l.InsertAfter(l.Search("c"), "d")
	l.PushBack("e")
	if !slices.Equal(l.Values(), []string{"a", "b", "c", "d", "e"}) {
		t.Errorf("values are %v", l.Values())
	}
	if last.Next().V != "e" {
		t.Error("tail wasn't moved by insert after")
	}
	if l.Search("z") != nil {
		t.Error("found a missing value")
	}
}

func TestDoubly_Links(t *testing.T) {
	var l Doubly[int]
	for i := range 10 {
		l.PushBack(i)
	}
	l.Reverse()
	var back []int
	for n := l.Back(); n != nil; n = n.Prev() {
		back = append(back, n.V)
	}
	if !slices.Equal(back, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}) {
		t.Errorf("backward walk is %v", back)
	}
	l.Remove(l.Front())
	l.Remove(l.Back())
	if l.Front().V != 8 || l.Back().V != 1 || l.Len() != 8 {
		t.Errorf("ends are %d and %d", l.Front().V, l.Back().V)
	}
	if _, err := l.DeleteAt(-1); err != ErrIndexOutOfRange {
		t.Error("negative index accepted")
	}
}
