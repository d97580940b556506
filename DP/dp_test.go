package DP

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/Aldrin-Shanty/DSA/Graphs"
)

var rg = rand.New(rand.NewSource(0))

func TestKnapsack01(t *testing.T) {
	best, chosen, err := Knapsack01([]int{1, 2, 5, 6}, []int{2, 3, 4, 5}, 8)
	if err != nil || best != 8 || !slices.Equal(chosen, []int{1, 3}) {
		t.Errorf("got %d %v %v", best, chosen, err)
	}
	if best, chosen, _ := Knapsack01(nil, nil, 10); best != 0 || chosen != nil {
		t.Error("no items gave a profit")
	}
	if _, _, err := Knapsack01([]int{1}, nil, 1); err != ErrLengthMismatch {
		t.Errorf("mismatch gave %v", err)
	}
	if _, _, err := Knapsack01([]int{1}, []int{1}, -1); err != ErrNegative {
		t.Errorf("negative capacity gave %v", err)
	}
}

// bruteKnapsack tries every subset.
func bruteKnapsack(p, w []int, c int) int {
	best := 0
	for mask := range 1 << len(p) {
		tp, tw := 0, 0
		for i := range p {
			if mask&(1<<i) != 0 {
				tp += p[i]
				tw += w[i]
			}
		}
		if tw <= c {
			best = max(best, tp)
		}
	}
	return best
}

func TestKnapsack01_Brute(t *testing.T) {
	for range 200 {
		n := rg.Intn(10)
		p, w := make([]int, n), make([]int, n)
		for i := range n {
			p[i], w[i] = rg.Intn(30), rg.Intn(15)
		}
		c := rg.Intn(40)
		best, chosen, _ := Knapsack01(p, w, c)
		if want := bruteKnapsack(p, w, c); best != want {
			t.Fatalf("best %d, want %d", best, want)
		}
		tp, tw := 0, 0
		for _, i := range chosen {
			tp += p[i]
			tw += w[i]
		}
		if tp != best || tw > c {
			t.Fatalf("chosen %v has profit %d and weight %d", chosen, tp, tw)
		}
	}
}

func TestMatrixChain(t *testing.T) {
	cost, parens, err := MatrixChain([]int{5, 4, 6, 2, 7})
	if err != nil || cost != 158 || parens != "((A1 x (A2 x A3)) x A4)" {
		t.Errorf("got %d %q %v", cost, parens, err)
	}
	if cost, parens, _ := MatrixChain([]int{10, 20}); cost != 0 || parens != "A1" {
		t.Errorf("one matrix gave %d %q", cost, parens)
	}
	if cost, _, _ := MatrixChain([]int{10, 30, 5, 60}); cost != 4500 {
		t.Errorf("three matrices cost %d", cost)
	}
	for _, d := range [][]int{nil, {3}, {3, 0, 2}} {
		if _, _, err := MatrixChain(d); err != ErrInvalidDims {
			t.Errorf("%v gave %v", d, err)
		}
	}
}

func TestMultiStage(t *testing.T) {
	g := Graphs.NewGraph(9)
	for _, e := range [][3]int{{0, 1, 3}, {0, 2, 2}, {1, 3, 5}, {1, 4, 6}, {2, 3, 4}, {2, 4, 3}, {2, 5, 7},
		{3, 6, 2}, {3, 7, 1}, {4, 6, 6}, {4, 7, 5}, {5, 6, 8}, {5, 7, 7}, {6, 8, 3}, {7, 8, 4}} {
		g.AddArc(e[0], e[1], float64(e[2]))
	}
	path, cost, err := MultiStage(g)
	if err != nil || cost != 11 || !slices.Equal(path, []int{0, 2, 3, 6, 8}) {
		t.Errorf("got %v %v %v", path, cost, err)
	}
	dist, _, _ := g.Dijkstra(0)
	if dist[8] != cost {
		t.Errorf("dijkstra says %v", dist[8])
	}
	if _, _, err := MultiStage(Graphs.NewGraph(3)); err != ErrNoPath {
		t.Errorf("disconnected graph gave %v", err)
	}
	if path, cost, _ := MultiStage(Graphs.NewGraph(1)); cost != 0 || !slices.Equal(path, []int{0}) {
		t.Errorf("single vertex gave %v %v", path, cost)
	}
}
