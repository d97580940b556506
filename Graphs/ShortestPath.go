package Graphs

import (
	"math"

	"github.com/Aldrin-Shanty/DSA/Heaps"
)

// newDist returns distances of +Inf and predecessors of -1, with dist[s] = 0.
func (g *Graph) newDist(s int) (dist []float64, prev []int) {
	dist, prev = make([]float64, g.Len()), make([]int, g.Len())
	for i := range dist {
		dist[i], prev[i] = math.Inf(1), -1
	}
	dist[s] = 0
	return
}

// Dijkstra computes the shortest distances from s with a Fibonacci heap,
// decreasing keys in place. Unreachable vertices have distance +Inf.
// Time: O(E + V log V)
func (g *Graph) Dijkstra(s int) (dist []float64, prev []int, err error) {
	if err = g.check(s); err != nil {
		return
	}
	for _, e := range g.edges {
		if e.W < 0 {
			return nil, nil, ErrNegativeWeight
		}
	}
	dist, prev = g.newDist(s)
	h := Heaps.NewFibHeap[float64, int]()
	nodes := make([]*Heaps.FibNode[float64, int], g.Len())
	done := make([]bool, g.Len())
	nodes[s] = h.Insert(0, s)
	for h.Len() > 0 {
		n, _ := h.ExtractMin()
		v := n.Value
		done[v] = true
		for _, e := range g.adj[v] {
			if d := dist[v] + e.W; !done[e.To] && d < dist[e.To] {
				dist[e.To], prev[e.To] = d, v
				if nodes[e.To] == nil {
					nodes[e.To] = h.Insert(d, e.To)
				} else {
					h.DecreaseKey(nodes[e.To], d)
				}
			}
		}
	}
	return
}

// BellmanFord computes the shortest distances from s allowing negative
// weights. Returns ErrNegativeCycle when a negative cycle is reachable.
// Time: O(VE)
func (g *Graph) BellmanFord(s int) (dist []float64, prev []int, err error) {
	if err = g.check(s); err != nil {
		return
	}
	dist, prev = g.newDist(s)
	relax := func() (changed bool) {
		for v := range g.adj {
			if math.IsInf(dist[v], 1) {
				continue
			}
			for _, e := range g.adj[v] {
				if d := dist[v] + e.W; d < dist[e.To] {
					dist[e.To], prev[e.To] = d, v
					changed = true
				}
			}
		}
		return
	}
	for range g.Len() - 1 {
		if !relax() {
			return
		}
	}
	if relax() {
		return nil, nil, ErrNegativeCycle
	}
	return
}

// FloydWarshall computes all pairs shortest distances. next[i][j] is the
// vertex after i on a shortest path to j, -1 when j is unreachable.
// Time: O(V^3)
func (g *Graph) FloydWarshall() (dist [][]float64, next [][]int, err error) {
	n := g.Len()
	dist, next = make([][]float64, n), make([][]int, n)
	for i := range n {
		dist[i] = make([]float64, n)
		copy(dist[i], g.mat[i])
		next[i] = make([]int, n)
		for j := range n {
			if next[i][j] = -1; !math.IsInf(dist[i][j], 1) {
				next[i][j] = j
			}
		}
	}
	for k := range n {
		for i := range n {
			if math.IsInf(dist[i][k], 1) {
				continue
			}
			for j := range n {
				if d := dist[i][k] + dist[k][j]; d < dist[i][j] {
					dist[i][j], next[i][j] = d, next[i][k]
				}
			}
		}
	}
	for i := range n {
		if dist[i][i] < 0 {
			return nil, nil, ErrNegativeCycle
		}
	}
	return
}

// FloydPath from u to v using next from FloydWarshall, nil if unreachable.
func FloydPath(next [][]int, u, v int) []int {
	if next[u][v] == -1 {
		return nil
	}
	p := []int{u}
	for u != v {
		u = next[u][v]
		p = append(p, u)
	}
	return p
}
