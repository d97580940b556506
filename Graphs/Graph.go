// Package Graphs holds a weighted graph over vertices 0..n-1 and the
// classic traversal, spanning tree and shortest path algorithms on it.
package Graphs

import (
	"errors"
	"math"
	"slices"
	"strconv"
)

var (
	ErrVertexOutOfRange = errors.New("vertex out of range")
	ErrNegativeWeight   = errors.New("graph has a negative weight")
	ErrNegativeCycle    = errors.New("graph has a negative cycle reachable from the source")
)

// VertexError is returned when a vertex isn't in 0..n-1. It matches
// ErrVertexOutOfRange with errors.Is.
type VertexError struct {
	V, N int
}

func (e *VertexError) Error() string {
	return "vertex " + strconv.Itoa(e.V) + " out of range [0, " + strconv.Itoa(e.N) + ")"
}

func (e *VertexError) Is(target error) bool {
	return target == ErrVertexOutOfRange
}

// Edge from From to To with weight W. For undirected edges From and To are
// interchangeable.
type Edge struct {
	From, To int
	W        float64
}

// Graph is a weighted graph kept both as adjacency lists and as an
// adjacency matrix. An undirected edge is stored as two opposite arcs in the
// lists and once in Edges.
type Graph struct {
	adj   [][]Edge
	mat   [][]float64 // +Inf where there is no arc, 0 on the diagonal.
	edges []Edge
}

// NewGraph with n vertices and no edges.
func NewGraph(n int) *Graph {
	mat := make([][]float64, n)
	for i := range mat {
		mat[i] = make([]float64, n)
		for j := range mat[i] {
			if i != j {
				mat[i][j] = math.Inf(1)
			}
		}
	}
	return &Graph{adj: make([][]Edge, n), mat: mat}
}

// Len is the number of vertices.
func (g *Graph) Len() int {
	return len(g.adj)
}

func (g *Graph) check(vs ...int) error {
	for _, v := range vs {
		if v < 0 || v >= len(g.adj) {
			return &VertexError{v, len(g.adj)}
		}
	}
	return nil
}

// AddArc adds the directed edge u->v. Parallel arcs are kept in the lists;
// the matrix keeps the lightest.
func (g *Graph) AddArc(u, v int, w float64) error {
	if err := g.check(u, v); err != nil {
		return err
	}
	e := Edge{u, v, w}
	g.adj[u] = append(g.adj[u], e)
	g.edges = append(g.edges, e)
	g.mat[u][v] = min(g.mat[u][v], w)
	return nil
}

// AddEdge adds the undirected edge u-v.
func (g *Graph) AddEdge(u, v int, w float64) error {
	if err := g.check(u, v); err != nil {
		return err
	}
	e := Edge{u, v, w}
	g.adj[u] = append(g.adj[u], e)
	if u != v {
		g.adj[v] = append(g.adj[v], Edge{v, u, w})
	}
	g.edges = append(g.edges, e)
	g.mat[u][v] = min(g.mat[u][v], w)
	g.mat[v][u] = min(g.mat[v][u], w)
	return nil
}

// Adj lists the arcs leaving v in insertion order. It shouldn't be modified.
func (g *Graph) Adj(v int) []Edge {
	return g.adj[v]
}

// Edges in insertion order, each undirected edge once.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// Matrix is the adjacency matrix. It shouldn't be modified.
func (g *Graph) Matrix() [][]float64 {
	return g.mat
}

// PathTo follows the predecessor array from t back to the source s, where
// prev[s] == -1. Returns nil when t wasn't reached from s.
func PathTo(prev []int, s, t int) []int {
	if t < 0 || t >= len(prev) {
		return nil
	}
	var p []int
	for v := t; v != -1; v = prev[v] {
		p = append(p, v)
		if len(p) > len(prev) {
			return nil
		}
	}
	if p[len(p)-1] != s {
		return nil
	}
	slices.Reverse(p)
	return p
}
