package Graphs

import (
	"cmp"
	"slices"

	"github.com/Aldrin-Shanty/DSA/Heaps"
)

// Prim grows a minimum spanning forest from every vertex not yet covered,
// lowest numbered first, taking the lightest arc leaving the tree from a
// binary heap. Arcs are treated as undirected only as far as the lists
// allow, so it is meant for graphs built with AddEdge.
// Time: O(E log E)
func (g *Graph) Prim() (total float64, tree []Edge) {
	in := make([]bool, g.Len())
	h := Heaps.New(func(a, b Edge) bool { return a.W < b.W })
	for r := range g.Len() {
		if in[r] {
			continue
		}
		in[r] = true
		for _, e := range g.adj[r] {
			h.Push(e)
		}
		for !h.Empty() {
			e, _ := h.Pop()
			if in[e.To] {
				continue
			}
			in[e.To] = true
			total += e.W
			tree = append(tree, e)
			for _, f := range g.adj[e.To] {
				if !in[f.To] {
					h.Push(f)
				}
			}
		}
	}
	return
}

// Kruskal builds a minimum spanning forest by taking edges in increasing
// weight, ties in insertion order, skipping those that close a cycle.
// Time: O(E log E)
func (g *Graph) Kruskal() (total float64, tree []Edge) {
	edges := slices.Clone(g.edges)
	slices.SortStableFunc(edges, func(a, b Edge) int { return cmp.Compare(a.W, b.W) })
	ds := NewDisjointSet(g.Len())
	for _, e := range edges {
		if ds.Union(e.From, e.To) {
			total += e.W
			tree = append(tree, e)
			if len(tree) == g.Len()-1 {
				break
			}
		}
	}
	return
}
