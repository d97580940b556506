package Graphs

import (
	"github.com/Aldrin-Shanty/DSA/Queues"
	"github.com/Aldrin-Shanty/DSA/Stacks"
)

// BFS visits the vertices reachable from s in breadth first order, calling
// f until it returns false. Neighbors are taken in arc insertion order.
func (g *Graph) BFS(s int, f func(v int) bool) error {
	if err := g.check(s); err != nil {
		return err
	}
	seen := make([]bool, g.Len())
	q := Queues.MakeArrayQueue[int](uint(g.Len()))
	q.Push(s)
	seen[s] = true
	for !q.Empty() {
		v, _ := q.Pop()
		if !f(v) {
			return nil
		}
		for _, e := range g.adj[v] {
			if !seen[e.To] {
				seen[e.To] = true
				q.Push(e.To)
			}
		}
	}
	return nil
}

// DFS visits the vertices reachable from s in depth first pre-order, calling
// f until it returns false. Neighbors are taken in arc insertion order, the
// same order a recursive DFS would use.
func (g *Graph) DFS(s int, f func(v int) bool) error {
	if err := g.check(s); err != nil {
		return err
	}
	seen := make([]bool, g.Len())
	st := Stacks.MakeStack[int](uint(g.Len()))
	st.Push(s)
	for !st.Empty() {
		v, _ := st.Pop()
		if seen[v] {
			continue
		}
		seen[v] = true
		if !f(v) {
			return nil
		}
		for i := len(g.adj[v]) - 1; i >= 0; i-- {
			if to := g.adj[v][i].To; !seen[to] {
				st.Push(to)
			}
		}
	}
	return nil
}

// Order collects the vertices a traversal such as g.BFS visits from s.
func Order(traverse func(int, func(int) bool) error, s int) ([]int, error) {
	var r []int
	err := traverse(s, func(v int) bool {
		r = append(r, v)
		return true
	})
	return r, err
}
