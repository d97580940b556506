package Graphs

// DisjointSet (union-find) over 0..n-1 with path halving and union by size.
type DisjointSet struct {
	parent, size []int
	sets         int
}

func NewDisjointSet(n int) *DisjointSet {
	u := &DisjointSet{make([]int, n), make([]int, n), n}
	for i := range n {
		u.parent[i], u.size[i] = i, 1
	}
	return u
}

// Find the representative of x.
// Time: amortized O(α(n))
func (u *DisjointSet) Find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

// Union the sets of x and y. Returns false when they were already one set.
func (u *DisjointSet) Union(x, y int) bool {
	x, y = u.Find(x), u.Find(y)
	if x == y {
		return false
	}
	if u.size[x] < u.size[y] {
		x, y = y, x
	}
	u.parent[y] = x
	u.size[x] += u.size[y]
	u.sets--
	return true
}

// Sets is the number of disjoint sets.
func (u *DisjointSet) Sets() int {
	return u.sets
}
