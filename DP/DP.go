// Package DP holds dynamic programming solutions to the 0/1 knapsack,
// matrix chain ordering and multistage graph problems.
package DP

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/Aldrin-Shanty/DSA/Graphs"
)

var (
	ErrLengthMismatch = errors.New("profits and weights differ in length")
	ErrNegative       = errors.New("weights and capacity must be non-negative")
	ErrInvalidDims    = errors.New("matrix chain needs at least two positive dimensions")
	ErrNoPath         = errors.New("no path from the first to the last vertex")
)

// Knapsack01 picks a subset of items, each taken whole or not at all, with
// total weight at most capacity and the largest total profit. chosen lists
// the picked item indices ascending.
// Time: O(n * capacity)
func Knapsack01(profits, weights []int, capacity int) (best int, chosen []int, err error) {
	if len(profits) != len(weights) {
		return 0, nil, ErrLengthMismatch
	}
	if capacity < 0 {
		return 0, nil, ErrNegative
	}
	for _, w := range weights {
		if w < 0 {
			return 0, nil, ErrNegative
		}
	}
	n := len(profits)
	// k[i][w] is the best profit of the first i items within weight w.
	k := make([][]int, n+1)
	k[0] = make([]int, capacity+1)
	for i := 1; i <= n; i++ {
		k[i] = make([]int, capacity+1)
		p, wt := profits[i-1], weights[i-1]
		for w := range capacity + 1 {
			k[i][w] = k[i-1][w]
			if wt <= w {
				k[i][w] = max(k[i][w], p+k[i-1][w-wt])
			}
		}
	}
	for i, w := n, capacity; i > 0; i-- {
		if k[i][w] != k[i-1][w] {
			chosen = append(chosen, i-1)
			w -= weights[i-1]
		}
	}
	for l, r := 0, len(chosen)-1; l < r; l, r = l+1, r-1 {
		chosen[l], chosen[r] = chosen[r], chosen[l]
	}
	return k[n][capacity], chosen, nil
}

// MatrixChain finds the cheapest order to multiply matrices A1..An where Ai
// is dims[i-1] x dims[i]. cost counts scalar multiplications; parens is the
// order, as in "((A1 x (A2 x A3)) x A4)".
// Time: O(n^3)
func MatrixChain(dims []int) (cost int, parens string, err error) {
	if len(dims) < 2 {
		return 0, "", ErrInvalidDims
	}
	for _, d := range dims {
		if d <= 0 {
			return 0, "", ErrInvalidDims
		}
	}
	n := len(dims) - 1
	// m[i][j] is the cost of Ai+1..Aj+1, s[i][j] where it splits.
	m, s := make([][]int, n), make([][]int, n)
	for i := range n {
		m[i], s[i] = make([]int, n), make([]int, n)
	}
	for l := 2; l <= n; l++ {
		for i := 0; i+l <= n; i++ {
			j := i + l - 1
			m[i][j] = math.MaxInt
			for k := i; k < j; k++ {
				if q := m[i][k] + m[k+1][j] + dims[i]*dims[k+1]*dims[j+1]; q < m[i][j] {
					m[i][j], s[i][j] = q, k
				}
			}
		}
	}
	var b strings.Builder
	writeParens(&b, s, 0, n-1)
	return m[0][n-1], b.String(), nil
}

func writeParens(b *strings.Builder, s [][]int, i, j int) {
	if i == j {
		b.WriteString("A" + strconv.Itoa(i+1))
		return
	}
	b.WriteByte('(')
	writeParens(b, s, i, s[i][j])
	b.WriteString(" x ")
	writeParens(b, s, s[i][j]+1, j)
	b.WriteByte(')')
}

// MultiStage finds the least cost path from vertex 0 to the last vertex of a
// multistage graph, working backwards from the last vertex. Only arcs from a
// lower to a higher numbered vertex are considered; ties go to the lower
// numbered successor.
// Time: O(V^2)
func MultiStage(g *Graphs.Graph) (path []int, cost float64, err error) {
	n := g.Len()
	if n == 0 {
		return nil, 0, ErrNoPath
	}
	mat := g.Matrix()
	c, d := make([]float64, n), make([]int, n)
	for i := range n - 1 {
		c[i], d[i] = math.Inf(1), -1
	}
	d[n-1] = -1
	for i := n - 2; i >= 0; i-- {
		for j := i + 1; j < n; j++ {
			if w := mat[i][j] + c[j]; w < c[i] {
				c[i], d[i] = w, j
			}
		}
	}
	if math.IsInf(c[0], 1) {
		return nil, c[0], ErrNoPath
	}
	for v := 0; v != -1; v = d[v] {
		path = append(path, v)
	}
	return path, c[0], nil
}
