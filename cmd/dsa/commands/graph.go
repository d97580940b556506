package commands

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Aldrin-Shanty/DSA/Graphs"
	"github.com/Aldrin-Shanty/DSA/internal/render"
)

// parseEdge reads "u-v" or "u-v:w". The weight defaults to 1.
func parseEdge(s string) (Graphs.Edge, error) {
	e := Graphs.Edge{W: 1}
	ends, w, weighted := strings.Cut(s, ":")
	u, v, ok := strings.Cut(ends, "-")
	if !ok {
		return e, fmt.Errorf("%w: edge %q isn't u-v or u-v:w", ErrBadValue, s)
	}
	var err error
	if e.From, err = strconv.Atoi(u); err != nil {
		return e, fmt.Errorf("%w: edge %q", ErrBadValue, s)
	}
	if e.To, err = strconv.Atoi(v); err != nil {
		return e, fmt.Errorf("%w: edge %q", ErrBadValue, s)
	}
	if weighted {
		if e.W, err = strconv.ParseFloat(w, 64); err != nil {
			return e, fmt.Errorf("%w: edge %q", ErrBadValue, s)
		}
	}
	return e, nil
}

func buildGraph(args []string, n int, directed bool) (*Graphs.Graph, error) {
	edges := make([]Graphs.Edge, 0, len(args))
	for _, a := range args {
		e, err := parseEdge(a)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
		if n <= max(e.From, e.To) && e.From >= 0 && e.To >= 0 {
			n = max(e.From, e.To) + 1
		}
	}
	g := Graphs.NewGraph(n)
	for _, e := range edges {
		add := g.AddEdge
		if directed {
			add = g.AddArc
		}
		if err := add(e.From, e.To, e.W); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func formatDist(d float64) string {
	if math.IsInf(d, 1) {
		return "inf"
	}
	return strconv.FormatFloat(d, 'g', -1, 64)
}

// NewGraphCommand creates the graph command.
func NewGraphCommand(app *App) *cobra.Command {
	var (
		algo     string
		source   int
		vertices int
		directed bool
	)

	cmd := &cobra.Command{
		Use:   "graph [edges...]",
		Short: "Run a graph algorithm over edges given as u-v or u-v:w",
		Example: `  dsa graph 0-1:4 0-2:1 2-1:2 1-3:1 --directed --algo dijkstra
  dsa graph 0-1:4 1-2:8 0-2:3 --algo kruskal`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := buildGraph(args, vertices, directed)
			if err != nil {
				return err
			}
			app.Logger.Debug("built graph", "vertices", g.Len(), "edges", len(g.Edges()), "directed", directed)

			r := &render.Result{Title: algo}
			r.Add("vertices", g.Len()).Add("edges", len(g.Edges()))

			switch algo {
			case "bfs", "dfs":
				walk := g.BFS
				if algo == "dfs" {
					walk = g.DFS
				}
				order, err := Graphs.Order(walk, source)
				if err != nil {
					return err
				}
				r.Add("order", joinInts(order))
			case "dijkstra", "bellman-ford":
				shortest := g.Dijkstra
				if algo == "bellman-ford" {
					shortest = g.BellmanFord
				}
				dist, prev, err := shortest(source)
				if err != nil {
					return err
				}
				r.Columns = []string{"vertex", "distance", "path"}
				for v, d := range dist {
					r.Row(v, formatDist(d), joinInts(Graphs.PathTo(prev, source, v)))
				}
			case "floyd":
				dist, _, err := g.FloydWarshall()
				if err != nil {
					return err
				}
				r.Columns = append(r.Columns, "from")
				for v := range g.Len() {
					r.Columns = append(r.Columns, strconv.Itoa(v))
				}
				for u, row := range dist {
					cells := []any{u}
					for _, d := range row {
						cells = append(cells, formatDist(d))
					}
					r.Row(cells...)
				}
			case "prim", "kruskal":
				mst := g.Prim
				if algo == "kruskal" {
					mst = g.Kruskal
				}
				total, tree := mst()
				r.Add("total weight", formatDist(total))
				r.Columns = []string{"from", "to", "weight"}
				for _, e := range tree {
					r.Row(e.From, e.To, formatDist(e.W))
				}
			default:
				return fmt.Errorf("%w: %q", ErrUnknownKind, algo)
			}

			return app.Renderer.Render(r)
		},
	}

	cmd.Flags().StringVarP(&algo, "algo", "a", "bfs", "algorithm: bfs, dfs, dijkstra, bellman-ford, floyd, prim or kruskal")
	cmd.Flags().IntVarP(&source, "source", "s", 0, "source vertex")
	cmd.Flags().IntVarP(&vertices, "vertices", "n", 0, "number of vertices, at least one more than the largest in the edges")
	cmd.Flags().BoolVar(&directed, "directed", false, "edges are directed arcs")

	return cmd
}
