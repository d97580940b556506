package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aldrin-Shanty/DSA/DP"
	"github.com/Aldrin-Shanty/DSA/internal/render"
)

// NewDPCommand creates the dp command and its subcommands.
func NewDPCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dp",
		Short: "Dynamic programming problems",
	}

	cmd.AddCommand(newKnapsackCommand(app), newMatrixChainCommand(app), newMultiStageCommand(app))

	return cmd
}

func newKnapsackCommand(app *App) *cobra.Command {
	var (
		profits, weights []string
		capacity         int
	)

	cmd := &cobra.Command{
		Use:     "knapsack",
		Short:   "Solve a 0/1 knapsack",
		Example: `  dsa dp knapsack --profits 1,2,5,6 --weights 2,3,4,5 --capacity 8`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := parseInts(profits)
			if err != nil {
				return err
			}
			w, err := parseInts(weights)
			if err != nil {
				return err
			}
			best, chosen, err := DP.Knapsack01(p, w, capacity)
			if err != nil {
				return err
			}
			app.Logger.Debug("solved knapsack", "items", len(p), "capacity", capacity)

			r := &render.Result{Title: "knapsack", Columns: []string{"item", "profit", "weight"}}
			r.Add("capacity", capacity).Add("best profit", best)
			for _, i := range chosen {
				r.Row(i, p[i], w[i])
			}

			return app.Renderer.Render(r)
		},
	}

	cmd.Flags().StringSliceVar(&profits, "profits", nil, "item profits")
	cmd.Flags().StringSliceVar(&weights, "weights", nil, "item weights")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "knapsack capacity")

	return cmd
}

func newMatrixChainCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "matrix-chain dims...",
		Short:   "Order a matrix chain product where matrix i is dims[i-1] x dims[i]",
		Example: `  dsa dp matrix-chain 5 4 6 2 7`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			dims, err := parseInts(args)
			if err != nil {
				return err
			}
			cost, parens, err := DP.MatrixChain(dims)
			if err != nil {
				return err
			}
			app.Logger.Debug("ordered matrix chain", "matrices", len(dims)-1)

			r := &render.Result{Title: "matrix chain"}
			r.Add("matrices", len(dims)-1).Add("multiplications", render.Count(cost)).Add("order", parens)

			return app.Renderer.Render(r)
		},
	}
}

func newMultiStageCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "multistage arcs...",
		Short:   "Find the cheapest path from vertex 0 to the last vertex of a stage graph",
		Example: `  dsa dp multistage 0-1:3 0-2:2 1-3:5 2-3:4`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := buildGraph(args, 0, true)
			if err != nil {
				return err
			}
			path, cost, err := DP.MultiStage(g)
			if err != nil {
				return fmt.Errorf("multistage: %w", err)
			}

			r := &render.Result{Title: "multistage graph"}
			r.Add("vertices", g.Len()).Add("cost", formatDist(cost)).Add("path", joinInts(path))

			return app.Renderer.Render(r)
		},
	}
}
