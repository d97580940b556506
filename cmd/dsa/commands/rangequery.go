package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aldrin-Shanty/DSA/RangeQuery"
	"github.com/Aldrin-Shanty/DSA/internal/render"
)

// NewRangeCommand creates the range command.
func NewRangeCommand(app *App) *cobra.Command {
	var (
		queries []string
		random  int
	)

	cmd := &cobra.Command{
		Use:   "range [values...]",
		Short: "Answer sum, min and max queries over half-open ranges l,r",
		Example: `  dsa range 5 2 8 1 9 --query 0,3 --query 2,5`,
		RunE: func(_ *cobra.Command, args []string) error {
			vals, err := app.ints(args, random)
			if err != nil {
				return err
			}

			fen := RangeQuery.NewFenwickTree(vals)
			lo, hi := RangeQuery.NewMin(vals), RangeQuery.NewMax(vals)

			r := &render.Result{Title: "range queries", Columns: []string{"range", "sum", "min", "max"}}
			r.Add("size", len(vals)).Add("total", fen.PrefixSum(len(vals)))
			for _, q := range queries {
				b, err := parseInts([]string{q})
				if err != nil {
					return err
				}
				if len(b) != 2 || b[0] < 0 || b[0] > b[1] || b[1] > len(vals) {
					return fmt.Errorf("%w: range %q", ErrBadValue, q)
				}
				mn, ok := lo.Query(b[0], b[1])
				if !ok {
					r.Row(fmt.Sprintf("[%d, %d)", b[0], b[1]), 0, "-", "-")
					continue
				}
				mx, _ := hi.Query(b[0], b[1])
				r.Row(fmt.Sprintf("[%d, %d)", b[0], b[1]), fen.RangeSum(b[0], b[1]), mn, mx)
			}
			app.Logger.Debug("answered range queries", "n", len(vals), "queries", len(queries))

			return app.Renderer.Render(r)
		},
	}

	cmd.Flags().StringArrayVarP(&queries, "query", "q", nil, "half-open range l,r; repeatable")
	cmd.Flags().IntVarP(&random, "random", "r", 0, "use this many random values instead")

	return cmd
}
