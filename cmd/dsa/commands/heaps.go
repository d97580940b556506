package commands

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/Aldrin-Shanty/DSA/Heaps"
	"github.com/Aldrin-Shanty/DSA/internal/render"
)

// NewHeapCommand creates the heap command.
func NewHeapCommand(app *App) *cobra.Command {
	var (
		maxHeap bool
		random  int
	)

	cmd := &cobra.Command{
		Use:   "heap [values...]",
		Short: "Heapify values and drain them through a binary heap and a Fibonacci heap",
		RunE: func(_ *cobra.Command, args []string) error {
			vals, err := app.ints(args, random)
			if err != nil {
				return err
			}

			less := func(a, b int) bool { return a < b }
			if maxHeap {
				less = func(a, b int) bool { return a > b }
			}
			h := Heaps.Heapify(slices.Clone(vals), less)
			layout := slices.Clone(h.Values())

			fib := Heaps.NewFibHeap[int, struct{}]()
			for _, v := range vals {
				key := v
				if maxHeap {
					key = -v
				}
				fib.Insert(key, struct{}{})
			}

			var drained, fibDrained []int
			for !h.Empty() {
				v, _ := h.Pop()
				drained = append(drained, v)
			}
			for fib.Len() > 0 {
				n, _ := fib.ExtractMin()
				k := n.Key()
				if maxHeap {
					k = -k
				}
				fibDrained = append(fibDrained, k)
			}
			app.Logger.Debug("drained heaps", "n", len(vals), "max", maxHeap)

			r := &render.Result{Title: "heap", Columns: []string{"heap", "values"}}
			r.Add("size", len(vals)).Add("agree", slices.Equal(drained, fibDrained))
			r.Row("binary layout", joinInts(layout))
			r.Row("binary pops", joinInts(drained))
			r.Row("fibonacci pops", joinInts(fibDrained))

			return app.Renderer.Render(r)
		},
	}

	cmd.Flags().BoolVar(&maxHeap, "max", false, "max heap instead of min heap")
	cmd.Flags().IntVarP(&random, "random", "r", 0, "use this many random values instead")

	return cmd
}
