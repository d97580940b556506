package commands

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aldrin-Shanty/DSA/Sorts"
	"github.com/Aldrin-Shanty/DSA/internal/render"
)

func wrap(f func([]int)) func([]int) error {
	return func(s []int) error {
		f(s)
		return nil
	}
}

var sorters = map[string]func([]int) error{
	"bubble":    wrap(Sorts.Bubble[int]),
	"selection": wrap(Sorts.Selection[int]),
	"insertion": wrap(Sorts.Insertion[int]),
	"shell":     wrap(Sorts.Shell[int]),
	"quick":     wrap(Sorts.Quick[int]),
	"merge":     wrap(Sorts.Merge[int]),
	"heap":      wrap(Sorts.Heap[int]),
	"counting":  Sorts.Counting,
	"radix":     Sorts.Radix,
	"bucket": func(s []int) error {
		f := make([]float64, len(s))
		for i, v := range s {
			f[i] = float64(v)
		}
		Sorts.Bucket(f)
		for i, v := range f {
			s[i] = int(v)
		}
		return nil
	},
}

// NewSortCommand creates the sort command.
func NewSortCommand(app *App) *cobra.Command {
	var (
		algo   string
		find   []string
		random int
	)

	cmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "Sort values with one of the sorting algorithms, or all of them with --algo all",
		RunE: func(_ *cobra.Command, args []string) error {
			vals, err := app.ints(args, random)
			if err != nil {
				return err
			}
			targets, err := parseInts(find)
			if err != nil {
				return err
			}

			names := []string{algo}
			if algo == "all" {
				names = slices.Sorted(maps.Keys(sorters))
			}

			r := &render.Result{Title: "sort", Columns: []string{"algorithm", "time", "sorted"}}
			var sorted []int
			for _, name := range names {
				sorter, ok := sorters[name]
				if !ok {
					return fmt.Errorf("%w: %q", ErrUnknownKind, name)
				}
				s := slices.Clone(vals)
				start := time.Now()
				if err := sorter(s); err != nil {
					return fmt.Errorf("%s sort: %w", name, err)
				}
				elapsed := time.Since(start)
				app.Logger.Debug("sorted", "algorithm", name, "n", len(s), "elapsed", elapsed)
				r.Row(name, elapsed, slices.IsSorted(s))
				sorted = s
			}

			r.Add("size", render.Count(len(vals)))
			if len(vals) <= 50 {
				r.Add("result", joinInts(sorted))
			}
			for _, v := range targets {
				r.Add("first index of "+strconv.Itoa(v), Sorts.LeftBinarySearch(sorted, v))
			}

			return app.Renderer.Render(r)
		},
	}

	cmd.Flags().StringVarP(&algo, "algo", "a", "quick", "algorithm: bubble, selection, insertion, shell, quick, merge, heap, counting, radix, bucket or all")
	cmd.Flags().StringSliceVar(&find, "find", nil, "values to binary search for in the result")
	cmd.Flags().IntVarP(&random, "random", "r", 0, "sort this many random values instead")

	return cmd
}
