package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Aldrin-Shanty/DSA"
	"github.com/Aldrin-Shanty/DSA/Probabilistic"
	"github.com/Aldrin-Shanty/DSA/Sets/HashSet"
	"github.com/Aldrin-Shanty/DSA/internal/render"
)

// NewBloomCommand creates the bloom command.
func NewBloomCommand(app *App) *cobra.Command {
	var test []string

	cmd := &cobra.Command{
		Use:   "bloom [keys...]",
		Short: "Add keys to a Bloom filter sized from bloom.expected and bloom.fp",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := Probabilistic.NewWithEstimates(app.Config.Bloom.Expected, app.Config.Bloom.FP)
			if err != nil {
				return err
			}
			exact := HashSet.NewStrings(uint(len(args)), DSA.Hasher(app.Config.Random.Seed))
			for _, k := range args {
				f.AddString(k)
				exact.Put(k)
			}
			app.Logger.Debug("filled bloom filter", "keys", len(args), "bits", f.Cap(), "hashes", f.K())

			r := &render.Result{Title: "bloom filter", Columns: []string{"key", "maybe present", "present"}}
			r.Add("bits", render.Count(f.Cap())).Add("size", render.Bits(f.Cap())).Add("hashes", f.K()).
				Add("keys", render.Count(f.Count())).
				Add("fill ratio", fmt.Sprintf("%.4f", f.FillRatio())).
				Add("false positive rate", fmt.Sprintf("%.6f", f.FalsePositiveRate()))
			falsePositives := 0
			for _, k := range test {
				maybe, present := f.TestString(k), exact.Has(k)
				if maybe && !present {
					falsePositives++
				}
				r.Row(k, maybe, present)
			}
			if len(test) > 0 {
				r.Add("false positives", falsePositives)
			}

			return app.Renderer.Render(r)
		},
	}

	cmd.Flags().StringSliceVarP(&test, "test", "t", nil, "keys to test after adding")

	return cmd
}

// NewSkipListCommand creates the skiplist command.
func NewSkipListCommand(app *App) *cobra.Command {
	var (
		del    []string
		random int
	)

	cmd := &cobra.Command{
		Use:   "skiplist [values...]",
		Short: "Build a skip list from skiplist.max_level, skiplist.p and random.seed",
		RunE: func(_ *cobra.Command, args []string) error {
			vals, err := app.ints(args, random)
			if err != nil {
				return err
			}
			dels, err := parseInts(del)
			if err != nil {
				return err
			}

			s, err := Probabilistic.NewSkipList[int](app.Config.SkipList.MaxLevel, app.Config.SkipList.P, app.Config.Random.Seed)
			if err != nil {
				return err
			}
			for _, v := range vals {
				s.Put(v)
			}
			for _, v := range dels {
				s.Remove(v)
			}

			r := &render.Result{Title: "skip list", Columns: []string{"level", "values"}}
			r.Add("size", render.Count(s.Size())).Add("levels", s.Level())
			levels := s.Levels()
			for i := len(levels) - 1; i >= 0; i-- {
				r.Row(strconv.Itoa(i), joinInts(levels[i]))
			}

			return app.Renderer.Render(r)
		},
	}

	cmd.Flags().StringSliceVarP(&del, "delete", "d", nil, "values to remove after inserting")
	cmd.Flags().IntVarP(&random, "random", "r", 0, "insert this many random values instead")

	return cmd
}
