package commands

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/Aldrin-Shanty/DSA"
	"github.com/Aldrin-Shanty/DSA/Maps"
	"github.com/Aldrin-Shanty/DSA/internal/render"
)

type wordCount struct {
	word string
	n    int
}

// NewCountCommand creates the count command.
func NewCountCommand(app *App) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "count [words...]",
		Short: "Count word frequencies in a chained hash table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			table := Maps.NewStringTable[int](0, DSA.Hasher(app.Config.Random.Seed))
			for _, w := range args {
				n, _ := table.Get(w)
				table.Put(w, n+1)
			}
			app.Logger.Debug("counted words", "words", len(args), "distinct", table.Size(), "buckets", table.Buckets())

			var counts []wordCount
			table.Range(func(w string, n int) bool {
				counts = append(counts, wordCount{w, n})
				return true
			})
			slices.SortFunc(counts, func(a, b wordCount) int {
				if c := cmp.Compare(b.n, a.n); c != 0 {
					return c
				}
				return cmp.Compare(a.word, b.word)
			})

			r := &render.Result{Title: "word count", Columns: []string{"word", "count"}}
			r.Add("words", render.Count(len(args))).Add("distinct", render.Count(table.Size())).
				Add("buckets", table.Buckets()).Add("load factor", fmt.Sprintf("%.2f", table.LoadFactor()))
			for i, c := range counts {
				if top > 0 && i == top {
					break
				}
				r.Row(c.word, c.n)
			}

			return app.Renderer.Render(r)
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", 0, "only show the n most frequent words")

	return cmd
}
