package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aldrin-Shanty/DSA/BTrees"
	"github.com/Aldrin-Shanty/DSA/Trees"
	"github.com/Aldrin-Shanty/DSA/internal/render"
)

// NewTreeCommand creates the tree command.
func NewTreeCommand(app *App) *cobra.Command {
	var (
		kind   string
		del    []string
		random int
	)

	cmd := &cobra.Command{
		Use:   "tree [values...]",
		Short: "Build a red-black, AVL or plain binary search tree",
		Example: `  dsa tree 10 20 30 15
  dsa tree --kind avl --random 20 --delete 3,7`,
		RunE: func(_ *cobra.Command, args []string) error {
			vals, err := app.ints(args, random)
			if err != nil {
				return err
			}
			dels, err := parseInts(del)
			if err != nil {
				return err
			}

			var (
				t  Trees.Tree[int]
				rb *Trees.RBTree[int]
			)
			switch kind {
			case "rb":
				rb = Trees.MakeRBTree[int]()
				t = rb
			case "avl":
				t = Trees.MakeAVLTree[int]()
			case "bst":
				t = Trees.MakeBSTree[int]()
			default:
				return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
			}

			rejected := 0
			for _, v := range vals {
				if !t.Insert(v) {
					rejected++
				}
			}
			missing := 0
			for _, v := range dels {
				if !t.Delete(v) {
					missing++
				}
			}
			app.Logger.Debug("built tree", "kind", kind, "inserted", len(vals)-rejected, "deleted", len(dels)-missing)

			r := &render.Result{Title: kind + " tree", Columns: []string{"order", "values"}}
			r.Add("size", render.Count(t.Size())).Add("height", t.Height()).Add("valid", !t.Corrupt())
			if rejected > 0 {
				r.Add("rejected duplicates", rejected)
			}
			if missing > 0 {
				r.Add("not found on delete", missing)
			}
			if lo, ok := t.Minimum(); ok {
				hi, _ := t.Maximum()
				r.Add("minimum", lo).Add("maximum", hi)
			}
			r.Row("in", joinInts(Trees.Collect(t.InOrder)))
			r.Row("pre", joinInts(Trees.Collect(t.PreOrder)))
			r.Row("post", joinInts(Trees.Collect(t.PostOrder)))
			if rb != nil {
				r.Add("black height", rb.BlackHeight())
				r.Tree = render.RBTree(rb, app.Renderer.Color)
			}

			return app.Renderer.Render(r)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "rb", "tree kind: rb, avl or bst")
	cmd.Flags().StringSliceVarP(&del, "delete", "d", nil, "values to delete after inserting")
	cmd.Flags().IntVarP(&random, "random", "r", 0, "insert this many random values instead")

	return cmd
}

// NewBTreeCommand creates the btree command.
func NewBTreeCommand(app *App) *cobra.Command {
	var (
		plus   bool
		del    []string
		from   int
		to     int
		random int
	)

	cmd := &cobra.Command{
		Use:   "btree [values...]",
		Short: "Build a B-Tree, or a B+ Tree with --plus, and run a range query",
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := app.ints(args, random)
			if err != nil {
				return err
			}
			dels, err := parseInts(del)
			if err != nil {
				return err
			}

			if plus {
				return app.bplus(cmd, vals, dels, from, to)
			}

			t, err := BTrees.NewBTree[int](app.Config.BTree.Degree)
			if err != nil {
				return err
			}
			for _, v := range vals {
				t.Insert(v)
			}
			for _, v := range dels {
				t.Delete(v)
			}

			var in []int
			t.InOrder(func(v int) bool {
				in = append(in, v)
				return true
			})

			r := &render.Result{Title: "b-tree"}
			r.Add("degree", t.Degree()).Add("size", render.Count(t.Size())).
				Add("height", t.Height()).Add("valid", !t.Corrupt()).Add("in order", joinInts(in))

			return app.Renderer.Render(r)
		},
	}

	cmd.Flags().BoolVar(&plus, "plus", false, "build a B+ Tree keyed by value with the insertion index as payload")
	cmd.Flags().StringSliceVarP(&del, "delete", "d", nil, "values to delete after inserting")
	cmd.Flags().IntVar(&from, "from", 0, "B+ Tree range query lower bound, inclusive")
	cmd.Flags().IntVar(&to, "to", 0, "B+ Tree range query upper bound, exclusive")
	cmd.Flags().IntVarP(&random, "random", "r", 0, "insert this many random values instead")

	return cmd
}

func (app *App) bplus(cmd *cobra.Command, vals, dels []int, from, to int) error {
	t, err := BTrees.NewBPlusTree[int, int](app.Config.BPlusTree.Order)
	if err != nil {
		return err
	}
	for i, v := range vals {
		t.Put(v, i)
	}
	for _, v := range dels {
		t.Delete(v)
	}

	r := &render.Result{Title: "b+ tree", Columns: []string{"key", "index"}}
	r.Add("order", t.Order()).Add("size", render.Count(t.Size())).
		Add("height", t.Height()).Add("valid", !t.Corrupt())

	query := t.Ascend
	if cmd.Flags().Changed("from") || cmd.Flags().Changed("to") {
		r.Add("range", fmt.Sprintf("[%d, %d)", from, to))
		query = func(f func(int, int) bool) { t.Range(from, to, f) }
	}
	query(func(k, i int) bool {
		r.Row(k, i)
		return true
	})

	return app.Renderer.Render(r)
}
