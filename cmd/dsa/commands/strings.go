package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Aldrin-Shanty/DSA/Strings"
	"github.com/Aldrin-Shanty/DSA/internal/render"
)

// NewTrieCommand creates the trie command.
func NewTrieCommand(app *App) *cobra.Command {
	var prefixes []string

	cmd := &cobra.Command{
		Use:   "trie [words...]",
		Short: "Put words into a trie and list the words under each --prefix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var t Strings.Trie
			for _, w := range args {
				t.Put(w)
			}
			app.Logger.Debug("built trie", "words", t.Size())

			r := &render.Result{Title: "trie", Columns: []string{"prefix", "count", "words"}}
			r.Add("words", render.Count(t.Size()))
			for _, p := range prefixes {
				var words []string
				t.WithPrefix(p, func(w string) bool {
					words = append(words, w)
					return true
				})
				r.Row(p, t.CountPrefix(p), words)
			}

			return app.Renderer.Render(r)
		},
	}

	cmd.Flags().StringSliceVarP(&prefixes, "prefix", "p", nil, "prefixes to query")

	return cmd
}

// NewSuffixCommand creates the suffix command.
func NewSuffixCommand(app *App) *cobra.Command {
	var patterns []string

	cmd := &cobra.Command{
		Use:   "suffix text",
		Short: "Build the suffix and LCP arrays of a text and look up --pattern in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			sa := Strings.NewSuffixArray(args[0])
			app.Logger.Debug("built suffix array", "length", len(args[0]))

			r := &render.Result{Title: "suffix array", Columns: []string{"rank", "offset", "lcp", "suffix"}}
			r.Add("length", render.Count(len(args[0]))).Add("longest repeat", strconv.Quote(sa.LongestRepeated()))
			for _, p := range patterns {
				r.Add("occurrences of "+strconv.Quote(p), joinInts(sa.Lookup(p)))
			}
			for i, off := range sa.Suffixes() {
				r.Row(i, off, sa.LCP()[i], args[0][off:])
			}

			return app.Renderer.Render(r)
		},
	}

	cmd.Flags().StringSliceVarP(&patterns, "pattern", "p", nil, "patterns to look up")

	return cmd
}
