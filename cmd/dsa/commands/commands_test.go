package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aldrin-Shanty/DSA/Sorts"
	"github.com/Aldrin-Shanty/DSA/internal/render"
)

// run executes the root command with JSON output and decodes the result.
func run(t *testing.T, args ...string) render.Result {
	t.Helper()

	out, err := execute(append([]string{"--format", "json", "--no-color"}, args...)...)
	require.NoError(t, err)

	var r render.Result
	require.NoError(t, json.Unmarshal(out, &r))

	return r
}

func execute(args ...string) ([]byte, error) {
	root := NewRootCommand()

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()

	return out.Bytes(), err
}

func fact(r render.Result, name string) string {
	for _, f := range r.Facts {
		if f.Name == name {
			return f.Value
		}
	}

	return ""
}

func TestTree_RB(t *testing.T) {
	t.Parallel()

	r := run(t, "tree", "10", "20", "30", "15", "--delete", "20")

	assert.Equal(t, "rb tree", r.Title)
	assert.Equal(t, "3", fact(r, "size"))
	assert.Equal(t, "true", fact(r, "valid"))
	assert.Equal(t, "10", fact(r, "minimum"))
	assert.Equal(t, "30", fact(r, "maximum"))
	require.NotEmpty(t, r.Rows)
	assert.Equal(t, []string{"in", "10 15 30"}, r.Rows[0])
	assert.Len(t, r.Tree, 3)
}

func TestTree_Kinds(t *testing.T) {
	t.Parallel()

	for _, kind := range []string{"avl", "bst"} {
		r := run(t, "tree", "--kind", kind, "5,3,8,3")

		assert.Equal(t, "3", fact(r, "size"), kind)
		assert.Equal(t, "1", fact(r, "rejected duplicates"), kind)
		assert.Empty(t, r.Tree, kind)
	}

	_, err := execute("tree", "--kind", "splay", "1")
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestTree_Random(t *testing.T) {
	t.Parallel()

	a := run(t, "tree", "--random", "50")
	b := run(t, "tree", "--random", "50")

	assert.Equal(t, a.Rows, b.Rows)
	assert.Equal(t, "true", fact(a, "valid"))
}

func TestInputErrors(t *testing.T) {
	t.Parallel()

	_, err := execute("tree")
	require.ErrorIs(t, err, ErrNoInput)

	_, err = execute("sort", "1", "x")
	require.ErrorIs(t, err, ErrBadValue)

	_, err = execute("--format", "xml", "sort", "1")
	require.Error(t, err)
}

func TestBTree(t *testing.T) {
	t.Parallel()

	r := run(t, "btree", "5", "1", "9", "3", "7", "--delete", "9")
	assert.Equal(t, "1 3 5 7", fact(r, "in order"))
	assert.Equal(t, "true", fact(r, "valid"))

	r = run(t, "btree", "--plus", "5", "1", "9", "3", "7", "--from", "3", "--to", "9")
	assert.Equal(t, "[3, 9)", fact(r, "range"))
	assert.Equal(t, [][]string{{"3", "3"}, {"5", "0"}, {"7", "4"}}, r.Rows)
}

func TestHeap(t *testing.T) {
	t.Parallel()

	r := run(t, "heap", "4", "1", "3", "2")
	assert.Equal(t, "true", fact(r, "agree"))
	assert.Equal(t, []string{"binary pops", "1 2 3 4"}, r.Rows[1])

	r = run(t, "heap", "--max", "4", "1", "3", "2")
	assert.Equal(t, []string{"fibonacci pops", "4 3 2 1"}, r.Rows[2])
}

func TestBloom(t *testing.T) {
	t.Parallel()

	r := run(t, "bloom", "apple", "pear", "--test", "apple,plum")
	assert.Equal(t, "9,586", fact(r, "bits"))
	assert.Equal(t, "7", fact(r, "hashes"))
	require.Len(t, r.Rows, 2)
	assert.Equal(t, []string{"apple", "true", "true"}, r.Rows[0])
	assert.Equal(t, "plum", r.Rows[1][0])
	assert.Equal(t, "false", r.Rows[1][2])
}

func TestSkipList(t *testing.T) {
	t.Parallel()

	r := run(t, "skiplist", "3", "1", "2", "--delete", "2")
	assert.Equal(t, "2", fact(r, "size"))
	require.NotEmpty(t, r.Rows)
	assert.Equal(t, []string{"0", "1 3"}, r.Rows[len(r.Rows)-1])
}

func TestSort(t *testing.T) {
	t.Parallel()

	r := run(t, "sort", "--algo", "all", "5", "3", "9", "3", "1", "--find", "3,4")
	assert.Equal(t, "1 3 3 5 9", fact(r, "result"))
	assert.Equal(t, "1", fact(r, "first index of 3"))
	assert.Equal(t, "-1", fact(r, "first index of 4"))
	assert.Len(t, r.Rows, len(sorters))
	for _, row := range r.Rows {
		assert.Equal(t, "true", row[2], row[0])
	}

	_, err := execute("sort", "--algo", "radix", "1,-2")
	require.ErrorIs(t, err, Sorts.ErrNegativeValue)
}

func TestGraph(t *testing.T) {
	t.Parallel()

	r := run(t, "graph", "--directed", "--algo", "dijkstra", "0-1:4", "0-2:1", "2-1:2", "1-3:1")
	assert.Equal(t, []string{"3", "4", "0 2 1 3"}, r.Rows[3])

	r = run(t, "graph", "--algo", "kruskal", "0-1:4", "1-2:8", "0-2:3")
	assert.Equal(t, "7", fact(r, "total weight"))

	r = run(t, "graph", "--algo", "dfs", "0-1", "0-2", "1-3", "2-4")
	assert.Equal(t, "0 1 3 2 4", fact(r, "order"))

	_, err := execute("graph", "0:1")
	require.ErrorIs(t, err, ErrBadValue)
}

func TestStrings(t *testing.T) {
	t.Parallel()

	r := run(t, "trie", "band", "banana", "apple", "--prefix", "ban")
	assert.Equal(t, [][]string{{"ban", "2", "[banana band]"}}, r.Rows)

	r = run(t, "suffix", "banana", "--pattern", "ana")
	assert.Equal(t, `"ana"`, fact(r, "longest repeat"))
	assert.Equal(t, "1 3", fact(r, `occurrences of "ana"`))
	assert.Len(t, r.Rows, 6)
}

func TestRange(t *testing.T) {
	t.Parallel()

	r := run(t, "range", "5", "2", "8", "1", "9", "--query", "0,3", "--query", "2,2")
	assert.Equal(t, "25", fact(r, "total"))
	assert.Equal(t, [][]string{{"[0, 3)", "15", "2", "8"}, {"[2, 2)", "0", "-", "-"}}, r.Rows)

	_, err := execute("range", "1", "2", "--query", "1,5")
	require.ErrorIs(t, err, ErrBadValue)
}

func TestCount(t *testing.T) {
	t.Parallel()

	r := run(t, "count", "a", "b", "a", "c", "a", "b", "--top", "2")
	assert.Equal(t, "3", fact(r, "distinct"))
	assert.Equal(t, [][]string{{"a", "3"}, {"b", "2"}}, r.Rows)
}

func TestDP(t *testing.T) {
	t.Parallel()

	r := run(t, "dp", "knapsack", "--profits", "1,2,5,6", "--weights", "2,3,4,5", "--capacity", "8")
	assert.Equal(t, "8", fact(r, "best profit"))
	assert.Equal(t, [][]string{{"1", "2", "3"}, {"3", "6", "5"}}, r.Rows)

	r = run(t, "dp", "matrix-chain", "5", "4", "6", "2", "7")
	assert.Equal(t, "158", fact(r, "multiplications"))
	assert.Equal(t, "((A1 x (A2 x A3)) x A4)", fact(r, "order"))

	r = run(t, "dp", "multistage", "0-1:3", "0-2:2", "1-3:5", "2-3:4")
	assert.Equal(t, "6", fact(r, "cost"))
	assert.Equal(t, "0 2 3", fact(r, "path"))
}

func TestTableOutput(t *testing.T) {
	t.Parallel()

	out, err := execute("--no-color", "tree", "2", "1", "3")
	require.NoError(t, err)
	assert.Contains(t, string(out), "=== RB TREE ===")
	assert.Contains(t, string(out), "2 (B)")
}
