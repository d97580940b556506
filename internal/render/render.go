// Package render prints the results of the dsa command as go-pretty tables,
// YAML or JSON.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"

	"github.com/Aldrin-Shanty/DSA/Trees"
)

// Supported output formats.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Fact is a named value shown in the summary of a Result.
type Fact struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Result of one command: a summary of facts, an optional table and an
// optional drawing of a tree, one line per node.
type Result struct {
	Title   string     `json:"title" yaml:"title"`
	Facts   []Fact     `json:"facts,omitempty" yaml:"facts,omitempty"`
	Columns []string   `json:"columns,omitempty" yaml:"columns,omitempty"`
	Rows    [][]string `json:"rows,omitempty" yaml:"rows,omitempty"`
	Tree    []string   `json:"tree,omitempty" yaml:"tree,omitempty"`
}

// Add a fact, formatting value with %v.
func (r *Result) Add(name string, value any) *Result {
	r.Facts = append(r.Facts, Fact{name, fmt.Sprint(value)})
	return r
}

// Row appends a table row, formatting each cell with %v.
func (r *Result) Row(cells ...any) *Result {
	row := make([]string, len(cells))
	for i, c := range cells {
		row[i] = fmt.Sprint(c)
	}
	r.Rows = append(r.Rows, row)
	return r
}

// Renderer writes results to W in Format. Color only affects table output.
type Renderer struct {
	W      io.Writer
	Format string
	Color  bool
}

// Render r.
func (p *Renderer) Render(r *Result) error {
	switch p.Format {
	case FormatJSON:
		enc := json.NewEncoder(p.W)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(p.W)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable, "":
		_, err := io.WriteString(p.W, p.table(r))
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, p.Format)
}

func (p *Renderer) table(r *Result) string {
	var b strings.Builder
	title := "=== " + strings.ToUpper(r.Title) + " ==="
	if p.Color {
		title = paint(color.New(color.Bold), title)
	}
	b.WriteString(title + "\n")
	if len(r.Facts) > 0 {
		tbl := newTable()
		for _, f := range r.Facts {
			tbl.AppendRow(table.Row{f.Name, f.Value})
		}
		b.WriteString(tbl.Render() + "\n")
	}
	if len(r.Rows) > 0 {
		tbl := newTable()
		if len(r.Columns) > 0 {
			tbl.AppendHeader(toRow(r.Columns))
		}
		for _, row := range r.Rows {
			tbl.AppendRow(toRow(row))
		}
		tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d rows", len(r.Rows))})
		b.WriteString(tbl.Render() + "\n")
	}
	for _, l := range r.Tree {
		b.WriteString(l + "\n")
	}
	return b.String()
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	return tbl
}

func toRow(s []string) table.Row {
	row := make(table.Row, len(s))
	for i, c := range s {
		row[i] = c
	}
	return row
}

func paint(c *color.Color, s string) string {
	c.EnableColor()
	return c.Sprint(s)
}

// RBTree draws t in pre-order, one node per line indented by depth. Without
// colors every node is suffixed with (R) or (B); with colors red nodes are
// painted red and black nodes bold.
func RBTree[T constraints.Ordered](t *Trees.RBTree[T], colored bool) []string {
	var lines []string
	red, black := color.New(color.FgRed, color.Bold), color.New(color.Bold)
	t.Walk(func(v T, c Trees.Color, depth int) bool {
		s := fmt.Sprint(v)
		switch {
		case !colored:
			s += " (" + strings.ToUpper(c.String()[:1]) + ")"
		case c == Trees.Red:
			s = paint(red, s)
		default:
			s = paint(black, s)
		}
		lines = append(lines, strings.Repeat("  ", depth)+s)
		return true
	})
	return lines
}

// Count formats n with thousands separators.
func Count[N ~int | ~uint | ~int64 | ~uint64](n N) string {
	return humanize.Comma(int64(n))
}

// Bits formats a size given in bits as bytes, such as "1.2 kB".
func Bits(m uint) string {
	return humanize.Bytes(uint64(m+7) / 8)
}
