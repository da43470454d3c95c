// Package dot renders a core.Graph in Graphviz DOT syntax.
//
// The output is an undirected "graph" block. Vertices are written in
// insertion order as `v1 [label="A"];`, edges in ID order as
// `v1 -- v2 [label="roadAB"];`. Labels are quoted with Go string escaping,
// which DOT accepts for the characters labels can contain (no whitespace).
package dot

import (
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvpath/core"
)

// Render returns the DOT description of g. A nil graph renders as an empty block.
func Render(g *core.Graph) string {
	var b strings.Builder
	b.WriteString("graph {\n")
	if g != nil {
		for _, id := range g.Vertices() {
			label, err := g.Label(id)
			if err != nil {
				continue
			}
			b.WriteString("  ")
			b.WriteString(id)
			b.WriteString(" [label=")
			b.WriteString(strconv.Quote(label))
			b.WriteString("];\n")
		}
		for _, e := range g.Edges() {
			b.WriteString("  ")
			b.WriteString(e.From)
			b.WriteString(" -- ")
			b.WriteString(e.To)
			b.WriteString(" [label=")
			b.WriteString(strconv.Quote(e.Label))
			b.WriteString("];\n")
		}
	}
	b.WriteString("}\n")

	return b.String()
}

// Write writes the DOT description of g to w.
func Write(w io.Writer, g *core.Graph) error {
	_, err := io.WriteString(w, Render(g))
	return err
}
