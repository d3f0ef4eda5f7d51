// Package render turns constructed topology trees into output formats:
// plain text for terminals, JSON for the API and file export, and
// Graphviz DOT/SVG for diagrams.
package render

import (
	"io"
	"strings"

	"github.com/nettopo/topograph/pkg/topology"
)

// indentWidth is the number of spaces per tree level in text output.
const indentWidth = 3

// Text renders the subtree rooted at from as one line per device: parent
// before children, children in attach order. Indentation is three spaces
// per level of absolute depth (parent hops from the tree root), and every
// non-root device carries a "|--" marker:
//
//	sweden-pe1.example.com
//	   |--sweden-a1.example.com
//	      |--sweden-a3.example.com
//
// Printing from a non-root device keeps its absolute indentation, so a
// subtree dump still shows where it sits in the full hierarchy.
func Text(t *topology.Tree, from string) string {
	var b strings.Builder
	t.Walk(from, func(n *topology.Node, _ int) {
		if n.Parent != "" {
			b.WriteString(strings.Repeat(" ", t.Depth(n.ID)*indentWidth))
			b.WriteString("|--")
		}
		b.WriteString(n.ID)
		b.WriteByte('\n')
	})
	return b.String()
}

// WriteText writes the output of [Text] to w.
func WriteText(w io.Writer, t *topology.Tree, from string) error {
	_, err := io.WriteString(w, Text(t, from))
	return err
}
