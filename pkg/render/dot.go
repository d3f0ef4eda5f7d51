package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/nettopo/topograph/pkg/topology"
)

// ToDOT converts the subtree rooted at from to Graphviz DOT. Backbone
// devices are drawn as filled boxes so the core of the network stands out
// from the access layer; edges run parent to child in attach order.
func ToDOT(t *topology.Tree, from string) string {
	var buf bytes.Buffer
	buf.WriteString("digraph topology {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=rounded, fontsize=12];\n")
	buf.WriteString("\n")

	t.Walk(from, func(n *topology.Node, _ int) {
		if topology.IsBackbone(n.ID) {
			fmt.Fprintf(&buf, "  %q [style=\"rounded,filled\", fillcolor=lightblue];\n", n.ID)
		} else {
			fmt.Fprintf(&buf, "  %q;\n", n.ID)
		}
	})

	buf.WriteString("\n")
	t.Walk(from, func(n *topology.Node, _ int) {
		for _, child := range n.Children {
			fmt.Fprintf(&buf, "  %q -> %q;\n", n.ID, child)
		}
	})

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT document to SVG using the in-process Graphviz
// engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
