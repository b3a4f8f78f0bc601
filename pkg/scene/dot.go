package scene

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/portwire/pkg/nodes"
)

// ToDOT converts a scene to a Graphviz node-link overview. Nodes show their
// caption, edges carry the port indices, and an edge that needs a converter
// is labelled with the conversion. Rejected connections appear as dashed red
// edges; drafts are omitted.
func ToDOT(s *Scene) string {
	var buf bytes.Buffer
	buf.WriteString("digraph scene {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	for _, n := range s.Nodes {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID, n.ID+"\n"+n.Model.Caption())
	}

	buf.WriteString("\n")
	for _, c := range s.Connections {
		out, in := c.Port(nodes.PortOut), c.Port(nodes.PortIn)
		attrs := fmt.Sprintf("taillabel=\"%d\", headlabel=\"%d\"", out.Index, in.Index)
		if c.Converter() != nil {
			attrs += fmt.Sprintf(", label=%q", out.Type.ID+" → "+in.Type.ID)
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", out.Node, in.Node, attrs)
	}
	for _, r := range s.Rejected {
		fmt.Fprintf(&buf, "  %q -> %q [style=dashed, color=red, fontcolor=red, label=%q];\n",
			r.From.Node, r.To.Node, r.Out.ID+" ✗ "+r.In.ID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderDOT lays out a DOT graph and renders it to SVG in-process.
func RenderDOT(ctx context.Context, dot string) ([]byte, error) {
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
