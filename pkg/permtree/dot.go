package permtree

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns a Graphviz DOT representation of the tree.
//
// The root is drawn as "∅". Interior nodes are ellipses labelled with their
// symbol; leaves are rounded boxes labelled "symbol #rank", where rank is the
// 1-based position of the permutation ending at that leaf.
//
// Trees grow factorially. Rendering alphabets beyond five or six symbols
// produces graphs too wide to read.
func (t *Tree) ToDOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph PermTree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, style=filled, fillcolor=white];\n")
	buf.WriteString("  edge [arrowhead=none];\n\n")

	w := dotWriter{buf: &buf, want: len(t.alphabet)}
	w.node(t.root, 0)

	buf.WriteString("}\n")
	return buf.String()
}

type dotWriter struct {
	buf  *bytes.Buffer
	want int
	next int
	rank int64
}

func (w *dotWriter) node(n *Node, depth int) {
	id := w.next
	w.next++

	switch {
	case depth == 0:
		fmt.Fprintf(w.buf, "  n%d [label=\"∅\", shape=circle];\n", id)
	case n.IsLeaf() && depth == w.want:
		w.rank++
		fmt.Fprintf(w.buf, "  n%d [label=%q, shape=box, style=\"filled,rounded\"];\n",
			id, fmt.Sprintf("%c #%d", n.Data, w.rank))
	default:
		fmt.Fprintf(w.buf, "  n%d [label=%q, shape=ellipse];\n", id, string(n.Data))
	}

	for _, c := range n.Children {
		fmt.Fprintf(w.buf, "  n%d -> n%d;\n", id, w.next)
		w.node(c, depth+1)
	}
}

// RenderSVG renders the tree as an SVG document using Graphviz.
//
// Errors are returned if Graphviz cannot initialize, the generated DOT fails
// to parse, or rendering fails. All errors wrap the underlying cause.
func (t *Tree) RenderSVG(ctx context.Context) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(t.ToDOT()))
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
