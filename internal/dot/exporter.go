// Package dot exports a graph as a flat edge list for an external
// graph-rendering tool. The package formats DOT text and can invoke the
// renderer, but the rendering itself belongs to that tool.
package dot

import (
	"bytes"
	"fmt"

	"github.com/specialistvlad/depvis/internal/depgraph"
)

// Edge is a single directed edge of the exported list.
type Edge struct {
	From string
	To   string
}

// Edges flattens the graph into directed (source, target) pairs, following
// declaration order. With reverse set, every pair is swapped so the diagram
// shows the "depended-by" direction. Unlike Reverse, the export keeps edges
// into dangling targets; the diagram draws every reference it sees.
func Edges(g *depgraph.Graph, reverse bool) []Edge {
	var edges []Edge
	for _, n := range g.Keys() {
		for _, d := range g.Deps(n) {
			if reverse {
				edges = append(edges, Edge{From: d, To: n})
			} else {
				edges = append(edges, Edge{From: n, To: d})
			}
		}
	}
	return edges
}

// Marshal serializes the edge list as a DOT digraph.
func Marshal(name string, edges []Edge) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", name)
	buf.WriteString("\trankdir=LR;\n")
	for _, e := range edges {
		fmt.Fprintf(&buf, "\t%q -> %q;\n", e.From, e.To)
	}
	buf.WriteString("}\n")
	return buf.Bytes()
}
