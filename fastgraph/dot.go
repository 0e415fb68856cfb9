package fastgraph

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Dotty renders g in the DOT format read by LoadDot. Highlighted nodes and
// edges are drawn in red.
func (g *FastGraph) Dotty(highlightNodes, highlightEdges map[int]bool) string {
	V := make([]string, 0, g.numberOfNodes)
	E := make([]string, 0, g.numberOfEdges)
	for n := 0; n < g.numberOfNodes; n++ {
		highlight := ""
		if highlightNodes[n] {
			highlight = ", color=red"
		}
		V = append(V, fmt.Sprintf(
			"n%v [label=%v, weight=\"%v\", type=\"%v\", age=\"%v\"%v];",
			n,
			strconv.Quote(g.NodeLabel(n)),
			g.NodeWeight(n),
			g.NodeType(n),
			g.NodeAge(n),
			highlight,
		))
	}
	kind, arrow := "graph", "--"
	if g.directed {
		kind, arrow = "digraph", "->"
	}
	for e := 0; e < g.numberOfEdges; e++ {
		highlight := ""
		if highlightEdges[e] {
			highlight = ", color=red"
		}
		E = append(E, fmt.Sprintf(
			"n%v%vn%v [label=%v, weight=\"%v\", type=\"%v\", age=\"%v\"%v];",
			g.EdgeNode1(e),
			arrow,
			g.EdgeNode2(e),
			strconv.Quote(g.EdgeLabel(e)),
			g.EdgeWeight(e),
			g.EdgeType(e),
			g.EdgeAge(e),
			highlight,
		))
	}
	name := ""
	if g.name != "" {
		name = strconv.Quote(g.name) + " "
	}
	return fmt.Sprintf("%v %v{\n%v\n%v\n}\n", kind, name, strings.Join(V, "\n"), strings.Join(E, "\n"))
}

func (g *FastGraph) WriteDot(w io.Writer) error {
	_, err := io.WriteString(w, g.Dotty(nil, nil))
	return err
}
