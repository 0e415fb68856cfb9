package fastgraph

import (
	"sort"
)

import (
	"github.com/timtadh/matrix"
)

// Connected reports weak connectivity: edge direction is ignored. The
// empty graph is connected.
func Connected(g *FastGraph) bool {
	if g.NumberOfNodes() == 0 {
		return true
	}
	return len(visit(g, 0, make([]bool, g.NumberOfNodes()), nil)) == g.NumberOfNodes()
}

// ConnectedComponents lists the weakly connected components, each in
// ascending node order, ordered by their smallest node.
func ConnectedComponents(g *FastGraph) [][]int {
	processed := make([]bool, g.NumberOfNodes())
	var comps [][]int
	for n := 0; n < g.NumberOfNodes(); n++ {
		if processed[n] {
			continue
		}
		comp := visit(g, n, processed, make([]int, 0, 10))
		sort.Ints(comp)
		comps = append(comps, comp)
	}
	return comps
}

func visit(g *FastGraph, start int, processed []bool, found []int) []int {
	pop := func(stack []int) (int, []int) {
		return stack[len(stack)-1], stack[0 : len(stack)-1]
	}
	stack := make([]int, 0, g.NumberOfNodes())
	stack = append(stack, start)
	processed[start] = true
	for len(stack) > 0 {
		var u int
		u, stack = pop(stack)
		found = append(found, u)
		g.VisitConnections(u, Both, func(nbr, _ int) {
			if !processed[nbr] {
				processed[nbr] = true
				stack = append(stack, nbr)
			}
		})
	}
	return found
}

// AdjacencyMatrix counts edges: entry (i, j) is the number of edges from i
// to j. Undirected graphs produce a symmetric matrix with a self-loop
// counted once on the diagonal.
func AdjacencyMatrix(g *FastGraph) matrix.Matrix {
	n := g.NumberOfNodes()
	var A matrix.Matrix = matrix.Zeros(n, n)
	for e := 0; e < g.NumberOfEdges(); e++ {
		u := g.EdgeNode1(e)
		v := g.EdgeNode2(e)
		A.Set(u, v, A.Get(u, v)+1)
		if !g.Directed() && u != v {
			A.Set(v, u, A.Get(v, u)+1)
		}
	}
	return A
}
