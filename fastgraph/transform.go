package fastgraph

import (
	"sort"
)

// GenerateGraphFromSubgraph builds a new graph holding exactly the given
// nodes, re-indexed in the order given, and the given edges. Every edge
// must connect two of the given nodes.
func (g *FastGraph) GenerateGraphFromSubgraph(nodes, edges []int) (*FastGraph, error) {
	vidxs := make(map[int]int, len(nodes))
	b := Build(len(nodes), len(edges))
	b.Directed = g.directed
	b.Generation = g.generation
	for _, n := range nodes {
		if n < 0 || n >= g.numberOfNodes {
			return nil, InvalidArgumentf("node %v is not in the graph (|V| = %v)", n, g.numberOfNodes)
		}
		if _, has := vidxs[n]; has {
			return nil, InvalidArgumentf("node %v listed twice", n)
		}
		vidxs[n] = b.AddNode(g.NodeLabel(n), g.NodeWeight(n), g.NodeType(n), g.NodeAge(n))
	}
	seen := make(map[int]bool, len(edges))
	for _, e := range edges {
		if e < 0 || e >= g.numberOfEdges {
			return nil, InvalidArgumentf("edge %v is not in the graph (|E| = %v)", e, g.numberOfEdges)
		}
		if seen[e] {
			return nil, InvalidArgumentf("edge %v listed twice", e)
		}
		seen[e] = true
		n1, has1 := vidxs[g.EdgeNode1(e)]
		n2, has2 := vidxs[g.EdgeNode2(e)]
		if !has1 || !has2 {
			return nil, Structuralf("edge %v (%v, %v) connects a node outside of the subgraph", e, g.EdgeNode1(e), g.EdgeNode2(e))
		}
		b.AddEdge(n1, n2, g.EdgeLabel(e), g.EdgeWeight(e), g.EdgeType(e), g.EdgeAge(e))
	}
	return b.Build()
}

// GenerateGraphByDeletingItems removes the given nodes and edges. When
// alsoDeleteConnectedEdges is false every edge touching a deleted node must
// itself be listed for deletion.
func (g *FastGraph) GenerateGraphByDeletingItems(nodes, edges []int, alsoDeleteConnectedEdges bool) (*FastGraph, error) {
	deadNodes := make([]bool, g.numberOfNodes)
	deadEdges := make([]bool, g.numberOfEdges)
	for _, n := range nodes {
		if n < 0 || n >= g.numberOfNodes {
			return nil, InvalidArgumentf("node %v is not in the graph (|V| = %v)", n, g.numberOfNodes)
		}
		deadNodes[n] = true
	}
	for _, e := range edges {
		if e < 0 || e >= g.numberOfEdges {
			return nil, InvalidArgumentf("edge %v is not in the graph (|E| = %v)", e, g.numberOfEdges)
		}
		deadEdges[e] = true
	}
	for e := 0; e < g.numberOfEdges; e++ {
		if deadEdges[e] {
			continue
		}
		if deadNodes[g.EdgeNode1(e)] || deadNodes[g.EdgeNode2(e)] {
			if !alsoDeleteConnectedEdges {
				return nil, Structuralf("edge %v would be left dangling by the node deletion", e)
			}
			deadEdges[e] = true
		}
	}
	keepNodes := make([]int, 0, g.numberOfNodes)
	for n := 0; n < g.numberOfNodes; n++ {
		if !deadNodes[n] {
			keepNodes = append(keepNodes, n)
		}
	}
	keepEdges := make([]int, 0, g.numberOfEdges)
	for e := 0; e < g.numberOfEdges; e++ {
		if !deadEdges[e] {
			keepEdges = append(keepEdges, e)
		}
	}
	return g.GenerateGraphFromSubgraph(keepNodes, keepEdges)
}

// InducedEdges lists, in increasing order, the edges of g whose endpoints
// are both in nodes.
func (g *FastGraph) InducedEdges(nodes []int) []int {
	in := make(map[int]bool, len(nodes))
	for _, n := range nodes {
		in[n] = true
	}
	edges := make([]int, 0, len(nodes))
	for _, n := range nodes {
		g.VisitConnections(n, Out, func(nbr, e int) {
			if in[nbr] {
				edges = append(edges, e)
			}
		})
	}
	sort.Ints(edges)
	return edges
}

// GenerateInducedSubgraph is GenerateGraphFromSubgraph with the induced
// edge set of nodes.
func (g *FastGraph) GenerateInducedSubgraph(nodes []int) (*FastGraph, error) {
	return g.GenerateGraphFromSubgraph(nodes, g.InducedEdges(nodes))
}
