package iso

import (
	"math/rand"
)

import (
	"github.com/timtadh/fastgraph/fastgraph"
)

// Permute moves node n of g to index perm[n]. Edges keep their order and
// attributes.
func Permute(g *fastgraph.FastGraph, perm []int) (*fastgraph.FastGraph, error) {
	edgeOrder := make([]int, g.NumberOfEdges())
	for e := range edgeOrder {
		edgeOrder[e] = e
	}
	return permute(g, perm, edgeOrder, nil, true)
}

// GenerateRandomIsomorphicGraph shuffles the node order, the edge order
// and, for undirected graphs, the orientation of each edge. The result is
// isomorphic to g. Without preserveLabels the labels are cleared; the
// other attributes travel with their node or edge.
func GenerateRandomIsomorphicGraph(g *fastgraph.FastGraph, seed int64, preserveLabels bool) (*fastgraph.FastGraph, error) {
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(g.NumberOfNodes())
	edgeOrder := rng.Perm(g.NumberOfEdges())
	var flip []bool
	if !g.Directed() {
		flip = make([]bool, g.NumberOfEdges())
		for e := range flip {
			flip[e] = rng.Intn(2) == 1
		}
	}
	return permute(g, perm, edgeOrder, flip, preserveLabels)
}

func permute(g *fastgraph.FastGraph, perm, edgeOrder []int, flip []bool, labels bool) (*fastgraph.FastGraph, error) {
	n := g.NumberOfNodes()
	if len(perm) != n {
		return nil, fastgraph.InvalidArgumentf("permutation of length %v for %v nodes", len(perm), n)
	}
	inv := make([]int, n)
	for i := range inv {
		inv[i] = -1
	}
	for old, idx := range perm {
		if idx < 0 || idx >= n || inv[idx] != -1 {
			return nil, fastgraph.InvalidArgumentf("%v is not a permutation", perm)
		}
		inv[idx] = old
	}
	label := func(l string) string {
		if labels {
			return l
		}
		return ""
	}
	b := fastgraph.Build(n, g.NumberOfEdges())
	b.Directed = g.Directed()
	b.Generation = g.Generation()
	b.Name = g.Name()
	for idx := 0; idx < n; idx++ {
		old := inv[idx]
		b.AddNode(label(g.NodeLabel(old)), g.NodeWeight(old), g.NodeType(old), g.NodeAge(old))
	}
	for _, e := range edgeOrder {
		n1, n2 := perm[g.EdgeNode1(e)], perm[g.EdgeNode2(e)]
		if flip != nil && flip[e] {
			n1, n2 = n2, n1
		}
		b.AddEdge(n1, n2, label(g.EdgeLabel(e)), g.EdgeWeight(e), g.EdgeType(e), g.EdgeAge(e))
	}
	return b.Build()
}
