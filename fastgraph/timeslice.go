package fastgraph

import (
	"math"
	"math/rand"
)

// TimeEdgeType marks the edges linking a node to its copy in the next
// time slice.
const TimeEdgeType int8 = -1

// AppendTimeSlice returns a new graph with one more time slice. The newest
// slice (elements whose age equals the current generation) is copied with
// round(nodeRemoval*|slice nodes|) random nodes and round(edgeRemoval*|slice
// edges|) random edges left out. Then nodesToAdd fresh nodes and
// edgesToAdd random edges between the new slice's nodes are added. Every
// element of the new slice has age generation+1 and each copied node is
// linked to its predecessor by an edge of type TimeEdgeType.
func (g *FastGraph) AppendTimeSlice(nodeRemoval, edgeRemoval float64, nodesToAdd, edgesToAdd int, allowSelfLoops bool, seed int64) (*FastGraph, error) {
	if nodeRemoval < 0 || nodeRemoval > 1 || edgeRemoval < 0 || edgeRemoval > 1 {
		return nil, InvalidArgumentf("removal fractions must be in [0, 1] got nodes=%v edges=%v", nodeRemoval, edgeRemoval)
	}
	if nodesToAdd < 0 || edgesToAdd < 0 {
		return nil, InvalidArgumentf("negative additions nodes=%v edges=%v", nodesToAdd, edgesToAdd)
	}
	if g.generation == math.MaxInt8 {
		return nil, InvalidArgumentf("generation limit %v reached", math.MaxInt8)
	}
	rng := rand.New(rand.NewSource(seed))
	cur := g.generation
	next := cur + 1
	b := g.builder()
	b.Generation = next

	slice := g.FindAllNodesOfAge(cur)
	removed := make(map[int]bool, len(slice))
	drop := int(math.Round(nodeRemoval * float64(len(slice))))
	for i, j := range rng.Perm(len(slice)) {
		if i >= drop {
			break
		}
		removed[slice[j]] = true
	}
	copies := make(map[int]int, len(slice))
	sliceNodes := make([]int, 0, len(slice)+nodesToAdd)
	for _, n := range slice {
		if removed[n] {
			continue
		}
		c := b.AddNode(g.NodeLabel(n), g.NodeWeight(n), g.NodeType(n), next)
		copies[n] = c
		sliceNodes = append(sliceNodes, c)
	}

	candidates := make([]int, 0, g.numberOfEdges)
	for e := 0; e < g.numberOfEdges; e++ {
		if g.EdgeAge(e) != cur || g.EdgeType(e) == TimeEdgeType {
			continue
		}
		_, has1 := copies[g.EdgeNode1(e)]
		_, has2 := copies[g.EdgeNode2(e)]
		if has1 && has2 {
			candidates = append(candidates, e)
		}
	}
	dropEdges := make(map[int]bool, len(candidates))
	drop = int(math.Round(edgeRemoval * float64(len(candidates))))
	for i, j := range rng.Perm(len(candidates)) {
		if i >= drop {
			break
		}
		dropEdges[candidates[j]] = true
	}
	for _, e := range candidates {
		if dropEdges[e] {
			continue
		}
		b.AddEdge(copies[g.EdgeNode1(e)], copies[g.EdgeNode2(e)], g.EdgeLabel(e), g.EdgeWeight(e), g.EdgeType(e), next)
	}
	for _, n := range slice {
		if c, has := copies[n]; has {
			b.AddEdge(n, c, "", 0, TimeEdgeType, next)
		}
	}

	for i := 0; i < nodesToAdd; i++ {
		sliceNodes = append(sliceNodes, b.AddNode("", 0, 0, next))
	}
	if edgesToAdd > 0 {
		if len(sliceNodes) == 0 || (len(sliceNodes) == 1 && !allowSelfLoops) {
			return nil, InvalidArgumentf("cannot add %v edges to a time slice of %v nodes", edgesToAdd, len(sliceNodes))
		}
	}
	for added := 0; added < edgesToAdd; {
		n1 := sliceNodes[rng.Intn(len(sliceNodes))]
		n2 := sliceNodes[rng.Intn(len(sliceNodes))]
		if n1 == n2 && !allowSelfLoops {
			continue
		}
		b.AddEdge(n1, n2, "", 0, 0, next)
		added++
	}
	return b.Build()
}

func (g *FastGraph) FindAllNodesOfAge(age int8) []int {
	nodes := make([]int, 0, g.numberOfNodes)
	for n := 0; n < g.numberOfNodes; n++ {
		if g.NodeAge(n) == age {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func (g *FastGraph) FindAllEdgesOfAge(age int8) []int {
	edges := make([]int, 0, g.numberOfEdges)
	for e := 0; e < g.numberOfEdges; e++ {
		if g.EdgeAge(e) == age {
			edges = append(edges, e)
		}
	}
	return edges
}
