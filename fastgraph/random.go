package fastgraph

import (
	"math/rand"
)

// RandomGraph samples node pairs uniformly until edgeCount edges have been
// placed. Self-loops and parallel edges are rejected only when they are
// disallowed. Requests that cannot be satisfied are InvalidArgument errors.
func RandomGraph(nodeCount, edgeCount int, seed int64, directed, allowSelfLoops, allowParallel bool) (*FastGraph, error) {
	if nodeCount < 0 || edgeCount < 0 {
		return nil, InvalidArgumentf("negative size nodes=%v edges=%v", nodeCount, edgeCount)
	}
	if edgeCount > 0 {
		if nodeCount == 0 {
			return nil, InvalidArgumentf("cannot place %v edges in a graph without nodes", edgeCount)
		}
		if nodeCount == 1 && !allowSelfLoops {
			return nil, InvalidArgumentf("cannot place %v edges on a single node without self-loops", edgeCount)
		}
		if !allowParallel {
			if max := maxSimpleEdges(nodeCount, directed, allowSelfLoops); edgeCount > max {
				return nil, InvalidArgumentf("%v edges requested but at most %v fit without parallel edges", edgeCount, max)
			}
		}
	}
	rng := rand.New(rand.NewSource(seed))
	b := Build(nodeCount, edgeCount)
	b.Directed = directed
	for i := 0; i < nodeCount; i++ {
		b.AddNode("", 0, 0, 0)
	}
	placed := make(map[[2]int]bool, edgeCount)
	for len(b.E) < edgeCount {
		n1 := rng.Intn(nodeCount)
		n2 := rng.Intn(nodeCount)
		if !allowSelfLoops && n1 == n2 {
			continue
		}
		if !allowParallel {
			key := pairKey(n1, n2, directed)
			if placed[key] {
				continue
			}
			placed[key] = true
		}
		b.AddEdge(n1, n2, "", 0, 0, 0)
	}
	return b.Build()
}

func maxSimpleEdges(n int, directed, selfLoops bool) int {
	max := n * (n - 1)
	if !directed {
		max /= 2
	}
	if selfLoops {
		max += n
	}
	return max
}

func pairKey(n1, n2 int, directed bool) [2]int {
	if !directed && n2 < n1 {
		return [2]int{n2, n1}
	}
	return [2]int{n1, n2}
}

// RewireDegreePreserving performs up to swaps double edge swaps
// (a->b, c->d becomes a->d, c->b) which keep the in and out degree of
// every node. Swaps that would create a self-loop or a parallel edge are
// rejected. Edge attributes stay with their edge index.
func (g *FastGraph) RewireDegreePreserving(swaps int, seed int64) (*FastGraph, error) {
	if swaps < 0 {
		return nil, InvalidArgumentf("negative swap count %v", swaps)
	}
	b := g.builder()
	m := len(b.E)
	if m < 2 || swaps == 0 {
		return b.Build()
	}
	rng := rand.New(rand.NewSource(seed))
	pairs := make(map[[2]int]int, m)
	for i := range b.E {
		pairs[pairKey(b.E[i].Node1, b.E[i].Node2, b.Directed)]++
	}
	done := 0
	for attempt := 0; done < swaps && attempt < swaps*100; attempt++ {
		x := rng.Intn(m)
		y := rng.Intn(m)
		if x == y {
			continue
		}
		a, bb := b.E[x].Node1, b.E[x].Node2
		c, d := b.E[y].Node1, b.E[y].Node2
		if !b.Directed && rng.Intn(2) == 1 {
			c, d = d, c
		}
		if a == d || c == bb || a == bb || c == d {
			continue
		}
		k1 := pairKey(a, d, b.Directed)
		k2 := pairKey(c, bb, b.Directed)
		if pairs[k1] > 0 || pairs[k2] > 0 || k1 == k2 {
			continue
		}
		pairs[pairKey(a, bb, b.Directed)]--
		pairs[pairKey(c, d, b.Directed)]--
		pairs[k1]++
		pairs[k2]++
		b.E[x].Node1, b.E[x].Node2 = a, d
		b.E[y].Node1, b.E[y].Node2 = c, bb
		done++
	}
	return b.Build()
}
