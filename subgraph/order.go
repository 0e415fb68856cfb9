package subgraph

import (
	"github.com/timtadh/data-structures/heap"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/fastgraph/fastgraph"
)

// patternOrder picks the pattern nodes greedily: the next node is the one
// with the most connections to nodes already ordered, ties broken by
// degree. Each component starts at its highest degree node. Entries whose
// priority went stale are skipped when they surface.
func patternOrder(pattern *fastgraph.FastGraph) []int {
	n := pattern.NumberOfNodes()
	order := make([]int, 0, n)
	seen := make([]bool, n)
	links := make([]int, n)
	maxDeg := 0
	for u := 0; u < n; u++ {
		if d := pattern.NodeDegree(u); d > maxDeg {
			maxDeg = d
		}
	}
	priority := func(u int) int {
		return -(links[u]*(maxDeg+1) + pattern.NodeDegree(u))
	}
	starts := heap.NewMinHeap(n)
	for u := 0; u < n; u++ {
		starts.Push(-pattern.NodeDegree(u), types.Int(u))
	}
	for starts.Size() > 0 {
		s := int(starts.Pop().(types.Int))
		if seen[s] {
			continue
		}
		queue := heap.NewMinHeap(n)
		queue.Push(priority(s), types.Int(s))
		for queue.Size() > 0 {
			u := int(queue.Pop().(types.Int))
			if seen[u] {
				continue
			}
			seen[u] = true
			order = append(order, u)
			pattern.VisitConnections(u, fastgraph.Both, func(v, _ int) {
				if seen[v] {
					return
				}
				links[v]++
				queue.Push(priority(v), types.Int(v))
			})
		}
	}
	return order
}
