package motif

import (
	"fmt"
	"math/rand"
	"sort"
)

import (
	"github.com/timtadh/fastgraph/fastgraph"
)

// enumerate calls do once for every connected node-induced node set of
// size k (ESU). Edge direction is ignored for connectivity. A node set is
// only grown from its smallest node and extensions are restricted to
// exclusive neighbours, so no set is produced twice. The slice passed to
// do is sorted and owned by the callee.
func enumerate(g *fastgraph.FastGraph, k int, do func(nodes []int)) {
	n := g.NumberOfNodes()
	inSub := make([]bool, n)
	adj := make([]int, n)
	mark := make([]int, n)
	stamp := 0
	sub := make([]int, 0, k)

	join := func(w int) {
		sub = append(sub, w)
		inSub[w] = true
		g.VisitConnections(w, fastgraph.Both, func(u, _ int) {
			adj[u]++
		})
	}
	leave := func(w int) {
		sub = sub[:len(sub)-1]
		inSub[w] = false
		g.VisitConnections(w, fastgraph.Both, func(u, _ int) {
			adj[u]--
		})
	}

	var extend func(ext []int, root int)
	extend = func(ext []int, root int) {
		if len(sub) == k {
			nodes := make([]int, k)
			copy(nodes, sub)
			sort.Ints(nodes)
			do(nodes)
			return
		}
		for i, w := range ext {
			stamp++
			next := make([]int, 0, len(ext)-i-1+g.NodeDegree(w))
			for _, u := range ext[i+1:] {
				mark[u] = stamp
				next = append(next, u)
			}
			g.VisitConnections(w, fastgraph.Both, func(u, _ int) {
				if u > root && !inSub[u] && adj[u] == 0 && mark[u] != stamp {
					mark[u] = stamp
					next = append(next, u)
				}
			})
			join(w)
			extend(next, root)
			leave(w)
		}
	}

	for v := 0; v < n; v++ {
		stamp++
		var ext []int
		g.VisitConnections(v, fastgraph.Both, func(u, _ int) {
			if u > v && mark[u] != stamp {
				mark[u] = stamp
				ext = append(ext, u)
			}
		})
		join(v)
		extend(ext, v)
		leave(v)
	}
}

// sample grows attempts random connected node sets of size k from every
// node by repeatedly adding a uniformly chosen neighbour of the set. Sets
// are reported once no matter how often they are drawn.
func sample(g *fastgraph.FastGraph, k, attempts int, rng *rand.Rand, do func(nodes []int)) {
	n := g.NumberOfNodes()
	seen := make(map[string]bool)
	in := make([]bool, n)
	mark := make([]int, n)
	stamp := 0
	for v := 0; v < n; v++ {
		for a := 0; a < attempts; a++ {
			nodes := append(make([]int, 0, k), v)
			in[v] = true
			for len(nodes) < k {
				stamp++
				var frontier []int
				for _, x := range nodes {
					g.VisitConnections(x, fastgraph.Both, func(u, _ int) {
						if !in[u] && mark[u] != stamp {
							mark[u] = stamp
							frontier = append(frontier, u)
						}
					})
				}
				if len(frontier) == 0 {
					break
				}
				u := frontier[rng.Intn(len(frontier))]
				in[u] = true
				nodes = append(nodes, u)
			}
			for _, x := range nodes {
				in[x] = false
			}
			if len(nodes) < k {
				continue
			}
			sort.Ints(nodes)
			key := fmt.Sprint(nodes)
			if seen[key] {
				continue
			}
			seen[key] = true
			do(nodes)
		}
	}
}
