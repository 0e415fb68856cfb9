package fastgraph

import (
	"sort"
)

// DegreeProfile is the histogram of total degree: profile[d] is the number
// of nodes with degree d. A self-loop adds two to the degree of its node.
func DegreeProfile(g *FastGraph) []int {
	return profile(g, g.NodeDegree)
}

func InDegreeProfile(g *FastGraph) []int {
	return profile(g, g.NodeInDegree)
}

func OutDegreeProfile(g *FastGraph) []int {
	return profile(g, g.NodeOutDegree)
}

func profile(g *FastGraph, degree func(int) int) []int {
	max := -1
	for n := 0; n < g.NumberOfNodes(); n++ {
		if d := degree(n); d > max {
			max = d
		}
	}
	hist := make([]int, max+1)
	for n := 0; n < g.NumberOfNodes(); n++ {
		hist[degree(n)]++
	}
	return hist
}

// SortedDegrees lists the total degrees of g in descending order.
func SortedDegrees(g *FastGraph) []int {
	return sortedBy(g, g.NodeDegree)
}

func SortedInDegrees(g *FastGraph) []int {
	return sortedBy(g, g.NodeInDegree)
}

func SortedOutDegrees(g *FastGraph) []int {
	return sortedBy(g, g.NodeOutDegree)
}

func sortedBy(g *FastGraph, degree func(int) int) []int {
	degrees := make([]int, g.NumberOfNodes())
	for n := range degrees {
		degrees[n] = degree(n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(degrees)))
	return degrees
}

// InOutPairs lists (in, out) degree pairs sorted descending by in and
// then out degree. Used to compare directed degree sequences exactly.
func InOutPairs(g *FastGraph) [][2]int {
	pairs := make([][2]int, g.NumberOfNodes())
	for n := range pairs {
		pairs[n] = [2]int{g.NodeInDegree(n), g.NodeOutDegree(n)}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] > pairs[j][0]
		}
		return pairs[i][1] > pairs[j][1]
	})
	return pairs
}

// SameDegreeSequence is a necessary condition for isomorphism. For
// directed graphs the joint (in, out) sequence must match as well.
func SameDegreeSequence(a, b *FastGraph) bool {
	if a.NumberOfNodes() != b.NumberOfNodes() || a.Directed() != b.Directed() {
		return false
	}
	if !equalInts(SortedDegrees(a), SortedDegrees(b)) {
		return false
	}
	if a.Directed() {
		pa := InOutPairs(a)
		pb := InOutPairs(b)
		for i := range pa {
			if pa[i] != pb[i] {
				return false
			}
		}
	}
	return true
}

// DegreesCover reports whether the target has enough high degree nodes to
// host every pattern node. It is a necessary condition for an embedding
// that maps pattern edges to distinct target edges.
func DegreesCover(target, pattern *FastGraph) bool {
	if pattern.NumberOfNodes() > target.NumberOfNodes() {
		return false
	}
	if pattern.NumberOfEdges() > target.NumberOfEdges() {
		return false
	}
	if !dominates(SortedDegrees(target), SortedDegrees(pattern)) {
		return false
	}
	if target.Directed() && pattern.Directed() {
		if !dominates(SortedInDegrees(target), SortedInDegrees(pattern)) {
			return false
		}
		if !dominates(SortedOutDegrees(target), SortedOutDegrees(pattern)) {
			return false
		}
	}
	return true
}

// both slices sorted descending
func dominates(big, small []int) bool {
	if len(small) > len(big) {
		return false
	}
	for i := range small {
		if big[i] < small[i] {
			return false
		}
	}
	return true
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
