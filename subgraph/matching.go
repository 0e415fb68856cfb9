package subgraph

// edgeGroup is the set of pattern edges between two pattern nodes in one
// direction, together with the target edges that could host them once the
// endpoints are mapped.
type edgeGroup struct {
	pattern []int
	target  []int
	compat  [][]bool
}

func (s *search) fillGroup(g *edgeGroup, patternEdges, targetEdges []int) {
	g.pattern = patternEdges
	g.target = targetEdges
	if cap(g.compat) < len(patternEdges) {
		g.compat = make([][]bool, len(patternEdges))
	}
	g.compat = g.compat[:len(patternEdges)]
	for i, pe := range patternEdges {
		if cap(g.compat[i]) < len(targetEdges) {
			g.compat[i] = make([]bool, len(targetEdges))
		}
		g.compat[i] = g.compat[i][:len(targetEdges)]
		for j, te := range targetEdges {
			g.compat[i][j] = s.edgeCmp.CompareEdges(te, pe) == Equal
		}
	}
}

// maxMatching is the size of a maximum injective assignment of pattern
// edges to compatible target edges. assign receives the assignment (-1 for
// unassigned pattern edges) when it is not nil.
func (g *edgeGroup) maxMatching(assign []int) int {
	owner := make([]int, len(g.target))
	for j := range owner {
		owner[j] = -1
	}
	var augment func(i int, visited []bool) bool
	augment = func(i int, visited []bool) bool {
		for j := range g.target {
			if !g.compat[i][j] || visited[j] {
				continue
			}
			visited[j] = true
			if owner[j] == -1 || augment(owner[j], visited) {
				owner[j] = i
				return true
			}
		}
		return false
	}
	size := 0
	for i := range g.pattern {
		if augment(i, make([]bool, len(g.target))) {
			size++
		}
	}
	if assign != nil {
		for i := range assign {
			assign[i] = -1
		}
		for j, i := range owner {
			if i != -1 {
				assign[i] = g.target[j]
			}
		}
	}
	return size
}

// assignments enumerates every injective assignment covering all pattern
// edges of the group. Each result maps the i-th pattern edge to a target
// edge.
func (g *edgeGroup) assignments() [][]int {
	k := len(g.pattern)
	var all [][]int
	cur := make([]int, k)
	used := make([]bool, len(g.target))
	next := make([]int, k)
	i := 0
	for i >= 0 {
		if i == k {
			a := make([]int, k)
			copy(a, cur)
			all = append(all, a)
			i--
			continue
		}
		if next[i] > 0 {
			used[next[i]-1] = false
		}
		found := false
		for next[i] < len(g.target) {
			j := next[i]
			next[i]++
			if used[j] || !g.compat[i][j] {
				continue
			}
			used[j] = true
			cur[i] = g.target[j]
			found = true
			break
		}
		if found {
			i++
		} else {
			next[i] = 0
			i--
		}
	}
	return all
}
