package iso

import (
	"sort"
)

import (
	"github.com/timtadh/fastgraph/fastgraph"
)

// Options selects the label aware variant of the matcher. With both flags
// false only the structure is compared.
type Options struct {
	NodeLabels bool
	EdgeLabels bool
}

// ExactIsomorphism decides whether candidate graphs are isomorphic to a
// fixed graph. An instance keeps scratch state between calls and must not
// be shared between goroutines.
type ExactIsomorphism struct {
	g         *fastgraph.FastGraph
	opts      Options
	order     []int
	lastMatch []int
	left      []adjacency
	right     []adjacency
}

type adjacency struct {
	node  int
	dir   int8
	label string
}

// New requires g to be (weakly) connected. Use Isomorphic or
// IsomorphicWith for graphs that may be disconnected.
func New(g *fastgraph.FastGraph, opts Options) (*ExactIsomorphism, error) {
	if !fastgraph.Connected(g) {
		return nil, fastgraph.Structuralf("isomorphism matcher needs a connected graph, %v has %v components",
			g, len(fastgraph.ConnectedComponents(g)))
	}
	return newMatcher(g, opts), nil
}

func newMatcher(g *fastgraph.FastGraph, opts Options) *ExactIsomorphism {
	return &ExactIsomorphism{
		g:     g,
		opts:  opts,
		order: searchOrder(g),
	}
}

func Isomorphic(g1, g2 *fastgraph.FastGraph) bool {
	return IsomorphicWith(g1, g2, Options{})
}

func IsomorphicWith(g1, g2 *fastgraph.FastGraph, opts Options) bool {
	return newMatcher(g1, opts).Isomorphic(g2)
}

// LastMatch is the node permutation found by the last successful call to
// Isomorphic: LastMatch()[n] is the candidate node matched to node n. It
// is nil before the first success.
func (m *ExactIsomorphism) LastMatch() []int {
	if m.lastMatch == nil {
		return nil
	}
	match := make([]int, len(m.lastMatch))
	copy(match, m.lastMatch)
	return match
}

// nodes are visited breadth first so every node after the first of its
// component has an assigned neighbour when it is reached.
func searchOrder(g *fastgraph.FastGraph) []int {
	order := make([]int, 0, g.NumberOfNodes())
	seen := make([]bool, g.NumberOfNodes())
	for s := 0; s < g.NumberOfNodes(); s++ {
		if seen[s] {
			continue
		}
		seen[s] = true
		queue := []int{s}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			order = append(order, u)
			g.VisitConnections(u, fastgraph.Both, func(nbr, _ int) {
				if !seen[nbr] {
					seen[nbr] = true
					queue = append(queue, nbr)
				}
			})
		}
	}
	return order
}

func (m *ExactIsomorphism) Isomorphic(c *fastgraph.FastGraph) bool {
	g := m.g
	if !m.compatible(c) {
		return false
	}
	n := g.NumberOfNodes()
	if n == 0 {
		m.lastMatch = []int{}
		return true
	}
	cands := m.candidates(c)
	if cands == nil {
		return false
	}
	mapping := make([]int, n)
	rev := make([]int, n)
	next := make([]int, n)
	for i := range mapping {
		mapping[i] = -1
		rev[i] = -1
	}
	depth := 0
	for depth >= 0 {
		if depth == n {
			m.lastMatch = mapping
			return true
		}
		u := m.order[depth]
		if v := mapping[u]; v != -1 {
			rev[v] = -1
			mapping[u] = -1
		}
		found := false
		for next[depth] < len(cands[u]) {
			v := cands[u][next[depth]]
			next[depth]++
			if rev[v] != -1 {
				continue
			}
			if m.consistent(c, u, v, mapping, rev) {
				mapping[u] = v
				rev[v] = u
				found = true
				break
			}
		}
		if found {
			depth++
		} else {
			next[depth] = 0
			depth--
		}
	}
	return false
}

func (m *ExactIsomorphism) compatible(c *fastgraph.FastGraph) bool {
	g := m.g
	if g.Directed() != c.Directed() {
		return false
	}
	if g.NumberOfNodes() != c.NumberOfNodes() || g.NumberOfEdges() != c.NumberOfEdges() {
		return false
	}
	if !fastgraph.SameDegreeSequence(g, c) {
		return false
	}
	if m.opts.NodeLabels && !sameStrings(nodeLabels(g), nodeLabels(c)) {
		return false
	}
	if m.opts.EdgeLabels && !sameStrings(edgeLabels(g), edgeLabels(c)) {
		return false
	}
	return true
}

// candidates returns nil when some node has no candidate at all.
func (m *ExactIsomorphism) candidates(c *fastgraph.FastGraph) [][]int {
	g := m.g
	cands := make([][]int, g.NumberOfNodes())
	for u := range cands {
		for v := 0; v < c.NumberOfNodes(); v++ {
			if g.NodeDegree(u) != c.NodeDegree(v) || g.SelfLoops(u) != c.SelfLoops(v) {
				continue
			}
			if g.Directed() && (g.NodeInDegree(u) != c.NodeInDegree(v) || g.NodeOutDegree(u) != c.NodeOutDegree(v)) {
				continue
			}
			if m.opts.NodeLabels && g.NodeLabel(u) != c.NodeLabel(v) {
				continue
			}
			cands[u] = append(cands[u], v)
		}
		if len(cands[u]) == 0 {
			return nil
		}
	}
	return cands
}

// consistent checks that the edges between u and the assigned nodes
// (including u itself) correspond one to one with the edges between v and
// their images.
func (m *ExactIsomorphism) consistent(c *fastgraph.FastGraph, u, v int, mapping, rev []int) bool {
	g := m.g
	m.left = m.left[:0]
	m.right = m.right[:0]
	collect := func(h *fastgraph.FastGraph, n int, into []adjacency, image func(int) int) []adjacency {
		visit := func(dir int8) func(nbr, e int) {
			return func(nbr, e int) {
				w := image(nbr)
				if w < 0 {
					return
				}
				a := adjacency{node: w, dir: dir}
				if m.opts.EdgeLabels {
					a.label = h.EdgeLabel(e)
				}
				into = append(into, a)
			}
		}
		if h.Directed() {
			h.VisitConnections(n, fastgraph.In, visit(0))
			h.VisitConnections(n, fastgraph.Out, visit(1))
		} else {
			h.VisitConnections(n, fastgraph.Both, visit(0))
		}
		return into
	}
	m.left = collect(g, u, m.left, func(nbr int) int {
		if nbr == u || mapping[nbr] != -1 {
			return nbr
		}
		return -1
	})
	m.right = collect(c, v, m.right, func(nbr int) int {
		if nbr == v {
			return u
		}
		return rev[nbr]
	})
	if len(m.left) != len(m.right) {
		return false
	}
	sortAdjacencies(m.left)
	sortAdjacencies(m.right)
	for i := range m.left {
		if m.left[i] != m.right[i] {
			return false
		}
	}
	return true
}

func sortAdjacencies(as []adjacency) {
	sort.Slice(as, func(i, j int) bool {
		if as[i].node != as[j].node {
			return as[i].node < as[j].node
		}
		if as[i].dir != as[j].dir {
			return as[i].dir < as[j].dir
		}
		return as[i].label < as[j].label
	})
}

func nodeLabels(g *fastgraph.FastGraph) []string {
	labels := make([]string, g.NumberOfNodes())
	for n := range labels {
		labels[n] = g.NodeLabel(n)
	}
	return labels
}

func edgeLabels(g *fastgraph.FastGraph) []string {
	labels := make([]string, g.NumberOfEdges())
	for e := range labels {
		labels[e] = g.EdgeLabel(e)
	}
	return labels
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
