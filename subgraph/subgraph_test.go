package subgraph

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/data-structures/test"
)

import (
	"github.com/timtadh/fastgraph/fastgraph"
)

func graph(t testing.TB, directed bool, labels []string, edges [][2]int) *fastgraph.FastGraph {
	b := fastgraph.Build(len(labels), len(edges))
	b.Directed = directed
	for _, l := range labels {
		b.AddNode(l, 0, 0, 0)
	}
	for _, e := range edges {
		b.AddEdge(e[0], e[1], "", 0, 0, 0)
	}
	g, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func blank(n int) []string {
	return make([]string, n)
}

// sound reports whether m is a valid exact embedding of pattern in target
// under the given comparators. A nil comparator admits every pair.
func sound(target, pattern *fastgraph.FastGraph, nodeCmp NodeComparator, edgeCmp EdgeComparator, m SubgraphMapping) bool {
	nodes := m.NodeMapping()
	edges := m.EdgeMapping()
	if len(nodes) != pattern.NumberOfNodes() || len(edges) != pattern.NumberOfEdges() {
		return false
	}
	usedNodes := make(map[int]bool)
	for pn, t := range nodes {
		if usedNodes[t] {
			return false
		}
		usedNodes[t] = true
		if nodeCmp != nil && nodeCmp.CompareNodes(t, pn) != Equal {
			return false
		}
	}
	usedEdges := make(map[int]bool)
	for pe, te := range edges {
		if te < 0 || usedEdges[te] {
			return false
		}
		usedEdges[te] = true
		if edgeCmp != nil && edgeCmp.CompareEdges(te, pe) != Equal {
			return false
		}
		a, b := nodes[pattern.EdgeNode1(pe)], nodes[pattern.EdgeNode2(pe)]
		c, d := target.EdgeNode1(te), target.EdgeNode2(te)
		if !(a == c && b == d) && (target.Directed() || !(a == d && b == c)) {
			return false
		}
	}
	return true
}

// a triangle a-b-b with a pendant c hanging off the second b
func triangleTarget(t testing.TB) *fastgraph.FastGraph {
	return graph(t, false, []string{"a", "b", "b", "c"}, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}})
}

func triangle(t testing.TB) *fastgraph.FastGraph {
	return graph(t, false, []string{"a", "b", "b"}, [][2]int{{0, 1}, {1, 2}, {2, 0}})
}

func TestTriangleWithLabels(t *testing.T) {
	x := assert.New(t)
	target, pattern := triangleTarget(t), triangle(t)
	nodes, edges := NewSimpleNodeLabelComparator(target, pattern), NewSimpleEdgeLabelComparator(target, pattern)
	m, err := New(target, pattern, nodes, edges)
	x.Nil(err)
	x.True(m.Find())
	x.Len(m.Mappings(), 2)
	for _, mapping := range m.Mappings() {
		x.True(sound(target, pattern, nodes, edges, mapping), "%v", mapping)
		x.Equal(0, mapping.NodeMapping()[0])
	}
	// a structurally valid embedding that puts pattern a on target b
	wrong := newMapping([]int{1, 0, 2}, []int{0, 2, 1})
	x.True(sound(target, pattern, nil, nil, wrong))
	x.False(sound(target, pattern, nodes, edges, wrong))
}

func TestTriangleAlwaysEqual(t *testing.T) {
	x := assert.New(t)
	target, pattern := triangleTarget(t), triangle(t)
	m, err := New(target, pattern, AlwaysEqualNodeComparator{}, AlwaysEqualEdgeComparator{})
	x.Nil(err)
	x.True(m.Find())
	x.Len(m.Mappings(), 6)
	seen := make(map[string]bool)
	for _, mapping := range m.Mappings() {
		x.True(sound(target, pattern, nil, nil, mapping), "%v", mapping)
		x.NotContains(mapping.NodeMapping(), 3)
		seen[mapping.String()] = true
	}
	x.Len(seen, 6)
}

func TestNilComparatorsAdmitEverything(t *testing.T) {
	x := assert.New(t)
	m, err := New(triangleTarget(t), triangle(t), nil, nil)
	x.Nil(err)
	x.True(m.Find())
	x.Len(m.Mappings(), 6)
}

func TestEmptyPattern(t *testing.T) {
	x := assert.New(t)
	empty := graph(t, false, nil, nil)
	m, err := New(triangleTarget(t), empty, nil, nil)
	x.Nil(err)
	x.True(m.Find())
	x.Len(m.Mappings(), 1)
	x.Len(m.Mappings()[0].NodeMapping(), 0)

	m, err = New(empty, graph(t, false, nil, nil), nil, nil)
	x.Nil(err)
	x.True(m.Find())
	x.Len(m.Mappings(), 1)
}

func TestEmptyTarget(t *testing.T) {
	x := assert.New(t)
	m, err := New(graph(t, false, nil, nil), triangle(t), nil, nil)
	x.Nil(err)
	x.False(m.Find())
	x.NotNil(m.Mappings())
	x.Len(m.Mappings(), 0)
}

func TestNoEmbedding(t *testing.T) {
	x := assert.New(t)
	path := graph(t, false, blank(4), [][2]int{{0, 1}, {1, 2}, {2, 3}})
	m, err := New(path, triangle(t), nil, nil)
	x.Nil(err)
	x.False(m.Find())
	x.Equal(Exhausted, m.State())
}

func TestParallelEdgesMultiplyMappings(t *testing.T) {
	x := assert.New(t)
	double := graph(t, false, blank(2), [][2]int{{0, 1}, {0, 1}})
	single := graph(t, false, blank(2), [][2]int{{0, 1}})

	m, err := New(double, single, nil, nil)
	x.Nil(err)
	x.True(m.Find())
	x.Len(m.Mappings(), 4)

	m, err = New(double, double, nil, nil)
	x.Nil(err)
	x.True(m.Find())
	x.Len(m.Mappings(), 4)
	for _, mapping := range m.Mappings() {
		x.True(sound(double, double, nil, nil, mapping), "%v", mapping)
	}

	m, err = New(single, double, nil, nil)
	x.Nil(err)
	x.False(m.Find())
}

func TestDirected(t *testing.T) {
	x := assert.New(t)
	arc := graph(t, true, blank(2), [][2]int{{0, 1}})
	back := graph(t, true, blank(2), [][2]int{{1, 0}})
	cycle := graph(t, true, blank(2), [][2]int{{0, 1}, {1, 0}})

	m, err := New(cycle, arc, nil, nil)
	x.Nil(err)
	x.True(m.Find())
	x.Len(m.Mappings(), 2)

	m, err = New(back, arc, nil, nil)
	x.Nil(err)
	x.True(m.Find())
	x.Len(m.Mappings(), 1)
	x.Equal([]int{1, 0}, m.Mappings()[0].NodeMapping())

	m, err = New(arc, cycle, nil, nil)
	x.Nil(err)
	x.False(m.Find())
}

func TestSelfLoops(t *testing.T) {
	x := assert.New(t)
	target := graph(t, true, blank(2), [][2]int{{0, 0}, {0, 1}})
	pattern := graph(t, true, blank(1), [][2]int{{0, 0}})
	m, err := New(target, pattern, nil, nil)
	x.Nil(err)
	x.True(m.Find())
	x.Len(m.Mappings(), 1)
	x.Equal([]int{0}, m.Mappings()[0].NodeMapping())
	x.Equal([]int{0}, m.Mappings()[0].EdgeMapping())
}

func TestDisconnectedPattern(t *testing.T) {
	x := assert.New(t)
	m, err := New(triangle(t), graph(t, false, blank(2), nil), nil, nil)
	x.Nil(err)
	x.True(m.Find())
	x.Len(m.Mappings(), 6)
}

func TestEdgeLabels(t *testing.T) {
	x := assert.New(t)
	b := fastgraph.Build(2, 2)
	b.AddNode("", 0, 0, 0)
	b.AddNode("", 0, 0, 0)
	b.AddEdge(0, 1, "x", 0, 0, 0)
	b.AddEdge(0, 1, "y", 0, 0, 0)
	target, err := b.Build()
	x.Nil(err)
	b = fastgraph.Build(2, 1)
	b.AddNode("", 0, 0, 0)
	b.AddNode("", 0, 0, 0)
	b.AddEdge(0, 1, "y", 0, 0, 0)
	pattern, err := b.Build()
	x.Nil(err)
	edges := NewSimpleEdgeLabelComparator(target, pattern)
	m, err := New(target, pattern, nil, edges)
	x.Nil(err)
	x.True(m.Find())
	x.Len(m.Mappings(), 2)
	for _, mapping := range m.Mappings() {
		x.Equal([]int{1}, mapping.EdgeMapping())
		x.True(sound(target, pattern, nil, edges, mapping), "%v", mapping)
	}
	x.False(sound(target, pattern, nil, edges, newMapping([]int{0, 1}, []int{0})))
}

func TestComparatorFuncs(t *testing.T) {
	x := assert.New(t)
	target, pattern := triangleTarget(t), triangle(t)
	byLabel := NodeComparatorFunc(func(tn, pn int) Ordering {
		return compareStrings(target.NodeLabel(tn), pattern.NodeLabel(pn))
	})
	m, err := New(target, pattern, byLabel, EdgeComparatorFunc(func(int, int) Ordering { return Equal }))
	x.Nil(err)
	x.True(m.Find())
	x.Len(m.Mappings(), 2)
}

func TestInvalidArguments(t *testing.T) {
	x := assert.New(t)
	target, pattern := triangleTarget(t), triangle(t)
	other := triangle(t)

	_, err := New(target, pattern, NewSimpleNodeLabelComparator(target, other), nil)
	x.True(fastgraph.IsInvalidArgument(err), "%v", err)
	_, err = New(target, pattern, nil, NewSimpleEdgeLabelComparator(other, pattern))
	x.True(fastgraph.IsInvalidArgument(err), "%v", err)
	_, err = New(target, graph(t, true, blank(2), [][2]int{{0, 1}}), nil, nil)
	x.True(fastgraph.IsInvalidArgument(err), "%v", err)
	_, err = NewApproximate(target, pattern, nil, nil, -1)
	x.True(fastgraph.IsInvalidArgument(err), "%v", err)
	_, err = New(nil, pattern, nil, nil)
	x.True(fastgraph.IsInvalidArgument(err), "%v", err)
}

func TestFindIsCached(t *testing.T) {
	x := assert.New(t)
	m, err := New(triangleTarget(t), triangle(t), nil, nil)
	x.Nil(err)
	x.Equal(Unstarted, m.State())
	x.Len(m.Mappings(), 0)
	x.True(m.Find())
	x.Equal(Exhausted, m.State())
	first := m.Mappings()
	x.True(m.Find())
	x.Equal(first, m.Mappings())
	x.Equal("exhausted", m.State().String())
}

func TestEmbeddedSubgraphsAreFound(x *testing.T) {
	t := (*test.T)(x)
	for seed := int64(0); seed < 8; seed++ {
		target, err := fastgraph.RandomGraph(9, 16, seed, seed%2 == 0, false, true)
		t.Assert(err == nil, "%v", err)
		for n := 0; n < target.NumberOfNodes(); n++ {
			target.SetNodeLabel(n, string(rune('a'+(n*7+int(seed))%3)))
		}
		for e := 0; e < target.NumberOfEdges(); e++ {
			target.SetEdgeLabel(e, string(rune('x'+(e+int(seed))%2)))
		}
		pattern, err := target.GenerateInducedSubgraph([]int{0, 1, 2, 3})
		t.Assert(err == nil, "%v", err)
		nodes, edges := NewSimpleNodeLabelComparator(target, pattern), NewSimpleEdgeLabelComparator(target, pattern)
		m, err := New(target, pattern, nodes, edges)
		t.Assert(err == nil, "%v", err)
		t.Assert(m.Find(), "seed %v: %v not found in %v", seed, pattern, target)
		for _, mapping := range m.Mappings() {
			t.Assert(sound(target, pattern, nodes, edges, mapping), "seed %v: bad mapping %v", seed, mapping)
		}
	}
}

func TestApproximate(t *testing.T) {
	x := assert.New(t)
	path := graph(t, false, blank(3), [][2]int{{0, 1}, {1, 2}})

	m, err := NewApproximate(path, triangle(t), nil, nil, 1)
	x.Nil(err)
	x.Equal(1, m.MaxMissingEdges())
	x.True(m.Find())
	x.Len(m.Mappings(), 6)
	for _, mapping := range m.Mappings() {
		x.Equal(1, mapping.MissingEdges())
		hosted := 0
		for _, e := range mapping.EdgeMapping() {
			if e >= 0 {
				hosted++
			}
		}
		x.Equal(2, hosted)
	}

	m, err = NewApproximate(path, triangle(t), nil, nil, 0)
	x.Nil(err)
	x.False(m.Find())

	e, err := New(path, triangle(t), nil, nil)
	x.Nil(err)
	x.False(e.Find())
}

func TestApproximateExactWhenPossible(t *testing.T) {
	x := assert.New(t)
	target, pattern := triangleTarget(t), triangle(t)
	nodes := NewSimpleNodeLabelComparator(target, pattern)
	m, err := NewApproximate(target, pattern, nodes, nil, 2)
	x.Nil(err)
	x.True(m.Find())
	exact := 0
	for _, mapping := range m.Mappings() {
		if mapping.MissingEdges() == 0 {
			x.True(sound(target, pattern, nodes, nil, mapping), "%v", mapping)
			exact++
		}
	}
	x.Equal(2, exact)
}

func TestPatternOrderCoversEveryNode(t *testing.T) {
	x := assert.New(t)
	g := graph(t, false, blank(6), [][2]int{{0, 1}, {1, 2}, {3, 4}})
	order := patternOrder(g)
	x.Len(order, 6)
	x.ElementsMatch([]int{0, 1, 2, 3, 4, 5}, order)
	x.Equal(1, order[0])
}
