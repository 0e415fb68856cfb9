package iso

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

// validMatch checks that match carries every edge multiplicity of a onto b
func validMatch(a, b *fastgraph.FastGraph, match []int) bool {
	if len(match) != a.NumberOfNodes() {
		return false
	}
	used := make(map[int]bool)
	for _, v := range match {
		if used[v] {
			return false
		}
		used[v] = true
	}
	for e := 0; e < a.NumberOfEdges(); e++ {
		u, v := a.EdgeNode1(e), a.EdgeNode2(e)
		if len(a.EdgesBetween(u, v)) != len(b.EdgesBetween(match[u], match[v])) {
			return false
		}
	}
	return true
}

var fiveSeven = [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {0, 2}, {1, 3}}

func TestFiveNodeSevenEdgeFixtures(t *testing.T) {
	x := assert.New(t)
	g1 := graph(t, false, blank(5), fiveSeven)
	g2 := graph(t, false, blank(5), [][2]int{{2, 4}, {4, 0}, {0, 1}, {1, 3}, {3, 2}, {2, 0}, {4, 1}})
	g3 := graph(t, false, blank(5), [][2]int{{0, 3}, {0, 4}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}})

	m, err := New(g1, Options{})
	x.Nil(err)
	x.True(m.Isomorphic(g2))
	x.True(validMatch(g1, g2, m.LastMatch()))
	x.False(m.Isomorphic(g3))
	x.False(Isomorphic(g2, g3))
	x.False(Isomorphic(g3, g1))
	x.True(Isomorphic(g2, g1))
}

func TestSameDegreesNotIsomorphic(t *testing.T) {
	x := assert.New(t)
	hexagon := graph(t, false, blank(6), [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}})
	triangles := graph(t, false, blank(6), [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}})
	x.True(fastgraph.SameDegreeSequence(hexagon, triangles))
	x.False(Isomorphic(hexagon, triangles))
	x.False(Isomorphic(triangles, hexagon))

	cycle := graph(t, true, blank(4), [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	twoCycles := graph(t, true, blank(4), [][2]int{{0, 1}, {1, 0}, {2, 3}, {3, 2}})
	x.False(Isomorphic(cycle, twoCycles))

	// same underlying graph, one edge reversed
	a := graph(t, true, blank(3), [][2]int{{0, 1}, {1, 2}, {2, 0}})
	b := graph(t, true, blank(3), [][2]int{{0, 1}, {1, 2}, {0, 2}})
	x.False(Isomorphic(a, b))
}

func TestConnectivityPrecondition(t *testing.T) {
	x := assert.New(t)
	triangles := graph(t, false, blank(6), [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}})
	_, err := New(triangles, Options{})
	x.Error(err)
	x.True(fastgraph.IsStructural(err))
	c := triangles.Copy()
	x.True(Isomorphic(triangles, c))
	x.True(IsomorphicWith(triangles, c, Options{NodeLabels: true, EdgeLabels: true}))

	empty := graph(t, false, nil, nil)
	m, err := New(empty, Options{})
	x.Nil(err)
	x.True(m.Isomorphic(empty.Copy()))
	x.Equal([]int{}, m.LastMatch())
}

func TestLastMatchNilBeforeSuccess(t *testing.T) {
	x := assert.New(t)
	g := graph(t, false, blank(2), [][2]int{{0, 1}})
	m, err := New(g, Options{})
	x.Nil(err)
	x.Nil(m.LastMatch())
	x.False(m.Isomorphic(graph(t, false, blank(2), [][2]int{{0, 0}})))
	x.Nil(m.LastMatch())
}

func TestSelfLoopsAndParallelEdges(t *testing.T) {
	x := assert.New(t)
	a := graph(t, false, blank(3), [][2]int{{0, 1}, {0, 1}, {1, 2}, {2, 2}})
	b := graph(t, false, blank(3), [][2]int{{2, 1}, {1, 0}, {1, 2}, {0, 0}})
	c := graph(t, false, blank(3), [][2]int{{0, 1}, {1, 2}, {1, 2}, {2, 2}})
	x.True(Isomorphic(a, b))
	x.False(Isomorphic(a, c))
	d := graph(t, true, blank(2), [][2]int{{0, 0}, {0, 1}, {1, 0}})
	e := graph(t, true, blank(2), [][2]int{{1, 0}, {0, 1}, {1, 1}})
	x.True(Isomorphic(d, e))
}

func TestLabels(t *testing.T) {
	x := assert.New(t)
	star := func(leafLabels []string, yLeaf int) *fastgraph.FastGraph {
		b := fastgraph.Build(4, 3)
		b.AddNode("center", 0, 0, 0)
		for _, l := range leafLabels {
			b.AddNode(l, 0, 0, 0)
		}
		for leaf := 1; leaf <= 3; leaf++ {
			label := "x"
			if leaf == yLeaf {
				label = "y"
			}
			b.AddEdge(0, leaf, label, 0, 0, 0)
		}
		g, err := b.Build()
		x.Nil(err)
		return g
	}
	a := star([]string{"p", "p", "q"}, 3)
	b := star([]string{"p", "q", "p"}, 1)
	x.True(IsomorphicWith(a, b, Options{}))
	x.True(IsomorphicWith(a, b, Options{NodeLabels: true}))
	x.True(IsomorphicWith(a, b, Options{EdgeLabels: true}))
	x.False(IsomorphicWith(a, b, Options{NodeLabels: true, EdgeLabels: true}))

	c := star([]string{"p", "p", "r"}, 3)
	x.False(IsomorphicWith(a, c, Options{NodeLabels: true}))
	x.True(IsomorphicWith(a, c, Options{EdgeLabels: true}))
}

func TestReflexivity(x *testing.T) {
	t := (*test.T)(x)
	for seed := int64(0); seed < 40; seed++ {
		g, err := fastgraph.RandomGraph(9, 14, seed, seed%2 == 0, seed%3 == 0, seed%4 == 0)
		t.Assert(err == nil, "%v", err)
		c := g.Copy()
		m := newMatcher(g, Options{NodeLabels: true, EdgeLabels: true})
		t.Assert(m.Isomorphic(c), "graph %v is not isomorphic to its copy", g)
		t.Assert(validMatch(g, c, m.LastMatch()), "bad match %v", m.LastMatch())
	}
}

func TestPermutationInvariance(x *testing.T) {
	t := (*test.T)(x)
	for seed := int64(0); seed < 40; seed++ {
		g, err := fastgraph.RandomGraph(10, 18, seed, seed%2 == 1, true, true)
		t.Assert(err == nil, "%v", err)
		for s := int64(0); s < 5; s++ {
			r, err := GenerateRandomIsomorphicGraph(g, seed*100+s, true)
			t.Assert(err == nil, "%v", err)
			t.Assert(r.CheckConsistency(), "inconsistent result %v", r.Validate())
			m := newMatcher(g, Options{NodeLabels: true, EdgeLabels: true})
			t.Assert(m.Isomorphic(r), "seed %v/%v: %v not isomorphic to %v", seed, s, g, r)
			t.Assert(validMatch(g, r, m.LastMatch()), "bad match %v", m.LastMatch())
			t.Assert(Isomorphic(r, g), "seed %v/%v: not symmetric", seed, s)
		}
	}
}

func TestPermute(t *testing.T) {
	x := assert.New(t)
	g := graph(t, true, []string{"a", "b", "c"}, [][2]int{{0, 1}, {1, 2}})
	p, err := Permute(g, []int{2, 0, 1})
	x.Nil(err)
	x.Equal("b", p.NodeLabel(0))
	x.Equal("c", p.NodeLabel(1))
	x.Equal("a", p.NodeLabel(2))
	x.Equal(2, p.EdgeNode1(0))
	x.Equal(0, p.EdgeNode2(0))
	x.True(IsomorphicWith(g, p, Options{NodeLabels: true}))
	_, err = Permute(g, []int{0, 0, 1})
	x.True(fastgraph.IsInvalidArgument(err))
	_, err = Permute(g, []int{0, 1})
	x.True(fastgraph.IsInvalidArgument(err))
}

func TestRandomIsomorphicWithoutLabels(t *testing.T) {
	x := assert.New(t)
	g := graph(t, false, []string{"a", "b", "c"}, [][2]int{{0, 1}, {1, 2}})
	r, err := GenerateRandomIsomorphicGraph(g, 3, false)
	x.Nil(err)
	for n := 0; n < r.NumberOfNodes(); n++ {
		x.Equal("", r.NodeLabel(n))
	}
	x.True(Isomorphic(g, r))
	x.False(IsomorphicWith(g, r, Options{NodeLabels: true}))
}

func TestSymmetry(x *testing.T) {
	t := (*test.T)(x)
	graphs := make([]*fastgraph.FastGraph, 0, 30)
	for seed := int64(0); seed < 30; seed++ {
		g, err := fastgraph.RandomGraph(5, 5, seed, false, false, false)
		t.Assert(err == nil, "%v", err)
		graphs = append(graphs, g)
	}
	isos := 0
	for i := range graphs {
		for j := i + 1; j < len(graphs); j++ {
			ab := Isomorphic(graphs[i], graphs[j])
			ba := Isomorphic(graphs[j], graphs[i])
			t.Assert(ab == ba, "asymmetric result for %v and %v", graphs[i], graphs[j])
			if ab {
				isos++
			}
		}
	}
	t.Assert(isos > 0, "expected some isomorphic pairs among small random graphs")
}
