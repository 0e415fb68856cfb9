package fastgraph

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/data-structures/test"
)

func TestRandomGraphProperties(x *testing.T) {
	t := (*test.T)(x)
	for seed := int64(0); seed < 25; seed++ {
		directed := seed%2 == 0
		g, err := RandomGraph(10, 20, seed, directed, false, false)
		t.Assert(err == nil, "%v", err)
		t.Assert(g.NumberOfNodes() == 10 && g.NumberOfEdges() == 20, "wrong size %v", g)
		t.Assert(g.Directed() == directed, "directedness not kept")
		seen := make(map[[2]int]bool)
		for e := 0; e < g.NumberOfEdges(); e++ {
			n1, n2 := g.EdgeNode1(e), g.EdgeNode2(e)
			t.Assert(n1 != n2, "self-loop %v in %v", e, g)
			k := pairKey(n1, n2, directed)
			t.Assert(!seen[k], "parallel edge %v in %v", e, g)
			seen[k] = true
		}
	}
}

func TestRandomGraphDeterministic(t *testing.T) {
	x := assert.New(t)
	a, err := RandomGraph(8, 12, 42, true, true, true)
	x.Nil(err)
	b, err := RandomGraph(8, 12, 42, true, true, true)
	x.Nil(err)
	x.Equal(a.String(), b.String())
}

func TestRandomGraphImpossible(t *testing.T) {
	x := assert.New(t)
	_, err := RandomGraph(4, 7, 1, false, false, false)
	x.True(IsInvalidArgument(err))
	_, err = RandomGraph(4, 12, 1, true, false, false)
	x.Nil(err)
	_, err = RandomGraph(4, 13, 1, true, false, false)
	x.True(IsInvalidArgument(err))
	_, err = RandomGraph(0, 1, 1, true, true, true)
	x.True(IsInvalidArgument(err))
	_, err = RandomGraph(1, 1, 1, true, false, true)
	x.True(IsInvalidArgument(err))
	_, err = RandomGraph(-1, 0, 1, true, false, true)
	x.True(IsInvalidArgument(err))
	g, err := RandomGraph(1, 3, 1, false, true, true)
	x.Nil(err)
	x.Equal(3, g.SelfLoops(0))
}

func TestRewireKeepsDegrees(x *testing.T) {
	t := (*test.T)(x)
	for seed := int64(0); seed < 15; seed++ {
		directed := seed%2 == 1
		g, err := RandomGraph(20, 40, seed, directed, false, false)
		t.Assert(err == nil, "%v", err)
		r, err := g.RewireDegreePreserving(100, seed+100)
		t.Assert(err == nil, "%v", err)
		for n := 0; n < g.NumberOfNodes(); n++ {
			t.Assert(g.NodeDegree(n) == r.NodeDegree(n), "degree of %v changed", n)
			if directed {
				t.Assert(g.NodeInDegree(n) == r.NodeInDegree(n), "in degree of %v changed", n)
				t.Assert(g.NodeOutDegree(n) == r.NodeOutDegree(n), "out degree of %v changed", n)
			}
		}
		seen := make(map[[2]int]bool)
		for e := 0; e < r.NumberOfEdges(); e++ {
			k := pairKey(r.EdgeNode1(e), r.EdgeNode2(e), directed)
			t.Assert(k[0] != k[1], "rewiring created a self-loop")
			t.Assert(!seen[k], "rewiring created a parallel edge")
			seen[k] = true
		}
	}
}
