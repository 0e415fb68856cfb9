package fastgraph

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/data-structures/test"
)

func graph(t *testing.T, directed bool, labels []string, edges [][2]int) *FastGraph {
	b := Build(len(labels), len(edges)).Ctx(func(b *Builder) {
		b.Directed = directed
		for _, l := range labels {
			b.AddNode(l, 0, 0, 0)
		}
		for _, e := range edges {
			b.AddEdge(e[0], e[1], "", 0, 0, 0)
		}
	})
	g, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func labels(n int) []string {
	l := make([]string, n)
	for i := range l {
		l[i] = string(rune('a' + i))
	}
	return l
}

// the 5 node fixture used by the time slice tests
func pentagon(t *testing.T) *FastGraph {
	return graph(t, true, labels(5), [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
}

func TestSingleEdge(t *testing.T) {
	x := assert.New(t)
	g := graph(t, true, labels(2), [][2]int{{0, 1}})
	x.Equal(2, g.NumberOfNodes())
	x.Equal(1, g.NumberOfEdges())
	x.Equal(1, g.NodeOutDegree(0))
	x.Equal(0, g.NodeInDegree(0))
	x.Equal(1, g.NodeInDegree(1))
	x.Equal(0, g.NodeOutDegree(1))
	x.True(Connected(g))
	x.True(g.CheckConsistency())
}

func TestConnectionOrder(t *testing.T) {
	x := assert.New(t)
	g := graph(t, true, labels(3), [][2]int{{1, 0}, {0, 2}, {2, 0}, {0, 1}, {0, 0}})
	x.Equal([]int{0, 1, 2, 3, 4, 4}, g.ConnectingEdges(0))
	x.Equal([]int{1, 2, 2, 1, 0, 0}, g.ConnectingNodes(0))
	x.Equal([]int{0, 2, 4}, g.ConnectingInEdges(0))
	x.Equal([]int{1, 3, 4}, g.ConnectingOutEdges(0))
	x.Equal([]int{1, 2, 0}, g.ConnectingInNodes(0))
	x.Equal([]int{2, 1, 0}, g.ConnectingOutNodes(0))
	x.Equal(6, g.NodeDegree(0))
	x.Equal(len(g.ConnectingEdges(0)), g.NodeDegree(0))
	x.Equal(1, g.SelfLoops(0))
	x.Equal(0, g.SelfLoops(1))
}

func TestOppositeEnd(t *testing.T) {
	x := assert.New(t)
	g := graph(t, false, labels(3), [][2]int{{0, 1}, {2, 2}})
	x.Equal(1, g.OppositeEnd(0, 0))
	x.Equal(0, g.OppositeEnd(1, 0))
	x.Equal(2, g.OppositeEnd(2, 1))
	x.Equal(-1, g.OppositeEnd(2, 0))
}

func TestEdgesBetween(t *testing.T) {
	x := assert.New(t)
	d := graph(t, true, labels(2), [][2]int{{0, 1}, {1, 0}, {0, 1}, {1, 1}})
	x.Equal([]int{0, 2}, d.EdgesBetween(0, 1))
	x.Equal([]int{1}, d.EdgesBetween(1, 0))
	x.Equal([]int{3}, d.EdgesBetween(1, 1))
	u := graph(t, false, labels(2), [][2]int{{0, 1}, {1, 0}, {0, 1}, {1, 1}})
	x.Equal([]int{0, 1, 2}, u.EdgesBetween(0, 1))
	x.Equal([]int{0, 1, 2}, u.EdgesBetween(1, 0))
	x.Equal([]int{3}, u.EdgesBetween(1, 1))
	x.Equal([]int{1}, u.EdgesBetweenDirected(1, 0))
}

func TestBuildRejectsDanglingEdge(t *testing.T) {
	x := assert.New(t)
	b := Build(1, 1)
	b.AddNode("a", 0, 0, 0)
	b.AddEdge(0, 1, "", 0, 0, 0)
	_, err := b.Build()
	x.Error(err)
	x.True(IsStructural(err))
	x.False(IsInvalidArgument(err))
}

func TestFromStructures(t *testing.T) {
	x := assert.New(t)
	g, err := FromStructures(true,
		[]NodeStructure{
			{Id: 10, Label: "x", Weight: 3, Type: 1, Age: 0},
			{Id: 20, Label: "y", Weight: -4, Type: 2, Age: 1},
		},
		[]EdgeStructure{
			{Id: 7, Label: "e", Weight: 9, Type: 3, Age: 1, Node1: 20, Node2: 10},
		})
	x.Nil(err)
	x.Equal("y", g.NodeLabel(1))
	x.Equal(int32(-4), g.NodeWeight(1))
	x.Equal(int8(2), g.NodeType(1))
	x.Equal(1, g.EdgeNode1(0))
	x.Equal(0, g.EdgeNode2(0))
	x.Equal("e", g.EdgeLabel(0))
	x.Equal(int32(9), g.EdgeWeight(0))

	nodes, edges := g.Structures()
	h, err := FromStructures(true, nodes, edges)
	x.Nil(err)
	x.Equal(g.String(), h.String())

	_, err = FromStructures(false, []NodeStructure{{Id: 1}, {Id: 1}}, nil)
	x.True(IsStructural(err))
	_, err = FromStructures(false, []NodeStructure{{Id: 1}}, []EdgeStructure{{Id: 0, Node1: 1, Node2: 2}})
	x.True(IsStructural(err))
}

func TestAttributeMutation(t *testing.T) {
	x := assert.New(t)
	g := graph(t, false, []string{"long-label", "b"}, [][2]int{{0, 1}})
	g.SetNodeLabel(0, "s")
	g.SetNodeLabel(1, "a much longer label")
	g.SetNodeWeight(0, 12)
	g.SetNodeType(1, -3)
	g.SetNodeAge(1, 4)
	g.SetEdgeLabel(0, "edge")
	g.SetEdgeWeight(0, -1)
	g.SetEdgeType(0, 5)
	g.SetEdgeAge(0, 2)
	x.Equal("s", g.NodeLabel(0))
	x.Equal("a much longer label", g.NodeLabel(1))
	x.Equal(int32(12), g.NodeWeight(0))
	x.Equal(int8(-3), g.NodeType(1))
	x.Equal(int8(4), g.NodeAge(1))
	x.Equal("edge", g.EdgeLabel(0))
	x.Equal(int32(-1), g.EdgeWeight(0))
	x.Equal(int8(5), g.EdgeType(0))
	x.Equal(int8(2), g.EdgeAge(0))
	x.True(g.CheckConsistency())
}

func TestCopyIsIndependent(t *testing.T) {
	x := assert.New(t)
	g := pentagon(t)
	c := g.Copy()
	c.SetNodeLabel(0, "changed")
	x.Equal("a", g.NodeLabel(0))
	x.Equal("changed", c.NodeLabel(0))
	x.Equal(g.ConnectingEdges(3), c.ConnectingEdges(3))
}

func TestString(t *testing.T) {
	x := assert.New(t)
	g := graph(t, true, []string{"a", "b"}, [][2]int{{0, 1}})
	x.Equal("{1:2}(a)(b)[0->1:]", g.String())
}

func TestConsistencyOfFactories(x *testing.T) {
	t := (*test.T)(x)
	for seed := int64(0); seed < 20; seed++ {
		g, err := RandomGraph(12, 30, seed, seed%2 == 0, true, true)
		t.Assert(err == nil, "random graph %v: %v", seed, err)
		t.Assert(g.CheckConsistency(), "random graph %v is inconsistent: %v", seed, g.Validate())
		t.Assert(g.CheckConsistency(), "consistency checking changed the graph")
		sub, err := g.GenerateInducedSubgraph([]int{0, 2, 4, 6, 8})
		t.Assert(err == nil, "induced subgraph %v: %v", seed, err)
		t.Assert(sub.CheckConsistency(), "induced subgraph %v is inconsistent: %v", seed, sub.Validate())
		del, err := g.GenerateGraphByDeletingItems([]int{1, 3}, []int{0}, true)
		t.Assert(err == nil, "deletion %v: %v", seed, err)
		t.Assert(del.CheckConsistency(), "deletion %v is inconsistent: %v", seed, del.Validate())
		rw, err := g.RewireDegreePreserving(20, seed)
		t.Assert(err == nil, "rewire %v: %v", seed, err)
		t.Assert(rw.CheckConsistency(), "rewire %v is inconsistent: %v", seed, rw.Validate())
	}
}

func TestCorruptConnectionOffset(t *testing.T) {
	x := assert.New(t)
	g := pentagon(t)
	x.True(g.CheckConsistency())
	putInt32(g.nodeBuf, 2*NodeByteSize+nodeOutStartOffset, getInt32(g.nodeBuf, 2*NodeByteSize+nodeOutStartOffset)+1)
	x.False(g.CheckConsistency())
	x.True(IsStructural(g.Validate()))
}

func TestCorruptConnectionEntry(t *testing.T) {
	x := assert.New(t)
	g := pentagon(t)
	putInt32(g.connectionBuf, 3*ConnectionPairSize+connectionEdgeOffset, 4)
	x.False(g.CheckConsistency())
}

func TestCorruptEdgeEndpoint(t *testing.T) {
	x := assert.New(t)
	g := pentagon(t)
	putInt32(g.edgeBuf, 1*EdgeByteSize+edgeNode2Offset, 4)
	x.False(g.CheckConsistency())
	h := pentagon(t)
	putInt32(h.edgeBuf, 1*EdgeByteSize+edgeNode1Offset, 99)
	x.False(h.CheckConsistency())
}

func TestOutOfRangePanics(t *testing.T) {
	x := assert.New(t)
	g := pentagon(t)
	x.Panics(func() { g.NodeLabel(5) })
	x.Panics(func() { g.EdgeNode1(-1) })
}
