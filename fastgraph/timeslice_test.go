package fastgraph

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/data-structures/test"
)

func TestAppendTimeSlice(t *testing.T) {
	x := assert.New(t)
	g := pentagon(t)
	next, err := g.AppendTimeSlice(0.2, 0.2, 2, 2, false, 7)
	x.Nil(err)
	x.Equal(int8(1), next.Generation())
	x.Len(next.FindAllNodesOfAge(1), 6)
	x.Len(next.FindAllNodesOfAge(0), 5)
	x.True(next.CheckConsistency())

	timeEdges := 0
	for e := 0; e < next.NumberOfEdges(); e++ {
		if next.EdgeType(e) == TimeEdgeType {
			timeEdges++
			x.Equal(int8(0), next.NodeAge(next.EdgeNode1(e)))
			x.Equal(int8(1), next.NodeAge(next.EdgeNode2(e)))
			x.Equal(next.NodeLabel(next.EdgeNode1(e)), next.NodeLabel(next.EdgeNode2(e)))
		}
	}
	x.Equal(4, timeEdges)
	// the removed node takes two cycle edges with it and one of the remaining
	// three is dropped
	x.Len(next.FindAllEdgesOfAge(1), 2+2+4)
	x.Len(next.FindAllEdgesOfAge(0), 5)
}

func TestAppendTimeSliceAnySeed(x *testing.T) {
	t := (*test.T)(x)
	for seed := int64(0); seed < 50; seed++ {
		g := pentagon(x)
		next, err := g.AppendTimeSlice(0.2, 0.2, 2, 2, false, seed)
		t.Assert(err == nil, "%v", err)
		t.Assert(len(next.FindAllNodesOfAge(1)) == 6, "seed %v gave %v", seed, next.FindAllNodesOfAge(1))
		for e := 0; e < next.NumberOfEdges(); e++ {
			if next.EdgeAge(e) == 1 && next.EdgeType(e) != TimeEdgeType {
				t.Assert(next.EdgeNode1(e) != next.EdgeNode2(e), "self-loop in slice with seed %v", seed)
				t.Assert(next.NodeAge(next.EdgeNode1(e)) == 1, "slice edge leaves the slice")
				t.Assert(next.NodeAge(next.EdgeNode2(e)) == 1, "slice edge leaves the slice")
			}
		}
	}
}

func TestAppendSeveralSlices(t *testing.T) {
	x := assert.New(t)
	g := pentagon(t)
	var err error
	for i := 0; i < 3; i++ {
		g, err = g.AppendTimeSlice(0, 0, 1, 1, true, int64(i))
		x.Nil(err)
	}
	x.Equal(int8(3), g.Generation())
	x.Len(g.FindAllNodesOfAge(0), 5)
	x.Len(g.FindAllNodesOfAge(1), 6)
	x.Len(g.FindAllNodesOfAge(2), 7)
	x.Len(g.FindAllNodesOfAge(3), 8)
}

func TestAppendTimeSliceArguments(t *testing.T) {
	x := assert.New(t)
	g := pentagon(t)
	_, err := g.AppendTimeSlice(1.5, 0, 0, 0, false, 1)
	x.True(IsInvalidArgument(err))
	_, err = g.AppendTimeSlice(0, -0.1, 0, 0, false, 1)
	x.True(IsInvalidArgument(err))
	_, err = g.AppendTimeSlice(0, 0, -1, 0, false, 1)
	x.True(IsInvalidArgument(err))
	_, err = g.AppendTimeSlice(1, 0, 1, 1, false, 1)
	x.True(IsInvalidArgument(err))
}
