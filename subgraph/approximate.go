package subgraph

import (
	"github.com/timtadh/fastgraph/fastgraph"
)

// ApproximateSubgraphIsomorphism relaxes the exact matcher: up to
// MaxMissingEdges pattern edges may have no hosting target edge. Node
// mappings stay injective and must satisfy the node comparator. One
// mapping is reported per node assignment; its edge mapping holds a
// maximum set of hosted edges and -1 for the rest.
type ApproximateSubgraphIsomorphism struct {
	*search
}

func NewApproximate(target, pattern *fastgraph.FastGraph, nodeCmp NodeComparator, edgeCmp EdgeComparator, maxMissingEdges int) (*ApproximateSubgraphIsomorphism, error) {
	if maxMissingEdges < 0 {
		return nil, fastgraph.InvalidArgumentf("maxMissingEdges must be non-negative, got %v", maxMissingEdges)
	}
	s, err := newSearch(target, pattern, nodeCmp, edgeCmp)
	if err != nil {
		return nil, err
	}
	s.approximate = true
	s.maxMissing = maxMissingEdges
	return &ApproximateSubgraphIsomorphism{search: s}, nil
}

func (a *ApproximateSubgraphIsomorphism) MaxMissingEdges() int {
	return a.maxMissing
}
