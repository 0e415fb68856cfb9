package subgraph

import (
	"github.com/timtadh/fastgraph/fastgraph"
)

// ExactSubgraphIsomorphism finds every embedding of a pattern in a target:
// an injective node mapping plus an injective edge mapping such that each
// pattern edge lands on a target edge between the images of its
// endpoints (with matching orientation in directed graphs). Embeddings
// are not induced: the target may have extra edges between mapped nodes.
type ExactSubgraphIsomorphism struct {
	*search
}

// New constructs the matcher. A nil comparator admits every pair. A
// comparator built for different graphs, or a directed/undirected mismatch
// between target and pattern, is an InvalidArgument error.
func New(target, pattern *fastgraph.FastGraph, nodeCmp NodeComparator, edgeCmp EdgeComparator) (*ExactSubgraphIsomorphism, error) {
	s, err := newSearch(target, pattern, nodeCmp, edgeCmp)
	if err != nil {
		return nil, err
	}
	return &ExactSubgraphIsomorphism{search: s}, nil
}
