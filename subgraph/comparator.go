package subgraph

import (
	"strings"
)

import (
	"github.com/timtadh/fastgraph/fastgraph"
)

type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}
	return "invalid-ordering"
}

// NodeComparator orders a target node against a pattern node. Only Equal
// admits the pair into a mapping. Graphs returns the graphs the comparator
// was built for, or nils when it does not depend on particular graphs.
type NodeComparator interface {
	Graphs() (target, pattern *fastgraph.FastGraph)
	CompareNodes(targetNode, patternNode int) Ordering
}

type EdgeComparator interface {
	Graphs() (target, pattern *fastgraph.FastGraph)
	CompareEdges(targetEdge, patternEdge int) Ordering
}

func compareStrings(a, b string) Ordering {
	return Ordering(strings.Compare(a, b))
}

type SimpleNodeLabelComparator struct {
	target, pattern *fastgraph.FastGraph
}

func NewSimpleNodeLabelComparator(target, pattern *fastgraph.FastGraph) *SimpleNodeLabelComparator {
	return &SimpleNodeLabelComparator{target: target, pattern: pattern}
}

func (c *SimpleNodeLabelComparator) Graphs() (target, pattern *fastgraph.FastGraph) {
	return c.target, c.pattern
}

func (c *SimpleNodeLabelComparator) CompareNodes(targetNode, patternNode int) Ordering {
	return compareStrings(c.target.NodeLabel(targetNode), c.pattern.NodeLabel(patternNode))
}

type SimpleEdgeLabelComparator struct {
	target, pattern *fastgraph.FastGraph
}

func NewSimpleEdgeLabelComparator(target, pattern *fastgraph.FastGraph) *SimpleEdgeLabelComparator {
	return &SimpleEdgeLabelComparator{target: target, pattern: pattern}
}

func (c *SimpleEdgeLabelComparator) Graphs() (target, pattern *fastgraph.FastGraph) {
	return c.target, c.pattern
}

func (c *SimpleEdgeLabelComparator) CompareEdges(targetEdge, patternEdge int) Ordering {
	return compareStrings(c.target.EdgeLabel(targetEdge), c.pattern.EdgeLabel(patternEdge))
}

type AlwaysEqualNodeComparator struct{}

func (AlwaysEqualNodeComparator) Graphs() (target, pattern *fastgraph.FastGraph) {
	return nil, nil
}

func (AlwaysEqualNodeComparator) CompareNodes(int, int) Ordering {
	return Equal
}

type AlwaysEqualEdgeComparator struct{}

func (AlwaysEqualEdgeComparator) Graphs() (target, pattern *fastgraph.FastGraph) {
	return nil, nil
}

func (AlwaysEqualEdgeComparator) CompareEdges(int, int) Ordering {
	return Equal
}

// NodeComparatorFunc adapts a plain function. It is not tied to any graphs.
type NodeComparatorFunc func(targetNode, patternNode int) Ordering

func (f NodeComparatorFunc) Graphs() (target, pattern *fastgraph.FastGraph) {
	return nil, nil
}

func (f NodeComparatorFunc) CompareNodes(targetNode, patternNode int) Ordering {
	return f(targetNode, patternNode)
}

type EdgeComparatorFunc func(targetEdge, patternEdge int) Ordering

func (f EdgeComparatorFunc) Graphs() (target, pattern *fastgraph.FastGraph) {
	return nil, nil
}

func (f EdgeComparatorFunc) CompareEdges(targetEdge, patternEdge int) Ordering {
	return f(targetEdge, patternEdge)
}

func checkGraphs(kind string, target, pattern, ct, cp *fastgraph.FastGraph) error {
	if ct == nil && cp == nil {
		return nil
	}
	if ct != target || cp != pattern {
		return fastgraph.InvalidArgumentf("%v comparator was built for a different target/pattern pair", kind)
	}
	return nil
}
