package subgraph

import (
	"fmt"
)

// SubgraphMapping is one embedding of the pattern: NodeMapping()[p] is the
// target node hosting pattern node p and EdgeMapping()[e] the target edge
// hosting pattern edge e. Approximate embeddings use -1 for pattern edges
// without a target edge.
type SubgraphMapping struct {
	nodes []int
	edges []int
}

func newMapping(nodes, edges []int) SubgraphMapping {
	m := SubgraphMapping{
		nodes: make([]int, len(nodes)),
		edges: make([]int, len(edges)),
	}
	copy(m.nodes, nodes)
	copy(m.edges, edges)
	return m
}

func (m SubgraphMapping) NodeMapping() []int {
	nodes := make([]int, len(m.nodes))
	copy(nodes, m.nodes)
	return nodes
}

func (m SubgraphMapping) EdgeMapping() []int {
	edges := make([]int, len(m.edges))
	copy(edges, m.edges)
	return edges
}

// MissingEdges counts the pattern edges without a target edge.
func (m SubgraphMapping) MissingEdges() int {
	missing := 0
	for _, e := range m.edges {
		if e < 0 {
			missing++
		}
	}
	return missing
}

func (m SubgraphMapping) String() string {
	return fmt.Sprintf("nodes%v edges%v", m.nodes, m.edges)
}
