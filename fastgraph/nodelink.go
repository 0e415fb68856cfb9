package fastgraph

import (
	"io"
)

import (
	"github.com/timtadh/data-structures/errors"
	"gopkg.in/yaml.v3"
)

// NodeLinkGraph is the loose interchange description of a graph used by
// drawing tools: nodes carry an id and links reference node ids. JSON
// documents decode as well since yaml.v3 accepts JSON.
type NodeLinkGraph struct {
	Name       string         `yaml:"name,omitempty"`
	Directed   bool           `yaml:"directed"`
	Generation int8           `yaml:"generation,omitempty"`
	Nodes      []NodeLinkNode `yaml:"nodes"`
	Links      []NodeLinkLink `yaml:"links"`
}

type NodeLinkNode struct {
	Id     int    `yaml:"id"`
	Label  string `yaml:"label,omitempty"`
	Weight int32  `yaml:"weight,omitempty"`
	Type   int8   `yaml:"type,omitempty"`
	Age    int8   `yaml:"age,omitempty"`
}

type NodeLinkLink struct {
	Source int    `yaml:"source"`
	Target int    `yaml:"target"`
	Label  string `yaml:"label,omitempty"`
	Weight int32  `yaml:"weight,omitempty"`
	Type   int8   `yaml:"type,omitempty"`
	Age    int8   `yaml:"age,omitempty"`
}

// FromNodeLink builds a graph with nodes and links in document order.
// Links to unknown node ids are StructuralPrecondition errors.
func FromNodeLink(nl *NodeLinkGraph) (*FastGraph, error) {
	if nl.Generation < 0 {
		return nil, errors.Errorf("bad generation %v", nl.Generation)
	}
	nodes := make([]NodeStructure, 0, len(nl.Nodes))
	edges := make([]EdgeStructure, 0, len(nl.Links))
	for _, n := range nl.Nodes {
		nodes = append(nodes, NodeStructure{
			Id:     n.Id,
			Label:  n.Label,
			Weight: n.Weight,
			Type:   n.Type,
			Age:    n.Age,
		})
	}
	for i, l := range nl.Links {
		edges = append(edges, EdgeStructure{
			Id:     i,
			Label:  l.Label,
			Weight: l.Weight,
			Type:   l.Type,
			Age:    l.Age,
			Node1:  l.Source,
			Node2:  l.Target,
		})
	}
	g, err := FromStructures(nl.Directed, nodes, edges)
	if err != nil {
		return nil, err
	}
	g.SetName(nl.Name)
	g.generation = nl.Generation
	return g, nil
}

func (g *FastGraph) ToNodeLink() *NodeLinkGraph {
	nl := &NodeLinkGraph{
		Name:       g.name,
		Directed:   g.directed,
		Generation: g.generation,
		Nodes:      make([]NodeLinkNode, 0, g.numberOfNodes),
		Links:      make([]NodeLinkLink, 0, g.numberOfEdges),
	}
	for n := 0; n < g.numberOfNodes; n++ {
		nl.Nodes = append(nl.Nodes, NodeLinkNode{
			Id:     n,
			Label:  g.NodeLabel(n),
			Weight: g.NodeWeight(n),
			Type:   g.NodeType(n),
			Age:    g.NodeAge(n),
		})
	}
	for e := 0; e < g.numberOfEdges; e++ {
		nl.Links = append(nl.Links, NodeLinkLink{
			Source: g.EdgeNode1(e),
			Target: g.EdgeNode2(e),
			Label:  g.EdgeLabel(e),
			Weight: g.EdgeWeight(e),
			Type:   g.EdgeType(e),
			Age:    g.EdgeAge(e),
		})
	}
	return nl
}

func LoadNodeLink(input io.Reader) (*FastGraph, error) {
	var nl NodeLinkGraph
	if err := yaml.NewDecoder(input).Decode(&nl); err != nil {
		return nil, err
	}
	return FromNodeLink(&nl)
}

func (g *FastGraph) WriteNodeLink(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g.ToNodeLink()); err != nil {
		return err
	}
	return enc.Close()
}
