package fastgraph

// NodeStructure describes a node by an external id. Ids only need to be
// unique within one construction call.
type NodeStructure struct {
	Id     int
	Label  string
	Weight int32
	Type   int8
	Age    int8
}

// EdgeStructure describes an edge between two NodeStructure ids.
type EdgeStructure struct {
	Id     int
	Label  string
	Weight int32
	Type   int8
	Age    int8
	Node1  int
	Node2  int
}

// Builder accumulates nodes and edges by index. Edge endpoints are only
// checked when Build is called.
type Builder struct {
	V          []NodeStructure
	E          []EdgeStructure
	Directed   bool
	Generation int8
	Name       string
}

func Build(V, E int) *Builder {
	return &Builder{
		V: make([]NodeStructure, 0, V),
		E: make([]EdgeStructure, 0, E),
	}
}

func (b *Builder) Ctx(do func(*Builder)) *Builder {
	do(b)
	return b
}

func (b *Builder) AddNode(label string, weight int32, typ, age int8) int {
	idx := len(b.V)
	b.V = append(b.V, NodeStructure{
		Id:     idx,
		Label:  label,
		Weight: weight,
		Type:   typ,
		Age:    age,
	})
	return idx
}

func (b *Builder) AddEdge(n1, n2 int, label string, weight int32, typ, age int8) int {
	idx := len(b.E)
	b.E = append(b.E, EdgeStructure{
		Id:     idx,
		Label:  label,
		Weight: weight,
		Type:   typ,
		Age:    age,
		Node1:  n1,
		Node2:  n2,
	})
	return idx
}

func (b *Builder) Build() (*FastGraph, error) {
	for i := range b.E {
		e := &b.E[i]
		if e.Node1 < 0 || e.Node1 >= len(b.V) {
			return nil, Structuralf("edge %v references unknown node1 %v (|V| = %v)", i, e.Node1, len(b.V))
		}
		if e.Node2 < 0 || e.Node2 >= len(b.V) {
			return nil, Structuralf("edge %v references unknown node2 %v (|V| = %v)", i, e.Node2, len(b.V))
		}
	}
	g := newGraph(len(b.V), len(b.E), b.Directed)
	g.name = b.Name
	g.generation = b.Generation

	labels := 0
	for i := range b.V {
		labels += len(b.V[i].Label)
	}
	g.nodeLabelBuf = make([]byte, 0, labels)
	labels = 0
	for i := range b.E {
		labels += len(b.E[i].Label)
	}
	g.edgeLabelBuf = make([]byte, 0, labels)

	in := make([]int, len(b.V))
	out := make([]int, len(b.V))
	for i := range b.E {
		out[b.E[i].Node1]++
		in[b.E[i].Node2]++
	}
	inCursor := make([]int, len(b.V))
	outCursor := make([]int, len(b.V))
	conn := 0
	for i := range b.V {
		v := &b.V[i]
		off := i * NodeByteSize
		putInt32(g.nodeBuf, off+nodeLabelStartOffset, len(g.nodeLabelBuf))
		putInt32(g.nodeBuf, off+nodeLabelLengthOffset, len(v.Label))
		g.nodeLabelBuf = append(g.nodeLabelBuf, v.Label...)
		putInt32(g.nodeBuf, off+nodeWeightOffset, int(v.Weight))
		g.nodeBuf[off+nodeTypeOffset] = byte(v.Type)
		g.nodeBuf[off+nodeAgeOffset] = byte(v.Age)
		putInt32(g.nodeBuf, off+nodeInStartOffset, conn)
		putInt32(g.nodeBuf, off+nodeInDegreeOffset, in[i])
		inCursor[i] = conn
		conn += in[i]
		putInt32(g.nodeBuf, off+nodeOutStartOffset, conn)
		putInt32(g.nodeBuf, off+nodeOutDegreeOffset, out[i])
		outCursor[i] = conn
		conn += out[i]
	}
	putConnection := func(pos, nbr, e int) {
		off := pos * ConnectionPairSize
		putInt32(g.connectionBuf, off+connectionNodeOffset, nbr)
		putInt32(g.connectionBuf, off+connectionEdgeOffset, e)
	}
	for i := range b.E {
		e := &b.E[i]
		off := i * EdgeByteSize
		putInt32(g.edgeBuf, off+edgeLabelStartOffset, len(g.edgeLabelBuf))
		putInt32(g.edgeBuf, off+edgeLabelLengthOffset, len(e.Label))
		g.edgeLabelBuf = append(g.edgeLabelBuf, e.Label...)
		putInt32(g.edgeBuf, off+edgeWeightOffset, int(e.Weight))
		g.edgeBuf[off+edgeTypeOffset] = byte(e.Type)
		g.edgeBuf[off+edgeAgeOffset] = byte(e.Age)
		putInt32(g.edgeBuf, off+edgeNode1Offset, e.Node1)
		putInt32(g.edgeBuf, off+edgeNode2Offset, e.Node2)
		putConnection(outCursor[e.Node1], e.Node2, i)
		outCursor[e.Node1]++
		putConnection(inCursor[e.Node2], e.Node1, i)
		inCursor[e.Node2]++
	}
	return g, nil
}

// FromStructures builds a graph from id based node and edge descriptions.
// Nodes and edges keep the order given.
func FromStructures(directed bool, nodes []NodeStructure, edges []EdgeStructure) (*FastGraph, error) {
	b := Build(len(nodes), len(edges))
	b.Directed = directed
	idxs := make(map[int]int, len(nodes))
	for _, n := range nodes {
		if _, has := idxs[n.Id]; has {
			return nil, Structuralf("duplicate node id %v", n.Id)
		}
		idxs[n.Id] = b.AddNode(n.Label, n.Weight, n.Type, n.Age)
	}
	edgeIds := make(map[int]bool, len(edges))
	for _, e := range edges {
		if edgeIds[e.Id] {
			return nil, Structuralf("duplicate edge id %v", e.Id)
		}
		edgeIds[e.Id] = true
		n1, has := idxs[e.Node1]
		if !has {
			return nil, Structuralf("edge %v references unknown node id %v", e.Id, e.Node1)
		}
		n2, has := idxs[e.Node2]
		if !has {
			return nil, Structuralf("edge %v references unknown node id %v", e.Id, e.Node2)
		}
		b.AddEdge(n1, n2, e.Label, e.Weight, e.Type, e.Age)
	}
	return b.Build()
}

// Structures is the inverse of FromStructures. Ids are the indices.
func (g *FastGraph) Structures() ([]NodeStructure, []EdgeStructure) {
	nodes := make([]NodeStructure, 0, g.numberOfNodes)
	edges := make([]EdgeStructure, 0, g.numberOfEdges)
	for n := 0; n < g.numberOfNodes; n++ {
		nodes = append(nodes, NodeStructure{
			Id:     n,
			Label:  g.NodeLabel(n),
			Weight: g.NodeWeight(n),
			Type:   g.NodeType(n),
			Age:    g.NodeAge(n),
		})
	}
	for e := 0; e < g.numberOfEdges; e++ {
		edges = append(edges, EdgeStructure{
			Id:     e,
			Label:  g.EdgeLabel(e),
			Weight: g.EdgeWeight(e),
			Type:   g.EdgeType(e),
			Age:    g.EdgeAge(e),
			Node1:  g.EdgeNode1(e),
			Node2:  g.EdgeNode2(e),
		})
	}
	return nodes, edges
}

func (g *FastGraph) builder() *Builder {
	nodes, edges := g.Structures()
	return &Builder{
		V:          nodes,
		E:          edges,
		Directed:   g.directed,
		Generation: g.generation,
		Name:       g.name,
	}
}
