package fastgraph

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Fixed size big endian records. Offsets are in bytes from the start of
// a record. Label offsets index into the separate label buffers and
// connection offsets index (in pairs, not bytes) into the connection
// table.
const (
	nodeLabelStartOffset  = 0
	nodeLabelLengthOffset = 4
	nodeWeightOffset      = 8
	nodeTypeOffset        = 12
	nodeAgeOffset         = 13
	nodeInStartOffset     = 14
	nodeInDegreeOffset    = 18
	nodeOutStartOffset    = 22
	nodeOutDegreeOffset   = 26
	NodeByteSize          = 30

	edgeLabelStartOffset  = 0
	edgeLabelLengthOffset = 4
	edgeWeightOffset      = 8
	edgeTypeOffset        = 12
	edgeAgeOffset         = 13
	edgeNode1Offset       = 14
	edgeNode2Offset       = 18
	EdgeByteSize          = 22

	connectionNodeOffset = 0
	connectionEdgeOffset = 4
	ConnectionPairSize   = 8
)

type Direction int

const (
	In Direction = 1 << iota
	Out
	Both = In | Out
)

// FastGraph is an immutable-structure graph stored in flat buffers. The
// scalar attributes of nodes and edges (label, weight, type, age) may be
// changed in place; anything that changes the structure produces a new
// graph. A FastGraph may be read concurrently once built.
type FastGraph struct {
	name          string
	directed      bool
	generation    int8
	numberOfNodes int
	numberOfEdges int
	nodeBuf       []byte
	edgeBuf       []byte
	connectionBuf []byte
	nodeLabelBuf  []byte
	edgeLabelBuf  []byte
}

func getInt32(buf []byte, off int) int {
	return int(int32(binary.BigEndian.Uint32(buf[off : off+4])))
}

func putInt32(buf []byte, off int, v int) {
	binary.BigEndian.PutUint32(buf[off:off+4], uint32(int32(v)))
}

func newGraph(nodes, edges int, directed bool) *FastGraph {
	return &FastGraph{
		directed:      directed,
		numberOfNodes: nodes,
		numberOfEdges: edges,
		nodeBuf:       make([]byte, nodes*NodeByteSize),
		edgeBuf:       make([]byte, edges*EdgeByteSize),
		connectionBuf: make([]byte, 2*edges*ConnectionPairSize),
	}
}

func (g *FastGraph) Name() string {
	return g.name
}

func (g *FastGraph) SetName(name string) {
	g.name = name
}

func (g *FastGraph) Directed() bool {
	return g.directed
}

func (g *FastGraph) Generation() int8 {
	return g.generation
}

func (g *FastGraph) NumberOfNodes() int {
	return g.numberOfNodes
}

func (g *FastGraph) NumberOfEdges() int {
	return g.numberOfEdges
}

func (g *FastGraph) node(n int) int {
	if n < 0 || n >= g.numberOfNodes {
		panic(fmt.Errorf("node index %v out of range [0, %v)", n, g.numberOfNodes))
	}
	return n * NodeByteSize
}

func (g *FastGraph) edge(e int) int {
	if e < 0 || e >= g.numberOfEdges {
		panic(fmt.Errorf("edge index %v out of range [0, %v)", e, g.numberOfEdges))
	}
	return e * EdgeByteSize
}

func (g *FastGraph) NodeLabel(n int) string {
	off := g.node(n)
	s := getInt32(g.nodeBuf, off+nodeLabelStartOffset)
	l := getInt32(g.nodeBuf, off+nodeLabelLengthOffset)
	return string(g.nodeLabelBuf[s : s+l])
}

func (g *FastGraph) NodeWeight(n int) int32 {
	return int32(getInt32(g.nodeBuf, g.node(n)+nodeWeightOffset))
}

func (g *FastGraph) NodeType(n int) int8 {
	return int8(g.nodeBuf[g.node(n)+nodeTypeOffset])
}

func (g *FastGraph) NodeAge(n int) int8 {
	return int8(g.nodeBuf[g.node(n)+nodeAgeOffset])
}

func (g *FastGraph) NodeInDegree(n int) int {
	return getInt32(g.nodeBuf, g.node(n)+nodeInDegreeOffset)
}

func (g *FastGraph) NodeOutDegree(n int) int {
	return getInt32(g.nodeBuf, g.node(n)+nodeOutDegreeOffset)
}

// NodeDegree counts a self-loop twice.
func (g *FastGraph) NodeDegree(n int) int {
	off := g.node(n)
	return getInt32(g.nodeBuf, off+nodeInDegreeOffset) + getInt32(g.nodeBuf, off+nodeOutDegreeOffset)
}

func (g *FastGraph) SetNodeLabel(n int, label string) {
	off := g.node(n)
	start, length := setLabel(&g.nodeLabelBuf,
		getInt32(g.nodeBuf, off+nodeLabelStartOffset),
		getInt32(g.nodeBuf, off+nodeLabelLengthOffset),
		label)
	putInt32(g.nodeBuf, off+nodeLabelStartOffset, start)
	putInt32(g.nodeBuf, off+nodeLabelLengthOffset, length)
}

func (g *FastGraph) SetNodeWeight(n int, weight int32) {
	putInt32(g.nodeBuf, g.node(n)+nodeWeightOffset, int(weight))
}

func (g *FastGraph) SetNodeType(n int, typ int8) {
	g.nodeBuf[g.node(n)+nodeTypeOffset] = byte(typ)
}

func (g *FastGraph) SetNodeAge(n int, age int8) {
	g.nodeBuf[g.node(n)+nodeAgeOffset] = byte(age)
}

func (g *FastGraph) EdgeLabel(e int) string {
	off := g.edge(e)
	s := getInt32(g.edgeBuf, off+edgeLabelStartOffset)
	l := getInt32(g.edgeBuf, off+edgeLabelLengthOffset)
	return string(g.edgeLabelBuf[s : s+l])
}

func (g *FastGraph) EdgeWeight(e int) int32 {
	return int32(getInt32(g.edgeBuf, g.edge(e)+edgeWeightOffset))
}

func (g *FastGraph) EdgeType(e int) int8 {
	return int8(g.edgeBuf[g.edge(e)+edgeTypeOffset])
}

func (g *FastGraph) EdgeAge(e int) int8 {
	return int8(g.edgeBuf[g.edge(e)+edgeAgeOffset])
}

// EdgeNode1 is the source of a directed edge.
func (g *FastGraph) EdgeNode1(e int) int {
	return getInt32(g.edgeBuf, g.edge(e)+edgeNode1Offset)
}

// EdgeNode2 is the target of a directed edge.
func (g *FastGraph) EdgeNode2(e int) int {
	return getInt32(g.edgeBuf, g.edge(e)+edgeNode2Offset)
}

func (g *FastGraph) SetEdgeLabel(e int, label string) {
	off := g.edge(e)
	start, length := setLabel(&g.edgeLabelBuf,
		getInt32(g.edgeBuf, off+edgeLabelStartOffset),
		getInt32(g.edgeBuf, off+edgeLabelLengthOffset),
		label)
	putInt32(g.edgeBuf, off+edgeLabelStartOffset, start)
	putInt32(g.edgeBuf, off+edgeLabelLengthOffset, length)
}

func (g *FastGraph) SetEdgeWeight(e int, weight int32) {
	putInt32(g.edgeBuf, g.edge(e)+edgeWeightOffset, int(weight))
}

func (g *FastGraph) SetEdgeType(e int, typ int8) {
	g.edgeBuf[g.edge(e)+edgeTypeOffset] = byte(typ)
}

func (g *FastGraph) SetEdgeAge(e int, age int8) {
	g.edgeBuf[g.edge(e)+edgeAgeOffset] = byte(age)
}

// labels that fit are overwritten in place, longer labels are appended
// to the end of the buffer leaving the old bytes unreferenced.
func setLabel(buf *[]byte, start, length int, label string) (int, int) {
	if len(label) <= length {
		copy((*buf)[start:], label)
		return start, len(label)
	}
	start = len(*buf)
	*buf = append(*buf, label...)
	return start, len(label)
}

// OppositeEnd returns the other endpoint of e. A self-loop returns n
// itself. If n is not an endpoint of e it returns -1.
func (g *FastGraph) OppositeEnd(n, e int) int {
	n1 := g.EdgeNode1(e)
	n2 := g.EdgeNode2(e)
	if n == n1 {
		return n2
	} else if n == n2 {
		return n1
	}
	return -1
}

func (g *FastGraph) connection(i int) (nbr, e int) {
	off := i * ConnectionPairSize
	return getInt32(g.connectionBuf, off+connectionNodeOffset), getInt32(g.connectionBuf, off+connectionEdgeOffset)
}

// VisitConnections calls do for every (neighbour, edge) pair of n in the
// given direction in increasing edge order. For Both the in and out
// partitions are merged, so a self-loop is visited twice.
func (g *FastGraph) VisitConnections(n int, dir Direction, do func(nbr, e int)) {
	off := g.node(n)
	inStart := getInt32(g.nodeBuf, off+nodeInStartOffset)
	inEnd := inStart + getInt32(g.nodeBuf, off+nodeInDegreeOffset)
	outStart := getInt32(g.nodeBuf, off+nodeOutStartOffset)
	outEnd := outStart + getInt32(g.nodeBuf, off+nodeOutDegreeOffset)
	switch dir {
	case In:
		for i := inStart; i < inEnd; i++ {
			do(g.connection(i))
		}
	case Out:
		for i := outStart; i < outEnd; i++ {
			do(g.connection(i))
		}
	default:
		i, j := inStart, outStart
		for i < inEnd || j < outEnd {
			if j >= outEnd {
				do(g.connection(i))
				i++
				continue
			} else if i >= inEnd {
				do(g.connection(j))
				j++
				continue
			}
			in, ie := g.connection(i)
			on, oe := g.connection(j)
			if ie <= oe {
				do(in, ie)
				i++
			} else {
				do(on, oe)
				j++
			}
		}
	}
}

func (g *FastGraph) connecting(n int, dir Direction, nodes bool) []int {
	var size int
	switch dir {
	case In:
		size = g.NodeInDegree(n)
	case Out:
		size = g.NodeOutDegree(n)
	default:
		size = g.NodeDegree(n)
	}
	items := make([]int, 0, size)
	g.VisitConnections(n, dir, func(nbr, e int) {
		if nodes {
			items = append(items, nbr)
		} else {
			items = append(items, e)
		}
	})
	return items
}

func (g *FastGraph) ConnectingNodes(n int) []int {
	return g.connecting(n, Both, true)
}

func (g *FastGraph) ConnectingEdges(n int) []int {
	return g.connecting(n, Both, false)
}

func (g *FastGraph) ConnectingInNodes(n int) []int {
	return g.connecting(n, In, true)
}

func (g *FastGraph) ConnectingInEdges(n int) []int {
	return g.connecting(n, In, false)
}

func (g *FastGraph) ConnectingOutNodes(n int) []int {
	return g.connecting(n, Out, true)
}

func (g *FastGraph) ConnectingOutEdges(n int) []int {
	return g.connecting(n, Out, false)
}

func (g *FastGraph) SelfLoops(n int) int {
	count := 0
	g.VisitConnections(n, Out, func(nbr, e int) {
		if nbr == n {
			count++
		}
	})
	return count
}

// EdgesBetween lists the edges from u to v in increasing edge order. For
// undirected graphs edges in either orientation are listed.
func (g *FastGraph) EdgesBetween(u, v int) []int {
	var edges []int
	if g.directed {
		g.VisitConnections(u, Out, func(nbr, e int) {
			if nbr == v {
				edges = append(edges, e)
			}
		})
		return edges
	}
	if u == v {
		return g.EdgesBetweenDirected(u, u)
	}
	g.VisitConnections(u, Both, func(nbr, e int) {
		if nbr == v {
			edges = append(edges, e)
		}
	})
	return edges
}

// EdgesBetweenDirected ignores the directedness of g and lists only the
// edges with node1 == u and node2 == v.
func (g *FastGraph) EdgesBetweenDirected(u, v int) []int {
	var edges []int
	g.VisitConnections(u, Out, func(nbr, e int) {
		if nbr == v {
			edges = append(edges, e)
		}
	})
	return edges
}

func (g *FastGraph) Copy() *FastGraph {
	c := &FastGraph{
		name:          g.name,
		directed:      g.directed,
		generation:    g.generation,
		numberOfNodes: g.numberOfNodes,
		numberOfEdges: g.numberOfEdges,
		nodeBuf:       make([]byte, len(g.nodeBuf)),
		edgeBuf:       make([]byte, len(g.edgeBuf)),
		connectionBuf: make([]byte, len(g.connectionBuf)),
		nodeLabelBuf:  make([]byte, len(g.nodeLabelBuf)),
		edgeLabelBuf:  make([]byte, len(g.edgeLabelBuf)),
	}
	copy(c.nodeBuf, g.nodeBuf)
	copy(c.edgeBuf, g.edgeBuf)
	copy(c.connectionBuf, g.connectionBuf)
	copy(c.nodeLabelBuf, g.nodeLabelBuf)
	copy(c.edgeLabelBuf, g.edgeLabelBuf)
	return c
}

func (g *FastGraph) String() string {
	V := make([]string, 0, g.numberOfNodes)
	E := make([]string, 0, g.numberOfEdges)
	for n := 0; n < g.numberOfNodes; n++ {
		V = append(V, fmt.Sprintf("(%v)", g.NodeLabel(n)))
	}
	arrow := "--"
	if g.directed {
		arrow = "->"
	}
	for e := 0; e < g.numberOfEdges; e++ {
		E = append(E, fmt.Sprintf("[%v%v%v:%v]", g.EdgeNode1(e), arrow, g.EdgeNode2(e), g.EdgeLabel(e)))
	}
	return fmt.Sprintf("{%v:%v}%v%v", g.numberOfEdges, g.numberOfNodes, strings.Join(V, ""), strings.Join(E, ""))
}
