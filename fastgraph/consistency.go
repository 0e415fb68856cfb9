package fastgraph

import (
	"github.com/timtadh/data-structures/errors"
)

// CheckConsistency cross checks the connection table against the edge
// records. It is meant for tests and debugging, not for hot paths.
func (g *FastGraph) CheckConsistency() bool {
	err := g.Validate()
	if err != nil {
		errors.Logf("DEBUG", "inconsistent graph: %v", err)
		return false
	}
	return true
}

// Validate returns the first violated invariant or nil.
func (g *FastGraph) Validate() error {
	if len(g.nodeBuf) != g.numberOfNodes*NodeByteSize {
		return Structuralf("node buffer holds %v bytes, expected %v", len(g.nodeBuf), g.numberOfNodes*NodeByteSize)
	}
	if len(g.edgeBuf) != g.numberOfEdges*EdgeByteSize {
		return Structuralf("edge buffer holds %v bytes, expected %v", len(g.edgeBuf), g.numberOfEdges*EdgeByteSize)
	}
	pairs := 2 * g.numberOfEdges
	if len(g.connectionBuf) != pairs*ConnectionPairSize {
		return Structuralf("connection buffer holds %v bytes, expected %v", len(g.connectionBuf), pairs*ConnectionPairSize)
	}
	for e := 0; e < g.numberOfEdges; e++ {
		off := e * EdgeByteSize
		n1 := getInt32(g.edgeBuf, off+edgeNode1Offset)
		n2 := getInt32(g.edgeBuf, off+edgeNode2Offset)
		if n1 < 0 || n1 >= g.numberOfNodes || n2 < 0 || n2 >= g.numberOfNodes {
			return Structuralf("edge %v has endpoints (%v, %v) outside of |V| = %v", e, n1, n2, g.numberOfNodes)
		}
		if err := checkLabel(g.edgeBuf, off+edgeLabelStartOffset, off+edgeLabelLengthOffset, len(g.edgeLabelBuf)); err != nil {
			return Structuralf("edge %v: %v", e, err)
		}
	}
	seenIn := make([]bool, g.numberOfEdges)
	seenOut := make([]bool, g.numberOfEdges)
	used := make([]bool, pairs)
	for n := 0; n < g.numberOfNodes; n++ {
		off := n * NodeByteSize
		if err := checkLabel(g.nodeBuf, off+nodeLabelStartOffset, off+nodeLabelLengthOffset, len(g.nodeLabelBuf)); err != nil {
			return Structuralf("node %v: %v", n, err)
		}
		parts := []struct {
			start, degree int
			dir           Direction
		}{
			{getInt32(g.nodeBuf, off+nodeInStartOffset), getInt32(g.nodeBuf, off+nodeInDegreeOffset), In},
			{getInt32(g.nodeBuf, off+nodeOutStartOffset), getInt32(g.nodeBuf, off+nodeOutDegreeOffset), Out},
		}
		for _, p := range parts {
			if p.start < 0 || p.degree < 0 || p.start+p.degree > pairs {
				return Structuralf("node %v has connection range [%v, %v) outside of table of %v", n, p.start, p.start+p.degree, pairs)
			}
			prev := -1
			for i := p.start; i < p.start+p.degree; i++ {
				if used[i] {
					return Structuralf("connection slot %v is shared by more than one node partition", i)
				}
				used[i] = true
				nbr, e := g.connection(i)
				if e < 0 || e >= g.numberOfEdges {
					return Structuralf("node %v connection %v references unknown edge %v", n, i, e)
				}
				if e <= prev {
					return Structuralf("node %v connections are not in increasing edge order at slot %v", n, i)
				}
				prev = e
				eoff := e * EdgeByteSize
				n1 := getInt32(g.edgeBuf, eoff+edgeNode1Offset)
				n2 := getInt32(g.edgeBuf, eoff+edgeNode2Offset)
				if p.dir == In {
					if n2 != n || n1 != nbr || seenIn[e] {
						return Structuralf("in connection (%v, %v) of node %v does not match edge %v (%v, %v)", nbr, e, n, e, n1, n2)
					}
					seenIn[e] = true
				} else {
					if n1 != n || n2 != nbr || seenOut[e] {
						return Structuralf("out connection (%v, %v) of node %v does not match edge %v (%v, %v)", nbr, e, n, e, n1, n2)
					}
					seenOut[e] = true
				}
			}
		}
	}
	for e := 0; e < g.numberOfEdges; e++ {
		if !seenIn[e] || !seenOut[e] {
			return Structuralf("edge %v is missing from the connection table", e)
		}
	}
	return nil
}

func checkLabel(buf []byte, startOff, lengthOff, labels int) error {
	s := getInt32(buf, startOff)
	l := getInt32(buf, lengthOff)
	if s < 0 || l < 0 || s+l > labels {
		return errors.Errorf("label [%v, %v) outside of label buffer of %v bytes", s, s+l, labels)
	}
	return nil
}
