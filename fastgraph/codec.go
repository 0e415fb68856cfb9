package fastgraph

import (
	"encoding/binary"
	"io/ioutil"
	"os"
	"path/filepath"
)

import (
	"github.com/timtadh/data-structures/errors"
)

// Serialized graphs are a fixed header followed by the raw buffers in
// order: name, nodes, edges, connections, node labels, edge labels.
//
//	magic [8]byte | flags u8 | generation i8 | nameLen u32 | nodes u32 |
//	edges u32 | nodeLabelLen u32 | edgeLabelLen u32
const (
	headerSize    = 8 + 1 + 1 + 5*4
	flagDirected  = 1
	FileExtension = ".fgb"
)

var magic = [8]byte{'F', 'A', 'S', 'T', 'G', 'R', 'F', 1}

func (g *FastGraph) MarshalBinary() ([]byte, error) {
	size := headerSize + len(g.name) + len(g.nodeBuf) + len(g.edgeBuf) +
		len(g.connectionBuf) + len(g.nodeLabelBuf) + len(g.edgeLabelBuf)
	bytes := make([]byte, headerSize, size)
	copy(bytes[0:8], magic[:])
	if g.directed {
		bytes[8] |= flagDirected
	}
	bytes[9] = byte(g.generation)
	binary.BigEndian.PutUint32(bytes[10:14], uint32(len(g.name)))
	binary.BigEndian.PutUint32(bytes[14:18], uint32(g.numberOfNodes))
	binary.BigEndian.PutUint32(bytes[18:22], uint32(g.numberOfEdges))
	binary.BigEndian.PutUint32(bytes[22:26], uint32(len(g.nodeLabelBuf)))
	binary.BigEndian.PutUint32(bytes[26:30], uint32(len(g.edgeLabelBuf)))
	bytes = append(bytes, g.name...)
	bytes = append(bytes, g.nodeBuf...)
	bytes = append(bytes, g.edgeBuf...)
	bytes = append(bytes, g.connectionBuf...)
	bytes = append(bytes, g.nodeLabelBuf...)
	bytes = append(bytes, g.edgeLabelBuf...)
	return bytes, nil
}

// UnmarshalBinary replaces g with the decoded graph. The decoded buffers
// are validated; a corrupt payload is a StructuralPrecondition error.
func (g *FastGraph) UnmarshalBinary(bytes []byte) error {
	if len(bytes) < headerSize {
		return Structuralf("payload of %v bytes is shorter than the header", len(bytes))
	}
	if string(bytes[0:8]) != string(magic[:]) {
		return Structuralf("bad magic %q", bytes[0:8])
	}
	nameLen := int(binary.BigEndian.Uint32(bytes[10:14]))
	nodes := int(binary.BigEndian.Uint32(bytes[14:18]))
	edges := int(binary.BigEndian.Uint32(bytes[18:22]))
	nodeLabels := int(binary.BigEndian.Uint32(bytes[22:26]))
	edgeLabels := int(binary.BigEndian.Uint32(bytes[26:30]))
	if nodes < 0 || edges < 0 || nameLen < 0 || nodeLabels < 0 || edgeLabels < 0 {
		return Structuralf("negative section length in header")
	}
	expected := headerSize + nameLen + nodes*NodeByteSize + edges*EdgeByteSize +
		2*edges*ConnectionPairSize + nodeLabels + edgeLabels
	if len(bytes) != expected {
		return Structuralf("payload holds %v bytes, header describes %v", len(bytes), expected)
	}
	flags := bytes[8]
	generation := int8(bytes[9])
	rest := bytes[headerSize:]
	next := func(n int) []byte {
		b := make([]byte, n)
		copy(b, rest[:n])
		rest = rest[n:]
		return b
	}
	d := &FastGraph{
		name:          string(next(nameLen)),
		directed:      flags&flagDirected != 0,
		generation:    generation,
		numberOfNodes: nodes,
		numberOfEdges: edges,
	}
	d.nodeBuf = next(nodes * NodeByteSize)
	d.edgeBuf = next(edges * EdgeByteSize)
	d.connectionBuf = next(2 * edges * ConnectionPairSize)
	d.nodeLabelBuf = next(nodeLabels)
	d.edgeLabelBuf = next(edgeLabels)
	if err := d.Validate(); err != nil {
		return err
	}
	*g = *d
	return nil
}

func (g *FastGraph) Save(dir, name string) error {
	bytes, err := g.MarshalBinary()
	if err != nil {
		return err
	}
	return ioutil.WriteFile(filepath.Join(dir, name+FileExtension), bytes, 0644)
}

func Load(dir, name string) (*FastGraph, error) {
	bytes, err := ioutil.ReadFile(filepath.Join(dir, name+FileExtension))
	if os.IsNotExist(err) {
		return nil, errors.Errorf("no saved graph named %v in %v", name, dir)
	} else if err != nil {
		return nil, err
	}
	g := new(FastGraph)
	if err := g.UnmarshalBinary(bytes); err != nil {
		return nil, err
	}
	return g, nil
}
