package motif

import (
	"fmt"
)

import (
	"github.com/timtadh/fastgraph/fastgraph"
	"github.com/timtadh/fastgraph/iso"
)

// Motif is the representative of one isomorphism class of subgraphs.
type Motif struct {
	Id      int
	Key     string
	Graph   *fastgraph.FastGraph
	matcher *iso.ExactIsomorphism
}

func (m *Motif) isomorphic(g *fastgraph.FastGraph) bool {
	if m.matcher == nil {
		return iso.Isomorphic(m.Graph, g)
	}
	return m.matcher.Isomorphic(g)
}

// Canon assigns every graph the representative of its isomorphism class.
// Graphs are bucketed by size and degree profile first and only compared
// with the exact matcher against members of their own bucket.
type Canon struct {
	buckets map[string][]*Motif
	motifs  []*Motif
}

func NewCanon() *Canon {
	return &Canon{
		buckets: make(map[string][]*Motif),
	}
}

func bucketKey(g *fastgraph.FastGraph) string {
	key := fmt.Sprintf("n%d:e%d:d%v", g.NumberOfNodes(), g.NumberOfEdges(), fastgraph.SortedDegrees(g))
	if g.Directed() {
		key += fmt.Sprintf(":io%v", fastgraph.InOutPairs(g))
	}
	return key
}

// Identify returns the motif g belongs to, registering g as a new
// representative when no member of its bucket is isomorphic to it.
func (c *Canon) Identify(g *fastgraph.FastGraph) *Motif {
	bucket := bucketKey(g)
	for _, m := range c.buckets[bucket] {
		if m.isomorphic(g) {
			return m
		}
	}
	m := &Motif{
		Id:    len(c.motifs),
		Key:   fmt.Sprintf("%v#%d", bucket, len(c.buckets[bucket])),
		Graph: g,
	}
	// disconnected representatives fall back to the one shot matcher
	if matcher, err := iso.New(g, iso.Options{}); err == nil {
		m.matcher = matcher
	}
	c.buckets[bucket] = append(c.buckets[bucket], m)
	c.motifs = append(c.motifs, m)
	return m
}

func (c *Canon) Motifs() []*Motif {
	motifs := make([]*Motif, len(c.motifs))
	copy(motifs, c.motifs)
	return motifs
}

func (c *Canon) Motif(id int) *Motif {
	return c.motifs[id]
}

// Frequencies counts motif occurrences in one graph.
type Frequencies struct {
	counts map[int]int
	Total  int
}

func newFrequencies() *Frequencies {
	return &Frequencies{counts: make(map[int]int)}
}

func (f *Frequencies) add(m *Motif) {
	f.counts[m.Id]++
	f.Total++
}

func (f *Frequencies) Count(m *Motif) int {
	return f.counts[m.Id]
}

// Distinct is the number of different motifs seen.
func (f *Frequencies) Distinct() int {
	return len(f.counts)
}
