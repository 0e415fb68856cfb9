package motif

import (
	"math/rand"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/fastgraph/fastgraph"
)

// Finder counts motifs in a graph and in its randomized reference graphs.
// All counts share one Canon so the same motif has the same identity in
// every table. A Finder must not be used from several goroutines.
type Finder struct {
	Options
	Graph *fastgraph.FastGraph
	Canon *Canon
}

func NewFinder(g *fastgraph.FastGraph, opts Options) (*Finder, error) {
	if g == nil {
		return nil, fastgraph.InvalidArgumentf("motif finder needs a graph")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Finder{
		Options: opts,
		Graph:   g,
		Canon:   NewCanon(),
	}, nil
}

// FindAllMotifs counts the motifs of the finder's own graph.
func (f *Finder) FindAllMotifs() (*Frequencies, error) {
	return f.Count(f.Graph, f.Seed)
}

// Count tallies the motifs of every size in [MinSize, MaxSize] in g. The
// seed only matters in sampled mode.
func (f *Finder) Count(g *fastgraph.FastGraph, seed int64) (*Frequencies, error) {
	freq := newFrequencies()
	var err error
	tally := func(nodes []int) {
		if err != nil {
			return
		}
		sg, e := g.GenerateInducedSubgraph(nodes)
		if e != nil {
			err = e
			return
		}
		freq.add(f.Canon.Identify(sg))
	}
	rng := rand.New(rand.NewSource(seed))
	for k := f.MinSize; k <= f.MaxSize; k++ {
		before := freq.Total
		if f.Attempts == 0 {
			enumerate(g, k, tally)
		} else {
			sample(g, k, f.Attempts, rng, tally)
		}
		if err != nil {
			return nil, err
		}
		errors.Logf("DEBUG", "size %v: %v node sets, %v motifs known", k, freq.Total-before, len(f.Canon.motifs))
	}
	return freq, nil
}

// ReferenceGraph builds the i-th (1 based) randomized reference graph.
func (f *Finder) ReferenceGraph(i int) (*fastgraph.FastGraph, error) {
	g := f.Graph
	seed := f.Seed + int64(i)
	if f.Rewire {
		return g.RewireDegreePreserving(10*g.NumberOfEdges(), seed)
	}
	selfLoops, parallel := false, false
	seen := make(map[[2]int]bool, g.NumberOfEdges())
	for e := 0; e < g.NumberOfEdges(); e++ {
		u, v := g.EdgeNode1(e), g.EdgeNode2(e)
		if u == v {
			selfLoops = true
		}
		if !g.Directed() && v < u {
			u, v = v, u
		}
		if seen[[2]int{u, v}] {
			parallel = true
		}
		seen[[2]int{u, v}] = true
	}
	return fastgraph.RandomGraph(g.NumberOfNodes(), g.NumberOfEdges(), seed, g.Directed(), selfLoops, parallel)
}

// References counts the motifs of every reference graph.
func (f *Finder) References() ([]*Frequencies, error) {
	refs := make([]*Frequencies, 0, f.ReferenceGraphs)
	for i := 1; i <= f.ReferenceGraphs; i++ {
		r, err := f.ReferenceGraph(i)
		if err != nil {
			return nil, err
		}
		freq, err := f.Count(r, f.Seed+int64(i))
		if err != nil {
			return nil, err
		}
		errors.Logf("INFO", "reference graph %v/%v: %v subgraphs", i, f.ReferenceGraphs, freq.Total)
		refs = append(refs, freq)
	}
	return refs, nil
}

// Run counts the real graph and the references and ranks the motifs.
func (f *Finder) Run() ([]*Result, error) {
	observed, err := f.FindAllMotifs()
	if err != nil {
		return nil, err
	}
	errors.Logf("INFO", "real graph: %v subgraphs, %v distinct motifs", observed.Total, observed.Distinct())
	refs, err := f.References()
	if err != nil {
		return nil, err
	}
	return f.CompareAndExportResults(observed, refs), nil
}
