package motif

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
)

import (
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"
)

import (
	"github.com/timtadh/fastgraph/fastgraph"
)

// Result compares the frequency of one motif in the real graph with its
// frequency in the reference graphs.
//
//	Difference = |observed - mean| / sqrt(max(mean, 1))
//	ZScore     = (observed - mean) / stddev, 0 when stddev is 0
//
// stddev is the sample standard deviation of the reference counts (0 with
// fewer than two references).
type Result struct {
	Motif           *Motif                   `yaml:"-"`
	Key             string                   `yaml:"key"`
	Nodes           int                      `yaml:"nodes"`
	Edges           int                      `yaml:"edges"`
	RealCount       int                      `yaml:"real-count"`
	ReferenceMean   float64                  `yaml:"reference-mean"`
	ReferenceStdDev float64                  `yaml:"reference-stddev"`
	Difference      float64                  `yaml:"difference"`
	ZScore          float64                  `yaml:"z-score"`
	Graph           *fastgraph.NodeLinkGraph `yaml:"graph,omitempty"`
}

func (r *Result) String() string {
	return fmt.Sprintf("%v real=%v mean=%.3f std=%.3f diff=%.3f z=%.3f",
		r.Key, r.RealCount, r.ReferenceMean, r.ReferenceStdDev, r.Difference, r.ZScore)
}

func newResult(m *Motif, observed int, refCounts []float64) *Result {
	var mean, std float64
	switch len(refCounts) {
	case 0:
	case 1:
		mean = refCounts[0]
	default:
		mean, std = stat.MeanStdDev(refCounts, nil)
	}
	r := &Result{
		Motif:           m,
		Key:             m.Key,
		Nodes:           m.Graph.NumberOfNodes(),
		Edges:           m.Graph.NumberOfEdges(),
		RealCount:       observed,
		ReferenceMean:   mean,
		ReferenceStdDev: std,
		Difference:      math.Abs(float64(observed)-mean) / math.Sqrt(math.Max(mean, 1)),
	}
	if std > 0 {
		r.ZScore = (float64(observed) - mean) / std
	}
	return r
}

// CompareAndExportResults pairs every motif seen in the real graph or in a
// reference with its observed count and reference statistics. Motifs missing
// from a table count 0 there. Results are sorted by descending difference,
// then descending observed count, then key.
func (f *Finder) CompareAndExportResults(observed *Frequencies, refs []*Frequencies) []*Result {
	results := make([]*Result, 0, len(f.Canon.motifs))
	for _, m := range f.Canon.motifs {
		seen := observed.Count(m) > 0
		counts := make([]float64, len(refs))
		for i, ref := range refs {
			counts[i] = float64(ref.Count(m))
			if counts[i] > 0 {
				seen = true
			}
		}
		if !seen {
			continue
		}
		results = append(results, newResult(m, observed.Count(m), counts))
	}
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Difference != b.Difference {
			return a.Difference > b.Difference
		}
		if a.RealCount != b.RealCount {
			return a.RealCount > b.RealCount
		}
		return a.Key < b.Key
	})
	return results
}

// Export writes the results as a YAML sequence including the node-link
// form of every motif.
func Export(w io.Writer, results []*Result) error {
	out := make([]*Result, 0, len(results))
	for _, r := range results {
		c := *r
		c.Graph = r.Motif.Graph.ToNodeLink()
		out = append(out, &c)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}

// ExportDot writes each motif to dir as <rank>.dot.
func ExportDot(dir string, results []*Result) error {
	if err := os.MkdirAll(dir, 0775); err != nil {
		return err
	}
	for i, r := range results {
		g := r.Motif.Graph.Copy()
		g.SetName(fmt.Sprintf("motif%d", i))
		f, err := os.Create(filepath.Join(dir, fmt.Sprintf("%d.dot", i)))
		if err != nil {
			return err
		}
		err = g.WriteDot(f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}
	return nil
}
