package motif

import (
	"io"
)

import (
	"gopkg.in/yaml.v3"
)

import (
	"github.com/timtadh/fastgraph/fastgraph"
)

// Options configures a motif run. Attempts == 0 selects exhaustive
// enumeration; Attempts > 0 samples that many random expansions from every
// node. ReferenceGraphs randomized graphs are built with the seeds
// Seed+1 ... Seed+ReferenceGraphs, either by degree preserving rewiring
// (Rewire) or as random graphs with the same node and edge counts.
type Options struct {
	MinSize         int   `yaml:"min-size"`
	MaxSize         int   `yaml:"max-size"`
	Attempts        int   `yaml:"attempts"`
	ReferenceGraphs int   `yaml:"reference-graphs"`
	Rewire          bool  `yaml:"rewire"`
	Seed            int64 `yaml:"seed"`
}

func DefaultOptions() Options {
	return Options{
		MinSize:         3,
		MaxSize:         3,
		ReferenceGraphs: 10,
		Rewire:          true,
	}
}

func (o *Options) Validate() error {
	if o.MinSize < 1 {
		return fastgraph.InvalidArgumentf("min size must be at least 1, got %v", o.MinSize)
	}
	if o.MaxSize < o.MinSize {
		return fastgraph.InvalidArgumentf("max size %v is less than min size %v", o.MaxSize, o.MinSize)
	}
	if o.Attempts < 0 {
		return fastgraph.InvalidArgumentf("attempts must be non-negative, got %v", o.Attempts)
	}
	if o.ReferenceGraphs < 0 {
		return fastgraph.InvalidArgumentf("reference graphs must be non-negative, got %v", o.ReferenceGraphs)
	}
	return nil
}

// LoadOptions reads YAML options on top of the defaults.
func LoadOptions(input io.Reader) (Options, error) {
	o := DefaultOptions()
	if err := yaml.NewDecoder(input).Decode(&o); err != nil && err != io.EOF {
		return o, fastgraph.InvalidArgumentf("bad motif options: %v", err)
	}
	return o, o.Validate()
}
