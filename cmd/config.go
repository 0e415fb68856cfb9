package cmd

import (
	"fmt"
	"strings"
)

import (
	"github.com/timtadh/fastgraph/fastgraph"
	"github.com/timtadh/fastgraph/store"
)

// StorePrefix marks a graph argument as a name in the graph store rather
// than a path, eg. store:road-network.
const StorePrefix = "store:"

// Config holds the settings shared by every sub command.
type Config struct {
	Store  string
	Format string
	atExit []func()
}

func DefaultConfig() *Config {
	return &Config{
		Store: "fastgraph.db",
	}
}

// AtExit registers f to run once the command tree has finished, eg. to
// stop a profile. Hooks run in reverse order of registration.
func (c *Config) AtExit(f func()) {
	c.atExit = append(c.atExit, f)
}

func (c *Config) exit() {
	for i := len(c.atExit) - 1; i >= 0; i-- {
		c.atExit[i]()
	}
	c.atExit = nil
}

func (c *Config) OpenStore() (*store.Store, *Error) {
	s, err := store.Open(c.Store)
	if err != nil {
		return nil, Err(1, err)
	}
	return s, nil
}

func (c *Config) format(path string) (fastgraph.Format, *Error) {
	if c.Format == "" {
		return fastgraph.FormatOf(path), nil
	}
	f, err := fastgraph.ParseFormat(c.Format)
	if err != nil {
		return f, GraphErr(err)
	}
	return f, nil
}

// LoadGraph reads the graph named by arg: either store:<name> or a path
// whose extension selects the format (unless a format was configured).
func (c *Config) LoadGraph(arg string) (*fastgraph.FastGraph, *Error) {
	if strings.HasPrefix(arg, StorePrefix) {
		s, cerr := c.OpenStore()
		if cerr != nil {
			return nil, cerr
		}
		defer s.Close()
		g, err := s.Load(strings.TrimPrefix(arg, StorePrefix))
		if err != nil {
			return nil, GraphErr(err)
		}
		return g, nil
	}
	format, cerr := c.format(arg)
	if cerr != nil {
		return nil, cerr
	}
	input, closer, err := Input(arg)
	if err != nil {
		return nil, Errorf(1, "could not read graph %v: %v", arg, err)
	}
	defer closer()
	g, err := fastgraph.LoadFormat(format, input)
	if err != nil {
		return nil, GraphErr(fmt.Errorf("could not load %v: %w", arg, err))
	}
	return g, nil
}

// WriteGraph writes g to store:<name> or to a path.
func (c *Config) WriteGraph(arg string, g *fastgraph.FastGraph) *Error {
	if strings.HasPrefix(arg, StorePrefix) {
		s, cerr := c.OpenStore()
		if cerr != nil {
			return cerr
		}
		defer s.Close()
		if err := s.Save(strings.TrimPrefix(arg, StorePrefix), g); err != nil {
			return GraphErr(err)
		}
		return nil
	}
	format, cerr := c.format(arg)
	if cerr != nil {
		return cerr
	}
	out, err := Output(arg)
	if err != nil {
		return Err(1, err)
	}
	err = g.WriteFormat(format, out)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return GraphErr(err)
	}
	return nil
}
