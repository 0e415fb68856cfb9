package fastgraph

import (
	"io"
	"io/ioutil"
	"strconv"
)

import (
	"github.com/timtadh/combos"
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/dot"
)

// LoadDot reads the first graph of a DOT document. Node and edge
// attributes named label, weight, type and age are copied into the graph;
// other attributes are ignored. Nodes that only appear in edge statements
// are created with their DOT id as label. Subgraph statements are skipped.
func LoadDot(input io.Reader) (*FastGraph, error) {
	text, err := ioutil.ReadAll(input)
	if err != nil {
		return nil, err
	}
	dp := &dotParse{
		b:    Build(100, 1000),
		vids: make(map[string]int),
	}
	err = dot.StreamParse(text, dp)
	if err != nil {
		return nil, err
	}
	if dp.err != nil {
		return nil, dp.err
	}
	dp.b.Name = dp.name
	return dp.b.Build()
}

type dotParse struct {
	b        *Builder
	name     string
	graphs   int
	subgraph int
	vids     map[string]int
	err      error
}

func (p *dotParse) Enter(name string, n *combos.Node) error {
	if name == "SubGraph" {
		p.subgraph++
		return nil
	}
	if p.graphs > 0 {
		return nil
	}
	// the first kid is the GRAPH or DIGRAPH keyword (strict hangs below it)
	if len(n.Children) > 0 {
		p.b.Directed = n.Get(0).Label == "DIGRAPH"
	}
	if len(n.Children) > 1 {
		if id, ok := n.Get(1).Value.(string); ok {
			p.name = unquote(id)
		}
	}
	return nil
}

func (p *dotParse) Stmt(n *combos.Node) error {
	if p.subgraph > 0 || p.graphs > 0 || p.err != nil {
		return nil
	}
	switch n.Label {
	case "Node":
		_, p.err = p.loadNode(n)
	case "Edge":
		p.err = p.loadEdge(n)
	}
	return nil
}

func (p *dotParse) Exit(name string) error {
	if name == "SubGraph" {
		p.subgraph--
		return nil
	}
	p.graphs++
	return nil
}

type dotAttrs struct {
	label  string
	weight int32
	typ    int8
	age    int8
}

func (p *dotParse) attrs(n *combos.Node, label string) (a dotAttrs, err error) {
	a.label = label
	for _, attr := range n.Children {
		name := attr.Get(0).Value.(string)
		value := unquote(attr.Get(1).Value.(string))
		switch name {
		case "label":
			a.label = value
		case "weight":
			w, err := strconv.ParseInt(value, 10, 32)
			if err != nil {
				return a, errors.Errorf("bad weight %q: %v", value, err)
			}
			a.weight = int32(w)
		case "type":
			t, err := strconv.ParseInt(value, 10, 8)
			if err != nil {
				return a, errors.Errorf("bad type %q: %v", value, err)
			}
			a.typ = int8(t)
		case "age":
			t, err := strconv.ParseInt(value, 10, 8)
			if err != nil {
				return a, errors.Errorf("bad age %q: %v", value, err)
			}
			a.age = int8(t)
		}
	}
	return a, nil
}

func (p *dotParse) loadNode(n *combos.Node) (int, error) {
	sid := unquote(n.Get(0).Value.(string))
	a, err := p.attrs(n.Get(1), sid)
	if err != nil {
		return 0, err
	}
	if idx, has := p.vids[sid]; has {
		// a later statement for the same id updates the attributes
		p.b.V[idx].Label = a.label
		p.b.V[idx].Weight = a.weight
		p.b.V[idx].Type = a.typ
		p.b.V[idx].Age = a.age
		return idx, nil
	}
	idx := p.b.AddNode(a.label, a.weight, a.typ, a.age)
	p.vids[sid] = idx
	return idx, nil
}

func (p *dotParse) loadEdge(n *combos.Node) error {
	getId := func(sid string) (int, error) {
		if idx, has := p.vids[unquote(sid)]; has {
			return idx, nil
		}
		return p.loadNode(combos.NewNode("Node").
			AddKid(combos.NewValueNode("ID", sid)).
			AddKid(combos.NewNode("Attrs")))
	}
	src, err := getId(n.Get(0).Value.(string))
	if err != nil {
		return err
	}
	targ, err := getId(n.Get(1).Value.(string))
	if err != nil {
		return err
	}
	a, err := p.attrs(n.Get(2), "")
	if err != nil {
		return err
	}
	p.b.AddEdge(src, targ, a.label, a.weight, a.typ, a.age)
	return nil
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
		return s[1 : len(s)-1]
	}
	return s
}
