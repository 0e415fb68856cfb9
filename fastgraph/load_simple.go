package fastgraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

// The simple format is line oriented, one record per line, kind and body
// separated by a tab:
//
//	graph	directed|undirected	[generation]
//	node	id,"label",weight,type,age
//	edge	id,"label",weight,type,age,src,targ
//
// Blank lines and lines starting with # are skipped. Edges may only
// reference nodes declared above them.
type SimpleLoader struct {
	Directed   bool
	Generation int8
	nodes      []NodeStructure
	edges      []EdgeStructure
}

func LoadSimple(input io.Reader) (*FastGraph, error) {
	l := &SimpleLoader{
		nodes: make([]NodeStructure, 0, 100),
		edges: make([]EdgeStructure, 0, 1000),
	}
	return l.load(input)
}

func (l *SimpleLoader) load(input io.Reader) (*FastGraph, error) {
	declared := make(map[int]bool)
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		split := strings.SplitN(line, "\t", 2)
		kind, rest := split[0], split[1:]
		switch kind {
		case "graph":
			if err := l.header(line, rest); err != nil {
				return nil, err
			}
		case "node":
			n, err := l.node(rest)
			if err != nil {
				return nil, err
			}
			declared[n.Id] = true
			l.nodes = append(l.nodes, n)
		case "edge":
			e, err := l.edge(rest)
			if err != nil {
				return nil, err
			}
			if !declared[e.Node1] {
				return nil, Structuralf("edge %v: unknown src id %v", e.Id, e.Node1)
			} else if !declared[e.Node2] {
				return nil, Structuralf("edge %v: unknown targ id %v", e.Id, e.Node2)
			}
			l.edges = append(l.edges, e)
		default:
			return nil, errors.Errorf("Unexpected kind `%v` for line `%v`", kind, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	g, err := FromStructures(l.Directed, l.nodes, l.edges)
	if err != nil {
		return nil, err
	}
	g.generation = l.Generation
	return g, nil
}

func (l *SimpleLoader) header(line string, rest []string) error {
	if len(rest) != 1 {
		return errors.Errorf("line in unexpected format: `%v`", line)
	}
	fields := strings.Split(rest[0], "\t")
	if len(fields) > 2 {
		return errors.Errorf("line in unexpected format: `%v`", line)
	}
	switch strings.TrimSpace(fields[0]) {
	case "directed":
		l.Directed = true
	case "undirected":
		l.Directed = false
	default:
		return errors.Errorf("unknown graph kind `%v`", fields[0])
	}
	l.Generation = 0
	if len(fields) == 2 {
		gen, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 8)
		if err != nil || gen < 0 {
			return errors.Errorf("bad generation `%v`", fields[1])
		}
		l.Generation = int8(gen)
	}
	return nil
}

func (l *SimpleLoader) node(rest []string) (n NodeStructure, err error) {
	if len(rest) != 1 {
		return n, errors.Errorf("line in unexpected format: `%v`", rest)
	}
	tokens, err := l.tokens(rest[0])
	if err != nil {
		return n, err
	}
	if len(tokens) != 5 {
		return n, errors.Errorf("line in unexpected format (expected 5 tokens): `%v`", tokens)
	}
	n.Id, n.Label, n.Weight, n.Type, n.Age, err = l.common(tokens)
	return n, err
}

func (l *SimpleLoader) edge(rest []string) (e EdgeStructure, err error) {
	if len(rest) != 1 {
		return e, errors.Errorf("line in unexpected format: `%v`", rest)
	}
	tokens, err := l.tokens(rest[0])
	if err != nil {
		return e, err
	}
	if len(tokens) != 7 {
		return e, errors.Errorf("line in unexpected format (expected 7 tokens): `%v`", tokens)
	}
	e.Id, e.Label, e.Weight, e.Type, e.Age, err = l.common(tokens[:5])
	if err != nil {
		return e, err
	}
	e.Node1, err = strconv.Atoi(tokens[5])
	if err != nil {
		return e, err
	}
	e.Node2, err = strconv.Atoi(tokens[6])
	if err != nil {
		return e, err
	}
	return e, nil
}

func (l *SimpleLoader) common(tokens []string) (id int, label string, weight int32, typ, age int8, err error) {
	id, err = strconv.Atoi(tokens[0])
	if err != nil {
		return
	}
	label, err = strconv.Unquote(tokens[1])
	if err != nil {
		err = errors.Errorf("bad label %v: %v", tokens[1], err)
		return
	}
	w, err := strconv.ParseInt(tokens[2], 10, 32)
	if err != nil {
		return
	}
	t, err := strconv.ParseInt(tokens[3], 10, 8)
	if err != nil {
		return
	}
	a, err := strconv.ParseInt(tokens[4], 10, 8)
	if err != nil {
		return
	}
	return id, label, int32(w), int8(t), int8(a), nil
}

func (l *SimpleLoader) tokens(s string) ([]string, error) {
	buf := make([]rune, 0, len(s))
	parts := make([]string, 0, 7)
	quotes := false
	backslash := false
	for _, c := range s {
		switch c {
		case '"':
			if !backslash {
				quotes = !quotes
			}
		case ',':
			if !backslash && !quotes {
				parts = append(parts, strings.TrimSpace(string(buf)))
				buf = buf[:0]
				continue
			}
		}
		if c == '\\' {
			backslash = !backslash
		} else if backslash {
			backslash = false
		}
		buf = append(buf, c)
	}
	if backslash {
		return nil, errors.Errorf("unfinished backslash: `%v`", s)
	}
	if quotes {
		return nil, errors.Errorf("unclosed quote: `%v`", s)
	}
	if len(buf) > 0 {
		parts = append(parts, strings.TrimSpace(string(buf)))
	}
	return parts, nil
}

func (g *FastGraph) WriteSimple(w io.Writer) error {
	out := bufio.NewWriter(w)
	kind := "undirected"
	if g.directed {
		kind = "directed"
	}
	fmt.Fprintf(out, "graph\t%v\t%d\n", kind, g.generation)
	for n := 0; n < g.numberOfNodes; n++ {
		fmt.Fprintf(out, "node\t%d,%v,%d,%d,%d\n",
			n, strconv.Quote(g.NodeLabel(n)), g.NodeWeight(n), g.NodeType(n), g.NodeAge(n))
	}
	for e := 0; e < g.numberOfEdges; e++ {
		fmt.Fprintf(out, "edge\t%d,%v,%d,%d,%d,%d,%d\n",
			e, strconv.Quote(g.EdgeLabel(e)), g.EdgeWeight(e), g.EdgeType(e), g.EdgeAge(e),
			g.EdgeNode1(e), g.EdgeNode2(e))
	}
	return out.Flush()
}
