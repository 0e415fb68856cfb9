package subgraph

import (
	"fmt"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/fastgraph/cmd"
	"github.com/timtadh/fastgraph/fastgraph"
)

func NewCommand(c *cmd.Config) cmd.Runnable {
	return cmd.Cmd(
		"subgraph",
		`[options] <target> <pattern>`,
		`
Find the embeddings of <pattern> in <target>.

Option Flags
    -h,--help                         Show this message
    -n,--node-labels                  Node labels must match
    -e,--edge-labels                  Edge labels must match
    -m,--max-missing=<int>            Allow up to <int> pattern edges without a
                                      target edge (approximate matching)
    -c,--count                        Only print the number of embeddings
    -d,--dot=<path>                   Write the target with the first embedding
                                      highlighted in DOT format
`,
		"nem:cd:",
		[]string{
			"node-labels",
			"edge-labels",
			"max-missing=",
			"count",
			"dot=",
		},
		func(r cmd.Runnable, args []string, optargs []getopt.OptArg) ([]string, *cmd.Error) {
			nodeLabels := false
			edgeLabels := false
			maxMissing := -1
			count := false
			dot := ""
			for _, oa := range optargs {
				switch oa.Opt() {
				case "-n", "--node-labels":
					nodeLabels = true
				case "-e", "--edge-labels":
					edgeLabels = true
				case "-m", "--max-missing":
					m, err := strconv.Atoi(oa.Arg())
					if err != nil || m < 0 {
						return nil, cmd.Usage(r, 2, "%v takes a non-negative int (got %v)", oa.Opt(), oa.Arg())
					}
					maxMissing = m
				case "-c", "--count":
					count = true
				case "-d", "--dot":
					dot = oa.Arg()
				}
			}
			if len(args) != 2 {
				return nil, cmd.Usage(r, 2, "expected a target and a pattern got: [%v]", strings.Join(args, ", "))
			}
			target, cerr := c.LoadGraph(args[0])
			if cerr != nil {
				return nil, cerr
			}
			pattern, cerr := c.LoadGraph(args[1])
			if cerr != nil {
				return nil, cerr
			}
			var nodeCmp NodeComparator
			var edgeCmp EdgeComparator
			if nodeLabels {
				nodeCmp = NewSimpleNodeLabelComparator(target, pattern)
			}
			if edgeLabels {
				edgeCmp = NewSimpleEdgeLabelComparator(target, pattern)
			}
			var mappings []SubgraphMapping
			if maxMissing >= 0 {
				m, err := NewApproximate(target, pattern, nodeCmp, edgeCmp, maxMissing)
				if err != nil {
					return nil, cmd.GraphErr(err)
				}
				m.Find()
				mappings = m.Mappings()
			} else {
				m, err := New(target, pattern, nodeCmp, edgeCmp)
				if err != nil {
					return nil, cmd.GraphErr(err)
				}
				m.Find()
				mappings = m.Mappings()
			}
			fmt.Println("embeddings", len(mappings))
			if !count {
				for _, m := range mappings {
					fmt.Println(m)
				}
			}
			if dot != "" && len(mappings) > 0 {
				return nil, writeHighlighted(dot, target, mappings[0])
			}
			return nil, nil
		})
}

func writeHighlighted(path string, target *fastgraph.FastGraph, m SubgraphMapping) *cmd.Error {
	nodes := make(map[int]bool)
	edges := make(map[int]bool)
	for _, n := range m.NodeMapping() {
		nodes[n] = true
	}
	for _, e := range m.EdgeMapping() {
		if e >= 0 {
			edges[e] = true
		}
	}
	out, err := cmd.Output(path)
	if err != nil {
		return cmd.Err(1, err)
	}
	_, err = fmt.Fprint(out, target.Dotty(nodes, edges))
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return cmd.Err(1, err)
	}
	return nil
}
