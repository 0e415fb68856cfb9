package main

import (
	"fmt"
	"strings"
)

import (
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/fastgraph/cmd"
	"github.com/timtadh/fastgraph/fastgraph"
)

func NewInfoCommand(c *cmd.Config) cmd.Runnable {
	return cmd.Cmd(
		"info",
		`[options] <graph>`,
		`
Print the size, degree profile and connectivity of <graph>.

Option Flags
    -h,--help                         Show this message
    -a,--adjacency                    Print the adjacency matrix
    --ages                            Print the number of nodes and edges of
                                      every time slice
`,
		"a",
		[]string{
			"adjacency",
			"ages",
		},
		func(r cmd.Runnable, args []string, optargs []getopt.OptArg) ([]string, *cmd.Error) {
			adjacency := false
			ages := false
			for _, oa := range optargs {
				switch oa.Opt() {
				case "-a", "--adjacency":
					adjacency = true
				case "--ages":
					ages = true
				}
			}
			if len(args) != 1 {
				return nil, cmd.Usage(r, 2, "expected one graph got: [%v]", strings.Join(args, ", "))
			}
			g, cerr := c.LoadGraph(args[0])
			if cerr != nil {
				return nil, cerr
			}
			if err := g.Validate(); err != nil {
				return nil, cmd.GraphErr(err)
			}
			fmt.Print(describe(g, adjacency, ages))
			return nil, nil
		})
}

func describe(g *fastgraph.FastGraph, adjacency, ages bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "name %q\n", g.Name())
	fmt.Fprintf(&b, "directed %v\n", g.Directed())
	fmt.Fprintf(&b, "nodes %v\n", g.NumberOfNodes())
	fmt.Fprintf(&b, "edges %v\n", g.NumberOfEdges())
	fmt.Fprintf(&b, "generation %v\n", g.Generation())
	fmt.Fprintf(&b, "degree-profile %v\n", fastgraph.DegreeProfile(g))
	if g.Directed() {
		fmt.Fprintf(&b, "in-degree-profile %v\n", fastgraph.InDegreeProfile(g))
		fmt.Fprintf(&b, "out-degree-profile %v\n", fastgraph.OutDegreeProfile(g))
	}
	fmt.Fprintf(&b, "components %v\n", len(fastgraph.ConnectedComponents(g)))
	if ages {
		for age := 0; age <= int(g.Generation()); age++ {
			nodes, edges := g.FindAllNodesOfAge(int8(age)), g.FindAllEdgesOfAge(int8(age))
			fmt.Fprintf(&b, "age %v: nodes %v edges %v\n", age, len(nodes), len(edges))
		}
	}
	if adjacency {
		m := fastgraph.AdjacencyMatrix(g)
		for i := 0; i < m.Rows(); i++ {
			row := make([]string, 0, m.Cols())
			for j := 0; j < m.Cols(); j++ {
				row = append(row, fmt.Sprint(m.Get(i, j)))
			}
			fmt.Fprintln(&b, strings.Join(row, " "))
		}
	}
	return b.String()
}
