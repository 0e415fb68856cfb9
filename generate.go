package main

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

func NewGenerateCommand(c *cmd.Config) cmd.Runnable {
	return cmd.Cmd(
		"generate",
		`[options] <output>`,
		`
Write a random graph to <output> (a path or store:<name>).

Option Flags
    -h,--help                         Show this message
    -n,--nodes=<int>                  Number of nodes (defaults to 10)
    -e,--edges=<int>                  Number of edges (defaults to 20)
    -s,--seed=<int>                   Random seed (defaults to 0)
    -d,--directed                     Generate a directed graph
    --self-loops                      Allow self-loops
    --parallel                        Allow parallel edges
    --rewire=<int>                    Apply <int> degree preserving edge swaps
    --time-slices=<int>               Append <int> time slices
    --slice=<nr,er,na,ea>             Node removal fraction, edge removal
                                      fraction, nodes to add and edges to add
                                      per slice (defaults to .2,.2,2,2)
`,
		"n:e:s:d",
		[]string{
			"nodes=",
			"edges=",
			"seed=",
			"directed",
			"self-loops",
			"parallel",
			"rewire=",
			"time-slices=",
			"slice=",
		},
		func(r cmd.Runnable, args []string, optargs []getopt.OptArg) ([]string, *cmd.Error) {
			nodes, edges := 10, 20
			var seed int64
			directed, selfLoops, parallel := false, false, false
			rewire, slices := 0, 0
			nodeRemoval, edgeRemoval := .2, .2
			nodesToAdd, edgesToAdd := 2, 2
			atoi := func(oa getopt.OptArg) (int, *cmd.Error) {
				i, err := strconv.Atoi(oa.Arg())
				if err != nil || i < 0 {
					return 0, cmd.Usage(r, 2, "%v takes a non-negative int (got %v)", oa.Opt(), oa.Arg())
				}
				return i, nil
			}
			for _, oa := range optargs {
				var err *cmd.Error
				switch oa.Opt() {
				case "-n", "--nodes":
					nodes, err = atoi(oa)
				case "-e", "--edges":
					edges, err = atoi(oa)
				case "-s", "--seed":
					s, perr := strconv.ParseInt(oa.Arg(), 10, 64)
					if perr != nil {
						err = cmd.Usage(r, 2, "%v takes an int (got %v)", oa.Opt(), oa.Arg())
					}
					seed = s
				case "-d", "--directed":
					directed = true
				case "--self-loops":
					selfLoops = true
				case "--parallel":
					parallel = true
				case "--rewire":
					rewire, err = atoi(oa)
				case "--time-slices":
					slices, err = atoi(oa)
				case "--slice":
					parts := strings.Split(oa.Arg(), ",")
					if len(parts) != 4 {
						return nil, cmd.Usage(r, 2, "%v takes 4 comma separated values (got %v)", oa.Opt(), oa.Arg())
					}
					var errs [4]error
					nodeRemoval, errs[0] = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
					edgeRemoval, errs[1] = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
					nodesToAdd, errs[2] = strconv.Atoi(strings.TrimSpace(parts[2]))
					edgesToAdd, errs[3] = strconv.Atoi(strings.TrimSpace(parts[3]))
					for _, e := range errs {
						if e != nil {
							return nil, cmd.Usage(r, 2, "could not parse %v: %v", oa.Arg(), e)
						}
					}
				}
				if err != nil {
					return nil, err
				}
			}
			if len(args) != 1 {
				return nil, cmd.Usage(r, 2, "expected one output got: [%v]", strings.Join(args, ", "))
			}
			g, err := fastgraph.RandomGraph(nodes, edges, seed, directed, selfLoops, parallel)
			if err != nil {
				return nil, cmd.GraphErr(err)
			}
			if rewire > 0 {
				g, err = g.RewireDegreePreserving(rewire, seed)
				if err != nil {
					return nil, cmd.GraphErr(err)
				}
			}
			for i := 0; i < slices; i++ {
				g, err = g.AppendTimeSlice(nodeRemoval, edgeRemoval, nodesToAdd, edgesToAdd, selfLoops, seed+int64(i)+1)
				if err != nil {
					return nil, cmd.GraphErr(err)
				}
			}
			if cerr := c.WriteGraph(args[0], g); cerr != nil {
				return nil, cerr
			}
			fmt.Printf("wrote %v nodes %v edges to %v\n", g.NumberOfNodes(), g.NumberOfEdges(), args[0])
			return nil, nil
		})
}
