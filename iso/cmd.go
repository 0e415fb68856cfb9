package iso

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
)

func NewCommand(c *cmd.Config) cmd.Runnable {
	return cmd.Cmd(
		"iso",
		`[options] <graph> <graph>`,
		`
Decide whether two graphs are isomorphic. Graphs are paths (format chosen by
extension) or store:<name>.

Option Flags
    -h,--help                         Show this message
    -n,--node-labels                  Node labels must match
    -e,--edge-labels                  Edge labels must match
    --permute=<seed>                  Write a random isomorphic copy of the
                                      first graph to the second argument
    --keep-labels                     Keep labels in the permuted copy
`,
		"ne",
		[]string{
			"node-labels",
			"edge-labels",
			"permute=",
			"keep-labels",
		},
		func(r cmd.Runnable, args []string, optargs []getopt.OptArg) ([]string, *cmd.Error) {
			var opts Options
			permute := false
			keepLabels := false
			var seed int64
			for _, oa := range optargs {
				switch oa.Opt() {
				case "-n", "--node-labels":
					opts.NodeLabels = true
				case "-e", "--edge-labels":
					opts.EdgeLabels = true
				case "--keep-labels":
					keepLabels = true
				case "--permute":
					s, err := strconv.ParseInt(oa.Arg(), 10, 64)
					if err != nil {
						return nil, cmd.Usage(r, 2, "%v takes an int seed (got %v). err: %v", oa.Opt(), oa.Arg(), err)
					}
					permute = true
					seed = s
				}
			}
			if len(args) != 2 {
				return nil, cmd.Usage(r, 2, "expected exactly 2 graphs got: [%v]", strings.Join(args, ", "))
			}
			g1, err := c.LoadGraph(args[0])
			if err != nil {
				return nil, err
			}
			if permute {
				p, perr := GenerateRandomIsomorphicGraph(g1, seed, keepLabels)
				if perr != nil {
					return nil, cmd.GraphErr(perr)
				}
				return nil, c.WriteGraph(args[1], p)
			}
			g2, err := c.LoadGraph(args[1])
			if err != nil {
				return nil, err
			}
			m := newMatcher(g1, opts)
			if !m.Isomorphic(g2) {
				fmt.Println("not isomorphic")
				return nil, nil
			}
			fmt.Println("isomorphic")
			fmt.Println("match", m.LastMatch())
			return nil, nil
		})
}
