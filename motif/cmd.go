package motif

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
		"motif",
		`[options] <graph>`,
		`
Count the connected induced subgraphs of <graph> and compare the counts with
randomized reference graphs. Flags override values read from --config.

Option Flags
    -h,--help                         Show this message
    --config=<path>                   YAML file with the motif options
    --min-size=<int>                  Smallest motif size (defaults to 3)
    --max-size=<int>                  Largest motif size (defaults to 3)
    -a,--attempts=<int>               Sample <int> expansions per node instead
                                      of enumerating every subgraph
    -r,--references=<int>             Number of reference graphs (defaults to 10)
    --random-references               Use random graphs with the same node and
                                      edge counts instead of rewired copies
    -s,--seed=<int>                   Random seed (defaults to 0)
    -o,--output=<path>                Write the results as YAML (defaults to -)
    --dot-dir=<path>                  Write every motif as <rank>.dot
    -t,--top=<int>                    Only report the <int> highest ranked motifs
`,
		"a:r:s:o:t:",
		[]string{
			"config=",
			"min-size=",
			"max-size=",
			"attempts=",
			"references=",
			"random-references",
			"seed=",
			"output=",
			"dot-dir=",
			"top=",
		},
		func(r cmd.Runnable, args []string, optargs []getopt.OptArg) ([]string, *cmd.Error) {
			opts := DefaultOptions()
			for _, oa := range optargs {
				if oa.Opt() != "--config" {
					continue
				}
				input, closer, err := cmd.Input(oa.Arg())
				if err != nil {
					return nil, cmd.Errorf(1, "could not read motif config %v: %v", oa.Arg(), err)
				}
				opts, err = LoadOptions(input)
				closer()
				if err != nil {
					return nil, cmd.GraphErr(err)
				}
			}
			output := "-"
			dotDir := ""
			top := 0
			atoi := func(oa getopt.OptArg) (int, *cmd.Error) {
				i, err := strconv.Atoi(oa.Arg())
				if err != nil {
					return 0, cmd.Usage(r, 2, "%v takes an int (got %v). err: %v", oa.Opt(), oa.Arg(), err)
				}
				return i, nil
			}
			for _, oa := range optargs {
				var err *cmd.Error
				switch oa.Opt() {
				case "--min-size":
					opts.MinSize, err = atoi(oa)
				case "--max-size":
					opts.MaxSize, err = atoi(oa)
				case "-a", "--attempts":
					opts.Attempts, err = atoi(oa)
				case "-r", "--references":
					opts.ReferenceGraphs, err = atoi(oa)
				case "--random-references":
					opts.Rewire = false
				case "-s", "--seed":
					var seed int
					seed, err = atoi(oa)
					opts.Seed = int64(seed)
				case "-o", "--output":
					output = oa.Arg()
				case "--dot-dir":
					dotDir = oa.Arg()
				case "-t", "--top":
					top, err = atoi(oa)
				}
				if err != nil {
					return nil, err
				}
			}
			if len(args) != 1 {
				return nil, cmd.Usage(r, 2, "expected exactly one graph got: [%v]", strings.Join(args, ", "))
			}
			g, cerr := c.LoadGraph(args[0])
			if cerr != nil {
				return nil, cerr
			}
			f, err := NewFinder(g, opts)
			if err != nil {
				return nil, cmd.GraphErr(err)
			}
			results, err := f.Run()
			if err != nil {
				return nil, cmd.GraphErr(err)
			}
			if top > 0 && top < len(results) {
				results = results[:top]
			}
			out, err := cmd.Output(output)
			if err != nil {
				return nil, cmd.Err(1, err)
			}
			err = Export(out, results)
			if cerr := out.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return nil, cmd.Err(1, err)
			}
			if dotDir != "" {
				if err := ExportDot(dotDir, results); err != nil {
					return nil, cmd.Err(1, err)
				}
			}
			if output != "-" {
				for _, res := range results {
					fmt.Println(res)
				}
			}
			return nil, nil
		})
}
