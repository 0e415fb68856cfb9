package main

import (
	"os"
)

import (
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/fastgraph/cmd"
	"github.com/timtadh/fastgraph/iso"
	"github.com/timtadh/fastgraph/motif"
	"github.com/timtadh/fastgraph/subgraph"
)

func main() {
	c := cmd.DefaultConfig()
	cmd.Main(os.Args[1:], c, NewCommand(c))
}

func NewCommand(c *cmd.Config) cmd.Runnable {
	commands := []cmd.Runnable{
		NewGenerateCommand(c),
		NewInfoCommand(c),
		NewStoreCommand(c),
		iso.NewCommand(c),
		subgraph.NewCommand(c),
		motif.NewCommand(c),
	}
	named := make(map[string]cmd.Runnable, len(commands))
	for _, r := range commands {
		named[r.Name()] = r
	}
	return cmd.Concat(NewMainParser(c), cmd.Commands(named))
}

func NewMainParser(c *cmd.Config) cmd.Runnable {
	return cmd.Cmd(
		"fastgraph",
		`[options]`,
		`
Graph matching and motif tools. Graph arguments are file paths whose extension
picks the format (.dot/.gv, .json/.yaml/.yml node-link, .fgb binary, anything
else the simple line format; a trailing .gz is decompressed) or
store:<name> for a graph in the graph store.

Option Flags
    -h,--help                         Show this message
    -p,--cpu-profile=<path>           Path to write the cpu-profile
    --store=<path>                    Graph store file (defaults to fastgraph.db)
    -f,--format=<format>              Force a graph format (dot, simple,
                                      nodelink, binary)
`,
		"p:f:",
		[]string{
			"cpu-profile=",
			"store=",
			"format=",
		},
		func(r cmd.Runnable, args []string, optargs []getopt.OptArg) ([]string, *cmd.Error) {
			cpuProfile := ""
			for _, oa := range optargs {
				switch oa.Opt() {
				case "-p", "--cpu-profile":
					cpuProfile = oa.Arg()
				case "--store":
					c.Store = oa.Arg()
				case "-f", "--format":
					c.Format = oa.Arg()
				}
			}
			if cpuProfile != "" {
				if err := c.ProfileCPU(cpuProfile); err != nil {
					return nil, err
				}
			}
			return args, nil
		})
}
