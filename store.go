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
)

func NewStoreCommand(c *cmd.Config) cmd.Runnable {
	return cmd.Concat(
		cmd.Cmd(
			"store",
			`(put|get|ls|rm)`,
			`
Manage the graph store (see --store).`,
			"",
			[]string{},
			func(r cmd.Runnable, args []string, optargs []getopt.OptArg) ([]string, *cmd.Error) {
				return args, nil
			}),
		cmd.Commands(map[string]cmd.Runnable{
			"put": cmd.Cmd(
				"put",
				`<graph> <name>`,
				`Copy <graph> into the store as <name>.`,
				"",
				[]string{},
				func(r cmd.Runnable, args []string, optargs []getopt.OptArg) ([]string, *cmd.Error) {
					if len(args) != 2 {
						return nil, cmd.Usage(r, 2, "expected a graph and a name got: [%v]", strings.Join(args, ", "))
					}
					g, err := c.LoadGraph(args[0])
					if err != nil {
						return nil, err
					}
					return nil, c.WriteGraph(cmd.StorePrefix+args[1], g)
				}),
			"get": cmd.Cmd(
				"get",
				`<name> <output>`,
				`Write the stored graph <name> to <output>.`,
				"",
				[]string{},
				func(r cmd.Runnable, args []string, optargs []getopt.OptArg) ([]string, *cmd.Error) {
					if len(args) != 2 {
						return nil, cmd.Usage(r, 2, "expected a name and an output got: [%v]", strings.Join(args, ", "))
					}
					g, err := c.LoadGraph(cmd.StorePrefix + args[0])
					if err != nil {
						return nil, err
					}
					return nil, c.WriteGraph(args[1], g)
				}),
			"ls": cmd.Cmd(
				"ls",
				``,
				`List the stored graphs.`,
				"",
				[]string{},
				func(r cmd.Runnable, args []string, optargs []getopt.OptArg) ([]string, *cmd.Error) {
					s, cerr := c.OpenStore()
					if cerr != nil {
						return nil, cerr
					}
					defer s.Close()
					names, err := s.Names()
					if err != nil {
						return nil, cmd.Err(1, err)
					}
					for _, name := range names {
						fmt.Println(name)
					}
					return args, nil
				}),
			"rm": cmd.Cmd(
				"rm",
				`<name>...`,
				`Remove graphs from the store.`,
				"",
				[]string{},
				func(r cmd.Runnable, args []string, optargs []getopt.OptArg) ([]string, *cmd.Error) {
					s, cerr := c.OpenStore()
					if cerr != nil {
						return nil, cerr
					}
					defer s.Close()
					for _, name := range args {
						if err := s.Delete(name); err != nil {
							return nil, cmd.Err(1, err)
						}
					}
					return nil, nil
				}),
		}),
	)
}
