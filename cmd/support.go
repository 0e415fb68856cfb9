package cmd

import (
	"fmt"
	"os"
)

// Main runs r, runs the exit hooks registered on c and exits. It never
// returns.
func Main(argv []string, c *Config, r Runnable) {
	args, err := r.Run(argv)
	c.exit()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(err.ExitCode)
	}
	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "expected 0 args left got %v\n", args)
		os.Exit(1)
	}
	os.Exit(0)
}
