package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// loadCmd loads the bids file and reports how many bids it holds.
type loadCmd struct {
	app *App
}

func (*loadCmd) Name() string     { return "load" }
func (*loadCmd) Synopsis() string { return "load the bids file and count its bids" }
func (*loadCmd) Usage() string {
	return `bids [-csv <file>] load

  Loads every bid of the bids file and prints how many were read and how
  long it took.
`
}

func (*loadCmd) SetFlags(f *flag.FlagSet) {}

func (c *loadCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := newSession(c.app, c.app.CSVPath)
	if err := s.load(); err != nil {
		fmt.Fprintf(c.app.Stderr, "Error loading bids: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
