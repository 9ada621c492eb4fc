package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// menuCmd runs the interactive menu.
type menuCmd struct {
	app *App
}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "interactive menu to load, display and sort bids" }
func (*menuCmd) Usage() string {
	return `bids menu [<file>]

  Starts an interactive menu working on the given bids file, or on the
  -csv file when none is given. Bids stay in memory between choices;
  both sort choices reload the file first.
`
}

func (*menuCmd) SetFlags(f *flag.FlagSet) {}

func (c *menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path := c.app.CSVPath
	switch f.NArg() {
	case 0:
	case 1:
		path = f.Arg(0)
	default:
		fmt.Fprintf(c.app.Stderr, "Error: menu takes at most one file, got %d\n", f.NArg())
		return subcommands.ExitUsageError
	}

	if err := newSession(c.app, path).run(); err != nil {
		fmt.Fprintf(c.app.Stderr, "Error reading input: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
