package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/bidsort/renderer"
	"github.com/google/subcommands"
)

// displayCmd holds the flags for the 'display' subcommand.
type displayCmd struct {
	app      *App
	markdown bool
}

func (*displayCmd) Name() string     { return "display" }
func (*displayCmd) Synopsis() string { return "display every bid of the bids file" }
func (*displayCmd) Usage() string {
	return `bids [-csv <file>] display [-md]

  Displays the bids in file order, one per line:

    <id>: <title> | <amount> | <fund>

  With -md, renders a table with formatted amounts and their total instead.
`
}

func (c *displayCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.markdown, "md", false, "render a markdown table instead of plain lines")
}

func (c *displayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	bids, err := c.app.LoadBids(c.app.CSVPath)
	if err != nil {
		fmt.Fprintf(c.app.Stderr, "Error loading bids: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.markdown {
		printMarkdown(c.app.Stdout, renderer.BidsMarkdown(bids, c.app.Currency))
		return subcommands.ExitSuccess
	}

	if err := renderer.WriteBids(c.app.Stdout, bids); err != nil {
		fmt.Fprintf(c.app.Stderr, "Error writing bids: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
