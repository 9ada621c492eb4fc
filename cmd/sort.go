package cmd

import (
	"context"
	"flag"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/etnz/bidsort/renderer"
	"github.com/google/subcommands"
)

// sortCmd holds the flags for the 'sort' subcommand.
type sortCmd struct {
	app  *App
	algo string
	show bool
}

func (*sortCmd) Name() string     { return "sort" }
func (*sortCmd) Synopsis() string { return "sort the bids by title and report the time taken" }
func (*sortCmd) Usage() string {
	return `bids [-csv <file>] sort [-algo quick|selection] [-show]

  Loads the bids file, sorts the bids by title with the chosen algorithm
  and prints how many bids were sorted and how long the sort took.

Usage Examples:
# Sort with selection sort and print the result.
$ bids sort -algo selection -show

`
}

func (c *sortCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.algo, "algo", "quick", "sort algorithm: "+strings.Join(algorithmNames(), ", "))
	f.BoolVar(&c.show, "show", false, "display the sorted bids")
}

func (c *sortCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, ok := algorithms[c.algo]; !ok {
		fmt.Fprintf(c.app.Stderr, "Error: unknown sort algorithm %q, want one of %s\n", c.algo, strings.Join(algorithmNames(), ", "))
		return subcommands.ExitUsageError
	}

	s := newSession(c.app, c.app.CSVPath)
	if err := s.reloadAndSort(c.algo); err != nil {
		fmt.Fprintf(c.app.Stderr, "Error sorting bids: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.show {
		if err := renderer.WriteBids(c.app.Stdout, s.bids); err != nil {
			fmt.Fprintf(c.app.Stderr, "Error writing bids: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

func algorithmNames() []string {
	return slices.Sorted(maps.Keys(algorithms))
}
