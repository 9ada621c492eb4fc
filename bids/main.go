package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"
	"slices"

	"github.com/etnz/bidsort/cmd"
	"github.com/etnz/bidsort/config"
	"github.com/google/subcommands"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	name := path.Base(os.Args[0])
	app := cmd.NewApp(cfg)
	commander := subcommands.NewCommander(flag.CommandLine, name)
	app.Register(commander, flag.CommandLine)

	// Answers shell completion requests and exits, when there is one.
	app.Completion(flag.CommandLine).Complete(name)

	flag.Parse()
	app.SetupLogging()

	// Without a subcommand, open the interactive menu.
	if flag.NArg() == 0 {
		flag.CommandLine.Parse(append(os.Args[1:], "menu"))
	}

	if sub := flag.Arg(0); !slices.ContainsFunc(app.Commands(), func(c subcommands.Command) bool { return c.Name() == sub }) &&
		!slices.Contains([]string{"help", "flags", "commands"}, sub) {
		if found, code := app.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}
