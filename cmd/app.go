// Package cmd implements the CLI application to load, sort and display bids.
package cmd

import (
	"flag"
	"io"
	"os"

	"github.com/etnz/bidsort"
	"github.com/etnz/bidsort/config"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

// App holds the settings shared by every command.
// As a CLI application it lives as long as a single command.
type App struct {
	CSVPath  string
	Strip    rune
	Currency string
	Sheet    string
	Verbose  bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewApp returns an App configured from cfg, wired to the process standard
// streams.
func NewApp(cfg *config.Config) *App {
	return &App{
		CSVPath:  cfg.CSVPath,
		Strip:    cfg.StripRune(),
		Currency: cfg.Currency,
		Sheet:    cfg.Sheet,
		Verbose:  cfg.Verbose,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
}

// Commands returns the application subcommands.
func (a *App) Commands() []subcommands.Command {
	return []subcommands.Command{
		&loadCmd{app: a},
		&displayCmd{app: a},
		&sortCmd{app: a},
		&menuCmd{app: a},
		&topicCmd{app: a},
	}
}

// Register binds the global flags to top and registers the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func (a *App) Register(c *subcommands.Commander, top *flag.FlagSet) {
	top.StringVar(&a.CSVPath, "csv", a.CSVPath, "Path to the bids file (CSV, or .xlsx workbook)")
	top.BoolVar(&a.Verbose, "v", a.Verbose, "Enable debug logging")

	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	for _, cmd := range a.Commands() {
		group := "bids"
		if cmd.Name() == "topic" {
			group = "help"
		}
		c.Register(cmd, group)
	}
}

// SetupLogging configures the logger once the flags are parsed.
func (a *App) SetupLogging() {
	log.SetOutput(a.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if a.Verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// Loader returns the bids loader for the configured amount symbol and sheet.
func (a *App) Loader() bidsort.Loader {
	return bidsort.Loader{Strip: a.Strip, Sheet: a.Sheet}
}

// LoadBids loads the bids file at path.
func (a *App) LoadBids(path string) (*bidsort.Store, error) {
	return a.Loader().Load(path)
}
