package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/etnz/bidsort/config"
	log "github.com/sirupsen/logrus"
)

// Environment variables passed to extensions, the ones config.Load reads.
const (
	EnvCSVPath  = config.Prefix + "_CSV_PATH"
	EnvStrip    = config.Prefix + "_STRIP"
	EnvCurrency = config.Prefix + "_CURRENCY"
	EnvSheet    = config.Prefix + "_SHEET"
	EnvVerbose  = config.Prefix + "_VERBOSE"
)

// RunExtension attempts to find and execute an external bids-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func (a *App) RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "bids-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Debugf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = a.Stdin
	cmd.Stdout = a.Stdout
	cmd.Stderr = a.Stderr

	// Pass global settings as environment variables
	cmd.Env = append(os.Environ(),
		EnvCSVPath+"="+a.CSVPath,
		EnvStrip+"="+string(a.Strip),
		EnvCurrency+"="+a.Currency,
		EnvSheet+"="+a.Sheet,
		EnvVerbose+"="+strconv.FormatBool(a.Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(a.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
