package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

const sampleCSV = `ArticleTitle,ArticleID,Department,CloseDate,WinningBid,InventoryID,VehicleID,ReceiptNumber,Fund
Banana,2,Parks,12/1/2016,$10.00,,,1,General Fund
Apple,1,Parks,12/1/2016,"$1,500.00",,,2,Enterprise
Cherry,3,Parks,12/1/2016,$7.25,,,3,General Fund
`

// testApp is an App reading input from a string and writing to buffers.
type testApp struct {
	*App
	out, err *bytes.Buffer
}

// newTestApp returns an App working on a temporary file holding csv.
func newTestApp(t *testing.T, csv, input string) *testApp {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bids.csv")
	if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}
	var out, errOut bytes.Buffer
	return &testApp{
		App: &App{
			CSVPath:  path,
			Strip:    '$',
			Currency: "USD",
			Stdin:    strings.NewReader(input),
			Stdout:   &out,
			Stderr:   &errOut,
		},
		out: &out,
		err: &errOut,
	}
}

// execute runs the command line args against app.
func execute(t *testing.T, app *App, args ...string) subcommands.ExitStatus {
	t.Helper()
	top := flag.NewFlagSet("bids", flag.ContinueOnError)
	c := subcommands.NewCommander(top, "bids")
	app.Register(c, top)
	if err := top.Parse(args); err != nil {
		t.Fatalf("Parse(%q) error = %v", args, err)
	}
	return c.Execute(context.Background())
}

// linesAfter returns the non empty lines following the first line equal to
// marker.
func linesAfter(output, marker string) []string {
	_, rest, found := strings.Cut(output, marker+"\n")
	if !found {
		return nil
	}
	var lines []string
	for _, l := range strings.Split(rest, "\n") {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
