package cmd

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSession_LoadAndDisplay(t *testing.T) {
	app := newTestApp(t, sampleCSV, "1\n2\n9\n")
	if err := newSession(app.App, app.CSVPath).run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	out := app.out.String()

	for _, want := range []string{"Loading CSV file " + app.CSVPath, "3 bids read", "time: ", "Good bye."} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
	for _, want := range []string{
		"2: Banana | 10 | General Fund",
		"1: Apple | 1 | Enterprise",
		"3: Cherry | 7.25 | General Fund",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
	if app.err.Len() > 0 {
		t.Errorf("unexpected stderr: %s", app.err.String())
	}
}

func TestSession_Sorts(t *testing.T) {
	tests := []struct {
		choice string
		done   string
	}{
		{"3", "Selection sort completed."},
		{"4", "Quick Sort completed"},
	}
	for _, tc := range tests {
		t.Run(tc.done, func(t *testing.T) {
			// Sorting reloads the file, so no load is needed first.
			app := newTestApp(t, sampleCSV, tc.choice+"\n2\n9\n")
			if err := newSession(app.App, app.CSVPath).run(); err != nil {
				t.Fatalf("run() error = %v", err)
			}

			if got := strings.Count(app.out.String(), "Loading CSV file "+app.CSVPath); got != 1 {
				t.Errorf("file loaded %d times, want 1:\n%s", got, app.out.String())
			}

			lines := linesAfter(app.out.String(), tc.done)
			if len(lines) < 6 {
				t.Fatalf("output too short after %q:\n%s", tc.done, app.out.String())
			}
			if lines[0] != "3 bids sorted" {
				t.Errorf("got %q, want %q", lines[0], "3 bids sorted")
			}
			if !strings.HasPrefix(lines[1], "time: ") || !strings.HasPrefix(lines[2], "time: ") {
				t.Errorf("missing time report: %q", lines[1:3])
			}

			var displayed []string
			for _, l := range lines {
				l = strings.TrimPrefix(l, "Enter choice: ")
				if strings.Contains(l, " | ") {
					displayed = append(displayed, l)
				}
			}
			want := []string{
				"1: Apple | 1 | Enterprise",
				"2: Banana | 10 | General Fund",
				"3: Cherry | 7.25 | General Fund",
			}
			if diff := cmp.Diff(want, displayed); diff != "" {
				t.Errorf("displayed bids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSession_EnterBid(t *testing.T) {
	app := newTestApp(t, sampleCSV, "1\n5\n42\nDesk\nGeneral Fund\n$12.50\n2\n9\n")
	s := newSession(app.App, app.CSVPath)
	if err := s.run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if s.bids.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.bids.Len())
	}
	if got := s.bids.At(3).String(); got != "42: Desk | 12.5 | General Fund" {
		t.Errorf("entered bid = %q", got)
	}
	for _, prompt := range []string{"Enter Id: ", "Enter title: ", "Enter fund: ", "Enter amount: "} {
		if !strings.Contains(app.out.String(), prompt) {
			t.Errorf("output does not contain prompt %q", prompt)
		}
	}
}

func TestSession_EnterBidInvalidAmount(t *testing.T) {
	app := newTestApp(t, sampleCSV, "5\n7\nLamp\nFund\nfree\n")
	s := newSession(app.App, app.CSVPath)
	if err := s.run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if s.bids.Len() != 1 || s.bids.At(0).Amount != 0 {
		t.Errorf("bids = %v, want a single bid with a zero amount", s.bids.Bids())
	}
}

func TestSession_EndOfInput(t *testing.T) {
	app := newTestApp(t, sampleCSV, "")
	if err := newSession(app.App, app.CSVPath).run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	out := app.out.String()
	if !strings.Contains(out, "Menu:") || !strings.HasSuffix(out, "Good bye.\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestSession_InvalidChoices(t *testing.T) {
	app := newTestApp(t, sampleCSV, "x\n7\n9")
	if err := newSession(app.App, app.CSVPath).run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	out := app.out.String()
	if !strings.Contains(out, `Invalid choice "x"`) || !strings.Contains(out, "Invalid choice 7") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if strings.Count(out, "Menu:") != 3 {
		t.Errorf("menu shown %d times, want 3", strings.Count(out, "Menu:"))
	}
}

func TestSession_MissingFile(t *testing.T) {
	app := newTestApp(t, sampleCSV, "1\n3\n9\n")
	app.CSVPath += ".missing"
	if err := newSession(app.App, app.CSVPath).run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if got := strings.Count(app.err.String(), "Error: "); got != 2 {
		t.Errorf("got %d errors, want 2:\n%s", got, app.err.String())
	}
	if !strings.Contains(app.out.String(), "Good bye.") {
		t.Errorf("menu did not keep running:\n%s", app.out.String())
	}
}
