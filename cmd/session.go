package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/bidsort"
	"github.com/etnz/bidsort/renderer"
	log "github.com/sirupsen/logrus"
)

// algorithm is a way to order a store, as offered by the menu and the sort
// command.
type algorithm struct {
	done string // message printed once the store is sorted
	sort func(*bidsort.Store)
}

var algorithms = map[string]algorithm{
	"selection": {done: "Selection sort completed.", sort: (*bidsort.Store).SelectionSort},
	"quick":     {done: "Quick Sort completed", sort: (*bidsort.Store).QuickSort},
}

// session is the state of one interactive run: the file in use and the bids
// currently in memory.
type session struct {
	app  *App
	path string
	bids *bidsort.Store
	in   *bufio.Reader
	out  io.Writer
}

func newSession(app *App, path string) *session {
	return &session{
		app:  app,
		path: path,
		bids: bidsort.NewStore(),
		in:   bufio.NewReader(app.Stdin),
		out:  app.Stdout,
	}
}

const menu = `Menu:
  1. Load Bids
  2. Display All Bids
  3. Selection Sort All Bids
  4. Quick Sort All Bids
  5. Enter a Bid
  9. Exit
Enter choice: `

// run shows the menu and dispatches choices until 9 or the end of input.
func (s *session) run() error {
	for {
		fmt.Fprint(s.out, menu)
		line, err := s.readLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			break
		}
		if err != nil {
			return err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintf(s.out, "Invalid choice %q\n", strings.TrimSpace(line))
			continue
		}
		if choice == 9 {
			break
		}
		if err := s.dispatch(choice); err != nil {
			fmt.Fprintf(s.app.Stderr, "Error: %v\n", err)
		}
	}
	fmt.Fprintln(s.out, "Good bye.")
	return nil
}

func (s *session) dispatch(choice int) error {
	switch choice {
	case 1:
		return s.load()
	case 2:
		return s.display()
	case 3:
		return s.reloadAndSort("selection")
	case 4:
		return s.reloadAndSort("quick")
	case 5:
		return s.enterBid()
	default:
		fmt.Fprintf(s.out, "Invalid choice %d\n", choice)
		return nil
	}
}

// load replaces the bids in memory with the content of the file.
func (s *session) load() error {
	fmt.Fprintf(s.out, "Loading CSV file %s\n", s.path)
	start := time.Now()
	bids, err := s.app.LoadBids(s.path)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	s.bids = bids
	fmt.Fprintf(s.out, "%d bids read\n", s.bids.Len())
	printElapsed(s.out, elapsed)
	return nil
}

func (s *session) display() error {
	return renderer.WriteBids(s.out, s.bids)
}

// reloadAndSort loads a fresh copy of the file, then sorts it with the
// named algorithm. Only the sort itself is timed.
func (s *session) reloadAndSort(name string) error {
	fmt.Fprintf(s.out, "Loading CSV file %s\n", s.path)
	bids, err := s.app.LoadBids(s.path)
	if err != nil {
		return err
	}
	s.bids = bids
	return s.sort(name)
}

func (s *session) sort(name string) error {
	algo, ok := algorithms[name]
	if !ok {
		return fmt.Errorf("unknown sort algorithm %q", name)
	}

	start := time.Now()
	algo.sort(s.bids)
	elapsed := time.Since(start)
	bidsort.TrackTime(name+" sort", start)

	fmt.Fprintln(s.out, algo.done)
	fmt.Fprintf(s.out, "%d bids sorted\n", s.bids.Len())
	printElapsed(s.out, elapsed)
	return nil
}

// enterBid prompts for the fields of one bid and appends it to the bids in
// memory.
func (s *session) enterBid() error {
	var bid bidsort.Bid
	var raw string
	for _, field := range []struct {
		prompt string
		dest   *string
	}{
		{"Enter Id: ", &bid.ID},
		{"Enter title: ", &bid.Title},
		{"Enter fund: ", &bid.Fund},
		{"Enter amount: ", &raw},
	} {
		fmt.Fprint(s.out, field.prompt)
		line, err := s.readLine()
		if err != nil {
			return fmt.Errorf("could not read bid: %w", err)
		}
		*field.dest = strings.TrimSpace(line)
	}

	amount, err := bidsort.ParseAmountStrict(raw, s.app.Strip)
	if err != nil {
		log.Warnf("%v, using %v", err, amount)
	}
	bid.Amount = amount

	s.bids.Append(bid)
	fmt.Fprintln(s.out, renderer.BidLine(bid))
	return nil
}

// readLine returns the next input line without its line terminator. A last
// line without terminator is returned as is; io.EOF is only returned when
// there is nothing left to read.
func (s *session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	return strings.TrimRight(line, "\r\n"), err
}

// printElapsed reports a duration in microseconds and seconds.
func printElapsed(w io.Writer, d time.Duration) {
	fmt.Fprintf(w, "time: %d microseconds\n", d.Microseconds())
	fmt.Fprintf(w, "time: %g seconds\n", d.Seconds())
}
