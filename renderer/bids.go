package renderer

import (
	"bufio"
	"io"

	"github.com/etnz/bidsort"
)

// BidLine renders a single bid as "<id>: <title> | <amount> | <fund>".
func BidLine(b bidsort.Bid) string { return b.String() }

// WriteBids writes one line per bid, in store order, followed by an empty
// line.
func WriteBids(w io.Writer, s *bidsort.Store) error {
	bw := bufio.NewWriter(w)
	for _, b := range s.All() {
		bw.WriteString(BidLine(b))
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
