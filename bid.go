package bidsort

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Bid holds one auction entry.
//
// Bids are values: sorting relocates whole bids and never rewrites their
// fields.
type Bid struct {
	ID     string // unique identifier, not enforced
	Title  string // sort key
	Fund   string
	Amount float64 // 0 when the source amount could not be parsed
}

// AmountString returns the shortest decimal representation of the amount,
// e.g. "62" or "1234.5".
func (b Bid) AmountString() string {
	if math.IsNaN(b.Amount) || math.IsInf(b.Amount, 0) {
		return strconv.FormatFloat(b.Amount, 'g', -1, 64)
	}
	return decimal.NewFromFloat(b.Amount).String()
}

// String returns the bid as a single display line.
func (b Bid) String() string {
	return fmt.Sprintf("%s: %s | %s | %s", b.ID, b.Title, b.AmountString(), b.Fund)
}
