package bidsort

import (
	"iter"

	"github.com/shopspring/decimal"
)

// Store is an ordered, mutable sequence of bids.
//
// A Store is not safe for concurrent use: sorting mutates it in place.
type Store struct {
	bids []Bid
}

// NewStore returns a store holding a copy of bids, in order.
func NewStore(bids ...Bid) *Store {
	s := &Store{bids: make([]Bid, 0, len(bids))}
	s.bids = append(s.bids, bids...)
	return s
}

// Append adds bids at the end of the store.
func (s *Store) Append(bids ...Bid) { s.bids = append(s.bids, bids...) }

// Len returns the number of bids.
func (s *Store) Len() int { return len(s.bids) }

// At returns the bid at position i.
func (s *Store) At(i int) Bid { return s.bids[i] }

// Bids returns the backing slice. Mutating it mutates the store.
func (s *Store) Bids() []Bid { return s.bids }

// All iterates over the bids in their current order.
func (s *Store) All() iter.Seq2[int, Bid] {
	return func(yield func(int, Bid) bool) {
		for i, b := range s.bids {
			if !yield(i, b) {
				return
			}
		}
	}
}

// Titles returns the titles in their current order.
func (s *Store) Titles() []string {
	titles := make([]string, len(s.bids))
	for i, b := range s.bids {
		titles[i] = b.Title
	}
	return titles
}

// Total returns the sum of all amounts.
func (s *Store) Total() decimal.Decimal {
	total := decimal.Zero
	for _, b := range s.bids {
		total = total.Add(decimal.NewFromFloat(b.Amount))
	}
	return total
}

// SelectionSort orders the store by title using [SelectionSort].
func (s *Store) SelectionSort() { SelectionSort(s.bids) }

// QuickSort orders the store by title using [QuickSort] over the whole range.
func (s *Store) QuickSort() { QuickSort(s.bids, 0, len(s.bids)-1) }
