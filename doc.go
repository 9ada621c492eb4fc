// Package bidsort loads monthly auction bids from a spreadsheet export and
// orders them by title in memory.
//
// The core functionalities include:
//   - Loading: reading bids from a CSV file or an Excel workbook, where the
//     title, identifier, amount and fund are taken from fixed columns.
//   - Amount parsing: converting currency strings such as "$62.00" into
//     numbers, degrading silently to zero on malformed input.
//   - Sorting: two in-place orderings by title, a quadratic selection sort
//     and a recursive quicksort using a Hoare partition.
//
// This package serves as the foundational logic for the `bids` command-line
// tool, whose interactive menu loads, sorts and displays the bids.
package bidsort
