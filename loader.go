package bidsort

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// Column positions of the bid fields in a monthly sales export.
const (
	ColTitle  = 0
	ColID     = 1
	ColAmount = 4
	ColFund   = 8
)

// minColumns is the number of columns a row needs to hold every bid field.
const minColumns = ColFund + 1

// DefaultStrip is the currency symbol removed from amounts by default.
const DefaultStrip = '$'

// ErrShortRow reports a data row without enough columns to hold a bid.
var ErrShortRow = errors.New("row is missing bid columns")

// Loader reads bids from tabular files. The first row of a file is a header
// and is skipped. The zero Loader strips [DefaultStrip] from amounts and
// reads the first sheet of workbooks.
type Loader struct {
	Strip rune   // character removed from amounts before parsing
	Sheet string // workbook sheet to read, the first one when empty
}

// LoadBids loads the file at path with the zero Loader.
func LoadBids(path string) (*Store, error) {
	var l Loader
	return l.Load(path)
}

// Load opens the file at path and decodes it according to its extension:
// ".xlsx" files are Excel workbooks, anything else is read as CSV.
func (l Loader) Load(path string) (*Store, error) {
	defer TrackTime("Load", time.Now())

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open bids file %q: %w", path, err)
	}
	defer f.Close()

	var s *Store
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		s, err = l.DecodeWorkbook(f)
	} else {
		s, err = l.DecodeCSV(f)
	}
	if err != nil {
		return nil, fmt.Errorf("could not decode bids file %q: %w", path, err)
	}
	log.Debugf("loaded %d bids from %s", s.Len(), path)
	return s, nil
}

// DecodeCSV reads bids from CSV content. Rows may have any number of
// columns as long as every bid column is present. An empty input yields an
// empty store.
func (l Loader) DecodeCSV(r io.Reader) (*Store, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return NewStore(), nil
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	s := NewStore()
	rowNum := 1 // header is row 1, data starts at row 2
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			return nil, fmt.Errorf("row %d: failed to read CSV record: %w", rowNum, err)
		}
		bid, err := l.bidFromRow(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		s.Append(bid)
	}
	return s, nil
}

// DecodeWorkbook reads bids from an Excel workbook.
//
// Workbooks omit trailing empty cells, so rows shorter than the header are
// padded with empty strings before the bid columns are read. Blank rows are
// skipped, as they are in CSV.
func (l Loader) DecodeWorkbook(r io.Reader) (*Store, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := l.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheet")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	s := NewStore()
	if len(rows) == 0 {
		return s, nil
	}
	width := len(rows[0])
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		for len(row) < width {
			row = append(row, "")
		}
		bid, err := l.bidFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("sheet %q row %d: %w", sheet, i+2, err)
		}
		s.Append(bid)
	}
	return s, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// bidFromRow maps one data row to a bid.
func (l Loader) bidFromRow(row []string) (Bid, error) {
	if len(row) < minColumns {
		return Bid{}, fmt.Errorf("%w: got %d columns, want at least %d", ErrShortRow, len(row), minColumns)
	}
	strip := l.Strip
	if strip == 0 {
		strip = DefaultStrip
	}
	return Bid{
		ID:     row[ColID],
		Title:  row[ColTitle],
		Fund:   row[ColFund],
		Amount: ParseAmount(row[ColAmount], strip),
	}, nil
}
