package renderer

import (
	"bytes"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/etnz/bidsort"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// BidsMarkdown renders the store as a markdown table, amounts formatted in
// currency, followed by the bid count and the total amount.
func BidsMarkdown(s *bidsort.Store, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Bids")

	rows := make([][]string, 0, s.Len())
	for _, b := range s.All() {
		rows = append(rows, []string{
			b.ID,
			b.Title,
			FormatAmount(decimal.NewFromFloat(b.Amount), currency),
			b.Fund,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Title", "Amount", "Fund"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("%d bids, total %s", s.Len(), FormatAmount(s.Total(), currency)))

	return doc.String()
}

// FormatAmount formats value in the given ISO currency, e.g. "$1,234.50"
// for USD. Unknown currencies fall back to the plain value followed by the
// code.
func FormatAmount(value decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return fmt.Sprintf("%s %s", value.String(), currency)
	}
	minor := value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}
