package bidsort

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned by ParseAmountStrict when the input is not
// entirely a decimal number.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount converts a currency string to a number after removing every
// occurrence of strip from it.
//
// Only the longest leading decimal number is read, the way C's atof does:
// leading blanks are skipped and anything after the number is ignored, so
// ParseAmount("$1,234", '$') is 1 because the comma ends the number.
//
// ParseAmount never fails. Input without a leading number, or whose number
// does not fit a float64, yields 0. Callers that need to know about the
// degradation use [ParseAmountStrict].
func ParseAmount(raw string, strip rune) float64 {
	v, _ := parseAmount(raw, strip)
	return v
}

// ParseAmountStrict is like ParseAmount but also reports an error wrapping
// ErrInvalidAmount when the stripped input is not a number in full. The
// returned value is always the one ParseAmount would return.
func ParseAmountStrict(raw string, strip rune) (float64, error) {
	v, ok := parseAmount(raw, strip)
	if !ok {
		return v, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return v, nil
}

// parseAmount returns the permissive value, and whether the whole stripped
// input was consumed.
func parseAmount(raw string, strip rune) (float64, bool) {
	s := strings.ReplaceAll(raw, string(strip), "")
	num, n := numericPrefix(s)
	if num == "" {
		return 0, false
	}
	d, err := decimal.NewFromString(num)
	if err != nil {
		return 0, false
	}
	v := d.InexactFloat64()
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, strings.TrimRight(s[n:], " \t\n\v\f\r") == ""
}

// numericPrefix scans the longest decimal number at the start of s, after
// leading blanks. It returns the number normalized for decimal parsing and
// the byte offset where the scan stopped, or "" and 0 when there is none.
func numericPrefix(s string) (string, int) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	var b strings.Builder
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			b.WriteByte('-')
		}
		i++
	}

	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intDigits := s[start:i]

	var fracDigits string
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		fracDigits = s[i+1 : j]
		if intDigits != "" || fracDigits != "" {
			i = j
		}
	}
	if intDigits == "" && fracDigits == "" {
		return "", 0
	}

	if intDigits == "" {
		intDigits = "0"
	}
	b.WriteString(intDigits)
	if fracDigits != "" {
		b.WriteByte('.')
		b.WriteString(fracDigits)
	}

	// An exponent only counts when at least one digit follows it.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		sign := ""
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			if s[j] == '-' {
				sign = "-"
			}
			j++
		}
		expStart := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > expStart {
			b.WriteString("e" + sign + s[expStart:j])
			i = j
		}
	}
	return b.String(), i
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
