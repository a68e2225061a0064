// Package valueobject contains domain value types shared across layers.
package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount extracts a numeric value from a locale-formatted display
// string such as "₹10,000.50" or "$1,200". Every character that is not a
// digit, decimal point or leading minus is stripped before parsing.
// Unparseable input yields zero so summary math never fails on bad data.
func ParseAmount(s string) decimal.Decimal {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == '-' && i == strings.Index(s, "-") && b.Len() == 0:
			b.WriteRune(r)
		}
	}

	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Formatter renders amounts and percentages as display strings for one
// locale. The zero value is unusable; construct with NewFormatter.
type Formatter struct {
	symbol         string
	indianGrouping bool
}

// NewFormatter creates a Formatter for the given currency symbol. With
// indianGrouping the integer part is grouped 12,34,567 style instead of
// 1,234,567.
func NewFormatter(symbol string, indianGrouping bool) Formatter {
	return Formatter{symbol: symbol, indianGrouping: indianGrouping}
}

// DefaultFormatter is the convention the dashboard ships with: Indian
// rupees with lakh/crore digit grouping.
func DefaultFormatter() Formatter {
	return NewFormatter("₹", true)
}

// Currency renders d as a display string, e.g. "₹1,00,000".
func (f Formatter) Currency(d decimal.Decimal) string {
	neg := d.IsNegative()
	abs := d.Abs()

	intPart := abs.Truncate(0)
	frac := abs.Sub(intPart)

	out := f.group(intPart.String())
	if !frac.IsZero() {
		// Two decimal places, without the leading "0".
		out += frac.StringFixed(2)[1:]
	}

	if neg {
		return "-" + f.symbol + out
	}
	return f.symbol + out
}

// Percent renders d as a display string, e.g. "7.5%".
func (f Formatter) Percent(d decimal.Decimal) string {
	s := d.String()
	return s + "%"
}

func (f Formatter) group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	if !f.indianGrouping {
		var parts []string
		for len(digits) > 3 {
			parts = append([]string{digits[len(digits)-3:]}, parts...)
			digits = digits[:len(digits)-3]
		}
		return digits + "," + strings.Join(parts, ",")
	}

	// Indian grouping: last three digits, then groups of two.
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	return strings.Join(parts, ",") + "," + tail
}
