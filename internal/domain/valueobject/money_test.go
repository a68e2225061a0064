package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"rupee symbol with indian grouping", "₹1,00,000", "100000"},
		{"dollar with western grouping", "$1,200", "1200"},
		{"decimal places kept", "₹10,000.50", "10000.5"},
		{"plain digits", "4500", "4500"},
		{"negative amount", "-₹500", "-500"},
		{"text around the number", "about 300 rupees", "300"},
		{"empty string yields zero", "", "0"},
		{"no digits yields zero", "not a number", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input)
			if got.String() != tt.expected {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.input, got.String(), tt.expected)
			}
		})
	}
}

func TestFormatterCurrency(t *testing.T) {
	tests := []struct {
		name     string
		f        Formatter
		amount   string
		expected string
	}{
		{"indian lakh grouping", DefaultFormatter(), "100000", "₹1,00,000"},
		{"indian crore grouping", DefaultFormatter(), "12345678", "₹1,23,45,678"},
		{"under four digits ungrouped", DefaultFormatter(), "950", "₹950"},
		{"fractional part fixed to two places", DefaultFormatter(), "1500.5", "₹1,500.50"},
		{"negative keeps sign before symbol", DefaultFormatter(), "-2500", "-₹2,500"},
		{"western grouping", NewFormatter("$", false), "1234567", "$1,234,567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.amount)
			if err != nil {
				t.Fatalf("bad test amount %q: %v", tt.amount, err)
			}
			if got := tt.f.Currency(d); got != tt.expected {
				t.Errorf("Currency(%s) = %q, want %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestFormatterPercent(t *testing.T) {
	f := DefaultFormatter()
	if got := f.Percent(decimal.NewFromFloat(7.5)); got != "7.5%" {
		t.Errorf("Percent(7.5) = %q, want %q", got, "7.5%")
	}
	if got := f.Percent(decimal.NewFromInt(100)); got != "100%" {
		t.Errorf("Percent(100) = %q, want %q", got, "100%")
	}
}

func TestParseAmountRoundTripsCurrency(t *testing.T) {
	f := DefaultFormatter()
	d := decimal.NewFromInt(250000)
	if got := ParseAmount(f.Currency(d)); !got.Equal(d) {
		t.Errorf("round trip gave %s, want %s", got.String(), d.String())
	}
}
