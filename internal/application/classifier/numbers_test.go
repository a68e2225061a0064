package classifier

import (
	"testing"
)

func TestNormalizeNumbers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"spelled thousand", "ten thousand rupees", "10000 rupees"},
		{"digit with scale word", "i have 10 thousand saved", "i have 10000 saved"},
		{"fractional scale", "property worth 1.5 lakh", "property worth 150000"},
		{"crore scale", "worth 2 crore", "worth 20000000"},
		{"hyphenated units", "twenty-five hundred", "2500"},
		{"hundred and tail", "one hundred and fifty", "150"},
		{"grouping commas stripped", "worth 1,00,000 today", "worth 100000 today"},
		{"article a with scale", "a thousand rupees", "1000 rupees"},
		{"article a without scale stays", "a coffee for 50", "a coffee for 50"},
		{"plain digits untouched", "spent 200 on lunch", "spent 200 on lunch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeNumbers(tt.input); got != tt.expected {
				t.Errorf("normalizeNumbers(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFindAmountsExcludesPercentages(t *testing.T) {
	amounts := findAmounts("loan of 50000 at 7.5% with 2000 emi")
	if len(amounts) != 2 {
		t.Fatalf("got %d amounts, want 2 (percentage excluded)", len(amounts))
	}
	if amounts[0].String() != "50000" || amounts[1].String() != "2000" {
		t.Errorf("amounts = %v, want [50000 2000]", amounts)
	}
}

func TestLargestSmallest(t *testing.T) {
	amounts := findAmounts("2000 out of 8000")

	max, ok := largest(amounts)
	if !ok || max.String() != "8000" {
		t.Errorf("largest = %s, want 8000", max)
	}
	min, ok := smallest(amounts)
	if !ok || min.String() != "2000" {
		t.Errorf("smallest = %s, want 2000", min)
	}

	if _, ok := largest(nil); ok {
		t.Error("largest(nil) reported ok")
	}
}
