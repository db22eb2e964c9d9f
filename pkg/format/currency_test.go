package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Small amount", 500.0, "₺500,00"},
		{"Thousands separator", 1234.56, "₺1.234,56"},
		{"Millions", 2000000.0, "₺2.000.000,00"},
		{"Negative", -1234.56, "-₺1.234,56"},
		{"Zero", 0, "₺0,00"},
		{"Rounded decimals", 42037.119, "₺42.037,12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %q, want %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"No symbol", 1234.56, "1.234,56"},
		{"Negative sign before digits", -987654.3, "-987.654,30"},
		{"Zero", 0, "0,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumericCurrency(tt.amount); got != tt.expected {
				t.Errorf("NumericCurrency(%v) = %q, want %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"Typical yield", 8.65, "%8,65"},
		{"Whole number", 50.0, "%50,00"},
		{"Negative", -1.15, "%-1,15"},
		{"Zero", 0, "%0,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.value); got != tt.expected {
				t.Errorf("Percent(%v) = %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}
