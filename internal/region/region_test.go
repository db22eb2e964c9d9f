package region

import (
	"context"
	"testing"
)

func TestLocationNormalized(t *testing.T) {
	tests := []struct {
		name     string
		input    Location
		expected Location
	}{
		{
			name:     "Trims and lowercases",
			input:    Location{City: " Istanbul ", District: "BEŞİKTAŞ", Neighborhood: " Moda"},
			expected: Location{City: "istanbul", District: "beşiktaş", Neighborhood: "moda"},
		},
		{
			name:     "Empty stays empty",
			input:    Location{},
			expected: Location{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.Normalized(); got != tt.expected {
				t.Errorf("Normalized() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestCountryFallback(t *testing.T) {
	bench := CountryFallback()

	if bench.MatchLevel != MatchCountry {
		t.Errorf("MatchLevel = %s, want %s", bench.MatchLevel, MatchCountry)
	}
	if bench.AvgPricePerArea != 35000 {
		t.Errorf("AvgPricePerArea = %.2f, want 35000", bench.AvgPricePerArea)
	}
	if bench.AvgDues != 500 {
		t.Errorf("AvgDues = %.2f, want 500", bench.AvgDues)
	}
	if bench.AppreciationRatePercent != 50 {
		t.Errorf("AppreciationRatePercent = %.2f, want 50", bench.AppreciationRatePercent)
	}
}

func TestStaticProviderAlwaysAnswers(t *testing.T) {
	provider := StaticProvider{}

	locations := []Location{
		{},
		{City: "istanbul"},
		{City: "ankara", District: "çankaya", Neighborhood: "bahçelievler"},
	}
	for _, loc := range locations {
		bench, err := provider.Lookup(context.Background(), loc)
		if err != nil {
			t.Fatalf("Lookup(%+v) returned error: %v", loc, err)
		}
		if bench.MatchLevel != MatchCountry {
			t.Errorf("Lookup(%+v).MatchLevel = %s, want %s", loc, bench.MatchLevel, MatchCountry)
		}
	}
}
