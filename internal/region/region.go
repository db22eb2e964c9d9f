// Package region resolves regional market benchmarks for a property
// location. Lookups walk a fallback ladder from the most specific match
// (neighborhood) down to the country average, so a caller always receives a
// usable benchmark.
package region

import (
	"context"
	"strings"

	"github.com/edalganoglu/EmlakMetrik-sub000/pkg/constants"
)

// MatchLevel indicates how specific the benchmark match was.
type MatchLevel string

const (
	MatchNeighborhood MatchLevel = "neighborhood"
	MatchDistrict     MatchLevel = "district"
	MatchCity         MatchLevel = "city"
	MatchCountry      MatchLevel = "country"
)

// Location identifies where a property is. Empty fields widen the match.
type Location struct {
	City         string `json:"city"`
	District     string `json:"district"`
	Neighborhood string `json:"neighborhood"`
}

// Normalized returns the location with fields trimmed and lowercased, the
// form used for matching and cache keys.
func (l Location) Normalized() Location {
	normalize := func(s string) string {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return Location{
		City:         normalize(l.City),
		District:     normalize(l.District),
		Neighborhood: normalize(l.Neighborhood),
	}
}

// Benchmark holds the market averages for a location.
type Benchmark struct {
	AvgPricePerArea         float64    `json:"avgPricePerArea"`
	AvgDues                 float64    `json:"avgDues"`
	AppreciationRatePercent float64    `json:"appreciationRatePercent"`
	MatchLevel              MatchLevel `json:"matchLevel"`
}

// Provider resolves a benchmark for a location. Implementations must fall
// back to the country average rather than fail when no data exists.
type Provider interface {
	Lookup(ctx context.Context, loc Location) (Benchmark, error)
}

// CountryFallback is the benchmark used when no regional data matches at
// any ladder level.
func CountryFallback() Benchmark {
	return Benchmark{
		AvgPricePerArea:         constants.FallbackAvgPricePerArea,
		AvgDues:                 constants.FallbackAvgDues,
		AppreciationRatePercent: constants.FallbackAppreciationRatePercent,
		MatchLevel:              MatchCountry,
	}
}

// StaticProvider always answers with the country fallback. Used by the CLI
// when no database is configured.
type StaticProvider struct{}

// Lookup implements Provider.
func (StaticProvider) Lookup(_ context.Context, _ Location) (Benchmark, error) {
	return CountryFallback(), nil
}
