package engine

import (
	"math"

	"github.com/edalganoglu/EmlakMetrik-sub000/pkg/constants"
)

// CompareMarket relates the property's unit price to a regional benchmark.
// Returns nil unless both the property area and the benchmark are positive;
// the market facts are present as a unit or not at all.
func CompareMarket(price, propertyArea, benchmarkPricePerArea float64) *MarketComparison {
	if propertyArea <= 0 || benchmarkPricePerArea <= 0 {
		return nil
	}
	pricePerArea := price / propertyArea
	return &MarketComparison{
		PricePerArea:          pricePerArea,
		BenchmarkPricePerArea: benchmarkPricePerArea,
		DifferencePercent:     (pricePerArea - benchmarkPricePerArea) / benchmarkPricePerArea * constants.PercentageMultiplier,
		// Strict comparison: a property exactly at the benchmark is not
		// below market.
		IsBelowMarket: pricePerArea < benchmarkPricePerArea,
	}
}

// ProjectValue returns the compound-growth property value after yearOffset
// years at the given annual appreciation rate. Zero and negative rates model
// stagnation and depreciation.
func ProjectValue(price, appreciationRatePercent float64, yearOffset int) float64 {
	growth := 1 + appreciationRatePercent/constants.PercentageMultiplier
	return price * math.Pow(growth, float64(yearOffset))
}

// ProjectValues computes the value projection across the given year offsets.
// An empty offsets slice falls back to the default horizon.
func ProjectValues(price, appreciationRatePercent float64, yearOffsets []int) []ProjectionPoint {
	if len(yearOffsets) == 0 {
		yearOffsets = constants.DefaultProjectionYearOffsets
	}
	points := make([]ProjectionPoint, len(yearOffsets))
	for i, offset := range yearOffsets {
		points[i] = ProjectionPoint{
			YearOffset: offset,
			Value:      ProjectValue(price, appreciationRatePercent, offset),
		}
	}
	return points
}
