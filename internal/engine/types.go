// Package engine implements the investment calculation engine: loan
// amortization, cash-flow and return metrics, market comparison, and
// multi-year value projection. Every function is pure and never returns an
// error; malformed numeric input is absorbed as degenerate-but-defined
// output so that interactive previews can call the engine an unbounded
// number of times without failing.
package engine

import (
	"github.com/edalganoglu/EmlakMetrik-sub000/pkg/constants"
	"github.com/edalganoglu/EmlakMetrik-sub000/pkg/mathutil"
)

// Financing describes how a purchase is funded. The zero value means an
// all-cash purchase.
type Financing struct {
	UseLoan bool `json:"useLoan"`
	// DownPaymentPercent is the down payment as a percentage of price (10–50).
	DownPaymentPercent float64 `json:"downPaymentPercent,omitempty"`
	// MonthlyInterestRate is the loan rate per month in percent (e.g. 2.49).
	MonthlyInterestRate float64 `json:"monthlyInterestRate,omitempty"`
	// TermMonths is the loan term in months (12–180).
	TermMonths int `json:"termMonths,omitempty"`
}

// RegionalBenchmark carries the market average for the property's location.
type RegionalBenchmark struct {
	// AvgPricePerArea is the regional average price per m².
	AvgPricePerArea float64 `json:"avgPricePerArea"`
}

// AnalysisInput is the immutable request to the engine, constructed once per
// user action.
type AnalysisInput struct {
	Price          float64 `json:"price"`
	MonthlyRent    float64 `json:"monthlyRent"`
	MonthlyDues    float64 `json:"monthlyDues"`
	RenovationCost float64 `json:"renovationCost"`
	// PropertyArea is the living area in m²; 0 disables per-area metrics.
	PropertyArea float64   `json:"propertyArea"`
	Financing    Financing `json:"financing"`
	// AppreciationRatePercent is the assumed annual appreciation. Zero and
	// negative values are valid (stagnation, depreciation).
	AppreciationRatePercent float64 `json:"appreciationRatePercent"`
	// RegionalBenchmark is nil when no regional match exists.
	RegionalBenchmark *RegionalBenchmark `json:"regionalBenchmark,omitempty"`
	// ProjectionYearOffsets overrides constants.DefaultProjectionYearOffsets
	// when non-empty.
	ProjectionYearOffsets []int `json:"projectionYearOffsets,omitempty"`
}

// MarketComparison relates the property's unit price to the regional
// benchmark. Present as a unit or entirely absent, never partially filled.
type MarketComparison struct {
	PricePerArea          float64 `json:"pricePerArea"`
	BenchmarkPricePerArea float64 `json:"benchmarkPricePerArea"`
	DifferencePercent     float64 `json:"differencePercent"`
	IsBelowMarket         bool    `json:"isBelowMarket"`
}

// ProjectionPoint is the projected property value at a future year offset.
type ProjectionPoint struct {
	YearOffset int     `json:"yearOffset"`
	Value      float64 `json:"value"`
}

// AnalysisResult is the immutable output of one engine invocation. It is
// persisted verbatim inside the analysis parameters blob and re-rendered by
// report and chart components, so field names are load-bearing.
type AnalysisResult struct {
	// Loan facts; all zero when no financing is used.
	LoanAmount         float64 `json:"loanAmount"`
	DownPayment        float64 `json:"downPayment"`
	MonthlyLoanPayment float64 `json:"monthlyLoanPayment"`

	// Cost facts.
	TransferTax       float64 `json:"transferTax"`
	TotalInitialCost  float64 `json:"totalInitialCost"`
	TotalPropertyCost float64 `json:"totalPropertyCost"`

	// Flow facts. NetMonthlyIncome is signed; negative denotes shortfall.
	MonthlyExpenses  float64 `json:"monthlyExpenses"`
	NetMonthlyIncome float64 `json:"netMonthlyIncome"`

	// Return facts.
	AmortizationYears       float64 `json:"amortizationYears"`
	CashOnCashReturnPercent float64 `json:"cashOnCashReturnPercent"`
	GrossRoiPercent         float64 `json:"grossRoiPercent"`
	HeadlineRoiPercent      float64 `json:"headlineRoiPercent"`

	// Advisory annual estimates; informational, excluded from the monthly
	// cash-flow facts above.
	AnnualPropertyTaxEstimate float64 `json:"annualPropertyTaxEstimate"`
	AnnualMaintenanceEstimate float64 `json:"annualMaintenanceEstimate"`

	// Market facts; nil when no benchmark or no property area.
	Market *MarketComparison `json:"market,omitempty"`

	// Projection holds the compound value projection over the horizon.
	Projection []ProjectionPoint `json:"projection"`

	// Echoed inputs needed for downstream rendering.
	AppreciationRatePercent float64   `json:"appreciationRatePercent"`
	Financing               Financing `json:"financing"`

	// PolicyVersion identifies the policy-constant set used to produce this
	// result.
	PolicyVersion int `json:"policyVersion"`
}

// sanitized returns a copy of the input with non-finite and negative numeric
// values normalized to zero and financing terms clamped to their bounds.
// Inputs are never rejected.
func (in AnalysisInput) sanitized() AnalysisInput {
	out := in
	out.Price = mathutil.SanitizeNonNegative(in.Price)
	out.MonthlyRent = mathutil.SanitizeNonNegative(in.MonthlyRent)
	out.MonthlyDues = mathutil.SanitizeNonNegative(in.MonthlyDues)
	out.RenovationCost = mathutil.SanitizeNonNegative(in.RenovationCost)
	out.PropertyArea = mathutil.SanitizeNonNegative(in.PropertyArea)
	if !mathutil.IsFinite(in.AppreciationRatePercent) {
		out.AppreciationRatePercent = 0
	}
	if in.Financing.UseLoan {
		out.Financing.DownPaymentPercent = mathutil.Clamp(
			in.Financing.DownPaymentPercent,
			constants.MinDownPaymentPercent, constants.MaxDownPaymentPercent)
		out.Financing.MonthlyInterestRate = mathutil.Clamp(
			in.Financing.MonthlyInterestRate,
			constants.MinMonthlyInterestRatePercent, constants.MaxMonthlyInterestRatePercent)
		out.Financing.TermMonths = mathutil.ClampInt(
			in.Financing.TermMonths,
			constants.MinTermMonths, constants.MaxTermMonths)
	} else {
		out.Financing = Financing{}
	}
	if in.RegionalBenchmark != nil {
		bench := *in.RegionalBenchmark
		bench.AvgPricePerArea = mathutil.SanitizeNonNegative(bench.AvgPricePerArea)
		out.RegionalBenchmark = &bench
	}
	return out
}
