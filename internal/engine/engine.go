package engine

import "github.com/edalganoglu/EmlakMetrik-sub000/pkg/constants"

// Analyze derives one AnalysisResult from an AnalysisInput. It runs the
// three calculators in dependency order: loan amortization, cash-flow and
// returns, then market comparison and projection. The call is synchronous,
// holds no state, and never fails; it is safe to invoke for every slider
// tick of an interactive preview.
func Analyze(input AnalysisInput) AnalysisResult {
	in := input.sanitized()

	loan := calculateLoanFacts(in.Price, in.Financing)
	flow := calculateCashFlow(in, loan)

	var benchmark float64
	if in.RegionalBenchmark != nil {
		benchmark = in.RegionalBenchmark.AvgPricePerArea
	}

	return AnalysisResult{
		LoanAmount:         loan.LoanAmount,
		DownPayment:        loan.DownPayment,
		MonthlyLoanPayment: loan.MonthlyLoanPayment,

		TransferTax:       flow.TransferTax,
		TotalInitialCost:  flow.TotalInitialCost,
		TotalPropertyCost: flow.TotalPropertyCost,

		MonthlyExpenses:  flow.MonthlyExpenses,
		NetMonthlyIncome: flow.NetMonthlyIncome,

		AmortizationYears:       flow.AmortizationYears,
		CashOnCashReturnPercent: flow.CashOnCashReturnPercent,
		GrossRoiPercent:         flow.GrossRoiPercent,
		HeadlineRoiPercent:      flow.HeadlineRoiPercent,

		AnnualPropertyTaxEstimate: in.Price * constants.PropertyTaxRate,
		AnnualMaintenanceEstimate: in.MonthlyRent * constants.MonthsPerYear * constants.MaintenanceRateOfRent,

		Market:     CompareMarket(in.Price, in.PropertyArea, benchmark),
		Projection: ProjectValues(in.Price, in.AppreciationRatePercent, in.ProjectionYearOffsets),

		AppreciationRatePercent: in.AppreciationRatePercent,
		Financing:               in.Financing,

		PolicyVersion: constants.PolicyVersion,
	}
}
