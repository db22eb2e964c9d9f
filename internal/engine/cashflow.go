package engine

import (
	"github.com/edalganoglu/EmlakMetrik-sub000/pkg/constants"
	"github.com/edalganoglu/EmlakMetrik-sub000/pkg/mathutil"
)

// CashFlowFacts holds the cost, flow, and return metrics for one scenario.
type CashFlowFacts struct {
	TransferTax       float64
	TotalInitialCost  float64
	TotalPropertyCost float64

	MonthlyExpenses  float64
	NetMonthlyIncome float64

	AmortizationYears       float64
	CashOnCashReturnPercent float64
	GrossRoiPercent         float64
	HeadlineRoiPercent      float64
}

// calculateCashFlow derives all cost, flow, and return metrics from the
// property inputs and the loan facts.
func calculateCashFlow(in AnalysisInput, loan LoanFacts) CashFlowFacts {
	var facts CashFlowFacts

	facts.TransferTax = in.Price * constants.TransferTaxRate
	facts.TotalInitialCost = loan.DownPayment + in.RenovationCost + facts.TransferTax
	facts.TotalPropertyCost = in.Price + in.RenovationCost + facts.TransferTax

	facts.MonthlyExpenses = in.MonthlyDues + loan.MonthlyLoanPayment
	facts.NetMonthlyIncome = in.MonthlyRent - facts.MonthlyExpenses

	annualNetIncome := facts.NetMonthlyIncome * constants.MonthsPerYear
	facts.CashOnCashReturnPercent = mathutil.CalculatePercentage(annualNetIncome, facts.TotalInitialCost)

	annualGrossRent := in.MonthlyRent * constants.MonthsPerYear
	facts.GrossRoiPercent = mathutil.CalculatePercentage(annualGrossRent, facts.TotalPropertyCost)

	// Amortization answers "how long to recover the full property cost from
	// operating income" independent of financing: rent net of dues only,
	// debt service excluded.
	operatingIncome := (in.MonthlyRent - in.MonthlyDues) * constants.MonthsPerYear
	facts.AmortizationYears = mathutil.SafeRatio(facts.TotalPropertyCost, operatingIncome)

	// Headline ROI is always a selection between the two computed returns,
	// never a third formula.
	if in.Financing.UseLoan {
		facts.HeadlineRoiPercent = facts.CashOnCashReturnPercent
	} else {
		facts.HeadlineRoiPercent = facts.GrossRoiPercent
	}

	return facts
}
