package engine

import (
	"math"

	"github.com/edalganoglu/EmlakMetrik-sub000/pkg/constants"
	"github.com/edalganoglu/EmlakMetrik-sub000/pkg/mathutil"
)

// LoanFacts holds the financing-derived values for a purchase.
type LoanFacts struct {
	LoanAmount         float64
	DownPayment        float64
	MonthlyLoanPayment float64
}

// MonthlyLoanPayment calculates the fixed monthly installment for an
// amortizing loan using the standard annuity formula. monthlyRate is a
// fraction (0.0249 for 2.49%), not a percentage.
func MonthlyLoanPayment(principal, monthlyRate float64, termMonths int) float64 {
	if principal <= 0 || termMonths <= 0 {
		return 0
	}
	if monthlyRate <= 0 {
		// The annuity denominator (1+r)^n - 1 is zero at r = 0, so a zero
		// rate must fall back to a straight-line split.
		return principal / float64(termMonths)
	}
	power := math.Pow(1.00+monthlyRate, float64(termMonths))
	return principal * monthlyRate * power / (power - 1.00)
}

// calculateLoanFacts splits the purchase between loan and down payment. An
// unfinanced purchase is modeled as a 100% down payment with no loan.
func calculateLoanFacts(price float64, fin Financing) LoanFacts {
	if !fin.UseLoan {
		return LoanFacts{DownPayment: price}
	}
	downPayment := mathutil.ApplyPercentage(price, fin.DownPaymentPercent)
	loanAmount := price - downPayment
	monthlyRate := fin.MonthlyInterestRate / constants.PercentageMultiplier
	return LoanFacts{
		LoanAmount:         loanAmount,
		DownPayment:        downPayment,
		MonthlyLoanPayment: MonthlyLoanPayment(loanAmount, monthlyRate, fin.TermMonths),
	}
}
