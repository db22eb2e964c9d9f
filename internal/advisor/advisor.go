// Package advisor recommends financing terms that fit a buyer's monthly
// budget, backing the term slider in the financing form.
package advisor

import (
	"errors"

	"github.com/edalganoglu/EmlakMetrik-sub000/internal/engine"
	"github.com/edalganoglu/EmlakMetrik-sub000/pkg/constants"
)

// TermRequest asks for the shortest loan term whose installment fits the
// given monthly budget.
type TermRequest struct {
	// Principal is the loan amount (price minus down payment).
	Principal float64 `json:"principal"`
	// MonthlyInterestRatePercent is the loan rate per month (e.g. 2.49).
	MonthlyInterestRatePercent float64 `json:"monthlyInterestRatePercent"`
	// MinTermMonths and MaxTermMonths bound the search range.
	MinTermMonths int `json:"minTermMonths"`
	MaxTermMonths int `json:"maxTermMonths"`
	// MaxMonthlyPayment is the installment budget.
	MaxMonthlyPayment float64 `json:"maxMonthlyPayment"`
}

// TermRecommendation is the advisor's answer. When Affordable is false no
// term in the range fits and the remaining fields describe the cheapest
// option (the longest term).
type TermRecommendation struct {
	Affordable     bool    `json:"affordable"`
	TermMonths     int     `json:"termMonths"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayment   float64 `json:"totalPayment"`
	TotalInterest  float64 `json:"totalInterest"`
}

// RecommendTerm scans the term range ascending and returns the shortest
// term whose installment fits the budget; the shortest affordable term also
// minimizes total interest for a fixed rate.
func RecommendTerm(req TermRequest) (TermRecommendation, error) {
	if req.Principal <= 0 {
		return TermRecommendation{}, errors.New("principal must be positive")
	}
	if req.MonthlyInterestRatePercent < 0 {
		return TermRecommendation{}, errors.New("interest rate must not be negative")
	}
	if req.MinTermMonths <= 0 || req.MaxTermMonths <= 0 {
		return TermRecommendation{}, errors.New("term range must be positive")
	}
	if req.MinTermMonths > req.MaxTermMonths {
		return TermRecommendation{}, errors.New("minimum term exceeds maximum term")
	}
	if req.MaxTermMonths > constants.MaxTermMonths {
		return TermRecommendation{}, errors.New("maximum term exceeds the supported limit")
	}
	if req.MaxMonthlyPayment <= 0 {
		return TermRecommendation{}, errors.New("monthly payment budget must be positive")
	}

	rate := req.MonthlyInterestRatePercent / constants.PercentageMultiplier

	for term := req.MinTermMonths; term <= req.MaxTermMonths; term++ {
		payment := engine.MonthlyLoanPayment(req.Principal, rate, term)
		if payment > req.MaxMonthlyPayment {
			continue
		}
		return describeTerm(req.Principal, payment, term, true), nil
	}

	// Nothing fits; report the cheapest installment so the caller can show
	// how far off the budget is.
	payment := engine.MonthlyLoanPayment(req.Principal, rate, req.MaxTermMonths)
	return describeTerm(req.Principal, payment, req.MaxTermMonths, false), nil
}

func describeTerm(principal, payment float64, term int, affordable bool) TermRecommendation {
	total := payment * float64(term)
	return TermRecommendation{
		Affordable:     affordable,
		TermMonths:     term,
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  total - principal,
	}
}
