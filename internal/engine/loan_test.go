package engine

import (
	"math"
	"testing"
)

func TestMonthlyLoanPayment(t *testing.T) {
	tests := []struct {
		name          string
		principal     float64
		monthlyRate   float64
		termMonths    int
		expectedRange []float64 // [min, max] expected range
	}{
		{
			name:          "Financed apartment purchase",
			principal:     1600000,
			monthlyRate:   0.0249,
			termMonths:    120,
			expectedRange: []float64{42000, 42100}, // Around ₺42,037
		},
		{
			name:          "Short high-rate loan",
			principal:     500000,
			monthlyRate:   0.05,
			termMonths:    12,
			expectedRange: []float64{56000, 57000}, // Around ₺56,413
		},
		{
			name:          "Zero rate loan",
			principal:     120000,
			monthlyRate:   0,
			termMonths:    60,
			expectedRange: []float64{2000, 2000}, // Exactly ₺2,000 straight-line
		},
		{
			name:          "Zero principal",
			principal:     0,
			monthlyRate:   0.0249,
			termMonths:    120,
			expectedRange: []float64{0, 0},
		},
		{
			name:          "Zero term",
			principal:     1000000,
			monthlyRate:   0.0249,
			termMonths:    0,
			expectedRange: []float64{0, 0},
		},
		{
			name:          "Negative term",
			principal:     1000000,
			monthlyRate:   0.0249,
			termMonths:    -12,
			expectedRange: []float64{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MonthlyLoanPayment(tt.principal, tt.monthlyRate, tt.termMonths)

			if math.IsNaN(result) || math.IsInf(result, 0) {
				t.Fatalf("MonthlyLoanPayment() = %v, expected a finite value", result)
			}
			if result < tt.expectedRange[0] || result > tt.expectedRange[1] {
				t.Errorf("MonthlyLoanPayment() = %.2f, expected range [%.2f, %.2f]",
					result, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}

func TestMonthlyLoanPaymentZeroRateIsExactStraightLine(t *testing.T) {
	// The annuity denominator collapses to zero at a zero rate; the
	// straight-line fallback must be exact, not approximate.
	principals := []float64{1, 999.99, 120000, 2500000}
	terms := []int{1, 12, 120, 180}

	for _, principal := range principals {
		for _, term := range terms {
			got := MonthlyLoanPayment(principal, 0, term)
			want := principal / float64(term)
			if got != want {
				t.Errorf("MonthlyLoanPayment(%.2f, 0, %d) = %v, want %v",
					principal, term, got, want)
			}
		}
	}
}

func TestCalculateLoanFacts(t *testing.T) {
	tests := []struct {
		name                string
		price               float64
		financing           Financing
		expectedDownPayment float64
		expectedLoanAmount  float64
	}{
		{
			name:                "No financing models full down payment",
			price:               2000000,
			financing:           Financing{UseLoan: false},
			expectedDownPayment: 2000000,
			expectedLoanAmount:  0,
		},
		{
			name:  "20 percent down payment",
			price: 2000000,
			financing: Financing{
				UseLoan:             true,
				DownPaymentPercent:  20,
				MonthlyInterestRate: 2.49,
				TermMonths:          120,
			},
			expectedDownPayment: 400000,
			expectedLoanAmount:  1600000,
		},
		{
			name:  "50 percent down payment",
			price: 1000000,
			financing: Financing{
				UseLoan:             true,
				DownPaymentPercent:  50,
				MonthlyInterestRate: 1.5,
				TermMonths:          60,
			},
			expectedDownPayment: 500000,
			expectedLoanAmount:  500000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts := calculateLoanFacts(tt.price, tt.financing)

			if math.Abs(facts.DownPayment-tt.expectedDownPayment) > 0.01 {
				t.Errorf("DownPayment = %.2f, want %.2f", facts.DownPayment, tt.expectedDownPayment)
			}
			if math.Abs(facts.LoanAmount-tt.expectedLoanAmount) > 0.01 {
				t.Errorf("LoanAmount = %.2f, want %.2f", facts.LoanAmount, tt.expectedLoanAmount)
			}
			// The split must reassemble into the price.
			if math.Abs(facts.LoanAmount+facts.DownPayment-tt.price) > 0.01 {
				t.Errorf("LoanAmount + DownPayment = %.2f, want %.2f",
					facts.LoanAmount+facts.DownPayment, tt.price)
			}
			if !tt.financing.UseLoan && facts.MonthlyLoanPayment != 0 {
				t.Errorf("MonthlyLoanPayment = %.2f without financing, want 0", facts.MonthlyLoanPayment)
			}
		})
	}
}
