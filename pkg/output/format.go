// Package output provides utilities for formatting and displaying analysis
// results.
package output

import (
	"fmt"
	"strings"

	"github.com/edalganoglu/EmlakMetrik-sub000/internal/engine"
	"github.com/edalganoglu/EmlakMetrik-sub000/pkg/format"
)

// Report pairs a property name with its analysis result for rendering.
type Report struct {
	Name   string
	Result engine.AnalysisResult
}

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(reports []Report) {
	for _, report := range reports {
		result := report.Result
		fmt.Printf("--- Results for property %s ---\n", report.Name)
		if result.Financing.UseLoan {
			fmt.Printf("Down payment         | %s (%.0f%%)\n",
				format.Currency(result.DownPayment), result.Financing.DownPaymentPercent)
			fmt.Printf("Loan amount          | %s\n", format.Currency(result.LoanAmount))
			fmt.Printf("Monthly installment  | %s (%d months at %s/mo)\n",
				format.Currency(result.MonthlyLoanPayment), result.Financing.TermMonths,
				format.Percent(result.Financing.MonthlyInterestRate))
		} else {
			fmt.Printf("Purchase             | %s all cash\n", format.Currency(result.DownPayment))
		}
		fmt.Printf("Transfer tax         | %s\n", format.Currency(result.TransferTax))
		fmt.Printf("Total initial cost   | %s\n", format.Currency(result.TotalInitialCost))
		fmt.Printf("Total property cost  | %s\n", format.Currency(result.TotalPropertyCost))
		fmt.Printf("Monthly expenses     | %s\n", format.Currency(result.MonthlyExpenses))
		fmt.Printf("Net monthly income   | %s\n", format.Currency(result.NetMonthlyIncome))
		fmt.Printf("Amortization         | %s years\n", format.NumericCurrency(result.AmortizationYears))
		fmt.Printf("Cash-on-cash return  | %s\n", format.Percent(result.CashOnCashReturnPercent))
		fmt.Printf("Gross ROI            | %s\n", format.Percent(result.GrossRoiPercent))
		fmt.Printf("Headline ROI         | %s\n", format.Percent(result.HeadlineRoiPercent))
		if result.Market != nil {
			direction := "above"
			if result.Market.IsBelowMarket {
				direction = "below"
			}
			fmt.Printf("Market               | %s/m² vs %s/m² regional (%s %s market)\n",
				format.Currency(result.Market.PricePerArea),
				format.Currency(result.Market.BenchmarkPricePerArea),
				format.Percent(result.Market.DifferencePercent), direction)
		}
		if len(result.Projection) > 0 {
			fmt.Printf("Projection (%s/yr)\n", format.Percent(result.AppreciationRatePercent))
			for _, point := range result.Projection {
				fmt.Printf("  +%d years           | %s\n", point.YearOffset, format.Currency(point.Value))
			}
		}
		if len(reports) > 1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format, one row per property.
// Values keep plain dot-decimal formatting so the rows stay machine-readable.
func CsvFormat(reports []Report) {
	headers := []string{
		"name", "downPayment", "loanAmount", "monthlyLoanPayment",
		"transferTax", "totalInitialCost", "totalPropertyCost",
		"monthlyExpenses", "netMonthlyIncome",
		"amortizationYears", "cashOnCashReturnPercent", "grossRoiPercent", "headlineRoiPercent",
		"pricePerArea", "benchmarkPricePerArea", "differencePercent",
	}
	fmt.Printf("%s\n", `"`+strings.Join(headers, `","`)+`"`)

	for _, report := range reports {
		result := report.Result
		fmt.Printf(`"%s"`, report.Name)
		values := []float64{
			result.DownPayment, result.LoanAmount, result.MonthlyLoanPayment,
			result.TransferTax, result.TotalInitialCost, result.TotalPropertyCost,
			result.MonthlyExpenses, result.NetMonthlyIncome,
			result.AmortizationYears, result.CashOnCashReturnPercent,
			result.GrossRoiPercent, result.HeadlineRoiPercent,
		}
		for _, value := range values {
			fmt.Printf(`,"%.2f"`, value)
		}
		if result.Market != nil {
			fmt.Printf(`,"%.2f","%.2f","%.2f"`,
				result.Market.PricePerArea, result.Market.BenchmarkPricePerArea, result.Market.DifferencePercent)
		} else {
			fmt.Printf(`,"","",""`)
		}
		fmt.Printf("\n")
	}
}
