package format

import (
	"math"

	"github.com/edalganoglu/EmlakMetrik-sub000/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// The Turkish locale groups thousands with dots and marks decimals with a
// comma (e.g., 42.037,12).
var printer = message.NewPrinter(language.Turkish)

// Currency returns a currency string with a lira sign and thousands separators (e.g., "-₺1.234,56").
func Currency(amount float64) string {
	amount = mathutil.Round(amount)
	if amount < 0 {
		return "-₺" + printer.Sprintf("%.2f", math.Abs(amount))
	}
	return "₺" + printer.Sprintf("%.2f", amount)
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1.234,56").
func NumericCurrency(amount float64) string {
	amount = mathutil.Round(amount)
	if amount < 0 {
		return "-" + printer.Sprintf("%.2f", math.Abs(amount))
	}
	return printer.Sprintf("%.2f", amount)
}

// Percent returns a percentage string with two decimals (e.g., "%8,65").
func Percent(value float64) string {
	return "%" + printer.Sprintf("%.2f", value)
}
