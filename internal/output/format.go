package output

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders whole dollars with US digit grouping, e.g. $1,234,568
func FormatCurrency(amount decimal.Decimal) string {
	dollars := amount.Round(0).IntPart()
	if dollars < 0 {
		return "-$" + printer.Sprintf("%d", -dollars)
	}
	return "$" + printer.Sprintf("%d", dollars)
}

// FormatPercent renders a fractional rate with one decimal place (0.24 -> 24.0%)
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

// FormatYears renders a year count, using "n/a" for zero
func FormatYears(years int) string {
	switch years {
	case 0:
		return "n/a"
	case 1:
		return "1 year"
	default:
		return printer.Sprintf("%d years", years)
	}
}

// divisorOrDash renders a zero divisor (forced liquidation) as a dash
func divisorOrDash(d decimal.Decimal) string {
	if d.IsPositive() {
		return d.StringFixed(1)
	}
	return "-"
}
