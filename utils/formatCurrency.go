package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.English)

// FormatCurrency renders a whole-rupee amount the way the portal displays money,
// e.g. "PKR 2,500,000". Fractions are dropped; all portal amounts are whole rupees.
func FormatCurrency(amount decimal.Decimal) string {
	return currencyPrinter.Sprintf("PKR %d", amount.IntPart())
}

// FormatDate renders a date for display, e.g. "15 Jan 2024".
func FormatDate(d DateOnly) string {
	return d.Time().Format("2 Jan 2006")
}
