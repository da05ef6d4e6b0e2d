package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format renders an amount with thousands separators and no decimals,
// e.g. 550000 -> "550,000".
func Format(amount float64) string {
	return printer.Sprintf("%.0f", amount)
}

// UGX prefixes a formatted amount with the currency, e.g. "UGX 550,000".
func UGX(amount float64) string {
	return "UGX " + Format(amount)
}
