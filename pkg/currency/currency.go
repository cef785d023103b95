// Package currency formats amounts for display in Indian rupees.
package currency

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	OneLakh  = 100_000
	OneCrore = 10_000_000

	Symbol = "₹"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders crores and lakhs with two decimals and smaller amounts with en-IN digit grouping.
func FormatINR(amount int64) string {
	switch {
	case amount >= OneCrore:
		return fmt.Sprintf("%s%.2fCr", Symbol, float64(amount)/OneCrore)
	case amount >= OneLakh:
		return fmt.Sprintf("%s%.2fL", Symbol, float64(amount)/OneLakh)
	default:
		return Symbol + printer.Sprint(number.Decimal(amount))
	}
}

// FormatASCII is FormatINR with the rupee sign spelled out, for outputs limited to Latin-1 fonts.
func FormatASCII(amount int64) string {
	return "Rs. " + FormatINR(amount)[len(Symbol):]
}
