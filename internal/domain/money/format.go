// Package money formats amounts expressed in the smallest currency unit.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format renders an amount with a dollar sign and thousands separators, e.g. $4,500,000.
func Format(amount int64) string {
	if amount < 0 {
		return printer.Sprintf("-$%d", -amount)
	}
	return printer.Sprintf("$%d", amount)
}
