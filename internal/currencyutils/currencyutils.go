// Package currencyutils provides the amount handling used by the statement reshaper.
package currencyutils

import (
	"strings"

	"github.com/shopspring/decimal"
)

var currencyStripper = strings.NewReplacer(",", "", "$", "")

// StripCurrency removes thousands separators and dollar signs from an amount.
// It is a plain string replacement: every other character is kept verbatim,
// so malformed amounts pass through unchanged apart from the removed runes.
//
//	"$1,234.56" -> "1234.56"
//	"-$50"      -> "-50"
func StripCurrency(amount string) string {
	return currencyStripper.Replace(amount)
}

// Total is the result of summing a column of amounts.
type Total struct {
	Sum     decimal.Decimal
	Parsed  int
	Skipped int
}

// SumAmounts adds up every amount that parses as a decimal number.
// Amounts that don't parse are counted in Skipped and otherwise ignored.
func SumAmounts(amounts []string) Total {
	total := Total{Sum: decimal.Zero}
	for _, a := range amounts {
		d, err := decimal.NewFromString(strings.TrimSpace(a))
		if err != nil {
			total.Skipped++
			continue
		}
		total.Sum = total.Sum.Add(d)
		total.Parsed++
	}
	return total
}
