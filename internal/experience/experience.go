// Package experience converts free-text duration cells into the canonical
// "N months" / "N years" / "N.N years" representation.
package experience

import (
	"fmt"

	"github.com/shopspring/decimal"

	"rosterxtract/pdf-roster/internal/textutils"
)

// monthsPerYear is the divisor for the months-to-years conversion.
var monthsPerYear = decimal.NewFromInt(12)

// Normalize converts a raw duration cell into canonical form. The first digit
// run in the text is taken as a month count: values below 12 render as
// "{n} months", exact multiples of 12 as "{n} years", and everything else as
// "{n.n} years" with exactly one decimal place, midpoints rounding to even.
// Text without any digits is returned unchanged, since there is nothing to
// normalize. The function is total and never fails.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	months, ok := textutils.ExtractNumber(raw)
	if !ok || months == 0 {
		return raw
	}

	if months < 12 {
		return fmt.Sprintf("%d months", months)
	}

	if months%12 == 0 {
		return fmt.Sprintf("%d years", months/12)
	}

	years := decimal.NewFromInt(int64(months)).Div(monthsPerYear)
	return fmt.Sprintf("%s years", years.StringFixedBank(1))
}

// FormatYears renders an already-in-years decimal value, as produced by the
// decimal-number inference rule.
func FormatYears(value float64) string {
	return fmt.Sprintf("%v years", value)
}
