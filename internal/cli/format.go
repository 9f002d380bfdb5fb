// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatMoney formats an amount with two decimals, thousands separators and
// an optional currency code.
// e.g., (1164, "BGN") -> "1,164.00 BGN"
func FormatMoney(amount float64, currency string) string {
	s := humanize.FormatFloat("#,###.##", math.Abs(amount))
	if amount < 0 && s != "0.00" {
		s = "-" + s
	}
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatDistance formats kilometres with separators.
func FormatDistance(km float64) string {
	return humanize.Comma(int64(math.Round(km))) + " km"
}

// FormatRoute joins city names with an arrow.
func FormatRoute(cities []string) string {
	return strings.Join(cities, " → ")
}

// Pluralize returns "1 day", "3 days".
func Pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
