// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatMoney formats an amount as dollars and cents with comma separators.
// e.g., 1234.5 -> "$1,234.50", -12 -> "-$12.00"
func FormatMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + FormatMoney(d.Neg())
	}

	fixed := d.StringFixed(2)
	whole, cents, _ := strings.Cut(fixed, ".")
	return "$" + groupThousands(whole) + "." + cents
}

// FormatRate formats an annual rate given as a fraction.
// e.g., 0.0385 -> "3.85%"
func FormatRate(apy decimal.Decimal) string {
	return apy.Mul(hundred).StringFixed(2) + "%"
}

// FormatDays formats a transfer time in days
func FormatDays(days int) string {
	switch days {
	case 0:
		return "instant"
	case 1:
		return "1 day"
	default:
		return strconv.Itoa(days) + " days"
	}
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
