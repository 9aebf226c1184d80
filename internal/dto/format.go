package dto

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatNumber renders an integer with thousands separators for table
// cells the frontend shows verbatim.
func FormatNumber(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		return "-" + out
	}
	return out
}

// FormatCurrency renders a money amount rounded to whole units with
// thousands separators. A zero value renders as "0".
func FormatCurrency(d decimal.Decimal) string {
	return FormatNumber(d.Round(0).IntPart())
}
