package utils

import (
	"fmt"
	"strings"
)

// FormatCurrency formats an amount in Brazilian Real style:
// 1234.5 -> "R$ 1.234,50"
func FormatCurrency(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	negative := strings.HasPrefix(integerPart, "-")
	if negative {
		integerPart = integerPart[1:]
	}

	// Thousands separator
	var result []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		result = append([]string{integerPart[start:i]}, result...)
	}

	out := "R$ " + strings.Join(result, ".") + "," + decimalPart
	if negative {
		out = "R$ -" + strings.Join(result, ".") + "," + decimalPart
	}
	return out
}
