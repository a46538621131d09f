// internal/utils/format.go
package utils

import (
	"fmt"
	"strings"
)

// FormatPrice renders an amount with thousand separators and two decimals,
// e.g. 1299.9 -> "1,299.90". Currency-minor-unit agnostic; the caller decides
// the symbol.
func FormatPrice(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	parts := strings.SplitN(s, ".", 2)
	whole := parts[0]

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String() + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}
