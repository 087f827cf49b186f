// Package format renders prices and dates the way the storefront displays
// them: Chilean pesos with "." grouping and no decimals.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Miles formats an amount with "." thousands grouping, e.g. 10000 -> "10.000".
// This is the canonical unit-price label shape for catalog items.
func Miles(amount float64) string {
	n := int64(math.Round(amount))
	neg := n < 0
	if neg {
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// CLP renders a peso amount with its currency sign, e.g. "$10.000".
func CLP(amount float64) string {
	if amount < 0 {
		return "-$" + Miles(-amount)
	}
	return "$" + Miles(amount)
}

// Date formats a time in a locale-friendly short form.
func Date(t time.Time, lang string) string {
	switch strings.ToLower(lang) {
	case "es":
		return t.Format("02-01-2006")
	default:
		return t.Format("Jan 2, 2006")
	}
}
