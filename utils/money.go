package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatGBP formats an amount in pounds as a string like "£12,800.00".
// Uses comma as thousands separator and always two decimals.
func FormatGBP(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	neg := d.IsNegative()
	if neg {
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	whole, pence, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	// Pre-allocate: digits + separators + sign + £ + pence
	b.Grow(len(whole) + len(whole)/3 + 6)
	if neg {
		b.WriteString("-£")
	} else {
		b.WriteString("£")
	}

	// Insert separators from the left.
	rem := len(whole) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(whole[:rem])
	for i := rem; i < len(whole); i += 3 {
		b.WriteByte(',')
		b.WriteString(whole[i : i+3])
	}
	b.WriteByte('.')
	b.WriteString(pence)

	return b.String()
}

// FormatQuantity formats a measured quantity without trailing zeros, e.g. 0.045 or 25.
func FormatQuantity(v float64, places int32) string {
	return strconv.FormatFloat(decimal.NewFromFloat(v).Round(places).InexactFloat64(), 'f', -1, 64)
}
