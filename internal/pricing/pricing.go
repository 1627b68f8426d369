// Package pricing computes and formats booking amounts. Amounts are plain
// numbers in whole currency units (150 means $150.00), matching the persisted
// booking record.
package pricing

import (
	"fmt"
	"strings"
)

// Total returns pricePerNight multiplied by the night count. A non-positive
// night count yields zero, never a negative amount.
func Total(pricePerNight float64, nights int) float64 {
	if nights < 0 {
		nights = 0
	}
	return pricePerNight * float64(nights)
}

// FormatUSD renders an amount with a fixed en-US locale, e.g. "$1,250.00".
// The locale is fixed so computed totals are deterministic.
func FormatUSD(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)
	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	if negative {
		return "-$" + b.String() + frac
	}
	return "$" + b.String() + frac
}
