package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatCurrency renders an amount in Swiss-franc style: "CHF 1'234.56"
// (apostrophe thousands separator, always 2 decimals).
func FormatCurrency(amount float64) string {
	negative := amount < 0
	cents := int64(math.Round(math.Abs(amount) * 100))

	units := strconv.FormatInt(cents/100, 10)
	var grouped strings.Builder
	for i, digit := range units {
		if i > 0 && (len(units)-i)%3 == 0 {
			grouped.WriteByte('\'')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if negative && cents > 0 {
		sign = "-"
	}

	return fmt.Sprintf("CHF %s%s.%02d", sign, grouped.String(), cents%100)
}

// FormatConsumption renders a consumption figure with one decimal and its
// unit, e.g. "6.5 L/100km".
func FormatConsumption(value float64, unit string) string {
	return fmt.Sprintf("%.1f %s/100km", value, unit)
}

// RoundToFiveRappen rounds an amount to the nearest 0.05 CHF, the smallest
// cash denomination in Switzerland.
func RoundToFiveRappen(amount float64) float64 {
	return math.Round(amount/0.05) * 0.05
}
