package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fahrwerk/pricing/internal/domain"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{name: "zero", amount: 0, expected: "CHF 0.00"},
		{name: "small amount", amount: 5.35, expected: "CHF 5.35"},
		{name: "thousands separator", amount: 1234.56, expected: "CHF 1'234.56"},
		{name: "millions", amount: 1234567.891, expected: "CHF 1'234'567.89"},
		{name: "rounds to two decimals", amount: 0.866, expected: "CHF 0.87"},
		{name: "negative", amount: -5.35, expected: "CHF -5.35"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, domain.FormatCurrency(tt.amount))
		})
	}
}

func TestFormatConsumption(t *testing.T) {
	require.Equal(t, "6.5 L/100km", domain.FormatConsumption(6.5, "L"))
	require.Equal(t, "18.0 kWh/100km", domain.FormatConsumption(18, "kWh"))
	require.Equal(t, "7.6 L/100km", domain.FormatConsumption(7.5625, "L"))
}

func TestRoundToFiveRappen(t *testing.T) {
	tests := []struct {
		amount   float64
		expected float64
	}{
		{amount: 1.02, expected: 1.00},
		{amount: 1.03, expected: 1.05},
		{amount: 5.35, expected: 5.35},
		{amount: 0.87, expected: 0.85},
		{amount: 0.88, expected: 0.90},
		{amount: 0, expected: 0},
	}

	for _, tt := range tests {
		require.InDelta(t, tt.expected, domain.RoundToFiveRappen(tt.amount), 0.0001)
	}
}
