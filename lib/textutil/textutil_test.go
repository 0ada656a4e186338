package textutil

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPercentString(t *testing.T) {
	table := []struct {
		numerator   float64
		denominator float64
		expected    string
	}{
		{numerator: 1, denominator: 4, expected: "25%"},
		{numerator: 5, denominator: 0, expected: "0%"},
		{numerator: 0, denominator: 0, expected: "0%"},
		{numerator: 0, denominator: 7, expected: "0%"},
		{numerator: 2, denominator: 3, expected: "67%"},
		{numerator: 3, denominator: 2, expected: "150%"},
		{numerator: 1, denominator: 8, expected: "13%"},
		{numerator: -1, denominator: 8, expected: "-13%"},
		{numerator: -1, denominator: 1000, expected: "0%"},
	}

	for _, row := range table {
		require.Equal(t, row.expected, PercentString(row.numerator, row.denominator))
	}
}

func TestPercentStringDigits(t *testing.T) {
	table := []struct {
		numerator   float64
		denominator float64
		digits      int
		expected    string
	}{
		{numerator: 1, denominator: 3, digits: 2, expected: "33.33%"},
		{numerator: 2, denominator: 3, digits: 1, expected: "66.7%"},
		{numerator: 1, denominator: 8, digits: 1, expected: "12.5%"},
		{numerator: 1, denominator: 2, digits: 3, expected: "50%"},
		// exact ties go away from zero
		{numerator: 1, denominator: 8, digits: 0, expected: "13%"},
		{numerator: 3, denominator: 8, digits: 0, expected: "38%"},
		{numerator: -3, denominator: 8, digits: 0, expected: "-38%"},
		{numerator: 1, denominator: 3, digits: -1, expected: "30%"},
		{numerator: 1, denominator: 4, digits: -1, expected: "30%"},
		{numerator: -3, denominator: 20, digits: -1, expected: "-20%"},
		{numerator: 1, denominator: 3, digits: -2, expected: "0%"},
		{numerator: 5, denominator: 0, digits: 2, expected: "0%"},
	}

	for _, row := range table {
		require.Equal(t, row.expected, PercentStringDigits(row.numerator, row.denominator, row.digits))
	}
}

func TestPercentStringNonFinite(t *testing.T) {
	require.Equal(t, "+Inf%", PercentString(math.Inf(1), 1))
	require.Equal(t, "NaN%", PercentString(math.NaN(), 1))
}

func TestFormatRoundedExactValue(t *testing.T) {
	table := []struct {
		value    float64
		digits   int
		expected string
	}{
		// 2.675 is stored as 2.67499999..., so it is not a tie
		{value: 2.675, digits: 2, expected: "2.67"},
		{value: 0.125, digits: 2, expected: "0.13"},
		{value: -0.125, digits: 2, expected: "-0.13"},
		{value: 12.5, digits: 0, expected: "13"},
		{value: -0.4, digits: 0, expected: "0"},
		{value: 0.1, digits: 1, expected: "0.1"},
	}

	for _, row := range table {
		require.Equal(t, row.expected, formatRounded(row.value, row.digits), row)
	}
}

func TestPercentStringDigitsBounds(t *testing.T) {
	huge := PercentStringDigits(1, 3, 50_000_000)
	require.Equal(t, PercentStringDigits(1, 3, MaxDigits), huge)
	require.Less(t, len(huge), 30)

	require.Equal(t, "0%", PercentStringDigits(1, 3, -400))
	require.Equal(t, "0%", PercentStringDigits(-1, 3, math.MinInt))
	require.Equal(t, "1"+strings.Repeat("0", 308), formatRounded(1e308, MinDigits))
	require.Equal(t, "0", formatRounded(1e307, MinDigits))
}
