package textutil

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

const (
	// MaxDigits is the most decimal places that can change a float64
	// percentage, larger values are treated as MaxDigits.
	MaxDigits = 17
	// MinDigits is the coarsest rounding that can leave a finite float64
	// non-zero, anything below it rounds every value to 0.
	MinDigits = -308
)

// PercentString is PercentStringDigits rounded to a whole percent.
func PercentString(numerator, denominator float64) string {
	return PercentStringDigits(numerator, denominator, 0)
}

// PercentStringDigits formats numerator/denominator as a percentage rounded
// to the given number of decimal places, ex. (1, 3, 2) -> "33.33%". A zero
// denominator always yields "0%".
func PercentStringDigits(numerator, denominator float64, digits int) string {
	if denominator == 0 {
		return "0%"
	}
	return formatRounded(numerator/denominator*100, digits) + "%"
}

var ten = big.NewInt(10)

func pow10(n int) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// formatRounded rounds the exact binary value of v, exact decimal ties go
// away from zero (12.5 -> 13, while 2.675 -> 2.67 since it is really
// 2.67499...).
func formatRounded(v float64, digits int) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if digits > MaxDigits {
		digits = MaxDigits
	}
	if digits < MinDigits {
		return "0"
	}

	exact := new(big.Rat).SetFloat64(v)
	var out string
	if digits >= 0 {
		out = exact.FloatString(digits)
		if strings.Contains(out, ".") {
			out = strings.TrimRight(out, "0")
			out = strings.TrimSuffix(out, ".")
		}
	} else {
		scale := pow10(-digits)
		exact.Quo(exact, new(big.Rat).SetInt(scale))
		out = exact.FloatString(0)
		if out != "0" && out != "-0" {
			out += strings.Repeat("0", -digits)
		}
	}
	if out == "-0" {
		out = "0"
	}
	return out
}
