package core

import (
	"github.com/shopspring/decimal"
)

// Round2 rounds a monetary value to 2 decimal places, half away from zero.
// Rounding goes through decimal so that float artifacts from summation
// (33.33+66.66 = 99.99000000000001) do not leak into report output.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
