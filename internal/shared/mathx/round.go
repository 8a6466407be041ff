// Package mathx holds small numeric helpers shared across features.
package mathx

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 rounds v half away from zero to 2 decimal places.
// Rounding goes through decimal arithmetic so values such as 2.675 do not drift.
// NaN and ±Inf are returned unchanged; decimal cannot represent them.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
