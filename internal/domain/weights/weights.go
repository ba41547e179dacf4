// Package weights converts user-entered category weights into decimal
// fractions and rescales them so they sum to one.
package weights

import "math"

// Unit identifies how a raw weight value was entered.
type Unit string

// Recognized weight units.
const (
	UnitPercent Unit = "Percent"
	UnitDecimal Unit = "Decimal"
)

// Normalization constants. The 0.01 tolerance is an observable behavior
// boundary: totals already that close to one are left untouched.
const (
	percentScale       = 100.0
	normalizeTolerance = 0.01
)

// Interpret converts a raw weight and its unit into a decimal fraction.
// Percent divides by 100, anything else passes through unchanged. Range
// checks belong to the input boundary, not here; values may exceed one or
// be negative and normalization handles the scale.
func Interpret(value float64, unit Unit) float64 {
	if unit == UnitPercent {
		return value / percentScale
	}
	return value
}

// Normalize rescales ws in place so the weights sum to one.
// It reports the pre-normalization total and whether any rescaling
// happened. Totals within 0.01 of one are left as entered, and
// non-positive totals are never touched (the caller treats those as a
// zero-total-weight error before any computation).
func Normalize(ws []float64) (total float64, normalized bool) {
	for _, w := range ws {
		total += w
	}
	if total <= 0 || math.Abs(total-1.0) <= normalizeTolerance {
		return total, false
	}
	for i := range ws {
		ws[i] /= total
	}
	return total, true
}
