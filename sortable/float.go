package sortable

import "math"

// Float is a sortable wrapper type for float64. NaN sorts after every other
// value and equals other NaNs, so a slice containing NaN still has a total
// order.
type Float float64

// Compile-time check that Float implements Sortable[Float].
var _ Sortable[Float] = (*Float)(nil)

// Equals returns true if both values are equal or both are NaN.
func (f Float) Equals(other Float) bool {
	if math.IsNaN(float64(f)) || math.IsNaN(float64(other)) {
		return math.IsNaN(float64(f)) && math.IsNaN(float64(other))
	}

	return float64(f) == float64(other)
}

// LessThan returns true if f is numerically less than other, or other is NaN
// and f is not.
func (f Float) LessThan(other Float) bool {
	if math.IsNaN(float64(f)) {
		return false
	}

	if math.IsNaN(float64(other)) {
		return true
	}

	return float64(f) < float64(other)
}
