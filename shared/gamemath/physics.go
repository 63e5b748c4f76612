package gamemath

import "math"

// Clamp limits v to [lo, hi]. Callers must pass lo <= hi.
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClampToward limits v to the closed interval between 0 and bound, whichever
// sign bound has. A zero bound always yields 0.
func ClampToward(v, bound float64) float64 {
	switch {
	case bound > 0:
		return Clamp(v, 0, bound)
	case bound < 0:
		return Clamp(v, bound, 0)
	}
	return 0
}

// SameSign reports whether a and b are both non-zero and point the same way.
func SameSign(a, b float64) bool {
	return a != 0 && b != 0 && (a > 0) == (b > 0)
}

// Approach moves current toward target by factor of the remaining distance.
func Approach(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// Finite reports whether all values are neither NaN nor infinite.
func Finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
