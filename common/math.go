package common

import "math"

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Sign returns -1, 0 or 1. Unlike math.Copysign it maps zero to zero.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Approach moves v toward zero by at most step.
func Approach(v, step float64) float64 {
	return v - math.Min(step, math.Abs(v))*Sign(v)
}
