package utils

// Clamp limits an integer to the inclusive range [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Ratio returns a/b capped at 1, and 1 when b is 0. Used for supply
// coverage factors that must never exceed full coverage.
func Ratio(a, b float64) float64 {
	if b == 0 {
		return 1
	}
	if a >= b {
		return 1
	}
	return a / b
}
