package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [lo, hi]. The bounds must be
// ordered.
func Clamp(value, lo, hi float64) float64 {
	return min(max(value, lo), hi)
}

// NearlyEqual reports whether a and b agree within eps, absolutely for
// values near zero and relatively otherwise. Non-positive eps falls back
// to a small default.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := max(math.Abs(a), math.Abs(b))

	return diff <= eps*largest
}

// LinearToDB converts a linear amplitude to decibels (20*log10).
// Zero maps to -Inf, negative amplitudes to NaN.
func LinearToDB(amplitude float64) float64 {
	switch {
	case amplitude < 0:
		return math.NaN()
	case amplitude == 0:
		return math.Inf(-1)
	}

	return 20 * math.Log10(amplitude)
}

// DBToLinear converts decibels to a linear amplitude (20*log10
// convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}
