package biquad

import (
	"math"
	"math/cmplx"
)

// PoleZeroPair holds the z-plane roots of one section. First-order
// sections leave the second pole and zero at the origin.
type PoleZeroPair struct {
	Poles [2]complex128
	Zeros [2]complex128
}

// Poles solves the denominator 1 + A1*z^-1 + A2*z^-2 = 0 for z.
func (c Coefficients) Poles() [2]complex128 {
	return solveQuadratic(1, c.A1, c.A2)
}

// Zeros solves the numerator B0 + B1*z^-1 + B2*z^-2 = 0 for z.
func (c Coefficients) Zeros() [2]complex128 {
	return solveQuadratic(c.B0, c.B1, c.B2)
}

// PoleZeroPair bundles Poles and Zeros for one section.
func (c Coefficients) PoleZeroPair() PoleZeroPair {
	return PoleZeroPair{Poles: c.Poles(), Zeros: c.Zeros()}
}

// Stable reports whether every pole lies strictly inside the unit
// circle, the condition for the section's impulse response to decay.
func (c Coefficients) Stable() bool {
	for _, p := range c.Poles() {
		if cmplx.Abs(p) >= 1 {
			return false
		}
	}

	return true
}

// solveQuadratic returns both roots of a*x^2 + b*x + c. A vanishing
// leading coefficient degrades to the linear (or empty) case with the
// spare slot left at the origin.
//
// For real roots the larger-magnitude one is computed first and the
// other recovered through the product c/a, so b and the discriminant
// root never cancel.
func solveQuadratic(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}

		return [2]complex128{complex(-c/b, 0), 0}
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		re := -b / (2 * a)
		im := math.Sqrt(-disc) / (2 * a)

		return [2]complex128{complex(re, im), complex(re, -im)}
	}

	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	if q == 0 {
		// b and c both zero: a double root at the origin.
		return [2]complex128{}
	}

	if c == 0 {
		// Keep the spare root a clean positive zero.
		return [2]complex128{complex(q/a, 0), 0}
	}

	return [2]complex128{complex(q/a, 0), complex(c/q, 0)}
}
