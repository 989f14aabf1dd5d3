package design

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-pdm/dsp/filter/biquad"
)

const tol = 1e-9

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func cascadeMagDB(coeffs []biquad.Coefficients, freq, sr float64) float64 {
	return biquad.NewCascade(coeffs).MagnitudeDB(freq, sr)
}

func assertFiniteCoefficients(t *testing.T, c biquad.Coefficients) {
	t.Helper()
	v := []float64{c.B0, c.B1, c.B2, c.A1, c.A2}
	for i := range v {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			t.Fatalf("invalid coefficient[%d]=%v", i, v[i])
		}
	}
}

func assertStableSection(t *testing.T, c biquad.Coefficients) {
	t.Helper()
	for _, p := range c.Poles() {
		if cmplx.Abs(p) >= 1+tol {
			t.Fatalf("unstable pole: |p|=%v coeff=%#v", cmplx.Abs(p), c)
		}
	}
}

// dcGain returns the exact z=1 gain of one section.
func dcGain(c biquad.Coefficients) float64 {
	return (c.B0 + c.B1 + c.B2) / (1 + c.A1 + c.A2)
}

// stepOvershoot feeds a unit step through the cascade and returns the
// maximum output excess over the settled value of 1.
func stepOvershoot(coeffs []biquad.Coefficients, samples int) float64 {
	cascade := biquad.NewCascade(coeffs)

	overshoot := 0.0
	for range samples {
		y := cascade.ProcessSample(1)
		if y-1 > overshoot {
			overshoot = y - 1
		}
	}

	return overshoot
}
