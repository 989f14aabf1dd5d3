// Package window provides window functions for framing signals ahead of
// spectral analysis.
package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type selects one of the built-in window functions.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

// String returns the lower-case window name.
func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	case TypeBlackman:
		return "blackman"
	default:
		return fmt.Sprintf("window(%d)", int(t))
	}
}

// Option adjusts how Generate builds the coefficient vector.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic selects the periodic (FFT) form, which divides by N
// instead of N-1 so that frames tile seamlessly.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns length coefficients of the selected window.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	den := float64(length)
	if !cfg.periodic && length > 1 {
		den = float64(length - 1)
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = eval(t, 2*math.Pi*float64(i)/den)
	}

	return out
}

// Apply multiplies buf in place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	vecmath.MulBlockInPlace(buf, Generate(t, len(buf), opts...))
}

// EquivalentNoiseBandwidth returns the window's ENBW in bins.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errNoCoefficients
	}

	sum := 0.0
	sumSquares := 0.0
	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}
	if sum == 0 {
		return 0, errZeroGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

// ApplyCoefficients multiplies samples with coefficients into a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errLengthMismatch
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// ApplyCoefficientsInPlace scales samples by coefficients, overwriting
// samples.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errLengthMismatch
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// eval computes the window value at the given phase in radians, where one
// full period spans the window.
func eval(t Type, phase float64) float64 {
	switch t {
	case TypeHann:
		return 0.5 - 0.5*math.Cos(phase)
	case TypeHamming:
		return 0.54 - 0.46*math.Cos(phase)
	case TypeBlackman:
		return 0.42 - 0.5*math.Cos(phase) + 0.08*math.Cos(2*phase)
	default:
		return 1
	}
}
