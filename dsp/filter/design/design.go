package design

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-pdm/dsp/filter/biquad"
)

// Family identifies a lowpass approximation family.
type Family int

const (
	// Butterworth has a maximally flat passband magnitude.
	Butterworth Family = iota
	// Bessel has maximally flat group delay, preserving waveform shape.
	Bessel
)

// String returns the lowercase family name.
func (f Family) String() string {
	switch f {
	case Butterworth:
		return "butterworth"
	case Bessel:
		return "bessel"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// Design errors. All parameter validation happens before any coefficient
// is computed, so a non-nil error means no usable design exists.
var (
	ErrUnknownFamily     = errors.New("design: unknown filter family")
	ErrInvalidOrder      = errors.New("design: filter order must be >= 1")
	ErrOrderUnsupported  = errors.New("design: filter order not supported by family")
	ErrInvalidSampleRate = errors.New("design: sample rate must be positive")
	ErrInvalidCutoff     = errors.New("design: cutoff must lie in (0, sampleRate/2)")
)

// ParseFamily converts a family name to a Family value.
// Recognized names (case-insensitive): "butterworth", "butter", "bessel".
func ParseFamily(name string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "butterworth", "butter":
		return Butterworth, nil
	case "bessel":
		return Bessel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
	}
}

// LowpassSOS designs a lowpass second-order-section cascade of the given
// family. freq is the cutoff in Hz, order the filter order, sampleRate the
// processing rate in Hz. For odd orders the final section is first-order
// (B2 = A2 = 0).
func LowpassSOS(family Family, freq float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	switch family {
	case Butterworth:
		return ButterworthLP(freq, order, sampleRate)
	case Bessel:
		return BesselLP(freq, order, sampleRate)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFamily, int(family))
	}
}

// validateLowpass rejects parameter combinations that cannot yield a
// stable lowpass design.
func validateLowpass(freq float64, order int, sampleRate float64) error {
	if order < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidOrder, order)
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidSampleRate, sampleRate)
	}

	nyquist := sampleRate / 2
	if freq <= 0 || freq >= nyquist || math.IsNaN(freq) {
		return fmt.Errorf("%w: got %v Hz at sample rate %v Hz", ErrInvalidCutoff, freq, sampleRate)
	}

	return nil
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}

// firstOrderLP designs the first-order lowpass remainder section used by
// odd-order cascades. sp is the prewarped magnitude of the family's real
// analog pole, already scaled by the cutoff warp factor.
func firstOrderLP(sp float64) biquad.Coefficients {
	norm := 1 / (1 + sp)

	return biquad.Coefficients{
		B0: sp * norm,
		B1: sp * norm,
		A1: (sp - 1) * norm,
	}
}
