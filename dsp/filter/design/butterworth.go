package design

import (
	"math"

	"github.com/cwbudde/algo-pdm/dsp/filter/biquad"
)

// ButterworthLP designs a lowpass Butterworth cascade with -3 dB at freq.
//
// Second-order sections are emitted most damped (lowest Q) first. For odd
// orders, the final section is first-order (B2=A2=0).
func ButterworthLP(freq float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if err := validateLowpass(freq, order, sampleRate); err != nil {
		return nil, err
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		sections = append(sections, lowpassRBJ(freq, q, sampleRate))
	}

	if order%2 != 0 {
		wc := math.Tan(math.Pi * freq / sampleRate)
		sections = append(sections, firstOrderLP(wc))
	}

	return sections, nil
}

// butterworthQ returns the quality factor for a Butterworth filter section.
// index ranges from 0 to (order/2 - 1) for the biquad sections.
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return 1 / math.Sqrt2 // default Q
	}

	return 1 / (2 * s)
}

// lowpassRBJ designs a lowpass biquad at freq (Hz) with quality factor q,
// using the RBJ cookbook formula. Inputs are assumed validated.
func lowpassRBJ(freq, q, sampleRate float64) biquad.Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := (1 - cw) / 2
	b1 := 1 - cw
	b2 := (1 - cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}
