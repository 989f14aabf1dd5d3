package biquad

import (
	"math"
	"math/cmplx"
)

// Response evaluates the transfer function at z = e^{jw} for the given
// frequency in Hz, returning the complex response.
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	zinv := cmplx.Exp(complex(0, -w))

	// Horner evaluation in powers of z^-1.
	num := (complex(c.B2, 0)*zinv+complex(c.B1, 0))*zinv + complex(c.B0, 0)
	den := (complex(c.A2, 0)*zinv+complex(c.A1, 0))*zinv + 1

	return num / den
}

// MagnitudeSquared returns |H(f)|^2 through a closed form in cos(w),
// avoiding the complex exponential entirely.
func (c Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	cw := 2 * math.Cos(2*math.Pi*freqHz/sampleRate)

	num := (c.B0-c.B2)*(c.B0-c.B2) + c.B1*c.B1 + (c.B1*(c.B0+c.B2)+c.B0*c.B2*cw)*cw
	den := (1-c.A2)*(1-c.A2) + c.A1*c.A1 + (c.A1*(c.A2+1)+cw*c.A2)*cw

	return num / den
}

// MagnitudeDB returns the magnitude response in decibels.
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// Phase returns the phase response in radians, in [-pi, pi].
func (c Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// Response of a cascade is the product of its section responses.
func (c *Cascade) Response(freqHz, sampleRate float64) complex128 {
	h := complex(1, 0)
	for i := range c.sections {
		h *= c.sections[i].Response(freqHz, sampleRate)
	}

	return h
}

// MagnitudeDB returns the cascade magnitude response in decibels.
func (c *Cascade) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// impulseResponse collects n outputs of process driven by a unit impulse.
func impulseResponse(n int, process func(float64) float64) []float64 {
	if n <= 0 {
		return nil
	}

	ir := make([]float64, n)
	ir[0] = process(1)
	for i := 1; i < n; i++ {
		ir[i] = process(0)
	}

	return ir
}

// ImpulseResponse returns the first n samples of h[n]. The section state
// is saved and restored around the probe.
func (s *Section) ImpulseResponse(n int) []float64 {
	saved := s.State()
	s.Reset()
	ir := impulseResponse(n, s.ProcessSample)
	s.SetState(saved)

	return ir
}

// ImpulseResponse returns the first n samples of the cascade impulse
// response, with all section states saved and restored.
func (c *Cascade) ImpulseResponse(n int) []float64 {
	saved := c.State()
	c.Reset()
	ir := impulseResponse(n, c.ProcessSample)
	c.SetState(saved)

	return ir
}
