package spectrum

import (
	"fmt"
	"math"
)

// Goertzel measures the signal power at one frequency without computing a
// full transform. It is the cheap way to verify a known tone, such as a
// calibration tone in a reconstructed capture.
//
// The detector is streaming: each processed sample folds into two state
// words, and Power or Magnitude may be read at any point for the samples
// seen since the last Reset. Like any rectangular-window DFT bin, the
// reading leaks when the probe frequency does not complete an integer
// number of cycles over the processed span; window the input first to
// trade leakage for main-lobe width.
type Goertzel struct {
	freq float64
	rate float64

	coeff  float64
	q1, q2 float64
}

// NewGoertzel returns a detector for freq Hz in a signal sampled at
// sampleRate Hz. freq must lie in [0, sampleRate/2].
func NewGoertzel(freq, sampleRate float64) (*Goertzel, error) {
	switch {
	case math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) || sampleRate <= 0:
		return nil, fmt.Errorf("goertzel: sample rate must be > 0: %v", sampleRate)
	case math.IsNaN(freq) || math.IsInf(freq, 0) || freq < 0 || freq > sampleRate/2:
		return nil, fmt.Errorf("goertzel: frequency must be between 0 and sampleRate/2: %v", freq)
	}

	return &Goertzel{
		freq:  freq,
		rate:  sampleRate,
		coeff: 2 * math.Cos(2*math.Pi*freq/sampleRate),
	}, nil
}

// ProcessSample folds one sample into the detector state.
func (g *Goertzel) ProcessSample(x float64) {
	q := x + g.coeff*g.q1 - g.q2
	g.q2 = g.q1
	g.q1 = q
}

// ProcessBlock folds a block of samples into the detector state.
func (g *Goertzel) ProcessBlock(block []float64) {
	q1, q2 := g.q1, g.q2
	k := g.coeff

	for _, x := range block {
		q := x + k*q1 - q2
		q2 = q1
		q1 = q
	}

	g.q1, g.q2 = q1, q2
}

// Power returns |X(freq)|^2 for the samples processed so far, matching
// the corresponding DFT bin of a block of the same length.
func (g *Goertzel) Power() float64 {
	return g.q1*g.q1 + g.q2*g.q2 - g.coeff*g.q1*g.q2
}

// Magnitude returns |X(freq)| for the samples processed so far.
func (g *Goertzel) Magnitude() float64 {
	if p := g.Power(); p > 0 {
		return math.Sqrt(p)
	}

	return 0
}

// PowerDB returns the power in dB, floored at -300 for silence.
func (g *Goertzel) PowerDB() float64 {
	p := g.Power()
	if p <= 1e-30 {
		return -300
	}

	return 10 * math.Log10(p)
}

// Reset clears the accumulated state.
func (g *Goertzel) Reset() {
	g.q1, g.q2 = 0, 0
}

// Frequency returns the probe frequency in Hz.
func (g *Goertzel) Frequency() float64 { return g.freq }

// SampleRate returns the sample rate in Hz.
func (g *Goertzel) SampleRate() float64 { return g.rate }

// AnalyzeBlock measures the power at freq over one block in a single call.
func AnalyzeBlock(block []float64, freq, sampleRate float64) (float64, error) {
	g, err := NewGoertzel(freq, sampleRate)
	if err != nil {
		return 0, err
	}

	g.ProcessBlock(block)

	return g.Power(), nil
}
