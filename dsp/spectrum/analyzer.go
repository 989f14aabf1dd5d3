package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-pdm/dsp/window"
)

// DefaultMinFFTSize is the smallest transform size used by Analyzer.
// Shorter signals are zero padded up to it; longer signals are padded to
// the next power of two.
const DefaultMinFFTSize = 4096

type config struct {
	winType window.Type
	minFFT  int
}

func defaultConfig() config {
	return config{
		winType: window.TypeHann,
		minFFT:  DefaultMinFFTSize,
	}
}

// Option configures the analyzer.
type Option func(*config)

// WithWindow selects the analysis window. The default is Hann.
func WithWindow(t window.Type) Option {
	return func(cfg *config) {
		cfg.winType = t
	}
}

// WithMinFFTSize overrides the minimum transform size. Values are rounded
// up to the next power of two at analysis time.
func WithMinFFTSize(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.minFFT = n
		}
	}
}

// Spectrum is a one-sided magnitude spectrum.
type Spectrum struct {
	// Mag holds normalized magnitudes for bins 0 through FFTSize/2.
	Mag []float64
	// SampleRate is the sample rate of the analyzed signal in Hz.
	SampleRate float64
	// FFTSize is the transform size the spectrum was computed with.
	FFTSize int
}

// BinWidth returns the frequency spacing between bins in Hz.
func (s Spectrum) BinWidth() float64 {
	return s.SampleRate / float64(s.FFTSize)
}

// FreqAt returns the center frequency of bin i in Hz.
func (s Spectrum) FreqAt(i int) float64 {
	return float64(i) * s.BinWidth()
}

// Analyzer computes one-sided magnitude spectra of finite signals.
//
// The signal is windowed, zero padded to a power-of-two transform size of
// at least the configured minimum, and transformed once. Magnitudes are
// scaled by the window sum, so a sine of amplitude A centered on a bin
// reads close to A regardless of signal length or padding. Interior bins
// are doubled to fold the negative frequencies in; DC and Nyquist are not.
//
// The FFT plan and transform buffers are cached between calls of the same
// size, so an Analyzer is cheap to reuse but not safe for concurrent use.
type Analyzer struct {
	sampleRate float64
	cfg        config

	fftSize int
	plan    *algofft.Plan[complex128]
	in      []complex128
	out     []complex128
}

// New returns an Analyzer for signals sampled at sampleRate Hz.
func New(sampleRate float64, opts ...Option) (*Analyzer, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("spectrum: sample rate must be > 0: %v", sampleRate)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Analyzer{sampleRate: sampleRate, cfg: cfg}, nil
}

// Magnitude returns the one-sided magnitude spectrum of signal.
func (a *Analyzer) Magnitude(signal []float64) (Spectrum, error) {
	if len(signal) == 0 {
		return Spectrum{}, fmt.Errorf("spectrum: signal must not be empty")
	}

	win := window.Generate(a.cfg.winType, len(signal))

	winSum := 0.0
	for _, w := range win {
		winSum += w
	}
	if winSum <= 0 {
		return Spectrum{}, fmt.Errorf("spectrum: window %v has non-positive coherent gain", a.cfg.winType)
	}

	framed, err := window.ApplyCoefficients(signal, win)
	if err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: window signal: %w", err)
	}

	if err := a.ensureSize(nextPow2(max(len(signal), a.cfg.minFFT))); err != nil {
		return Spectrum{}, err
	}

	for i, s := range framed {
		a.in[i] = complex(s, 0)
	}
	clear(a.in[len(framed):])

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: fft: %w", err)
	}

	half := a.fftSize/2 + 1
	mag := Magnitude(a.out[:half])

	scale := 1 / winSum
	for k := range mag {
		m := mag[k] * scale
		if k > 0 && k < half-1 {
			m *= 2
		}
		mag[k] = m
	}

	return Spectrum{Mag: mag, SampleRate: a.sampleRate, FFTSize: a.fftSize}, nil
}

func (a *Analyzer) ensureSize(n int) error {
	if n == a.fftSize {
		return nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return fmt.Errorf("spectrum: fft plan: %w", err)
	}

	a.plan = plan
	a.fftSize = n
	a.in = make([]complex128, n)
	a.out = make([]complex128, n)

	return nil
}

// nextPow2 returns the smallest power of two >= n.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
