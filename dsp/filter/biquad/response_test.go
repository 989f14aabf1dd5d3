package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

// responseFreqs spans the audible band at a 50 kHz sample rate.
var responseFreqs = []float64{250, 1000, 5000, 12500, 20000, 24000}

const responseRate = 50000.0

func TestClosedForms_MatchResponse(t *testing.T) {
	// MagnitudeSquared, MagnitudeDB and Phase are closed-form shortcuts;
	// all three must agree with the complex transfer function.
	c := traceCoeffs()

	for _, freq := range responseFreqs {
		h := c.Response(freq, responseRate)

		magSq := real(h)*real(h) + imag(h)*imag(h)
		if got := c.MagnitudeSquared(freq, responseRate); !almostEqual(got, magSq, 1e-10) {
			t.Errorf("freq=%v: MagnitudeSquared=%.15f, |H|^2=%.15f", freq, got, magSq)
		}

		db := 10 * math.Log10(magSq)
		if got := c.MagnitudeDB(freq, responseRate); !almostEqual(got, db, 1e-9) {
			t.Errorf("freq=%v: MagnitudeDB=%.15f, want %.15f", freq, got, db)
		}

		if got := c.Phase(freq, responseRate); !almostEqual(got, cmplx.Phase(h), 1e-10) {
			t.Errorf("freq=%v: Phase=%.15f, arg(H)=%.15f", freq, got, cmplx.Phase(h))
		}
	}
}

func TestResponse_UnityMagnitude(t *testing.T) {
	tests := []struct {
		name   string
		coeffs Coefficients
	}{
		{name: "passthrough", coeffs: passthrough()},
		{
			// Numerator is the reversed denominator, so |H(f)| = 1 at
			// every frequency while the phase still turns.
			name:   "allpass",
			coeffs: Coefficients{B0: 0.2, B1: -0.4, B2: 1, A1: -0.4, A2: 0.2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, freq := range responseFreqs {
				mag := cmplx.Abs(tt.coeffs.Response(freq, responseRate))
				if !almostEqual(mag, 1, 1e-10) {
					t.Errorf("freq=%v: |H|=%.15f, want 1", freq, mag)
				}
			}
		})
	}
}

func TestCascade_Response_ProductOfSections(t *testing.T) {
	coeffs := twoSectionCoeffs()
	cascade := NewCascade(coeffs)

	for _, freq := range responseFreqs {
		ref := coeffs[0].Response(freq, responseRate) * coeffs[1].Response(freq, responseRate)

		got := cascade.Response(freq, responseRate)
		if !almostEqual(real(got), real(ref), 1e-10) || !almostEqual(imag(got), imag(ref), 1e-10) {
			t.Errorf("freq=%v: cascade=%v, product=%v", freq, got, ref)
		}

		db := 20 * math.Log10(cmplx.Abs(ref))
		if got := cascade.MagnitudeDB(freq, responseRate); !almostEqual(got, db, 1e-9) {
			t.Errorf("freq=%v: MagnitudeDB=%.15f, want %.15f", freq, got, db)
		}
	}
}

func assertMatchesImpulse(t *testing.T, ir []float64, process func(float64) float64) {
	t.Helper()

	for i, got := range ir {
		x := 0.0
		if i == 0 {
			x = 1
		}

		if want := process(x); !almostEqual(got, want, eps) {
			t.Errorf("ir[%d]: got %.15f, want %.15f", i, got, want)
		}
	}
}

func TestImpulseResponse_PreservesState(t *testing.T) {
	// ImpulseResponse probes a filter mid-stream without disturbing it.
	t.Run("section", func(t *testing.T) {
		s := NewSection(traceCoeffs())
		s.ProcessSample(0.5)
		s.ProcessSample(0.3)
		saved := s.State()

		ir := s.ImpulseResponse(8)

		if s.State() != saved {
			t.Fatal("ImpulseResponse modified section state")
		}

		ref := NewSection(traceCoeffs())
		assertMatchesImpulse(t, ir, ref.ProcessSample)
	})

	t.Run("cascade", func(t *testing.T) {
		c := NewCascade(twoSectionCoeffs())
		c.ProcessSample(0.5)
		c.ProcessSample(0.3)
		saved := c.State()

		ir := c.ImpulseResponse(16)

		for i, st := range c.State() {
			if st != saved[i] {
				t.Fatalf("ImpulseResponse modified cascade state at section %d", i)
			}
		}

		ref := NewCascade(twoSectionCoeffs())
		assertMatchesImpulse(t, ir, ref.ProcessSample)
	})
}

func TestImpulseResponse_EdgeCases(t *testing.T) {
	s := NewSection(passthrough())

	for _, n := range []int{0, -1} {
		if ir := s.ImpulseResponse(n); ir != nil {
			t.Errorf("ImpulseResponse(%d) should return nil, got %v", n, ir)
		}
	}

	// A passthrough filter's impulse response is the impulse itself.
	ir := s.ImpulseResponse(4)
	want := []float64{1, 0, 0, 0}
	for i := range ir {
		if ir[i] != want[i] {
			t.Errorf("ir[%d]: got %v, want %v", i, ir[i], want[i])
		}
	}
}
