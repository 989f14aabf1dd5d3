package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 50000, 0.5, 50)
	if len(s) != 50 {
		t.Fatalf("len = %d, want 50", len(s))
	}
	if s[0] != 0 {
		t.Fatalf("s[0] = %v, want 0 (phase starts at zero)", s[0])
	}
	for i, v := range s {
		if math.Abs(v) > 0.5 {
			t.Fatalf("s[%d] = %v exceeds the amplitude", i, v)
		}
	}

	// One full cycle spans sampleRate/freqHz samples, so a quarter cycle
	// lands on the positive extreme.
	if got := s[12]; math.Abs(got-0.5*math.Sin(2*math.Pi*1000*12/50000)) > 1e-15 {
		t.Fatalf("s[12] = %v, unexpected phase", got)
	}

	again := DeterministicSine(1000, 50000, 0.5, 50)
	for i := range s {
		if s[i] != again[i] {
			t.Fatalf("sine not reproducible at index %d", i)
		}
	}
}

func TestDC(t *testing.T) {
	d := DC(-0.25, 6)
	if len(d) != 6 {
		t.Fatalf("len = %d, want 6", len(d))
	}
	for i, v := range d {
		if v != -0.25 {
			t.Fatalf("d[%d] = %v, want -0.25", i, v)
		}
	}
}
