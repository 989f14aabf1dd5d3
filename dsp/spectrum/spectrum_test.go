package spectrum

import (
	"math"
	"testing"
)

func TestMagnitudeAndPower(t *testing.T) {
	bins := []complex128{6 + 8i, 1 - 1i, -2, 0}

	mag := Magnitude(bins)
	pow := Power(bins)

	if len(mag) != len(bins) || len(pow) != len(bins) {
		t.Fatalf("length mismatch: mag=%d pow=%d want=%d", len(mag), len(pow), len(bins))
	}

	wantMag := []float64{10, math.Sqrt2, 2, 0}
	wantPow := []float64{100, 2, 4, 0}

	for i := range bins {
		if math.Abs(mag[i]-wantMag[i]) > 1e-12 {
			t.Errorf("Magnitude[%d] = %v, want %v", i, mag[i], wantMag[i])
		}

		if math.Abs(pow[i]-wantPow[i]) > 1e-12 {
			t.Errorf("Power[%d] = %v, want %v", i, pow[i], wantPow[i])
		}
	}
}

func TestMagnitudeAndPower_Empty(t *testing.T) {
	if got := Magnitude(nil); got != nil {
		t.Fatalf("Magnitude(nil) = %v, want nil", got)
	}

	if got := Power(nil); got != nil {
		t.Fatalf("Power(nil) = %v, want nil", got)
	}
}

func TestFromParts_MatchComplexEntryPoints(t *testing.T) {
	re := []float64{6, 1, -2, 0}
	im := []float64{8, -1, 0, 0}

	mag := make([]float64, len(re))
	MagnitudeFromParts(mag, re, im)

	pow := make([]float64, len(re))
	PowerFromParts(pow, re, im)

	bins := make([]complex128, len(re))
	for i := range bins {
		bins[i] = complex(re[i], im[i])
	}

	wantMag := Magnitude(bins)
	wantPow := Power(bins)

	for i := range re {
		if math.Abs(mag[i]-wantMag[i]) > 1e-12 {
			t.Errorf("MagnitudeFromParts[%d] = %v, want %v", i, mag[i], wantMag[i])
		}

		if math.Abs(pow[i]-wantPow[i]) > 1e-12 {
			t.Errorf("PowerFromParts[%d] = %v, want %v", i, pow[i], wantPow[i])
		}
	}
}

func TestMagnitude_AcrossSizes(t *testing.T) {
	// Consecutive calls of different lengths share pooled scratch buffers.
	small := Magnitude([]complex128{3 + 4i})
	big := Magnitude(make([]complex128, 500))

	if math.Abs(small[0]-5) > 1e-12 {
		t.Fatalf("small[0] = %v, want 5", small[0])
	}

	for i, m := range big {
		if m != 0 {
			t.Fatalf("big[%d] = %v, want 0", i, m)
		}
	}
}
