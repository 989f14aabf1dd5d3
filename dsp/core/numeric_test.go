package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{name: "inside", value: 0.5, want: 0.5},
		{name: "below", value: -1.5, want: -1},
		{name: "above", value: 2, want: 1},
		{name: "at lower bound", value: -1, want: -1},
		{name: "at upper bound", value: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.value, -1, 1); got != tt.want {
				t.Fatalf("Clamp(%v, -1, 1) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
	// Relative comparison for large magnitudes.
	if !NearlyEqual(1e9, 1e9+1, 1e-8) {
		t.Fatal("expected large values to compare relatively")
	}
	// Non-positive eps falls back to the default.
	if !NearlyEqual(2, 2, 0) {
		t.Fatal("expected equal values with eps = 0")
	}
}

func TestLinearToDB(t *testing.T) {
	if db := LinearToDB(1); db != 0 {
		t.Fatalf("LinearToDB(1) = %v, want 0", db)
	}
	if db := LinearToDB(0.5); !NearlyEqual(db, -6.0206, 1e-4) {
		t.Fatalf("LinearToDB(0.5) = %v, want about -6.02", db)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero amplitude")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestDBRoundTrip(t *testing.T) {
	for _, db := range []float64{-60, -6, 0, 6, 20} {
		got := LinearToDB(DBToLinear(db))
		if !NearlyEqual(got, db, 1e-10) {
			t.Fatalf("LinearToDB(DBToLinear(%v)) = %v", db, got)
		}
	}
}
