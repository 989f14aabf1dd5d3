package core

import "testing"

func TestEnsureLenReusesCapacity(t *testing.T) {
	buf := make([]float64, 4, 8)
	buf[3] = 42

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}
	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d (same backing array)", cap(out), cap(buf))
	}
	if out[3] != 42 {
		t.Fatalf("out[3] = %v, want 42", out[3])
	}
}

func TestEnsureLenGrowsAndCopies(t *testing.T) {
	buf := []float64{1, 2, 3}

	out := EnsureLen(buf, 10)
	if len(out) != 10 {
		t.Fatalf("len = %d, want 10", len(out))
	}
	for i, want := range []float64{1, 2, 3} {
		if out[i] != want {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want)
		}
	}
	for i := 3; i < 10; i++ {
		if out[i] != 0 {
			t.Fatalf("out[%d] = %v, want 0", i, out[i])
		}
	}
}

func TestEnsureLenNonPositive(t *testing.T) {
	buf := []float64{1, 2}

	out := EnsureLen(buf, 0)
	if len(out) != 0 {
		t.Fatalf("len = %d, want 0", len(out))
	}

	out = EnsureLen(nil, -3)
	if len(out) != 0 {
		t.Fatalf("len = %d, want 0 for nil input", len(out))
	}
}
