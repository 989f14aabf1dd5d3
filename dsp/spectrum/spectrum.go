package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// partsPool recycles the split real/imag scratch used when unpacking
// complex bins for vecmath.
var partsPool = sync.Pool{
	New: func() any { return new([]float64) },
}

// splitParts unpacks in into pooled re/im slices. The release func hands
// the scratch back to the pool; the slices must not be used afterwards.
func splitParts(in []complex128) (re, im []float64, release func()) {
	p := partsPool.Get().(*[]float64)
	need := 2 * len(in)
	if cap(*p) < need {
		*p = make([]float64, need)
	}
	buf := (*p)[:need]

	re, im = buf[:len(in)], buf[len(in):]
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	return re, im, func() { partsPool.Put(p) }
}

// Magnitude returns |X[k]| for each complex bin. The arithmetic is
// delegated to vecmath, which picks a SIMD kernel when the platform has
// one. Scratch is pooled, so in steady state only the result allocates.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	re, im, release := splitParts(in)
	defer release()

	out := make([]float64, len(in))
	vecmath.Magnitude(out, re, im)

	return out
}

// MagnitudeFromParts computes sqrt(re[k]^2 + im[k]^2) into dst without
// allocating. All three slices must share one length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// Power returns |X[k]|^2 for each complex bin. See Magnitude for the
// allocation behavior.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	re, im, release := splitParts(in)
	defer release()

	out := make([]float64, len(in))
	vecmath.Power(out, re, im)

	return out
}

// PowerFromParts computes re[k]^2 + im[k]^2 into dst without allocating.
// All three slices must share one length.
func PowerFromParts(dst, re, im []float64) {
	vecmath.Power(dst, re, im)
}
