package core

// EnsureLen returns a slice of length n, reusing buf's backing array when
// its capacity allows. Existing contents are preserved up to the shorter
// of the two lengths; n <= 0 yields an empty slice over the same array.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if n <= cap(buf) {
		return buf[:n]
	}

	out := make([]float64, n)
	copy(out, buf)

	return out
}
