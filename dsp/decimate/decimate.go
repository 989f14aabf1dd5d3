package decimate

import "errors"

// ErrInvalidRatio indicates a decimation ratio below 1.
var ErrInvalidRatio = errors.New("decimate: ratio must be >= 1")

// Decimator keeps every ratio-th sample of a stream. The phase counter
// carries across Process calls, so the set of kept samples is exactly
// the stream indices divisible by ratio regardless of chunk sizes.
type Decimator struct {
	ratio int
	phase int
}

// New creates a Decimator for the given integer ratio.
// A ratio of 1 passes every sample through.
func New(ratio int) (*Decimator, error) {
	if ratio < 1 {
		return nil, ErrInvalidRatio
	}

	return &Decimator{ratio: ratio}, nil
}

// Append appends the kept samples of in to dst and returns the extended
// slice, advancing the stream phase by len(in). dst may be nil.
func (d *Decimator) Append(dst, in []float64) []float64 {
	// The first kept index is where the running sample count next hits a
	// multiple of ratio.
	for i := (d.ratio - d.phase) % d.ratio; i < len(in); i += d.ratio {
		dst = append(dst, in[i])
	}

	d.phase = (d.phase + len(in)) % d.ratio

	return dst
}

// Process returns the kept samples of in as a fresh slice.
func (d *Decimator) Process(in []float64) []float64 {
	if len(in) == 0 {
		return nil
	}

	return d.Append(make([]float64, 0, d.OutputLen(len(in))), in)
}

// OutputLen reports how many samples the next n input samples would
// contribute, given the current phase.
func (d *Decimator) OutputLen(n int) int {
	start := (d.ratio - d.phase) % d.ratio
	if n <= start {
		return 0
	}

	return (n-start-1)/d.ratio + 1
}

// Ratio returns the decimation ratio.
func (d *Decimator) Ratio() int {
	return d.ratio
}

// Phase returns the number of input samples consumed modulo the ratio.
func (d *Decimator) Phase() int {
	return d.phase
}

// Reset rewinds the phase so the next input sample is treated as the
// start of a new stream.
func (d *Decimator) Reset() {
	d.phase = 0
}
