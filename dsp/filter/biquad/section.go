package biquad

// Coefficients holds one normalized second-order transfer function:
//
//	       B0 + B1*z^-1 + B2*z^-2
//	H(z) = -----------------------
//	       1 + A1*z^-1 + A2*z^-2
//
// a0 is assumed to be 1; designs that produce a different a0 must divide
// it out before constructing a Section.
type Coefficients struct {
	B0, B1, B2 float64 // numerator (feedforward)
	A1, A2     float64 // denominator (feedback)
}

// FirstOrder reports whether the section degenerates to first order
// (B2 and A2 both zero). Odd-order designs carry one such section.
func (c Coefficients) FirstOrder() bool {
	return c.B2 == 0 && c.A2 == 0
}

// Section is a single biquad stage in Direct Form II Transposed: two
// state words z1, z2 updated per sample as
//
//	out = B0*in + z1
//	z1  = B1*in - A1*out + z2
//	z2  = B2*in - A2*out
type Section struct {
	Coefficients

	z1, z2 float64
}

// NewSection returns a Section with the given coefficients and zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one sample.
func (s *Section) ProcessSample(in float64) float64 {
	out := s.B0*in + s.z1
	s.z1 = s.B1*in - s.A1*out + s.z2
	s.z2 = s.B2*in - s.A2*out

	return out
}

// ProcessBlock filters buf in place without allocating. State carries
// over between calls: filtering a signal chunk by chunk yields the same
// output as filtering it in one call.
func (s *Section) ProcessBlock(buf []float64) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	z1, z2 := s.z1, s.z2

	// Two samples per iteration to cut loop overhead.
	i := 0
	for ; i+1 < len(buf); i += 2 {
		xa := buf[i]
		ya := b0*xa + z1
		za := b1*xa - a1*ya + z2
		zb := b2*xa - a2*ya

		xb := buf[i+1]
		yb := b0*xb + za
		z1 = b1*xb - a1*yb + zb
		z2 = b2*xb - a2*yb

		buf[i] = ya
		buf[i+1] = yb
	}

	if i < len(buf) {
		x := buf[i]
		y := b0*x + z1
		z1 = b1*x - a1*y + z2
		z2 = b2*x - a2*y
		buf[i] = y
	}

	s.z1, s.z2 = z1, z2
}

// processBlockScalar is the plain one-sample-at-a-time loop, kept as the
// reference implementation for the unrolled ProcessBlock.
func (s *Section) processBlockScalar(buf []float64) {
	for i, x := range buf {
		buf[i] = s.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst, leaving src untouched. The two
// slices must have equal length.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	_ = dst[len(src)-1] // one bounds check up front

	for i, x := range src {
		y := s.B0*x + s.z1
		s.z1 = s.B1*x - s.A1*y + s.z2
		s.z2 = s.B2*x - s.A2*y
		dst[i] = y
	}
}

// Reset zeroes the delay line.
func (s *Section) Reset() {
	s.z1 = 0
	s.z2 = 0
}

// State returns the delay line as [z1, z2].
func (s *Section) State() [2]float64 {
	return [2]float64{s.z1, s.z2}
}

// SetState restores a delay line captured by State.
func (s *Section) SetState(st [2]float64) {
	s.z1 = st[0]
	s.z2 = st[1]
}
