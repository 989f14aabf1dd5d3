package testutil

// DeltaSigmaBits modulates signal into a pulse-density bitstream using a
// first-order delta-sigma modulator, one bit per input sample. Input values
// are expected in [-1, 1]; the running quantization error is fed back so the
// bit density tracks the signal.
func DeltaSigmaBits(signal []float64) []byte {
	bits := make([]byte, len(signal))
	acc := 0.0
	fb := -1.0 // quantizer idles at the low rail out of reset
	for i, x := range signal {
		acc += x - fb
		if acc >= 0 {
			bits[i] = 1
			fb = 1
		} else {
			fb = -1
		}
	}
	return bits
}

// PackBits packs a {0, 1} bit sequence into bytes, most significant bit
// first. A trailing partial byte is zero padded in its low bits.
func PackBits(bits []byte) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b != 0 {
			out[i/8] |= 0x80 >> (i % 8)
		}
	}
	return out
}
