// Package reconstruct converts pulse-density modulated (PDM) bitstreams
// into PCM sample buffers.
//
// A PDM stream encodes a signal in the density of single bits running at
// a rate far above the audio band. Reconstruction runs in three stages:
// unpack bytes to bipolar {-1, +1} samples, lowpass-filter at the
// modulator rate to strip the shaped quantization noise, and keep every
// ratio-th sample to reach the target PCM rate. The finished buffer is
// peak-normalized to [-1, 1].
//
// Typical use:
//
//	cfg := reconstruct.Config{
//		Family:       design.Bessel,
//		Order:        4,
//		CutoffHz:     20e3,
//		PDMRateHz:    10e6,
//		TargetRateHz: 50e3,
//	}
//	p, err := reconstruct.New(cfg)
//	// ...
//	samples, err := p.Process(file)
//
// Processing is streaming: input is read in bounded chunks, and filter
// and decimator state carry across chunk boundaries, so arbitrarily
// large captures reconstruct with memory bounded by the chunk size plus
// the output buffer.
package reconstruct
