package wav

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/cwbudde/algo-pdm/dsp/core"
)

// WAVE format tags as defined by the RIFF specification.
const (
	formatPCM       = 1
	formatIEEEFloat = 3
)

// EncodeFloat32 writes samples as a mono IEEE-float 32-bit WAV file.
// Samples outside [-1, 1] are clamped. The writer must support seeking
// so the chunk sizes in the header can be patched on Close.
func EncodeFloat32(ws io.WriteSeeker, sampleRate int, samples []float64) error {
	if err := validate(ws, sampleRate, samples); err != nil {
		return err
	}

	enc := gowav.NewEncoder(ws, sampleRate, 32, 1, formatIEEEFloat)
	for _, s := range samples {
		if err := enc.WriteFrame(float32(core.Clamp(s, -1, 1))); err != nil {
			return fmt.Errorf("wav: write frame: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: finalize: %w", err)
	}

	return nil
}

// EncodePCM16 writes samples as a mono 16-bit PCM WAV file. Samples are
// clamped to [-1, 1] and scaled symmetrically, so full scale maps to
// +-32767 and -32768 is never produced.
func EncodePCM16(ws io.WriteSeeker, sampleRate int, samples []float64) error {
	if err := validate(ws, sampleRate, samples); err != nil {
		return err
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(math.Round(core.Clamp(s, -1, 1) * 32767))
	}

	enc := gowav.NewEncoder(ws, sampleRate, 16, 1, formatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav: write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: finalize: %w", err)
	}

	return nil
}

func validate(ws io.WriteSeeker, sampleRate int, samples []float64) error {
	if ws == nil {
		return ErrNilWriter
	}
	if sampleRate <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRate, sampleRate)
	}
	if len(samples) == 0 {
		return ErrNoSamples
	}

	return nil
}
