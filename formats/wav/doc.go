// Package wav writes mono WAV files from float64 sample buffers.
//
// Two encodings are supported: IEEE-float 32-bit (format 3), the natural
// fit for normalized DSP output, and PCM 16-bit (format 1) for tooling
// that expects integer samples. Out-of-range samples are clamped to
// [-1, 1] before conversion. File structure is handled by
// github.com/go-audio/wav.
package wav
