// Package decimate provides integer-ratio downsampling with phase
// tracking across chunk boundaries.
//
// A Decimator keeps every ratio-th sample of a stream, counted from the
// very first sample ever fed to it, no matter how the stream is split
// into chunks. Anti-aliasing is not performed here; the input is expected
// to be band-limited already (see dsp/filter).
package decimate
