// Package bitstream reads raw pulse-density bitstreams in bounded chunks
// and expands packed bits into bipolar samples.
//
// A pulse-density capture is a bare sequence of 1-bit samples packed eight
// to a byte, most significant bit first, with no framing or header. Reader
// slices any io.Reader into chunks of a fixed byte size so downstream
// stages can process arbitrarily long captures in bounded memory;
// UnpackBipolar maps the packed bits onto {-1, +1} samples ready for
// filtering.
package bitstream
