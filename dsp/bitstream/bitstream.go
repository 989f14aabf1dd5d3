package bitstream

import (
	"errors"
	"fmt"
	"io"
)

// ErrInvalidChunkBytes reports a non-positive chunk size.
var ErrInvalidChunkBytes = errors.New("bitstream: chunk size must be at least 1 byte")

// bipolar maps a packed byte to its eight bipolar samples, MSB first.
var bipolar = makeBipolarTable()

func makeBipolarTable() (t [256][8]float64) {
	for b := range 256 {
		for i := range 8 {
			if b>>(7-i)&1 == 1 {
				t[b][i] = 1
			} else {
				t[b][i] = -1
			}
		}
	}
	return t
}

// UnpackBipolar appends the bits of src to dst as bipolar samples, most
// significant bit first, mapping bit 0 to -1.0 and bit 1 to +1.0. It
// returns the extended slice, so callers can reuse capacity across chunks:
//
//	samples = bitstream.UnpackBipolar(samples[:0], chunk)
func UnpackBipolar(dst []float64, src []byte) []float64 {
	for _, b := range src {
		dst = append(dst, bipolar[b][:]...)
	}
	return dst
}

// Reader slices an io.Reader into chunks of at most a fixed byte size.
//
// Every chunk except possibly the last is filled completely, so a transient
// short read from a pipe or socket never masquerades as end of stream. The
// stream boundary is a byte boundary: all eight bits of every delivered
// byte carry samples.
type Reader struct {
	r    io.Reader
	buf  []byte
	read int64
	done bool
}

// NewReader returns a Reader that yields chunks of at most chunkBytes bytes
// from r.
func NewReader(r io.Reader, chunkBytes int) (*Reader, error) {
	if chunkBytes < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkBytes, chunkBytes)
	}
	return &Reader{r: r, buf: make([]byte, chunkBytes)}, nil
}

// Next returns the next chunk of the stream. The returned slice is only
// valid until the following call, which reuses it. A shortened final chunk
// is delivered with a nil error; end of stream proper is io.EOF with an
// empty chunk.
func (br *Reader) Next() ([]byte, error) {
	if br.done {
		return nil, io.EOF
	}
	n, err := io.ReadFull(br.r, br.buf)
	br.read += int64(n)
	switch {
	case err == nil:
		return br.buf, nil
	case errors.Is(err, io.ErrUnexpectedEOF):
		br.done = true
		return br.buf[:n], nil
	case errors.Is(err, io.EOF):
		br.done = true
		return nil, io.EOF
	default:
		return nil, fmt.Errorf("bitstream: read: %w", err)
	}
}

// BytesRead reports the total number of bytes consumed from the underlying
// reader so far.
func (br *Reader) BytesRead() int64 { return br.read }
