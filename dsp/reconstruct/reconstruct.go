package reconstruct

import (
	"errors"
	"fmt"
	"io"

	"github.com/cwbudde/algo-pdm/dsp/bitstream"
	"github.com/cwbudde/algo-pdm/dsp/core"
	"github.com/cwbudde/algo-pdm/dsp/decimate"
	"github.com/cwbudde/algo-pdm/dsp/filter/biquad"
	"github.com/cwbudde/algo-pdm/dsp/filter/design"
	"github.com/cwbudde/algo-vecmath"
)

// Configuration errors. They are detected by Validate and New before any
// input byte is read.
var (
	ErrInvalidRate       = errors.New("reconstruct: sample rates must be positive")
	ErrRatioNotInteger   = errors.New("reconstruct: target rate must evenly divide the pdm rate")
	ErrInvalidChunkBytes = errors.New("reconstruct: chunk size must not be negative")
)

// DefaultChunkBytes is the read granularity used when Config.ChunkBytes
// is zero.
const DefaultChunkBytes = 1 << 20

// Config describes one reconstruction run: the modulator and output rates
// plus the lowpass design applied before decimation.
type Config struct {
	// Family selects the lowpass approximation.
	Family design.Family
	// Order is the lowpass filter order, >= 1.
	Order int
	// CutoffHz is the lowpass cutoff in Hz, within (0, PDMRateHz/2).
	CutoffHz float64
	// PDMRateHz is the 1-bit modulator rate in Hz.
	PDMRateHz int
	// TargetRateHz is the output PCM rate in Hz. It must evenly divide
	// PDMRateHz; the quotient is the decimation ratio.
	TargetRateHz int
	// ChunkBytes bounds how many input bytes are held in memory at once.
	// Zero selects DefaultChunkBytes. The value never changes the output,
	// only the read granularity.
	ChunkBytes int
}

// Ratio returns the decimation ratio PDMRateHz / TargetRateHz.
// It is zero when TargetRateHz is not positive.
func (c Config) Ratio() int {
	if c.TargetRateHz <= 0 {
		return 0
	}

	return c.PDMRateHz / c.TargetRateHz
}

// Validate checks the rates, the chunk size and the filter design without
// reading any input. A nil error guarantees that New accepts the Config.
func (c Config) Validate() error {
	_, err := c.design()
	return err
}

func (c Config) design() ([]biquad.Coefficients, error) {
	if c.PDMRateHz <= 0 || c.TargetRateHz <= 0 {
		return nil, fmt.Errorf("%w: pdm %d Hz, target %d Hz", ErrInvalidRate, c.PDMRateHz, c.TargetRateHz)
	}

	if c.PDMRateHz%c.TargetRateHz != 0 {
		return nil, fmt.Errorf("%w: %d Hz / %d Hz leaves a remainder", ErrRatioNotInteger, c.PDMRateHz, c.TargetRateHz)
	}

	if c.ChunkBytes < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkBytes, c.ChunkBytes)
	}

	return design.LowpassSOS(c.Family, c.CutoffHz, c.Order, float64(c.PDMRateHz))
}

func (c Config) chunkBytes() int {
	if c.ChunkBytes == 0 {
		return DefaultChunkBytes
	}

	return c.ChunkBytes
}

// Pipeline converts a pulse-density bitstream into normalized PCM
// samples. It owns the designed lowpass cascade, the decimator and a
// reusable unpack buffer; all state carries across chunks, so the chunk
// size never shows up in the output.
//
// A Pipeline is not safe for concurrent use. Independent streams need
// independent Pipelines, or a Reset between runs.
type Pipeline struct {
	cfg      Config
	cascade  *biquad.Cascade
	dec      *decimate.Decimator
	work     []float64
	bitsRead int64
}

// New designs the lowpass cascade once and returns a Pipeline with
// cleared filter and decimator state.
func New(cfg Config) (*Pipeline, error) {
	sos, err := cfg.design()
	if err != nil {
		return nil, err
	}

	dec, err := decimate.New(cfg.Ratio())
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		cfg:     cfg,
		cascade: biquad.NewCascade(sos),
		dec:     dec,
	}, nil
}

// Process reads r until EOF and returns the reconstructed PCM samples.
//
// Bytes are consumed in ChunkBytes-sized chunks; each chunk is unpacked
// to bipolar samples, filtered through the cascade and decimated into the
// output. After EOF the output is scaled by its peak magnitude so it
// spans [-1, 1]; an all-zero output is left untouched. Empty input yields
// an empty, non-nil slice and no error.
func (p *Pipeline) Process(r io.Reader) ([]float64, error) {
	br, err := bitstream.NewReader(r, p.cfg.chunkBytes())
	if err != nil {
		return nil, err
	}

	defer func() { p.bitsRead += 8 * br.BytesRead() }()

	out := make([]float64, 0)

	for {
		chunk, err := br.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		// Reserve the full unpacked length up front; the appends inside
		// UnpackBipolar then stay within capacity.
		p.work = core.EnsureLen(p.work, 8*len(chunk))[:0]
		p.work = bitstream.UnpackBipolar(p.work, chunk)

		p.cascade.ProcessBlock(p.work)
		out = p.dec.Append(out, p.work)
	}

	if peak := vecmath.MaxAbs(out); peak > 0 {
		vecmath.ScaleBlockInPlace(out, 1/peak)
	}

	return out, nil
}

// Reset rewinds filter state, decimation phase and the bit counter for a
// new run with the same design.
func (p *Pipeline) Reset() {
	p.cascade.Reset()
	p.dec.Reset()
	p.bitsRead = 0
}

// BitsRead reports the number of input bits consumed since the last
// Reset, across all Process calls.
func (p *Pipeline) BitsRead() int64 {
	return p.bitsRead
}
