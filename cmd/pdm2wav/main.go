// Command pdm2wav converts raw PDM bit captures to WAV audio.
//
// Usage:
//
//	pdm2wav [flags] capture.bin [capture2.bin ...]
//
// Each input is lowpass filtered, decimated to the target rate, peak
// normalized, and written next to the input with a .wav extension unless
// -o is given. Multiple inputs are converted concurrently.
//
// Examples:
//
//	pdm2wav capture.bin
//	pdm2wav -rate 40000 -cutoff 18000 -family butterworth capture.bin
//	pdm2wav -format pcm16 -o out.wav capture.bin
//	pdm2wav -peaks 5 front.bin rear.bin
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cwbudde/algo-pdm/dsp/filter/design"
	"github.com/cwbudde/algo-pdm/dsp/reconstruct"
	"github.com/cwbudde/algo-pdm/dsp/spectrum"
	"github.com/cwbudde/algo-pdm/formats/wav"
	timestats "github.com/cwbudde/algo-pdm/stats/time"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	formatFloat32 = "float32"
	formatPCM16   = "pcm16"
)

func main() {
	pdmRate := flag.Int("pdm-rate", 10000000, "PDM bit rate in Hz")
	rate := flag.Int("rate", 50000, "output sample rate in Hz")
	cutoff := flag.Float64("cutoff", 20000, "lowpass cutoff frequency in Hz")
	order := flag.Int("order", 4, "lowpass filter order")
	family := flag.String("family", "bessel", "filter family (bessel, butterworth)")
	chunk := flag.Int("chunk", reconstruct.DefaultChunkBytes, "streaming chunk size in bytes")
	format := flag.String("format", formatFloat32, "output sample format (float32, pcm16)")
	output := flag.String("o", "", "output path (single input only)")
	peaks := flag.Int("peaks", 0, "report the N strongest spectral peaks")
	quiet := flag.Bool("quiet", false, "only log warnings and errors")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pdm2wav [flags] capture.bin [capture2.bin ...]\n\n")
		fmt.Fprintf(os.Stderr, "Converts raw PDM bit captures to WAV audio.\n")
		fmt.Fprintf(os.Stderr, "Outputs are written next to their inputs with a .wav extension unless -o is given.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pdm2wav capture.bin\n")
		fmt.Fprintf(os.Stderr, "  pdm2wav -rate 40000 -family butterworth capture.bin\n")
		fmt.Fprintf(os.Stderr, "  pdm2wav -format pcm16 -o out.wav capture.bin\n")
		fmt.Fprintf(os.Stderr, "  pdm2wav -peaks 5 front.bin rear.bin\n")
	}
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if *quiet {
		logger = logger.Level(zerolog.WarnLevel)
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Fprintf(os.Stderr, "error: no input files\n\n")
		flag.Usage()
		os.Exit(2)
	}
	if *output != "" && len(inputs) > 1 {
		fmt.Fprintf(os.Stderr, "error: -o cannot be combined with multiple inputs\n")
		os.Exit(2)
	}

	fam, err := design.ParseFamily(*family)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid -family")
	}

	switch *format {
	case formatFloat32, formatPCM16:
	default:
		logger.Fatal().Str("format", *format).Msg("invalid -format, want float32 or pcm16")
	}

	cfg := reconstruct.Config{
		Family:       fam,
		Order:        *order,
		CutoffHz:     *cutoff,
		PDMRateHz:    *pdmRate,
		TargetRateHz: *rate,
		ChunkBytes:   *chunk,
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	logger.Info().
		Str("family", fam.String()).
		Int("order", *order).
		Float64("cutoff_hz", *cutoff).
		Int("pdm_rate_hz", *pdmRate).
		Int("rate_hz", *rate).
		Int("ratio", cfg.Ratio()).
		Msg("reconstruction configured")

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, inPath := range inputs {
		g.Go(func() error {
			return convert(logger, cfg, *format, inPath, outPath(inPath, *output), *peaks)
		})
	}
	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("conversion failed")
	}
}

// outPath returns the explicit output path when given, otherwise the
// input path with its extension replaced by .wav.
func outPath(in, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return strings.TrimSuffix(in, filepath.Ext(in)) + ".wav"
}

func convert(logger zerolog.Logger, cfg reconstruct.Config, format, inPath, wavPath string, peaks int) error {
	log := logger.With().Str("file", filepath.Base(inPath)).Logger()

	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	pipe, err := reconstruct.New(cfg)
	if err != nil {
		return err
	}

	samples, err := pipe.Process(in)
	if err != nil {
		return fmt.Errorf("reconstruct %s: %w", inPath, err)
	}
	if len(samples) == 0 {
		return fmt.Errorf("reconstruct %s: no PDM data", inPath)
	}

	log.Info().
		Int64("pdm_bits", pipe.BitsRead()).
		Float64("pdm_seconds", float64(pipe.BitsRead())/float64(cfg.PDMRateHz)).
		Msg("PDM stream decoded")

	st := timestats.Calculate(samples)
	log.Info().
		Float64("rms_db", st.RMS_dB).
		Float64("peak_db", st.Peak_dB).
		Float64("dc", st.DC).
		Int("zero_crossings", st.ZeroCrossings).
		Msg("signal statistics")

	if peaks > 0 {
		if err := reportPeaks(log, samples, cfg.TargetRateHz, peaks); err != nil {
			return err
		}
	}

	out, err := os.Create(wavPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	switch format {
	case formatPCM16:
		err = wav.EncodePCM16(out, cfg.TargetRateHz, samples)
	default:
		err = wav.EncodeFloat32(out, cfg.TargetRateHz, samples)
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", wavPath, err)
	}

	log.Info().
		Str("output", wavPath).
		Int("samples", len(samples)).
		Int("rate_hz", cfg.TargetRateHz).
		Float64("seconds", float64(len(samples))/float64(cfg.TargetRateHz)).
		Str("format", format).
		Msg("WAV written")

	return nil
}

func reportPeaks(log zerolog.Logger, samples []float64, rateHz, n int) error {
	an, err := spectrum.New(float64(rateHz))
	if err != nil {
		return err
	}

	spec, err := an.Magnitude(samples)
	if err != nil {
		return fmt.Errorf("analyze spectrum: %w", err)
	}

	for i, p := range spec.TopPeaks(n, 2) {
		log.Info().
			Int("rank", i+1).
			Float64("freq_hz", p.FreqHz).
			Float64("amplitude", p.Magnitude).
			Msg("spectral peak")
	}

	return nil
}
