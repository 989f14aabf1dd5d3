package time

import (
	"math"

	"github.com/cwbudde/algo-pdm/dsp/core"
)

// Stats holds time-domain statistics of one sample buffer, computed in a
// single pass by Calculate.
//
//nolint:revive
type Stats struct {
	Length        int
	DC            float64 // mean
	RMS           float64
	RMS_dB        float64
	Max           float64
	MaxPos        int
	Min           float64
	MinPos        int
	Peak          float64 // max(|Max|, |Min|)
	Peak_dB       float64
	Range         float64 // Max - Min
	CrestFactor   float64 // Peak / RMS (linear), 0 for silence
	Energy        float64 // sum of squares
	Power         float64 // Energy / Length
	ZeroCrossings int
}

// emptyStats returns a zero-valued Stats with -Inf for the dB fields.
func emptyStats() Stats {
	return Stats{
		RMS_dB:  math.Inf(-1),
		Peak_dB: math.Inf(-1),
	}
}

// Calculate computes all statistics in one pass over the signal.
// The mean uses Kahan summation, so long buffers with a small DC offset
// do not lose it to cancellation.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return emptyStats()
	}

	var (
		sum, comp float64 // Kahan accumulator for the mean
		sumSq     float64
		maxVal    = signal[0]
		maxPos    int
		minVal    = signal[0]
		minPos    int
		crossings int
	)

	for i, x := range signal {
		y := x - comp
		t := sum + y
		comp = (t - sum) - y
		sum = t

		sumSq += x * x

		if x > maxVal {
			maxVal, maxPos = x, i
		}

		if x < minVal {
			minVal, minPos = x, i
		}

		// A crossing needs strictly opposite signs; touching zero is not
		// counted.
		if i > 0 && signal[i-1]*x < 0 {
			crossings++
		}
	}

	nf := float64(n)
	mean := sum / nf
	rms := math.Sqrt(sumSq / nf)
	peak := math.Max(math.Abs(maxVal), math.Abs(minVal))

	crest := 0.0
	if rms > 0 {
		crest = peak / rms
	}

	return Stats{
		Length:        n,
		DC:            mean,
		RMS:           rms,
		RMS_dB:        core.LinearToDB(rms),
		Max:           maxVal,
		MaxPos:        maxPos,
		Min:           minVal,
		MinPos:        minPos,
		Peak:          peak,
		Peak_dB:       core.LinearToDB(peak),
		Range:         maxVal - minVal,
		CrestFactor:   crest,
		Energy:        sumSq,
		Power:         sumSq / nf,
		ZeroCrossings: crossings,
	}
}
