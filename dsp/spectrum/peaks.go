package spectrum

// Peak is a spectral maximum found by TopPeaks.
type Peak struct {
	// Bin is the index into the magnitude slice.
	Bin int
	// FreqHz is the bin center frequency; zero when the peak was picked
	// from a bare magnitude slice without rate information.
	FreqHz float64
	// Magnitude is the spectrum value at the bin.
	Magnitude float64
}

// TopPeaks returns up to n of the strongest bins in mag, strongest first.
//
// The DC bin never qualifies. After each pick, minSeparationBins bins on
// either side are suppressed so that one wide lobe is not reported more
// than once; values below 1 are treated as 1. mag is left untouched.
func TopPeaks(mag []float64, n, minSeparationBins int) []Peak {
	if len(mag) == 0 || n <= 0 {
		return nil
	}
	if minSeparationBins < 1 {
		minSeparationBins = 1
	}

	work := append([]float64(nil), mag...)
	work[0] = 0

	var peaks []Peak
	for range n {
		idx := 0
		best := 0.0
		for i, v := range work {
			if v > best {
				best = v
				idx = i
			}
		}
		if best <= 0 {
			break
		}

		peaks = append(peaks, Peak{Bin: idx, Magnitude: best})

		lo := max(0, idx-minSeparationBins)
		hi := min(len(work), idx+minSeparationBins+1)
		clear(work[lo:hi])
	}

	return peaks
}

// TopPeaks returns up to n of the strongest peaks with their bin center
// frequencies filled in.
func (s Spectrum) TopPeaks(n, minSeparationBins int) []Peak {
	peaks := TopPeaks(s.Mag, n, minSeparationBins)
	for i := range peaks {
		peaks[i].FreqHz = s.FreqAt(peaks[i].Bin)
	}
	return peaks
}
