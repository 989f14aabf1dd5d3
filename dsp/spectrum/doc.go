// Package spectrum provides magnitude spectrum analysis for reconstructed
// audio.
//
// Analyzer computes one-sided, coherent-gain normalized magnitude spectra
// with window framing and power-of-two zero padding. TopPeaks ranks the
// strongest spectral peaks while suppressing a guard band around each find,
// so one wide lobe is never reported twice. Goertzel evaluates single
// frequency bins without a full transform, which keeps tone checks cheap.
package spectrum
