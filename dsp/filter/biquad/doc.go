// Package biquad implements second-order IIR filter sections and cascades.
//
// A [Section] runs a single second-order stage, defined by [Coefficients],
// in Direct Form II Transposed. Higher-order filters (Butterworth, Bessel)
// are built by chaining sections into a [Cascade]. Filter state persists
// across ProcessBlock calls, so a long signal filtered chunk by chunk
// produces output identical to a single pass over the whole signal.
//
// Coefficient design lives in dsp/filter/design; this package only runs
// the filters.
package biquad
