// Package design computes biquad cascade coefficients for the lowpass
// filters used in pulse-density demodulation.
//
// Two approximation families are supported: Butterworth (maximally flat
// magnitude) and Bessel (maximally flat group delay, the usual choice when
// waveform shape matters more than stopband steepness). Designs are returned
// as second-order sections for dsp/filter/biquad, ordered most-damped first
// so intermediate cascade stages stay well conditioned.
//
// All parameters are validated up front; invalid orders, rates, or cutoffs
// return an error rather than silently producing an unstable filter.
package design
