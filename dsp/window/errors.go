package window

import "errors"

var (
	errNoCoefficients = errors.New("window: coefficients must not be empty")
	errZeroGain       = errors.New("window: coherent gain is zero")
	errLengthMismatch = errors.New("window: samples and coefficients differ in length")
)
