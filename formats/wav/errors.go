package wav

import "errors"

var (
	// ErrNilWriter is returned when no output writer is supplied.
	ErrNilWriter = errors.New("wav: nil writer")
	// ErrInvalidRate is returned when the sample rate is zero or negative.
	ErrInvalidRate = errors.New("wav: sample rate must be positive")
	// ErrNoSamples is returned when there is nothing to encode.
	ErrNoSamples = errors.New("wav: no samples to encode")
)
