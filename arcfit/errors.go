package arcfit

import "errors"

// Sentinel errors for arcfit package.
var (
	// ErrInvalidTolerance is returned when a fitter tolerance is not positive.
	ErrInvalidTolerance = errors.New("arcfit: tolerance must be positive")

	// ErrInvalidQuantizer is returned for a Quantizer that cannot be applied.
	ErrInvalidQuantizer = errors.New("arcfit: invalid quantizer")
)
