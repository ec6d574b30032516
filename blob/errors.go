package blob

import (
	"errors"
	"fmt"
)

// Sentinel errors for blob package.
var (
	// ErrMalformedGlyph is returned when an arc list cannot be encoded.
	ErrMalformedGlyph = errors.New("blob: malformed glyph")

	// ErrQuantizationOverflow is returned when a value does not fit its
	// fixed-point field. Errors wrapping it also match ErrMalformedGlyph.
	ErrQuantizationOverflow = errors.New("blob: quantization overflow")

	// ErrInvalidParams is returned by Params.Validate.
	ErrInvalidParams = errors.New("blob: invalid params")
)

// QuantizationError reports a value outside the range of its texture field.
type QuantizationError struct {
	Field string
	Value float64
	Limit float64
}

func (e *QuantizationError) Error() string {
	return fmt.Sprintf("blob: quantization overflow: %s = %g exceeds %g", e.Field, e.Value, e.Limit)
}

// Unwrap returns ErrQuantizationOverflow and ErrMalformedGlyph.
func (e *QuantizationError) Unwrap() []error {
	return []error{ErrQuantizationOverflow, ErrMalformedGlyph}
}
