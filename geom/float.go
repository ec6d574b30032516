package geom

import "math"

const (
	// Epsilon is the tolerance for equality and zero tests.
	Epsilon = 1e-4

	// MaxD is the largest |d| the data texture can represent.
	MaxD = 0.5
)

// Infinity is the d value that marks a move-to endpoint.
var Infinity = math.Inf(1)

// IsInf reports whether x is positive or negative infinity.
func IsInf(x float64) bool {
	return math.IsInf(x, 0)
}

// FloatEquals reports whether a and b differ by less than Epsilon.
func FloatEquals(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// IsZero reports whether v is within 2*Epsilon of zero.
func IsZero(v float64) bool {
	return math.Abs(v) < 2*Epsilon
}

// SinTwoAtan returns sin(2*atan(d)).
func SinTwoAtan(d float64) float64 {
	return 2 * d / (1 + d*d)
}

// CosTwoAtan returns cos(2*atan(d)).
func CosTwoAtan(d float64) float64 {
	return (1 - d*d) / (1 + d*d)
}

// TanTwoAtan returns tan(2*atan(d)).
func TanTwoAtan(d float64) float64 {
	return 2 * d / (1 - d*d)
}
