package arcfit

import (
	"fmt"
	"math"

	"github.com/gogpu/glyphy/geom"
)

// midT is the parameter of the point a single arc is fitted through.
const midT = 0.5

// Quantizer fits one arc to a curve and snaps its curvature to a
// fixed-point grid.
//
// MaxD clamps |d|. When DBits is set, d is rounded to multiples of
// MaxD/(2^(DBits-1)-1). A zero MaxD disables both steps.
type Quantizer struct {
	MaxD  float64
	DBits int
}

// DefaultQuantizer matches the data texture: |d| <= 0.5 in 8 bits.
func DefaultQuantizer() Quantizer {
	return Quantizer{MaxD: geom.MaxD, DBits: 8}
}

// Validate checks that the quantizer can be applied.
func (q Quantizer) Validate() error {
	if q.MaxD < 0 || math.IsNaN(q.MaxD) {
		return fmt.Errorf("%w: MaxD %v", ErrInvalidQuantizer, q.MaxD)
	}
	if q.DBits < 0 || q.DBits > 16 {
		return fmt.Errorf("%w: DBits %d", ErrInvalidQuantizer, q.DBits)
	}
	if q.DBits == 1 || (q.DBits > 0 && math.IsInf(q.MaxD, 0)) {
		return fmt.Errorf("%w: DBits %d needs a finite MaxD", ErrInvalidQuantizer, q.DBits)
	}
	return nil
}

// Quantize clamps and rounds d.
func (q Quantizer) Quantize(d float64) float64 {
	if q.MaxD <= 0 || math.IsInf(q.MaxD, 0) {
		return d
	}
	if math.Abs(d) > q.MaxD {
		d = math.Copysign(q.MaxD, d)
	}
	if q.DBits > 1 {
		mult := float64(int(1)<<(q.DBits-1) - 1)
		d = math.Round(d/q.MaxD*mult) * q.MaxD / mult
	}
	return d
}

// Approximate fits a single arc from b.P0 to b.P3 through the curve's
// midpoint and returns it with its error bound.
//
// The bound is that of the unquantized two-part split. When quantization
// moved d, the induced chord error is added and the direct bound of the
// quantized arc is used instead if it is smaller.
func (q Quantizer) Approximate(b geom.Bezier) (geom.Arc, float64) {
	a := geom.ArcFromPoints(b.P0, b.P3, b.Point(midT), false)
	orig := a.D
	a.D = q.Quantize(a.D)

	ed := math.Abs(a.D-orig) * a.P1.Sub(a.P0).Len() * 0.5

	err := TwoPartError(b, midT)
	if ed != 0 {
		err += ed
		if e := BezierArcError(b, a); e < err {
			err = e
		}
	}
	return a, err
}
