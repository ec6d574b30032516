package outline

import (
	"fmt"
	"slices"

	"github.com/gogpu/glyphy/arcfit"
	"github.com/gogpu/glyphy/geom"
)

// Accumulator converts outline commands into arc endpoints.
//
// Move-tos are emitted lazily: a MoveTo only records the pen position, and
// the move endpoint is written when the first drawing command follows. A
// drawing command whose end point equals the current point is dropped.
//
// An Accumulator is not safe for concurrent use.
type Accumulator struct {
	// Tolerance is the largest distance allowed between a curve and its
	// arcs, in design units.
	Tolerance float64

	// MaxD clamps arc curvature. Defaults to geom.MaxD.
	MaxD float64

	// DBits is the number of bits used to quantize curvature. Defaults to 8.
	DBits int

	// MaxSegments bounds the arc count per curve. Defaults to
	// arcfit.DefaultMaxSegments.
	MaxSegments int

	result   []geom.ArcEndpoint
	start    geom.Point
	cur      geom.Point
	needMove bool
	maxError float64
}

// NewAccumulator returns an accumulator with the default curvature
// quantization and the given tolerance.
func NewAccumulator(tolerance float64) *Accumulator {
	return &Accumulator{
		Tolerance:   tolerance,
		MaxD:        geom.MaxD,
		DBits:       8,
		MaxSegments: arcfit.DefaultMaxSegments,
		needMove:    true,
	}
}

// Validate checks the accumulator parameters.
func (a *Accumulator) Validate() error {
	return a.fitter().Validate()
}

func (a *Accumulator) fitter() arcfit.Fitter {
	return arcfit.Fitter{
		Tolerance:   a.Tolerance,
		MaxSegments: a.MaxSegments,
		Quantizer:   arcfit.Quantizer{MaxD: a.MaxD, DBits: a.DBits},
	}
}

// Reset clears the accumulated endpoints and pen state. Parameters are kept.
func (a *Accumulator) Reset() {
	a.result = nil
	a.start = geom.Point{}
	a.cur = geom.Point{}
	a.needMove = true
	a.maxError = 0
}

// Result returns a copy of the accumulated endpoints.
func (a *Accumulator) Result() []geom.ArcEndpoint {
	return slices.Clone(a.result)
}

// MaxError returns the largest fit error seen so far.
func (a *Accumulator) MaxError() float64 {
	return a.maxError
}

// MoveTo starts a new contour at p.
func (a *Accumulator) MoveTo(p geom.Point) {
	a.needMove = true
	a.cur = p
}

// LineTo adds a straight segment to p.
func (a *Accumulator) LineTo(p geom.Point) {
	a.arcTo(p, 0)
}

// QuadTo adds a quadratic curve, elevated to a cubic.
func (a *Accumulator) QuadTo(p1, p2 geom.Point) {
	a.Bezier(geom.Bezier{
		P0: a.cur,
		P1: a.cur.Lerp(p1, 2.0/3),
		P2: p2.Lerp(p1, 2.0/3),
		P3: p2,
	})
}

// CubeTo adds a cubic curve.
func (a *Accumulator) CubeTo(p1, p2, p3 geom.Point) {
	a.Bezier(geom.Bezier{P0: a.cur, P1: p1, P2: p2, P3: p3})
}

// Close draws a straight segment back to the contour start if needed. A
// closing point within Epsilon of the start is snapped onto it.
func (a *Accumulator) Close() {
	if a.needMove {
		return
	}
	if a.cur.Equals(a.start) {
		if last := len(a.result) - 1; last >= 0 && !a.result[last].IsMove() {
			a.result[last].P = a.start
		}
	} else {
		a.arcTo(a.start, 0)
	}
	a.cur = a.start
	a.needMove = true
}

// Bezier fits b with arcs and appends them. b.P0 becomes the current point
// if the pen is elsewhere.
func (a *Accumulator) Bezier(b geom.Bezier) {
	arcs, e := a.fitter().Fit(b)
	a.maxError = max(a.maxError, e)

	if !b.P0.Equals(a.cur) {
		a.MoveTo(b.P0)
	}
	for _, arc := range arcs {
		a.arcTo(arc.P1, arc.D)
	}
}

// Accumulate feeds a command list. It stops at the first invalid command.
func (a *Accumulator) Accumulate(cmds []Command) error {
	for i, c := range cmds {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("command %d: %w", i, err)
		}
		switch c.Op {
		case MoveTo:
			a.MoveTo(c.P[0])
		case LineTo:
			a.LineTo(c.P[0])
		case QuadTo:
			a.QuadTo(c.P[0], c.P[1])
		case CubeTo:
			a.CubeTo(c.P[0], c.P[1], c.P[2])
		case Close:
			a.Close()
		}
	}
	return nil
}

func (a *Accumulator) arcTo(p geom.Point, d float64) {
	if p.Equals(a.cur) {
		return
	}
	if a.needMove {
		a.emit(geom.MoveTo(a.cur))
		a.start = a.cur
		a.needMove = false
	}
	a.emit(geom.ArcEndpoint{P: p, D: d})
}

func (a *Accumulator) emit(e geom.ArcEndpoint) {
	a.result = append(a.result, e)
	a.cur = e.P
}
