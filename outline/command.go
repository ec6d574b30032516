package outline

import (
	"fmt"
	"math"

	"github.com/gogpu/glyphy/geom"
)

// Op is the type of an outline command.
type Op uint8

const (
	// MoveTo starts a new contour at P[0].
	MoveTo Op = iota

	// LineTo draws a straight line to P[0].
	LineTo

	// QuadTo draws a quadratic curve with control P[0] to P[1].
	QuadTo

	// CubeTo draws a cubic curve with controls P[0], P[1] to P[2].
	CubeTo

	// Close closes the current contour.
	Close
)

// String returns a string representation of the operation.
func (op Op) String() string {
	switch op {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case QuadTo:
		return "QuadTo"
	case CubeTo:
		return "CubeTo"
	case Close:
		return "Close"
	default:
		return "Unknown"
	}
}

// points returns the number of points the op carries, or -1 if unknown.
func (op Op) points() int {
	switch op {
	case MoveTo, LineTo:
		return 1
	case QuadTo:
		return 2
	case CubeTo:
		return 3
	case Close:
		return 0
	default:
		return -1
	}
}

// Command is one outline drawing command in design units, Y up.
type Command struct {
	Op Op
	P  []geom.Point
}

// Move returns a MoveTo command.
func Move(x, y float64) Command {
	return Command{Op: MoveTo, P: []geom.Point{{X: x, Y: y}}}
}

// Line returns a LineTo command.
func Line(x, y float64) Command {
	return Command{Op: LineTo, P: []geom.Point{{X: x, Y: y}}}
}

// Quad returns a QuadTo command.
func Quad(cx, cy, x, y float64) Command {
	return Command{Op: QuadTo, P: []geom.Point{{X: cx, Y: cy}, {X: x, Y: y}}}
}

// Cubic returns a CubeTo command.
func Cubic(c1x, c1y, c2x, c2y, x, y float64) Command {
	return Command{Op: CubeTo, P: []geom.Point{{X: c1x, Y: c1y}, {X: c2x, Y: c2y}, {X: x, Y: y}}}
}

// ClosePath returns a Close command.
func ClosePath() Command {
	return Command{Op: Close}
}

// Validate checks the point count and coordinates of c.
func (c Command) Validate() error {
	n := c.Op.points()
	if n < 0 {
		return fmt.Errorf("%w: unknown op %d", ErrInvalidCommand, c.Op)
	}
	if len(c.P) != n {
		return fmt.Errorf("%w: %s needs %d points, got %d", ErrInvalidCommand, c.Op, n, len(c.P))
	}
	for _, p := range c.P {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("%w: %s has non-finite point (%v, %v)", ErrInvalidCommand, c.Op, p.X, p.Y)
		}
	}
	return nil
}
