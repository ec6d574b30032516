package outline

import (
	"math"
	"slices"

	"github.com/gogpu/glyphy/geom"
)

// Winding reports whether a contour runs clockwise (Y up). The contour
// starts with its move-to endpoint. Arcs are accounted for by the segment
// between the chord and the arc.
func Winding(contour []geom.ArcEndpoint) bool {
	var area float64
	for i := 1; i < len(contour); i++ {
		p0 := contour[i-1].P
		p1 := contour[i].P
		d := contour[i].D
		area += p0.Vec().Cross(p1.Vec())
		area -= 0.5 * d * p1.Sub(p0).Len2()
	}
	return area < 0
}

// EvenOdd reports whether the first point of contour lies inside an even
// number of the other contours of all. contour must be the sub-slice of all
// starting at index start.
//
// A half-line is cast from the point towards -X and its crossings with every
// other contour are counted. Endpoints lying on the half-line count as half
// a crossing, signed by the direction in which the outline passes them.
func EvenOdd(contour, all []geom.ArcEndpoint, start int) bool {
	if len(contour) == 0 {
		return true
	}
	p := contour[0].P
	end := start + len(contour)

	var count float64
	for i, arc := range geom.Arcs(all) {
		if i >= start && i < end {
			continue
		}

		s0 := categorize(arc.P0.Y, p.Y)
		s1 := categorize(arc.P1.Y, p.Y)

		if nearZero(arc.D) {
			if s0 == 0 || s1 == 0 {
				t0, t1 := arc.Tangents()
				if s0 == 0 && arc.P0.X < p.X+geom.Epsilon {
					count += 0.5 * float64(categorize(t0.Y, 0))
				}
				if s1 == 0 && arc.P1.X < p.X+geom.Epsilon {
					count += 0.5 * float64(categorize(t1.Y, 0))
				}
				continue
			}
			if s0 == s1 {
				continue
			}
			x := arc.P0.X + (arc.P1.X-arc.P0.X)*((p.Y-arc.P0.Y)/(arc.P1.Y-arc.P0.Y))
			if x >= p.X-geom.Epsilon {
				continue
			}
			count++
			continue
		}

		if s0 == 0 || s1 == 0 {
			t0, t1 := arc.Tangents()
			// A horizontal tangent says nothing; look at where the arc goes.
			if nearZero(t0.Y) {
				t0.Y = float64(categorize(arc.P1.Y, p.Y))
			}
			if nearZero(t1.Y) {
				t1.Y = -float64(categorize(arc.P0.Y, p.Y))
			}
			if s0 == 0 && arc.P0.X < p.X+geom.Epsilon {
				count += 0.5 * float64(categorize(t0.Y, 0))
			}
			if s1 == 0 && arc.P1.X < p.X+geom.Epsilon {
				count += 0.5 * float64(categorize(t1.Y, 0))
			}
		}

		c := arc.Center()
		r := arc.Radius()
		if c.X-r >= p.X {
			continue
		}
		y := p.Y - c.Y
		x2 := r*r - y*y
		if x2 <= geom.Epsilon {
			continue
		}
		dx := math.Sqrt(x2)
		for _, q := range [2]geom.Point{{X: c.X - dx, Y: p.Y}, {X: c.X + dx, Y: p.Y}} {
			if !q.Equals(arc.P0) && !q.Equals(arc.P1) &&
				q.X < p.X-geom.Epsilon && arc.WedgeContainsPoint(q) {
				count++
			}
		}
	}

	return int64(math.Floor(count))&1 == 0
}

func nearZero(v float64) bool {
	return math.Abs(v) < geom.Epsilon
}

func categorize(v, ref float64) int {
	switch {
	case v < ref-geom.Epsilon:
		return -1
	case v > ref+geom.Epsilon:
		return 1
	default:
		return 0
	}
}

// Reverse returns the contour traversed in the opposite direction. The
// result starts with a move-to at the old end point, and every arc keeps its
// shape with its curvature negated.
func Reverse(contour []geom.ArcEndpoint) []geom.ArcEndpoint {
	n := len(contour)
	out := make([]geom.ArcEndpoint, n)
	for i := range contour {
		d := contour[0].D
		if i < n-1 {
			d = negate(contour[i+1].D)
		}
		out[n-1-i] = geom.ArcEndpoint{P: contour[i].P, D: d}
	}
	return out
}

func negate(d float64) float64 {
	if d == 0 || d == geom.Infinity {
		return d
	}
	return -d
}

// ResolveWinding orients every closed contour of endpoints so that the fill
// lies on the right of travel, and reports whether any contour was
// reversed. With inverse set, the opposite orientation is produced.
//
// The input is not modified. Every decision is made against the input list,
// so applying ResolveWinding to its own output changes nothing. Open
// contours and contours of fewer than three endpoints are copied as is.
func ResolveWinding(endpoints []geom.ArcEndpoint, inverse bool) ([]geom.ArcEndpoint, bool) {
	out := slices.Clone(endpoints)
	starts := geom.Contours(endpoints)

	var changed bool
	for k, start := range starts {
		end := len(endpoints)
		if k+1 < len(starts) {
			end = starts[k+1]
		}
		contour := endpoints[start:end]
		if !reversible(contour) {
			continue
		}
		if inverse != Winding(contour) != EvenOdd(contour, endpoints, start) {
			copy(out[start:end], Reverse(contour))
			changed = true
		}
	}
	return out, changed
}

func reversible(contour []geom.ArcEndpoint) bool {
	if len(contour) < 3 || !contour[0].IsMove() {
		return false
	}
	return contour[0].P.Equals(contour[len(contour)-1].P)
}
