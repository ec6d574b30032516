package arcfit

import (
	"math"

	"github.com/gogpu/glyphy/geom"
)

// MaxDeviation returns max |3t(1-t)(d0(1-t) + d1 t)| for t in [0, 1].
// The maximum is taken over the interval ends and the real roots of the
// derivative, so the result is exact.
func MaxDeviation(d0, d1 float64) float64 {
	candidates := [4]float64{0, 1}
	n := 2
	if d0 == d1 {
		candidates[n] = 0.5
		n++
	} else {
		delta := d0*d0 - d0*d1 + d1*d1
		t2 := 1 / (3 * (d0 - d1))
		t0 := (2*d0 - d1) * t2
		switch {
		case delta == 0:
			candidates[n] = t0
			n++
		case delta > 0:
			t1 := math.Sqrt(delta) * t2
			candidates[n] = t0 - t1
			candidates[n+1] = t0 + t1
			n += 2
		}
	}

	var e float64
	for _, t := range candidates[:n] {
		if t < 0 || t > 1 {
			continue
		}
		e = max(e, math.Abs(3*t*(1-t)*(d0*(1-t)+d1*t)))
	}
	return e
}

// BezierArcError returns an upper bound of the distance between the curve b
// and the arc a. Both must share their endpoints.
func BezierArcError(b geom.Bezier, a geom.Arc) float64 {
	ab, ea := a.ApproximateBezier()

	basis := b.P3.Sub(b.P0).Normalized()
	v0 := ab.P1.Sub(b.P1).RebaseOrtho(basis)
	v1 := ab.P2.Sub(b.P2).RebaseOrtho(basis)

	v := geom.Vector{X: MaxDeviation(v0.X, v1.X), Y: MaxDeviation(v0.Y, v1.Y)}

	// Nearly half circles and control points outside the wedge only get the
	// weak bound.
	if a.D*a.D > 1-1e-4 {
		return ea + v.Len()
	}
	if !a.WedgeContainsPoint(b.P1) || !a.WedgeContainsPoint(b.P2) {
		return ea + v.Len()
	}

	if math.Abs(a.D) < 1e-6 {
		return ea + v.Y
	}

	tanHalfAlpha := math.Abs(geom.TanTwoAtan(a.D))
	if tanV := v.X / v.Y; math.Abs(tanV) <= tanHalfAlpha {
		return ea + v.Len()
	}

	c2 := a.P1.Sub(a.P0).Len() * 0.5
	r := a.Radius()
	eb := geom.Vector{X: c2 + v.X, Y: c2/tanHalfAlpha + v.Y}.Len() - r
	return ea + max(eb, 0)
}

// TwoPartError splits b at t and returns the larger error of the two arcs
// that pass through the split point and either endpoint of b.
func TwoPartError(b geom.Bezier, t float64) float64 {
	first, second := b.Split(t)
	m := second.P0

	a0 := geom.ArcFromPoints(b.P0, m, b.P3, true)
	a1 := geom.ArcFromPoints(m, b.P3, b.P0, true)

	return max(BezierArcError(first, a0), BezierArcError(second, a1))
}
