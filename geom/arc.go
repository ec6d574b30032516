package geom

import "math"

// straightD is the |d| below which an arc is treated as a line segment.
const straightD = 1e-5

// Arc is a circular arc from P0 to P1 with D = tan(θ/4).
type Arc struct {
	P0, P1 Point
	D      float64
}

// ArcFromPoints returns the arc from p0 to p1 passing through pm, or its
// complement. The arc degenerates to a straight segment when pm coincides
// with either endpoint.
func ArcFromPoints(p0, p1, pm Point, complement bool) Arc {
	a := Arc{P0: p0, P1: p1}
	if p0 != pm && p1 != pm {
		v := p1.Sub(pm)
		u := p0.Sub(pm)
		shift := math.Pi / 2
		if complement {
			shift = 0
		}
		a.D = math.Tan((v.Angle()-u.Angle())/2 - shift)
	}
	return a
}

// ArcFromCenterRadiusAngle returns the arc on the given circle from angle a0
// to angle a1.
func ArcFromCenterRadiusAngle(center Point, radius, a0, a1 float64, complement bool) Arc {
	p0 := center.Add(Vector{math.Cos(a0), math.Sin(a0)}.Scale(radius))
	p1 := center.Add(Vector{math.Cos(a1), math.Sin(a1)}.Scale(radius))
	shift := math.Pi / 2
	if complement {
		shift = 0
	}
	return Arc{P0: p0, P1: p1, D: math.Tan((a1-a0)/4 - shift)}
}

// IsStraight reports whether the arc is flat enough to be handled as a
// segment.
func (a Arc) IsStraight() bool {
	return math.Abs(a.D) < straightD
}

// Equals reports whether a and b match within Epsilon.
func (a Arc) Equals(b Arc) bool {
	return a.P0.Equals(b.P0) && a.P1.Equals(b.P1) && FloatEquals(a.D, b.D)
}

// Angle returns the signed angle subtended by the arc, 4*atan(D).
func (a Arc) Angle() float64 {
	return 4 * math.Atan(a.D)
}

// Radius returns the radius of the arc's circle. It is +Inf for a straight
// arc.
func (a Arc) Radius() float64 {
	return math.Abs(a.P1.Sub(a.P0).Len() / (2 * SinTwoAtan(a.D)))
}

// Center returns the center of the arc's circle. The result is not finite
// for a straight arc.
func (a Arc) Center() Point {
	return a.P0.Midpoint(a.P1).Add(a.P1.Sub(a.P0).Ortho().Scale(1 / (2 * TanTwoAtan(a.D))))
}

// Tangents returns the unnormalized tangent vectors at P0 and P1, both in
// the direction of travel.
func (a Arc) Tangents() (start, end Vector) {
	dp := a.P1.Sub(a.P0).Scale(0.5)
	pp := dp.Ortho().Scale(-SinTwoAtan(a.D))
	dp = dp.Scale(CosTwoAtan(a.D))
	return dp.Add(pp), dp.Sub(pp)
}

// ApproximateBezier returns the cubic Bezier closest to the arc together
// with an upper bound of the distance between them.
func (a Arc) ApproximateBezier() (Bezier, float64) {
	dp := a.P1.Sub(a.P0)
	pp := dp.Ortho()
	d2 := a.D * a.D

	errBound := dp.Len() * math.Pow(math.Abs(a.D), 5) / (54 * (1 + d2))

	rdp := dp.Scale((1 - d2) / 3)
	rpp := pp.Scale(2 * a.D / 3)

	p0s := a.P0.Add(rdp).SubVec(rpp)
	p1s := a.P1.SubVec(rdp).SubVec(rpp)
	return Bezier{a.P0, p0s, p1s, a.P1}, errBound
}

// WedgeContainsPoint reports whether p lies in the angular sector the arc
// subtends, borders included.
func (a Arc) WedgeContainsPoint(p Point) bool {
	t0, t1 := a.Tangents()
	in0 := p.Sub(a.P0).Dot(t0) >= 0
	in1 := p.Sub(a.P1).Dot(t1) <= 0
	if math.Abs(a.D) <= 1 {
		return in0 && in1
	}
	return in0 || in1
}

// Sub returns the signed shortest vector between the arc and p.
func (a Arc) Sub(p Point) SignedVector {
	if a.IsStraight() {
		return Segment{a.P0, a.P1}.Sub(p)
	}

	c := a.Center()
	r := a.Radius()
	if a.WedgeContainsPoint(p) {
		dist := p.DistanceTo(c)
		diff := c.Sub(p).Normalized().Scale(math.Abs(dist - r))
		return SignedVector{Vector: diff, Negative: (a.D < 0) != (dist < r)}
	}

	minP := a.P1
	if p.SquaredDistanceTo(a.P0) < p.SquaredDistanceTo(a.P1) {
		minP = a.P0
	}
	normal := c.Sub(minP)
	if normal.Len() == 0 {
		return SignedVector{Negative: true}
	}

	other := Arc{P0: a.P0, P1: a.P1, D: (1 + a.D) / (1 - a.D)}
	l := Line{N: normal, C: normal.Dot(minP.Vec())}
	return SignedVector{Vector: l.Sub(p).Vector, Negative: !other.WedgeContainsPoint(p)}
}

// DistanceToPoint returns the signed distance from p to the arc. Inside the
// wedge the distance is measured to the circle, outside it to the nearer
// endpoint.
func (a Arc) DistanceToPoint(p Point) float64 {
	if a.IsStraight() {
		return Segment{a.P0, a.P1}.DistanceToPoint(p)
	}

	sign := 1.0
	if a.Sub(p).Negative {
		sign = -1
	}

	if a.WedgeContainsPoint(p) {
		return math.Abs(p.DistanceTo(a.Center())-a.Radius()) * sign
	}
	d := math.Min(p.SquaredDistanceTo(a.P0), p.SquaredDistanceTo(a.P1))
	return math.Sqrt(d) * sign
}

// SquaredDistanceToPoint returns the squared unsigned distance from p to the
// arc.
func (a Arc) SquaredDistanceToPoint(p Point) float64 {
	if a.IsStraight() {
		return Segment{a.P0, a.P1}.SquaredDistanceToPoint(p)
	}

	if a.WedgeContainsPoint(p) {
		d := p.DistanceTo(a.Center()) - a.Radius()
		return d * d
	}
	return math.Min(p.SquaredDistanceTo(a.P0), p.SquaredDistanceTo(a.P1))
}

// ExtendedDist returns the signed distance from p to the tangent line at the
// endpoint nearer to p. It breaks ties between arcs that share an endpoint.
func (a Arc) ExtendedDist(p Point) float64 {
	m := a.P0.Lerp(a.P1, 0.5)
	dp := a.P1.Sub(a.P0)
	pp := dp.Ortho()
	d2 := TanTwoAtan(a.D)

	if p.Sub(m).Dot(a.P1.Sub(m)) < 0 {
		return p.Sub(a.P0).Dot(pp.Add(dp.Scale(d2)).Normalized())
	}
	return p.Sub(a.P1).Dot(pp.Sub(dp.Scale(d2)).Normalized())
}

// Extents returns the bounding box of the arc.
func (a Arc) Extents() AABB {
	e := EmptyAABB()
	e.Add(a.P0)
	e.Add(a.P1)
	if a.IsStraight() {
		return e
	}

	c := a.Center()
	r := a.Radius()
	for _, v := range [4]Vector{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		p := c.Add(v.Scale(r))
		if a.WedgeContainsPoint(p) {
			e.Add(p)
		}
	}
	return e
}
