package geom

import "math"

// Segment is the straight line segment from P0 to P1.
type Segment struct {
	P0, P1 Point
}

// Sub returns the signed shortest vector from the segment's line to p.
func (s Segment) Sub(p Point) SignedVector {
	return p.ShortestDistanceToLine(LineFromPoints(s.P1, s.P0))
}

// DistanceToPoint returns the signed distance from p to the segment. Points
// to the left of P0->P1 are negative. Outside the span the distance is to
// the nearer endpoint, keeping the sign of the side p lies on.
func (s Segment) DistanceToPoint(p Point) float64 {
	if s.P0 == s.P1 {
		return p.DistanceTo(s.P0)
	}

	l := LineFromPoints(s.P0, s.P1)
	side := -(l.N.Dot(p.Vec()) - l.C)
	if s.ContainsInSpan(p) {
		return side / l.N.Len()
	}

	d := math.Min(p.DistanceTo(s.P0), p.DistanceTo(s.P1))
	if side < 0 {
		return -d
	}
	return d
}

// SquaredDistanceToPoint returns the squared unsigned distance from p to the
// segment.
func (s Segment) SquaredDistanceToPoint(p Point) float64 {
	if s.P0 == s.P1 {
		return p.SquaredDistanceTo(s.P0)
	}

	if s.ContainsInSpan(p) {
		l := LineFromPoints(s.P0, s.P1)
		a := p.Vec().Dot(l.N) - l.C
		return a * a / l.N.Len2()
	}
	return math.Min(p.SquaredDistanceTo(s.P0), p.SquaredDistanceTo(s.P1))
}

// ContainsInSpan reports whether the projection of p onto the segment's line
// falls strictly between P0 and P1.
func (s Segment) ContainsInSpan(p Point) bool {
	if s.P0 == s.P1 {
		return false
	}
	d := s.P1.Sub(s.P0)
	t := p.Sub(s.P0).Dot(d) / d.Len2()
	return t > 0 && t < 1
}

// MaxDistanceToArc returns the larger of the distances from the segment's
// endpoints to a.
func (s Segment) MaxDistanceToArc(a Arc) float64 {
	return math.Max(math.Abs(a.DistanceToPoint(s.P0)), math.Abs(a.DistanceToPoint(s.P1)))
}
