package geom

// Line is the set of points p with N·p = C.
type Line struct {
	N Vector
	C float64
}

// LineFromPoints returns the line through p0 and p1. Its normal is
// (p1-p0).Ortho(), so points to the left of the direction of travel have
// N·p > C.
func LineFromPoints(p0, p1 Point) Line {
	n := p1.Sub(p0).Ortho()
	return Line{N: n, C: p0.Vec().Dot(n)}
}

// Normalized returns the same line with a unit normal. Lines with a zero
// normal are returned unchanged.
func (l Line) Normalized() Line {
	d := l.N.Len()
	if FloatEquals(d, 0) {
		return l
	}
	return Line{N: l.N.Div(d), C: l.C / d}
}

// Intersect returns the intersection of l and m, or a point at +Inf when the
// lines are parallel.
func (l Line) Intersect(m Line) Point {
	dot := l.N.X*m.N.Y - l.N.Y*m.N.X
	if dot == 0 {
		return Point{Infinity, Infinity}
	}
	return Point{
		(l.C*m.N.Y - l.N.Y*m.C) / dot,
		(l.N.X*m.C - l.C*m.N.X) / dot,
	}
}

// Sub returns the shortest vector from p to the line. It is Negative when p
// lies on the side the normal points to.
func (l Line) Sub(p Point) SignedVector {
	mag := -(l.N.Dot(p.Vec()) - l.C) / l.N.Len()
	return SignedVector{Vector: l.N.Normalized().Scale(mag), Negative: mag < 0}
}
