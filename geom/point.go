package geom

import "math"

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{x, y}
}

// Vec returns the vector from the origin to p.
func (p Point) Vec() Vector {
	return Vector{p.X, p.Y}
}

// Add returns p translated by v.
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

// SubVec returns p translated by -v.
func (p Point) SubVec(v Vector) Point {
	return Point{p.X - v.X, p.Y - v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{p.X - q.X, p.Y - q.Y}
}

// Equals reports whether p and q coincide within Epsilon.
func (p Point) Equals(q Point) bool {
	return FloatEquals(p.X, q.X) && FloatEquals(p.Y, q.Y)
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// Lerp returns (1-t)*p + t*q. The endpoints are returned exactly for t == 0
// and t == 1.
func (p Point) Lerp(q Point, t float64) Point {
	switch t {
	case 0:
		return p
	case 1:
		return q
	}
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

// Bisector returns the perpendicular bisector of the segment p-q.
func (p Point) Bisector(q Point) Line {
	d := q.Sub(p)
	return Line{N: d.Scale(2), C: q.Vec().Dot(d) + p.Vec().Dot(d)}
}

// SquaredDistanceTo returns the squared distance between p and q.
func (p Point) SquaredDistanceTo(q Point) float64 {
	return p.Sub(q).Len2()
}

// DistanceTo returns the distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return p.Sub(q).Len()
}

// IsInf reports whether both coordinates are infinite.
func (p Point) IsInf() bool {
	return math.IsInf(p.X, 0) && math.IsInf(p.Y, 0)
}

// ShortestDistanceToLine returns the signed shortest vector from p to l.
func (p Point) ShortestDistanceToLine(l Line) SignedVector {
	return l.Sub(p).Neg()
}
