package geom

import "math"

// Vector is a 2D displacement.
type Vector struct {
	X, Y float64
}

// Add returns v + u.
func (v Vector) Add(u Vector) Vector {
	return Vector{v.X + u.X, v.Y + u.Y}
}

// Sub returns v - u.
func (v Vector) Sub(u Vector) Vector {
	return Vector{v.X - u.X, v.Y - u.Y}
}

// Scale returns v * s.
func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

// Div returns v / s.
func (v Vector) Div(s float64) Vector {
	return Vector{v.X / s, v.Y / s}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y}
}

// Dot returns the dot product of v and u.
func (v Vector) Dot(u Vector) float64 {
	return v.X*u.X + v.Y*u.Y
}

// Cross returns the z component of the 3D cross product of v and u.
func (v Vector) Cross(u Vector) float64 {
	return v.X*u.Y - v.Y*u.X
}

// Len returns the Euclidean length of v.
func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Len2 returns the squared length of v.
func (v Vector) Len2() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Ortho returns v rotated 90 degrees counter-clockwise.
func (v Vector) Ortho() Vector {
	return Vector{-v.Y, v.X}
}

// Normalized returns the unit vector along v, or the zero vector when v has
// zero length.
func (v Vector) Normalized() Vector {
	l := v.Len()
	if l == 0 {
		return Vector{}
	}
	return Vector{v.X / l, v.Y / l}
}

// Angle returns the direction of v in radians, in (-pi, pi].
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rebase expresses v in the basis (bx, by).
func (v Vector) Rebase(bx, by Vector) Vector {
	return Vector{v.Dot(bx), v.Dot(by)}
}

// RebaseOrtho expresses v in the basis (bx, bx.Ortho()).
func (v Vector) RebaseOrtho(bx Vector) Vector {
	return v.Rebase(bx, bx.Ortho())
}

// Equals reports whether v and u are equal within Epsilon.
func (v Vector) Equals(u Vector) bool {
	return FloatEquals(v.X, u.X) && FloatEquals(v.Y, u.Y)
}

// SignedVector is a vector tagged with the side of a curve it points from.
type SignedVector struct {
	Vector
	Negative bool
}

// Neg returns the opposite vector with the side flipped.
func (sv SignedVector) Neg() SignedVector {
	return SignedVector{Vector: sv.Vector.Neg(), Negative: !sv.Negative}
}

// Equals reports whether both vectors and their sides match.
func (sv SignedVector) Equals(o SignedVector) bool {
	return sv.Vector.Equals(o.Vector) && sv.Negative == o.Negative
}
