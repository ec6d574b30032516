package geom

// Bezier is a cubic Bezier curve.
type Bezier struct {
	P0, P1, P2, P3 Point
}

// Point evaluates the curve at t using de Casteljau's algorithm.
func (b Bezier) Point(t float64) Point {
	p01 := b.P0.Lerp(b.P1, t)
	p12 := b.P1.Lerp(b.P2, t)
	p23 := b.P2.Lerp(b.P3, t)
	return p01.Lerp(p12, t).Lerp(p12.Lerp(p23, t), t)
}

// Midpoint returns the point at t = 0.5.
func (b Bezier) Midpoint() Point {
	p01 := b.P0.Midpoint(b.P1)
	p12 := b.P1.Midpoint(b.P2)
	p23 := b.P2.Midpoint(b.P3)
	return p01.Midpoint(p12).Midpoint(p12.Midpoint(p23))
}

// Tangent returns the first derivative at t.
func (b Bezier) Tangent(t float64) Vector {
	t2 := t * t
	mt2 := (1 - t) * (1 - t)
	k1 := 1 - 4*t + 3*t2
	k2 := 2*t - 3*t2
	return Vector{
		-3*b.P0.X*mt2 + 3*b.P1.X*k1 + 3*b.P2.X*k2 + 3*b.P3.X*t2,
		-3*b.P0.Y*mt2 + 3*b.P1.Y*k1 + 3*b.P2.Y*k2 + 3*b.P3.Y*t2,
	}
}

// DTangent returns the second derivative at t.
func (b Bezier) DTangent(t float64) Vector {
	return Vector{
		6 * ((-b.P0.X+3*b.P1.X-3*b.P2.X+b.P3.X)*t + (b.P0.X - 2*b.P1.X + b.P2.X)),
		6 * ((-b.P0.Y+3*b.P1.Y-3*b.P2.Y+b.P3.Y)*t + (b.P0.Y - 2*b.P1.Y + b.P2.Y)),
	}
}

// Curvature returns the signed curvature at t.
func (b Bezier) Curvature(t float64) float64 {
	dpp := b.Tangent(t).Ortho()
	ddp := b.DTangent(t)
	l := dpp.Len()
	return dpp.Dot(ddp) / (l * l * l)
}

// Split divides the curve at t.
func (b Bezier) Split(t float64) (Bezier, Bezier) {
	p01 := b.P0.Lerp(b.P1, t)
	p12 := b.P1.Lerp(b.P2, t)
	p23 := b.P2.Lerp(b.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	p0123 := p012.Lerp(p123, t)
	return Bezier{b.P0, p01, p012, p0123}, Bezier{p0123, p123, p23, b.P3}
}

// Halve divides the curve at t = 0.5.
func (b Bezier) Halve() (Bezier, Bezier) {
	p01 := b.P0.Midpoint(b.P1)
	p12 := b.P1.Midpoint(b.P2)
	p23 := b.P2.Midpoint(b.P3)
	p012 := p01.Midpoint(p12)
	p123 := p12.Midpoint(p23)
	p0123 := p012.Midpoint(p123)
	return Bezier{b.P0, p01, p012, p0123}, Bezier{p0123, p123, p23, b.P3}
}

// Segment returns the part of the curve between t0 and t1, 0 <= t0 < t1 <= 1.
func (b Bezier) Segment(t0, t1 float64) Bezier {
	p01 := b.P0.Lerp(b.P1, t0)
	p12 := b.P1.Lerp(b.P2, t0)
	p23 := b.P2.Lerp(b.P3, t0)
	p012 := p01.Lerp(p12, t0)
	p123 := p12.Lerp(p23, t0)
	p0123 := p012.Lerp(p123, t0)

	q01 := b.P0.Lerp(b.P1, t1)
	q12 := b.P1.Lerp(b.P2, t1)
	q23 := b.P2.Lerp(b.P3, t1)
	q012 := q01.Lerp(q12, t1)
	q123 := q12.Lerp(q23, t1)
	q0123 := q012.Lerp(q123, t1)

	return Bezier{
		p0123,
		p0123.Add(p123.Sub(p0123).Scale((t1 - t0) / (1 - t0))),
		q0123.Add(q012.Sub(q0123).Scale((t1 - t0) / t1)),
		q0123,
	}
}
