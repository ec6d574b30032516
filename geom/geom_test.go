package geom

import (
	"math"
	"testing"
)

const testTol = 1e-9

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func nearPoint(p, q Point, tol float64) bool {
	return near(p.X, q.X, tol) && near(p.Y, q.Y, tol)
}

func TestTwoAtanIdentities(t *testing.T) {
	for _, d := range []float64{-0.9, -0.3, 0, 0.2, 0.5, 0.75} {
		a := 2 * math.Atan(d)
		if got := SinTwoAtan(d); !near(got, math.Sin(a), testTol) {
			t.Errorf("SinTwoAtan(%v) = %v, want %v", d, got, math.Sin(a))
		}
		if got := CosTwoAtan(d); !near(got, math.Cos(a), testTol) {
			t.Errorf("CosTwoAtan(%v) = %v, want %v", d, got, math.Cos(a))
		}
		if got := TanTwoAtan(d); !near(got, math.Tan(a), 1e-6) {
			t.Errorf("TanTwoAtan(%v) = %v, want %v", d, got, math.Tan(a))
		}
	}
}

func TestFloatEquals(t *testing.T) {
	tests := []struct {
		a, b float64
		want bool
	}{
		{1, 1, true},
		{1, 1 + 5e-5, true},
		{1, 1 + 2e-4, false},
		{-3, -3.00009, true},
	}
	for _, tt := range tests {
		if got := FloatEquals(tt.a, tt.b); got != tt.want {
			t.Errorf("FloatEquals(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
	if !IsZero(1.5e-4) {
		t.Error("IsZero(1.5e-4) = false, want true")
	}
	if IsZero(3e-4) {
		t.Error("IsZero(3e-4) = true, want false")
	}
}

func TestVectorOps(t *testing.T) {
	v := Vector{3, 4}
	if v.Len() != 5 {
		t.Errorf("Len() = %v, want 5", v.Len())
	}
	if v.Len2() != 25 {
		t.Errorf("Len2() = %v, want 25", v.Len2())
	}
	if got := v.Ortho(); got != (Vector{-4, 3}) {
		t.Errorf("Ortho() = %v, want {-4 3}", got)
	}
	if got := v.Cross(Vector{1, 0}); got != -4 {
		t.Errorf("Cross() = %v, want -4", got)
	}
	if got := (Vector{}).Normalized(); got != (Vector{}) {
		t.Errorf("zero Normalized() = %v, want zero", got)
	}
	b := Vector{1, 0}
	if got := v.RebaseOrtho(b); got != (Vector{3, 4}) {
		t.Errorf("RebaseOrtho(x axis) = %v, want {3 4}", got)
	}
	if got := v.RebaseOrtho(Vector{0, 1}); got != (Vector{4, -3}) {
		t.Errorf("RebaseOrtho(y axis) = %v, want {4 -3}", got)
	}
}

func TestSignedVectorNeg(t *testing.T) {
	sv := SignedVector{Vector: Vector{1, -2}, Negative: false}
	n := sv.Neg()
	if n.Vector != (Vector{-1, 2}) || !n.Negative {
		t.Errorf("Neg() = %+v, want {-1 2} negative", n)
	}
	if !n.Neg().Equals(sv) {
		t.Error("Neg().Neg() does not equal the original")
	}
}

func TestPointLerpExactEnds(t *testing.T) {
	p := Pt(1.1, 2.2)
	q := Pt(-3.3, 7.7)
	if p.Lerp(q, 0) != p {
		t.Error("Lerp(0) is not exactly p")
	}
	if p.Lerp(q, 1) != q {
		t.Error("Lerp(1) is not exactly q")
	}
	if got := p.Lerp(q, 0.5); !nearPoint(got, p.Midpoint(q), testTol) {
		t.Errorf("Lerp(0.5) = %v, want %v", got, p.Midpoint(q))
	}
}

func TestLineIntersect(t *testing.T) {
	h := LineFromPoints(Pt(0, 0), Pt(1, 0))
	v := LineFromPoints(Pt(2, 0), Pt(2, 1))
	if got := h.Intersect(v); !nearPoint(got, Pt(2, 0), testTol) {
		t.Errorf("Intersect() = %v, want (2, 0)", got)
	}
	par := LineFromPoints(Pt(0, 1), Pt(1, 1))
	if got := h.Intersect(par); !got.IsInf() {
		t.Errorf("parallel Intersect() = %v, want infinite", got)
	}
}

func TestLineNormalized(t *testing.T) {
	l := LineFromPoints(Pt(0, 3), Pt(4, 3)).Normalized()
	if !near(l.N.Len(), 1, testTol) {
		t.Errorf("normal length = %v, want 1", l.N.Len())
	}
	// Points on the line satisfy N·p = C.
	if got := l.N.Dot(Pt(10, 3).Vec()); !near(got, l.C, testTol) {
		t.Errorf("N·p = %v, want %v", got, l.C)
	}
}

func TestSegmentDistance(t *testing.T) {
	s := Segment{Pt(0, 0), Pt(1, 0)}
	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"left of travel", Pt(0.5, 1), -1},
		{"right of travel", Pt(0.5, -1), 1},
		{"past end, left", Pt(2, 0.5), -math.Hypot(1, 0.5)},
		{"before start, right", Pt(-3, -4), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.DistanceToPoint(tt.p); !near(got, tt.want, testTol) {
				t.Errorf("DistanceToPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
			if got := s.SquaredDistanceToPoint(tt.p); !near(got, tt.want*tt.want, testTol) {
				t.Errorf("SquaredDistanceToPoint(%v) = %v, want %v", tt.p, got, tt.want*tt.want)
			}
		})
	}
}

func TestSegmentContainsInSpan(t *testing.T) {
	s := Segment{Pt(0, 0), Pt(0, 10)}
	if !s.ContainsInSpan(Pt(5, 5)) {
		t.Error("ContainsInSpan(5,5) = false, want true")
	}
	if s.ContainsInSpan(Pt(5, 11)) {
		t.Error("ContainsInSpan(5,11) = true, want false")
	}
	if (Segment{Pt(1, 1), Pt(1, 1)}).ContainsInSpan(Pt(1, 1)) {
		t.Error("degenerate ContainsInSpan = true, want false")
	}
}

func TestAABBMonotonic(t *testing.T) {
	b := EmptyAABB()
	if !b.IsEmpty() {
		t.Fatal("EmptyAABB().IsEmpty() = false")
	}

	pts := []Point{{1, 1}, {-2, 3}, {0, 0}, {5, -1}, {1, 1}}
	prev := b
	for i, p := range pts {
		b.Add(p)
		if b.IsEmpty() {
			t.Fatalf("IsEmpty() after Add #%d", i)
		}
		if !b.Includes(p) {
			t.Errorf("Add(%v) does not include the point", p)
		}
		if !prev.IsEmpty() {
			if b.MinX > prev.MinX || b.MinY > prev.MinY || b.MaxX < prev.MaxX || b.MaxY < prev.MaxY {
				t.Errorf("Add(%v) shrank %+v to %+v", p, prev, b)
			}
		}
		prev = b
	}

	want := AABB{MinX: -2, MinY: -1, MaxX: 5, MaxY: 3}
	if b != want {
		t.Errorf("bounds = %+v, want %+v", b, want)
	}

	before := b
	b.Extend(EmptyAABB())
	if b != before {
		t.Errorf("Extend(empty) changed %+v to %+v", before, b)
	}
	b.Extend(AABB{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1})
	if b != before {
		t.Errorf("Extend(inner) changed %+v to %+v", before, b)
	}
	b.Extend(AABB{MinX: -10, MinY: 0, MaxX: 0, MaxY: 10})
	if b.MinX != -10 || b.MaxY != 10 || b.MaxX != 5 || b.MinY != -1 {
		t.Errorf("Extend(outer) = %+v", b)
	}

	e := EmptyAABB()
	e.Extend(before)
	if e != before {
		t.Errorf("empty.Extend() = %+v, want %+v", e, before)
	}

	copied := EmptyAABB()
	if !copied.IsEmpty() || !copied.Expand(3).IsEmpty() {
		t.Error("empty sentinel lost through copy or Expand")
	}
	copied.Clear()
	if !copied.IsEmpty() {
		t.Error("Clear() did not restore the sentinel")
	}
}

func TestArcFromPointsQuarter(t *testing.T) {
	s := math.Sqrt2 / 2
	a := ArcFromPoints(Pt(1, 0), Pt(0, 1), Pt(s, s), false)

	if want := math.Tan(math.Pi / 8); !near(a.D, want, testTol) {
		t.Errorf("D = %v, want %v", a.D, want)
	}
	if !near(a.Radius(), 1, testTol) {
		t.Errorf("Radius() = %v, want 1", a.Radius())
	}
	if c := a.Center(); !nearPoint(c, Pt(0, 0), testTol) {
		t.Errorf("Center() = %v, want origin", c)
	}
	if !near(a.Angle(), math.Pi/2, testTol) {
		t.Errorf("Angle() = %v, want pi/2", a.Angle())
	}
}

func TestArcFromPointsDegenerate(t *testing.T) {
	a := ArcFromPoints(Pt(0, 0), Pt(4, 0), Pt(0, 0), false)
	if a.D != 0 {
		t.Errorf("D = %v, want 0", a.D)
	}
}

func TestArcFromCenterRadiusAngle(t *testing.T) {
	a := ArcFromCenterRadiusAngle(Pt(10, 10), 5, 0, math.Pi/2, true)
	if !nearPoint(a.P0, Pt(15, 10), testTol) || !nearPoint(a.P1, Pt(10, 15), testTol) {
		t.Errorf("endpoints = %v %v", a.P0, a.P1)
	}
	if !near(a.D, math.Tan(math.Pi/8), testTol) {
		t.Errorf("D = %v, want tan(pi/8)", a.D)
	}
	if !nearPoint(a.Center(), Pt(10, 10), 1e-9) {
		t.Errorf("Center() = %v, want (10, 10)", a.Center())
	}
}

func TestArcWedgeAndDistance(t *testing.T) {
	s := math.Sqrt2 / 2
	a := Arc{P0: Pt(1, 0), P1: Pt(0, 1), D: math.Tan(math.Pi / 8)}

	if !a.WedgeContainsPoint(Pt(2, 2)) {
		t.Error("WedgeContainsPoint(2,2) = false, want true")
	}
	if a.WedgeContainsPoint(Pt(-1, -1)) {
		t.Error("WedgeContainsPoint(-1,-1) = true, want false")
	}

	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"outside circle", Pt(2*s, 2*s), 1},
		{"inside circle", Pt(0.5*s, 0.5*s), -0.5},
		{"outside wedge near P0", Pt(1, -1), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.DistanceToPoint(tt.p)
			if !near(math.Abs(got), math.Abs(tt.want), 1e-9) {
				t.Errorf("|DistanceToPoint(%v)| = %v, want %v", tt.p, math.Abs(got), math.Abs(tt.want))
			}
			if sq := a.SquaredDistanceToPoint(tt.p); !near(sq, tt.want*tt.want, 1e-9) {
				t.Errorf("SquaredDistanceToPoint(%v) = %v, want %v", tt.p, sq, tt.want*tt.want)
			}
		})
	}

	if got := a.DistanceToPoint(Pt(2*s, 2*s)); got <= 0 {
		t.Errorf("outside a counter-clockwise arc: distance = %v, want positive", got)
	}
	if got := a.DistanceToPoint(Pt(0.5*s, 0.5*s)); got >= 0 {
		t.Errorf("inside a counter-clockwise arc: distance = %v, want negative", got)
	}
}

func TestArcStraightMatchesSegment(t *testing.T) {
	a := Arc{P0: Pt(0, 0), P1: Pt(10, 0)}
	seg := Segment{a.P0, a.P1}
	for _, p := range []Point{{5, 3}, {5, -3}, {12, 1}, {-1, -1}} {
		if got, want := a.DistanceToPoint(p), seg.DistanceToPoint(p); got != want {
			t.Errorf("DistanceToPoint(%v) = %v, want %v", p, got, want)
		}
	}
	e := a.Extents()
	if e != (AABB{MinX: 0, MinY: 0, MaxX: 10, MaxY: 0}) {
		t.Errorf("Extents() = %+v", e)
	}
}

func TestArcExtentsHalfCircle(t *testing.T) {
	a := Arc{P0: Pt(1, 0), P1: Pt(-1, 0), D: 1}
	e := a.Extents()
	if !near(e.MinX, -1, 1e-9) || !near(e.MaxX, 1, 1e-9) || !near(e.MinY, 0, 1e-9) || !near(e.MaxY, 1, 1e-9) {
		t.Errorf("Extents() = %+v, want [-1,1]x[0,1]", e)
	}
}

func TestArcApproximateBezier(t *testing.T) {
	d := math.Tan(math.Pi / 8)
	a := Arc{P0: Pt(1, 0), P1: Pt(0, 1), D: d}
	b, errBound := a.ApproximateBezier()

	k := 4.0 / 3 * math.Tan(math.Pi/8)
	if !nearPoint(b.P1, Pt(1, k), 1e-9) || !nearPoint(b.P2, Pt(k, 1), 1e-9) {
		t.Errorf("control points = %v %v, want (1,%v) (%v,1)", b.P1, b.P2, k, k)
	}
	want := math.Sqrt2 * math.Pow(d, 5) / (54 * (1 + d*d))
	if !near(errBound, want, 1e-12) {
		t.Errorf("error bound = %v, want %v", errBound, want)
	}
	if mid := b.Point(0.5); !near(mid.Vec().Len(), 1, 1e-3) {
		t.Errorf("bezier midpoint radius = %v, want ~1", mid.Vec().Len())
	}
}

func TestArcExtendedDistBreaksTies(t *testing.T) {
	// Two segments meeting at a right angle at the origin. A point beyond
	// the corner is equidistant from both endpoints; the extended distance
	// puts it on the left of both tangent lines.
	in := Arc{P0: Pt(0, -10), P1: Pt(0, 0)}
	out := Arc{P0: Pt(0, 0), P1: Pt(10, 0)}
	p := Pt(-1, 1)
	if got := in.ExtendedDist(p); !near(got, 1, testTol) {
		t.Errorf("in.ExtendedDist = %v, want 1", got)
	}
	if got := out.ExtendedDist(p); !near(got, 1, testTol) {
		t.Errorf("out.ExtendedDist = %v, want 1", got)
	}
	if got := out.ExtendedDist(Pt(5, -1)); !near(got, -1, testTol) {
		t.Errorf("out.ExtendedDist(below) = %v, want -1", got)
	}
}

func TestBezierSplitAndSegment(t *testing.T) {
	b := Bezier{Pt(0, 0), Pt(1, 3), Pt(4, 3), Pt(5, 0)}

	first, second := b.Split(0.3)
	if !nearPoint(first.P3, b.Point(0.3), testTol) || first.P3 != second.P0 {
		t.Errorf("Split(0.3) join = %v / %v, want %v", first.P3, second.P0, b.Point(0.3))
	}
	if !nearPoint(first.Point(0.5), b.Point(0.15), testTol) {
		t.Errorf("first half midpoint = %v, want %v", first.Point(0.5), b.Point(0.15))
	}

	h0, h1 := b.Halve()
	s0, s1 := b.Split(0.5)
	if !nearPoint(h0.P2, s0.P2, testTol) || !nearPoint(h1.P1, s1.P1, testTol) {
		t.Error("Halve() differs from Split(0.5)")
	}
	if !nearPoint(b.Midpoint(), b.Point(0.5), testTol) {
		t.Errorf("Midpoint() = %v, want %v", b.Midpoint(), b.Point(0.5))
	}

	seg := b.Segment(0.25, 0.75)
	for _, s := range []float64{0, 0.25, 0.5, 1} {
		want := b.Point(0.25 + s*0.5)
		if got := seg.Point(s); !nearPoint(got, want, 1e-9) {
			t.Errorf("Segment(0.25,0.75).Point(%v) = %v, want %v", s, got, want)
		}
	}
}

func TestBezierTangentCurvature(t *testing.T) {
	b := Bezier{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)}
	if got := b.Tangent(0.5); !nearPoint(Point(got), Pt(3, 0), testTol) {
		t.Errorf("Tangent(0.5) = %v, want (3, 0)", got)
	}
	if got := b.Curvature(0.5); !near(got, 0, testTol) {
		t.Errorf("Curvature(0.5) = %v, want 0", got)
	}

	// A quarter circle of radius 10 has curvature close to 1/10.
	k := 10 * 4.0 / 3 * math.Tan(math.Pi/8)
	q := Bezier{Pt(10, 0), Pt(10, k), Pt(k, 10), Pt(0, 10)}
	if got := math.Abs(q.Curvature(0.5)); !near(got, 0.1, 2e-3) {
		t.Errorf("|Curvature(0.5)| = %v, want ~0.1", got)
	}
}

func TestArcsIterator(t *testing.T) {
	eps := []ArcEndpoint{
		MoveTo(Pt(0, 0)),
		{P: Pt(1, 0)},
		{P: Pt(1, 1), D: 0.25},
		MoveTo(Pt(5, 5)),
		{P: Pt(6, 5)},
	}

	var idx []int
	var arcs []Arc
	for i, a := range Arcs(eps) {
		idx = append(idx, i)
		arcs = append(arcs, a)
	}
	if len(arcs) != 3 {
		t.Fatalf("got %d arcs, want 3", len(arcs))
	}
	if idx[0] != 1 || idx[1] != 2 || idx[2] != 4 {
		t.Errorf("indices = %v, want [1 2 4]", idx)
	}
	if arcs[1] != (Arc{P0: Pt(1, 0), P1: Pt(1, 1), D: 0.25}) {
		t.Errorf("second arc = %+v", arcs[1])
	}
	if arcs[2].P0 != Pt(5, 5) {
		t.Errorf("third arc starts at %v, want (5, 5)", arcs[2].P0)
	}

	starts := Contours(eps)
	if len(starts) != 2 || starts[0] != 0 || starts[1] != 3 {
		t.Errorf("Contours() = %v, want [0 3]", starts)
	}
}
