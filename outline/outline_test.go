package outline

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/glyphy/geom"
)

func square(x0, y0, x1, y1 float64, ccw bool) []Command {
	if ccw {
		return []Command{Move(x0, y0), Line(x1, y0), Line(x1, y1), Line(x0, y1), ClosePath()}
	}
	return []Command{Move(x0, y0), Line(x0, y1), Line(x1, y1), Line(x1, y0), ClosePath()}
}

func ring(cx, cy, r float64, ccw bool) []Command {
	k := r * 4 / 3 * math.Tan(math.Pi/8)
	if ccw {
		return []Command{
			Move(cx+r, cy),
			Cubic(cx+r, cy+k, cx+k, cy+r, cx, cy+r),
			Cubic(cx-k, cy+r, cx-r, cy+k, cx-r, cy),
			Cubic(cx-r, cy-k, cx-k, cy-r, cx, cy-r),
			Cubic(cx+k, cy-r, cx+r, cy-k, cx+r, cy),
			ClosePath(),
		}
	}
	return []Command{
		Move(cx+r, cy),
		Cubic(cx+r, cy-k, cx+k, cy-r, cx, cy-r),
		Cubic(cx-k, cy-r, cx-r, cy-k, cx-r, cy),
		Cubic(cx-r, cy+k, cx-k, cy+r, cx, cy+r),
		Cubic(cx+k, cy+r, cx+r, cy+k, cx+r, cy),
		ClosePath(),
	}
}

func accumulate(t *testing.T, tolerance float64, cmds ...[]Command) []geom.ArcEndpoint {
	t.Helper()
	a := NewAccumulator(tolerance)
	for _, c := range cmds {
		if err := a.Accumulate(c); err != nil {
			t.Fatalf("Accumulate: %v", err)
		}
	}
	return a.Result()
}

func contourWindings(endpoints []geom.ArcEndpoint) []bool {
	starts := geom.Contours(endpoints)
	var out []bool
	for k, s := range starts {
		end := len(endpoints)
		if k+1 < len(starts) {
			end = starts[k+1]
		}
		out = append(out, Winding(endpoints[s:end]))
	}
	return out
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{MoveTo, "MoveTo"},
		{LineTo, "LineTo"},
		{QuadTo, "QuadTo"},
		{CubeTo, "CubeTo"},
		{Close, "Close"},
		{Op(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestCommandValidate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Command
		wantErr bool
	}{
		{"move", Move(1, 2), false},
		{"quad", Quad(1, 2, 3, 4), false},
		{"cubic", Cubic(1, 2, 3, 4, 5, 6), false},
		{"close", ClosePath(), false},
		{"short line", Command{Op: LineTo}, true},
		{"close with point", Command{Op: Close, P: []geom.Point{{}}}, true},
		{"unknown op", Command{Op: Op(42)}, true},
		{"nan", Line(math.NaN(), 0), true},
		{"inf", Line(0, math.Inf(-1)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidCommand) {
				t.Errorf("error %v does not wrap ErrInvalidCommand", err)
			}
		})
	}
}

func TestAccumulatorSquare(t *testing.T) {
	got := accumulate(t, 1, square(0, 0, 10, 10, true))
	want := []geom.ArcEndpoint{
		geom.MoveTo(geom.Pt(0, 0)),
		{P: geom.Pt(10, 0)},
		{P: geom.Pt(10, 10)},
		{P: geom.Pt(0, 10)},
		{P: geom.Pt(0, 0)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Result() mismatch (-want +got):\n%s", diff)
	}
}

func TestAccumulatorLazyMove(t *testing.T) {
	a := NewAccumulator(1)
	a.MoveTo(geom.Pt(1, 1))
	a.MoveTo(geom.Pt(5, 5))
	a.LineTo(geom.Pt(5, 5)) // dropped: no movement
	a.LineTo(geom.Pt(6, 5))

	got := a.Result()
	want := []geom.ArcEndpoint{geom.MoveTo(geom.Pt(5, 5)), {P: geom.Pt(6, 5)}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Result() mismatch (-want +got):\n%s", diff)
	}

	a.Reset()
	if n := len(a.Result()); n != 0 {
		t.Errorf("after Reset, len(Result()) = %d, want 0", n)
	}
	a.MoveTo(geom.Pt(3, 3))
	if n := len(a.Result()); n != 0 {
		t.Errorf("a lone MoveTo emitted %d endpoints", n)
	}
}

func TestAccumulatorCloseSnapsToStart(t *testing.T) {
	a := NewAccumulator(1)
	a.MoveTo(geom.Pt(0, 0))
	a.LineTo(geom.Pt(10, 0))
	a.LineTo(geom.Pt(10, 10))
	a.LineTo(geom.Pt(0.00001, 0))
	a.Close()

	got := a.Result()
	if len(got) != 4 {
		t.Fatalf("len(Result()) = %d, want 4", len(got))
	}
	if last := got[len(got)-1].P; last != geom.Pt(0, 0) {
		t.Errorf("closing point = %v, want exact start", last)
	}
}

func TestAccumulatorSeparatesContoursAfterClose(t *testing.T) {
	got := accumulate(t, 1, []Command{
		Move(0, 0), Line(10, 0), Line(10, 10), ClosePath(),
		Line(-10, 0), Line(-10, -10), ClosePath(),
	})
	if starts := geom.Contours(got); len(starts) != 2 {
		t.Fatalf("contours = %v, want 2 subpaths", starts)
	}
	if got[4] != geom.MoveTo(geom.Pt(0, 0)) {
		t.Errorf("second contour starts with %+v, want a move to the origin", got[4])
	}
}

func TestAccumulatorQuadElevation(t *testing.T) {
	p0, p1, p2 := geom.Pt(0, 0), geom.Pt(50, 100), geom.Pt(100, 0)

	quad := NewAccumulator(0.5)
	quad.MoveTo(p0)
	quad.QuadTo(p1, p2)

	cubic := NewAccumulator(0.5)
	cubic.MoveTo(p0)
	cubic.CubeTo(p0.Lerp(p1, 2.0/3), p2.Lerp(p1, 2.0/3), p2)

	if diff := cmp.Diff(cubic.Result(), quad.Result()); diff != "" {
		t.Errorf("QuadTo differs from its elevated cubic (-cubic +quad):\n%s", diff)
	}
	if quad.MaxError() > 0.5 {
		t.Errorf("MaxError() = %v, want <= 0.5", quad.MaxError())
	}
	if n := len(quad.Result()); n < 3 {
		t.Errorf("len(Result()) = %d, want a move and at least two arcs", n)
	}
}

func TestAccumulatorStraightQuad(t *testing.T) {
	got := accumulate(t, 1, []Command{Move(0, 0), Quad(5, 5, 10, 10)})
	want := []geom.ArcEndpoint{geom.MoveTo(geom.Pt(0, 0)), {P: geom.Pt(10, 10)}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Result() mismatch (-want +got):\n%s", diff)
	}
}

func TestAccumulateInvalid(t *testing.T) {
	a := NewAccumulator(1)
	err := a.Accumulate([]Command{Move(0, 0), {Op: CubeTo, P: []geom.Point{{}}}})
	if !errors.Is(err, ErrInvalidCommand) {
		t.Errorf("Accumulate() error = %v, want ErrInvalidCommand", err)
	}
}

func TestAccumulatorValidate(t *testing.T) {
	if err := NewAccumulator(1).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	if err := NewAccumulator(0).Validate(); err == nil {
		t.Error("Validate() with zero tolerance = nil, want error")
	}
}

func TestWinding(t *testing.T) {
	ccw := accumulate(t, 1, square(0, 0, 10, 10, true))
	cw := accumulate(t, 1, square(0, 0, 10, 10, false))
	if Winding(ccw) {
		t.Error("Winding(counter-clockwise square) = true, want false")
	}
	if !Winding(cw) {
		t.Error("Winding(clockwise square) = false, want true")
	}
}

func TestReverseTwiceIsIdentity(t *testing.T) {
	c := accumulate(t, 1, ring(0, 0, 100, true))
	r := Reverse(c)
	if !r[0].IsMove() || r[0].P != c[len(c)-1].P {
		t.Errorf("Reverse()[0] = %+v, want a move to the old end", r[0])
	}
	if Winding(r) == Winding(c) {
		t.Error("Reverse() did not flip the winding")
	}
	if diff := cmp.Diff(c, Reverse(r)); diff != "" {
		t.Errorf("Reverse(Reverse(c)) mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveWindingNested(t *testing.T) {
	shapes := map[string]func(outer, inner bool) [][]Command{
		"squares": func(outer, inner bool) [][]Command {
			return [][]Command{square(0, 0, 100, 100, outer), square(25, 25, 75, 75, inner)}
		},
		"rings": func(outer, inner bool) [][]Command {
			return [][]Command{ring(150, 150, 100, outer), ring(150, 150, 50, inner)}
		},
	}
	for name, shape := range shapes {
		for _, outer := range []bool{true, false} {
			for _, inner := range []bool{true, false} {
				endpoints := accumulate(t, 1000*10.0/1024, shape(outer, inner)...)
				got, _ := ResolveWinding(endpoints, false)
				w := contourWindings(got)
				if len(w) != 2 {
					t.Fatalf("%s: %d contours, want 2", name, len(w))
				}
				if !w[0] || w[1] {
					t.Errorf("%s outer ccw=%v inner ccw=%v: windings = %v, want [true false]",
						name, outer, inner, w)
				}
			}
		}
	}
}

func TestResolveWindingInverse(t *testing.T) {
	endpoints := accumulate(t, 1, square(0, 0, 100, 100, false), square(25, 25, 75, 75, true))
	got, changed := ResolveWinding(endpoints, true)
	if !changed {
		t.Error("ResolveWinding(inverse) reported no change")
	}
	if w := contourWindings(got); w[0] || !w[1] {
		t.Errorf("windings = %v, want [false true]", w)
	}
}

func TestResolveWindingIdempotent(t *testing.T) {
	endpoints := accumulate(t, 1000*10.0/1024,
		ring(150, 150, 100, true), ring(150, 150, 50, true), square(300, 0, 400, 100, true))
	once, changed := ResolveWinding(endpoints, false)
	if !changed {
		t.Error("first ResolveWinding reported no change")
	}
	twice, changed := ResolveWinding(once, false)
	if changed {
		t.Error("second ResolveWinding reported a change")
	}
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("ResolveWinding is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestResolveWindingKeepsInput(t *testing.T) {
	endpoints := accumulate(t, 1, square(0, 0, 10, 10, true))
	before := append([]geom.ArcEndpoint(nil), endpoints...)
	if _, changed := ResolveWinding(endpoints, false); !changed {
		t.Fatal("expected the counter-clockwise square to be reversed")
	}
	if diff := cmp.Diff(before, endpoints); diff != "" {
		t.Errorf("input modified (-before +after):\n%s", diff)
	}
}

func TestResolveWindingSkipsOpenContours(t *testing.T) {
	open := accumulate(t, 1, []Command{Move(0, 0), Line(10, 0), Line(10, 10)})
	got, changed := ResolveWinding(open, false)
	if changed {
		t.Error("open contour was reversed")
	}
	if diff := cmp.Diff(open, got); diff != "" {
		t.Errorf("open contour changed (-want +got):\n%s", diff)
	}
}

func TestExtents(t *testing.T) {
	if box := Extents(nil); !box.IsEmpty() {
		t.Errorf("Extents(nil) = %+v, want empty", box)
	}

	box := Extents(accumulate(t, 0.1, ring(150, 150, 100, true)))
	want := geom.AABB{MinX: 50, MinY: 50, MaxX: 250, MaxY: 250}
	for _, c := range []struct {
		name      string
		got, want float64
	}{
		{"MinX", box.MinX, want.MinX},
		{"MinY", box.MinY, want.MinY},
		{"MaxX", box.MaxX, want.MaxX},
		{"MaxY", box.MaxY, want.MaxY},
	} {
		if math.Abs(c.got-c.want) > 0.1 {
			t.Errorf("Extents().%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestSVGPath(t *testing.T) {
	got := SVGPath(accumulate(t, 1, square(0, 0, 10, 10, true)))
	want := "M 0 0 L 10 0 L 10 10 L 0 10 L 0 0"
	if got != want {
		t.Errorf("SVGPath() = %q, want %q", got, want)
	}

	half := []geom.ArcEndpoint{geom.MoveTo(geom.Pt(1, 0)), {P: geom.Pt(-1, 0), D: 1}}
	if got := SVGPath(half); !strings.HasPrefix(got, "M 1 0 A 1 1 0 0 1 -1 0") {
		t.Errorf("SVGPath(half circle) = %q", got)
	}
}
