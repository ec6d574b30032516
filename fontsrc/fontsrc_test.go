package fontsrc

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphy/geom"
	"github.com/gogpu/glyphy/outline"
)

func sources(t *testing.T) map[string]Source {
	t.Helper()
	gt, err := ParseGoText(goregular.TTF)
	if err != nil {
		t.Fatalf("ParseGoText: %v", err)
	}
	sf, err := ParseSFNT(goregular.TTF)
	if err != nil {
		t.Fatalf("ParseSFNT: %v", err)
	}
	return map[string]Source{"gotext": gt, "sfnt": sf}
}

func bounds(cmds []outline.Command) geom.AABB {
	b := geom.EmptyAABB()
	for _, c := range cmds {
		for _, p := range c.P {
			b.Add(p)
		}
	}
	return b
}

func TestUnitsPerEm(t *testing.T) {
	for name, src := range sources(t) {
		if got := src.UnitsPerEm(); got != 2048 {
			t.Errorf("%s: UnitsPerEm() = %d, want 2048", name, got)
		}
	}
}

func TestOutlineContoursClosed(t *testing.T) {
	for name, src := range sources(t) {
		for _, r := range "AgO%8" {
			cmds, err := src.Outline(r)
			if err != nil {
				t.Fatalf("%s: Outline(%q): %v", name, r, err)
			}
			if len(cmds) == 0 {
				t.Fatalf("%s: Outline(%q) is empty", name, r)
			}
			if cmds[0].Op != outline.MoveTo || cmds[len(cmds)-1].Op != outline.Close {
				t.Errorf("%s: Outline(%q) starts with %v and ends with %v", name, r, cmds[0].Op, cmds[len(cmds)-1].Op)
			}
			for i, c := range cmds {
				if err := c.Validate(); err != nil {
					t.Errorf("%s: Outline(%q)[%d]: %v", name, r, i, err)
				}
				if c.Op == outline.MoveTo && i > 0 && cmds[i-1].Op != outline.Close {
					t.Errorf("%s: Outline(%q)[%d] starts a contour without closing the previous one", name, r, i)
				}
			}
		}
	}
}

func TestOutlineBackendsAgree(t *testing.T) {
	srcs := sources(t)
	for _, r := range "AgO" {
		a, err := srcs["gotext"].Outline(r)
		if err != nil {
			t.Fatal(err)
		}
		b, err := srcs["sfnt"].Outline(r)
		if err != nil {
			t.Fatal(err)
		}
		ba, bb := bounds(a), bounds(b)
		if math.Abs(ba.MinX-bb.MinX) > 1e-6 || math.Abs(ba.MinY-bb.MinY) > 1e-6 ||
			math.Abs(ba.MaxX-bb.MaxX) > 1e-6 || math.Abs(ba.MaxY-bb.MaxY) > 1e-6 {
			t.Errorf("Outline(%q) bounds: gotext %+v, sfnt %+v", r, ba, bb)
		}
	}
}

func TestOutlineYUp(t *testing.T) {
	for name, src := range sources(t) {
		cmds, err := src.Outline('A')
		if err != nil {
			t.Fatal(err)
		}
		b := bounds(cmds)
		// A capital letter sits on the baseline and rises above it.
		if b.MinY < -1 || b.MaxY < 1000 {
			t.Errorf("%s: bounds of 'A' = %+v, want y-up design units", name, b)
		}
	}
}

func TestOutlineSpace(t *testing.T) {
	for name, src := range sources(t) {
		cmds, err := src.Outline(' ')
		if err != nil {
			t.Errorf("%s: Outline(' ') error = %v", name, err)
		}
		if len(cmds) != 0 {
			t.Errorf("%s: Outline(' ') = %d commands, want none", name, len(cmds))
		}
	}
}

func TestOutlineMissing(t *testing.T) {
	for name, src := range sources(t) {
		_, err := src.Outline('\U000F0000')
		if !errors.Is(err, ErrGlyphNotFound) {
			t.Errorf("%s: Outline(missing) error = %v, want ErrGlyphNotFound", name, err)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := ParseGoText([]byte("not a font")); err == nil {
		t.Error("ParseGoText accepted garbage")
	}
	if _, err := ParseSFNT([]byte("not a font")); err == nil {
		t.Error("ParseSFNT accepted garbage")
	}
}
