package fontsrc

import (
	"errors"
	"fmt"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphy/outline"
)

// SFNT is a Source backed by golang.org/x/image/font/sfnt.
type SFNT struct {
	font *sfnt.Font
}

// ParseSFNT parses a TrueType or OpenType font.
func ParseSFNT(data []byte) (*SFNT, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontsrc: failed to parse font: %w", err)
	}
	return &SFNT{font: f}, nil
}

// UnitsPerEm implements Source.
func (s *SFNT) UnitsPerEm() int {
	return int(s.font.UnitsPerEm())
}

// Outline implements Source.
//
// Glyphs are loaded at one pixel per design unit, so the 26.6 results are
// design units. The y axis is flipped from sfnt's y-down.
func (s *SFNT) Outline(r rune) ([]outline.Command, error) {
	var buf sfnt.Buffer

	gid, err := s.font.GlyphIndex(&buf, r)
	if err != nil {
		return nil, fmt.Errorf("fontsrc: glyph index of %U: %w", r, err)
	}
	if gid == 0 {
		return nil, fmt.Errorf("%w: %U", ErrGlyphNotFound, r)
	}

	ppem := fixed.Int26_6(s.UnitsPerEm() << 6)
	segs, err := s.font.LoadGlyph(&buf, gid, ppem, nil)
	switch {
	case errors.Is(err, sfnt.ErrColoredGlyph):
		return nil, fmt.Errorf("%w: %U", ErrNoOutline, r)
	case errors.Is(err, sfnt.ErrNotFound):
		return nil, fmt.Errorf("%w: %U", ErrGlyphNotFound, r)
	case err != nil:
		return nil, fmt.Errorf("fontsrc: load glyph %U: %w", r, err)
	}

	var b pathBuilder
	for _, seg := range segs {
		a := seg.Args
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			b.moveTo(fx(a[0].X), -fx(a[0].Y))
		case sfnt.SegmentOpLineTo:
			b.lineTo(fx(a[0].X), -fx(a[0].Y))
		case sfnt.SegmentOpQuadTo:
			b.quadTo(fx(a[0].X), -fx(a[0].Y), fx(a[1].X), -fx(a[1].Y))
		case sfnt.SegmentOpCubeTo:
			b.cubeTo(fx(a[0].X), -fx(a[0].Y), fx(a[1].X), -fx(a[1].Y), fx(a[2].X), -fx(a[2].Y))
		}
	}
	return b.finish(), nil
}

// fx converts a 26.6 fixed-point value to float64.
func fx(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
