package fontsrc

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/glyphy/outline"
)

// GoText is a Source backed by go-text/typesetting.
type GoText struct {
	// mu guards face, whose lookup caches are not safe for concurrent use.
	mu   sync.Mutex
	face *font.Face
}

// ParseGoText parses a TrueType or OpenType font.
func ParseGoText(data []byte) (*GoText, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontsrc: failed to parse font: %w", err)
	}
	return &GoText{face: face}, nil
}

// UnitsPerEm implements Source.
func (g *GoText) UnitsPerEm() int {
	return int(g.face.Upem())
}

// Outline implements Source.
func (g *GoText) Outline(r rune) ([]outline.Command, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	gid, ok := g.face.NominalGlyph(r)
	if !ok {
		return nil, fmt.Errorf("%w: %U", ErrGlyphNotFound, r)
	}

	data := g.face.GlyphData(gid)
	switch data := data.(type) {
	case font.GlyphOutline:
		return convertSegments(data.Segments), nil
	case nil:
		return nil, fmt.Errorf("%w: %U", ErrGlyphNotFound, r)
	default:
		return nil, fmt.Errorf("%w: %U is %T", ErrNoOutline, r, data)
	}
}

func convertSegments(segs []ot.Segment) []outline.Command {
	var b pathBuilder
	for _, s := range segs {
		a := s.Args
		switch s.Op {
		case ot.SegmentOpMoveTo:
			b.moveTo(float64(a[0].X), float64(a[0].Y))
		case ot.SegmentOpLineTo:
			b.lineTo(float64(a[0].X), float64(a[0].Y))
		case ot.SegmentOpQuadTo:
			b.quadTo(float64(a[0].X), float64(a[0].Y), float64(a[1].X), float64(a[1].Y))
		case ot.SegmentOpCubeTo:
			b.cubeTo(float64(a[0].X), float64(a[0].Y), float64(a[1].X), float64(a[1].Y), float64(a[2].X), float64(a[2].Y))
		}
	}
	return b.finish()
}
