package glyphy

import (
	"github.com/gogpu/glyphy/blob"
	"github.com/gogpu/glyphy/geom"
	"github.com/gogpu/glyphy/outline"
)

// GlyphInfo is the placement data the shader needs for one glyph.
type GlyphInfo struct {
	// Extents is the padded glyph box covered by the grid, in ems.
	// It is empty for an empty glyph.
	Extents geom.AABB

	// NominalW and NominalH are the grid dimensions in cells.
	NominalW, NominalH int

	// AtlasX and AtlasY locate the glyph's textures in an atlas. They are
	// zero for a glyph drawn from its own textures.
	AtlasX, AtlasY int
}

// Glyph is the encoding of one character.
type Glyph struct {
	// Char is the encoded character.
	Char string

	Info GlyphInfo

	// Endpoints is the winding-resolved arc list in design units.
	Endpoints []geom.ArcEndpoint

	// Blob is the grid encoding; Tex is its texture data, nil when Empty.
	Blob *blob.Blob
	Tex  *blob.TexData

	// BlobScale maps design units onto Blob units. It is 1 unless the
	// padded glyph box spans more than blob.MaxCoord design units.
	BlobScale float64

	// UnitsPerEm is the font's design units per em.
	UnitsPerEm int

	// Tolerance is the arc fit tolerance in design units and MaxError
	// the largest fit error actually reached.
	Tolerance float64
	MaxError  float64

	// Reversed reports whether winding resolution reversed any contour.
	Reversed bool

	// Empty is set for glyphs without contours, such as a space.
	Empty bool
}

// SVGPath returns the arc outline as SVG path data in design units.
func (g *Glyph) SVGPath() string {
	return outline.SVGPath(g.Endpoints)
}

// CellPoint maps a point in design units to the cell units a Decoder
// takes.
func (g *Glyph) CellPoint(p geom.Point) geom.Point {
	b := g.Blob
	return geom.Pt(
		(p.X*g.BlobScale-b.Extents.MinX)/b.CellSize,
		(p.Y*g.BlobScale-b.Extents.MinY)/b.CellSize,
	)
}

// Decoder returns a CPU decoder of the glyph's textures, or false for an
// empty glyph.
func (g *Glyph) Decoder() (blob.Decoder, bool) {
	if g.Tex == nil {
		return blob.Decoder{}, false
	}
	return blob.Decoder{Tex: g.Tex}, true
}
