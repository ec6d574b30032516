package fontsrc

import "errors"

// Sentinel errors for fontsrc package.
var (
	// ErrGlyphNotFound is returned when the font has no glyph for a rune.
	ErrGlyphNotFound = errors.New("fontsrc: glyph not found")

	// ErrNoOutline is returned for glyphs stored only as bitmaps, SVG or
	// color layers.
	ErrNoOutline = errors.New("fontsrc: glyph has no outline")
)
