package glyphy

import "errors"

// Sentinel errors for glyphy package.
var (
	// ErrInvalidUnitsPerEm is returned when a font's units per em is not
	// positive or exceeds Config.MaxUnitsPerEm.
	ErrInvalidUnitsPerEm = errors.New("glyphy: invalid units per em")

	// ErrVertexOverflow is returned when a glyph info field does not fit
	// its bits in the vertex encoding.
	ErrVertexOverflow = errors.New("glyphy: vertex field overflow")

	// ErrEmptyGlyph is returned when vertices are requested for a glyph
	// with no outline.
	ErrEmptyGlyph = errors.New("glyphy: empty glyph")

	// ErrInvalidCacheKey is returned by Cache.GetOrEncode for a key that
	// does not hold exactly one valid code point.
	ErrInvalidCacheKey = errors.New("glyphy: cache key must hold exactly one character")
)
