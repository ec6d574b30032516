// Package fontsrc reads glyph outlines from TrueType and OpenType fonts and
// returns them as outline commands in font design units, y-up.
//
// Two backends are provided: GoText, built on go-text/typesetting, and
// SFNT, built on golang.org/x/image/font/sfnt. Both close every contour
// explicitly and are safe for concurrent use.
package fontsrc
