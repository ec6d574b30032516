package fontsrc

import "github.com/gogpu/glyphy/outline"

// Source provides glyph outlines of one font.
type Source interface {
	// UnitsPerEm returns the font's design units per em.
	UnitsPerEm() int

	// Outline returns the outline of the glyph mapped to r, in design
	// units with y pointing up. A glyph without contours, such as a
	// space, yields no commands and no error.
	Outline(r rune) ([]outline.Command, error)
}

// pathBuilder collects commands and closes each contour before the next
// one starts.
type pathBuilder struct {
	cmds []outline.Command
	open bool
}

func (b *pathBuilder) moveTo(x, y float64) {
	b.closePath()
	b.cmds = append(b.cmds, outline.Move(x, y))
	b.open = true
}

func (b *pathBuilder) lineTo(x, y float64) {
	b.cmds = append(b.cmds, outline.Line(x, y))
}

func (b *pathBuilder) quadTo(cx, cy, x, y float64) {
	b.cmds = append(b.cmds, outline.Quad(cx, cy, x, y))
}

func (b *pathBuilder) cubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	b.cmds = append(b.cmds, outline.Cubic(c1x, c1y, c2x, c2y, x, y))
}

func (b *pathBuilder) closePath() {
	if b.open {
		b.cmds = append(b.cmds, outline.ClosePath())
		b.open = false
	}
}

func (b *pathBuilder) finish() []outline.Command {
	b.closePath()
	return b.cmds
}
