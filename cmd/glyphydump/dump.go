package main

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/gogpu/glyphy"
	"github.com/gogpu/glyphy/blob"
	"github.com/gogpu/glyphy/geom"
	"github.com/gogpu/glyphy/shader"
)

// glyphMeta is the JSON document written for each glyph.
type glyphMeta struct {
	Char       string     `json:"char"`
	Codepoint  string     `json:"codepoint"`
	UnitsPerEm int        `json:"units_per_em"`
	Empty      bool       `json:"empty"`
	Arcs       int        `json:"arcs"`
	Tolerance  float64    `json:"tolerance"`
	MaxError   float64    `json:"max_error"`
	Reversed   bool       `json:"reversed"`
	NominalW   int        `json:"nominal_w"`
	NominalH   int        `json:"nominal_h"`
	Extents    [4]float64 `json:"extents,omitempty"`
	Texture    *texMeta   `json:"texture,omitempty"`
	Stats      blob.Stats `json:"stats"`
}

type texMeta struct {
	GridW      int        `json:"grid_w"`
	GridH      int        `json:"grid_h"`
	CellSize   float64    `json:"cell_size"`
	DataWidth  int        `json:"data_width"`
	DataHeight int        `json:"data_height"`
	MaxOffset  int        `json:"max_offset"`
	MinSDF     float64    `json:"min_sdf"`
	SDFStep    float64    `json:"sdf_step"`
	Uniform    [4]float32 `json:"uniform"`
}

func codepoint(g *glyphy.Glyph) rune {
	for _, r := range g.Char {
		return r
	}
	return 0
}

func newGlyphMeta(g *glyphy.Glyph) glyphMeta {
	m := glyphMeta{
		Char:       g.Char,
		Codepoint:  fmt.Sprintf("%U", codepoint(g)),
		UnitsPerEm: g.UnitsPerEm,
		Empty:      g.Empty,
		Tolerance:  g.Tolerance,
		MaxError:   g.MaxError,
		Reversed:   g.Reversed,
		NominalW:   g.Info.NominalW,
		NominalH:   g.Info.NominalH,
	}
	for _, e := range g.Endpoints {
		if !e.IsMove() {
			m.Arcs++
		}
	}
	if g.Blob != nil {
		m.Stats = g.Blob.Stats
	}
	if ext := g.Info.Extents; !ext.IsEmpty() {
		m.Extents = [4]float64{ext.MinX, ext.MinY, ext.MaxX, ext.MaxY}
	}
	if t := g.Tex; t != nil {
		m.Texture = &texMeta{
			GridW:      t.GridW,
			GridH:      t.GridH,
			CellSize:   t.CellSize,
			DataWidth:  t.DataWidth,
			DataHeight: t.DataHeight,
			MaxOffset:  t.MaxOffset,
			MinSDF:     t.MinSDF,
			SDFStep:    t.SDFStep,
			Uniform:    t.Uniform(),
		}
	}
	return m
}

// writeGlyph writes <hex>.json and <hex>.svg, plus <hex>_index.png and
// <hex>_data.png for glyphs with textures.
func writeGlyph(dir string, g *glyphy.Glyph) error {
	base := filepath.Join(dir, fmt.Sprintf("%04x", codepoint(g)))

	meta, err := json.MarshalIndent(newGlyphMeta(g), "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(base+".json", append(meta, '\n'), 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(base+".svg", []byte(svgDocument(g)), 0o644); err != nil {
		return err
	}

	if g.Tex == nil {
		return nil
	}
	if err := writePNG(base+"_index.png", indexImage(g.Tex)); err != nil {
		return err
	}
	return writePNG(base+"_data.png", dataImage(g.Tex))
}

// indexImage renders the index entries with the low byte in red and the
// high byte in green. The bottom grid row is drawn at the bottom.
func indexImage(t *blob.TexData) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, t.GridW, t.GridH))
	for row := range t.GridH {
		for col := range t.GridW {
			v := t.IndexEntry(col, row)
			i := img.PixOffset(col, t.GridH-1-row)
			img.Pix[i+0] = byte(v)
			img.Pix[i+1] = byte(v >> 8)
			img.Pix[i+3] = 0xFF
		}
	}
	return img
}

// dataImage stores the data texels unchanged.
func dataImage(t *blob.TexData) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, t.DataWidth, t.DataHeight))
	copy(img.Pix, t.Data)
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// svgDocument draws the arc outline in design units, flipped to SVG's
// Y-down space.
func svgDocument(g *glyphy.Glyph) string {
	box := geom.EmptyAABB()
	for _, e := range g.Endpoints {
		box.Add(e.P)
	}
	if box.IsEmpty() {
		box = geom.AABB{MaxX: float64(g.UnitsPerEm), MaxY: float64(g.UnitsPerEm)}
	}
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%g %g %g %g">
<path transform="scale(1,-1)" fill="black" fill-rule="nonzero" d="%s"/>
</svg>
`, box.MinX, -box.MaxY, box.Width(), box.Height(), g.SVGPath())
}

func writeSPIRV(path string) error {
	words, err := shader.Compile()
	if err != nil {
		return err
	}
	buf := make([]byte, 0, 4*len(words))
	for _, w := range words {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}
	return os.WriteFile(path, buf, 0o644)
}
