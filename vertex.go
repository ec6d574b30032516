package glyphy

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glyphy/geom"
)

// Bit budgets of the packed glyph info.
const (
	atlasBits   = 7
	nominalBits = 6
	cornerBits  = 1
)

// VertexSize is the byte size of one GlyphVertex.
const VertexSize = 16

// QuadIndices draws the four vertices of GlyphVertices as two triangles.
var QuadIndices = [6]uint16{0, 1, 2, 1, 3, 2}

// GlyphVertex is one corner of a glyph quad. G16Hi and G16Lo are the two
// halves of the packed glyph info, stored as floats for a Float32x4
// attribute.
type GlyphVertex struct {
	X, Y         float32
	G16Hi, G16Lo float32
}

// EncodeGlyphInfo packs the glyph info of one quad corner:
//
//	x = ((atlasX<<6 | nominalW)<<1) | cornerX
//	y = ((atlasY<<6 | nominalH)<<1) | cornerY
//	v = x<<16 | y
//
// Atlas coordinates have 7 bits, nominal sizes 6 bits and corners 1 bit.
func EncodeGlyphInfo(atlasX, atlasY, cornerX, cornerY, nominalW, nominalH int) (uint32, error) {
	fields := []struct {
		name string
		v    int
		bits int
	}{
		{"atlas x", atlasX, atlasBits},
		{"atlas y", atlasY, atlasBits},
		{"corner x", cornerX, cornerBits},
		{"corner y", cornerY, cornerBits},
		{"nominal width", nominalW, nominalBits},
		{"nominal height", nominalH, nominalBits},
	}
	for _, f := range fields {
		if f.v < 0 || f.v >= 1<<f.bits {
			return 0, fmt.Errorf("%w: %s = %d does not fit %d bits", ErrVertexOverflow, f.name, f.v, f.bits)
		}
	}

	x := uint32(((atlasX<<nominalBits | nominalW) << cornerBits) | cornerX)
	y := uint32(((atlasY<<nominalBits | nominalH) << cornerBits) | cornerY)
	return x<<16 | y, nil
}

// DecodeGlyphInfo unpacks a value written by EncodeGlyphInfo.
func DecodeGlyphInfo(v uint32) (atlasX, atlasY, cornerX, cornerY, nominalW, nominalH int) {
	x, y := int(v>>16), int(v&0xFFFF)
	cornerX, cornerY = x&1, y&1
	x >>= cornerBits
	y >>= cornerBits
	nominalW, nominalH = x&(1<<nominalBits-1), y&(1<<nominalBits-1)
	atlasX, atlasY = x>>nominalBits, y>>nominalBits
	return
}

// GlyphVertices returns the four corners (0,0), (0,1), (1,0), (1,1) of the
// quad drawing a glyph at fontSize, and their bounding box.
func GlyphVertices(fontSize float64, info GlyphInfo) ([4]GlyphVertex, geom.AABB, error) {
	var vs [4]GlyphVertex
	box := geom.EmptyAABB()
	if info.Extents.IsEmpty() {
		return vs, box, ErrEmptyGlyph
	}

	corners := [4][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for i, c := range corners {
		packed, err := EncodeGlyphInfo(info.AtlasX, info.AtlasY, c[0], c[1], info.NominalW, info.NominalH)
		if err != nil {
			return vs, box, err
		}
		x := fontSize * lerp(info.Extents.MinX, info.Extents.MaxX, float64(c[0]))
		y := fontSize * lerp(info.Extents.MinY, info.Extents.MaxY, float64(c[1]))
		vs[i] = GlyphVertex{
			X:     float32(x),
			Y:     float32(y),
			G16Hi: float32(packed >> 16),
			G16Lo: float32(packed & 0xFFFF),
		}
		box.Add(geom.Pt(x, y))
	}
	return vs, box, nil
}

func lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

// AppendVertices appends the little-endian bytes of vs to dst.
func AppendVertices(dst []byte, vs ...GlyphVertex) []byte {
	for _, v := range vs {
		for _, f := range [4]float32{v.X, v.Y, v.G16Hi, v.G16Lo} {
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
		}
	}
	return dst
}

// VertexLayout describes a GlyphVertex buffer: one Float32x4 attribute at
// location 0.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexSize,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 0},
		},
	}
}
