package blob

import (
	"math"

	"github.com/gogpu/gputypes"
)

// MaxDataWidth is the row length of the data texture. Longer data wraps to
// further rows so the texture stays within downlevel limits.
var MaxDataWidth = int(gputypes.DownlevelLimits().MaxTextureDimension2D)

// TexData is the GPU-ready encoding of one glyph.
type TexData struct {
	// Index holds GridW*GridH little-endian uint16 entries, row-major from
	// the bottom row.
	Index []byte

	// Data holds DataWidth*DataHeight RGBA texels. Texels past MaxOffset
	// are zero.
	Data []byte

	GridW, GridH int

	// CellSize is the cell edge in design units.
	CellSize float64

	// DataWidth and DataHeight are the data texture dimensions.
	DataWidth, DataHeight int

	IndexFormat
}

// DataTexel returns data texel i. Out-of-range texels read as zero.
func (t *TexData) DataTexel(i int) [4]byte {
	var px [4]byte
	if i >= 0 && 4*i+4 <= len(t.Data) {
		copy(px[:], t.Data[4*i:4*i+4])
	}
	return px
}

// IndexEntry returns the index entry of the cell at (col, row).
func (t *TexData) IndexEntry(col, row int) uint16 {
	i := 2 * (row*t.GridW + col)
	return uint16(t.Index[i]) | uint16(t.Index[i+1])<<8
}

// CheckRadius is the center distance beyond which a cell lies entirely
// inside or outside the glyph: half the cell diagonal. Like the index
// distances it compares against, it is in design units.
func (t *TexData) CheckRadius() float64 {
	return t.CellSize * math.Sqrt2 / 2
}

// Uniform returns the shader's info vector:
// (max_offset, min_sdf, sdf_step, check_radius).
func (t *TexData) Uniform() [4]float32 {
	return [4]float32{
		float32(t.MaxOffset),
		float32(t.MinSDF),
		float32(t.SDFStep),
		float32(t.CheckRadius()),
	}
}

// IndexTextureDescriptor describes the index texture.
func (t *TexData) IndexTextureDescriptor() gputypes.TextureDescriptor {
	return gputypes.TextureDescriptor{
		Label:         "glyphy index",
		Size:          gputypes.NewExtent2D(uint32(t.GridW), uint32(t.GridH)),
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRG8Uint,
		Usage:         gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding,
	}
}

// DataTextureDescriptor describes the data texture.
func (t *TexData) DataTextureDescriptor() gputypes.TextureDescriptor {
	return gputypes.TextureDescriptor{
		Label:         "glyphy data",
		Size:          gputypes.NewExtent2D(uint32(t.DataWidth), uint32(t.DataHeight)),
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Uint,
		Usage:         gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding,
	}
}

// IndexBytesPerRow returns the row pitch of Index.
func (t *TexData) IndexBytesPerRow() int {
	return 2 * t.GridW
}

// DataBytesPerRow returns the row pitch of Data.
func (t *TexData) DataBytesPerRow() int {
	return 4 * t.DataWidth
}
