package blob

import (
	"math"

	"github.com/gogpu/glyphy/geom"
)

const (
	// MaxGridSize is the largest grid dimension, bounded by the 6-bit
	// nominal size in the vertex encoding.
	MaxGridSize = 63

	// MaxCoord is the largest quantized endpoint coordinate (12 bits).
	MaxCoord = 4095

	// MaxCellEndpoints is the longest list a decoder reads for one cell.
	MaxCellEndpoints = 32

	// IndexFieldLimit bounds the combined sdf/offset field of an index
	// entry (14 bits).
	IndexFieldLimit = 1 << 14
)

// Quantize maps v from [min, min+span] onto [0, MaxCoord].
func Quantize(v, min, span float64) int {
	return int(math.Round(MaxCoord * ((v - min) / span)))
}

// Dequantize is the inverse of Quantize.
func Dequantize(q int, min, span float64) float64 {
	return float64(q)/MaxCoord*span + min
}

// EncodeEndpoint packs a quantized endpoint into one data texel.
func EncodeEndpoint(qx, qy int, d float64) ([4]byte, error) {
	if qx < 0 || qx > MaxCoord {
		return [4]byte{}, &QuantizationError{Field: "x", Value: float64(qx), Limit: MaxCoord}
	}
	if qy < 0 || qy > MaxCoord {
		return [4]byte{}, &QuantizationError{Field: "y", Value: float64(qy), Limit: MaxCoord}
	}

	var id int
	if d != geom.Infinity {
		if math.IsNaN(d) || math.Abs(d) > geom.MaxD {
			return [4]byte{}, &QuantizationError{Field: "d", Value: d, Limit: geom.MaxD}
		}
		id = 128 + int(math.Round(d*127/geom.MaxD))
		if id < 1 || id > 255 {
			return [4]byte{}, &QuantizationError{Field: "d id", Value: float64(id), Limit: 255}
		}
	}

	return [4]byte{
		byte(id),
		byte(qx & 0xFF),
		byte(qy & 0xFF),
		byte((qx>>8)<<4 | qy>>8),
	}, nil
}

// DecodeEndpoint unpacks a data texel written by EncodeEndpoint. A zero id
// decodes to d = +Inf.
func DecodeEndpoint(px [4]byte) (qx, qy int, d float64) {
	qx = int(px[3]>>4)<<8 | int(px[1])
	qy = int(px[3]&0x0F)<<8 | int(px[2])
	if px[0] == 0 {
		return qx, qy, geom.Infinity
	}
	return qx, qy, float64(int(px[0])-128) * geom.MaxD / 127
}

// EncodeLine packs a line into one data texel. The line is normalized
// first; its offset must already be scaled into [-2, 2).
func EncodeLine(l geom.Line) ([4]byte, error) {
	l = l.Normalized()

	ua := int(math.Round(-l.N.Angle()/math.Pi*0x7FFF)) + 0x8000
	if ua&^0xFFFF != 0 {
		return [4]byte{}, &QuantizationError{Field: "line angle", Value: float64(ua), Limit: 0xFFFF}
	}

	ud := int(math.Round(l.C*0x1FFF)) + 0x4000
	if ud&^0x7FFF != 0 {
		return [4]byte{}, &QuantizationError{Field: "line distance", Value: l.C, Limit: 0x4000 / 0x1FFF}
	}
	ud |= 0x8000

	return [4]byte{byte(ud >> 8), byte(ud & 0xFF), byte(ua >> 8), byte(ua & 0xFF)}, nil
}

// DecodeLine unpacks a data texel written by EncodeLine into a line with a
// unit normal.
func DecodeLine(px [4]byte) geom.Line {
	ua := int(px[2])<<8 | int(px[3])
	angle := -float64(ua-0x8000) / 0x7FFF * math.Pi

	ud := (int(px[0])-128)<<8 | int(px[1])
	c := float64(ud-0x4000) / 0x1FFF

	return geom.Line{N: geom.Vector{X: math.Cos(angle), Y: math.Sin(angle)}, C: c}
}

// IndexFormat holds the parameters shared by all index entries of a glyph.
type IndexFormat struct {
	// MaxOffset is the number of texels in the data texture.
	MaxOffset int

	// MinSDF is the smallest cell-center distance.
	MinSDF float64

	// SDFStep is the width of one distance bucket.
	SDFStep float64
}

// NewIndexFormat returns the format that fits cell distances in
// [minSDF, maxSDF] next to offsets below maxOffset.
func NewIndexFormat(maxOffset int, minSDF, maxSDF float64) IndexFormat {
	level := 1
	if maxOffset > 0 {
		level = max(1, IndexFieldLimit/maxOffset-1)
	}
	return IndexFormat{
		MaxOffset: maxOffset,
		MinSDF:    minSDF,
		SDFStep:   (maxSDF - minSDF + 0.1) / float64(level),
	}
}

// EncodeIndex packs one index entry. numPoints above 3 is stored as 0,
// meaning the list is terminated by a zero texel.
func EncodeIndex(f IndexFormat, numPoints, offset int, sdf float64) (uint16, error) {
	if numPoints < 0 {
		return 0, &QuantizationError{Field: "num points", Value: float64(numPoints), Limit: 3}
	}
	if numPoints > 3 {
		numPoints = 0
	}
	if offset < 0 || offset >= f.MaxOffset {
		return 0, &QuantizationError{Field: "offset", Value: float64(offset), Limit: float64(f.MaxOffset - 1)}
	}

	sdfIndex := math.Floor((sdf - f.MinSDF) / f.SDFStep)
	if !(sdfIndex >= 0) {
		return 0, &QuantizationError{Field: "sdf", Value: sdf, Limit: f.MinSDF}
	}

	field := sdfIndex*float64(f.MaxOffset) + float64(offset)
	if field >= IndexFieldLimit {
		return 0, &QuantizationError{Field: "index", Value: field, Limit: IndexFieldLimit - 1}
	}
	return uint16(numPoints<<14 | int(field)), nil
}

// DecodeIndex unpacks an index entry. The returned distance is the lower
// bound of the bucket the original distance fell in.
func DecodeIndex(f IndexFormat, v uint16) (numPoints, offset int, sdf float64) {
	numPoints = int(v >> 14)
	rest := int(v & 0x3FFF)
	sdfIndex := rest / f.MaxOffset
	offset = rest % f.MaxOffset
	return numPoints, offset, float64(sdfIndex)*f.SDFStep + f.MinSDF
}
