package blob

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gogpu/glyphy/geom"
	"github.com/gogpu/glyphy/outline"
)

// DefaultCellMargin is the distance, in design units, added to the half
// diagonal of a cell when gathering its nearby arcs.
const DefaultCellMargin = 5.0

// Params controls grid sizing and arc pruning. All values are in design
// units.
type Params struct {
	// Faraway is the distance beyond which a cell needs no arcs; it also
	// pads the glyph box.
	Faraway float64

	// GridUnit is the target cell size.
	GridUnit float64

	// EnlightenMax and EmboldenMax are the largest outline offsets the
	// shader may apply.
	EnlightenMax float64
	EmboldenMax  float64

	// CellMargin widens the arc search around each cell center.
	CellMargin float64
}

// Validate checks that the params can drive an encode.
func (p Params) Validate() error {
	switch {
	case !(p.Faraway > 0):
		return fmt.Errorf("%w: Faraway must be positive", ErrInvalidParams)
	case !(p.GridUnit > 0):
		return fmt.Errorf("%w: GridUnit must be positive", ErrInvalidParams)
	case !(p.EnlightenMax >= 0):
		return fmt.Errorf("%w: EnlightenMax must not be negative", ErrInvalidParams)
	case !(p.EmboldenMax >= 0):
		return fmt.Errorf("%w: EmboldenMax must not be negative", ErrInvalidParams)
	case !(p.CellMargin >= 0):
		return fmt.Errorf("%w: CellMargin must not be negative", ErrInvalidParams)
	}
	return nil
}

// Scale returns the params for an outline scaled by s.
func (p Params) Scale(s float64) Params {
	return Params{
		Faraway:      p.Faraway * s,
		GridUnit:     p.GridUnit * s,
		EnlightenMax: p.EnlightenMax * s,
		EmboldenMax:  p.EmboldenMax * s,
		CellMargin:   p.CellMargin * s,
	}
}

// PaddedSpan returns the longer side of the box the grid of endpoints
// covers, or 0 for an empty list. Encode fails when it exceeds MaxCoord.
func (p Params) PaddedSpan(endpoints []geom.ArcEndpoint) float64 {
	ext := outline.Extents(endpoints)
	if ext.IsEmpty() {
		return 0
	}
	return max(ext.Width(), ext.Height()) + 2*(p.Faraway+p.EmboldenMax)
}

// LineCode is the single-texel encoding of a cell whose only nearby arc is
// a straight segment.
type LineCode struct {
	// Line has a unit normal; its offset is measured from the glyph center
	// in units of the longer glyph side.
	Line geom.Line

	Pixel [4]byte
}

// Cell is one grid cell of a blob.
type Cell struct {
	// Offset is the first data texel of the cell's list.
	Offset int

	// SDF is the signed distance at the cell center.
	SDF float64

	// Endpoints is the arc list stored for the cell.
	Endpoints []geom.ArcEndpoint

	// Original is the gathered list before line detection and reordering.
	Original []geom.ArcEndpoint

	// Line is set for line cells.
	Line *LineCode
}

// NumPoints returns the list length the index entry reports: 1 for a line
// cell, otherwise the number of endpoints.
func (c *Cell) NumPoints() int {
	if c.Line != nil {
		return 1
	}
	return len(c.Endpoints)
}

// Pixels returns the number of data texels the cell's list occupies.
func (c *Cell) Pixels() int {
	n := c.NumPoints()
	if n > 3 {
		n++
	}
	return n
}

// Stats describes an encode.
type Stats struct {
	Cells     int
	LineCells int

	// Slots is the number of distinct lists after deduplication.
	Slots int

	// PixelsBefore sums the texels of every cell; PixelsAfter counts the
	// texels actually stored.
	PixelsBefore int
	PixelsAfter  int

	// Ambiguous counts cell centers whose side had to be assumed.
	Ambiguous int

	// MaxEndpoints is the longest list stored for one cell.
	MaxEndpoints int
}

// Blob is the grid encoding of one glyph.
type Blob struct {
	// CellSize is the cell edge in design units.
	CellSize float64

	// Width and Height are the grid dimensions in cells.
	Width, Height int

	// Extents is the padded glyph box covered by the grid.
	Extents geom.AABB

	// Cells is indexed [row][col] with row 0 at Extents.MinY.
	Cells [][]Cell

	// Tex is nil for an empty glyph.
	Tex *TexData

	Stats Stats
}

// Encode builds the blob of an arc list. The list must be winding-resolved
// so that the glyph interior lies on the right of travel.
//
// An empty list yields a 1x1 blob without textures. Values that do not fit
// their texture fields fail with a *QuantizationError.
func Encode(endpoints []geom.ArcEndpoint, params Params) (*Blob, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := checkEndpoints(endpoints); err != nil {
		return nil, err
	}

	ext := outline.Extents(endpoints)
	if ext.IsEmpty() {
		return &Blob{CellSize: 1, Width: 1, Height: 1, Extents: ext}, nil
	}

	ext = ext.Expand(params.Faraway + params.EmboldenMax)
	w, h := ext.Width(), ext.Height()
	unit := max(w, h)
	if unit > MaxCoord {
		return nil, &QuantizationError{Field: "extents", Value: unit, Limit: MaxCoord}
	}

	gridL := min(MaxGridSize, max(1, int(math.Ceil(unit/params.GridUnit))))
	cellSize := unit / float64(gridL)
	gridS := min(gridL, max(1, int(math.Ceil(min(w, h)/cellSize-geom.Epsilon))))
	gridW, gridH := gridL, gridS
	if h > w {
		gridW, gridH = gridS, gridL
	}
	ext.MaxX = ext.MinX + float64(gridW)*cellSize
	ext.MaxY = ext.MinY + float64(gridH)*cellSize

	e := &encoder{
		params:    params,
		endpoints: endpoints,
		ext:       ext,
		unit:      unit,
		cellSize:  cellSize,
	}
	b := &Blob{
		CellSize: cellSize,
		Width:    gridW,
		Height:   gridH,
		Extents:  ext,
		Cells:    make([][]Cell, gridH),
	}
	for row := range b.Cells {
		b.Cells[row] = make([]Cell, gridW)
		for col := range b.Cells[row] {
			cell, err := e.cell(col, row, &b.Stats)
			if err != nil {
				return nil, fmt.Errorf("cell (%d, %d): %w", col, row, err)
			}
			b.Cells[row][col] = cell
		}
	}

	tex, err := e.pack(b)
	if err != nil {
		return nil, err
	}
	b.Tex = tex
	return b, nil
}

func checkEndpoints(endpoints []geom.ArcEndpoint) error {
	for i, ep := range endpoints {
		if !finite(ep.P.X) || !finite(ep.P.Y) {
			return fmt.Errorf("%w: endpoint %d has non-finite point (%v, %v)", ErrMalformedGlyph, i, ep.P.X, ep.P.Y)
		}
		if math.IsNaN(ep.D) || math.IsInf(ep.D, -1) {
			return fmt.Errorf("%w: endpoint %d has invalid d %v", ErrMalformedGlyph, i, ep.D)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

type encoder struct {
	params    Params
	endpoints []geom.ArcEndpoint
	ext       geom.AABB
	unit      float64
	cellSize  float64
}

func (e *encoder) cell(col, row int, stats *Stats) (Cell, error) {
	c0 := geom.Pt(e.ext.MinX+float64(col)*e.cellSize, e.ext.MinY+float64(row)*e.cellSize)
	c1 := geom.Pt(c0.X+e.cellSize, c0.Y+e.cellSize)
	center := c0.Midpoint(c1)

	dist := SDF(e.endpoints, center)
	if dist.Ambiguous {
		stats.Ambiguous++
	}

	faraway := max(e.params.Faraway, e.params.EnlightenMax, e.params.EmboldenMax)
	radius := e.params.CellMargin + center.DistanceTo(c0)

	var near []geom.ArcEndpoint
	if math.Abs(dist.Value)-radius <= faraway {
		near = nearArcs(e.endpoints, center, radius)
	}
	if len(near) == 0 {
		near = nearestArc(e.endpoints, dist.Nearest)
		if len(near) == 0 {
			return Cell{}, fmt.Errorf("%w: no arc near cell center", ErrMalformedGlyph)
		}
	}

	cell := Cell{SDF: dist.Value, Original: near, Endpoints: near}
	stats.Cells++

	if len(near) == 2 && near[1].D == 0 {
		s0, s1 := e.snap(near[0].P), e.snap(near[1].P)
		if s0 != s1 {
			l := geom.LineFromPoints(s0, s1)
			l.C -= l.N.Dot(e.ext.Center().Vec())
			l.C /= e.unit
			px, err := EncodeLine(l)
			if err != nil {
				return Cell{}, err
			}
			cell.Line = &LineCode{Line: l.Normalized(), Pixel: px}
			stats.LineCells++
			return cell, nil
		}
	}

	// Two arcs that meet at a contour start read as one run when swapped.
	if len(near) == 4 && near[2].IsMove() && near[0].P == near[3].P {
		cell.Endpoints = []geom.ArcEndpoint{near[2], near[3], near[1]}
	}
	if n := len(cell.Endpoints); n > MaxCellEndpoints {
		return Cell{}, &QuantizationError{Field: "cell endpoints", Value: float64(n), Limit: MaxCellEndpoints}
	}
	stats.MaxEndpoints = max(stats.MaxEndpoints, len(cell.Endpoints))
	return cell, nil
}

// nearArcs returns the arcs within radius of c as an endpoint list, with
// a move-to wherever consecutive arcs are not connected.
func nearArcs(endpoints []geom.ArcEndpoint, c geom.Point, radius float64) []geom.ArcEndpoint {
	var near []geom.ArcEndpoint
	var last geom.Point
	r2 := radius * radius
	for _, arc := range geom.Arcs(endpoints) {
		if arc.SquaredDistanceToPoint(c) > r2 {
			continue
		}
		if len(near) == 0 || !last.Equals(arc.P0) {
			near = append(near, geom.MoveTo(arc.P0))
		}
		near = append(near, geom.ArcEndpoint{P: arc.P1, D: arc.D})
		last = arc.P1
	}
	return near
}

// nearestArc returns the arc starting at endpoint index start as a
// two-endpoint list.
func nearestArc(endpoints []geom.ArcEndpoint, start int) []geom.ArcEndpoint {
	end := start + 1
	if end < 0 || end >= len(endpoints) {
		return nil
	}
	var p0 geom.Point
	if start >= 0 {
		p0 = endpoints[start].P
	}
	return []geom.ArcEndpoint{geom.MoveTo(p0), endpoints[end]}
}

func (e *encoder) snap(p geom.Point) geom.Point {
	w, h := e.ext.Width(), e.ext.Height()
	return geom.Pt(
		Dequantize(Quantize(p.X, e.ext.MinX, w), e.ext.MinX, w),
		Dequantize(Quantize(p.Y, e.ext.MinY, h), e.ext.MinY, h),
	)
}

// key identifies a cell's stored list by the exact bits of its values.
func (e *encoder) key(c *Cell) string {
	buf := make([]byte, 0, 1+len(c.Endpoints)*3*17)
	if c.Line != nil {
		buf = append(buf, 'L')
		for _, ep := range c.Original {
			buf = appendEndpointKey(buf, ep)
		}
		return string(buf)
	}
	buf = append(buf, 'A')
	for _, ep := range c.Endpoints {
		buf = appendEndpointKey(buf, ep)
	}
	return string(buf)
}

func appendEndpointKey(buf []byte, ep geom.ArcEndpoint) []byte {
	for _, v := range [3]float64{ep.P.X, ep.P.Y, ep.D} {
		buf = strconv.AppendUint(buf, math.Float64bits(v), 16)
		buf = append(buf, '_')
	}
	return buf
}

// pack deduplicates the cell lists and writes both textures.
func (e *encoder) pack(b *Blob) (*TexData, error) {
	w, h := e.ext.Width(), e.ext.Height()
	offsets := make(map[string]int)

	var data []byte
	pixels := 0
	minSDF, maxSDF := math.Inf(1), math.Inf(-1)

	for row := range b.Cells {
		for col := range b.Cells[row] {
			c := &b.Cells[row][col]
			minSDF = min(minSDF, c.SDF)
			maxSDF = max(maxSDF, c.SDF)
			b.Stats.PixelsBefore += c.Pixels()

			k := e.key(c)
			if off, ok := offsets[k]; ok {
				c.Offset = off
				continue
			}
			c.Offset = pixels
			offsets[k] = pixels
			pixels += c.Pixels()

			if c.Line != nil {
				data = append(data, c.Line.Pixel[:]...)
				continue
			}
			for _, ep := range c.Endpoints {
				px, err := EncodeEndpoint(
					Quantize(ep.P.X, e.ext.MinX, w),
					Quantize(ep.P.Y, e.ext.MinY, h),
					ep.D,
				)
				if err != nil {
					return nil, fmt.Errorf("cell (%d, %d): %w", col, row, err)
				}
				data = append(data, px[:]...)
			}
			if len(c.Endpoints) > 3 {
				data = append(data, 0, 0, 0, 0)
			}
		}
	}
	b.Stats.Slots = len(offsets)
	b.Stats.PixelsAfter = pixels

	dataW := min(pixels, MaxDataWidth)
	dataH := (pixels + dataW - 1) / dataW
	data = append(data, make([]byte, 4*(dataW*dataH-pixels))...)

	tex := &TexData{
		Data:        data,
		Index:       make([]byte, 0, 2*b.Width*b.Height),
		GridW:       b.Width,
		GridH:       b.Height,
		CellSize:    b.CellSize,
		DataWidth:   dataW,
		DataHeight:  dataH,
		IndexFormat: NewIndexFormat(pixels, minSDF, maxSDF),
	}
	for row := range b.Cells {
		for col := range b.Cells[row] {
			c := &b.Cells[row][col]
			v, err := EncodeIndex(tex.IndexFormat, c.NumPoints(), c.Offset, c.SDF)
			if err != nil {
				return nil, fmt.Errorf("cell (%d, %d): %w", col, row, err)
			}
			tex.Index = append(tex.Index, byte(v&0xFF), byte(v>>8))
		}
	}
	return tex, nil
}
