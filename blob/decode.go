package blob

import (
	"math"

	"github.com/gogpu/glyphy/geom"
)

const (
	decodeEpsilon = 1e-6

	// shallowD is the |d| below which arcs are measured against their
	// chord.
	shallowD = 0.03
)

// Decoder evaluates the distance field of a TexData with the same integer
// decoding and distance rules as the glyph shader.
type Decoder struct {
	Tex *TexData
}

// SDF returns the signed distance at p, negative inside. p and the result
// are in cell units, measured from the grid origin. Points in cells that
// lie entirely outside or inside the outline return +Inf or -Inf.
func (d Decoder) SDF(p geom.Point) float64 {
	t := d.Tex
	col := min(max(int(math.Floor(p.X)), 0), t.GridW-1)
	row := min(max(int(math.Floor(p.Y)), 0), t.GridH-1)

	num, off, sdf := DecodeIndex(t.IndexFormat, t.IndexEntry(col, row))
	check := t.CheckRadius()
	switch {
	case sdf > check:
		return math.Inf(1)
	case sdf < -check:
		return math.Inf(-1)
	}

	nominal := geom.Vector{X: float64(t.GridW), Y: float64(t.GridH)}
	if num == 1 {
		l := DecodeLine(t.DataTexel(off))
		return p.Sub(geom.Pt(nominal.X/2, nominal.Y/2)).Dot(l.N) - l.C*max(nominal.X, nominal.Y)
	}

	side := 1.0
	if sdf < 0 {
		side = -1
	}
	minDist := math.Inf(1)
	var closest geom.Arc

	p0, _ := d.endpoint(t.DataTexel(off))
	for i := 1; i < MaxCellEndpoints; i++ {
		if num != 0 && i >= num {
			break
		}
		px := t.DataTexel(off + i)
		if num == 0 && px == [4]byte{} {
			break
		}

		p1, dd := d.endpoint(px)
		if dd == geom.Infinity {
			p0 = p1
			continue
		}
		a := geom.Arc{P0: p0, P1: p1, D: dd}
		p0 = p1

		if a.WedgeContainsPoint(p) {
			sdist := wedgeSignedDist(a, p)
			udist := math.Abs(sdist) * (1 - decodeEpsilon)
			if udist <= minDist {
				minDist = udist
				side = 1
				if sdist <= 0 {
					side = -1
				}
			}
			continue
		}

		udist := math.Min(p.DistanceTo(a.P0), p.DistanceTo(a.P1))
		if udist < minDist-decodeEpsilon {
			side = 0
			minDist = udist
			closest = a
		} else if side == 0 && udist-minDist <= decodeEpsilon {
			oldExt := closest.ExtendedDist(p)
			newExt := a.ExtendedDist(p)
			ext := newExt
			if math.Abs(newExt) <= math.Abs(oldExt) {
				ext = oldExt
			}
			side = sign(ext)
		}
	}

	if side == 0 {
		side = sign(closest.ExtendedDist(p))
		if side == 0 {
			side = 1
		}
	}
	return minDist * side
}

// endpoint decodes a data texel into cell units.
func (d Decoder) endpoint(px [4]byte) (geom.Point, float64) {
	qx, qy, dd := DecodeEndpoint(px)
	return geom.Pt(
		float64(qx)/MaxCoord*float64(d.Tex.GridW),
		float64(qy)/MaxCoord*float64(d.Tex.GridH),
	), dd
}

// wedgeSignedDist is the distance from p to the circle of a, for p inside
// the arc's wedge. Positive values lie on the left of travel.
func wedgeSignedDist(a geom.Arc, p geom.Point) float64 {
	if math.Abs(a.D) <= shallowD {
		return wedgeSignedDistShallow(a, p)
	}
	c := a.Center()
	return sign(a.D) * (a.P0.DistanceTo(c) - p.DistanceTo(c))
}

// wedgeSignedDistShallow approximates the arc by its chord plus a
// parabolic bulge.
func wedgeSignedDistShallow(a geom.Arc, p geom.Point) float64 {
	v := a.P1.Sub(a.P0).Normalized()
	lineD := p.Sub(a.P0).Dot(v.Ortho())
	if a.D == 0 {
		return lineD
	}

	d0 := p.Sub(a.P0).Dot(v)
	if d0 < 0 {
		return sign(lineD) * p.DistanceTo(a.P0)
	}
	d1 := a.P1.Sub(p).Dot(v)
	if d1 < 0 {
		return sign(lineD) * p.DistanceTo(a.P1)
	}

	r := 2 * a.D * (d0 * d1) / (d0 + d1)
	if r*lineD > 0 {
		return sign(lineD) * min(math.Abs(lineD+r), p.DistanceTo(a.P0), p.DistanceTo(a.P1))
	}
	return lineD + r
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
