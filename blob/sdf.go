package blob

import (
	"math"

	"github.com/gogpu/glyphy/geom"
)

// Distance is the signed distance from a point to an arc list.
type Distance struct {
	// Value is negative inside the glyph.
	Value float64

	// Nearest is the index of the start endpoint of the arc that
	// determined Value. It is -1 for a list without arcs, and for an arc
	// that starts at the origin because the list has no leading move-to.
	Nearest int

	// Ambiguous is set when no arc could tell the side of the point and
	// it was assumed to be outside.
	Ambiguous bool
}

// SDF returns the signed distance from p to the arcs of endpoints.
//
// Inside an arc's wedge the distance is to the arc itself and carries the
// arc's side. Outside every wedge the nearest endpoint wins and the side is
// taken from the extended distance of the arcs meeting there.
func SDF(endpoints []geom.ArcEndpoint, p geom.Point) Distance {
	var closest geom.Arc
	side := 0
	minDist := math.Inf(1)
	nearest := -1
	found := false

	for i, arc := range geom.Arcs(endpoints) {
		if arc.WedgeContainsPoint(p) {
			sdist := arc.DistanceToPoint(p)
			udist := math.Abs(sdist) * (1 - geom.Epsilon)
			if udist <= minDist {
				minDist = udist
				nearest = i - 1
				found = true
				side = 1
				if sdist >= 0 {
					side = -1
				}
			}
			continue
		}

		udist := math.Min(arc.P0.DistanceTo(p), arc.P1.DistanceTo(p))
		if udist < minDist {
			minDist = udist
			nearest = i - 1
			found = true
			side = 0
			closest = arc
		} else if side == 0 && udist == minDist {
			oldExt := closest.ExtendedDist(p)
			newExt := arc.ExtendedDist(p)
			ext := newExt
			if math.Abs(newExt) <= math.Abs(oldExt) {
				ext = oldExt
			}
			side = 1
			if ext < 0 {
				side = -1
			}
		}
	}

	if !found {
		return Distance{Value: math.Inf(1), Nearest: -1}
	}

	var ambiguous bool
	if side == 0 {
		ext := closest.ExtendedDist(p)
		switch {
		case ext > 0:
			side = 1
		case ext < 0:
			side = -1
		default:
			side = 1
			ambiguous = true
		}
	}
	return Distance{Value: float64(side) * minDist, Nearest: nearest, Ambiguous: ambiguous}
}
