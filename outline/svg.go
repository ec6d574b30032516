package outline

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/glyphy/geom"
)

// SVGPath renders endpoints as SVG path data in the same coordinate
// system. Straight arcs become L commands and curved ones A commands; a
// positive d sweeps in the direction of increasing angle.
func SVGPath(endpoints []geom.ArcEndpoint) string {
	var sb strings.Builder
	var cur geom.Point
	for _, e := range endpoints {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch {
		case e.IsMove():
			sb.WriteString("M ")
			writePoint(&sb, e.P)
		case e.D == 0:
			sb.WriteString("L ")
			writePoint(&sb, e.P)
		default:
			arc := geom.Arc{P0: cur, P1: e.P, D: e.D}
			r := arc.Radius()
			sb.WriteString("A ")
			writeFloat(&sb, r)
			sb.WriteByte(' ')
			writeFloat(&sb, r)
			sb.WriteString(" 0 ")
			sb.WriteString(flag(math.Abs(e.D) > 1))
			sb.WriteByte(' ')
			sb.WriteString(flag(e.D > 0))
			sb.WriteByte(' ')
			writePoint(&sb, e.P)
		}
		cur = e.P
	}
	return sb.String()
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func writePoint(sb *strings.Builder, p geom.Point) {
	writeFloat(sb, p.X)
	sb.WriteByte(' ')
	writeFloat(sb, p.Y)
}

func writeFloat(sb *strings.Builder, v float64) {
	sb.WriteString(strconv.FormatFloat(v, 'g', 6, 64))
}
