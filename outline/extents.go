package outline

import "github.com/gogpu/glyphy/geom"

// Extents returns the bounding box of all arcs in endpoints. Move-tos
// contribute only through the arcs that start at them. The box is empty
// for a list without arcs.
func Extents(endpoints []geom.ArcEndpoint) geom.AABB {
	box := geom.EmptyAABB()
	for _, arc := range geom.Arcs(endpoints) {
		box.Extend(arc.Extents())
	}
	return box
}
