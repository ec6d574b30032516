// Package geom provides the 2D geometry kernel used by the glyph encoder:
// points, vectors, lines, segments, bounding boxes, circular arcs and cubic
// Bezier curves.
//
// All types are small values with pure methods. Coordinates are float64 in
// font design units with the Y axis pointing up. Equality and zero tests use
// the fixed tolerance [Epsilon] to absorb drift from repeated transforms.
//
// # Arcs
//
// An [Arc] is described by its two endpoints and the parameter
//
//	d = tan(θ/4)
//
// where θ is the signed angle the arc subtends at its center. d == 0 is a
// straight segment, |d| < 1 a small arc and |d| > 1 a large arc. A positive d
// places the center on the side of (P1-P0).Ortho().
//
// A glyph outline is stored as a flat list of [ArcEndpoint] values.
// Consecutive endpoints (e[i-1].P, e[i].P, e[i].D) form one arc, and an
// endpoint whose D is +Inf starts a new subpath.
package geom
