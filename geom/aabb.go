package geom

import "math"

// AABB is an axis-aligned bounding box. The empty box has MinX == +Inf.
// Add and Extend only ever grow the box.
type AABB struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// EmptyAABB returns an empty bounding box.
func EmptyAABB() AABB {
	return AABB{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

// Clear resets b to the empty box.
func (b *AABB) Clear() {
	*b = EmptyAABB()
}

// IsEmpty reports whether b is the empty box.
func (b AABB) IsEmpty() bool {
	return math.IsInf(b.MinX, 0)
}

// Add grows b to include p.
func (b *AABB) Add(p Point) {
	if b.IsEmpty() {
		b.MinX, b.MaxX = p.X, p.X
		b.MinY, b.MaxY = p.Y, p.Y
		return
	}
	b.MinX = min(b.MinX, p.X)
	b.MinY = min(b.MinY, p.Y)
	b.MaxX = max(b.MaxX, p.X)
	b.MaxY = max(b.MaxY, p.Y)
}

// Extend grows b to include o.
func (b *AABB) Extend(o AABB) {
	if o.IsEmpty() {
		return
	}
	if b.IsEmpty() {
		*b = o
		return
	}
	b.MinX = min(b.MinX, o.MinX)
	b.MinY = min(b.MinY, o.MinY)
	b.MaxX = max(b.MaxX, o.MaxX)
	b.MaxY = max(b.MaxY, o.MaxY)
}

// Includes reports whether p lies inside b or on its border.
func (b AABB) Includes(p Point) bool {
	return b.MinX <= p.X && p.X <= b.MaxX && b.MinY <= p.Y && p.Y <= b.MaxY
}

// Scale multiplies the bounds by the given factors.
func (b *AABB) Scale(sx, sy float64) {
	b.MinX *= sx
	b.MaxX *= sx
	b.MinY *= sy
	b.MaxY *= sy
}

// Expand returns b grown by margin on every side. The empty box stays empty.
func (b AABB) Expand(margin float64) AABB {
	if b.IsEmpty() {
		return b
	}
	return AABB{
		MinX: b.MinX - margin,
		MinY: b.MinY - margin,
		MaxX: b.MaxX + margin,
		MaxY: b.MaxY + margin,
	}
}

// Width returns MaxX - MinX.
func (b AABB) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b AABB) Height() float64 { return b.MaxY - b.MinY }

// Center returns the center of the box.
func (b AABB) Center() Point {
	return Point{(b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2}
}
