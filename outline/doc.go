// Package outline turns glyph outline commands into a flat list of arc
// endpoints and normalizes the orientation of its contours.
//
// An [Accumulator] consumes MoveTo/LineTo/QuadTo/CubeTo/Close commands in
// font design units, fits every curve with circular arcs and records the
// largest fit error. [ResolveWinding] then reverses contours as needed so
// that exteriors run clockwise and holes counter-clockwise (Y up), which
// places the filled region on the right of travel.
package outline
