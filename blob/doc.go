// Package blob encodes an arc list into the two textures sampled by the
// glyph shader.
//
// The glyph's padded bounding box is divided into a grid of square cells.
// For every cell the encoder records the signed distance at the cell
// center and the short list of arcs that can be nearest to any point of
// the cell. Identical lists are stored once in the data texture; the index
// texture holds one 16-bit entry per cell that packs the list length, its
// offset and the quantized center distance.
//
// # Texture layout
//
// Data texel (RGBA8Uint), arc endpoint:
//
//	[id, qx & 0xFF, qy & 0xFF, (qx >> 8) << 4 | qy >> 8]
//
// where qx, qy are 12-bit coordinates across the glyph and id is 0 for a
// move-to or 128 + round(d * 127 / 0.5). Lists of more than three
// endpoints end with an all-zero texel.
//
// Data texel, line cell:
//
//	[ud >> 8, ud & 0xFF, ua >> 8, ua & 0xFF]
//
// with ua the 16-bit normal angle and ud the 15-bit distance from the
// glyph center, high bit set.
//
// Index texel (RG8Uint):
//
//	v = num << 14 | (sdfIndex * maxOffset + offset)
//	[v & 0xFF, v >> 8]
//
// num is 1 for a line cell, 2 or 3 for short lists and 0 for a
// zero-terminated list. [Decoder] is a CPU implementation of the shader
// side of this contract.
package blob
