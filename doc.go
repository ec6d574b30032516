// Package glyphy encodes glyph outlines into compact, GPU-decodable signed
// distance fields built from circular arcs.
//
// # Overview
//
// Each glyph becomes two small textures: an index texture with one 16-bit
// entry per grid cell and a data texture with one RGBA8 texel per arc
// endpoint or straight line. A fragment shader reconstructs the distance to
// the outline at any scale with a bounded number of texel reads.
//
// # Quick Start
//
//	src, err := fontsrc.ParseGoText(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	enc, err := glyphy.NewEncoder(glyphy.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g, err := enc.EncodeRune(src, 'g')
//	if err != nil {
//	    log.Fatal(err)
//	}
//	verts, _, err := glyphy.GlyphVertices(48, g.Info)
//
// g.Tex holds the texture bytes and their gputypes descriptors. The shader
// package embeds the matching WGSL decoder.
//
// # Pipeline
//
// Outline commands are fitted with arcs (package outline, arcfit), contour
// orientations are resolved so that the inside lies on the right of travel,
// and the arc list is gridded, deduplicated and packed (package blob).
//
// # Architecture
//
//   - geom: points, lines, arcs, beziers and boxes
//   - arcfit: arc approximation of cubic curves
//   - outline: commands, arc accumulation, winding resolution
//   - blob: grid encoding, texture packing, CPU reference decoder
//   - fontsrc: outlines from TrueType and OpenType fonts
//   - shader: WGSL decoder compiled with naga
//
// # Thread Safety
//
// Encoder and Cache are safe for concurrent use. The pure packages hold no
// shared state.
package glyphy
