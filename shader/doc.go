// Package shader holds the WGSL program that renders glyphy glyphs.
//
// The vertex stage expects glyphy.GlyphVertex data at location 0. The
// fragment stage reads the index and data textures of a blob.TexData with
// integer loads and reproduces the decoding of blob.Decoder, so a glyph
// renders the same distances the CPU decoder reports.
//
// Bind group 0 holds the uniforms (binding 0), the index texture
// (binding 1) and the data texture (binding 2). BindGroupLayoutEntries
// describes them for pipeline creation.
//
// Compile translates the source to SPIR-V with naga:
//
//	spirv, err := shader.Compile()
//	if err != nil {
//		return err
//	}
package shader
