package shader

import (
	_ "embed"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
)

// Source is the embedded WGSL program.
//
//go:embed glyphy.wgsl
var Source string

// Entry points of Source.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// Bindings of group 0.
const (
	UniformBinding      = 0
	IndexTextureBinding = 1
	DataTextureBinding  = 2
)

// UniformSize is the byte size of the uniform buffer:
// transform (mat4x4<f32>) = 64 bytes + color (vec4<f32>) = 16 bytes +
// info (vec4<f32>) = 16 bytes.
const UniformSize = 96

// ErrCompile is returned when the WGSL source fails to compile.
var ErrCompile = errors.New("shader: compile failed")

// Compile translates Source to SPIR-V words.
func Compile() ([]uint32, error) {
	spirvBytes, err := naga.Compile(Source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("%w: SPIR-V length %d is not a multiple of 4", ErrCompile, len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirvBytes[4*i:])
	}
	return words, nil
}

// Uniforms mirrors the WGSL uniform block.
type Uniforms struct {
	// Transform maps glyph vertex positions to clip space, column-major.
	Transform [16]float32

	// Color is the straight-alpha fill color.
	Color [4]float32

	// Info is the TexData uniform vector, see blob.TexData.Uniform.
	Info [4]float32
}

// Bytes returns the little-endian buffer contents.
func (u *Uniforms) Bytes() []byte {
	buf := make([]byte, 0, UniformSize)
	for _, f := range u.Transform {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	for _, f := range u.Color {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	for _, f := range u.Info {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	return buf
}

// Ortho returns a column-major orthographic transform mapping
// [0, width] x [0, height] with Y up onto clip space.
func Ortho(width, height float32) [16]float32 {
	return [16]float32{
		2 / width, 0, 0, 0,
		0, 2 / height, 0, 0,
		0, 0, 1, 0,
		-1, -1, 0, 1,
	}
}

// BindGroupLayoutEntries describes bind group 0.
func BindGroupLayoutEntries() []gputypes.BindGroupLayoutEntry {
	texture := func(binding uint32) gputypes.BindGroupLayoutEntry {
		return gputypes.BindGroupLayoutEntry{
			Binding:    binding,
			Visibility: gputypes.ShaderStageFragment,
			Texture: &gputypes.TextureBindingLayout{
				SampleType:    gputypes.TextureSampleTypeUint,
				ViewDimension: gputypes.TextureViewDimension2D,
			},
		}
	}
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    UniformBinding,
			Visibility: gputypes.ShaderStagesVertexFragment,
			Buffer: &gputypes.BufferBindingLayout{
				Type:           gputypes.BufferBindingTypeUniform,
				MinBindingSize: UniformSize,
			},
		},
		texture(IndexTextureBinding),
		texture(DataTextureBinding),
	}
}
