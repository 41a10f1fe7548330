// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"image"
)

// GPU is the interface that defines a rendering device
// bound to a graphics context.
// Its methods, and the methods of the resources it
// creates, must be called from the thread on which the
// context is current.
type GPU interface {
	// Driver returns the Driver that owns the GPU.
	Driver() Driver

	// Viewport sets the viewport rectangle.
	Viewport(x, y, width, height int)

	// Clear clears the color and depth buffers.
	Clear(r, g, b, a float32)

	// SetDepthTest enables or disables depth testing.
	SetDepthTest(enabled bool)

	// NewShaderCode compiles shader source code.
	// The error contains the compiler log.
	NewShaderCode(stage Stage, src string) (ShaderCode, error)

	// NewProgram links a vertex and a fragment shader.
	// The error contains the linker log.
	NewProgram(vert, frag ShaderCode) (Program, error)

	// NewTexture creates a 2D texture from img.
	// Row 0 of img is the bottom row of the texture.
	NewTexture(img *image.NRGBA, spln *Sampling) (Texture, error)

	// NewMesh creates a vertex array from interleaved
	// vertex data and an optional index list.
	// If index is nil, the mesh draws count vertices in
	// order.
	NewMesh(data []byte, stride int, in []VertexIn, index []uint32, count int) (Mesh, error)

	// Err returns the oldest unreported device error, or
	// nil if there is none.
	Err() error
}

// Destroyer is the interface that wraps the Destroy method.
// Destroying a resource more than once has no effect.
type Destroyer interface {
	Destroy()
}

// Stage is the type of shader stages.
type Stage int

// Shader stages.
const (
	SVertex Stage = iota
	SFragment
)

func (s Stage) String() string {
	switch s {
	case SVertex:
		return "vertex"
	case SFragment:
		return "fragment"
	}
	return "unknown"
}

// ShaderCode is the interface that defines a compiled
// shader stage.
type ShaderCode interface {
	Destroyer
	Stage() Stage
}

// Program is the interface that defines a linked shader
// program.
type Program interface {
	Destroyer

	// Use makes the program current.
	Use()

	// Location returns the location of the named uniform,
	// or -1 if the program has no such active uniform.
	Location(name string) int

	// Uniformf sets a float vector uniform of n
	// components. len(v) is a multiple of n.
	Uniformf(loc, n int, v []float32)

	// Uniformd sets a double vector uniform.
	Uniformd(loc, n int, v []float64)

	// Uniformi sets an int vector uniform.
	Uniformi(loc, n int, v []int32)

	// Uniformu sets an unsigned int vector uniform.
	Uniformu(loc, n int, v []uint32)

	// UniformMatf sets a float matrix uniform from
	// row-major data of rows×cols elements.
	UniformMatf(loc, rows, cols int, v []float32)

	// UniformMatd sets a double matrix uniform from
	// row-major data.
	UniformMatd(loc, rows, cols int, v []float64)
}

// AddrMode is the type of texture addressing modes.
type AddrMode int

// Addressing modes.
const (
	AWrap AddrMode = iota
	AMirror
	AClamp
)

// Filter is the type of texture filters.
type Filter int

// Filters.
const (
	FNearest Filter = iota
	FLinear
	// FNoMipmap is only valid as Sampling.Mipmap.
	FNoMipmap
)

// Sampling describes texture sampler state.
type Sampling struct {
	Min    Filter
	Mag    Filter
	Mipmap Filter
	AddrU  AddrMode
	AddrV  AddrMode
}

// DefaultSampling is repeat addressing with trilinear
// filtering.
var DefaultSampling = Sampling{
	Min:    FLinear,
	Mag:    FLinear,
	Mipmap: FLinear,
	AddrU:  AWrap,
	AddrV:  AWrap,
}

// Texture is the interface that defines a 2D texture.
type Texture interface {
	Destroyer

	// Bind binds the texture to a texture unit.
	Bind(unit int)

	// Size returns the texture's dimensions.
	Size() (width, height int)
}

// VertexFmt is the type of vertex formats.
type VertexFmt int

// Vertex formats.
// Integer formats are exposed to shaders as integers.
const (
	Float32 VertexFmt = iota
	Int32
	UInt32
	UInt8
)

// Size returns the size in bytes of one component.
func (f VertexFmt) Size() int {
	if f == UInt8 {
		return 1
	}
	return 4
}

// VertexIn describes one interleaved vertex attribute.
type VertexIn struct {
	Format VertexFmt
	// Number of components, 1 to 4.
	Count int
	// Offset in bytes from the start of a vertex.
	Offset int
	// Attribute location.
	Nr int
}

// Mesh is the interface that defines vertex data ready
// to be drawn.
type Mesh interface {
	Destroyer

	// Draw draws the mesh as a triangle list.
	Draw()

	// Count returns the number of indices drawn, or the
	// number of vertices for meshes without indices.
	Count() int

	// Indexed returns whether the mesh has indices.
	Indexed() bool
}
