// Package model holds mesh data in the exact vertex layout the
// rendering pipeline consumes.
package model

import (
	"unsafe"

	glm "github.com/go-gl/mathgl/mgl32"
)

// Vertex is a model vertex. Positions and basis vectors are object space,
// the basis (Tangent, Bitangent, Normal) is aligned to the UV parameterization.
type Vertex struct {
	Pos       glm.Vec3
	Normal    glm.Vec3
	Tangent   glm.Vec3
	Bitangent glm.Vec3
	TexUV     glm.Vec2
}

// Format of a single vertex attribute.
type Format int

// Supported attribute formats.
const (
	FormatR32G32Sfloat Format = iota
	FormatR32G32B32Sfloat
)

// Attribute locations in the vertex stage interface. Fixed, any backend
// consuming these meshes must bind them at exactly these slots.
const (
	LocationPosition  = 0
	LocationNormal    = 1
	LocationTangent   = 2
	LocationBitangent = 3
	LocationTexUV     = 4
)

// VertexInputBinding describes one bound vertex buffer.
type VertexInputBinding struct {
	Binding uint32
	Stride  uint32
}

// VertexInputAttribute describes a single attribute within a binding.
type VertexInputAttribute struct {
	Binding  uint32
	Location uint32
	Format   Format
	Offset   uint32
}

// VertexBindingDescriptions return the vertex buffer binding descriptors.
func VertexBindingDescriptions() []VertexInputBinding {
	return []VertexInputBinding{{
		Binding: 0,
		Stride:  uint32(unsafe.Sizeof(Vertex{})),
	}}
}

// VertexAttributeDescriptions return the per-attribute descriptors,
// one for each of the fixed locations 0..4.
func VertexAttributeDescriptions() []VertexInputAttribute {
	return []VertexInputAttribute{
		{
			Binding:  0,
			Location: LocationPosition,
			Format:   FormatR32G32B32Sfloat,
			Offset:   uint32(unsafe.Offsetof(Vertex{}.Pos)),
		},
		{
			Binding:  0,
			Location: LocationNormal,
			Format:   FormatR32G32B32Sfloat,
			Offset:   uint32(unsafe.Offsetof(Vertex{}.Normal)),
		},
		{
			Binding:  0,
			Location: LocationTangent,
			Format:   FormatR32G32B32Sfloat,
			Offset:   uint32(unsafe.Offsetof(Vertex{}.Tangent)),
		},
		{
			Binding:  0,
			Location: LocationBitangent,
			Format:   FormatR32G32B32Sfloat,
			Offset:   uint32(unsafe.Offsetof(Vertex{}.Bitangent)),
		},
		{
			Binding:  0,
			Location: LocationTexUV,
			Format:   FormatR32G32Sfloat,
			Offset:   uint32(unsafe.Offsetof(Vertex{}.TexUV)),
		},
	}
}
