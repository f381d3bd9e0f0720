package model

import glm "github.com/go-gl/mathgl/mgl32"

// Mesh is indexed triangle-list geometry. Vertices are immutable at
// draw time, shared meshes must not be mutated after creation.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// NumIndices returns the mesh index count.
func (m *Mesh) NumIndices() int {
	return len(m.Indices)
}

// NewQuad creates a quad of the given half extents in the XY plane,
// facing +Z.
func NewQuad(width, height float32) *Mesh {
	vertices := []Vertex{
		{
			Pos:       glm.Vec3{-width, -height, 0},
			Normal:    glm.Vec3{0, 0, 1},
			Tangent:   glm.Vec3{1, 0, 0},
			Bitangent: glm.Vec3{0, 1, 0},
			TexUV:     glm.Vec2{0, 0},
		},
		{
			Pos:       glm.Vec3{width, -height, 0},
			Normal:    glm.Vec3{0, 0, 1},
			Tangent:   glm.Vec3{1, 0, 0},
			Bitangent: glm.Vec3{0, 1, 0},
			TexUV:     glm.Vec2{1, 0},
		},
		{
			Pos:       glm.Vec3{-width, height, 0},
			Normal:    glm.Vec3{0, 0, 1},
			Tangent:   glm.Vec3{1, 0, 0},
			Bitangent: glm.Vec3{0, 1, 0},
			TexUV:     glm.Vec2{0, 1},
		},
		{
			Pos:       glm.Vec3{width, height, 0},
			Normal:    glm.Vec3{0, 0, 1},
			Tangent:   glm.Vec3{1, 0, 0},
			Bitangent: glm.Vec3{0, 1, 0},
			TexUV:     glm.Vec2{1, 1},
		},
	}
	indices := []uint16{0, 1, 3, 0, 3, 2}

	return &Mesh{Vertices: vertices, Indices: indices}
}

// NewCuboid creates an axis-aligned cuboid centered on the origin.
// Face UVs are laid out in an unwrapped cross so a single cubemap
// texture covers all six faces.
func NewCuboid(width, height, depth float32) *Mesh {
	hw := width / 2
	hh := height / 2
	hd := depth / 2

	vertices := []Vertex{
		// Front
		{Pos: glm.Vec3{-hw, -hh, hd}, Normal: glm.Vec3{0, 0, 1}, Tangent: glm.Vec3{1, 0, 0}, Bitangent: glm.Vec3{0, 1, 0}, TexUV: glm.Vec2{0.25, 2.0 / 3.0}},
		{Pos: glm.Vec3{hw, -hh, hd}, Normal: glm.Vec3{0, 0, 1}, Tangent: glm.Vec3{1, 0, 0}, Bitangent: glm.Vec3{0, 1, 0}, TexUV: glm.Vec2{0.5, 2.0 / 3.0}},
		{Pos: glm.Vec3{-hw, hh, hd}, Normal: glm.Vec3{0, 0, 1}, Tangent: glm.Vec3{1, 0, 0}, Bitangent: glm.Vec3{0, 1, 0}, TexUV: glm.Vec2{0.25, 1.0 / 3.0}},
		{Pos: glm.Vec3{hw, hh, hd}, Normal: glm.Vec3{0, 0, 1}, Tangent: glm.Vec3{1, 0, 0}, Bitangent: glm.Vec3{0, 1, 0}, TexUV: glm.Vec2{0.5, 1.0 / 3.0}},
		// Back
		{Pos: glm.Vec3{hw, -hh, -hd}, Normal: glm.Vec3{0, 0, -1}, Tangent: glm.Vec3{-1, 0, 0}, Bitangent: glm.Vec3{0, 1, 0}, TexUV: glm.Vec2{0.75, 2.0 / 3.0}},
		{Pos: glm.Vec3{-hw, -hh, -hd}, Normal: glm.Vec3{0, 0, -1}, Tangent: glm.Vec3{-1, 0, 0}, Bitangent: glm.Vec3{0, 1, 0}, TexUV: glm.Vec2{1, 2.0 / 3.0}},
		{Pos: glm.Vec3{hw, hh, -hd}, Normal: glm.Vec3{0, 0, -1}, Tangent: glm.Vec3{-1, 0, 0}, Bitangent: glm.Vec3{0, 1, 0}, TexUV: glm.Vec2{0.75, 1.0 / 3.0}},
		{Pos: glm.Vec3{-hw, hh, -hd}, Normal: glm.Vec3{0, 0, -1}, Tangent: glm.Vec3{-1, 0, 0}, Bitangent: glm.Vec3{0, 1, 0}, TexUV: glm.Vec2{1, 1.0 / 3.0}},
		// Top
		{Pos: glm.Vec3{-hw, hh, hd}, Normal: glm.Vec3{0, 1, 0}, Tangent: glm.Vec3{1, 0, 0}, Bitangent: glm.Vec3{0, 0, -1}, TexUV: glm.Vec2{0.25, 1.0 / 3.0}},
		{Pos: glm.Vec3{hw, hh, hd}, Normal: glm.Vec3{0, 1, 0}, Tangent: glm.Vec3{1, 0, 0}, Bitangent: glm.Vec3{0, 0, -1}, TexUV: glm.Vec2{0.5, 1.0 / 3.0}},
		{Pos: glm.Vec3{-hw, hh, -hd}, Normal: glm.Vec3{0, 1, 0}, Tangent: glm.Vec3{1, 0, 0}, Bitangent: glm.Vec3{0, 0, -1}, TexUV: glm.Vec2{0.25, 0}},
		{Pos: glm.Vec3{hw, hh, -hd}, Normal: glm.Vec3{0, 1, 0}, Tangent: glm.Vec3{1, 0, 0}, Bitangent: glm.Vec3{0, 0, -1}, TexUV: glm.Vec2{0.5, 0}},
		// Bottom
		{Pos: glm.Vec3{-hw, -hh, -hd}, Normal: glm.Vec3{0, -1, 0}, Tangent: glm.Vec3{1, 0, 0}, Bitangent: glm.Vec3{0, 0, 1}, TexUV: glm.Vec2{0.25, 1}},
		{Pos: glm.Vec3{hw, -hh, -hd}, Normal: glm.Vec3{0, -1, 0}, Tangent: glm.Vec3{1, 0, 0}, Bitangent: glm.Vec3{0, 0, 1}, TexUV: glm.Vec2{0.5, 1}},
		{Pos: glm.Vec3{-hw, -hh, hd}, Normal: glm.Vec3{0, -1, 0}, Tangent: glm.Vec3{1, 0, 0}, Bitangent: glm.Vec3{0, 0, 1}, TexUV: glm.Vec2{0.25, 2.0 / 3.0}},
		{Pos: glm.Vec3{hw, -hh, hd}, Normal: glm.Vec3{0, -1, 0}, Tangent: glm.Vec3{1, 0, 0}, Bitangent: glm.Vec3{0, 0, 1}, TexUV: glm.Vec2{0.5, 2.0 / 3.0}},
		// Right
		{Pos: glm.Vec3{hw, -hh, hd}, Normal: glm.Vec3{1, 0, 0}, Tangent: glm.Vec3{0, 0, -1}, Bitangent: glm.Vec3{0, 1, 0}, TexUV: glm.Vec2{0.5, 2.0 / 3.0}},
		{Pos: glm.Vec3{hw, -hh, -hd}, Normal: glm.Vec3{1, 0, 0}, Tangent: glm.Vec3{0, 0, -1}, Bitangent: glm.Vec3{0, 1, 0}, TexUV: glm.Vec2{0.75, 2.0 / 3.0}},
		{Pos: glm.Vec3{hw, hh, hd}, Normal: glm.Vec3{1, 0, 0}, Tangent: glm.Vec3{0, 0, -1}, Bitangent: glm.Vec3{0, 1, 0}, TexUV: glm.Vec2{0.5, 1.0 / 3.0}},
		{Pos: glm.Vec3{hw, hh, -hd}, Normal: glm.Vec3{1, 0, 0}, Tangent: glm.Vec3{0, 0, -1}, Bitangent: glm.Vec3{0, 1, 0}, TexUV: glm.Vec2{0.75, 1.0 / 3.0}},
		// Left
		{Pos: glm.Vec3{-hw, -hh, -hd}, Normal: glm.Vec3{-1, 0, 0}, Tangent: glm.Vec3{0, 0, 1}, Bitangent: glm.Vec3{0, 1, 0}, TexUV: glm.Vec2{0, 2.0 / 3.0}},
		{Pos: glm.Vec3{-hw, -hh, hd}, Normal: glm.Vec3{-1, 0, 0}, Tangent: glm.Vec3{0, 0, 1}, Bitangent: glm.Vec3{0, 1, 0}, TexUV: glm.Vec2{0.25, 2.0 / 3.0}},
		{Pos: glm.Vec3{-hw, hh, -hd}, Normal: glm.Vec3{-1, 0, 0}, Tangent: glm.Vec3{0, 0, 1}, Bitangent: glm.Vec3{0, 1, 0}, TexUV: glm.Vec2{0, 1.0 / 3.0}},
		{Pos: glm.Vec3{-hw, hh, hd}, Normal: glm.Vec3{-1, 0, 0}, Tangent: glm.Vec3{0, 0, 1}, Bitangent: glm.Vec3{0, 1, 0}, TexUV: glm.Vec2{0.25, 1.0 / 3.0}},
	}
	indices := []uint16{
		0, 1, 2, 2, 1, 3, // Front
		4, 5, 6, 6, 5, 7, // Back
		8, 9, 10, 10, 9, 11, // Top
		12, 13, 14, 14, 13, 15, // Bottom
		16, 17, 18, 18, 17, 19, // Right
		20, 21, 22, 22, 21, 23, // Left
	}

	return &Mesh{Vertices: vertices, Indices: indices}
}
