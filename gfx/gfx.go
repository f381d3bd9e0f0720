// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gfx implements the engine's shading pipeline on the CPU:
// a vertex transform stage, a single parameterized point-light shading
// stage and a fullscreen blit pass. The GPU shaders the engine may grow
// later must reproduce exactly these semantics, so the package doubles
// as the reference implementation for golden-image checks.
package gfx

import glm "github.com/go-gl/mathgl/mgl32"

// Space is the coordinate space the shading stage receives its
// eye and light vectors in.
type Space int

// Shading spaces.
const (
	// SpaceView shades with view-space vectors and the interpolated
	// vertex normal.
	SpaceView Space = iota

	// SpaceTangent shades with vectors projected into the per-vertex
	// tangent frame, the normal comes from a normal map.
	SpaceTangent
)

// Program selects the behaviour of the unified shading routine.
// Earlier engine generations kept a separate shader source per
// combination; the combinations are capability flags now.
type Program struct {
	Space        Space
	Textured     bool
	NormalMapped bool
}

// Material groups the shading inputs shared between draws.
// Materials are generally shared, do not mutate them mid-frame.
type Material struct {
	ColorMap  *Texture
	NormalMap *Texture

	// Diffuse is the base surface color used when no color map is bound.
	Diffuse glm.Vec3

	// Shininess is the specular exponent.
	Shininess float32
}

// NewMaterial creates a material with the engine's default reflectance.
func NewMaterial(colorMap, normalMap *Texture) *Material {
	return &Material{
		ColorMap:  colorMap,
		NormalMap: normalMap,
		Diffuse:   glm.Vec3{1, 1, 1},
		Shininess: DefaultShininess,
	}
}

// Program derives the shading program the material needs.
func (m *Material) Program() Program {
	p := Program{
		Textured:     m.ColorMap != nil,
		NormalMapped: m.NormalMap != nil,
	}
	if p.NormalMapped {
		p.Space = SpaceTangent
	}
	return p
}

// DefaultShininess is the canonical specular exponent.
const DefaultShininess = 50
