// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	glm "github.com/go-gl/mathgl/mgl32"
)

// PointLight is an omnidirectional light with a finite radius of
// influence. Position is given in world space and resolved into the
// shading space by the render pass.
type PointLight struct {
	Position glm.Vec3
	Color    glm.Vec3
	Radius   float32
}

// NewPointLight creates a white point light at the given position.
func NewPointLight(position glm.Vec3, radius float32) PointLight {
	return PointLight{
		Position: position,
		Color:    glm.Vec3{1, 1, 1},
		Radius:   radius,
	}
}

// Attenuation computes the falloff factor for a surface point at the
// given offset from the light. It is exactly one at the light position
// and reaches zero at the radius, following
//
//	max(0, 1 - dot(L/r, L/r))
//
// where L is the vector from the surface to the light.
func (l PointLight) Attenuation(toLight glm.Vec3) float32 {
	scaled := toLight.Mul(1 / l.Radius)
	att := 1 - scaled.Dot(scaled)
	if att < 0 {
		return 0
	}
	return att
}
