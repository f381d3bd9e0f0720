// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import glm "github.com/go-gl/mathgl/mgl32"

// TransformBlock is the per-draw transform set handed to the vertex
// stage, the analog of the push-constant block plus the view uniform.
// It lives for a single draw call.
type TransformBlock struct {
	Model               glm.Mat4
	ModelView           glm.Mat4
	ModelViewProjection glm.Mat4
	View                glm.Mat4
}

// NewTransformBlock combines the matrices once per draw so both stages
// and any external consumer see the same products.
func NewTransformBlock(model, view, projection glm.Mat4) TransformBlock {
	mv := view.Mul4(model)
	return TransformBlock{
		Model:               model,
		ModelView:           mv,
		ModelViewProjection: projection.Mul4(mv),
		View:                view,
	}
}

// TransformPoint applies m to a point (w = 1).
func TransformPoint(m glm.Mat4, p glm.Vec3) glm.Vec3 {
	v := m.Mul4x1(p.Vec4(1))
	return v.Vec3()
}

// TransformDirection applies m to a direction (w = 0), so translation
// does not affect it.
func TransformDirection(m glm.Mat4, d glm.Vec3) glm.Vec3 {
	v := m.Mul4x1(d.Vec4(0))
	return v.Vec3()
}

// VulkanNDC converts a GL-style projection matrix into Vulkan clip
// conventions: Y grows downward and depth spans [0, 1].
var VulkanNDC = glm.Mat4{
	1, 0, 0, 0,
	0, -1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// Projection builds the engine projection matrix from a vertical field
// of view (radians) in Vulkan clip conventions.
func Projection(verticalFov, aspect, near, far float32) glm.Mat4 {
	return VulkanNDC.Mul4(glm.Perspective(verticalFov, aspect, near, far))
}
