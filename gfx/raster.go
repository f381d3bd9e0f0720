// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/projectperil/peril/model"
)

// Pipeline binds a shading program to its material and executes draws
// against a framebuffer. It mirrors the fixed state a graphics pipeline
// object would carry: winding, culling and the depth comparison are
// decided here, not per draw.
type Pipeline struct {
	Program       Program
	Material      *Material
	CullBackFaces bool
}

// NewPipeline creates a pipeline for the given material with back-face
// culling enabled.
func NewPipeline(mat *Material) *Pipeline {
	return &Pipeline{
		Program:       mat.Program(),
		Material:      mat,
		CullBackFaces: true,
	}
}

type clipVertex struct {
	clip glm.Vec4
	vary Varyings
}

// DrawIndexed rasterizes the mesh into the framebuffer. lightPos is the
// light position in view space; the vertex stage moves it into the
// program's shading space. Triangles crossing the near plane are
// dropped whole rather than clipped.
func (p *Pipeline) DrawIndexed(fb *Framebuffer, mesh *model.Mesh, block TransformBlock, light PointLight, lightPos glm.Vec3) {
	verts := make([]clipVertex, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		verts[i].clip, verts[i].vary = p.Program.TransformVertex(v, block, lightPos)
	}

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		p.rasterTriangle(fb,
			verts[mesh.Indices[i]],
			verts[mesh.Indices[i+1]],
			verts[mesh.Indices[i+2]],
			light)
	}
}

func (p *Pipeline) rasterTriangle(fb *Framebuffer, v0, v1, v2 clipVertex, light PointLight) {
	if v0.clip.W() <= 0 || v1.clip.W() <= 0 || v2.clip.W() <= 0 {
		return
	}

	w := float32(fb.Width())
	h := float32(fb.Height())

	s0 := toScreen(v0.clip, w, h)
	s1 := toScreen(v1.clip, w, h)
	s2 := toScreen(v2.clip, w, h)

	// The projection's Y flip turns counter-clockwise meshes clockwise
	// on screen, so clockwise is the front face here.
	area := edge(s0, s1, s2)
	if area == 0 || (area > 0 && p.CullBackFaces) {
		return
	}
	if area < 0 {
		s1, s2 = s2, s1
		v1, v2 = v2, v1
		area = -area
	}

	minX := clampInt(floorInt(min3(s0.X(), s1.X(), s2.X())), 0, fb.Width()-1)
	maxX := clampInt(floorInt(max3(s0.X(), s1.X(), s2.X())), 0, fb.Width()-1)
	minY := clampInt(floorInt(min3(s0.Y(), s1.Y(), s2.Y())), 0, fb.Height()-1)
	maxY := clampInt(floorInt(max3(s0.Y(), s1.Y(), s2.Y())), 0, fb.Height()-1)

	invW0 := 1 / v0.clip.W()
	invW1 := 1 / v1.clip.W()
	invW2 := 1 / v2.clip.W()

	pv0 := v0.vary.scale(invW0)
	pv1 := v1.vary.scale(invW1)
	pv2 := v2.vary.scale(invW2)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			pt := glm.Vec3{float32(x) + 0.5, float32(y) + 0.5, 0}

			b0 := edge(s1, s2, pt)
			b1 := edge(s2, s0, pt)
			b2 := edge(s0, s1, pt)
			if b0 < 0 || b1 < 0 || b2 < 0 {
				continue
			}
			b0 /= area
			b1 /= area
			b2 /= area

			depth := b0*s0.Z() + b1*s1.Z() + b2*s2.Z()
			if depth > fb.DepthAt(x, y) {
				continue
			}

			invW := b0*invW0 + b1*invW1 + b2*invW2
			vary := pv0.scale(b0).add(pv1.scale(b1)).add(pv2.scale(b2)).scale(1 / invW)

			fb.set(x, y, p.Program.ShadePoint(p.Material, vary, light), depth)
		}
	}
}

// toScreen performs the perspective divide and the viewport transform.
// Depth already sits in [0, 1] after the projection's clip remap.
func toScreen(clip glm.Vec4, width, height float32) glm.Vec3 {
	invW := 1 / clip.W()
	return glm.Vec3{
		(clip.X()*invW + 1) * 0.5 * width,
		(clip.Y()*invW + 1) * 0.5 * height,
		clip.Z() * invW,
	}
}

// edge is twice the signed area of the triangle (a, b, c), positive for
// counter-clockwise screen-space winding.
func edge(a, b, c glm.Vec3) float32 {
	return (b.X()-a.X())*(c.Y()-a.Y()) - (b.Y()-a.Y())*(c.X()-a.X())
}

func min3(a, b, c float32) float32 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c float32) float32 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
