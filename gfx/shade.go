// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	"github.com/chewxy/math32"
	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/projectperil/peril/model"
)

// Varyings carries the per-vertex outputs of the transform stage into
// the shading stage. Position and LightPos are expressed in the
// program's shading space, view space or tangent space.
type Varyings struct {
	UV       glm.Vec2
	Position glm.Vec3
	Normal   glm.Vec3
	LightPos glm.Vec3
}

func (a Varyings) scale(s float32) Varyings {
	return Varyings{
		UV:       a.UV.Mul(s),
		Position: a.Position.Mul(s),
		Normal:   a.Normal.Mul(s),
		LightPos: a.LightPos.Mul(s),
	}
}

func (a Varyings) add(b Varyings) Varyings {
	return Varyings{
		UV:       a.UV.Add(b.UV),
		Position: a.Position.Add(b.Position),
		Normal:   a.Normal.Add(b.Normal),
		LightPos: a.LightPos.Add(b.LightPos),
	}
}

// TransformVertex runs the vertex stage for a single vertex. It returns
// the clip-space position and the varyings set up for the program's
// shading space. lightPos is the light position already resolved into
// view space.
func (p Program) TransformVertex(v model.Vertex, block TransformBlock, lightPos glm.Vec3) (glm.Vec4, Varyings) {
	clip := block.ModelViewProjection.Mul4x1(v.Pos.Vec4(1))

	posView := TransformPoint(block.ModelView, v.Pos)
	normalView := TransformDirection(block.ModelView, v.Normal).Normalize()

	out := Varyings{UV: v.TexUV}
	if p.Space == SpaceTangent {
		// Build the view-to-tangent rotation from the orthonormal
		// frame and move both interpolated positions into it, so the
		// normal map can be used without a per-fragment basis change.
		t := TransformDirection(block.ModelView, v.Tangent).Normalize()
		b := TransformDirection(block.ModelView, v.Bitangent).Normalize()
		out.Position = toTangent(t, b, normalView, posView)
		out.LightPos = toTangent(t, b, normalView, lightPos)
		out.Normal = glm.Vec3{0, 0, 1}
	} else {
		out.Position = posView
		out.LightPos = lightPos
		out.Normal = normalView
	}
	return clip, out
}

func toTangent(t, b, n, v glm.Vec3) glm.Vec3 {
	return glm.Vec3{t.Dot(v), b.Dot(v), n.Dot(v)}
}

// ShadePoint computes the Blinn-Phong response of a surface point to a
// single point light. All lighting is done in linear color, with no
// gamma transform on the result.
//
// Fragments beyond the light radius are culled to black before any
// other work. A fragment exactly at the light position gets full
// attenuation and is lit along its own normal.
func (p Program) ShadePoint(mat *Material, vary Varyings, light PointLight) glm.Vec3 {
	toLight := vary.LightPos.Sub(vary.Position)
	if toLight.Dot(toLight) > light.Radius*light.Radius {
		return glm.Vec3{}
	}

	base := mat.Diffuse
	if p.Textured {
		texel := mat.ColorMap.Sample(vary.UV.X(), vary.UV.Y())
		base = glm.Vec3{
			base.X() * texel.X(),
			base.Y() * texel.Y(),
			base.Z() * texel.Z(),
		}
	}

	var normal glm.Vec3
	switch {
	case p.NormalMapped:
		normal = mat.NormalMap.SampleNormal(vary.UV.X(), vary.UV.Y())
	case p.Space == SpaceTangent:
		normal = glm.Vec3{0, 0, 1}
	default:
		normal = vary.Normal.Normalize()
	}

	attenuation := float32(1)
	lightDir := normal
	if toLight.Dot(toLight) > 0 {
		lightDir = toLight.Normalize()
		attenuation = light.Attenuation(toLight)
	}

	lambert := normal.Dot(lightDir)
	if lambert < 0 {
		lambert = 0
	}

	out := glm.Vec3{
		base.X() * light.Color.X() * lambert,
		base.Y() * light.Color.Y() * lambert,
		base.Z() * light.Color.Z() * lambert,
	}

	if lambert > 0 {
		viewDir := vary.Position.Mul(-1)
		if viewDir.Dot(viewDir) > 0 {
			viewDir = viewDir.Normalize()
			reflected := reflect(lightDir.Mul(-1), normal)
			specAngle := reflected.Dot(viewDir)
			if specAngle > 0 {
				spec := math32.Pow(specAngle, mat.Shininess)
				out = out.Add(light.Color.Mul(spec))
			}
		}
	}

	return out.Mul(attenuation)
}

// reflect mirrors the incident direction about the normal.
func reflect(incident, normal glm.Vec3) glm.Vec3 {
	return incident.Sub(normal.Mul(2 * incident.Dot(normal)))
}
