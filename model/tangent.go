package model

import glm "github.com/go-gl/mathgl/mgl32"

// ComputeTangents generates per-vertex tangent and bitangent vectors from
// the mesh positions and UVs. Imported meshes usually carry positions,
// normals and UVs only, tangent frames for normal mapping are derived here.
// Triangles with a degenerate UV area contribute nothing.
func ComputeTangents(m *Mesh) {
	for i := range m.Vertices {
		m.Vertices[i].Tangent = glm.Vec3{}
		m.Vertices[i].Bitangent = glm.Vec3{}
	}

	accumulate := func(i0, i1, i2 uint16) {
		v0 := m.Vertices[i0]
		v1 := m.Vertices[i1]
		v2 := m.Vertices[i2]

		e1 := v1.Pos.Sub(v0.Pos)
		e2 := v2.Pos.Sub(v0.Pos)

		du1 := v1.TexUV.X() - v0.TexUV.X()
		dv1 := v1.TexUV.Y() - v0.TexUV.Y()
		du2 := v2.TexUV.X() - v0.TexUV.X()
		dv2 := v2.TexUV.Y() - v0.TexUV.Y()

		denom := du1*dv2 - du2*dv1
		if denom == 0 {
			return
		}
		r := 1 / denom

		tangent := e1.Mul(dv2 * r).Sub(e2.Mul(dv1 * r))
		bitangent := e2.Mul(du1 * r).Sub(e1.Mul(du2 * r))

		for _, idx := range []uint16{i0, i1, i2} {
			m.Vertices[idx].Tangent = m.Vertices[idx].Tangent.Add(tangent)
			m.Vertices[idx].Bitangent = m.Vertices[idx].Bitangent.Add(bitangent)
		}
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		accumulate(m.Indices[i], m.Indices[i+1], m.Indices[i+2])
	}

	// Gram-Schmidt orthogonalize against the normal and normalize.
	for i := range m.Vertices {
		n := m.Vertices[i].Normal
		t := m.Vertices[i].Tangent
		b := m.Vertices[i].Bitangent

		t = t.Sub(n.Mul(n.Dot(t)))
		if t.Dot(t) < 1e-8 {
			t = perpendicularTo(n)
		}
		t = t.Normalize()

		if b.Dot(b) < 1e-8 {
			b = n.Cross(t)
		}
		m.Vertices[i].Tangent = t
		m.Vertices[i].Bitangent = b.Normalize()
	}
}

// perpendicularTo picks an arbitrary vector perpendicular to n.
func perpendicularTo(n glm.Vec3) glm.Vec3 {
	if abs32(n.X()) < 0.9 {
		return glm.Vec3{1, 0, 0}.Sub(n.Mul(n.X()))
	}
	return glm.Vec3{0, 1, 0}.Sub(n.Mul(n.Y()))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
