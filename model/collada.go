package model

import (
	"encoding/xml"
	"errors"
	"fmt"
	"math"
	"strings"

	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/projectperil/peril/util/collada"
)

// ImportCollada reads the contents of a Collada (.dae) file and converts
// its first geometry into an engine mesh. Vertices are deduplicated by
// their full index tuple and tangent frames are derived from the UVs.
func ImportCollada(fileContents []byte) (*Mesh, error) {
	var colladaModel collada.Collada
	if err := xml.Unmarshal(fileContents, &colladaModel); err != nil {
		return nil, fmt.Errorf("model.ImportCollada(): %w", err)
	}
	if len(colladaModel.Geometries) == 0 {
		return nil, errors.New("model.ImportCollada(): no geometries in file")
	}

	mesh := colladaModel.Geometries[0].Mesh
	positions, err := findSource(mesh.Source, "positions")
	if err != nil {
		return nil, err
	}

	triangles := mesh.Triangles
	stride := triangles.Stride()
	posOffset := triangles.InputOffset("VERTEX")
	if posOffset < 0 {
		return nil, errors.New("model.ImportCollada(): mesh carries no VERTEX input")
	}
	normalOffset := triangles.InputOffset("NORMAL")
	uvOffset := triangles.InputOffset("TEXCOORD")

	var normals, uvs collada.Source
	if normalOffset >= 0 {
		if normals, err = findSource(mesh.Source, "normals"); err != nil {
			return nil, err
		}
	}
	if uvOffset >= 0 {
		if uvs, err = findSource(mesh.Source, "map-0"); err != nil {
			uvOffset = -1
		}
	}

	out := &Mesh{}
	seen := make(map[[3]int]uint16)
	for base := 0; base+stride <= len(triangles.Index); base += stride {
		tuple := [3]int{triangles.Index[base+posOffset], -1, -1}
		if normalOffset >= 0 {
			tuple[1] = triangles.Index[base+normalOffset]
		}
		if uvOffset >= 0 {
			tuple[2] = triangles.Index[base+uvOffset]
		}

		if idx, ok := seen[tuple]; ok {
			out.Indices = append(out.Indices, idx)
			continue
		}

		var vert Vertex
		vert.Pos = vec3At(positions, tuple[0])
		if tuple[1] >= 0 {
			vert.Normal = vec3At(normals, tuple[1])
		}
		if tuple[2] >= 0 {
			vert.TexUV = vec2At(uvs, tuple[2])
		}

		if len(out.Vertices) > math.MaxUint16 {
			return nil, errors.New("model.ImportCollada(): mesh exceeds 65536 unique vertices")
		}
		idx := uint16(len(out.Vertices))
		seen[tuple] = idx
		out.Vertices = append(out.Vertices, vert)
		out.Indices = append(out.Indices, idx)
	}

	ComputeTangents(out)
	return out, nil
}

func vec3At(s collada.Source, idx int) glm.Vec3 {
	return glm.Vec3{
		s.Floats.Data[3*idx],
		s.Floats.Data[3*idx+1],
		s.Floats.Data[3*idx+2],
	}
}

func vec2At(s collada.Source, idx int) glm.Vec2 {
	return glm.Vec2{
		s.Floats.Data[2*idx],
		s.Floats.Data[2*idx+1],
	}
}

func findSource(sources []collada.Source, dataType string) (collada.Source, error) {
	for _, s := range sources {
		if strings.HasSuffix(s.ID, fmt.Sprintf("-%s", dataType)) {
			return s, nil
		}
	}
	return collada.Source{}, fmt.Errorf("model.ImportCollada(): source %q not found", dataType)
}
