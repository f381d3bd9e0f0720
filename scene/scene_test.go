// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package scene_test

import (
	"testing"

	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectperil/peril/asset"
	"github.com/projectperil/peril/core"
	"github.com/projectperil/peril/input"
	"github.com/projectperil/peril/scene"
)

func newTestScene(t *testing.T) *scene.Scene {
	t.Helper()
	cfg := core.DefaultConfiguration()
	s, err := scene.New(asset.NewManager(asset.NewBoxLoader()), &cfg, input.NewHandler())
	require.NoError(t, err)
	return s
}

func TestNewSceneDrawCalls(t *testing.T) {
	s := newTestScene(t)

	calls := s.Draw()
	require.Len(t, calls, 7) // the cuboid plus six walls

	for _, call := range calls {
		assert.NotNil(t, call.Mesh)
		assert.NotNil(t, call.Material)
		assert.NotNil(t, call.Material.NormalMap)
	}
}

func TestWallsSitAtBoxFaces(t *testing.T) {
	s := newTestScene(t)

	calls := s.Draw()
	for _, call := range calls[1:] {
		origin := call.Model.Mul4x1(glm.Vec4{0, 0, 0, 1})
		assert.InDelta(t, 20, origin.Vec3().Len(), 1e-4)
	}
}

func TestUpdateSpinsAndGrowsCuboid(t *testing.T) {
	s := newTestScene(t)
	transform := s.Root.Children[0].TransformOf()
	require.NotNil(t, transform)

	startRotation := transform.Rotation()
	startScale := transform.Scale()

	s.Update()
	assert.NotEqual(t, startRotation, transform.Rotation())
	assert.InDelta(t, startScale*1.001, transform.Scale(), 1e-6)
}

func TestUpdateMovesLightAlongPath(t *testing.T) {
	s := newTestScene(t)

	center := glm.Vec3{0, 0, -4}
	var positions []glm.Vec3
	for i := 0; i < 100; i++ {
		s.Update()
		positions = append(positions, s.Light.Position)
		assert.LessOrEqual(t, s.Light.Position.Sub(center).Len(), float32(scene.LightRadius))
	}
	assert.NotEqual(t, positions[0], positions[99])
}

func TestViewMatrixFollowsCamera(t *testing.T) {
	s := newTestScene(t)
	before := s.ViewMatrix()

	s.Camera.Transform().SetPosition(glm.Vec3{0, 0, 10})
	after := s.ViewMatrix()
	assert.NotEqual(t, before, after)
}
