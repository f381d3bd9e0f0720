// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package scene assembles and updates the game world: a camera, a
// point light and the object tree the renderer walks every frame.
package scene

import (
	"fmt"

	glm "github.com/go-gl/mathgl/mgl32"
	glm64 "github.com/go-gl/mathgl/mgl64"

	"github.com/projectperil/peril/asset"
	"github.com/projectperil/peril/core"
	"github.com/projectperil/peril/gfx"
	"github.com/projectperil/peril/input"
	"github.com/projectperil/peril/model"
	"github.com/projectperil/peril/nurbs"
	"github.com/projectperil/peril/object"
)

// LightRadius is the reach of the wandering scene light, enough to
// touch the surrounding walls.
const LightRadius = 45

// lightPathStep advances the light along its spline every update tick.
const lightPathStep = 0.01

// DrawCall is one renderable surface with its resolved model matrix.
type DrawCall struct {
	Mesh     *model.Mesh
	Material *gfx.Material
	Model    glm.Mat4
}

// Scene owns the object tree and everything that changes per tick.
type Scene struct {
	Root   *object.GameObject
	Camera *object.Camera
	Light  gfx.PointLight

	lightPath   *nurbs.Spline
	lightCenter glm.Vec3
	pathPos     float64
}

// New builds the demo world: a spinning cuboid boxed in by six walls,
// lit by a light wandering a closed spline around the cuboid. The
// camera is registered with the input handler.
func New(assets *asset.Manager, cfg *core.Configuration, handler *input.Handler) (*Scene, error) {
	cubeMaterial, err := assets.Material("checker_color.png", "flat_normal.png")
	if err != nil {
		return nil, fmt.Errorf("scene.New(): %w", err)
	}
	wallMaterial, err := assets.Material("bricks_color.png", "flat_normal.png")
	if err != nil {
		return nil, fmt.Errorf("scene.New(): %w", err)
	}

	s := &Scene{
		Root:        object.NewGameObject(),
		Camera:      object.NewCamera(glm.Vec3{}),
		Light:       gfx.NewPointLight(glm.Vec3{0, 0, -4}, LightRadius),
		lightCenter: glm.Vec3{0, 0, -4},
	}

	if handler != nil {
		handler.Register(s.Camera, input.DispatchTick)
		handler.RegisterMouse(s.Camera,
			cfg.Renderer.MouseInvertX, cfg.Renderer.MouseInvertY,
			cfg.Renderer.MouseSensitivity)
	}

	cuboid := object.NewGameObject()
	cuboidTransform := object.NewTransformComponent()
	cuboidTransform.SetPosition(glm.Vec3{0, 0, -4})
	cuboid.AddComponent(cuboidTransform)
	cuboid.AddComponent(object.NewDrawComponent(model.NewCuboid(2, 2, 2), cubeMaterial))
	s.Root.AddChild(cuboid)

	s.Root.AddChild(buildWalls(model.NewQuad(20, 20), wallMaterial))

	spline, err := nurbs.NewSpline(nurbs.Cubic, lightPathPoints())
	if err != nil {
		return nil, fmt.Errorf("scene.New(): %w", err)
	}
	s.lightPath = spline

	return s, nil
}

// buildWalls surrounds the origin with six 20 unit quads, each rotated
// to face inward.
func buildWalls(mesh *model.Mesh, material *gfx.Material) *object.GameObject {
	points := []glm.Vec3{
		{1, 0, 0},
		{-1, 0, 0},
		{0, 1, 0},
		{0, -1, 0},
		{0, 0, -1},
		{0, 0, 1},
	}
	directions := []glm.Vec3{
		{0, -1, 0},
		{0, 1, 0},
		{1, 0, 0},
		{-1, 0, 0},
		{0, 0, 1},
		{0, 0, 1},
	}

	node := object.NewGameObject()
	node.AddComponent(object.NewTransformComponent())
	for i := range points {
		transform := object.NewTransformComponent()
		transform.GloballyRotate(glm.QuatRotate(glm.DegToRad(90), directions[i]))
		if i == 5 {
			// The far wall needs an extra half turn to face inward.
			transform.GloballyRotate(glm.Quat{W: 0, V: glm.Vec3{0, 1, 0}})
		}
		transform.SetPosition(points[i].Mul(20))

		wall := object.NewGameObject()
		wall.AddComponent(transform)
		wall.AddComponent(object.NewDrawComponent(mesh, material))
		node.AddChild(wall)
	}
	return node
}

func lightPathPoints() []glm64.Vec3 {
	return []glm64.Vec3{
		{1, 0, 0},
		{0, 1, 0},
		{-1, 0, 0},
		{0, -1, 0},
		{0, 0, 1},
		{0, 0, -1},
		{0, 1, -1},
		{1, 0, -1},
	}
}

// Update advances the world one fixed timestep: the cuboid keeps
// turning and growing, the light keeps walking its spline.
func (s *Scene) Update() {
	if transform := s.Root.Children[0].TransformOf(); transform != nil {
		transform.GloballyRotate(glm.QuatRotate(glm.DegToRad(-0.5), glm.Vec3{0, 1, 0}))
		transform.SetScale(transform.Scale() * 1.001)
	}

	s.pathPos += lightPathStep
	if s.pathPos >= s.lightPath.EvalLimit() {
		s.pathPos = 0
	}
	point, err := s.lightPath.EvaluateAt(s.pathPos)
	if err != nil {
		return
	}
	offset := glm.Vec3{float32(point.X()), float32(point.Y()), float32(point.Z())}
	s.Light.Position = s.lightCenter.Add(offset.Mul(6))
}

// ViewMatrix returns the camera's current view matrix.
func (s *Scene) ViewMatrix() glm.Mat4 {
	return s.Camera.ViewMatrix()
}

// Draw walks the tree breadth first and collects one draw call per
// object that carries both a transform and a draw component.
func (s *Scene) Draw() []DrawCall {
	var calls []DrawCall

	queue := []*object.GameObject{s.Root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if node.HasComponent(object.TypeDraw) {
			transform := node.TransformOf()
			if transform == nil {
				panic("scene: draw component without a transform")
			}
			draw := node.DrawOf()
			calls = append(calls, DrawCall{
				Mesh:     draw.Mesh,
				Material: draw.Material,
				Model:    transform.Mat4(),
			})
		}

		queue = append(queue, node.Children...)
	}
	return calls
}
