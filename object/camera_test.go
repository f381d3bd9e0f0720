// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package object

import (
	"testing"

	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/projectperil/peril/input"
)

func TestCameraMovesAlongFront(t *testing.T) {
	cam := NewCamera(glm.Vec3{0, 0, 5})
	cam.Consume(input.Mask(input.Forward))

	// The camera starts out looking down -Z at walking speed.
	assertVecNear(t, glm.Vec3{0, 0, 4.7}, cam.Transform().Position())

	cam.Consume(input.Mask(input.Back, input.Sprint))
	assertVecNear(t, glm.Vec3{0, 0, 7.7}, cam.Transform().Position())
}

func TestCameraStrafeStaysLevel(t *testing.T) {
	cam := NewCamera(glm.Vec3{})
	cam.Consume(input.Mask(input.CamUp)) // pitch up first
	cam.Consume(input.Mask(input.Right))

	pos := cam.Transform().Position()
	assert.InDelta(t, 0, pos.Y(), 1e-5)
	assert.InDelta(t, 0.3, pos.X(), 1e-5)
}

func TestCameraVerticalMovementIsWorldAligned(t *testing.T) {
	cam := NewCamera(glm.Vec3{})
	cam.Consume(input.Mask(input.CamDown))
	cam.Consume(input.Mask(input.Up, input.Down))

	// Up and down cancel exactly regardless of orientation.
	assertVecNear(t, glm.Vec3{}, cam.Transform().Position())
}

func TestCameraMouseLook(t *testing.T) {
	cam := NewCamera(glm.Vec3{})
	cam.RegisterMouseSettings(false, false, 1)

	// Moving the mouse right turns the view right, toward +X.
	cam.ConsumeMouse(10, 0)
	assert.Greater(t, cam.Transform().FrontVector().X(), float32(0))

	inverted := NewCamera(glm.Vec3{})
	inverted.RegisterMouseSettings(true, false, 1)
	inverted.ConsumeMouse(10, 0)
	assert.Less(t, inverted.Transform().FrontVector().X(), float32(0))
}

func TestCameraViewMatrixTracksPosition(t *testing.T) {
	cam := NewCamera(glm.Vec3{0, 0, 5})
	p := cam.ViewMatrix().Mul4x1(glm.Vec4{0, 0, 0, 1})
	assertVecNear(t, glm.Vec3{0, 0, -5}, p.Vec3())
}
