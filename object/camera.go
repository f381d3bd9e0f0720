// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package object

import (
	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/projectperil/peril/input"
)

// Camera is a free-flying first person camera. It starts out looking
// down -Z and is steered with the movement actions and the mouse.
type Camera struct {
	Object *GameObject

	mouseInvertX     bool
	mouseInvertY     bool
	mouseSensitivity float64
}

// NewCamera places a camera at the given world position.
func NewCamera(position glm.Vec3) *Camera {
	transform := NewTransformComponent()
	transform.SetPosition(position)
	transform.SetInitialFront(glm.Vec3{0, 0, -1})

	obj := NewGameObject()
	obj.AddComponent(transform)

	return &Camera{
		Object:           obj,
		mouseSensitivity: 1,
	}
}

// Transform returns the camera placement.
func (c *Camera) Transform() *Transform {
	return c.Object.TransformOf().Transform
}

// ViewMatrix derives the view matrix from the camera placement.
func (c *Camera) ViewMatrix() glm.Mat4 {
	return c.Transform().ViewMatrix()
}

// HandledActions implements input.Consumer.
func (c *Camera) HandledActions() input.Actions {
	return input.Mask(
		input.Sprint,
		input.Forward, input.Left, input.Back, input.Right,
		input.Up, input.Down,
		input.CamUp, input.CamLeft, input.CamDown, input.CamRight,
	)
}

// Consume implements input.Consumer, applying one tick of movement.
func (c *Camera) Consume(actions input.Actions) {
	moveSpeed := float32(0.3)
	if actions.Has(input.Sprint) {
		moveSpeed *= 10
	}

	transform := c.Transform()
	if actions.Has(input.Forward) {
		transform.Translate(transform.FrontVector().Mul(moveSpeed))
	}
	if actions.Has(input.Left) {
		transform.Translate(transform.RightVector().Mul(-moveSpeed))
	}
	if actions.Has(input.Back) {
		transform.Translate(transform.FrontVector().Mul(-moveSpeed))
	}
	if actions.Has(input.Right) {
		transform.Translate(transform.RightVector().Mul(moveSpeed))
	}
	if actions.Has(input.Up) {
		transform.Translate(glm.Vec3{0, moveSpeed, 0})
	}
	if actions.Has(input.Down) {
		transform.Translate(glm.Vec3{0, -moveSpeed, 0})
	}
	if actions.Has(input.CamUp) {
		transform.Pitch(5)
	}
	if actions.Has(input.CamLeft) {
		transform.Yaw(5)
	}
	if actions.Has(input.CamDown) {
		transform.Pitch(-5)
	}
	if actions.Has(input.CamRight) {
		transform.Yaw(-5)
	}
}

// RegisterMouseSettings implements input.MouseConsumer.
func (c *Camera) RegisterMouseSettings(invertX, invertY bool, sensitivity float64) {
	c.mouseInvertX = invertX
	c.mouseInvertY = invertY
	c.mouseSensitivity = sensitivity
}

// ConsumeMouse implements input.MouseConsumer. Yaw and pitch run
// against the mouse delta unless inverted.
func (c *Camera) ConsumeMouse(dx, dy float64) {
	yaw := dx * c.mouseSensitivity
	if !c.mouseInvertX {
		yaw = -yaw
	}
	pitch := dy * c.mouseSensitivity
	if !c.mouseInvertY {
		pitch = -pitch
	}

	transform := c.Transform()
	transform.Yaw(float32(yaw))
	transform.Pitch(float32(pitch))
}
