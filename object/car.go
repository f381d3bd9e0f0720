// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package object

import (
	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/projectperil/peril/gfx"
	"github.com/projectperil/peril/input"
	"github.com/projectperil/peril/model"
)

const (
	carDragCoefficient = 20.0
	carEngineForce     = 100_000.0
	carTurnAngle       = 2.0
)

// Car is a drivable object with a crude force-based motion model.
// Forces accumulate between ticks and are integrated with a fixed
// timestep in Update.
type Car struct {
	Object *GameObject

	force    glm.Vec3
	velocity glm.Vec3
	mass     float32
	timestep float32
}

// NewCar creates a car of the given mass with its rendering payload.
func NewCar(mass float32, mesh *model.Mesh, material *gfx.Material, timestep float32) *Car {
	obj := NewGameObject()
	obj.AddComponent(NewTransformComponent())
	obj.AddComponent(NewDrawComponent(mesh, material))

	return &Car{
		Object:   obj,
		mass:     mass,
		timestep: timestep,
	}
}

// Transform returns the car placement.
func (c *Car) Transform() *Transform {
	return c.Object.TransformOf().Transform
}

// Velocity returns the current velocity vector.
func (c *Car) Velocity() glm.Vec3 { return c.velocity }

func (c *Car) accelerate(force float32) {
	c.force = c.force.Add(c.Transform().FrontVector().Mul(force))
}

func (c *Car) decelerate(force float32) {
	c.accelerate(-force)
}

func (c *Car) turnLeft(angle float32) {
	c.Transform().Yaw(angle)
}

func (c *Car) turnRight(angle float32) {
	c.Transform().Yaw(-angle)
}

// Update integrates one fixed timestep: quadratic drag, then force to
// acceleration to velocity to position.
func (c *Car) Update() {
	drag := c.velocity.Mul(c.velocity.Len() * carDragCoefficient)
	c.force = c.force.Sub(drag)

	acceleration := c.force.Mul(1 / c.mass)
	c.force = glm.Vec3{}

	c.velocity = c.velocity.Add(acceleration.Mul(c.timestep))
	c.Transform().Translate(c.velocity.Mul(c.timestep))
}

// HandledActions implements input.Consumer.
func (c *Car) HandledActions() input.Actions {
	return input.Mask(input.Forward, input.Back, input.Left, input.Right)
}

// Consume implements input.Consumer.
func (c *Car) Consume(actions input.Actions) {
	if actions.Has(input.Forward) {
		c.accelerate(carEngineForce)
	}
	if actions.Has(input.Back) {
		c.decelerate(carEngineForce)
	}
	if actions.Has(input.Left) {
		c.turnLeft(carTurnAngle)
	}
	if actions.Has(input.Right) {
		c.turnRight(carTurnAngle)
	}
}
