// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package object

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/projectperil/peril/gfx"
	"github.com/projectperil/peril/input"
	"github.com/projectperil/peril/model"
)

func testCar() *Car {
	return NewCar(1000, model.NewCuboid(2, 1, 4), gfx.NewMaterial(nil, nil), 1.0/60)
}

func TestCarHasDrawPayload(t *testing.T) {
	car := testCar()
	draw := car.Object.DrawOf()
	assert.NotNil(t, draw)
	assert.NotNil(t, draw.Mesh)
	assert.NotNil(t, draw.Material)
}

func TestCarDragLimitsSpeed(t *testing.T) {
	car := testCar()

	// Hold the throttle for ten simulated seconds. Quadratic drag pins
	// the speed near the terminal velocity sqrt(F / drag).
	for i := 0; i < 600; i++ {
		car.Consume(input.Mask(input.Forward))
		car.Update()
	}
	speed := car.Velocity().Len()
	assert.InDelta(t, 70.7, speed, 2.0)

	// Releasing the throttle bleeds speed off.
	for i := 0; i < 60; i++ {
		car.Update()
	}
	assert.Less(t, car.Velocity().Len(), speed)
	assert.Greater(t, car.Velocity().Len(), float32(0))
}

func TestCarAcceleratesAlongFront(t *testing.T) {
	car := testCar()
	car.Consume(input.Mask(input.Forward))
	car.Update()

	front := car.Transform().FrontVector()
	v := car.Velocity().Normalize()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, front[i], v[i], 1e-5)
	}
}

func TestCarTurning(t *testing.T) {
	car := testCar()
	start := car.Transform().FrontVector()

	car.Consume(input.Mask(input.Left))
	left := car.Transform().FrontVector()
	assert.NotEqual(t, start, left)

	// Turning back right restores the heading.
	car.Consume(input.Mask(input.Right))
	restored := car.Transform().FrontVector()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, start[i], restored[i], 1e-5)
	}
}

func TestCarUpdateAtRestStaysAtRest(t *testing.T) {
	car := testCar()
	car.Update()
	assert.Equal(t, float32(0), car.Velocity().Len())
	assert.Equal(t, float32(0), car.Transform().Position().Len())
}
