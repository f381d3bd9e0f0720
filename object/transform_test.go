// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package object

import (
	"testing"

	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVecNear(t *testing.T, want, got glm.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], 1e-5)
	}
}

func TestTransformDefaults(t *testing.T) {
	tr := NewTransform()
	assert.Equal(t, glm.Vec3{}, tr.Position())
	assert.Equal(t, float32(1), tr.Scale())
	assertVecNear(t, glm.Vec3{0, 0, 1}, tr.FrontVector())
}

func TestYawIsGlobal(t *testing.T) {
	// Pitch the camera first, then yaw. A global yaw must spin the
	// front vector about the world up axis, keeping its height.
	tr := NewTransform()
	tr.Pitch(45)
	heightBefore := tr.FrontVector().Y()

	tr.Yaw(90)
	front := tr.FrontVector()
	assert.InDelta(t, heightBefore, front.Y(), 1e-5)

	// Yawing four quarter turns returns to the start.
	tr.Yaw(90)
	tr.Yaw(90)
	tr.Yaw(90)
	assert.InDelta(t, heightBefore, tr.FrontVector().Y(), 1e-5)
}

func TestYawQuarterTurn(t *testing.T) {
	tr := NewTransform()
	tr.Yaw(90)
	assertVecNear(t, glm.Vec3{1, 0, 0}, tr.FrontVector())
}

func TestPitchClampsAtPoles(t *testing.T) {
	tr := NewTransform()
	tr.SetInitialFront(glm.Vec3{0, 0, -1})

	// 17 x 5 degrees would pass through straight up; the last steps
	// must be dropped.
	for i := 0; i < 17; i++ {
		tr.Pitch(5)
	}
	assert.Greater(t, angleBetween(tr.FrontVector(), worldUp), float32(0))

	for i := 0; i < 40; i++ {
		tr.Pitch(-5)
	}
	assert.Greater(t, angleBetween(tr.FrontVector(), worldUp.Mul(-1)), float32(0))
}

func TestRightVectorStaysLevel(t *testing.T) {
	tr := NewTransform()
	tr.SetInitialFront(glm.Vec3{0, 0, -1})
	tr.Pitch(30)
	tr.Yaw(25)
	assert.InDelta(t, 0, tr.RightVector().Y(), 1e-5)
}

func TestMat4Composition(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(glm.Vec3{1, 2, 3})
	tr.SetScale(2)
	tr.Yaw(90)

	// Scale first, rotate, then translate: the local +Z axis point at
	// distance 1 ends up 2 units along +X from the position.
	p := tr.Mat4().Mul4x1(glm.Vec4{0, 0, 1, 1})
	assertVecNear(t, glm.Vec3{3, 2, 3}, p.Vec3())
}

func TestViewMatrixLooksAlongFront(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(glm.Vec3{0, 0, 5})
	tr.SetInitialFront(glm.Vec3{0, 0, -1})

	// A point straight ahead lands on the view axis with -Z depth.
	view := tr.ViewMatrix()
	p := view.Mul4x1(glm.Vec4{0, 0, 0, 1})
	assertVecNear(t, glm.Vec3{0, 0, -5}, p.Vec3())
}

func TestGloballyRotateOrder(t *testing.T) {
	// Applying A then B globally equals the single rotation B*A.
	a := glm.QuatRotate(glm.DegToRad(30), glm.Vec3{0, 1, 0})
	b := glm.QuatRotate(glm.DegToRad(40), glm.Vec3{1, 0, 0})

	tr := NewTransform()
	tr.GloballyRotate(a)
	tr.GloballyRotate(b)

	combined := b.Mul(a)
	assertVecNear(t, combined.Rotate(glm.Vec3{0, 0, 1}), tr.FrontVector())
}
