// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package object implements the scene-side building blocks: transforms,
// components and the game object tree they hang off.
package object

import (
	"github.com/chewxy/math32"
	glm "github.com/go-gl/mathgl/mgl32"
)

// worldUp is the global up axis all yaw and pitch math is anchored to.
var worldUp = glm.Vec3{0, 1, 0}

// Transform holds an object's placement as position, orientation and a
// uniform scale. Orientation is a quaternion applied to a configurable
// initial front vector, so cameras can start out looking down -Z while
// models keep +Z as their forward axis.
type Transform struct {
	position     glm.Vec3
	initialFront glm.Vec3
	rotation     glm.Quat
	scale        float32
}

// NewTransform creates an identity transform facing +Z.
func NewTransform() *Transform {
	return &Transform{
		initialFront: glm.Vec3{0, 0, 1},
		rotation:     glm.QuatIdent(),
		scale:        1,
	}
}

// Position returns the world position.
func (t *Transform) Position() glm.Vec3 { return t.position }

// SetPosition moves the transform to an absolute world position.
func (t *Transform) SetPosition(position glm.Vec3) { t.position = position }

// Translate offsets the position by the given vector.
func (t *Transform) Translate(translation glm.Vec3) {
	t.position = t.position.Add(translation)
}

// SetInitialFront changes the unrotated forward axis.
func (t *Transform) SetInitialFront(front glm.Vec3) { t.initialFront = front }

// Rotation returns the current orientation.
func (t *Transform) Rotation() glm.Quat { return t.rotation }

// GloballyRotate applies the rotation in world space.
// See https://gamedev.stackexchange.com/a/136175 for why the order of
// the product decides which space the rotation happens in.
func (t *Transform) GloballyRotate(rotation glm.Quat) {
	t.rotation = rotation.Mul(t.rotation)
}

func (t *Transform) locallyRotate(rotation glm.Quat) {
	t.rotation = t.rotation.Mul(rotation)
}

// FrontVector returns the rotated, normalized forward axis.
func (t *Transform) FrontVector() glm.Vec3 {
	return t.rotation.Rotate(t.initialFront).Normalize()
}

// RightVector returns the axis pointing right of the front vector,
// flat against the world horizon.
func (t *Transform) RightVector() glm.Vec3 {
	return t.FrontVector().Cross(worldUp).Normalize()
}

// Yaw rotates by angle degrees about the world up axis, regardless of
// the current orientation.
func (t *Transform) Yaw(angle float32) {
	t.GloballyRotate(glm.QuatRotate(glm.DegToRad(angle), worldUp))
}

// Pitch tilts by angle degrees about the local right axis. Rotations
// that would push the view through straight up or straight down are
// dropped.
func (t *Transform) Pitch(angle float32) {
	front := t.FrontVector()
	if angle > 0 && angleBetween(front, worldUp) <= glm.DegToRad(angle) {
		return
	}
	if angle < 0 && angleBetween(front, worldUp.Mul(-1)) <= glm.DegToRad(-angle) {
		return
	}
	t.locallyRotate(glm.QuatRotate(glm.DegToRad(angle), glm.Vec3{1, 0, 0}))
}

// Scale returns the uniform scale factor.
func (t *Transform) Scale() float32 { return t.scale }

// SetScale sets the uniform scale factor.
func (t *Transform) SetScale(scale float32) { t.scale = scale }

// Mat4 composes the model matrix as translation, rotation, then scale.
func (t *Transform) Mat4() glm.Mat4 {
	translation := glm.Translate3D(t.position.X(), t.position.Y(), t.position.Z())
	rotation := t.rotation.Mat4()
	scale := glm.Scale3D(t.scale, t.scale, t.scale)
	return translation.Mul4(rotation).Mul4(scale)
}

// ViewMatrix derives a look-at view matrix from the transform, with
// the up vector re-orthogonalized against the horizon so roll never
// creeps in.
func (t *Transform) ViewMatrix() glm.Mat4 {
	front := t.FrontVector()
	right := front.Cross(worldUp).Normalize()
	up := right.Cross(front).Normalize()
	return glm.LookAtV(t.position, t.position.Add(front), up)
}

func angleBetween(a, b glm.Vec3) float32 {
	cos := a.Dot(b) / (a.Len() * b.Len())
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math32.Acos(cos)
}
