// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameObjectComponentSlots(t *testing.T) {
	obj := NewGameObject()
	assert.False(t, obj.HasComponent(TypeTransform))
	assert.Nil(t, obj.TransformOf())

	obj.AddComponent(NewTransformComponent())
	assert.True(t, obj.HasComponent(TypeTransform))
	assert.NotNil(t, obj.TransformOf())
	assert.False(t, obj.HasComponent(TypeDraw))
	assert.Nil(t, obj.DrawOf())
}

func TestGameObjectRejectsDuplicateSlot(t *testing.T) {
	obj := NewGameObject()
	obj.AddComponent(NewTransformComponent())
	assert.Panics(t, func() {
		obj.AddComponent(NewTransformComponent())
	})
}

func TestGameObjectChildren(t *testing.T) {
	parent := NewGameObject()
	child := NewGameObject()
	parent.AddChild(child)
	assert.Len(t, parent.Children, 1)
	assert.Same(t, child, parent.Children[0])
}
