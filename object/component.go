// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package object

import (
	"github.com/projectperil/peril/gfx"
	"github.com/projectperil/peril/model"
)

// ComponentType identifies the component slots a game object can fill.
// Each slot holds at most one component.
type ComponentType int

// Component slots.
const (
	TypeDraw ComponentType = iota
	TypeTransform

	componentTypeCount
)

// Component is a unit of behaviour or data attached to a game object.
type Component interface {
	ComponentType() ComponentType
}

// DrawComponent makes an object renderable. Meshes and materials are
// shared between objects, the component never mutates them.
type DrawComponent struct {
	Mesh     *model.Mesh
	Material *gfx.Material
}

// NewDrawComponent attaches geometry and a material.
func NewDrawComponent(mesh *model.Mesh, material *gfx.Material) *DrawComponent {
	return &DrawComponent{Mesh: mesh, Material: material}
}

// ComponentType implements Component.
func (c *DrawComponent) ComponentType() ComponentType { return TypeDraw }

// TransformComponent gives an object a placement in the world.
type TransformComponent struct {
	*Transform
}

// NewTransformComponent wraps a fresh identity transform.
func NewTransformComponent() *TransformComponent {
	return &TransformComponent{Transform: NewTransform()}
}

// ComponentType implements Component.
func (c *TransformComponent) ComponentType() ComponentType { return TypeTransform }
