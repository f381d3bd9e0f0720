// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package object

// GameObject is a node of the scene tree. It carries at most one
// component per slot and any number of children.
type GameObject struct {
	components [componentTypeCount]Component
	Children   []*GameObject
}

// NewGameObject creates an empty node.
func NewGameObject() *GameObject {
	return &GameObject{}
}

// AddChild appends a child node.
func (o *GameObject) AddChild(child *GameObject) {
	o.Children = append(o.Children, child)
}

// AddComponent fills a component slot. Adding to an occupied slot is a
// programming error.
func (o *GameObject) AddComponent(component Component) {
	slot := component.ComponentType()
	if o.components[slot] != nil {
		panic("object: component slot already occupied")
	}
	o.components[slot] = component
}

// HasComponent reports whether the slot is filled.
func (o *GameObject) HasComponent(slot ComponentType) bool {
	return o.components[slot] != nil
}

// Component returns the component in the slot, or nil.
func (o *GameObject) Component(slot ComponentType) Component {
	return o.components[slot]
}

// TransformOf is a convenience accessor for the transform slot.
func (o *GameObject) TransformOf() *TransformComponent {
	if c, ok := o.components[TypeTransform].(*TransformComponent); ok {
		return c
	}
	return nil
}

// DrawOf is a convenience accessor for the draw slot.
func (o *GameObject) DrawOf() *DrawComponent {
	if c, ok := o.components[TypeDraw].(*DrawComponent); ok {
		return c
	}
	return nil
}
