// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package input routes keyboard and mouse state to registered
// consumers. Keys map to abstract actions so gameplay code never sees
// scancodes.
package input

// Action is one abstract input the player can hold or trigger.
type Action uint

// Player actions.
const (
	Forward Action = iota
	Back
	Left
	Right
	Up
	Down
	Sprint
	CamUp
	CamDown
	CamLeft
	CamRight
	CursorCaptureToggle
	Terminate

	actionCount
)

// Actions is a set of actions packed into a bitmask.
type Actions uint64

// Mask builds an action set.
func Mask(actions ...Action) Actions {
	var m Actions
	for _, a := range actions {
		m |= 1 << a
	}
	return m
}

// Has reports whether the action is in the set.
func (m Actions) Has(a Action) bool { return m&(1<<a) != 0 }

// Any reports whether the set is non-empty.
func (m Actions) Any() bool { return m != 0 }

func (m Actions) set(a Action, pressed bool) Actions {
	if pressed {
		return m | 1<<a
	}
	return m &^ (1 << a)
}

// Consumer receives the subset of held actions it registered for.
type Consumer interface {
	HandledActions() Actions
	Consume(Actions)
}

// MouseConsumer receives accumulated mouse movement once per tick.
type MouseConsumer interface {
	RegisterMouseSettings(invertX, invertY bool, sensitivity float64)
	ConsumeMouse(dx, dy float64)
}

// Dispatch selects when a consumer sees its actions.
type Dispatch int

// Dispatch modes.
const (
	// DispatchTick delivers held actions once per engine tick.
	DispatchTick Dispatch = iota

	// DispatchImmediate delivers on the key event itself, for one-shot
	// actions like toggles.
	DispatchImmediate
)
