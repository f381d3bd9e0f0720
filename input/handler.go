// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package input

import (
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

// keymap is the scancode to action binding.
var keymap = map[sdl.Scancode]Action{
	sdl.SCANCODE_W:      Forward,
	sdl.SCANCODE_A:      Left,
	sdl.SCANCODE_S:      Back,
	sdl.SCANCODE_D:      Right,
	sdl.SCANCODE_SPACE:  Up,
	sdl.SCANCODE_LCTRL:  Down,
	sdl.SCANCODE_LSHIFT: Sprint,
	sdl.SCANCODE_UP:     CamUp,
	sdl.SCANCODE_LEFT:   CamLeft,
	sdl.SCANCODE_DOWN:   CamDown,
	sdl.SCANCODE_RIGHT:  CamRight,
	sdl.SCANCODE_ESCAPE: Terminate,
	sdl.SCANCODE_F:      CursorCaptureToggle,
}

type registration struct {
	actions  Actions
	consumer Consumer
}

// Handler accumulates input state between ticks and dispatches it to
// the registered consumers. It is not safe for concurrent use, all
// calls must come from the event loop goroutine.
type Handler struct {
	held Actions

	mouseDX float64
	mouseDY float64

	tick      []registration
	immediate []registration
	mouse     MouseConsumer
}

// NewHandler creates an empty input handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Register subscribes a consumer to the actions it handles. Each action
// may have at most one consumer per dispatch mode.
func (h *Handler) Register(consumer Consumer, dispatch Dispatch) {
	actions := consumer.HandledActions()
	for _, existing := range append(h.tick[:len(h.tick):len(h.tick)], h.immediate...) {
		if existing.actions&actions != 0 {
			panic("input: action registered twice")
		}
	}

	reg := registration{actions: actions, consumer: consumer}
	if dispatch == DispatchImmediate {
		h.immediate = append(h.immediate, reg)
	} else {
		h.tick = append(h.tick, reg)
	}
}

// RegisterMouse subscribes the single mouse consumer and hands it the
// configured inversion and sensitivity.
func (h *Handler) RegisterMouse(consumer MouseConsumer, invertX, invertY bool, sensitivity float64) {
	consumer.RegisterMouseSettings(invertX, invertY, sensitivity)
	h.mouse = consumer
}

// UpdateKey records a key state change and fires immediate consumers.
func (h *Handler) UpdateKey(scancode sdl.Scancode, pressed bool) {
	action, ok := keymap[scancode]
	if !ok {
		log.WithField("scancode", scancode).Debug("unmapped key")
		return
	}
	h.held = h.held.set(action, pressed)

	if !h.held.Any() {
		return
	}
	for _, reg := range h.immediate {
		if overlap := h.held & reg.actions; overlap.Any() {
			reg.consumer.Consume(overlap)
		}
	}
}

// UpdateMouseMovement accumulates relative mouse motion.
func (h *Handler) UpdateMouseMovement(dx, dy float64) {
	h.mouseDX += dx
	h.mouseDY += dy
}

// ActionsTick delivers the held actions to all tick consumers.
func (h *Handler) ActionsTick() {
	if !h.held.Any() {
		return
	}
	for _, reg := range h.tick {
		if overlap := h.held & reg.actions; overlap.Any() {
			reg.consumer.Consume(overlap)
		}
	}
}

// MouseMovementTick flushes the accumulated mouse delta. Movement is
// discarded while the cursor is not captured.
func (h *Handler) MouseMovementTick(cursorCaptured bool) {
	if h.mouseDX == 0 && h.mouseDY == 0 {
		return
	}
	if cursorCaptured && h.mouse != nil {
		h.mouse.ConsumeMouse(h.mouseDX, h.mouseDY)
	}
	h.mouseDX = 0
	h.mouseDY = 0
}

// Held exposes the currently held action set.
func (h *Handler) Held() Actions { return h.held }
