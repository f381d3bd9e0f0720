// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package renderer drives the frame: the main pass shades the scene
// into an offscreen target, the present pass blits it to the window
// surface.
package renderer

import (
	glm "github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"

	"github.com/projectperil/peril/core"
	"github.com/projectperil/peril/gfx"
)

// RenderState holds the state shared between passes: the offscreen
// render target and the projection derived from the configuration.
type RenderState struct {
	Framebuffer *gfx.Framebuffer
	Projection  glm.Mat4
}

// New sets up render state for the configured resolution. The
// projection gets its vertical field of view from the configured
// horizontal one divided by the aspect ratio.
func New(cfg core.RendererConfiguration) *RenderState {
	width := int(cfg.RenderWidth)
	height := int(cfg.RenderHeight)
	aspect := float32(width) / float32(height)
	verticalFov := glm.DegToRad(float32(cfg.HorizontalFov) / aspect)

	log.WithFields(log.Fields{
		"width":  width,
		"height": height,
		"fov":    cfg.HorizontalFov,
	}).Info("render state created")

	return &RenderState{
		Framebuffer: gfx.NewFramebuffer(width, height),
		Projection:  gfx.Projection(verticalFov, aspect, cfg.NearPlane, cfg.FarPlane),
	}
}
