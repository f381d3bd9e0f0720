// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package renderer

import (
	"image"

	"github.com/projectperil/peril/gfx"
)

// PresentPass stretches the offscreen target over the window surface.
// When the render and window extents match the blit is an exact copy.
type PresentPass struct {
	target *image.RGBA
}

// NewPresentPass allocates the pass for a window of the given extent.
func NewPresentPass(width, height int) *PresentPass {
	return &PresentPass{
		target: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Present reads the framebuffer back and blits it to the window-sized
// image, which the caller hands to the window surface.
func (p *PresentPass) Present(fb *gfx.Framebuffer) *image.RGBA {
	pass := gfx.BlitPass{Source: gfx.NewTexture(fb.RGBA())}
	pass.Draw(p.target)
	return p.target
}
