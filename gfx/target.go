// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	"image"
	"image/color"

	glm "github.com/go-gl/mathgl/mgl32"
)

// Framebuffer is a render target with a linear RGB color attachment
// and a depth attachment. Color values are stored unclamped until
// readback.
type Framebuffer struct {
	color  []glm.Vec3
	depth  []float32
	width  int
	height int
}

// ClearColor is the dark gray every frame starts from.
var ClearColor = glm.Vec3{0.05, 0.05, 0.05}

// NewFramebuffer allocates a render target of the given extent.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		color:  make([]glm.Vec3, width*height),
		depth:  make([]float32, width*height),
		width:  width,
		height: height,
	}
}

// Width returns the target width in pixels.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the target height in pixels.
func (f *Framebuffer) Height() int { return f.height }

// Clear resets the color attachment to the clear color and the depth
// attachment to the far plane.
func (f *Framebuffer) Clear() {
	for i := range f.color {
		f.color[i] = ClearColor
		f.depth[i] = 1
	}
}

// At returns the linear color stored at (x, y).
func (f *Framebuffer) At(x, y int) glm.Vec3 {
	return f.color[y*f.width+x]
}

// DepthAt returns the depth stored at (x, y).
func (f *Framebuffer) DepthAt(x, y int) float32 {
	return f.depth[y*f.width+x]
}

func (f *Framebuffer) set(x, y int, c glm.Vec3, depth float32) {
	idx := y*f.width + x
	f.color[idx] = c
	f.depth[idx] = depth
}

// RGBA converts the color attachment into an 8-bit image, clamping
// each channel. No gamma transform is applied.
func (f *Framebuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.color[y*f.width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: floatToByte(c.X()),
				G: floatToByte(c.Y()),
				B: floatToByte(c.Z()),
				A: 255,
			})
		}
	}
	return img
}
