// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	"image"

	glm "github.com/go-gl/mathgl/mgl32"
)

// fullscreenQuad is the vertex-index lookup table of the presentation
// pass. Positions are emitted directly in clip space, UVs cover the
// full source extent, two triangles wound the same way.
var fullscreenQuad = [6]struct {
	pos glm.Vec2
	uv  glm.Vec2
}{
	{glm.Vec2{-1, -1}, glm.Vec2{0, 0}},
	{glm.Vec2{1, -1}, glm.Vec2{1, 0}},
	{glm.Vec2{-1, 1}, glm.Vec2{0, 1}},
	{glm.Vec2{1, -1}, glm.Vec2{1, 0}},
	{glm.Vec2{1, 1}, glm.Vec2{1, 1}},
	{glm.Vec2{-1, 1}, glm.Vec2{0, 1}},
}

// BlitPass samples a source texture across the full destination extent
// with no transform and no lighting. It is the final hop that puts a
// rendered frame on a swapchain-sized target.
type BlitPass struct {
	Source *Texture
}

// FullscreenVertex returns the clip-space position and UV for one of
// the six vertices the pass is drawn with, indexed by gl_VertexIndex
// order.
func (b *BlitPass) FullscreenVertex(index int) (glm.Vec2, glm.Vec2) {
	v := fullscreenQuad[index%len(fullscreenQuad)]
	return v.pos, v.uv
}

// Draw writes the source texture into dst, stretching it over the whole
// image. Sampling lands on texel centers when the extents match, so an
// equal-sized blit is an exact copy.
func (b *BlitPass) Draw(dst *image.RGBA) {
	bounds := dst.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	for y := 0; y < height; y++ {
		v := (float32(y) + 0.5) / float32(height)
		for x := 0; x < width; x++ {
			u := (float32(x) + 0.5) / float32(width)
			texel := b.Source.Sample(u, v)
			off := dst.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			dst.Pix[off] = floatToByte(texel.X())
			dst.Pix[off+1] = floatToByte(texel.Y())
			dst.Pix[off+2] = floatToByte(texel.Z())
			dst.Pix[off+3] = floatToByte(texel.W())
		}
	}
}
