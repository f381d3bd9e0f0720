// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	"image"
	"image/draw"

	glm "github.com/go-gl/mathgl/mgl32"
)

// Texture is a sampled RGBA image. The pixel layout matches what the
// upload path of a GPU backend would consume: tightly packed rows,
// four bytes per texel.
type Texture struct {
	pix    []uint8
	width  int
	height int
	stride int
}

// NewTexture converts any decoded image into a sampleable texture.
func NewTexture(img image.Image) *Texture {
	bounds := img.Bounds()
	pix, _ := GetPixels(img, 0)
	return &Texture{
		pix:    pix,
		width:  bounds.Dx(),
		height: bounds.Dy(),
		stride: 4 * bounds.Dx(),
	}
}

// NewUniformTexture creates a 1x1 texture of a constant color,
// used as the neutral binding when a material map is missing.
func NewUniformTexture(c glm.Vec4) *Texture {
	return &Texture{
		pix: []uint8{
			floatToByte(c.X()), floatToByte(c.Y()), floatToByte(c.Z()), floatToByte(c.W()),
		},
		width:  1,
		height: 1,
		stride: 4,
	}
}

// Width returns the texture width in texels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in texels.
func (t *Texture) Height() int { return t.height }

// texel fetches one texel with repeat wrapping.
func (t *Texture) texel(x, y int) glm.Vec4 {
	x = wrap(x, t.width)
	y = wrap(y, t.height)
	off := y*t.stride + 4*x
	return glm.Vec4{
		float32(t.pix[off]) / 255,
		float32(t.pix[off+1]) / 255,
		float32(t.pix[off+2]) / 255,
		float32(t.pix[off+3]) / 255,
	}
}

// Sample bilinearly samples the texture at (u, v) with repeat wrapping.
// UV (0,0)-(1,1) spans the full texture extent, texel centers sit at
// half-texel offsets.
func (t *Texture) Sample(u, v float32) glm.Vec4 {
	x := u*float32(t.width) - 0.5
	y := v*float32(t.height) - 0.5

	x0 := floorInt(x)
	y0 := floorInt(y)
	fx := x - float32(x0)
	fy := y - float32(y0)

	c00 := t.texel(x0, y0)
	c10 := t.texel(x0+1, y0)
	c01 := t.texel(x0, y0+1)
	c11 := t.texel(x0+1, y0+1)

	top := c00.Mul(1 - fx).Add(c10.Mul(fx))
	bottom := c01.Mul(1 - fx).Add(c11.Mul(fx))
	return top.Mul(1 - fy).Add(bottom.Mul(fy))
}

// SampleNormal samples a tangent-space normal map. The green channel is
// flipped for the texture origin convention, then all channels are
// remapped from [0,1] to [-1,1] and the result normalized.
func (t *Texture) SampleNormal(u, v float32) glm.Vec3 {
	texel := t.Sample(u, v)
	n := glm.Vec3{
		2*texel.X() - 1,
		2*(1-texel.Y()) - 1,
		2*texel.Z() - 1,
	}
	if n.Dot(n) == 0 {
		// A fully mid-gray texel decodes to the zero vector;
		// fall back to the unperturbed surface normal.
		return glm.Vec3{0, 0, 1}
	}
	return n.Normalize()
}

// GetPixels transforms a given image into the right arrangement of pixels
// by drawing the decoded image onto a controlled RGBA canvas.
func GetPixels(img image.Image, rowPitch int) ([]uint8, error) {
	newImg := image.NewRGBA(img.Bounds())
	if rowPitch > 4*img.Bounds().Dx() {
		// apply the proposed row pitch only if it fits a whole row,
		// as we're using only tightly packed textures otherwise.
		newImg.Stride = rowPitch
		newImg.Pix = make([]uint8, rowPitch*img.Bounds().Dy())
	}
	draw.Draw(newImg, newImg.Bounds(), img, image.Point{}, draw.Src)
	return newImg.Pix, nil
}

func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}

func floorInt(v float32) int {
	i := int(v)
	if v < 0 && float32(i) != v {
		i--
	}
	return i
}

func floatToByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
