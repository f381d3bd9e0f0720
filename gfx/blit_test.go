// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	"bytes"
	"image"
	"testing"

	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestBlitEqualExtentIsExactCopy(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 7)
	}

	pass := BlitPass{Source: NewTexture(src)}
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	pass.Draw(dst)

	if !bytes.Equal(src.Pix, dst.Pix) {
		t.Error("equal-extent blit altered the image")
	}
}

func TestBlitUpscale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Pix[0] = 255 // top-left texel red

	pass := BlitPass{Source: NewTexture(src)}
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	pass.Draw(dst)

	// Pixels over the red texel's footprint come out far redder than
	// pixels over the opposite quadrant.
	near := dst.Pix[dst.PixOffset(1, 1)]
	far := dst.Pix[dst.PixOffset(5, 5)]
	assert.Greater(t, near, far)
	assert.Greater(t, int(near), 128)
}

func TestFullscreenQuadCoversClipSpace(t *testing.T) {
	pass := BlitPass{}
	seen := map[glm.Vec2]glm.Vec2{}
	for i := 0; i < 6; i++ {
		pos, uv := pass.FullscreenVertex(i)
		if prev, ok := seen[pos]; ok {
			// Shared corners must agree on their UV.
			assert.Equal(t, prev, uv)
		}
		seen[pos] = uv
		assert.Equal(t, float32(1), abs32(pos.X()))
		assert.Equal(t, float32(1), abs32(pos.Y()))
	}
	assert.Len(t, seen, 4)

	// UVs mirror the clip positions into [0, 1].
	for pos, uv := range seen {
		assert.Equal(t, (pos.X()+1)/2, uv.X())
		assert.Equal(t, (pos.Y()+1)/2, uv.Y())
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
