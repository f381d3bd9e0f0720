// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package renderer

import (
	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/projectperil/peril/gfx"
	"github.com/projectperil/peril/scene"
)

// MainPass shades the scene into the offscreen target. Pipelines are
// derived from materials once and reused across frames.
type MainPass struct {
	state     *RenderState
	pipelines map[*gfx.Material]*gfx.Pipeline
}

// NewMainPass creates the main shading pass over the render state.
func NewMainPass(state *RenderState) *MainPass {
	return &MainPass{
		state:     state,
		pipelines: make(map[*gfx.Material]*gfx.Pipeline),
	}
}

func (p *MainPass) pipeline(material *gfx.Material) *gfx.Pipeline {
	if pipe, ok := p.pipelines[material]; ok {
		return pipe
	}
	pipe := gfx.NewPipeline(material)
	p.pipelines[material] = pipe
	return pipe
}

// Draw renders one frame: clear, resolve the light into view space
// once, then run every draw call through its material's pipeline.
func (p *MainPass) Draw(calls []scene.DrawCall, view glm.Mat4, light gfx.PointLight) {
	fb := p.state.Framebuffer
	fb.Clear()

	lightView := gfx.TransformPoint(view, light.Position)

	for _, call := range calls {
		block := gfx.NewTransformBlock(call.Model, view, p.state.Projection)
		p.pipeline(call.Material).DrawIndexed(fb, call.Mesh, block, light, lightView)
	}
}
