// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

// Descriptor set and binding slots of the shading programs. The
// material samplers live in their own set so the per-frame view block
// can stay bound across material switches.
const (
	MaterialDescriptorSet = 0
	ColorMapBinding       = 0
	NormalMapBinding      = 1

	FrameDescriptorSet = 1
	ViewBlockBinding   = 0
)

// Push constant layout of the vertex stage. Two column-major 4x4 float
// matrices packed back to back.
const (
	PushConstantModelOffset = 0
	PushConstantMVPOffset   = 64
	PushConstantSize        = 128
)

// ShaderStage selects which pipeline stages a resource is visible to.
type ShaderStage uint32

// Shader stage flags, matching the Vulkan stage bit values.
const (
	StageVertex   ShaderStage = 0x1
	StageFragment ShaderStage = 0x10
)

// DescriptorBinding describes one slot of a descriptor set layout.
type DescriptorBinding struct {
	Set     int
	Binding int
	Stages  ShaderStage
}

// PushConstantRange describes a push constant block.
type PushConstantRange struct {
	Offset int
	Size   int
	Stages ShaderStage
}

// ProgramLayout is the full binding interface of a shading program,
// enough for a backend to build pipeline layouts without inspecting
// shader code.
type ProgramLayout struct {
	Bindings      []DescriptorBinding
	PushConstants []PushConstantRange
}

// Layout reports the binding interface of the program. The normal map
// slot is only present when the program samples one.
func (p Program) Layout() ProgramLayout {
	bindings := []DescriptorBinding{
		{Set: MaterialDescriptorSet, Binding: ColorMapBinding, Stages: StageFragment},
	}
	if p.NormalMapped {
		bindings = append(bindings, DescriptorBinding{
			Set: MaterialDescriptorSet, Binding: NormalMapBinding, Stages: StageFragment,
		})
	}
	bindings = append(bindings, DescriptorBinding{
		Set: FrameDescriptorSet, Binding: ViewBlockBinding, Stages: StageVertex,
	})
	return ProgramLayout{
		Bindings: bindings,
		PushConstants: []PushConstantRange{
			{Offset: PushConstantModelOffset, Size: PushConstantSize, Stages: StageVertex},
		},
	}
}
