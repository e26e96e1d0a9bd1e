package renderer

import "github.com/cogentcore/webgpu/wgpu"

// RenderPass wraps the open render pass handed to render callbacks.
type RenderPass struct {
	encoder *wgpu.RenderPassEncoder
	label   string
}

// SetLabel tags the pass for GPU frame debuggers.
func (p *RenderPass) SetLabel(label string) {
	p.label = label
	if p.encoder != nil {
		p.encoder.InsertDebugMarker(label)
	}
}

// Label returns the most recently set label.
func (p *RenderPass) Label() string {
	return p.label
}

// Encoder exposes the underlying wgpu pass encoder for issuing draws.
// Nil when the pass was constructed without one (tests).
func (p *RenderPass) Encoder() *wgpu.RenderPassEncoder {
	return p.encoder
}
