package renderer

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestInvalidRenderer(t *testing.T) {
	var r *Renderer

	assert.False(t, r.IsValid())
	assert.Nil(t, r.GetContext())
	assert.Nil(t, r.Library())
	assert.False(t, r.Render(&Surface{}, nil))
	r.Release() // must not panic
}

func TestRenderPassLabel(t *testing.T) {
	pass := &RenderPass{}
	assert.Empty(t, pass.Label())

	pass.SetLabel("Playground Main Render Pass")
	assert.Equal(t, "Playground Main Render Pass", pass.Label())
	assert.Nil(t, pass.Encoder())
}

func TestSurfaceDescriptor(t *testing.T) {
	desc := &wgpu.RenderPassDescriptor{Label: "frame"}
	s := NewSurface(nil, nil, desc)

	assert.Same(t, desc, s.Descriptor())
	// No drawable attached, so the size is the zero point.
	assert.Equal(t, 0, s.Size().X)
	assert.Equal(t, 0, s.Size().Y)
}

func TestSurfaceNilSafety(t *testing.T) {
	var s *Surface
	assert.Equal(t, 0, s.Size().X)
	s.Release() // must not panic
}
