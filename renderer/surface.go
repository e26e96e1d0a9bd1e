package renderer

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// Surface is the transient render target for a single frame: the acquired
// drawable texture, its view, and the render-pass descriptor built for it.
// It lives for one frame and must be released after presentation.
type Surface struct {
	drawable   *wgpu.Texture
	view       *wgpu.TextureView
	descriptor *wgpu.RenderPassDescriptor
}

// NewSurface wraps an acquired drawable and its prepared render-pass
// descriptor. The Surface takes ownership of drawable and view.
func NewSurface(drawable *wgpu.Texture, view *wgpu.TextureView, descriptor *wgpu.RenderPassDescriptor) *Surface {
	return &Surface{drawable: drawable, view: view, descriptor: descriptor}
}

// Descriptor returns the frame's render-pass descriptor.
func (s *Surface) Descriptor() *wgpu.RenderPassDescriptor {
	return s.descriptor
}

// Size reports the drawable's pixel dimensions.
func (s *Surface) Size() image.Point {
	if s == nil || s.drawable == nil {
		return image.Point{}
	}
	return image.Point{
		X: int(s.drawable.GetWidth()),
		Y: int(s.drawable.GetHeight()),
	}
}

// Release frees the per-frame view and drawable references.
func (s *Surface) Release() {
	if s == nil {
		return
	}
	if s.view != nil {
		s.view.Release()
		s.view = nil
	}
	if s.drawable != nil {
		s.drawable.Release()
		s.drawable = nil
	}
}
