package graphics

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// StorageMode selects the memory domain a texture allocation comes from.
type StorageMode int

const (
	// StorageModeHostVisible allocates a texture the queue can write pixel
	// data into from host memory.
	StorageModeHostVisible StorageMode = iota
	// StorageModeDevicePrivate allocates device-local memory with no host
	// upload path.
	StorageModeDevicePrivate
)

// TextureDescriptor describes a texture allocation request. Zero values
// for Format, MipCount and Usage fall back to RGBA8, a single mip level
// and sampled+copy-dst usage.
type TextureDescriptor struct {
	Label    string
	Size     image.Point
	Format   wgpu.TextureFormat
	MipCount int
	Usage    wgpu.TextureUsage
}

func (d *TextureDescriptor) normalized() TextureDescriptor {
	out := *d
	if out.MipCount <= 0 {
		out.MipCount = 1
	}
	if out.Format == wgpu.TextureFormatUndefined {
		out.Format = wgpu.TextureFormatRGBA8Unorm
	}
	if out.Usage == 0 {
		out.Usage = wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst
	}
	return out
}

// Texture is a GPU-resident texture owned by the caller. Release must be
// called before the owning Context is released.
type Texture interface {
	Size() image.Point
	MipCount() int
	Label() string
	// SetLabel tags the texture for diagnostics only.
	SetLabel(label string)
	// Upload writes tightly packed pixel data into mip level zero.
	Upload(pixels []byte) error
	// Handle exposes the underlying wgpu texture for binding.
	Handle() *wgpu.Texture
	Release()
}

// Allocator creates textures on the context's device. It lives on the
// Context and is shared by all callers.
type Allocator struct {
	device *wgpu.Device
	queue  *wgpu.Queue
}

// CreateTexture allocates a texture per the descriptor. Host-visible
// textures always carry copy-dst usage so Upload can write them.
func (a *Allocator) CreateTexture(mode StorageMode, desc *TextureDescriptor) (Texture, error) {
	if desc == nil || desc.Size.X <= 0 || desc.Size.Y <= 0 {
		return nil, fmt.Errorf("invalid texture descriptor: %+v", desc)
	}
	nd := desc.normalized()
	if mode == StorageModeHostVisible {
		nd.Usage |= wgpu.TextureUsageCopyDst
	}

	t, err := a.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: nd.Label,
		Size: wgpu.Extent3D{
			Width:              uint32(nd.Size.X),
			Height:             uint32(nd.Size.Y),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: uint32(nd.MipCount),
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        nd.Format,
		Usage:         nd.Usage,
	})
	if err != nil {
		return nil, fmt.Errorf("texture allocation failed: %w", err)
	}
	return &deviceTexture{
		queue:   a.queue,
		texture: t,
		label:   nd.Label,
		size:    nd.Size,
		mips:    nd.MipCount,
	}, nil
}

// deviceTexture is the wgpu-backed Texture implementation.
type deviceTexture struct {
	queue   *wgpu.Queue
	texture *wgpu.Texture
	label   string
	size    image.Point
	mips    int
}

func (t *deviceTexture) Size() image.Point     { return t.size }
func (t *deviceTexture) MipCount() int         { return t.mips }
func (t *deviceTexture) Label() string         { return t.label }
func (t *deviceTexture) SetLabel(label string) { t.label = label }
func (t *deviceTexture) Handle() *wgpu.Texture { return t.texture }

func (t *deviceTexture) Upload(pixels []byte) error {
	expected := 4 * t.size.X * t.size.Y
	if len(pixels) != expected {
		return fmt.Errorf("pixel buffer is %d bytes, texture needs %d", len(pixels), expected)
	}
	return t.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Aspect:   wgpu.TextureAspectAll,
			Texture:  t.texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
		},
		pixels,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  4 * uint32(t.size.X),
			RowsPerImage: uint32(t.size.Y),
		},
		&wgpu.Extent3D{
			Width:              uint32(t.size.X),
			Height:             uint32(t.size.Y),
			DepthOrArrayLayers: 1,
		},
	)
}

func (t *deviceTexture) Release() {
	if t.texture != nil {
		t.texture.Release()
		t.texture = nil
	}
}
