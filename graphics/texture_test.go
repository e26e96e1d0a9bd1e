package graphics

import (
	"image"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestTextureDescriptorDefaults(t *testing.T) {
	desc := TextureDescriptor{Size: image.Point{X: 16, Y: 8}}
	nd := desc.normalized()

	assert.Equal(t, 1, nd.MipCount)
	assert.Equal(t, wgpu.TextureFormatRGBA8Unorm, nd.Format)
	assert.Equal(t, wgpu.TextureUsageTextureBinding|wgpu.TextureUsageCopyDst, nd.Usage)
	assert.Equal(t, desc.Size, nd.Size)
}

func TestTextureDescriptorExplicitValuesKept(t *testing.T) {
	desc := TextureDescriptor{
		Label:    "checkerboard",
		Size:     image.Point{X: 4, Y: 4},
		Format:   wgpu.TextureFormatBGRA8Unorm,
		MipCount: 3,
		Usage:    wgpu.TextureUsageRenderAttachment,
	}
	nd := desc.normalized()

	assert.Equal(t, desc, nd)
}
