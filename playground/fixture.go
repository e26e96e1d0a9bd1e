package playground

import (
	"errors"
	"fmt"

	"github.com/sortie/impeller-playground/codec"
	"github.com/sortie/impeller-playground/fixtures"
	"github.com/sortie/impeller-playground/graphics"
)

// Fixture pipeline failure kinds. CreateTextureForFixture folds them into
// a nil texture; tests assert on them through errors.Is.
var (
	ErrDecodeFailed     = errors.New("playground: could not decode fixture image")
	ErrAllocationFailed = errors.New("playground: could not allocate fixture texture")
	ErrUploadFailed     = errors.New("playground: could not upload fixture texture")
)

// textureAllocator is the slice of the graphics allocator the fixture
// pipeline needs. *graphics.Allocator satisfies it.
type textureAllocator interface {
	CreateTexture(mode graphics.StorageMode, desc *graphics.TextureDescriptor) (graphics.Texture, error)
}

// CreateTextureForFixture decodes the named fixture image, normalizes it
// to RGBA, and uploads it into a newly allocated host-visible texture with
// a single mip level. Ownership of the texture transfers to the caller.
// Returns nil on any failure; nothing is cached, so repeated requests
// re-decode and re-upload.
func (p *Playground) CreateTextureForFixture(name string) graphics.Texture {
	ctx := p.GetContext()
	if ctx == nil {
		logger.Errorf("cannot create texture for fixture %q: renderer is not valid", name)
		return nil
	}
	texture, err := createFixtureTexture(p.openFixture, ctx.Allocator(), name)
	if err != nil {
		logger.Errorf("%v", err)
		return nil
	}
	return texture
}

func createFixtureTexture(open fixtures.Opener, allocator textureAllocator, name string) (graphics.Texture, error) {
	data, err := open(name)
	if err != nil {
		// A fixture that cannot be resolved surfaces as an invalid
		// decode below, not as a distinct error.
		data = nil
	}

	decoded := codec.ConvertToRGBA(codec.NewCompressedImage(data).Decode())
	if !decoded.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrDecodeFailed, name)
	}

	// The fixture name rides along as the allocation label so the device
	// object carries it too, not just the wrapper.
	texture, err := allocator.CreateTexture(graphics.StorageModeHostVisible, &graphics.TextureDescriptor{
		Label:    name,
		Size:     decoded.Size(),
		MipCount: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrAllocationFailed, name, err)
	}
	if texture == nil {
		return nil, fmt.Errorf("%w: %q", ErrAllocationFailed, name)
	}

	if err := texture.Upload(decoded.Pixels()); err != nil {
		texture.Release()
		return nil, fmt.Errorf("%w: %q: %v", ErrUploadFailed, name, err)
	}
	return texture, nil
}
