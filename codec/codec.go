// Package codec decodes compressed image files into the single RGBA
// interchange format the rest of the harness consumes.
package codec

import (
	"bytes"
	"image"
	"image/draw"

	// Decoders registered for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// CompressedImage holds the raw bytes of an encoded image file.
type CompressedImage struct {
	data []byte
}

func NewCompressedImage(data []byte) *CompressedImage {
	return &CompressedImage{data: data}
}

// DecodedImage is the result of decoding a CompressedImage. The zero
// value is the invalid image; check IsValid before using it.
type DecodedImage struct {
	img    image.Image
	format string
}

// Decode parses the compressed bytes. An unparseable or empty blob
// yields an invalid DecodedImage rather than an error.
func (c *CompressedImage) Decode() DecodedImage {
	if c == nil || len(c.data) == 0 {
		return DecodedImage{}
	}
	img, format, err := image.Decode(bytes.NewReader(c.data))
	if err != nil {
		return DecodedImage{}
	}
	return DecodedImage{img: img, format: format}
}

// ConvertToRGBA redraws the decoded image into an 8-bit RGBA buffer,
// whatever the source's native channel layout. The conversion is
// unconditional; there is no format-preserving fast path.
func ConvertToRGBA(d DecodedImage) DecodedImage {
	if !d.IsValid() {
		return DecodedImage{}
	}
	bounds := d.img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), d.img, bounds.Min, draw.Src)
	return DecodedImage{img: rgba, format: d.format}
}

func (d DecodedImage) IsValid() bool {
	return d.img != nil
}

// Format reports the detected source format ("png", "jpeg", ...).
func (d DecodedImage) Format() string {
	return d.format
}

func (d DecodedImage) Size() image.Point {
	if !d.IsValid() {
		return image.Point{}
	}
	return d.img.Bounds().Size()
}

// Pixels returns the tightly packed RGBA bytes. Only valid after
// ConvertToRGBA; other layouts return nil.
func (d DecodedImage) Pixels() []byte {
	rgba, ok := d.img.(*image.RGBA)
	if !ok {
		return nil
	}
	return rgba.Pix
}
