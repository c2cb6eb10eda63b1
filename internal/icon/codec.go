package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	// Decoder registration. PNG is the canonical format and JPEG the repair
	// source; GIF, BMP, and WebP are registered so mislabeled files of those
	// types still decode for diagnostics.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Decode interprets data with any registered image decoder and returns the
// pixel grid plus the decoder's format name for logging.
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// EncodePNG renders img into canonical PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Opaque reports whether img carries no transparency. This is the background
// pass eligibility filter: an image that already has an alpha channel in use
// was either authored transparent or rewritten on a previous run, and must be
// left alone. Standard decoded types (RGBA, NRGBA, YCbCr, Paletted, Gray)
// answer through their own Opaque method; anything else is scanned.
func Opaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}
