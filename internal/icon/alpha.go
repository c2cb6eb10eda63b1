package icon

import (
	"image"

	"golang.org/x/image/draw"
)

// RemoveBackground returns a copy of img in which every white-ish pixel (all
// three color channels above WhiteThreshold) is replaced by fully transparent
// white (255,255,255,0). Every other pixel passes through unchanged, original
// alpha included. Output dimensions equal input dimensions. The map is total
// and per-pixel: no neighborhood awareness, no edge anti-aliasing.
func RemoveBackground(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)

	for i := 0; i < len(out.Pix); i += 4 {
		if whiteish(out.Pix[i], out.Pix[i+1], out.Pix[i+2]) {
			out.Pix[i] = 255
			out.Pix[i+1] = 255
			out.Pix[i+2] = 255
			out.Pix[i+3] = 0
		}
	}
	return out
}
