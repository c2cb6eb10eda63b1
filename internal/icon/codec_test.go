package icon

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func TestDecode_PNGRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.SetNRGBA(1, 2, color.NRGBA{10, 20, 30, 255})

	data, err := EncodePNG(src)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	img, format, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if img.Bounds() != src.Bounds() {
		t.Errorf("bounds = %v, want %v", img.Bounds(), src.Bounds())
	}
	r, g, b, _ := img.At(1, 2).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("pixel (1,2) = (%d,%d,%d), want (10,20,30)", r>>8, g>>8, b>>8)
	}
}

func TestDecode_JPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetRGBA(x, y, color.RGBA{255, 255, 255, 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: 100}); err != nil {
		t.Fatalf("jpeg.Encode: %v", err)
	}

	img, format, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("format = %q, want jpeg", format)
	}
	if !Opaque(img) {
		t.Error("decoded JPEG should be opaque")
	}
}

func TestDecode_Garbage(t *testing.T) {
	if _, _, err := Decode([]byte("definitely not an image")); err == nil {
		t.Error("Decode should fail on garbage bytes")
	}
	if _, _, err := Decode(nil); err == nil {
		t.Error("Decode should fail on empty input")
	}
}

func TestEncodePNG_SniffableOutput(t *testing.T) {
	data, err := EncodePNG(image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	want := []byte{0x89, 0x50, 0x4E, 0x47}
	if !bytes.HasPrefix(data, want) {
		t.Errorf("encoded bytes start with % x, want PNG magic", data[:4])
	}
}

func TestOpaque(t *testing.T) {
	opaque := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			opaque.SetNRGBA(x, y, color.NRGBA{1, 2, 3, 255})
		}
	}
	if !Opaque(opaque) {
		t.Error("fully opaque NRGBA reported as transparent")
	}

	holed := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	holed.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 0})
	if Opaque(holed) {
		t.Error("image with a transparent pixel reported as opaque")
	}
}

func TestOpaque_SurvivesPNGRoundTrip(t *testing.T) {
	// An already-rewritten icon (alpha in use) must decode back as
	// non-opaque, which is what makes the pipeline idempotent.
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 0})
	img.SetNRGBA(1, 0, color.NRGBA{9, 9, 9, 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	back, _, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if Opaque(back) {
		t.Error("round-tripped transparent image reported as opaque")
	}
}
