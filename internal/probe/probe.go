package probe

import "bytes"

// SniffLen is the number of leading bytes Sniff needs to classify a file.
// Callers reading a prefix instead of the whole file should read at least
// this many bytes.
const SniffLen = 16

// Magic prefixes for the encodings the sniffer recognizes.
var (
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	pngMagic  = []byte{0x89, 0x50, 0x4E, 0x47}
	gifMagic  = []byte("GIF8")
	bmpMagic  = []byte("BM")
	riffMagic = []byte("RIFF")
	webpTag   = []byte("WEBP")
)

// Sniff classifies data by its leading magic bytes. It is pure and never
// interprets the bytes as an image; extension-based trust is exactly the
// defect the pipeline repairs, so classification must not depend on the
// file name. Checks run in order and the first match wins: JPEG before PNG,
// then the recognized-but-not-repaired formats.
func Sniff(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, jpegMagic):
		return EncodingJPEG
	case bytes.HasPrefix(data, pngMagic):
		return EncodingPNG
	case bytes.HasPrefix(data, gifMagic):
		return EncodingGIF
	case len(data) >= 12 && bytes.HasPrefix(data, riffMagic) && bytes.Equal(data[8:12], webpTag):
		return EncodingWebP
	case bytes.HasPrefix(data, bmpMagic):
		return EncodingBMP
	}
	return EncodingUnknown
}
