package probe

// Encoding identifies a file's true on-disk encoding as determined from its
// leading bytes, independent of the file extension.
type Encoding int

const (
	EncodingUnknown Encoding = iota
	EncodingPNG
	EncodingJPEG
	EncodingGIF
	EncodingBMP
	EncodingWebP
)

func (e Encoding) String() string {
	switch e {
	case EncodingPNG:
		return "PNG"
	case EncodingJPEG:
		return "JPEG"
	case EncodingGIF:
		return "GIF"
	case EncodingBMP:
		return "BMP"
	case EncodingWebP:
		return "WebP"
	default:
		return "unknown"
	}
}

// Repairable reports whether the pipeline re-encodes this encoding into the
// canonical PNG format. Only JPEG masquerades are repaired; other recognized
// encodings are surfaced in logs but left untouched.
func (e Encoding) Repairable() bool {
	return e == EncodingJPEG
}
