package icon

import (
	"image"
	"image/color"
)

// WhiteThreshold is the per-channel cutoff above which a pixel counts as
// background. The comparison is strictly greater-than: a channel at exactly
// 240 is kept. Tuned for flat-background icon renders where JPEG artifacts
// leave near-white ringing around the subject.
const WhiteThreshold = 240

// Verdict is the background decision for one image: whether the background is
// removable, plus the sampled reference pixel it was derived from.
type Verdict struct {
	Removable bool
	Ref       color.NRGBA
}

// BackgroundDetector decides whether an image carries a removable solid
// background. The pipeline is written against this interface so the default
// corner heuristic can be swapped for a flood-fill or histogram detector
// without touching the orchestrator.
type BackgroundDetector interface {
	Classify(img image.Image) Verdict
}

// CornerSampler is the default detector. It samples the single top-left
// pixel: the source assets are flat-background icon renders where that corner
// is always background. Alpha is ignored for the decision. This is a
// deliberate heuristic, not general background segmentation.
type CornerSampler struct{}

// Classify samples pixel (0,0) and declares the background removable iff all
// three color channels exceed WhiteThreshold. An empty image is never
// removable.
func (CornerSampler) Classify(img image.Image) Verdict {
	b := img.Bounds()
	if b.Empty() {
		return Verdict{}
	}
	ref := color.NRGBAModel.Convert(img.At(b.Min.X, b.Min.Y)).(color.NRGBA)
	return Verdict{
		Removable: whiteish(ref.R, ref.G, ref.B),
		Ref:       ref,
	}
}

// whiteish reports whether all three color channels exceed WhiteThreshold.
func whiteish(r, g, b uint8) bool {
	return r > WhiteThreshold && g > WhiteThreshold && b > WhiteThreshold
}
