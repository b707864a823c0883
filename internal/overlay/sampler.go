package overlay

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/calG1/PDF-Translator/pkg/models"
)

// SampleBackground estimates the background color under a text box by reading
// exactly one pixel at the box's top-left corner. A histogram over the whole
// box would be more accurate but is expensive; a corner probe is good enough
// for mostly uniform backgrounds, and callers accept visible masking
// artifacts over complex ones. Degenerate or out-of-bounds boxes fall back
// to white.
func SampleBackground(img image.Image, box models.Box) color.RGBA {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if box.W() <= 0 || box.H() <= 0 {
		return white
	}

	x, y := int(box.X0), int(box.Y0)
	if !image.Pt(x, y).In(img.Bounds()) {
		return white
	}

	r, g, b, _ := img.At(x, y).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
}

// Classify buckets a background color by average channel brightness. The
// boundary value 128 counts as light.
func Classify(c color.RGBA) models.Brightness {
	avg := (int(c.R) + int(c.G) + int(c.B)) / 3
	if avg < 128 {
		return models.BrightnessDark
	}
	return models.BrightnessLight
}

// Hex formats a color for logs and diagnostics.
func Hex(c color.RGBA) string {
	cc, _ := colorful.MakeColor(c)
	return cc.Hex()
}
