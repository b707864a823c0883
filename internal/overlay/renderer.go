// Package overlay composites replacement text over a rendered page raster:
// it masks the pixels under each text item and redraws the item's current
// text fitted into the original footprint.
package overlay

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/calG1/PDF-Translator/pkg/models"
)

// maskBleed widens OCR masks by one pixel on every side so anti-aliased
// fringes of the source glyphs are fully occluded.
const maskBleed = 1.0

// Renderer paints text items onto a page raster. It mutates the raster in
// place; re-rendering from scratch requires a fresh page raster.
type Renderer struct {
	fonts *FontCache
}

func NewRenderer(fonts *FontCache) *Renderer {
	return &Renderer{fonts: fonts}
}

// ComposePage draws every item of a page over the raster in item order.
// OCR items are masked with their sampled background color; native items get
// an opaque white backing because the vector-rendered glyphs underneath
// cannot be erased any other way. The item's translated text wins over the
// original once set, and translated text is shrunk to fit the original
// footprint.
func (r *Renderer) ComposePage(img *image.RGBA, items []models.TextItem) {
	dc := gg.NewContextForRGBA(img)
	for i := range items {
		r.drawItem(dc, &items[i])
	}
}

func (r *Renderer) drawItem(dc *gg.Context, item *models.TextItem) {
	if item.IsOCR {
		dc.SetColor(item.Background)
		dc.DrawRectangle(item.X-maskBleed, item.Y-maskBleed, item.W+2*maskBleed, item.H+2*maskBleed)
		dc.Fill()
	} else {
		dc.SetColor(color.White)
		dc.DrawRectangle(item.X, item.Y, item.W, item.H)
		dc.Fill()
	}

	text := item.CurrentText()
	size := item.FontSize
	if item.Translated != "" {
		size = FitFontSize(func(s float64) float64 {
			dc.SetFontFace(r.fonts.Face(s))
			w, _ := dc.MeasureString(text)
			return w
		}, item.W, item.FontSize)
	}

	dc.SetFontFace(r.fonts.Face(size))
	dc.SetColor(item.Brightness.TextColor())
	dc.DrawStringAnchored(
		text,
		item.X,          /* =x */
		item.Y+item.H/2, /* =y */
		0,               /* =ax (align left in x) */
		0.3,             /* =ay (align almost center in y) */
	)
}
