package overlay_test

import (
	"image/color"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/calG1/PDF-Translator/internal/overlay"
	"github.com/calG1/PDF-Translator/pkg/models"
)

var _ = Describe("Text Fitter", func() {
	It("should shrink linearly when the text overflows the footprint", func() {
		measure := func(size float64) float64 { return 150 * (size / 20) }
		Expect(overlay.FitFontSize(measure, 100, 20)).To(BeNumerically("~", 14, 1e-9))
	})

	It("should keep the base size when the text fits within the tolerance", func() {
		measure := func(size float64) float64 { return 80 }
		Expect(overlay.FitFontSize(measure, 100, 20)).To(Equal(20.0))
	})

	It("should keep the base size at exactly the tolerance boundary", func() {
		measure := func(size float64) float64 { return 105 }
		Expect(overlay.FitFontSize(measure, 100, 20)).To(Equal(20.0))
	})

	It("should not enforce a minimum font size", func() {
		measure := func(size float64) float64 { return 10000 }
		Expect(overlay.FitFontSize(measure, 100, 20)).To(BeNumerically("<", 1))
	})
})

var _ = Describe("Overlay Renderer", func() {
	newRenderer := func() *overlay.Renderer {
		fonts, err := overlay.NewFontCache()
		Expect(err).NotTo(HaveOccurred())
		return overlay.NewRenderer(fonts)
	}

	It("should mask OCR items with the sampled background including bleed", func() {
		img := uniformImage(color.RGBA{R: 10, G: 10, B: 10, A: 255}, 100, 40)
		renderer := newRenderer()

		bg := color.RGBA{R: 200, G: 50, B: 50, A: 255}
		renderer.ComposePage(img, []models.TextItem{{
			Original:   "x",
			X:          20, Y: 10, W: 40, H: 12,
			FontSize:   10,
			Background: bg,
			Brightness: models.BrightnessLight,
			IsOCR:      true,
		}})

		// One pixel of bleed beyond each box edge is repainted.
		Expect(img.RGBAAt(19, 9)).To(Equal(bg))
		Expect(img.RGBAAt(60, 22)).To(Equal(bg))
		// Pixels outside the bleed stay untouched.
		Expect(img.RGBAAt(17, 9)).To(Equal(color.RGBA{R: 10, G: 10, B: 10, A: 255}))
	})

	It("should back native items with opaque white", func() {
		img := uniformImage(color.RGBA{R: 10, G: 10, B: 10, A: 255}, 100, 40)
		renderer := newRenderer()

		renderer.ComposePage(img, []models.TextItem{{
			Original:   "x",
			X:          20, Y: 10, W: 40, H: 12,
			FontSize:   10,
			Brightness: models.BrightnessLight,
		}})

		Expect(img.RGBAAt(58, 11)).To(Equal(color.RGBA{R: 255, G: 255, B: 255, A: 255}))
		// No bleed for native items: the pixel above the box keeps the page color.
		Expect(img.RGBAAt(21, 9)).To(Equal(color.RGBA{R: 10, G: 10, B: 10, A: 255}))
	})

	It("should produce identical output when run twice from the same raster", func() {
		items := []models.TextItem{{
			Original:   "deterministic",
			Translated: "still deterministic",
			X:          5, Y: 5, W: 80, H: 14,
			FontSize:   12,
			Background: color.RGBA{R: 250, G: 250, B: 250, A: 255},
			Brightness: models.BrightnessLight,
			IsOCR:      true,
		}}
		renderer := newRenderer()

		first := uniformImage(color.RGBA{R: 90, G: 90, B: 90, A: 255}, 120, 40)
		second := uniformImage(color.RGBA{R: 90, G: 90, B: 90, A: 255}, 120, 40)
		renderer.ComposePage(first, items)
		renderer.ComposePage(second, items)

		Expect(first.Pix).To(Equal(second.Pix))
	})
})
