package overlay_test

import (
	"image"
	"image/color"
	"image/draw"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/calG1/PDF-Translator/internal/overlay"
	"github.com/calG1/PDF-Translator/pkg/models"
)

func uniformImage(c color.RGBA, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

var _ = Describe("Background Sampler", func() {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	Context("sampling", func() {
		It("should read the pixel at the box's top-left corner", func() {
			img := uniformImage(white, 50, 50)
			img.SetRGBA(10, 20, color.RGBA{R: 30, G: 60, B: 90, A: 255})

			got := overlay.SampleBackground(img, models.Box{X0: 10, Y0: 20, X1: 40, Y1: 35})
			Expect(got).To(Equal(color.RGBA{R: 30, G: 60, B: 90, A: 255}))
		})

		DescribeTable("falling back to white",
			func(box models.Box) {
				img := uniformImage(color.RGBA{R: 1, G: 2, B: 3, A: 255}, 10, 10)
				Expect(overlay.SampleBackground(img, box)).To(Equal(white))
			},
			Entry("zero width", models.Box{X0: 5, Y0: 5, X1: 5, Y1: 8}),
			Entry("negative height", models.Box{X0: 2, Y0: 8, X1: 6, Y1: 4}),
			Entry("out of bounds", models.Box{X0: 50, Y0: 50, X1: 60, Y1: 60}),
		)
	})

	Context("brightness classification", func() {
		DescribeTable("Classify",
			func(c color.RGBA, expected models.Brightness) {
				Expect(overlay.Classify(c)).To(Equal(expected))
			},
			Entry("near-black is dark", color.RGBA{R: 10, G: 10, B: 10, A: 255}, models.BrightnessDark),
			Entry("near-white is light", color.RGBA{R: 240, G: 240, B: 240, A: 255}, models.BrightnessLight),
			Entry("average exactly 128 is light", color.RGBA{R: 128, G: 128, B: 128, A: 255}, models.BrightnessLight),
			Entry("mixed channels average below 128 is dark", color.RGBA{R: 255, G: 60, B: 60, A: 255}, models.BrightnessDark),
		)

		It("should render white text over dark backgrounds", func() {
			Expect(models.BrightnessDark.TextColor()).To(Equal(white))
			Expect(models.BrightnessLight.TextColor()).To(Equal(color.RGBA{A: 255}))
		})
	})
})
