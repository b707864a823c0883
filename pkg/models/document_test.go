package models_test

import (
	"image/color"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/calG1/PDF-Translator/pkg/models"
)

var _ = Describe("DocumentStatus", func() {
	It("should report the mid-pipeline states as active", func() {
		Expect(models.StatusProcessing.Active()).To(BeTrue())
		Expect(models.StatusTranslating.Active()).To(BeTrue())

		Expect(models.StatusQueued.Active()).To(BeFalse())
		Expect(models.StatusReady.Active()).To(BeFalse())
		Expect(models.StatusTranslated.Active()).To(BeFalse())
		Expect(models.StatusError.Active()).To(BeFalse())
	})
})

var _ = Describe("Brightness", func() {
	It("should pick white text for dark backgrounds", func() {
		Expect(models.BrightnessDark.TextColor()).To(Equal(color.RGBA{R: 255, G: 255, B: 255, A: 255}))
		Expect(models.BrightnessDark.String()).To(Equal("dark"))
	})

	It("should pick black text for light backgrounds", func() {
		Expect(models.BrightnessLight.TextColor()).To(Equal(color.RGBA{A: 255}))
		Expect(models.BrightnessLight.String()).To(Equal("light"))
	})
})

var _ = Describe("TextItem", func() {
	It("should show the original until a translation is set", func() {
		item := models.TextItem{Original: "bonjour"}
		Expect(item.CurrentText()).To(Equal("bonjour"))

		item.Translated = "hello"
		Expect(item.CurrentText()).To(Equal("hello"))

		item.ResetTranslation()
		Expect(item.CurrentText()).To(Equal("bonjour"))
	})
})

var _ = Describe("Word", func() {
	It("should treat whitespace-only text as empty", func() {
		Expect(models.Word{Text: "  \t"}.Empty()).To(BeTrue())
		Expect(models.Word{Text: "a"}.Empty()).To(BeFalse())
	})

	It("should derive box dimensions from its corners", func() {
		b := models.Box{X0: 10, Y0: 20, X1: 40, Y1: 35}
		Expect(b.W()).To(Equal(30.0))
		Expect(b.H()).To(Equal(15.0))
	})
})
