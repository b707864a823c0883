// Package extract derives the ordered TextItem sequence of a page, either
// from the native structured text stream or from OCR over the page raster.
// The two strategies are mutually exclusive and produce incompatible items.
package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/calG1/PDF-Translator/internal/geometry"
	"github.com/calG1/PDF-Translator/internal/ocr"
	"github.com/calG1/PDF-Translator/internal/overlay"
	"github.com/calG1/PDF-Translator/internal/render"
	"github.com/calG1/PDF-Translator/pkg/logger"
	"github.com/calG1/PDF-Translator/pkg/models"
)

// ocrFontFactor sizes OCR item text relative to the group's box height.
const ocrFontFactor = 0.9

type Extractor struct {
	recognizer ocr.Recognizer
	scale      float64
	ocrLang    string
	log        *logger.Logger
}

// NewExtractor builds a page extractor. The recognizer may be nil when only
// native extraction is used.
func NewExtractor(recognizer ocr.Recognizer, scale float64, ocrLang string, log *logger.Logger) *Extractor {
	return &Extractor{
		recognizer: recognizer,
		scale:      scale,
		ocrLang:    ocrLang,
		log:        log,
	}
}

// ExtractPage produces the page's items in a stable order: stream order for
// native text, group-scan order for OCR. Translations are later zipped back
// on by position, so repeated extraction of the same page must yield the
// same sequence.
func (e *Extractor) ExtractPage(ctx context.Context, src render.Source, pageIndex int, useOCR bool) (models.Page, error) {
	if useOCR {
		return e.extractOCR(ctx, src, pageIndex)
	}
	return e.extractNative(ctx, src, pageIndex)
}

func (e *Extractor) extractOCR(ctx context.Context, src render.Source, pageIndex int) (models.Page, error) {
	page := models.Page{Index: pageIndex}

	if e.recognizer == nil {
		return page, fmt.Errorf("OCR requested for page %d but no recognizer is configured", pageIndex)
	}

	rendered, err := src.RenderPage(ctx, pageIndex, e.scale)
	if err != nil {
		return page, fmt.Errorf("failed to render page %d for OCR: %w", pageIndex, err)
	}

	words, err := e.recognizer.Recognize(ctx, rendered.Image, e.ocrLang, nil)
	if err != nil {
		return page, fmt.Errorf("recognition failed on page %d: %w", pageIndex, err)
	}

	// Groups are produced and sampled strictly in scan order on the pristine
	// raster; masking only happens later in the overlay pass.
	for _, group := range ocr.GroupWords(words) {
		box := ocr.GroupBounds(group)
		bg := overlay.SampleBackground(rendered.Image, box)

		item := models.TextItem{
			Original:   ocr.GroupText(group),
			X:          box.X0,
			Y:          box.Y0,
			W:          box.W(),
			H:          box.H(),
			FontSize:   box.H() * ocrFontFactor,
			FontFamily: "sans-serif",
			Background: bg,
			Brightness: overlay.Classify(bg),
			IsOCR:      true,
		}
		e.log.Trace("page %d ocr item %q at (%.0f,%.0f) bg=%s", pageIndex, item.Original, item.X, item.Y, overlay.Hex(bg))
		page.Items = append(page.Items, item)
	}

	return page, nil
}

func (e *Extractor) extractNative(ctx context.Context, src render.Source, pageIndex int) (models.Page, error) {
	page := models.Page{Index: pageIndex}

	if err := ctx.Err(); err != nil {
		return page, err
	}

	content, err := src.TextContent(pageIndex)
	if err != nil {
		return page, fmt.Errorf("failed to get text content for page %d: %w", pageIndex, err)
	}
	viewport, err := src.PageViewport(pageIndex, e.scale)
	if err != nil {
		return page, err
	}

	for _, run := range content.Runs {
		if strings.TrimSpace(run.Text) == "" {
			continue
		}

		style := content.Styles[run.FontName]
		m := geometry.Multiply(viewport, run.Transform)
		fontSize := geometry.FontSize(run.Transform, e.scale)

		family := style.FontFamily
		if family == "" {
			family = "sans-serif"
		}

		page.Items = append(page.Items, models.TextItem{
			Original:   run.Text,
			X:          m[4],
			Y:          geometry.BaselineTop(m, fontSize, style.Ascent),
			W:          run.RawWidth * e.scale,
			H:          fontSize,
			RawWidth:   run.RawWidth,
			FontSize:   fontSize,
			FontFamily: family,
			Brightness: models.BrightnessLight,
			IsOCR:      false,
		})
	}

	return page, nil
}
