package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"

	"github.com/calG1/PDF-Translator/pkg/models"
)

// Recognizer yields positioned words with confidence scores from a rendered
// page raster. Implementations may report fractional progress in [0,1]
// through the callback; passing nil is always valid.
type Recognizer interface {
	Recognize(ctx context.Context, img image.Image, lang string, progress func(float64)) ([]models.Word, error)
}

// Tesseract is the gosseract-backed Recognizer. It is not safe for
// concurrent use; the pipeline only ever runs one recognition at a time.
type Tesseract struct {
	client *gosseract.Client
}

func NewTesseract() *Tesseract {
	return &Tesseract{client: gosseract.NewClient()}
}

func (t *Tesseract) Close() error {
	return t.client.Close()
}

// Recognize runs word-level OCR over the raster. Tesseract itself does not
// stream progress, so the callback only sees completion.
func (t *Tesseract) Recognize(ctx context.Context, img image.Image, lang string, progress func(float64)) ([]models.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode page raster: %w", err)
	}

	if lang != "" {
		if err := t.client.SetLanguage(lang); err != nil {
			return nil, fmt.Errorf("failed to set OCR language %q: %w", lang, err)
		}
	}
	if err := t.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to load page raster into OCR engine: %w", err)
	}

	boxes, err := t.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("word recognition failed: %w", err)
	}

	words := make([]models.Word, 0, len(boxes))
	for _, b := range boxes {
		words = append(words, models.Word{
			Text: b.Word,
			BBox: models.Box{
				X0: float64(b.Box.Min.X),
				Y0: float64(b.Box.Min.Y),
				X1: float64(b.Box.Max.X),
				Y1: float64(b.Box.Max.Y),
			},
			Confidence: b.Confidence,
		})
	}

	if progress != nil {
		progress(1)
	}
	return words, nil
}
