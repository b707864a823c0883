package models

import (
	"image/color"
	"strings"
)

// DocumentStatus tracks a document through the processing pipeline.
type DocumentStatus string

const (
	StatusQueued      DocumentStatus = "queued"
	StatusProcessing  DocumentStatus = "processing"
	StatusReady       DocumentStatus = "ready"
	StatusTranslating DocumentStatus = "translating"
	StatusTranslated  DocumentStatus = "translated"
	StatusError       DocumentStatus = "error"
)

// Active reports whether the document is in the middle of a pipeline step.
// Documents in an active state must not be mutated from outside the pipeline.
func (s DocumentStatus) Active() bool {
	return s == StatusProcessing || s == StatusTranslating
}

// Brightness classifies a sampled background so replacement text stays
// readable: white text over dark backgrounds, black text over light ones.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// TextColor returns the foreground color to render text with.
func (b Brightness) TextColor() color.RGBA {
	if b == BrightnessDark {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{A: 255}
}

// TextItem is one visually replaceable unit of text on a page. Positions and
// sizes are device pixels at the page's render scale. RawWidth keeps the
// unscaled document-unit width for native items so export can re-scale it.
type TextItem struct {
	Original   string
	Translated string

	X, Y float64
	W, H float64

	RawWidth   float64
	FontSize   float64
	FontFamily string

	Brightness Brightness
	Background color.RGBA

	IsOCR bool
}

// CurrentText returns the translated text once set, the original otherwise.
// An empty translation counts as unset; Original is never empty, so the
// result is never empty either.
func (t *TextItem) CurrentText() string {
	if t.Translated != "" {
		return t.Translated
	}
	return t.Original
}

// ResetTranslation reverts the item to showing its original text.
func (t *TextItem) ResetTranslation() {
	t.Translated = ""
}

// Page is the ordered set of text items extracted from one source page.
// Item order is extraction order and is the order translations are zipped
// back on, so it must never be re-sorted.
type Page struct {
	Index int
	Items []TextItem
}

// Document owns its pages exclusively. Toggling UseOCR invalidates the pages
// because native and OCR extraction produce incompatible item sets.
type Document struct {
	ID        string
	Source    []byte
	Filename  string
	PageCount int
	Status    DocumentStatus
	UseOCR    bool
	PageRange string
	Pages     []Page
}

// Box is an axis-aligned bounding box in device pixels.
type Box struct {
	X0, Y0, X1, Y1 float64
}

func (b Box) W() float64 { return b.X1 - b.X0 }
func (b Box) H() float64 { return b.Y1 - b.Y0 }

// Word is a single recognized OCR token. Produced by the OCR capability,
// consumed by the word grouper.
type Word struct {
	Text       string
	BBox       Box
	Confidence float64
}

// Empty reports whether the word carries no usable text.
func (w Word) Empty() bool {
	return strings.TrimSpace(w.Text) == ""
}
