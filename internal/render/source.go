// Package render provides the page capabilities the engine consumes: raster
// rendering at a scale, page geometry, and the structured native text stream.
package render

import (
	"context"
	"image"

	"github.com/calG1/PDF-Translator/internal/geometry"
)

// RenderedPage is one page rasterized at a given scale, together with the
// viewport transform that maps document space onto it.
type RenderedPage struct {
	Image    *image.RGBA
	Viewport geometry.Matrix
	Width    int
	Height   int
}

// TextRun is one positioned run from the native text stream. Transform is
// the run's local matrix in document space; RawWidth is the unscaled
// document-unit width.
type TextRun struct {
	Text      string
	Transform geometry.Matrix
	FontName  string
	RawWidth  float64
}

// FontStyle carries per-font metrics for baseline placement. Ascent of zero
// means unknown.
type FontStyle struct {
	Ascent     float64
	FontFamily string
}

// TextContent is the ordered native text stream of one page.
type TextContent struct {
	Runs   []TextRun
	Styles map[string]FontStyle
}

// Source is a loaded document exposing both capabilities. Rendering must be
// deterministic for identical inputs.
type Source interface {
	PageCount() int
	// RenderPage rasterizes the 0-based page at the scale.
	RenderPage(ctx context.Context, pageIndex int, scale float64) (*RenderedPage, error)
	// PageViewport returns the viewport transform without rasterizing.
	PageViewport(pageIndex int, scale float64) (geometry.Matrix, error)
	// TextContent returns the structured text stream of the 0-based page.
	TextContent(pageIndex int) (*TextContent, error)
	Close() error
}

// Opener loads a document from raw bytes. Injected into the engine so tests
// can substitute in-memory sources.
type Opener func(data []byte) (Source, error)
