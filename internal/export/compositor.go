// Package export re-renders finished documents into final page rasters and
// packages them into per-document PDFs and a downloadable archive.
package export

import (
	"bytes"
	"context"
	"fmt"
	"image/png"

	"github.com/calG1/PDF-Translator/internal/overlay"
	"github.com/calG1/PDF-Translator/internal/render"
	"github.com/calG1/PDF-Translator/pkg/models"
)

// Compositor produces the final raster of a page: a fresh render of the
// source page with the overlay replayed on top. Output is deterministic for
// a given item state, so exports can be re-run after further edits.
type Compositor struct {
	renderer *overlay.Renderer
	scale    float64
}

func NewCompositor(renderer *overlay.Renderer, scale float64) *Compositor {
	return &Compositor{renderer: renderer, scale: scale}
}

// ComposePage renders the page from scratch, replays the masking and text
// overlay exactly as the display pass would, and returns the PNG snapshot.
func (c *Compositor) ComposePage(ctx context.Context, src render.Source, page models.Page) ([]byte, error) {
	rendered, err := src.RenderPage(ctx, page.Index, c.scale)
	if err != nil {
		return nil, fmt.Errorf("failed to re-render page %d: %w", page.Index, err)
	}

	c.renderer.ComposePage(rendered.Image, page.Items)

	var buf bytes.Buffer
	if err := png.Encode(&buf, rendered.Image); err != nil {
		return nil, fmt.Errorf("failed to encode page %d: %w", page.Index, err)
	}
	return buf.Bytes(), nil
}
