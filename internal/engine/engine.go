// Package engine orchestrates the document pipeline: queued extraction,
// batch translation, and export. Documents are processed strictly one at a
// time in FIFO order; there is no cancellation primitive beyond the context,
// and a started step always runs to completion or failure.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/calG1/PDF-Translator/internal/export"
	"github.com/calG1/PDF-Translator/internal/extract"
	"github.com/calG1/PDF-Translator/internal/ocr"
	"github.com/calG1/PDF-Translator/internal/overlay"
	"github.com/calG1/PDF-Translator/internal/render"
	"github.com/calG1/PDF-Translator/internal/translate"
	"github.com/calG1/PDF-Translator/pkg/logger"
	"github.com/calG1/PDF-Translator/pkg/models"
	"github.com/calG1/PDF-Translator/pkg/utils"
)

const (
	DefaultScale      = 1.5
	DefaultTargetLang = "es"
)

// ProgressEvent reports pipeline progress for display. Page is 1-based.
type ProgressEvent struct {
	DocumentID string
	Filename   string
	Stage      models.DocumentStatus
	Page       int
	PageCount  int
}

// Options wires the engine's capabilities. Zero values select the production
// defaults; tests substitute in-memory implementations.
type Options struct {
	Open       render.Opener
	Recognizer ocr.Recognizer
	Provider   translate.Provider
	Sink       export.Sink
	TargetLang string
	OCRLang    string
	Scale      float64
	Progress   func(ProgressEvent)
	Logger     *logger.Logger
}

type Engine struct {
	open      render.Opener
	extractor *extract.Extractor
	composer  *export.Compositor
	provider  translate.Provider
	sink      export.Sink

	targetLang string
	scale      float64
	progress   func(ProgressEvent)
	log        *logger.Logger

	documents []*models.Document
	sources   map[string]render.Source
	seq       int
}

func New(opts Options) (*Engine, error) {
	if opts.Open == nil {
		opts.Open = render.Open
	}
	if opts.Provider == nil {
		opts.Provider = &translate.Mock{}
	}
	if opts.Sink == nil {
		opts.Sink = export.NewPDFSink()
	}
	if opts.Scale == 0 {
		opts.Scale = DefaultScale
	}
	if opts.TargetLang == "" {
		opts.TargetLang = DefaultTargetLang
	}
	if opts.Logger == nil {
		opts.Logger = logger.New()
	}

	fonts, err := overlay.NewFontCache()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize overlay fonts: %w", err)
	}
	renderer := overlay.NewRenderer(fonts)

	return &Engine{
		open:       opts.Open,
		extractor:  extract.NewExtractor(opts.Recognizer, opts.Scale, opts.OCRLang, opts.Logger),
		composer:   export.NewCompositor(renderer, opts.Scale),
		provider:   opts.Provider,
		sink:       opts.Sink,
		targetLang: opts.TargetLang,
		scale:      opts.Scale,
		progress:   opts.Progress,
		log:        opts.Logger,
		sources:    make(map[string]render.Source),
	}, nil
}

// Add queues a document for extraction.
func (e *Engine) Add(filename string, data []byte, useOCR bool) *models.Document {
	e.seq++
	doc := &models.Document{
		ID:       fmt.Sprintf("%d-%04d", time.Now().UnixMilli(), e.seq),
		Source:   data,
		Filename: filename,
		Status:   models.StatusQueued,
		UseOCR:   useOCR,
	}
	e.documents = append(e.documents, doc)
	return doc
}

// Documents returns the queue in insertion order.
func (e *Engine) Documents() []*models.Document {
	return append([]*models.Document(nil), e.documents...)
}

// Document looks a document up by ID.
func (e *Engine) Document(id string) (*models.Document, bool) {
	return utils.Find(e.documents, func(d *models.Document) bool { return d.ID == id })
}

// Remove discards a document and its pages.
func (e *Engine) Remove(id string) error {
	doc, ok := e.Document(id)
	if !ok {
		return ErrUnknownDocument
	}
	if doc.Status.Active() {
		return ErrBusy
	}
	if src, ok := e.sources[id]; ok {
		src.Close()
		delete(e.sources, id)
	}
	e.documents = utils.Filter(e.documents, func(d *models.Document) bool { return d.ID != id })
	return nil
}

// Busy reports whether any document is mid-extraction or mid-translation.
func (e *Engine) Busy() bool {
	return utils.Some(e.documents, func(d *models.Document) bool { return d.Status.Active() })
}

// ToggleOCR flips a document's extraction strategy. Rejected while the
// pipeline is busy. A document that already has pages is reset to queued and
// its pages discarded, since OCR and native extraction produce incompatible
// item sets.
func (e *Engine) ToggleOCR(id string) error {
	if e.Busy() {
		return ErrBusy
	}
	doc, ok := e.Document(id)
	if !ok {
		return ErrUnknownDocument
	}

	doc.UseOCR = !doc.UseOCR
	switch doc.Status {
	case models.StatusReady, models.StatusTranslated, models.StatusError:
		doc.Status = models.StatusQueued
		doc.Pages = nil
	}
	return nil
}

// SetPageRange updates the document's page-range selector for the next
// translation pass.
func (e *Engine) SetPageRange(id, pageRange string) error {
	doc, ok := e.Document(id)
	if !ok {
		return ErrUnknownDocument
	}
	doc.PageRange = pageRange
	return nil
}

// ProcessQueue drains queued documents in FIFO order. A document failure
// marks that document only; the queue continues with the next one. Only a
// cancelled context aborts the drain.
func (e *Engine) ProcessQueue(ctx context.Context) error {
	for {
		if e.Busy() {
			return nil
		}
		next, ok := utils.Find(e.documents, func(d *models.Document) bool {
			return d.Status == models.StatusQueued
		})
		if !ok {
			return nil
		}
		if err := e.processDocument(ctx, next); err != nil {
			return err
		}
	}
}

// processDocument extracts every page of one document. The returned error is
// only non-nil for context cancellation; pipeline failures land on the
// document status.
func (e *Engine) processDocument(ctx context.Context, doc *models.Document) error {
	doc.Status = models.StatusProcessing
	e.log.Event("Loading %s (OCR: %t)", doc.Filename, doc.UseOCR)

	src, err := e.source(doc)
	if err != nil {
		e.fail(doc, failure(LoadFailure, err))
		return nil
	}
	doc.PageCount = src.PageCount()
	doc.Pages = doc.Pages[:0]

	for i := 0; i < doc.PageCount; i++ {
		select {
		case <-ctx.Done():
			e.fail(doc, failure(ExtractionFailure, ctx.Err()))
			return ctx.Err()
		default:
		}
		e.emit(ProgressEvent{DocumentID: doc.ID, Filename: doc.Filename, Stage: models.StatusProcessing, Page: i + 1, PageCount: doc.PageCount})

		page, err := e.extractor.ExtractPage(ctx, src, i, doc.UseOCR)
		if err != nil {
			e.fail(doc, failure(ExtractionFailure, err))
			return nil
		}
		doc.Pages = append(doc.Pages, page)
	}

	doc.Status = models.StatusReady
	e.log.Event("Processed %s", doc.Filename)
	return nil
}

// TranslateAll runs batch translation over every ready document. Page
// batches are best-effort: a failed batch is logged and the document still
// completes as translated with the failed page's items left untranslated.
func (e *Engine) TranslateAll(ctx context.Context) error {
	ready := utils.Filter(e.documents, func(d *models.Document) bool {
		return d.Status == models.StatusReady
	})

	for _, doc := range ready {
		doc.Status = models.StatusTranslating
		e.log.Event("Translating %s...", doc.Filename)

		allowed := make(map[int]bool)
		for _, p := range ParsePageRange(doc.PageRange, len(doc.Pages)) {
			allowed[p] = true
		}

		for i := range doc.Pages {
			if err := ctx.Err(); err != nil {
				e.fail(doc, failure(TranslationFailure, err))
				return err
			}
			if !allowed[i+1] {
				continue
			}
			e.emit(ProgressEvent{DocumentID: doc.ID, Filename: doc.Filename, Stage: models.StatusTranslating, Page: i + 1, PageCount: len(doc.Pages)})
			e.translatePage(ctx, doc, &doc.Pages[i])
		}

		doc.Status = models.StatusTranslated
	}

	e.log.Event("All translations complete.")
	return nil
}

// translatePage batches the page's originals into one provider call and
// applies results back by position. Missing or empty results leave the item
// untranslated; a failed call is logged and the page is skipped.
func (e *Engine) translatePage(ctx context.Context, doc *models.Document, page *models.Page) {
	if len(page.Items) == 0 {
		return
	}

	texts := utils.Map(page.Items, func(item models.TextItem) string {
		return item.Original
	})

	translated, err := e.provider.Translate(ctx, texts, e.targetLang)
	if err != nil {
		e.log.Event("Translation failed for %s page %d: %v", doc.Filename, page.Index+1, err)
		return
	}

	for i := range page.Items {
		if i < len(translated) && translated[i] != "" {
			page.Items[i].Translated = translated[i]
		}
	}
}

// ExportAll re-renders every translated document and hands each page raster
// to the sink, returning the finalized artifacts in queue order. A failing
// document is logged and skipped; the remaining documents still export.
func (e *Engine) ExportAll(ctx context.Context) ([]export.Artifact, error) {
	completed := utils.Filter(e.documents, func(d *models.Document) bool {
		return d.Status == models.StatusTranslated
	})

	var artifacts []export.Artifact
	for _, doc := range completed {
		data, err := e.exportDocument(ctx, doc)
		if err != nil {
			if ctx.Err() != nil {
				return artifacts, ctx.Err()
			}
			e.log.Event("Export failed for %s: %v", doc.Filename, failure(ExportFailure, err))
			continue
		}
		artifacts = append(artifacts, export.Artifact{Filename: doc.Filename, Data: data})
		e.log.Event("Exported %s", export.TranslatedName(doc.Filename))
	}
	return artifacts, nil
}

func (e *Engine) exportDocument(ctx context.Context, doc *models.Document) ([]byte, error) {
	src, err := e.source(doc)
	if err != nil {
		return nil, err
	}

	for _, page := range doc.Pages {
		e.emit(ProgressEvent{DocumentID: doc.ID, Filename: doc.Filename, Stage: models.StatusTranslated, Page: page.Index + 1, PageCount: len(doc.Pages)})

		raster, err := e.composer.ComposePage(ctx, src, page)
		if err != nil {
			return nil, err
		}
		if err := e.sink.EmitPage(doc.ID, page.Index, raster); err != nil {
			return nil, err
		}
	}
	return e.sink.FinalizeDocument(doc.ID)
}

// Close releases all open document handles.
func (e *Engine) Close() error {
	var firstErr error
	for id, src := range e.sources {
		if err := src.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(e.sources, id)
	}
	return firstErr
}

func (e *Engine) source(doc *models.Document) (render.Source, error) {
	if src, ok := e.sources[doc.ID]; ok {
		return src, nil
	}
	src, err := e.open(doc.Source)
	if err != nil {
		return nil, err
	}
	e.sources[doc.ID] = src
	return src, nil
}

func (e *Engine) fail(doc *models.Document, f *Failure) {
	doc.Status = models.StatusError
	e.log.Event("Error processing %s: %v", doc.Filename, f)
}

func (e *Engine) emit(ev ProgressEvent) {
	if e.progress != nil {
		e.progress(ev)
	}
}
