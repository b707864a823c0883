package export

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Sink accepts one finished raster per page and packages each document into
// its exported artifact.
type Sink interface {
	EmitPage(documentID string, pageIndex int, raster []byte) error
	// FinalizeDocument returns the document's artifact bytes and releases
	// the collected pages.
	FinalizeDocument(documentID string) ([]byte, error)
}

// PDFSink assembles emitted page rasters into one image-based PDF per
// document, one page per raster.
type PDFSink struct {
	pages map[string]map[int][]byte
}

func NewPDFSink() *PDFSink {
	return &PDFSink{pages: make(map[string]map[int][]byte)}
}

func (s *PDFSink) EmitPage(documentID string, pageIndex int, raster []byte) error {
	if len(raster) == 0 {
		return fmt.Errorf("empty raster for document %s page %d", documentID, pageIndex)
	}
	if s.pages[documentID] == nil {
		s.pages[documentID] = make(map[int][]byte)
	}
	s.pages[documentID][pageIndex] = raster
	return nil
}

func (s *PDFSink) FinalizeDocument(documentID string) ([]byte, error) {
	pages := s.pages[documentID]
	if len(pages) == 0 {
		return nil, fmt.Errorf("no pages emitted for document %s", documentID)
	}

	indices := make([]int, 0, len(pages))
	for i := range pages {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	readers := make([]io.Reader, 0, len(indices))
	for _, i := range indices {
		readers = append(readers, bytes.NewReader(pages[i]))
	}

	var buf bytes.Buffer
	if err := api.ImportImages(nil, &buf, readers, nil, nil); err != nil {
		return nil, fmt.Errorf("failed to build PDF for document %s: %w", documentID, err)
	}

	delete(s.pages, documentID)
	return buf.Bytes(), nil
}
