// Package scanner walks a directory tree collecting the PDF files to feed
// into the translation queue.
package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/calG1/PDF-Translator/pkg/logger"
)

type PDFFile struct {
	AbsolutePath string
	RelativePath string
}

type DirectoryScanner struct {
	logger *logger.Logger
}

func New(logger *logger.Logger) *DirectoryScanner {
	return &DirectoryScanner{logger: logger}
}

// FindPDFs returns every .pdf under dir in walk order.
func (s *DirectoryScanner) FindPDFs(ctx context.Context, dir string) ([]PDFFile, error) {
	var pdfs []PDFFile

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			s.logger.Debug("Scanning directory: %s", path)
			return nil
		}

		if filepath.Ext(path) != ".pdf" {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			relPath = path
		}

		pdfs = append(pdfs, PDFFile{AbsolutePath: path, RelativePath: relPath})
		return nil
	})

	if err != nil {
		return nil, err
	}

	if len(pdfs) == 0 {
		return nil, fmt.Errorf("no PDF files found in %s or its subdirectories", dir)
	}

	return pdfs, nil
}
