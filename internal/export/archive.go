package export

import (
	"archive/zip"
	"fmt"
	"io"
	"regexp"
)

var pdfSuffix = regexp.MustCompile(`(?i)\.pdf$`)

// Artifact is one exported document ready for packaging.
type Artifact struct {
	Filename string
	Data     []byte
}

// TranslatedName derives the artifact filename from the source filename.
func TranslatedName(filename string) string {
	return pdfSuffix.ReplaceAllString(filename, "") + "_translated.pdf"
}

// WriteArchive bundles the artifacts into a single zip in input order.
func WriteArchive(w io.Writer, artifacts []Artifact) error {
	zw := zip.NewWriter(w)
	for _, a := range artifacts {
		f, err := zw.Create(TranslatedName(a.Filename))
		if err != nil {
			return fmt.Errorf("failed to add %s to archive: %w", a.Filename, err)
		}
		if _, err := f.Write(a.Data); err != nil {
			return fmt.Errorf("failed to write %s to archive: %w", a.Filename, err)
		}
	}
	return zw.Close()
}
