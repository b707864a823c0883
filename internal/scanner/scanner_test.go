package scanner_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/calG1/PDF-Translator/internal/scanner"
	"github.com/calG1/PDF-Translator/pkg/logger"
)

var _ = Describe("DirectoryScanner", func() {
	var (
		s   *scanner.DirectoryScanner
		dir string
		ctx context.Context
	)

	BeforeEach(func() {
		s = scanner.New(logger.New(logger.WithOutput(GinkgoWriter)))
		dir = GinkgoT().TempDir()
		ctx = context.Background()
	})

	touch := func(rel string) {
		path := filepath.Join(dir, rel)
		Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
		Expect(os.WriteFile(path, []byte("%PDF"), 0o644)).To(Succeed())
	}

	It("should find PDFs in nested directories", func() {
		touch("a.pdf")
		touch("nested/b.pdf")
		touch("nested/notes.txt")

		pdfs, err := s.FindPDFs(ctx, dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(pdfs).To(HaveLen(2))

		var rels []string
		for _, p := range pdfs {
			rels = append(rels, filepath.ToSlash(p.RelativePath))
		}
		Expect(rels).To(ConsistOf("a.pdf", "nested/b.pdf"))
	})

	It("should error when the directory holds no PDFs", func() {
		touch("nested/notes.txt")
		_, err := s.FindPDFs(ctx, dir)
		Expect(err).To(MatchError(ContainSubstring("no PDF files found")))
	})

	It("should stop when the context is cancelled", func() {
		touch("a.pdf")
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := s.FindPDFs(cancelled, dir)
		Expect(err).To(MatchError(context.Canceled))
	})
})
