package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"

	"github.com/calG1/PDF-Translator/internal/geometry"
)

// basePointDPI is the PDF point resolution; rendering at scale s means
// rasterizing at s * 72 DPI so one point maps to s device pixels.
const basePointDPI = 72

// PDFDocument backs the Source capabilities with MuPDF for rasterization and
// a pure-Go reader for the positioned text stream.
type PDFDocument struct {
	doc    *fitz.Document
	reader *pdf.Reader
}

// Open loads a PDF from memory. The bytes must stay valid for the lifetime
// of the document.
func Open(data []byte) (Source, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		doc.Close()
		return nil, fmt.Errorf("failed to read PDF text structure: %w", err)
	}

	return &PDFDocument{doc: doc, reader: reader}, nil
}

func (d *PDFDocument) PageCount() int {
	return d.doc.NumPage()
}

func (d *PDFDocument) Close() error {
	return d.doc.Close()
}

func (d *PDFDocument) RenderPage(ctx context.Context, pageIndex int, scale float64) (*RenderedPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := d.doc.ImageDPI(pageIndex, basePointDPI*scale)
	if err != nil {
		return nil, fmt.Errorf("failed to render page %d: %w", pageIndex, err)
	}

	viewport, err := d.PageViewport(pageIndex, scale)
	if err != nil {
		return nil, err
	}

	return &RenderedPage{
		Image:    img,
		Viewport: viewport,
		Width:    img.Bounds().Dx(),
		Height:   img.Bounds().Dy(),
	}, nil
}

func (d *PDFDocument) PageViewport(pageIndex int, scale float64) (geometry.Matrix, error) {
	bounds, err := d.doc.Bound(pageIndex)
	if err != nil {
		return geometry.Matrix{}, fmt.Errorf("failed to get bounds for page %d: %w", pageIndex, err)
	}
	return geometry.Viewport(scale, float64(bounds.Dy())), nil
}

// TextContent reads the page's character stream and coalesces it into runs.
// The reader yields positioned fragments, frequently single glyphs; adjacent
// fragments sharing a font, size and baseline are merged into one run so
// items line up with what a reader perceives as a piece of text.
func (d *PDFDocument) TextContent(pageIndex int) (*TextContent, error) {
	page := d.reader.Page(pageIndex + 1)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d not found in text structure", pageIndex)
	}

	content := &TextContent{Styles: make(map[string]FontStyle)}
	var run *pendingRun
	flush := func() {
		if run != nil {
			content.Runs = append(content.Runs, run.finish())
			run = nil
		}
	}

	for _, frag := range page.Content().Text {
		if run != nil && !run.accepts(frag) {
			flush()
		}
		if run == nil {
			run = newPendingRun(frag)
		} else {
			run.append(frag)
		}
		if _, ok := content.Styles[frag.Font]; !ok {
			content.Styles[frag.Font] = FontStyle{FontFamily: frag.Font}
		}
	}
	flush()

	return content, nil
}

// pendingRun accumulates adjacent fragments of one text run.
type pendingRun struct {
	text     []byte
	font     string
	fontSize float64
	x, y     float64
	right    float64
}

func newPendingRun(frag pdf.Text) *pendingRun {
	return &pendingRun{
		text:     []byte(frag.S),
		font:     frag.Font,
		fontSize: frag.FontSize,
		x:        frag.X,
		y:        frag.Y,
		right:    frag.X + frag.W,
	}
}

// accepts reports whether the fragment continues this run: same font and
// size, same baseline, and no gap wider than a quarter of the font size.
func (r *pendingRun) accepts(frag pdf.Text) bool {
	if frag.Font != r.font || frag.FontSize != r.fontSize || frag.Y != r.y {
		return false
	}
	gap := frag.X - r.right
	return gap >= -r.fontSize*0.25 && gap < r.fontSize*0.25
}

func (r *pendingRun) append(frag pdf.Text) {
	r.text = append(r.text, frag.S...)
	if frag.X+frag.W > r.right {
		r.right = frag.X + frag.W
	}
}

func (r *pendingRun) finish() TextRun {
	return TextRun{
		Text:      string(r.text),
		Transform: geometry.Matrix{r.fontSize, 0, 0, r.fontSize, r.x, r.y},
		FontName:  r.font,
		RawWidth:  r.right - r.x,
	}
}
