package export

import (
	"context"
	"fmt"

	"resume-builder/internal/model"
	"resume-builder/internal/templates"
)

// DefaultPDFFilename names the download when the caller supplies none.
const DefaultPDFFilename = "resume.pdf"

// PDFContentType is the MIME type of the produced byte stream.
const PDFContentType = "application/pdf"

// Renderer turns a printable HTML view into PDF bytes. The concrete
// implementation lives in pkg/infrastructure.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// PDFExporter is a pure transformation from a document snapshot plus a
// template preset to a single A4-paginated PDF. It mutates no shared
// state; failures surface to the caller without retry.
type PDFExporter struct {
	renderer Renderer
}

func NewPDFExporter(r Renderer) *PDFExporter {
	return &PDFExporter{renderer: r}
}

func (e *PDFExporter) Export(ctx context.Context, doc model.ResumeDocument, tpl templates.Template) ([]byte, error) {
	html, err := RenderView(doc, tpl)
	if err != nil {
		return nil, fmt.Errorf("render view: %w", err)
	}
	return e.renderer.RenderHTMLToPDF(ctx, html)
}
