package infrastructure

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ErrViewNotFound reports that the printable resume view never appeared
// in the rendered page.
var ErrViewNotFound = errors.New("resume view not found in rendered page")

// viewReadyTimeout bounds the wait for the #resume node before the
// print is abandoned.
const viewReadyTimeout = 10 * time.Second

// ChromedpRenderer prints a self-contained HTML view to an A4 PDF with
// a headless Chrome.
type ChromedpRenderer struct {
	chromePath    string
	renderTimeout time.Duration
}

func NewChromedpRenderer(chromePath string, renderTimeout time.Duration) *ChromedpRenderer {
	if renderTimeout <= 0 {
		renderTimeout = 60 * time.Second
	}
	return &ChromedpRenderer{chromePath: chromePath, renderTimeout: renderTimeout}
}

func (r *ChromedpRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, r.renderTimeout)
	defer cancelRun()

	// the view is navigated as a file URL so relative assets resolve
	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	if err := chromedp.Run(runCtx, chromedp.Navigate("file://"+htmlPath)); err != nil {
		return nil, err
	}

	waitCtx, cancelWait := context.WithTimeout(runCtx, viewReadyTimeout)
	defer cancelWait()
	if err := chromedp.Run(waitCtx, chromedp.WaitReady("#resume", chromedp.ByQuery)); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrViewNotFound
		}
		return nil, err
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm -> inches: 8.27 x 11.69
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
