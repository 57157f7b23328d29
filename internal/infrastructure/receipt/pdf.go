package receipt

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const (
	defaultTimeout = 30 * time.Second

	// 80mm thermal roll; the height is oversized so Chrome never paginates
	paperWidthMM  = 80.0
	paperHeightMM = 3000.0
)

// RendererConfig contains configuration for the PDF renderer
type RendererConfig struct {
	// Timeout for rendering operations
	Timeout time.Duration
	// RemoteURL points at a remote Chrome instance; empty launches a local one
	RemoteURL string
	// NoSandbox runs Chrome without sandbox (required for Docker/root)
	NoSandbox bool
	// Logger for debug output
	Logger *zap.Logger
}

// PDFRenderer converts a rendered receipt into a PDF ticket using the Chrome
// DevTools Protocol.
type PDFRenderer struct {
	config      *RendererConfig
	logger      *zap.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// NewPDFRenderer creates a PDF renderer backed by a headless Chrome
func NewPDFRenderer(config *RendererConfig) *PDFRenderer {
	if config == nil {
		config = &RendererConfig{}
	}
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &PDFRenderer{config: config, logger: logger}
	r.initAllocator()
	return r
}

func (r *PDFRenderer) initAllocator() {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if r.config.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}

	if r.config.RemoteURL != "" {
		r.allocCtx, r.allocCancel = chromedp.NewRemoteAllocator(context.Background(), r.config.RemoteURL)
	} else {
		r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	}
}

// Render converts the receipt to PDF bytes
func (r *PDFRenderer) Render(ctx context.Context, rcpt Receipt) ([]byte, error) {
	html, err := RenderHTML(rcpt)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	browserCtx, browserCancel := chromedp.NewContext(r.allocCtx,
		chromedp.WithLogf(func(format string, args ...interface{}) {
			r.logger.Debug(fmt.Sprintf(format, args...))
		}),
	)
	defer browserCancel()

	var pdfData []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(mmToInches(paperWidthMM)).
				WithPaperHeight(mmToInches(paperHeightMM)).
				WithMarginTop(mmToInches(4)).
				WithMarginRight(mmToInches(4)).
				WithMarginBottom(mmToInches(4)).
				WithMarginLeft(mmToInches(4)).
				WithScale(1.0).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfData = data
			return nil
		}),
	)

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("receipt: rendering timed out after %v: %w", r.config.Timeout, err)
		}
		r.logger.Error("receipt rendering failed", zap.Error(err))
		return nil, fmt.Errorf("receipt: chromedp execution failed: %w", err)
	}
	if len(pdfData) == 0 {
		return nil, fmt.Errorf("receipt: generated PDF is empty")
	}

	r.logger.Info("receipt rendered",
		zap.String("order_id", rcpt.OrderID),
		zap.Int("bytes", len(pdfData)),
		zap.Duration("duration", time.Since(start)))

	return pdfData, nil
}

// Close releases resources held by the renderer
func (r *PDFRenderer) Close() error {
	if r.allocCancel != nil {
		r.allocCancel()
	}
	return nil
}

func mmToInches(mm float64) float64 {
	return mm / 25.4
}
