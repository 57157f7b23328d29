package receipt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/tiendapos/terminal/internal/domain/trade"
)

// Printer renders a created order to a PDF ticket in the output directory
type Printer struct {
	renderer *PDFRenderer
	dir      string
	logger   *zap.Logger
	now      func() time.Time
}

// NewPrinter creates a printer writing tickets under dir
func NewPrinter(renderer *PDFRenderer, dir string, logger *zap.Logger) *Printer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Printer{
		renderer: renderer,
		dir:      dir,
		logger:   logger,
		now:      time.Now,
	}
}

// Print renders the order's receipt and writes it to disk
func (p *Printer) Print(ctx context.Context, order *trade.Order) error {
	data, err := p.renderer.Render(ctx, FromOrder(order, p.now()))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(p.dir, 0755); err != nil {
		return fmt.Errorf("receipt: failed to create output dir: %w", err)
	}
	path := filepath.Join(p.dir, fmt.Sprintf("ticket-%s.pdf", order.ID))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("receipt: failed to write %s: %w", path, err)
	}

	p.logger.Info("ticket written", zap.String("path", path))
	return nil
}
