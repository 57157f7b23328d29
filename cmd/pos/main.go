package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	appboard "github.com/tiendapos/terminal/internal/application/board"
	appcheckout "github.com/tiendapos/terminal/internal/application/checkout"
	"github.com/tiendapos/terminal/internal/domain/trade"
	"github.com/tiendapos/terminal/internal/infrastructure/api"
	"github.com/tiendapos/terminal/internal/infrastructure/cache"
	"github.com/tiendapos/terminal/internal/infrastructure/config"
	"github.com/tiendapos/terminal/internal/infrastructure/logger"
	"github.com/tiendapos/terminal/internal/infrastructure/receipt"
	"github.com/tiendapos/terminal/internal/infrastructure/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync(log)

	log.Info("starting terminal",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("backend", cfg.API.BaseURL))

	sess := session.New(cfg.Session.File, log)
	if err := sess.Load(); err != nil {
		return err
	}

	client, err := api.NewClient(cfg.API.BaseURL, sess,
		api.WithTimeout(cfg.API.Timeout),
		api.WithMaxResponseSize(cfg.API.MaxResponseSize),
		api.WithLogger(log),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if sess.IsAuthenticated() {
		user, err := client.CheckToken(ctx, sess.Token())
		if err != nil {
			log.Warn("stored session rejected by backend, clearing", zap.Error(err))
			if err := sess.Clear(); err != nil {
				return err
			}
		} else {
			log.Info("session restored", zap.String("operator", user.Name))
		}
	}

	orderCache := cache.NewOrderCache(
		cache.WithTTL(cfg.Board.CacheTTL),
		cache.WithLogger(log),
	)
	defer orderCache.Close()

	boardSvc := appboard.NewService(client,
		appboard.WithLogger(log),
		appboard.WithPageSize(cfg.Board.PageSize),
		appboard.WithDateFilter(trade.DateFilter(cfg.Board.DateFilter)),
		appboard.WithCache(orderCache),
	)
	boardSvc.SetStoreFilter(sess.StoreID())

	checkoutOpts := []appcheckout.ServiceOption{
		appcheckout.WithLogger(log),
		appcheckout.WithCustomerAPI(client),
	}
	var renderer *receipt.PDFRenderer
	if cfg.Receipt.PDFEnabled {
		renderer = receipt.NewPDFRenderer(&receipt.RendererConfig{
			Timeout:   cfg.Receipt.Timeout,
			RemoteURL: cfg.Receipt.RemoteURL,
			NoSandbox: cfg.Receipt.NoSandbox,
			Logger:    log,
		})
		defer renderer.Close()
		printer := receipt.NewPrinter(renderer, cfg.Receipt.OutputDir, log)
		checkoutOpts = append(checkoutOpts, appcheckout.WithReceiptPrinter(printer))
	}
	checkoutSvc := appcheckout.NewService(client, checkoutOpts...)
	checkoutSvc.SelectStore(sess.StoreID())

	if sess.IsAuthenticated() {
		if err := boardSvc.Load(ctx); err != nil {
			log.Warn("initial board load failed", zap.Error(err))
		} else {
			logBoard(log, boardSvc)
		}
	} else {
		log.Info("not logged in, board idle until login")
	}

	ticker := time.NewTicker(cfg.Board.CacheTTL)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("shutting down")
			return nil
		case <-ticker.C:
			if !sess.IsAuthenticated() {
				continue
			}
			if err := boardSvc.Refresh(ctx); err != nil {
				log.Warn("board refresh failed", zap.Error(err))
				continue
			}
			logBoard(log, boardSvc)
		}
	}
}

func logBoard(log *zap.Logger, svc *appboard.Service) {
	grouped := svc.Board().Grouped()
	fields := make([]zap.Field, 0, len(grouped)+1)
	for _, status := range trade.AllStatuses() {
		fields = append(fields, zap.Int(status.String(), len(grouped[status])))
	}
	fields = append(fields, zap.Int("total", svc.Total()))
	log.Info("board", fields...)
}
