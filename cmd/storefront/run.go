package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/bookstore/storefront/internal/events"
	"github.com/bookstore/storefront/internal/health"
	"github.com/bookstore/storefront/internal/metrics"
	"github.com/bookstore/storefront/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func runStorefront(ctx context.Context) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e.log.Info("Storefront starting", zap.String("storage", e.cfg.StorageDriver))
	m := metrics.New()

	// Order notifications are optional
	var notifier events.Notifier = events.Nop{}
	var broker health.Broker
	if e.cfg.RabbitMQURL != "" {
		publisher, err := events.NewPublisher(e.cfg.RabbitMQURL, e.log)
		if err != nil {
			e.log.Warn("RabbitMQ unavailable, order notifications disabled", zap.Error(err))
		} else {
			defer publisher.Close()
			notifier, broker = publisher, publisher
		}
	}

	if e.cfg.HTTPHealthPort != "" {
		srv := health.NewServer(e.cfg.HTTPHealthPort, health.NewHandler(e.store, broker, m, e.log), e.log)
		srv.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				e.log.Error("HTTP server shutdown error", zap.Error(err))
			}
		}()
	}

	model, err := tui.New(ctx, tui.Options{
		Store:           e.store,
		Catalog:         e.catalog,
		Notifier:        notifier,
		Metrics:         m,
		DefaultLanguage: e.cfg.DefaultLanguage,
		Log:             e.log,
	})
	if err != nil {
		return fmt.Errorf("failed to start storefront: %w", err)
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("storefront exited: %w", err)
	}

	e.log.Info("Storefront stopped")
	return nil
}
