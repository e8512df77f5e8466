// Package bot orchestrates the lifecycle of the Telegram listener, the task
// scheduler and the metrics server.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Listener receives Telegram updates until its context is cancelled.
// *github.com/go-telegram/bot.Bot implements it.
type Listener interface {
	Start(ctx context.Context)
}

// MetricsServer serves metrics until its context is cancelled.
type MetricsServer interface {
	Run(ctx context.Context) error
}

// Bot owns the long-running components of the application.
type Bot struct {
	logger    *slog.Logger
	listener  Listener
	scheduler *Scheduler
	metrics   MetricsServer
}

// NewBot creates the orchestrator. metrics may be nil when the metrics
// endpoint is disabled.
func NewBot(logger *slog.Logger, listener Listener, scheduler *Scheduler, metrics MetricsServer) *Bot {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bot{
		logger:    logger.With("component", "bot_orchestrator"),
		listener:  listener,
		scheduler: scheduler,
		metrics:   metrics,
	}
}

// Run starts every component and blocks until ctx is cancelled or one of
// them fails, in which case the others are stopped too.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("Starting bot orchestrator...")

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		b.logger.Info("Starting Telegram bot listener...")
		b.listener.Start(gCtx)
		b.logger.Info("Telegram bot listener stopped.")

		if gCtx.Err() == nil {
			return fmt.Errorf("telegram listener stopped unexpectedly")
		}
		return nil
	})

	g.Go(func() error {
		if err := b.scheduler.Start(gCtx); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}

		<-gCtx.Done()
		b.logger.Info("Shutdown signal received, stopping scheduler...")
		if err := b.scheduler.Stop(); err != nil {
			b.logger.Error("Error stopping scheduler", "error", err)
		}
		return nil
	})

	if b.metrics != nil {
		g.Go(func() error {
			return b.metrics.Run(gCtx)
		})
	}

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		b.logger.Error("Bot orchestrator stopped due to error", "error", err)
		return err
	}

	b.logger.Info("Bot orchestrator stopped gracefully.")
	return nil
}
