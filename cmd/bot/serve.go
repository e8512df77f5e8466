package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/edgard/tmdbot/internal/bot"
	"github.com/edgard/tmdbot/internal/bot/handlers"
	"github.com/edgard/tmdbot/internal/bot/tasks"
	"github.com/edgard/tmdbot/internal/config"
	"github.com/edgard/tmdbot/internal/inline"
	"github.com/edgard/tmdbot/internal/logger"
	"github.com/edgard/tmdbot/internal/metrics"
	"github.com/edgard/tmdbot/internal/render"
	"github.com/edgard/tmdbot/internal/telegram"
	"github.com/edgard/tmdbot/internal/telemetry"
	"github.com/edgard/tmdbot/internal/tmdb"
)

const serviceName = "tmdbot"

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Answer inline queries until interrupted (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath(cmd))
		},
	}
}

// newPipeline builds the TMDB client and the dispatcher that turns query text
// into cards.
func newPipeline(cfg *config.Config, log *slog.Logger) (*tmdb.Client, *inline.Dispatcher, error) {
	client, err := tmdb.NewClient(tmdb.Config{
		Token:    cfg.TMDB.Token,
		BaseURL:  cfg.TMDB.BaseURL,
		Language: cfg.TMDB.Language,
		Timeout:  cfg.TMDB.Timeout,
		Logger:   log,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create TMDB client: %w", err)
	}

	renderer := render.NewRenderer(client, log)
	dispatcher := inline.NewDispatcher(client, inline.NewAssembler(renderer, log), log)
	return client, dispatcher, nil
}

// runServe wires every component, runs until ctx is cancelled and returns an
// error only when the bot stopped for another reason.
func runServe(ctx context.Context, path string) error {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		slog.Error("Failed to load configuration", "path", path, "error", err)
		return err
	}

	log := logger.NewLogger(cfg.Logger.Level, cfg.Logger.JSON)
	log.Info("Logger initialized", "level", cfg.Logger.Level, "json", cfg.Logger.JSON)

	shutdownTracing, err := telemetry.Init(ctx, serviceName, log)
	if err != nil {
		log.Error("Failed to initialize tracing", "error", err)
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Warn("Failed to flush traces", "error", err)
		}
	}()

	metrics.Register(prometheus.DefaultRegisterer)

	client, dispatcher, err := newPipeline(cfg, log)
	if err != nil {
		log.Error("Failed to build search pipeline", "error", err)
		return err
	}

	hDeps := handlers.HandlerDeps{
		Logger:     log,
		Config:     cfg,
		Dispatcher: dispatcher,
	}
	tDeps := tasks.TaskDeps{
		Logger: log,
		TMDB:   client,
	}

	tg, err := telegram.NewTelegramBot(cfg.Telegram.Token, log, tgbot.WithMiddlewares(logger.Middleware(log)))
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return err
	}

	cfg.Telegram.BotInfo, err = tg.GetMe(ctx)
	if err != nil {
		log.Error("Failed to get bot info", "error", err)
		return err
	}
	log.Info("Retrieved bot info", "bot_id", cfg.Telegram.BotInfo.ID, "bot_username", cfg.Telegram.BotInfo.Username)

	if err := telegram.RegisterHandlers(tg, log, handlers.RegisterAllCommands(hDeps)); err != nil {
		log.Error("Failed to register Telegram handlers", "error", err)
		return err
	}

	sched, err := bot.NewScheduler(log, &cfg.Scheduler, tasks.RegisterAllTasks(tDeps))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return err
	}

	var metricsServer bot.MetricsServer
	if cfg.Metrics.Addr != "" {
		metricsServer = metrics.NewServer(cfg.Metrics.Addr, prometheus.DefaultGatherer, log)
	}

	app := bot.NewBot(log, tg, sched, metricsServer)

	log.Info("Starting bot...")
	runErr := app.Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		return runErr
	}

	log.Info("Bot stopped gracefully.")
	return nil
}
