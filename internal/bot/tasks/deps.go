// Package tasks implements the scheduled background tasks of the bot.
package tasks

import (
	"context"
	"log/slog"
)

// Pinger checks that TMDB is reachable. *tmdb.Client implements it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TaskDeps contains the dependencies shared by scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	TMDB   Pinger
}
