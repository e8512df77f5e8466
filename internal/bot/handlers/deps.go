package handlers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/edgard/tmdbot/internal/config"
	"github.com/edgard/tmdbot/internal/inline"
)

// InlineAnswerer turns an inline query text into cards. *inline.Dispatcher
// implements it.
type InlineAnswerer interface {
	Answer(ctx context.Context, query string) ([]inline.Card, error)
}

// HandlerDeps provides dependencies for Telegram handlers.
type HandlerDeps struct {
	Logger     *slog.Logger
	Config     *config.Config
	Dispatcher InlineAnswerer
}

// botname substitutes the bot's @username for the @botname placeholder.
func (d HandlerDeps) botname(text string) string {
	if d.Config.Telegram.BotInfo == nil || d.Config.Telegram.BotInfo.Username == "" {
		return text
	}
	return strings.ReplaceAll(text, "@botname", "@"+d.Config.Telegram.BotInfo.Username)
}
