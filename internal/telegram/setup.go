// Package telegram creates the Telegram bot client and registers handlers on it.
package telegram

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/go-telegram/bot"

	"github.com/edgard/tmdbot/internal/bot/handlers"
)

// NewTelegramBot creates a new Telegram bot instance using the go-telegram/bot library.
func NewTelegramBot(token string, logger *slog.Logger, opts ...bot.Option) (*bot.Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "telegram_bot")

	b, err := bot.New(token, opts...)
	if err != nil {
		log.Error("Failed to create Telegram bot instance", "error", err)
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	log.Info("Telegram bot instance created", "token_prefix", tokenPrefix(token))
	return b, nil
}

func tokenPrefix(token string) string {
	if len(token) <= 8 {
		return "..."
	}
	return token[:8] + "..."
}

// Registrar is the subset of *bot.Bot used for handler registration.
type Registrar interface {
	RegisterHandler(handlerType bot.HandlerType, pattern string, matchType bot.MatchType, f bot.HandlerFunc, m ...bot.Middleware) string
	RegisterHandlerMatchFunc(matchFunc bot.MatchFunc, f bot.HandlerFunc, m ...bot.Middleware) string
}

// applyMiddleware wraps handler so the first middleware in mw is the outermost.
func applyMiddleware(handler bot.HandlerFunc, mw []bot.Middleware) bot.HandlerFunc {
	for i := len(mw) - 1; i >= 0; i-- {
		handler = mw[i](handler)
	}
	return handler
}

// RegisterHandlers registers every handler in registeredHandlers, applying its
// middleware. Handlers with a MatchFunc are matched by it; the rest by
// HandlerType, Pattern and MatchType.
func RegisterHandlers(b Registrar, logger *slog.Logger, registeredHandlers map[string]handlers.RegisteredHandler) error {
	if b == nil {
		return fmt.Errorf("bot instance cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "handler_registry")

	if len(registeredHandlers) == 0 {
		log.Warn("No handlers provided for registration.")
		return nil
	}

	names := make([]string, 0, len(registeredHandlers))
	for name := range registeredHandlers {
		names = append(names, name)
	}
	sort.Strings(names)

	registered := 0
	for _, name := range names {
		regHandler := registeredHandlers[name]
		if regHandler.Handler == nil {
			log.Warn("Skipping registration for nil handler", "name", name)
			continue
		}

		finalHandler := applyMiddleware(regHandler.Handler, regHandler.Middleware)
		if regHandler.MatchFunc != nil {
			b.RegisterHandlerMatchFunc(regHandler.MatchFunc, finalHandler)
		} else {
			b.RegisterHandler(regHandler.HandlerType, regHandler.Pattern, regHandler.MatchType, finalHandler)
		}
		registered++
		log.Debug("Registered handler", "name", name, "pattern", regHandler.Pattern, "match_func", regHandler.MatchFunc != nil, "middleware_count", len(regHandler.Middleware))
	}

	log.Info("Registered Telegram handlers", "count", registered)
	return nil
}
