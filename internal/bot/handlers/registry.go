package handlers

import (
	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// RegisteredHandler describes how a handler is matched and which middleware
// wraps it. When MatchFunc is set it takes precedence over HandlerType,
// Pattern and MatchType.
type RegisteredHandler struct {
	HandlerType tgbot.HandlerType
	Pattern     string
	Handler     tgbot.HandlerFunc
	Middleware  []tgbot.Middleware
	MatchType   tgbot.MatchType
	MatchFunc   tgbot.MatchFunc
}

// IsInlineQuery matches updates carrying an inline query.
func IsInlineQuery(update *models.Update) bool {
	return update.InlineQuery != nil
}

// RegisterAllCommands returns every handler the bot serves, keyed by name.
func RegisterAllCommands(deps HandlerDeps) map[string]RegisteredHandler {
	handlers := make(map[string]RegisteredHandler)
	common := []tgbot.Middleware{Recover(deps)}

	handlers["inline_query"] = RegisteredHandler{
		Handler:    NewInlineQueryHandler(deps),
		MatchFunc:  IsInlineQuery,
		Middleware: common,
	}
	handlers["/start"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "start",
		Handler:     NewStartHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Middleware:  common,
	}
	handlers["/help"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "help",
		Handler:     NewHelpHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Middleware:  common,
	}

	return handlers
}
