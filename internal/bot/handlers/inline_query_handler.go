package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/tmdbot/internal/inline"
	"github.com/edgard/tmdbot/internal/metrics"
)

// NewInlineQueryHandler returns a handler answering inline queries with TMDB
// cards.
func NewInlineQueryHandler(deps HandlerDeps) bot.HandlerFunc {
	return inlineQueryHandler{deps}.Handle
}

type inlineQueryHandler struct {
	deps HandlerDeps
}

// Handle answers the query with one article per card. Nothing is sent when
// searching or rendering fails.
func (h inlineQueryHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "inline_query")

	if update.InlineQuery == nil {
		log.WarnContext(ctx, "Inline query handler received update without inline query", "update_id", update.ID)
		return
	}
	query := update.InlineQuery

	cards, err := h.deps.Dispatcher.Answer(ctx, query.Query)
	if err != nil {
		metrics.InlineQueriesTotal.WithLabelValues(metrics.ResultError).Inc()
		log.ErrorContext(ctx, "Failed to build inline results", "error", err, "inline_query_id", query.ID, "query", query.Query)
		return
	}

	_, err = b.AnswerInlineQuery(ctx, &bot.AnswerInlineQueryParams{
		InlineQueryID: query.ID,
		Results:       inline.Articles(cards),
		CacheTime:     h.deps.Config.Telegram.InlineCacheTime,
	})
	if err != nil {
		metrics.InlineQueriesTotal.WithLabelValues(metrics.ResultError).Inc()
		log.ErrorContext(ctx, "Failed to answer inline query", "error", err, "inline_query_id", query.ID)
		return
	}

	result := metrics.ResultOK
	if len(cards) == 0 {
		result = metrics.ResultEmpty
	}
	metrics.InlineQueriesTotal.WithLabelValues(result).Inc()
	log.DebugContext(ctx, "Answered inline query", "inline_query_id", query.ID, "results", len(cards))
}
