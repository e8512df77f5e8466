// Package handlers contains the Telegram inline query and command handlers,
// their registration table and middleware.
package handlers

import (
	"context"
	"runtime/debug"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Recover stops a panicking handler from taking down the polling loop. The
// panic is logged with its stack and the update is dropped.
func Recover(deps HandlerDeps) tgbot.Middleware {
	return func(next tgbot.HandlerFunc) tgbot.HandlerFunc {
		return func(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
			defer func() {
				if r := recover(); r != nil {
					deps.Logger.With("middleware", "Recover").ErrorContext(ctx, "Recovered from handler panic",
						"update_id", update.ID,
						"panic", r,
						"stack", string(debug.Stack()),
					)
				}
			}()
			next(ctx, bot, update)
		}
	}
}
