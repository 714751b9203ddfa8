// Package handlers contains Telegram bot command and callback handlers,
// along with their registration logic and middleware.
package handlers

import (
	"context"
	"log/slog"
	"runtime/debug"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Recover creates a middleware that stops a panic inside a handler from
// reaching the update loop. The panic is logged with its stack.
func Recover(logger *slog.Logger) tgbot.Middleware {
	log := logger.With("middleware", "Recover")
	return func(next tgbot.HandlerFunc) tgbot.HandlerFunc {
		return func(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
			defer func() {
				if r := recover(); r != nil {
					var updateID int64
					if update != nil {
						updateID = update.ID
					}
					log.ErrorContext(ctx, "Handler panicked", "update_id", updateID, "panic", r, "stack", string(debug.Stack()))
				}
			}()
			next(ctx, bot, update)
		}
	}
}
