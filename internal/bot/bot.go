// Package bot manages the lifecycle of the checklist bot: it prepares the
// task and log sheets and runs the Telegram update loop until shutdown.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

const ensureSheetTimeout = 30 * time.Second

// Listener receives Telegram updates until ctx is cancelled.
// *github.com/go-telegram/bot.Bot satisfies it.
type Listener interface {
	Start(ctx context.Context)
}

// SheetPreparer creates its sheet when it is missing.
type SheetPreparer interface {
	EnsureSheet(ctx context.Context) error
}

// Bot represents the main bot application and manages its components' lifecycle.
type Bot struct {
	logger   *slog.Logger
	listener Listener
	sheets   []SheetPreparer
}

// NewBot creates a new instance of the bot orchestrator.
func NewBot(logger *slog.Logger, listener Listener, sheets ...SheetPreparer) *Bot {
	return &Bot{
		logger:   logger.With("component", "bot_orchestrator"),
		listener: listener,
		sheets:   sheets,
	}
}

// Run prepares the sheets and runs the update loop, returning when ctx is
// cancelled. A failure to prepare a sheet is logged, not fatal: the handlers
// report it per command or button press.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("Starting bot orchestrator...")

	ensureCtx, cancel := context.WithTimeout(ctx, ensureSheetTimeout)
	for _, sheet := range b.sheets {
		if err := sheet.EnsureSheet(ensureCtx); err != nil {
			b.logger.Warn("Failed to prepare sheet", "error", err)
		}
	}
	cancel()
	b.logger.Info("Sheets prepared", "count", len(b.sheets))

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		b.logger.Info("Starting Telegram bot listener...")

		b.listener.Start(gCtx)
		b.logger.Info("Telegram bot listener stopped.")

		if gCtx.Err() == nil {
			b.logger.Warn("Telegram bot listener stopped unexpectedly without context cancellation.")
			return fmt.Errorf("telegram listener stopped unexpectedly")
		}
		return nil
	})

	b.logger.Info("Bot orchestrator running. Waiting for shutdown signal or error...")
	err := g.Wait()

	if err != nil && !errors.Is(err, context.Canceled) {
		b.logger.Error("Bot orchestrator stopped due to error", "error", err)
		return err
	}

	b.logger.Info("Bot orchestrator stopped gracefully.")
	return nil
}
