// Package main contains the entrypoint for the checklist Telegram bot.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // Timezone lookups must work in minimal containers.

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/checklistbot/internal/bot"
	"github.com/edgard/checklistbot/internal/bot/handlers"
	"github.com/edgard/checklistbot/internal/checklist"
	"github.com/edgard/checklistbot/internal/config"
	"github.com/edgard/checklistbot/internal/logger"
	"github.com/edgard/checklistbot/internal/sheets"
	"github.com/edgard/checklistbot/internal/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop() // Ensure context cancellation is signaled before exit
	os.Exit(exitCode)
}

// run initializes and starts all application components (config, logger,
// spreadsheet, bot), handles graceful shutdown, and returns an exit code.
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to optional configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Logger.Level, cfg.Logger.JSON)
	slog.SetDefault(log)
	log.Info("Logger initialized", "level", cfg.Logger.Level, "json", cfg.Logger.JSON)

	loc, err := cfg.Location()
	if err != nil {
		log.Error("Invalid timezone", "timezone", cfg.Timezone, "error", err)
		return 1
	}

	store, err := sheets.New(ctx, cfg.Sheets, log)
	if err != nil {
		log.Error("Failed to connect to Google Sheets", "spreadsheet_id", cfg.Sheets.SpreadsheetID, "error", err)
		return 1
	}

	selector := checklist.NewSelector(store, cfg.Sheets.TasksSheet, log, checklist.WithLocation(loc))
	recorder := checklist.NewRecorder(store, cfg.Sheets.LogSheet, log, checklist.WithLocation(loc))

	hDeps := handlers.HandlerDeps{
		Logger:   log,
		Config:   cfg,
		Selector: selector,
		Recorder: recorder,
	}

	botOpts := []tgbot.Option{
		tgbot.WithMiddlewares(logger.Middleware(log)),
		tgbot.WithDefaultHandler(func(context.Context, *tgbot.Bot, *models.Update) {}),
	}
	tg, err := telegram.NewTelegramBot(cfg.Telegram.Token, log, botOpts...)
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return 1
	}

	// Retrieve bot info and store it in the config for runtime use
	cfg.Telegram.BotInfo, err = tg.GetMe(ctx)
	if err != nil {
		log.Error("Failed to get bot info", "error", err)
		return 1
	}
	log.Info("Retrieved bot info", "bot_id", cfg.Telegram.BotInfo.ID, "bot_username", cfg.Telegram.BotInfo.Username)

	if err := telegram.RegisterHandlers(tg, log, handlers.RegisterAllCommands(hDeps)); err != nil {
		log.Error("Failed to register Telegram handlers", "error", err)
		return 1
	}
	if err := telegram.SetCommands(ctx, tg, handlers.MenuCommands()); err != nil {
		log.Warn("Failed to publish command menu", "error", err)
	}

	app := bot.NewBot(log, tg, selector, recorder)

	log.Info("Starting bot...", "tasks_sheet", cfg.Sheets.TasksSheet, "log_sheet", cfg.Sheets.LogSheet, "timezone", loc.String())
	runErr := app.Run(ctx) // Run blocks until context is cancelled or an error occurs
	log.Info("Bot run loop finished. Initiating shutdown...")

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		// Allow logs to flush before exiting on error
		time.Sleep(time.Second)
		return 1
	}

	log.Info("Bot stopped gracefully.")
	return 0
}
