package handlers

import (
	"log/slog"

	"github.com/edgard/checklistbot/internal/checklist"
	"github.com/edgard/checklistbot/internal/config"
)

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger   *slog.Logger
	Config   *config.Config
	Selector *checklist.Selector
	Recorder *checklist.Recorder
}
