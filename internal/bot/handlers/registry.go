package handlers

import (
	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/checklistbot/internal/telegram"
)

// RegisterAllCommands initializes and returns a map of all bot handlers.
// Every handler runs behind the Recover middleware.
func RegisterAllCommands(deps HandlerDeps) map[string]telegram.RegisteredHandler {
	handlers := make(map[string]telegram.RegisteredHandler)
	mw := []tgbot.Middleware{Recover(deps.Logger)}

	start := NewStartHandler(deps)
	handlers["/start"] = telegram.RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "start",
		Handler:     start,
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Middleware:  mw,
	}
	handlers["/today"] = telegram.RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "today",
		Handler:     start,
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Middleware:  mw,
	}
	handlers["/help"] = telegram.RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "help",
		Handler:     NewHelpHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Middleware:  mw,
	}
	// An empty prefix matches every callback; malformed data is rejected by the handler.
	handlers["callback"] = telegram.RegisteredHandler{
		HandlerType: tgbot.HandlerTypeCallbackQueryData,
		Pattern:     "",
		Handler:     NewActionHandler(deps),
		MatchType:   tgbot.MatchTypePrefix,
		Middleware:  mw,
	}

	return handlers
}

// MenuCommands lists the commands shown in the Telegram command menu.
func MenuCommands() []models.BotCommand {
	return []models.BotCommand{
		{Command: "start", Description: "Задачи на сегодня"},
		{Command: "today", Description: "Задачи на сегодня"},
		{Command: "help", Description: "Справка"},
	}
}
