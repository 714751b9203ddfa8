package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/checklistbot/internal/callback"
	"github.com/edgard/checklistbot/internal/telegram"
)

const listTimeout = time.Minute

// NewStartHandler returns a handler that lists today's tasks, one message
// per task with done/cancel buttons. It serves /start and /today.
func NewStartHandler(deps HandlerDeps) bot.HandlerFunc {
	return startHandler{deps}.Handle
}

// startHandler processes the listing commands using injected dependencies.
type startHandler struct {
	deps HandlerDeps
}

func (h startHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "start")

	if update.Message == nil {
		log.WarnContext(ctx, "Start handler received update with nil message", "update_id", update.ID)
		return
	}

	h.listTasks(ctx, telegram.NewMessenger(b), update.Message.Chat.ID)
}

func (h startHandler) listTasks(ctx context.Context, m telegram.Messenger, chatID int64) {
	log := h.deps.Logger.With("handler", "start", "chat_id", chatID)
	msgs := h.deps.Config.Messages

	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	if err := h.deps.Selector.EnsureSheet(ctx); err != nil {
		h.sendListError(ctx, m, chatID, err)
		return
	}

	tasks := h.deps.Selector.Today(ctx)
	log.InfoContext(ctx, "Listing today's tasks", "count", len(tasks))

	if len(tasks) == 0 {
		if err := m.SendMessage(ctx, chatID, msgs.NoTasks); err != nil {
			log.ErrorContext(ctx, "Failed to send no-tasks message", "error", err)
		}
		return
	}

	for _, task := range tasks {
		err := m.SendMessage(ctx, chatID, fmt.Sprintf(msgs.TaskFormat, task), h.taskButtons(task)...)
		if err != nil {
			log.ErrorContext(ctx, "Failed to send task message", "task", task, "error", err)
			h.sendListError(ctx, m, chatID, err)
			return
		}
	}
}

// sendListError reports a fault that stopped the listing to the chat.
func (h startHandler) sendListError(ctx context.Context, m telegram.Messenger, chatID int64, cause error) {
	text := fmt.Sprintf(h.deps.Config.Messages.ListErrorFormat, cause)
	if err := m.SendMessage(ctx, chatID, text); err != nil {
		h.deps.Logger.ErrorContext(ctx, "Failed to send error message", "chat_id", chatID, "error", err)
	}
}

func (h startHandler) taskButtons(task string) []telegram.Button {
	msgs := h.deps.Config.Messages
	return []telegram.Button{
		{Text: msgs.DoneButton, Data: callback.Build(callback.ActionDone, task)},
		{Text: msgs.CancelButton, Data: callback.Build(callback.ActionCancel, task)},
	}
}
