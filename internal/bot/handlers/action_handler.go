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

const actionTimeout = 30 * time.Second

// NewActionHandler returns a handler for task button presses. It records the
// chosen result and edits the task message to show it.
func NewActionHandler(deps HandlerDeps) bot.HandlerFunc {
	return actionHandler{deps}.Handle
}

type actionHandler struct {
	deps HandlerDeps
}

// buttonPress is the part of a callback query the handler needs.
type buttonPress struct {
	QueryID   string
	ChatID    int64
	MessageID int
	Text      string
	Data      string
}

func (h actionHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "action")

	q := update.CallbackQuery
	if q == nil {
		log.WarnContext(ctx, "Action handler received update without callback query", "update_id", update.ID)
		return
	}

	press := buttonPress{QueryID: q.ID, Data: q.Data}
	switch {
	case q.Message.Message != nil:
		press.ChatID = q.Message.Message.Chat.ID
		press.MessageID = q.Message.Message.ID
		press.Text = q.Message.Message.Text
	case q.Message.InaccessibleMessage != nil:
		press.ChatID = q.Message.InaccessibleMessage.Chat.ID
		press.MessageID = q.Message.InaccessibleMessage.MessageID
	default:
		log.WarnContext(ctx, "Callback query has no message to update", "callback_query_id", q.ID)
		if err := telegram.NewMessenger(b).AnswerCallback(ctx, q.ID); err != nil {
			log.ErrorContext(ctx, "Failed to answer callback query", "error", err)
		}
		return
	}

	h.handlePress(ctx, telegram.NewMessenger(b), press)
}

func (h actionHandler) handlePress(ctx context.Context, m telegram.Messenger, press buttonPress) {
	log := h.deps.Logger.With("handler", "action", "chat_id", press.ChatID, "message_id", press.MessageID)
	msgs := h.deps.Config.Messages

	ctx, cancel := context.WithTimeout(ctx, actionTimeout)
	defer cancel()

	if err := m.AnswerCallback(ctx, press.QueryID); err != nil {
		log.WarnContext(ctx, "Failed to answer callback query", "error", err)
	}

	payload, err := callback.Parse(press.Data)
	if err != nil {
		log.WarnContext(ctx, "Rejected callback payload", "data", press.Data, "error", err)
		h.edit(ctx, m, press, msgs.ActionError)
		return
	}

	symbol := payload.Action.Symbol()
	if !h.deps.Recorder.Record(ctx, payload.Task, symbol) {
		h.edit(ctx, m, press, fmt.Sprintf(msgs.SaveFailedFormat, press.Text))
		return
	}

	log.InfoContext(ctx, "Task result recorded", "task", payload.Task, "action", payload.Action)
	h.edit(ctx, m, press, fmt.Sprintf(msgs.StatusFormat, press.Text, symbol))
}

func (h actionHandler) edit(ctx context.Context, m telegram.Messenger, press buttonPress, text string) {
	if err := m.EditMessageText(ctx, press.ChatID, press.MessageID, text); err != nil {
		h.deps.Logger.ErrorContext(ctx, "Failed to update task message", "chat_id", press.ChatID, "message_id", press.MessageID, "error", err)
	}
}
