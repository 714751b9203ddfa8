package telegram

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Button is an inline keyboard button carrying callback data.
type Button struct {
	Text string
	Data string
}

// Messenger is the subset of the Bot API used by the handlers.
type Messenger interface {
	// SendMessage posts text to the chat with the buttons laid out in one row.
	SendMessage(ctx context.Context, chatID int64, text string, buttons ...Button) error

	// EditMessageText replaces the text of a message and drops its keyboard.
	EditMessageText(ctx context.Context, chatID int64, messageID int, text string) error

	// AnswerCallback acknowledges a callback query so the client stops its spinner.
	AnswerCallback(ctx context.Context, callbackID string) error
}

// BotMessenger implements Messenger with a go-telegram bot.
type BotMessenger struct {
	b *bot.Bot
}

var _ Messenger = (*BotMessenger)(nil)

// NewMessenger wraps b.
func NewMessenger(b *bot.Bot) *BotMessenger {
	return &BotMessenger{b: b}
}

func (m *BotMessenger) SendMessage(ctx context.Context, chatID int64, text string, buttons ...Button) error {
	params := &bot.SendMessageParams{ChatID: chatID, Text: text}
	if markup := InlineKeyboard(buttons); markup != nil {
		params.ReplyMarkup = markup
	}

	if _, err := m.b.SendMessage(ctx, params); err != nil {
		return fmt.Errorf("failed to send message to chat %d: %w", chatID, err)
	}
	return nil
}

func (m *BotMessenger) EditMessageText(ctx context.Context, chatID int64, messageID int, text string) error {
	_, err := m.b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
	})
	if err != nil {
		return fmt.Errorf("failed to edit message %d in chat %d: %w", messageID, chatID, err)
	}
	return nil
}

func (m *BotMessenger) AnswerCallback(ctx context.Context, callbackID string) error {
	if _, err := m.b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: callbackID}); err != nil {
		return fmt.Errorf("failed to answer callback query %s: %w", callbackID, err)
	}
	return nil
}

// InlineKeyboard builds a single-row keyboard, or nil when there are no buttons.
func InlineKeyboard(buttons []Button) *models.InlineKeyboardMarkup {
	if len(buttons) == 0 {
		return nil
	}

	row := make([]models.InlineKeyboardButton, 0, len(buttons))
	for _, btn := range buttons {
		row = append(row, models.InlineKeyboardButton{Text: btn.Text, CallbackData: btn.Data})
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{row}}
}
