package testutil

import (
	"context"
	"sync"

	"github.com/edgard/checklistbot/internal/telegram"
)

// SentMessage is a message recorded by FakeMessenger.
type SentMessage struct {
	ChatID  int64
	Text    string
	Buttons []telegram.Button
}

// EditedMessage is an edit recorded by FakeMessenger.
type EditedMessage struct {
	ChatID    int64
	MessageID int
	Text      string
}

// FakeMessenger records every call instead of talking to Telegram.
type FakeMessenger struct {
	mu       sync.Mutex
	Sent     []SentMessage
	Edited   []EditedMessage
	Answered []string

	// SendErr is returned by SendMessage. When FailSendOn is non-zero only
	// that attempt (1-based) fails.
	SendErr    error
	FailSendOn int
	EditErr    error
	AnswerErr  error

	sendAttempts int
}

var _ telegram.Messenger = (*FakeMessenger)(nil)

func (f *FakeMessenger) SendMessage(_ context.Context, chatID int64, text string, buttons ...telegram.Button) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sendAttempts++
	if f.SendErr != nil && (f.FailSendOn == 0 || f.FailSendOn == f.sendAttempts) {
		return f.SendErr
	}
	f.Sent = append(f.Sent, SentMessage{ChatID: chatID, Text: text, Buttons: buttons})
	return nil
}

func (f *FakeMessenger) EditMessageText(_ context.Context, chatID int64, messageID int, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.EditErr != nil {
		return f.EditErr
	}
	f.Edited = append(f.Edited, EditedMessage{ChatID: chatID, MessageID: messageID, Text: text})
	return nil
}

func (f *FakeMessenger) AnswerCallback(_ context.Context, callbackID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Answered = append(f.Answered, callbackID)
	return f.AnswerErr
}
