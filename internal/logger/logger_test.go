package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func TestTruncateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{name: "Short", input: "hello", maxLen: 10, expected: "hello"},
		{name: "Exact", input: "hello", maxLen: 5, expected: "hello"},
		{name: "ASCII cut", input: "hello world", maxLen: 8, expected: "hello..."},
		{name: "Cyrillic is cut on runes", input: "Полить цветы", maxLen: 9, expected: "Полить..."},
		{name: "Tiny limit", input: "hello", maxLen: 2, expected: "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := truncateString(tt.input, tt.maxLen); got != tt.expected {
				t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
			}
		})
	}
}

func TestNewLogger_Level(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := newLogger(&buf, "warn", true)
	log.Info("hidden")
	log.Warn("shown", "key", "value")

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %s", out)
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(out), &record); err != nil {
		t.Fatalf("output is not a single JSON record: %v\n%s", err, out)
	}
	if record["msg"] != "shown" || record["key"] != "value" {
		t.Errorf("record = %v", record)
	}
}

func TestMiddleware_CallbackQuery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := newLogger(&buf, "info", false)

	called := false
	next := func(context.Context, *bot.Bot, *models.Update) { called = true }

	update := &models.Update{
		ID: 9,
		CallbackQuery: &models.CallbackQuery{
			ID:   "cb",
			From: models.User{ID: 77},
			Data: "done|A",
			Message: models.MaybeInaccessibleMessage{
				Message: &models.Message{ID: 3, Chat: models.Chat{ID: 55}},
			},
		},
	}
	Middleware(log)(next)(context.Background(), nil, update)

	if !called {
		t.Fatal("next handler was not called")
	}
	out := buf.String()
	for _, want := range []string{"update_type=callback_query", "chat_id=55", "data=done|A", "Finished processing update"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
