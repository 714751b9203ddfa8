package callback_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/edgard/checklistbot/internal/callback"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	if got := callback.Build(callback.ActionDone, "Задача"); got != "done|%D0%97%D0%B0%D0%B4%D0%B0%D1%87%D0%B0" {
		t.Errorf("Build(done) = %q", got)
	}

	long := strings.Repeat("очень длинное название задачи ", 5)
	for _, action := range []callback.Action{callback.ActionDone, callback.ActionCancel} {
		data := callback.Build(action, long)
		if len(data) > callback.MaxPayloadBytes {
			t.Errorf("Build(%s) is %d bytes, limit %d", action, len(data), callback.MaxPayloadBytes)
		}
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       string
		wantAction callback.Action
		wantTask   string
		wantSymbol string
		wantErr    error
	}{
		{
			name:       "Done with Cyrillic task",
			data:       "done|%D0%97%D0%B0%D0%B4%D0%B0%D1%87%D0%B0",
			wantAction: callback.ActionDone,
			wantTask:   "Задача",
			wantSymbol: "✔",
		},
		{
			name:       "Cancel",
			data:       "cancel|Buy%20milk",
			wantAction: callback.ActionCancel,
			wantTask:   "Buy milk",
			wantSymbol: "✘",
		},
		{
			name:       "Only the first separator splits",
			data:       "done|a|b",
			wantAction: callback.ActionDone,
			wantTask:   "a|b",
			wantSymbol: "✔",
		},
		{
			name:       "Empty task",
			data:       "cancel|",
			wantAction: callback.ActionCancel,
			wantTask:   "",
			wantSymbol: "✘",
		},
		{name: "Unknown action", data: "foo|xyz", wantErr: callback.ErrUnknownAction},
		{name: "Missing separator", data: "done", wantErr: callback.ErrMalformedPayload},
		{name: "Empty data", data: "", wantErr: callback.ErrMalformedPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := callback.Parse(tt.data)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.data, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.data, err)
			}
			if p.Action != tt.wantAction || p.Task != tt.wantTask {
				t.Errorf("Parse(%q) = %+v, want action %q task %q", tt.data, p, tt.wantAction, tt.wantTask)
			}
			if got := p.Action.Symbol(); got != tt.wantSymbol {
				t.Errorf("Symbol() = %q, want %q", got, tt.wantSymbol)
			}
		})
	}
}

func TestMaxTaskBytes(t *testing.T) {
	t.Parallel()

	if callback.MaxTaskBytes != 57 {
		t.Errorf("MaxTaskBytes = %d, want 57", callback.MaxTaskBytes)
	}
}
