package callback

import (
	"errors"
	"fmt"
	"strings"
)

// Action is the user's choice on a task button.
type Action string

const (
	ActionDone   Action = "done"
	ActionCancel Action = "cancel"
)

const (
	// Separator divides the action from the encoded task.
	Separator = "|"

	// MaxPayloadBytes is Telegram's callback_data limit.
	MaxPayloadBytes = 64

	// MaxTaskBytes is what remains for the task token after the longest
	// action prefix.
	MaxTaskBytes = MaxPayloadBytes - len(ActionCancel) - len(Separator)
)

var (
	ErrMalformedPayload = errors.New("malformed callback payload")
	ErrUnknownAction    = errors.New("unknown callback action")
)

// Valid reports whether a is one of the known actions.
func (a Action) Valid() bool {
	return a == ActionDone || a == ActionCancel
}

// Symbol returns the result mark written to the log sheet.
func (a Action) Symbol() string {
	switch a {
	case ActionDone:
		return "✔"
	case ActionCancel:
		return "✘"
	default:
		return ""
	}
}

// Payload is a parsed callback.
type Payload struct {
	Action Action
	Task   string
}

// Build returns callback data for the given action and task name.
func Build(action Action, task string) string {
	return string(action) + Separator + EncodeTask(task, MaxTaskBytes)
}

// Parse splits data at the first separator and decodes the task. The action
// is validated before the payload is returned.
func Parse(data string) (Payload, error) {
	action, token, ok := strings.Cut(data, Separator)
	if !ok {
		return Payload{}, fmt.Errorf("%w: no %q in %q", ErrMalformedPayload, Separator, data)
	}

	a := Action(action)
	if !a.Valid() {
		return Payload{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	return Payload{Action: a, Task: DecodeTask(token)}, nil
}
