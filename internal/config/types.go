// Package config manages application configuration from environment variables,
// config files, and default values.
package config

import (
	"errors"
	"time"

	"github.com/go-telegram/bot/models"
)

// ErrValidation is wrapped by every error caused by an invalid configuration.
var ErrValidation = errors.New("configuration validation error")

// Config defines the application configuration. Secrets are normally supplied
// through BOT_TOKEN, SPREADSHEET_ID and GOOGLE_SHEETS_CREDS; every other key can
// be set in config.yaml or through CHECKLIST_-prefixed variables
// (e.g. CHECKLIST_LOGGER_LEVEL).
type Config struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
	Sheets   SheetsConfig   `mapstructure:"sheets"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Messages MessagesConfig `mapstructure:"messages"`

	// Timezone names the IANA zone used to pick today's column and to stamp
	// completion records. "Local" uses the host zone.
	Timezone string `mapstructure:"timezone" validate:"required"`
}

// TelegramConfig holds the bot credentials.
type TelegramConfig struct {
	Token string `mapstructure:"token" validate:"required"`

	// BotInfo is filled at startup from getMe.
	BotInfo *models.User `mapstructure:"-"`
}

// SheetsConfig points at the spreadsheet and the service account used to reach it.
type SheetsConfig struct {
	SpreadsheetID   string        `mapstructure:"spreadsheet_id"   validate:"required"`
	CredentialsPath string        `mapstructure:"credentials_path" validate:"required,file"`
	TasksSheet      string        `mapstructure:"tasks_sheet"      validate:"required"`
	LogSheet        string        `mapstructure:"log_sheet"        validate:"required,nefield=TasksSheet"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"  validate:"min=1s,max=2m"`
}

// LoggerConfig controls slog output.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// MessagesConfig holds every user-facing string. Fields ending in Format are
// fmt templates; the verbs tag pins how many arguments each one takes.
type MessagesConfig struct {
	TaskFormat       string `mapstructure:"task_format"        validate:"required,verbs=1"`
	NoTasks          string `mapstructure:"no_tasks"           validate:"required"`
	ListErrorFormat  string `mapstructure:"list_error_format"  validate:"required,verbs=1"`
	DoneButton       string `mapstructure:"done_button"        validate:"required"`
	CancelButton     string `mapstructure:"cancel_button"      validate:"required"`
	StatusFormat     string `mapstructure:"status_format"      validate:"required,verbs=2"`
	SaveFailedFormat string `mapstructure:"save_failed_format" validate:"required,verbs=1"`
	ActionError      string `mapstructure:"action_error"       validate:"required"`
	Help             string `mapstructure:"help"               validate:"required"`
}
