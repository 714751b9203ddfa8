package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "CHECKLIST"

// legacyEnv maps config keys to the environment variable names the bot has
// always been deployed with.
var legacyEnv = map[string]string{
	"telegram.token":          "BOT_TOKEN",
	"sheets.spreadsheet_id":   "SPREADSHEET_ID",
	"sheets.credentials_path": "GOOGLE_SHEETS_CREDS",
}

// LoadConfig loads and validates configuration from:
//  1. Default values
//  2. the YAML file at path, if it exists
//  3. environment variables
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range legacyEnv {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
			// Missing file is fine, environment and defaults are enough.
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults sets default values for optional configuration parameters.
// Required keys are registered with empty defaults so Unmarshal sees their
// environment overrides.
func setDefaults(v *viper.Viper) {
	v.SetDefault("timezone", DefaultTimezone)

	v.SetDefault("logger.level", DefaultLogLevel)
	v.SetDefault("logger.json", DefaultLogJSON)

	v.SetDefault("telegram.token", "")

	v.SetDefault("sheets.spreadsheet_id", "")
	v.SetDefault("sheets.credentials_path", "")
	v.SetDefault("sheets.tasks_sheet", DefaultTasksSheet)
	v.SetDefault("sheets.log_sheet", DefaultLogSheet)
	v.SetDefault("sheets.request_timeout", DefaultRequestTimeout)

	v.SetDefault("messages.task_format", DefaultMessages.TaskFormat)
	v.SetDefault("messages.no_tasks", DefaultMessages.NoTasks)
	v.SetDefault("messages.list_error_format", DefaultMessages.ListErrorFormat)
	v.SetDefault("messages.done_button", DefaultMessages.DoneButton)
	v.SetDefault("messages.cancel_button", DefaultMessages.CancelButton)
	v.SetDefault("messages.status_format", DefaultMessages.StatusFormat)
	v.SetDefault("messages.save_failed_format", DefaultMessages.SaveFailedFormat)
	v.SetDefault("messages.action_error", DefaultMessages.ActionError)
	v.SetDefault("messages.help", DefaultMessages.Help)
}

// Location resolves Timezone. Validate guarantees it loads.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrValidation, c.Timezone, err)
	}
	return loc, nil
}
