package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validate checks the struct tags on the whole configuration and that
// Timezone names a loadable location.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("verbs", validateVerbs); err != nil {
		return fmt.Errorf("failed to register verbs validation: %w", err)
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	// The validator's own timezone tag rejects "Local".
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("%w: timezone %q: %v", ErrValidation, c.Timezone, err)
	}
	return nil
}

// validateVerbs implements the verbs=N tag: the string must be a fmt template
// with exactly N formatting directives.
func validateVerbs(fl validator.FieldLevel) bool {
	want, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return countVerbs(fl.Field().String()) == want
}

// countVerbs returns the number of fmt directives in format, not counting
// "%%", or -1 when a directive has no verb or uses an argument index or '*'.
func countVerbs(format string) int {
	n := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			continue
		}
		for i < len(format) && strings.IndexByte("+-# 0123456789.", format[i]) >= 0 {
			i++
		}
		if i >= len(format) || format[i] == '[' || format[i] == '*' {
			return -1
		}
		n++
	}
	return n
}
