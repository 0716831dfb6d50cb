package gen

import (
	"errors"
	"strings"
)

// ErrMissingConfig indicates a configuration error.
var ErrMissingConfig = errors.New("loom: missing configuration")

// ConfigError reports an invalid generation config value.
type ConfigError struct {
	field   string
	value   string
	message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("loom: config error on field ")
	b.WriteString(e.field)
	if e.value != "" {
		b.WriteString(" (")
		b.WriteString(e.value)
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(e.message)
	return b.String()
}

// Is reports whether the target matches the missing-config sentinel.
func (e *ConfigError) Is(err error) bool {
	return err == ErrMissingConfig
}

// Field returns the config field name.
func (e *ConfigError) Field() string {
	return e.field
}

// NewConfigError returns a config error for the given field.
func NewConfigError(field, value, message string) *ConfigError {
	return &ConfigError{field: field, value: value, message: message}
}

// IsConfigError reports whether err is a ConfigError.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}
