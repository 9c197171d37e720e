package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration operations.
var (
	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrInvalidYAML indicates invalid YAML syntax in the config file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")
)

// ValidationError is a single invalid field with context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
}

// Unwrap supports errors.Is(err, ErrInvalidConfig).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}
