// Package apperr defines the error kinds the services classify for logging.
// None of them are ever serialized to a client.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError reports a field that an operation requires but the
// request did not carry.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field `%s` is empty, but is required", e.Field)
}

// StoreError wraps a failed document store call.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ConfigurationError is fatal at startup.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return e.Msg
}

// Missing returns a ValidationError for field.
func Missing(field string) error {
	return &ValidationError{Field: field}
}

// Store wraps err as a StoreError for op. A nil err stays nil.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// Kind names the class of err for log lines.
func Kind(err error) string {
	var ve *ValidationError
	var se *StoreError
	var ce *ConfigurationError
	switch {
	case errors.As(err, &ve):
		return "validation"
	case errors.As(err, &se):
		return "store"
	case errors.As(err, &ce):
		return "configuration"
	default:
		return "request"
	}
}
