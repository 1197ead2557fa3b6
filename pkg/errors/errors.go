package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError describes a rejected form field or configuration value.
// Message is written for the person filling in the form.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RequestError reports a failed call against the travel API.
type RequestError struct {
	Operation string
	Err       error
}

// NewRequestError constructs a RequestError for the named operation.
func NewRequestError(operation string, err error) error {
	return &RequestError{Operation: operation, Err: err}
}

func (e *RequestError) Error() string {
	if e == nil {
		return ""
	}
	if e.Operation != "" {
		return fmt.Sprintf("request %s failed: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("request failed: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *RequestError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UserMessage returns the text shown to a person for err. Validation errors
// carry their own message; anything else falls back to fallback.
func UserMessage(err error, fallback string) string {
	var validationErr *ValidationError
	if As(err, &validationErr) && validationErr.Message != "" {
		return validationErr.Message
	}
	return fallback
}
