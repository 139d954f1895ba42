package common

import (
	"fmt"
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapErrorf wraps an error with formatted context information
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// ValidationError represents validation errors with field-specific information
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// FileReadError indicates an input file is missing or unreadable. It is
// surfaced at the orchestration boundary, before any execution is attempted.
type FileReadError struct {
	Path    string
	Wrapped error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("cannot read file '%s': %v", e.Path, e.Wrapped)
}

func (e *FileReadError) Unwrap() error {
	return e.Wrapped
}

// NewFileReadError creates a new file read error
func NewFileReadError(path string, wrapped error) *FileReadError {
	return &FileReadError{
		Path:    path,
		Wrapped: wrapped,
	}
}
