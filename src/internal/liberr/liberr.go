// Package liberr defines the error types shared by the library packages.
// Callers check them with errors.Is against the sentinels or with the Is* helpers.
package liberr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that no book matched a lookup.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates a field value that could not be coerced.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotPersisted indicates an in-memory change that did not reach storage.
	ErrNotPersisted = errors.New("change not persisted")
)

// NotFoundError reports a lookup that matched nothing.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// Is implements errors.Is support.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError reports a single field that failed type coercion.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// IOError represents a failed filesystem operation.
type IOError struct {
	Operation string // "read", "write", "create", "sync", "rename", "mkdir"
	Path      string
	Message   string
	Err       error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

func (e *IOError) Unwrap() error { return e.Err }

// NewIOError creates a new IOError.
func NewIOError(operation, path string, err error) *IOError {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &IOError{Operation: operation, Path: path, Message: msg, Err: err}
}

// ParseError represents data that could not be encoded or decoded.
type ParseError struct {
	Format  string // "json" or "yaml"
	File    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s parse error in %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError creates a new ParseError.
func NewParseError(format, file string, err error) *ParseError {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &ParseError{Format: format, File: file, Message: msg, Err: err}
}

// PersistError wraps a save failure that followed a successful in-memory mutation.
type PersistError struct {
	Operation string
	Err       error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s applied but not saved: %v", e.Operation, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

// Is implements errors.Is support.
func (e *PersistError) Is(target error) bool { return target == ErrNotPersisted }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsValidationError reports whether err is a validation error.
func IsValidationError(err error) bool { return errors.Is(err, ErrInvalidInput) }

// IsNotPersisted reports whether err means an applied change was not saved.
func IsNotPersisted(err error) bool { return errors.Is(err, ErrNotPersisted) }
