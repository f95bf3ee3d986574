// Package errors provides the error taxonomy shared by the xliffconv packages.
//
// Parse-time failures are fatal and returned as typed errors that unwrap to
// one of the sentinels below. Structural problems found by the validator are
// never errors; they are reported as values by core/xliff.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrInvalidInput indicates input that cannot be read as a document
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupported indicates an unsupported version, format or feature
	ErrUnsupported = errors.New("unsupported")
	// ErrNotFound indicates a referenced file or unit does not exist
	ErrNotFound = errors.New("not found")
)

// ParseError represents a failure to read a document.
type ParseError struct {
	Format  string // Format being parsed (e.g., "XML", "XLIFF")
	Path    string // File path, if known
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, e.Path, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// Is reports ErrInvalidInput for every ParseError, including those that wrap
// a lower level decoder error.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidInput
}

// UnsupportedError represents an unsupported version or feature.
type UnsupportedError struct {
	Feature string // Feature that is unsupported (e.g., "XLIFF version")
	Value   string // Offending value, if any
	Err     error  // Underlying error, if any
}

func (e *UnsupportedError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("unsupported %s: %s", e.Feature, e.Value)
	}
	return fmt.Sprintf("unsupported %s", e.Feature)
}

func (e *UnsupportedError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrUnsupported
}

// NotFoundError represents a missing file or unit with context.
type NotFoundError struct {
	Resource string // Type of resource (e.g., "file", "unit")
	ID       string // Identifier of the resource
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "write", "open")
	Path      string // File path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewParse creates a ParseError
func NewParse(format, path, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Message: message,
	}
}

// WrapParse creates a ParseError carrying an underlying error.
func WrapParse(format, path string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Message: err.Error(),
		Err:     err,
	}
}

// NewUnsupported creates an UnsupportedError
func NewUnsupported(feature, value string) *UnsupportedError {
	return &UnsupportedError{
		Feature: feature,
		Value:   value,
	}
}

// NewNotFound creates a NotFoundError
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// New wraps errors.New for convenience
func New(text string) error {
	return errors.New(text)
}
