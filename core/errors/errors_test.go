package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name    string
		err     *ParseError
		wantMsg string
	}{
		{
			name:    "with path",
			err:     &ParseError{Format: "XLIFF", Path: "app.xlf", Message: "missing xliff root element"},
			wantMsg: "failed to parse XLIFF at app.xlf: missing xliff root element",
		},
		{
			name:    "without path",
			err:     &ParseError{Format: "XML", Message: "unexpected EOF"},
			wantMsg: "failed to parse XML: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrInvalidInput) {
				t.Error("ParseError should match ErrInvalidInput")
			}
		})
	}
}

// TestWrapParse verifies that a wrapped decoder error stays reachable while
// the error still reports as invalid input.
func TestWrapParse(t *testing.T) {
	underlying := fmt.Errorf("XML syntax error on line 1: unexpected EOF")
	err := WrapParse("XML", "", underlying)

	if !errors.Is(err, underlying) {
		t.Error("WrapParse should unwrap to the underlying error")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("WrapParse should still match ErrInvalidInput")
	}
	if err.Message != underlying.Error() {
		t.Errorf("Message = %q, want %q", err.Message, underlying.Error())
	}
}

func TestUnsupportedError(t *testing.T) {
	tests := []struct {
		name    string
		err     *UnsupportedError
		wantMsg string
	}{
		{"with value", NewUnsupported("XLIFF version", "3.0"), "unsupported XLIFF version: 3.0"},
		{"without value", NewUnsupported("XLIFF version", ""), "unsupported XLIFF version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrUnsupported) {
				t.Error("UnsupportedError should match ErrUnsupported")
			}
		})
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFound("file", "messages.json")
	if got := err.Error(); got != "file not found: messages.json" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}
	if got := (&NotFoundError{Resource: "unit"}).Error(); got != "unit not found" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIOError(t *testing.T) {
	underlying := fmt.Errorf("permission denied")

	withPath := NewIO("read", "/tmp/app.xlf", underlying)
	if got := withPath.Error(); got != "failed to read /tmp/app.xlf: permission denied" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(withPath, underlying) {
		t.Error("IOError should unwrap to the underlying error")
	}

	noPath := NewIO("write", "", underlying)
	if got := noPath.Error(); got != "failed to write: permission denied" {
		t.Errorf("Error() = %q", got)
	}
}

func TestNew(t *testing.T) {
	err := New("validation failed")
	if err.Error() != "validation failed" {
		t.Errorf("New() = %q", err.Error())
	}
	if Is(fmt.Errorf("wrapped: %w", err), New("validation failed")) {
		t.Error("distinct New errors should not match")
	}
}
