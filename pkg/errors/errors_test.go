package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidAction, "unknown action")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeInvalidAction {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidAction, err.Code)
	}
	if err.Message != "unknown action" {
		t.Errorf("expected message 'unknown action', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeIO, "write failed", cause)

	if err.Code != ErrCodeIO {
		t.Errorf("expected code %s, got %s", ErrCodeIO, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("permission denied")
	ctx := map[string]any{
		"path": "VERSION",
		"mode": "-r--r--r--",
	}

	err := WrapWithContext(ErrCodeIO, "failed to clear read-only attribute", cause, ctx)

	if err.Code != ErrCodeIO {
		t.Errorf("expected code %s, got %s", ErrCodeIO, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["path"] != "VERSION" {
		t.Errorf("expected path to be VERSION")
	}
}

func TestNewWithContext(t *testing.T) {
	err := NewWithContext(ErrCodeFormat, "bad version", map[string]any{"value": "1.2"})
	if err.Context["value"] != "1.2" {
		t.Errorf("expected value context, got %v", err.Context)
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeInvalidAction, "unknown action"),
			expected: "[INVALID_ACTION] unknown action",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeFormat, "failed", errors.New("root cause")),
			expected: "[FORMAT] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"plain error", errors.New("plain"), ""},
		{"structured", New(ErrCodeOverflow, "too big"), ErrCodeOverflow},
		{"wrapped structured", fmt.Errorf("outer: %w", New(ErrCodeIO, "disk")), ErrCodeIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}

	if HasCode(nil, ErrCodeIO) {
		t.Error("HasCode(nil) should be false")
	}
	if !HasCode(New(ErrCodeFormat, "x"), ErrCodeFormat) {
		t.Error("HasCode should match code")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeFormat,
		ErrCodeInvalidAction,
		ErrCodeIO,
		ErrCodeOverflow,
		ErrCodeInvalidRequest,
		ErrCodeInternal,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}
