package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig   = "CONFIG"
	ErrDemo     = "DEMO"
	ErrTerminal = "TERMINAL"
)

// Error is a structured CLI error. It prints as
//
//	✗ <what failed>
//
//	  <cause>
//
//	  <how to fix it>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrDemo.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrDemo,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// NewNotTerminal reports that an interactive command was run without a TTY.
func NewNotTerminal(command string) *Error {
	return &Error{
		Code:       ErrTerminal,
		Message:    fmt.Sprintf("'%s' needs an interactive terminal", command),
		Suggestion: "Run it directly in a terminal, not through a pipe or redirect",
	}
}

// NewUnknownDemo reports a demo id that is not registered.
func NewUnknownDemo(id string, available []string) *Error {
	return &Error{
		Code:       ErrDemo,
		Message:    fmt.Sprintf("Unknown demo %q", id),
		Suggestion: "Available demos: " + strings.Join(available, ", "),
	}
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "✗ %s\n", e.Message)

	cause, suggestion := e.details()
	if cause != "" {
		b.WriteString("\n")
		writeIndented(&b, cause)
	}
	if suggestion != "" {
		b.WriteString("\n")
		writeIndented(&b, suggestion)
	}
	return b.String()
}

// details returns the cause and suggestion lines. A structured cause
// contributes its message, and its suggestion when e has none.
func (e *Error) details() (cause, suggestion string) {
	suggestion = e.Suggestion
	if e.Cause == nil {
		return "", suggestion
	}
	var inner *Error
	if errors.As(e.Cause, &inner) {
		if suggestion == "" {
			suggestion = inner.Suggestion
		}
		if inner.Message == e.Message {
			return "", suggestion
		}
		return inner.Message, suggestion
	}
	return e.Cause.Error(), suggestion
}

func writeIndented(b *strings.Builder, text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		fmt.Fprintf(b, "  %s\n", line)
	}
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode reports whether err is, or wraps, an Error with code.
func IsCode(err error, code string) bool {
	var target *Error
	for err != nil && errors.As(err, &target) {
		if target.Code == code {
			return true
		}
		err = target.Cause
	}
	return false
}
