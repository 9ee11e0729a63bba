package statusbox

import "fmt"

// Kind identifies the active variant of a State.
type Kind int

const (
	KindInitial Kind = iota
	KindEmpty
	KindError
	KindSuccess
)

// String returns a human-readable variant name.
func (k Kind) String() string {
	switch k {
	case KindInitial:
		return "initial"
	case KindEmpty:
		return "empty"
	case KindError:
		return "error"
	case KindSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// EmptyState is the payload of the Empty variant.
type EmptyState struct {
	Value any // Optional, opaque to this package
}

// ErrorState is the payload of the Error variant. It satisfies error so it
// can be handed to code that logs or wraps failures.
type ErrorState struct {
	Message string
	Cause   error
}

func (e ErrorState) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Cause.Error()
	}
	return e.Message + ": " + e.Cause.Error()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e ErrorState) Unwrap() error {
	return e.Cause
}

// LoadingState is the loading overlay flag plus an optional extra value that
// loading renderers may display (the built-in one shows string extras).
type LoadingState struct {
	Visible bool
	Extra   any
}

// Shown returns a visible LoadingState carrying extra.
func Shown(extra any) LoadingState {
	return LoadingState{Visible: true, Extra: extra}
}

// Hidden returns an invisible LoadingState.
func Hidden() LoadingState {
	return LoadingState{}
}

// State is the request state of a piece of UI whose success payload is T.
// The zero value is the Initial variant.
type State[T any] struct {
	kind  Kind
	data  T
	empty EmptyState
	err   ErrorState
}

// Initial returns the state for "nothing requested yet".
func Initial[T any]() State[T] {
	return State[T]{kind: KindInitial}
}

// Empty returns the state for a successful request with nothing to show.
func Empty[T any](value any) State[T] {
	return State[T]{kind: KindEmpty, empty: EmptyState{Value: value}}
}

// Error returns the state for a failed request.
func Error[T any](message string, cause error) State[T] {
	return State[T]{kind: KindError, err: ErrorState{Message: message, Cause: cause}}
}

// Success returns the state for a successful request carrying data.
func Success[T any](data T) State[T] {
	return State[T]{kind: KindSuccess, data: data}
}

// Kind reports the active variant.
func (s State[T]) Kind() Kind {
	return s.kind
}

// Data returns the success payload. ok is false for every other variant.
func (s State[T]) Data() (data T, ok bool) {
	if s.kind != KindSuccess {
		return data, false
	}
	return s.data, true
}

// AsEmpty returns the Empty payload. ok is false for every other variant.
func (s State[T]) AsEmpty() (EmptyState, bool) {
	return s.empty, s.kind == KindEmpty
}

// AsError returns the Error payload. ok is false for every other variant.
func (s State[T]) AsError() (ErrorState, bool) {
	return s.err, s.kind == KindError
}

func (s State[T]) String() string {
	switch s.kind {
	case KindEmpty:
		return fmt.Sprintf("empty(%v)", s.empty.Value)
	case KindError:
		return fmt.Sprintf("error(%s)", s.err.Error())
	case KindSuccess:
		return fmt.Sprintf("success(%v)", s.data)
	default:
		return s.kind.String()
	}
}
