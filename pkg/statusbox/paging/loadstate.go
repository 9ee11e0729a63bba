package paging

import "fmt"

// LoadKind is the status of one load phase.
type LoadKind int

const (
	KindNotLoading LoadKind = iota
	KindLoading
	KindError
)

// String returns a human-readable status name.
func (k LoadKind) String() string {
	switch k {
	case KindNotLoading:
		return "not-loading"
	case KindLoading:
		return "loading"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// LoadState is the status of one load phase. The zero value is
// NotLoading(false).
type LoadState struct {
	kind       LoadKind
	err        error
	endReached bool
}

// Loading returns the in-flight status.
func Loading() LoadState {
	return LoadState{kind: KindLoading}
}

// Failed returns the failed status carrying cause.
func Failed(cause error) LoadState {
	return LoadState{kind: KindError, err: cause}
}

// NotLoading returns the idle status. endReached reports that no further load
// is possible in this direction.
func NotLoading(endReached bool) LoadState {
	return LoadState{kind: KindNotLoading, endReached: endReached}
}

// Kind reports the status.
func (s LoadState) Kind() LoadKind {
	return s.kind
}

// IsLoading reports whether a load is in flight.
func (s LoadState) IsLoading() bool {
	return s.kind == KindLoading
}

// Err returns the failure cause; nil unless the status is KindError.
func (s LoadState) Err() error {
	if s.kind != KindError {
		return nil
	}
	return s.err
}

// EndReached reports the end-of-pagination signal of an idle phase.
func (s LoadState) EndReached() bool {
	return s.kind == KindNotLoading && s.endReached
}

func (s LoadState) String() string {
	switch s.kind {
	case KindError:
		return fmt.Sprintf("error(%v)", s.err)
	case KindNotLoading:
		return fmt.Sprintf("not-loading(end=%t)", s.endReached)
	default:
		return s.kind.String()
	}
}

// Phase names one of the three load operations of a paged list.
type Phase int

const (
	PhaseRefresh Phase = iota
	PhasePrepend
	PhaseAppend
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRefresh:
		return "refresh"
	case PhasePrepend:
		return "prepend"
	case PhaseAppend:
		return "append"
	default:
		return "unknown"
	}
}

// LoadStates is the status tuple of a paged list.
type LoadStates struct {
	Refresh LoadState
	Prepend LoadState
	Append  LoadState
}

// Phase returns the status of p.
func (s LoadStates) Phase(p Phase) LoadState {
	switch p {
	case PhasePrepend:
		return s.Prepend
	case PhaseAppend:
		return s.Append
	default:
		return s.Refresh
	}
}

// WithPhase returns a copy with the status of p replaced.
func (s LoadStates) WithPhase(p Phase, st LoadState) LoadStates {
	switch p {
	case PhasePrepend:
		s.Prepend = st
	case PhaseAppend:
		s.Append = st
	default:
		s.Refresh = st
	}
	return s
}

// IsIdle reports whether no phase is loading.
func (s LoadStates) IsIdle() bool {
	return !s.Refresh.IsLoading() && !s.Prepend.IsLoading() && !s.Append.IsLoading()
}

// LoadError is a failed load of one phase.
type LoadError struct {
	Phase Phase
	Cause error
}

func (e *LoadError) Error() string {
	if e.Cause == nil {
		return e.Phase.String() + " failed"
	}
	return e.Phase.String() + " failed: " + e.Cause.Error()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Errors returns the failed phases in refresh, prepend, append order.
func (s LoadStates) Errors() []*LoadError {
	var errs []*LoadError
	for _, p := range []Phase{PhaseRefresh, PhasePrepend, PhaseAppend} {
		if st := s.Phase(p); st.Kind() == KindError {
			errs = append(errs, &LoadError{Phase: p, Cause: st.Err()})
		}
	}
	return errs
}
