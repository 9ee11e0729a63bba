package statusbox

import tea "github.com/charmbracelet/bubbletea"

// Container holds the current State and LoadingState of one Box. Mutations
// happen in Update; asynchronous producers send StateMsg or LoadingMsg.
type Container[T any] struct {
	state   State[T]
	loading LoadingState
}

// NewContainer returns a container holding state and loading.
func NewContainer[T any](state State[T], loading LoadingState) *Container[T] {
	return &Container[T]{state: state, loading: loading}
}

// State returns the current state.
func (c *Container[T]) State() State[T] {
	return c.state
}

// Loading returns the current loading overlay.
func (c *Container[T]) Loading() LoadingState {
	return c.loading
}

// ChangeState replaces the state and hides the loading overlay.
func (c *Container[T]) ChangeState(s State[T]) {
	c.ChangeStateLoading(s, Hidden())
}

// ChangeStateLoading replaces both the state and the loading overlay.
func (c *Container[T]) ChangeStateLoading(s State[T], l LoadingState) {
	c.state = s
	c.loading = l
}

// ChangeLoading replaces the loading overlay only.
func (c *Container[T]) ChangeLoading(visible bool, extra any) {
	c.loading = LoadingState{Visible: visible, Extra: extra}
}

// StateMsg replaces the state and loading overlay of the Box with BoxID.
type StateMsg[T any] struct {
	BoxID   string
	State   State[T]
	Loading LoadingState
}

// LoadingMsg replaces the loading overlay of the Box with BoxID.
type LoadingMsg struct {
	BoxID   string
	Loading LoadingState
}

// SetState returns a command that sets the state of box id and hides its
// loading overlay.
func SetState[T any](id string, s State[T]) tea.Cmd {
	return SetStateLoading(id, s, Hidden())
}

// SetStateLoading returns a command that sets both state and overlay.
func SetStateLoading[T any](id string, s State[T], l LoadingState) tea.Cmd {
	return func() tea.Msg {
		return StateMsg[T]{BoxID: id, State: s, Loading: l}
	}
}

// SetLoading returns a command that sets the loading overlay of box id.
func SetLoading(id string, visible bool, extra any) tea.Cmd {
	return func() tea.Msg {
		return LoadingMsg{BoxID: id, Loading: LoadingState{Visible: visible, Extra: extra}}
	}
}
