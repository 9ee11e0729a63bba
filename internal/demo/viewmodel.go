package demo

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/statusbox/pkg/statusbox"
)

// DefaultTitle is the payload of the first successful load.
const DefaultTitle = "StatusBox Demo"

// ViewModel drives the status box demo. It owns no state of the box itself:
// every transition is a command addressed to BoxID, so the box only ever
// shows the latest value pushed to it.
type ViewModel struct {
	BoxID     string
	LoadDelay time.Duration
	itemCount int
}

// NewViewModel returns a ViewModel for the box with boxID.
func NewViewModel(boxID string, loadDelay time.Duration, itemCount int) *ViewModel {
	vm := &ViewModel{BoxID: boxID, LoadDelay: loadDelay}
	vm.ChangeItemCount(itemCount)
	return vm
}

// ItemCount returns how many items the success view lists.
func (vm *ViewModel) ItemCount() int {
	return vm.itemCount
}

// ChangeItemCount sets the item count, clamped at zero.
func (vm *ViewModel) ChangeItemCount(n int) {
	if n < 0 {
		n = 0
	}
	vm.itemCount = n
}

// ChangeState sets the state and hides the loading overlay.
func (vm *ViewModel) ChangeState(s statusbox.State[string]) tea.Cmd {
	return statusbox.SetState(vm.BoxID, s)
}

// ChangeLoading shows or hides the loading overlay.
func (vm *ViewModel) ChangeLoading(visible bool, extra any) tea.Cmd {
	return statusbox.SetLoading(vm.BoxID, visible, extra)
}

// LoadData shows the overlay, waits LoadDelay, then lands on success.
func (vm *ViewModel) LoadData() tea.Cmd {
	id := vm.BoxID
	done := func(time.Time) tea.Msg {
		return statusbox.StateMsg[string]{BoxID: id, State: statusbox.Success(DefaultTitle)}
	}
	if vm.LoadDelay <= 0 {
		return tea.Sequence(vm.ChangeLoading(true, nil), func() tea.Msg { return done(time.Now()) })
	}
	return tea.Sequence(vm.ChangeLoading(true, nil), tea.Tick(vm.LoadDelay, done))
}

// Reload resets to Initial and loads again.
func (vm *ViewModel) Reload() tea.Cmd {
	return tea.Sequence(vm.ChangeState(statusbox.Initial[string]()), vm.LoadData())
}
