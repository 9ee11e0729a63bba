package paging

import tea "github.com/charmbracelet/bubbletea"

// Items is the view of a paging controller that this package renders.
// Implementations own loading, caching and cancellation; Retry and Refresh
// are forwarded to them verbatim.
type Items[T any] interface {
	// ItemCount returns the number of item slots, including placeholders.
	ItemCount() int
	// ItemAt returns the item at index. ok is false for a placeholder slot
	// whose data has not been loaded yet.
	ItemAt(index int) (item T, ok bool)
	// LoadStates returns the current status tuple.
	LoadStates() LoadStates
	// Retry re-attempts failed prepend/append loads.
	Retry() tea.Cmd
	// Refresh reloads the whole list.
	Refresh() tea.Cmd
}

// Hinter is implemented by controllers that prefetch based on which item
// indices are on screen.
type Hinter interface {
	Hint(first, last int) tea.Cmd
}

// Snapshot is a fixed Items value. It suits lists whose loading is driven
// elsewhere, and tests.
type Snapshot[T any] struct {
	Data   []T
	States LoadStates
	// Pending marks indices rendered as placeholders.
	Pending map[int]bool
	// OnRetry and OnRefresh back Retry and Refresh; nil means no-op.
	OnRetry   func() tea.Cmd
	OnRefresh func() tea.Cmd
}

func (s *Snapshot[T]) ItemCount() int {
	return len(s.Data)
}

func (s *Snapshot[T]) ItemAt(index int) (item T, ok bool) {
	if index < 0 || index >= len(s.Data) || s.Pending[index] {
		return item, false
	}
	return s.Data[index], true
}

func (s *Snapshot[T]) LoadStates() LoadStates {
	return s.States
}

func (s *Snapshot[T]) Retry() tea.Cmd {
	if s.OnRetry == nil {
		return nil
	}
	return s.OnRetry()
}

func (s *Snapshot[T]) Refresh() tea.Cmd {
	if s.OnRefresh == nil {
		return nil
	}
	return s.OnRefresh()
}
