package statusbox

import tea "github.com/charmbracelet/bubbletea"

// Box is an embeddable Bubble Tea component that renders a Container through
// a Registry. The zero value is not usable; create one with NewBox.
type Box[T any] struct {
	id        string
	container *Container[T]
	registry  *Registry
	content   ContentFunc[T]
	opts      []Option
	width     int
	height    int
	ticker    Ticker

	// FullWindow makes the Box track tea.WindowSizeMsg itself. Leave it
	// false when a parent lays the Box out with SetSize.
	FullWindow bool
}

// NewBox creates a Box. id addresses StateMsg and LoadingMsg; a nil container
// starts in the Initial state with loading hidden.
func NewBox[T any](id string, reg *Registry, c *Container[T], content ContentFunc[T], opts ...Option) Box[T] {
	if c == nil {
		c = NewContainer(Initial[T](), Hidden())
	}
	return Box[T]{
		id:        id,
		container: c,
		registry:  reg,
		content:   content,
		opts:      opts,
		ticker:    NewTicker(),
	}
}

// ID returns the address used by StateMsg and LoadingMsg.
func (b Box[T]) ID() string {
	return b.id
}

// Container returns the state holder.
func (b Box[T]) Container() *Container[T] {
	return b.container
}

// SetSize sets the area the Box renders into.
func (b *Box[T]) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Init starts the spinner animation if loading is already visible.
func (b *Box[T]) Init() tea.Cmd {
	return b.syncTicker()
}

// ChangeState replaces the state and hides the loading overlay.
func (b *Box[T]) ChangeState(s State[T]) tea.Cmd {
	b.container.ChangeState(s)
	return b.syncTicker()
}

// ChangeStateLoading replaces both state and loading overlay.
func (b *Box[T]) ChangeStateLoading(s State[T], l LoadingState) tea.Cmd {
	b.container.ChangeStateLoading(s, l)
	return b.syncTicker()
}

// ChangeLoading replaces the loading overlay.
func (b *Box[T]) ChangeLoading(visible bool, extra any) tea.Cmd {
	b.container.ChangeLoading(visible, extra)
	return b.syncTicker()
}

// Update applies StateMsg/LoadingMsg addressed to this Box and advances the
// spinner animation.
func (b Box[T]) Update(msg tea.Msg) (Box[T], tea.Cmd) {
	switch msg := msg.(type) {
	case StateMsg[T]:
		if msg.BoxID != b.id {
			return b, nil
		}
		cmd := b.ChangeStateLoading(msg.State, msg.Loading)
		return b, cmd

	case LoadingMsg:
		if msg.BoxID != b.id {
			return b, nil
		}
		cmd := b.ChangeLoading(msg.Loading.Visible, msg.Loading.Extra)
		return b, cmd

	case tea.WindowSizeMsg:
		if b.FullWindow {
			b.SetSize(msg.Width, msg.Height)
		}
		return b, nil
	}

	cmd, _ := b.ticker.Update(msg, b.container.Loading().Visible)
	return b, cmd
}

// Blocked reports whether msg is user input that the loading overlay keeps
// from reaching the content underneath.
func (b Box[T]) Blocked(msg tea.Msg) bool {
	if !b.container.Loading().Visible {
		return false
	}
	if !resolveOptions(b.registry, b.opts).blockInput {
		return false
	}
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		return true
	}
	return false
}

// Frame dispatches the current state without composing it.
func (b Box[T]) Frame() Frame {
	area := Area{Width: b.width, Height: b.height, Frame: b.ticker.Frame}
	return Render(b.registry, area, b.container.State(), b.container.Loading(), b.content, b.opts...)
}

// View renders the Box.
func (b Box[T]) View() string {
	return b.Frame().View()
}

func (b *Box[T]) syncTicker() tea.Cmd {
	if b.container.Loading().Visible {
		return b.ticker.Start()
	}
	b.ticker.Stop()
	return nil
}
