package statusbox

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/statusbox/internal/ui"
)

var lastTickerID int64

func nextTickerID() int {
	return int(atomic.AddInt64(&lastTickerID, 1))
}

// TickMsg advances the animation frame of the Ticker with the matching ID.
type TickMsg struct {
	ID   int
	tag  int
	Time time.Time
}

// Ticker advances an animation frame counter while a loading indicator is on
// screen. Components embed it by value and forward messages to Update.
type Ticker struct {
	id      int
	tag     int
	running bool
	Frame   int
}

// NewTicker returns a stopped ticker with a unique ID.
func NewTicker() Ticker {
	return Ticker{id: nextTickerID()}
}

// ID returns the ticker's identifier.
func (t Ticker) ID() int {
	return t.id
}

// Running reports whether a tick loop is active.
func (t Ticker) Running() bool {
	return t.running
}

// Start begins a tick loop unless one is already running.
func (t *Ticker) Start() tea.Cmd {
	if t.running {
		return nil
	}
	t.running = true
	t.tag++
	return t.tick()
}

// Stop ends the current tick loop; its pending tick is ignored.
func (t *Ticker) Stop() {
	t.running = false
	t.tag++
}

// Update advances the frame on this ticker's TickMsg. active reports whether
// the owner still shows a loading indicator; when it does not, the loop ends.
// handled is false for messages that belong to someone else.
func (t *Ticker) Update(msg tea.Msg, active bool) (cmd tea.Cmd, handled bool) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.ID != t.id {
		return nil, false
	}
	if tick.tag != t.tag || !t.running {
		return nil, true
	}
	if !active {
		t.running = false
		return nil, true
	}
	t.Frame++
	return t.tick(), true
}

func (t Ticker) tick() tea.Cmd {
	id, tag := t.id, t.tag
	return tea.Tick(ui.SpinnerFrames.FPS, func(now time.Time) tea.Msg {
		return TickMsg{ID: id, tag: tag, Time: now}
	})
}
