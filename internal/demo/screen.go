package demo

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/statusbox/internal/config"
	"github.com/rileyhilliard/statusbox/internal/logger"
	"github.com/rileyhilliard/statusbox/internal/ui"
	"github.com/rileyhilliard/statusbox/pkg/statusbox"
)

// Screen IDs.
const (
	HomeID    = "home"
	BoxID     = "box"
	AppendID  = "append"
	PrependID = "prepend"
)

// Screen is a top-level view of the demo app.
type Screen interface {
	ID() string
	Header() ui.HeaderInfo
	Init() tea.Cmd
	// Update handles msg. A non-nil Nav asks the app to switch screens.
	Update(msg tea.Msg) (tea.Cmd, *Nav)
	// SetSize gives the screen the space below the header.
	SetSize(width, height int)
	View() string
	// Close releases background work when the screen is left.
	Close()
}

// Nav is returned from Screen.Update to request a screen switch.
type Nav struct {
	ScreenID string
}

// Env is what every screen is built from.
type Env struct {
	Config   *config.Config
	Registry *statusbox.Registry
	Log      logger.Logger
}

// NewEnv builds an Env from cfg, deriving the status box registry from it.
func NewEnv(cfg *config.Config, log logger.Logger) Env {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = logger.Noop()
	}
	return Env{Config: cfg, Registry: cfg.Registry(), Log: log}
}

// Demo is an entry of the home menu.
type Demo struct {
	ID          string
	Name        string
	Description string
	Keywords    []string
	Create      func(env Env) Screen
}

// Demos returns every demo in menu order.
func Demos() []Demo {
	return []Demo{
		{
			ID:          BoxID,
			Name:        "StatusBox Demo",
			Description: "Basic StatusBox functionality with state management",
			Keywords:    []string{"state", "loading", "overlay"},
			Create:      func(env Env) Screen { return newBoxScreen(env) },
		},
		{
			ID:          AppendID,
			Name:        "Paging - Load More (Append)",
			Description: "Lazy list with bottom loading, pagination support",
			Keywords:    []string{"list", "grid", "append"},
			Create:      func(env Env) Screen { return newAppendScreen(env) },
		},
		{
			ID:          PrependID,
			Name:        "Paging - Load Previous (Prepend)",
			Description: "Lazy list with top loading, reverse pagination",
			Keywords:    []string{"chat", "prepend"},
			Create:      func(env Env) Screen { return newPrependScreen(env) },
		},
	}
}

// FindDemo returns the demo with id.
func FindDemo(id string) (Demo, bool) {
	for _, d := range Demos() {
		if d.ID == id {
			return d, true
		}
	}
	return Demo{}, false
}

// DemoIDs returns the IDs of every demo, for completion and errors.
func DemoIDs() []string {
	demos := Demos()
	ids := make([]string, len(demos))
	for i, d := range demos {
		ids[i] = d.ID
	}
	return ids
}
