package demo

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/statusbox/internal/errors"
	"github.com/rileyhilliard/statusbox/internal/ui"
)

// App is the root model of the demo program. It draws the header of the
// active screen and handles navigation between screens.
type App struct {
	env    Env
	screen Screen
	// direct is set when the app was opened on a demo rather than the home
	// menu; esc then quits instead of going back.
	direct bool

	width  int
	height int
}

// NewApp creates the app showing the screen with id. An empty id or HomeID
// opens the home menu.
func NewApp(env Env, id string) (App, error) {
	a := App{env: env}
	if id == "" || id == HomeID {
		a.screen = newHomeScreen()
		return a, nil
	}
	d, ok := FindDemo(id)
	if !ok {
		return App{}, errors.NewUnknownDemo(id, DemoIDs())
	}
	a.screen = d.Create(env)
	a.direct = true
	return a, nil
}

// Screen returns the active screen.
func (a App) Screen() Screen {
	return a.screen
}

func (a App) Init() tea.Cmd {
	return a.screen.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, appKeys.Quit):
			a.screen.Close()
			return a, tea.Quit
		case key.Matches(msg, appKeys.Back):
			if a.screen.ID() == HomeID {
				return a, nil
			}
			if a.direct {
				a.screen.Close()
				return a, tea.Quit
			}
			return a, a.navigate(HomeID)
		}
	}

	cmd, nav := a.screen.Update(msg)
	if nav != nil {
		return a, tea.Batch(cmd, a.navigate(nav.ScreenID))
	}
	return a, cmd
}

// navigate closes the active screen and opens the one with id.
func (a *App) navigate(id string) tea.Cmd {
	var next Screen
	if id == HomeID {
		next = newHomeScreen()
	} else {
		d, ok := FindDemo(id)
		if !ok {
			a.env.Log.Warn("unknown screen %q", id)
			return nil
		}
		next = d.Create(a.env)
	}
	a.env.Log.Debug("navigate %s -> %s", a.screen.ID(), id)
	a.screen.Close()
	a.screen = next
	a.resize()
	return a.screen.Init()
}

func (a *App) resize() {
	if a.width == 0 && a.height == 0 {
		return
	}
	h := ui.HeaderHeight(a.screen.Header())
	a.screen.SetSize(a.width, max(0, a.height-h))
}

func (a App) View() string {
	header := ui.RenderHeader(a.screen.Header(), a.width)
	return lipgloss.JoinVertical(lipgloss.Left, header, a.screen.View())
}

// Run opens the demo app on the screen with id and blocks until it quits.
func Run(env Env, id string, opts ...tea.ProgramOption) error {
	app, err := NewApp(env, id)
	if err != nil {
		return err
	}
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, opts...)
	final, err := tea.NewProgram(app, opts...).Run()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal, "Demo crashed", "Run with STATUSBOX_DEBUG=1 and check the debug log")
	}
	if a, ok := final.(App); ok {
		a.screen.Close()
	}
	return nil
}
