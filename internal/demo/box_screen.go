package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/statusbox/internal/ui"
	"github.com/rileyhilliard/statusbox/pkg/statusbox"
)

const boxDemoID = "demo-box"

var (
	contentTitleStyle = lipgloss.NewStyle().
				Foreground(ui.ColorSecondary).
				Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorBorder).
			Padding(0, 1)

	counterStyle = lipgloss.NewStyle().
			Foreground(ui.ColorInfo).
			Bold(true)
)

// boxScreen is the status box demo: a Box driven by a ViewModel through a
// key-bound control panel.
type boxScreen struct {
	env   Env
	vm    *ViewModel
	box   statusbox.Box[string]
	block bool
	help  help.Model

	width  int
	height int
}

func newBoxScreen(env Env) *boxScreen {
	s := &boxScreen{
		env:   env,
		vm:    NewViewModel(boxDemoID, env.Config.Demo.LoadDelay, env.Config.Demo.ItemCount),
		block: env.Registry.BlockInput(),
		help:  help.New(),
	}
	// Starts with the overlay up, like a screen that loads on open.
	s.box = s.newBox(statusbox.NewContainer(statusbox.Initial[string](), statusbox.Shown(nil)))
	return s
}

func (s *boxScreen) newBox(c *statusbox.Container[string]) statusbox.Box[string] {
	return statusbox.NewBox(boxDemoID, s.env.Registry, c, s.renderContent,
		statusbox.WithLoading(loadingWithLabel("Loading…")),
		statusbox.WithBlockInput(s.block),
	)
}

// loadingWithLabel is a per-screen override of the loading slot.
func loadingWithLabel(label string) statusbox.LoadingFunc {
	return func(a statusbox.Area, l statusbox.LoadingState) string {
		if l.Extra == nil {
			l.Extra = label
		}
		return statusbox.DefaultLoadingView(a, l)
	}
}

func (s *boxScreen) ID() string { return BoxID }

func (s *boxScreen) Header() ui.HeaderInfo {
	sub := "state: " + s.box.Container().State().Kind().String()
	if s.box.Container().Loading().Visible {
		sub += " + loading"
	}
	if s.block {
		sub += " (input blocked while loading)"
	}
	return ui.HeaderInfo{Title: "StatusBox Demo", Subtitle: sub, Back: true}
}

func (s *boxScreen) Init() tea.Cmd {
	return tea.Batch(s.box.Init(), s.vm.LoadData())
}

func (s *boxScreen) Update(msg tea.Msg) (tea.Cmd, *Nav) {
	// The control panel sits outside the box; only the counter inside the
	// content is behind the overlay.
	if msg, ok := msg.(tea.KeyMsg); ok {
		if cmd, handled := s.control(msg); handled {
			return cmd, nil
		}
	}
	if s.box.Blocked(msg) {
		return nil, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok && s.showsContent() {
		switch {
		case key.Matches(msg, boxKeys.Increment):
			s.vm.ChangeItemCount(s.vm.ItemCount() + 1)
		case key.Matches(msg, boxKeys.Decrement):
			s.vm.ChangeItemCount(s.vm.ItemCount() - 1)
		}
	}

	var cmd tea.Cmd
	s.box, cmd = s.box.Update(msg)
	return cmd, nil
}

// control handles the state panel keys, which work whether or not the
// overlay blocks input.
func (s *boxScreen) control(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, boxKeys.Success):
		return s.vm.ChangeState(statusbox.Success("Success State!")), true
	case key.Matches(msg, boxKeys.Error):
		return s.vm.ChangeState(statusbox.Error[string]("Something went wrong!", nil)), true
	case key.Matches(msg, boxKeys.Empty):
		return s.vm.ChangeState(statusbox.Empty[string](nil)), true
	case key.Matches(msg, boxKeys.Loading):
		return s.vm.ChangeLoading(true, nil), true
	case key.Matches(msg, boxKeys.Reload):
		return s.vm.Reload(), true
	case key.Matches(msg, boxKeys.Block):
		s.block = !s.block
		s.box = s.newBox(s.box.Container())
		s.layout()
		return s.box.Init(), true
	}
	return nil, false
}

func (s *boxScreen) showsContent() bool {
	return s.box.Container().State().Kind() == statusbox.KindSuccess
}

func (s *boxScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.help.Width = width
	s.layout()
}

func (s *boxScreen) layout() {
	s.box.SetSize(s.width, max(0, s.height-lipgloss.Height(s.footer())))
}

// renderContent is the success slot: the title, a divider and the item
// cards, with the item counter on the right.
func (s *boxScreen) renderContent(a statusbox.Area, title string) string {
	width := a.Width
	if width <= 0 {
		width = ui.HeaderWidth
	}
	counter := counterStyle.Render(fmt.Sprintf("[- %d +]", s.vm.ItemCount()))
	gap := max(1, width-lipgloss.Width(title)-lipgloss.Width(counter))

	var b strings.Builder
	b.WriteString(contentTitleStyle.Render(title))
	b.WriteString(strings.Repeat(" ", gap))
	b.WriteString(counter)
	b.WriteString("\n")
	b.WriteString(ui.MutedStyle().Render(strings.Repeat("─", width)))

	cardWidth := max(10, width-2)
	for i := 0; i < s.vm.ItemCount(); i++ {
		b.WriteString("\n")
		b.WriteString(cardStyle.Width(cardWidth).Render(fmt.Sprintf("Item #%d", i)))
	}
	return b.String()
}

func (s *boxScreen) footer() string {
	return s.help.View(boxKeys)
}

func (s *boxScreen) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, s.box.View(), s.footer())
}

func (s *boxScreen) Close() {}
