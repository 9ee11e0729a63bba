package demo

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/statusbox/internal/ui"
)

// homeScreen lists the demos.
type homeScreen struct {
	menu ui.MenuModel
}

func newHomeScreen() *homeScreen {
	demos := Demos()
	items := make([]ui.MenuItem, len(demos))
	for i, d := range demos {
		items[i] = ui.MenuItem{ID: d.ID, Name: d.Name, Summary: d.Description, Keywords: d.Keywords}
	}
	return &homeScreen{menu: ui.NewMenuModel("Choose a demo to explore:", items)}
}

func (s *homeScreen) ID() string { return HomeID }

func (s *homeScreen) Header() ui.HeaderInfo {
	return ui.HeaderInfo{Title: "StatusBox Demos"}
}

func (s *homeScreen) Init() tea.Cmd { return nil }

func (s *homeScreen) Update(msg tea.Msg) (tea.Cmd, *Nav) {
	if sel, ok := msg.(ui.MenuSelectedMsg); ok {
		return nil, &Nav{ScreenID: sel.Item.ID}
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return cmd, nil
}

func (s *homeScreen) SetSize(width, height int) {
	s.menu.SetSize(width, height)
}

func (s *homeScreen) View() string {
	return s.menu.View()
}

func (s *homeScreen) Close() {}
