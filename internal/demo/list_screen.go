package demo

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/statusbox/internal/ui"
	"github.com/rileyhilliard/statusbox/pkg/statusbox/paging"
)

const maxColumns = 3

var (
	itemTitleStyle = lipgloss.NewStyle().Bold(true)

	itemCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorBorder).
			Padding(0, 1)

	bubbleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorSecondary).
			Padding(0, 1)
)

// listScreen shows a paged list of mock items. The append and prepend demos
// differ only in their source, anchoring and item rendering.
type listScreen struct {
	id     string
	header ui.HeaderInfo
	pager  *Pager[Item]
	list   paging.List[Item]
	help   help.Model
	// grid enables the columns key.
	grid bool

	width  int
	height int
}

func newAppendScreen(env Env) *listScreen {
	pc := env.Config.Paging
	source := &MockSource{
		PageSize:  pc.PageSize,
		MaxPages:  pc.MaxPages,
		Delay:     pc.Delay,
		FailEvery: pc.FailEvery,
	}
	return newListScreen(env, AppendID, source, ui.HeaderInfo{
		Title:    "Paging - Load More",
		Subtitle: "scroll down to load the next page",
		Back:     true,
	}, cardItem, paging.ListConfig{Columns: 1}, true)
}

func newPrependScreen(env Env) *listScreen {
	pc := env.Config.Paging
	source := &MockSource{
		PageSize:  pc.PageSize,
		MaxPages:  pc.MaxPages,
		Delay:     pc.Delay,
		FailEvery: pc.FailEvery,
		Reverse:   true,
	}
	return newListScreen(env, PrependID, source, ui.HeaderInfo{
		Title:    "Paging - Load Previous",
		Subtitle: "scroll up to load older messages",
		Back:     true,
	}, bubbleItem, paging.ListConfig{AnchorBottom: true}, false)
}

func newListScreen(env Env, id string, source Source[Item], header ui.HeaderInfo, item paging.ItemFunc[Item], cfg paging.ListConfig, grid bool) *listScreen {
	pc := env.Config.Paging
	pager := NewPager[Item](source, PagerConfig{
		PageSize:         pc.PageSize,
		PrefetchDistance: pc.PrefetchDistance,
		Placeholders:     pc.Placeholders,
	}, env.Log)

	renderers := paging.DefaultRowRenderersWith(env.Config.Hints.RowHints())
	cfg.Renderers = &renderers

	return &listScreen{
		id:     id,
		header: header,
		pager:  pager,
		list:   paging.NewList[Item](pager, item, cfg),
		help:   help.New(),
		grid:   grid,
	}
}

func (s *listScreen) ID() string { return s.id }

func (s *listScreen) Header() ui.HeaderInfo {
	h := s.header
	if s.grid && s.list.Columns() > 1 {
		h.Subtitle = fmt.Sprintf("%s (%d columns)", h.Subtitle, s.list.Columns())
	}
	return h
}

func (s *listScreen) Init() tea.Cmd {
	return tea.Batch(s.pager.Refresh(), s.list.Init())
}

func (s *listScreen) Update(msg tea.Msg) (tea.Cmd, *Nav) {
	s.pager.Update(msg)

	if msg, ok := msg.(tea.KeyMsg); ok && s.grid && key.Matches(msg, columnsKey) {
		s.list.SetColumns(s.list.Columns()%maxColumns + 1)
		return s.list.Sync(), nil
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return cmd, nil
}

func (s *listScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.help.Width = width
	s.list.SetSize(width, max(0, height-lipgloss.Height(s.footer())))
}

func (s *listScreen) footer() string {
	h := listHelp{list: s.list.KeyMap().ShortHelp()}
	if s.grid {
		h.extra = []key.Binding{columnsKey}
	}
	return s.help.View(h)
}

func (s *listScreen) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, s.list.View(), s.footer())
}

func (s *listScreen) Close() {
	s.pager.Close()
}

// cardItem renders an item as a bordered card sized to its cell.
func cardItem(ctx paging.RowContext, _ int, it Item) string {
	style := itemCardStyle
	if ctx.Width > 2 {
		style = style.Width(ctx.Width - 2)
	}
	return style.Render(itemTitleStyle.Render(it.Title) + "\n" + ui.MutedStyle().Render(it.Description))
}

// bubbleItem renders an item as a chat bubble, alternating sides.
func bubbleItem(ctx paging.RowContext, _ int, it Item) string {
	view := bubbleStyle.Render(itemTitleStyle.Render(it.Title) + "\n" + it.Description)
	if ctx.Width <= 0 {
		return view
	}
	pos := lipgloss.Left
	if it.ID%2 == 0 {
		pos = lipgloss.Right
	}
	return lipgloss.PlaceHorizontal(ctx.Width, pos, view)
}
