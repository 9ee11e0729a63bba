package paging

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/statusbox/pkg/statusbox"
)

// ListConfig configures a List.
type ListConfig struct {
	// Renderers overrides the built-in row renderers when non-nil.
	Renderers *RowRenderers
	// Columns > 1 lays items out as a grid.
	Columns int
	// AnchorBottom starts scrolled to the bottom and keeps the distance to
	// the bottom stable when rows are inserted above, for chat-style lists
	// that grow by prepending.
	AnchorBottom bool
	// KeyMap overrides DefaultKeyMap when non-nil.
	KeyMap *KeyMap
}

// span is the line range [start, end) a row occupies in the content.
type span struct {
	start, end int
}

// List is an embeddable Bubble Tea component that renders a paged list with
// its loading rows in a scrollable viewport.
type List[T any] struct {
	items     Items[T]
	item      ItemFunc[T]
	renderers RowRenderers
	keys      KeyMap
	columns   int
	anchor    bool

	viewport viewport.Model
	ticker   statusbox.Ticker
	width    int
	height   int

	rows    []Row[T]
	spans   []span
	content string
	total   int
	settled bool
}

// NewList creates a List over items. item draws loaded data rows.
func NewList[T any](items Items[T], item ItemFunc[T], cfg ListConfig) List[T] {
	renderers := DefaultRowRenderers()
	if cfg.Renderers != nil {
		renderers = *cfg.Renderers
	}
	keys := DefaultKeyMap()
	if cfg.KeyMap != nil {
		keys = *cfg.KeyMap
	}
	l := List[T]{
		items:     items,
		item:      item,
		renderers: renderers,
		keys:      keys,
		columns:   cfg.Columns,
		anchor:    cfg.AnchorBottom,
		viewport:  viewport.New(0, 0),
		ticker:    statusbox.NewTicker(),
	}
	l.reflow()
	return l
}

// Init recomputes the rows and starts animations and prefetching.
func (l *List[T]) Init() tea.Cmd {
	return l.Sync()
}

// SetSize sets the list's dimensions.
func (l *List[T]) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.viewport.Width = width
	l.viewport.Height = height
	l.reflow()
}

// SetColumns switches between list (1) and grid (>1) layout.
func (l *List[T]) SetColumns(columns int) {
	l.columns = columns
	l.reflow()
}

// Columns returns the current column count.
func (l List[T]) Columns() int {
	if l.columns < 1 {
		return 1
	}
	return l.columns
}

// KeyMap returns the active key bindings, for help views.
func (l List[T]) KeyMap() KeyMap {
	return l.keys
}

// Rows returns the row sequence of the last sync.
func (l List[T]) Rows() []Row[T] {
	return l.rows
}

// Update handles retry/refresh keys, scrolling and animation, then
// resynchronises with the controller. Messages addressed to the controller
// must be applied to it before they are passed here.
func (l List[T]) Update(msg tea.Msg) (List[T], tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, l.keys.Retry):
			cmds = append(cmds, l.retry())
		case key.Matches(msg, l.keys.Refresh):
			cmds = append(cmds, l.items.Refresh())
		case key.Matches(msg, l.keys.Top):
			l.viewport.GotoTop()
		case key.Matches(msg, l.keys.Bottom):
			l.viewport.GotoBottom()
		default:
			var cmd tea.Cmd
			l.viewport, cmd = l.viewport.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		l.viewport, cmd = l.viewport.Update(msg)
		cmds = append(cmds, cmd)

	default:
		if cmd, handled := l.ticker.Update(msg, l.animating()); handled {
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, l.Sync())
	return l, tea.Batch(cmds...)
}

// Sync recomputes rows from the controller, re-renders the content and
// returns commands for the spinner animation and prefetch hints.
func (l *List[T]) Sync() tea.Cmd {
	l.reflow()

	var cmds []tea.Cmd
	if l.animating() {
		cmds = append(cmds, l.ticker.Start())
	} else {
		l.ticker.Stop()
	}
	if h, ok := l.items.(Hinter); ok {
		if first, last, ok := l.VisibleItems(); ok {
			cmds = append(cmds, h.Hint(first, last))
		}
	}
	return tea.Batch(cmds...)
}

// reflow recomputes rows and content without starting any commands.
func (l *List[T]) reflow() {
	l.rows = Rows(l.items)
	l.render()
}

func (l *List[T]) render() {
	ctx := RowContext{Width: l.width, Height: l.height, Frame: l.ticker.Frame}

	l.spans = make([]span, len(l.rows))
	var views []string
	line := 0
	add := func(view string, rowIdx ...int) {
		n := 0
		if view != "" {
			n = lipgloss.Height(view)
			views = append(views, view)
		}
		for _, i := range rowIdx {
			l.spans[i] = span{start: line, end: line + n}
		}
		line += n
	}

	if l.Columns() > 1 {
		for _, gl := range RenderGrid(l.rows, l.renderers, l.item, ctx, l.Columns()) {
			add(gl.View, gl.Rows...)
		}
	} else {
		for i, row := range l.rows {
			add(RenderRow(row, l.renderers, l.item, ctx), i)
		}
	}

	prevTotal, prevOffset := l.total, l.viewport.YOffset
	l.content = strings.Join(views, "\n")
	l.total = line
	l.viewport.SetContent(l.content)

	if !l.anchor {
		return
	}
	switch {
	case l.items.ItemCount() == 0:
		l.settled = false
	case !l.settled:
		l.viewport.GotoBottom()
		l.settled = l.height > 0
	case l.total != prevTotal:
		l.viewport.SetYOffset(l.total - (prevTotal - prevOffset))
	}
}

// VisibleItems returns the first and last item index with at least one line
// inside the viewport. ok is false when no item is visible.
func (l List[T]) VisibleItems() (first, last int, ok bool) {
	top, bottom := l.visibleLines()
	first, last = -1, -1
	for i, row := range l.rows {
		if row.IsStatus() || !l.spans[i].overlaps(top, bottom) {
			continue
		}
		if first < 0 {
			first = row.Index
		}
		last = row.Index
	}
	return first, last, first >= 0
}

func (l List[T]) visibleLines() (top, bottom int) {
	if l.height <= 0 {
		return 0, l.total
	}
	return l.viewport.YOffset, l.viewport.YOffset + l.height
}

func (s span) overlaps(top, bottom int) bool {
	return s.start < bottom && s.end > top && s.end > s.start
}

// retry invokes the retry affordance of the first visible error row, or of
// the first error row when none is on screen.
func (l List[T]) retry() tea.Cmd {
	top, bottom := l.visibleLines()
	fallback := -1
	for i, row := range l.rows {
		if !row.IsError() || row.Retry == nil {
			continue
		}
		if l.spans[i].overlaps(top, bottom) {
			return row.Retry()
		}
		if fallback < 0 {
			fallback = i
		}
	}
	if fallback >= 0 {
		return l.rows[fallback].Retry()
	}
	return nil
}

func (l List[T]) animating() bool {
	for _, row := range l.rows {
		switch row.Kind {
		case RowRefreshLoading, RowPrependLoading, RowAppendLoading:
			return true
		}
	}
	return false
}

// View renders the visible part of the list.
func (l List[T]) View() string {
	if l.height <= 0 {
		return l.content
	}
	return l.viewport.View()
}
