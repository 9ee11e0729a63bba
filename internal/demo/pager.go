package demo

import (
	"context"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/statusbox/internal/logger"
	"github.com/rileyhilliard/statusbox/pkg/statusbox/paging"
)

var lastPagerID int64

// PagerConfig configures a Pager.
type PagerConfig struct {
	PageSize int
	// PrefetchDistance is how many items from an edge the visible window
	// may get before the adjacent page is requested.
	PrefetchDistance int
	// Placeholders reports a page of pending items after the loaded ones
	// while an append is in flight.
	Placeholders bool
	// InitialKey is the page a refresh loads.
	InitialKey int
}

// pageLoadedMsg delivers the result of one page request.
type pageLoadedMsg[T any] struct {
	pagerID int
	gen     int
	phase   paging.Phase
	page    Page[T]
	err     error
}

// Pager is a paging controller over a Source. It satisfies paging.Items and
// paging.Hinter. All methods run on the Bubble Tea goroutine; page loads run
// in commands and come back through Update.
type Pager[T any] struct {
	id     int
	source Source[T]
	cfg    PagerConfig
	log    logger.Logger

	pages  []Page[T]
	count  int
	states paging.LoadStates

	// gen invalidates results of loads started before the last refresh.
	gen    int
	ctx    context.Context
	cancel context.CancelFunc
}

// NewPager creates a Pager. Nothing is loaded until Refresh.
func NewPager[T any](source Source[T], cfg PagerConfig, log logger.Logger) *Pager[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 20
	}
	if log == nil {
		log = logger.Noop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pager[T]{
		id:     int(atomic.AddInt64(&lastPagerID, 1)),
		source: source,
		cfg:    cfg,
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}
}

// ItemCount implements paging.Items.
func (p *Pager[T]) ItemCount() int {
	if p.cfg.Placeholders && p.states.Append.IsLoading() && p.count > 0 {
		return p.count + p.cfg.PageSize
	}
	return p.count
}

// ItemAt implements paging.Items. Indexes past the loaded items are pending.
func (p *Pager[T]) ItemAt(index int) (item T, ok bool) {
	if index < 0 {
		return item, false
	}
	for _, pg := range p.pages {
		if index < len(pg.Data) {
			return pg.Data[index], true
		}
		index -= len(pg.Data)
	}
	return item, false
}

// LoadStates implements paging.Items.
func (p *Pager[T]) LoadStates() paging.LoadStates {
	return p.states
}

// Refresh cancels every in-flight load and reloads from the initial key.
func (p *Pager[T]) Refresh() tea.Cmd {
	p.cancel()
	p.ctx, p.cancel = context.WithCancel(context.Background())
	p.gen++
	p.states = paging.LoadStates{}
	p.log.Debug("pager %d: refresh (gen %d)", p.id, p.gen)
	return p.load(paging.PhaseRefresh, p.cfg.InitialKey)
}

// Retry re-issues every failed load. A failed refresh is retried as a
// refresh.
func (p *Pager[T]) Retry() tea.Cmd {
	if p.states.Refresh.Kind() == paging.KindError {
		return p.Refresh()
	}
	var cmds []tea.Cmd
	if p.states.Prepend.Kind() == paging.KindError {
		cmds = append(cmds, p.load(paging.PhasePrepend, p.pages[0].PrevKey))
	}
	if p.states.Append.Kind() == paging.KindError {
		cmds = append(cmds, p.load(paging.PhaseAppend, p.pages[len(p.pages)-1].NextKey))
	}
	return tea.Batch(cmds...)
}

// Hint implements paging.Hinter: it loads the adjacent page when the visible
// window comes within PrefetchDistance of a loaded edge. Failed phases wait
// for an explicit Retry.
func (p *Pager[T]) Hint(first, last int) tea.Cmd {
	if p.states.Refresh.Kind() != paging.KindNotLoading || len(p.pages) == 0 {
		return nil
	}
	var cmds []tea.Cmd
	if first <= p.cfg.PrefetchDistance && p.idle(p.states.Prepend) {
		cmds = append(cmds, p.load(paging.PhasePrepend, p.pages[0].PrevKey))
	}
	if last >= p.count-1-p.cfg.PrefetchDistance && p.idle(p.states.Append) {
		cmds = append(cmds, p.load(paging.PhaseAppend, p.pages[len(p.pages)-1].NextKey))
	}
	return tea.Batch(cmds...)
}

func (p *Pager[T]) idle(st paging.LoadState) bool {
	return st.Kind() == paging.KindNotLoading && !st.EndReached()
}

// Update applies a page result addressed to this pager. handled is false for
// messages that belong to someone else.
func (p *Pager[T]) Update(msg tea.Msg) (handled bool) {
	loaded, ok := msg.(pageLoadedMsg[T])
	if !ok || loaded.pagerID != p.id {
		return false
	}
	if loaded.gen != p.gen {
		p.log.Debug("pager %d: dropping stale %s result (gen %d)", p.id, loaded.phase, loaded.gen)
		return true
	}

	if loaded.err != nil {
		p.log.Warn("pager %d: %s failed: %v", p.id, loaded.phase, loaded.err)
		p.states = p.states.WithPhase(loaded.phase, paging.Failed(loaded.err))
		return true
	}

	pg := loaded.page
	switch loaded.phase {
	case paging.PhaseRefresh:
		p.pages = []Page[T]{pg}
		p.states = paging.LoadStates{
			Prepend: paging.NotLoading(pg.PrevKey == NoKey),
			Append:  paging.NotLoading(pg.NextKey == NoKey),
		}
	case paging.PhasePrepend:
		p.pages = append([]Page[T]{pg}, p.pages...)
		p.states.Prepend = paging.NotLoading(pg.PrevKey == NoKey)
	case paging.PhaseAppend:
		p.pages = append(p.pages, pg)
		p.states.Append = paging.NotLoading(pg.NextKey == NoKey)
	}

	p.count = 0
	for _, page := range p.pages {
		p.count += len(page.Data)
	}
	p.log.Debug("pager %d: %s page %d loaded, %d items", p.id, loaded.phase, pg.Key, p.count)
	return true
}

// Close cancels in-flight loads.
func (p *Pager[T]) Close() {
	p.cancel()
}

func (p *Pager[T]) load(phase paging.Phase, key int) tea.Cmd {
	p.states = p.states.WithPhase(phase, paging.Loading())

	ctx, src := p.ctx, p.source
	id, gen := p.id, p.gen
	params := LoadParams{Key: key, Size: p.cfg.PageSize}

	return func() tea.Msg {
		page, err := src.Load(ctx, params)
		return pageLoadedMsg[T]{pagerID: id, gen: gen, phase: phase, page: page, err: err}
	}
}
