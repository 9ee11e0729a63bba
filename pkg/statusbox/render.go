package statusbox

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Slot names the renderer role that produced a Frame's content.
type Slot int

const (
	SlotInitial Slot = iota
	SlotEmpty
	SlotError
	SlotContent
)

// String returns a human-readable slot name.
func (s Slot) String() string {
	switch s {
	case SlotInitial:
		return "initial"
	case SlotEmpty:
		return "empty"
	case SlotError:
		return "error"
	case SlotContent:
		return "content"
	default:
		return "unknown"
	}
}

// Option overrides a registry setting for a single Render call or Box.
type Option func(*renderOptions)

type renderOptions struct {
	renderers  Renderers
	blockInput bool
}

// WithInitial overrides the Initial slot. nil disables it for this call site.
func WithInitial(fn InitialFunc) Option {
	return func(o *renderOptions) { o.renderers.Initial = fn }
}

// WithEmpty overrides the Empty slot. nil disables it for this call site.
func WithEmpty(fn EmptyFunc) Option {
	return func(o *renderOptions) { o.renderers.Empty = fn }
}

// WithError overrides the Error slot. nil disables it for this call site.
func WithError(fn ErrorFunc) Option {
	return func(o *renderOptions) { o.renderers.Error = fn }
}

// WithLoading overrides the Loading slot. nil disables it for this call site.
func WithLoading(fn LoadingFunc) Option {
	return func(o *renderOptions) { o.renderers.Loading = fn }
}

// WithBlockInput overrides whether the loading overlay blocks input.
func WithBlockInput(block bool) Option {
	return func(o *renderOptions) { o.blockInput = block }
}

func resolveOptions(reg *Registry, opts []Option) renderOptions {
	o := renderOptions{
		renderers:  reg.Renderers(),
		blockInput: reg.BlockInput(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Frame is the outcome of one dispatch.
type Frame struct {
	Area Area
	// Slot is the content slot chosen from the state variant. It is set even
	// when the slot's renderer is disabled.
	Slot    Slot
	Content string
	// Overlaid is true when the loading overlay is visible. Overlay holds
	// the loading renderer's output and may be empty if that slot is
	// disabled.
	Overlaid bool
	Overlay  string
	// Blocking is true when the overlay is visible and configured to block
	// input to the content.
	Blocking bool
}

// Render dispatches state to exactly one content slot and, when loading is
// visible, records the loading slot as an overlay. Disabled renderers and a
// nil content func produce empty output, never an error.
func Render[T any](reg *Registry, area Area, state State[T], loading LoadingState, content ContentFunc[T], opts ...Option) Frame {
	o := resolveOptions(reg, opts)
	f := Frame{Area: area}

	switch state.Kind() {
	case KindError:
		f.Slot = SlotError
		if o.renderers.Error != nil {
			payload, _ := state.AsError()
			f.Content = o.renderers.Error(area, payload)
		}
	case KindEmpty:
		f.Slot = SlotEmpty
		if o.renderers.Empty != nil {
			payload, _ := state.AsEmpty()
			f.Content = o.renderers.Empty(area, payload)
		}
	case KindInitial:
		f.Slot = SlotInitial
		if o.renderers.Initial != nil {
			f.Content = o.renderers.Initial(area)
		}
	default:
		f.Slot = SlotContent
		if data, ok := state.Data(); ok && content != nil {
			f.Content = content(area, data)
		}
	}

	if loading.Visible {
		f.Overlaid = true
		f.Blocking = o.blockInput
		if o.renderers.Loading != nil {
			f.Overlay = o.renderers.Loading(area, loading)
		}
	}

	return f
}

// View composes the frame. Status slots are centered in the area, content is
// anchored top-left, and the overlay replaces the rows it covers at the
// vertical center. With an unknown area the overlay is stacked below the
// content instead.
func (f Frame) View() string {
	w, h := f.Area.Width, f.Area.Height
	if w <= 0 || h <= 0 {
		switch {
		case !f.Overlaid || f.Overlay == "":
			return f.Content
		case f.Content == "":
			return f.Overlay
		default:
			return f.Content + "\n" + f.Overlay
		}
	}

	base := placeContent(f.Slot, f.Content, w, h)
	if !f.Overlaid || f.Overlay == "" {
		return base
	}
	return overlay(base, f.Overlay, w, h)
}

func placeContent(slot Slot, content string, w, h int) string {
	hpos, vpos := lipgloss.Center, lipgloss.Center
	if slot == SlotContent {
		hpos, vpos = lipgloss.Left, lipgloss.Top
	}
	placed := lipgloss.Place(w, h, hpos, vpos, content)
	return clip(placed, w, h)
}

// clip cuts s to at most w cells per line and h lines.
func clip(s string, w, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for i, line := range lines {
		if lipgloss.Width(line) > w {
			lines[i] = lipgloss.NewStyle().MaxWidth(w).Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func overlay(base, top string, w, h int) string {
	baseLines := strings.Split(base, "\n")
	topLines := strings.Split(clip(top, w, h), "\n")

	start := (len(baseLines) - len(topLines)) / 2
	if start < 0 {
		start = 0
	}
	for i, line := range topLines {
		row := start + i
		if row >= len(baseLines) {
			break
		}
		baseLines[row] = lipgloss.PlaceHorizontal(w, lipgloss.Center, line)
	}
	return strings.Join(baseLines, "\n")
}
