package paging

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/statusbox/internal/ui"
	"github.com/rileyhilliard/statusbox/pkg/statusbox"
)

// RowContext is the space and animation frame a row renders with.
type RowContext struct {
	Width int
	// Height is the list height; full-list status rows center in it.
	Height int
	Frame  int
}

func (c RowContext) area(height int) statusbox.Area {
	return statusbox.Area{Width: c.Width, Height: height, Frame: c.Frame}
}

// Row renderer signatures.
type (
	StatusFunc      func(ctx RowContext) string
	ErrorRowFunc    func(ctx RowContext, err error) string
	PlaceholderFunc func(ctx RowContext, index int) string
	ItemFunc[T any] func(ctx RowContext, index int, item T) string
)

// RowRenderers draws the synthetic rows. A nil field renders nothing.
type RowRenderers struct {
	RefreshLoading StatusFunc
	RefreshError   ErrorRowFunc
	PrependLoading StatusFunc
	PrependError   ErrorRowFunc
	AppendLoading  StatusFunc
	AppendError    ErrorRowFunc
	Empty          StatusFunc
	NoMore         StatusFunc
	Placeholder    PlaceholderFunc
}

// RowHints are the texts of the built-in row renderers.
type RowHints struct {
	Empty         string
	Error         string
	NoMore        string
	LoadMoreError string
	PrependError  string
	Retry         string
}

// DefaultRowHints returns the built-in row texts.
func DefaultRowHints() RowHints {
	h := statusbox.DefaultHints()
	return RowHints{
		Empty:         h.Empty,
		Error:         h.Error,
		NoMore:        "- no more data -",
		LoadMoreError: "Failed to load more",
		PrependError:  "Failed to load previous",
		Retry:         "press r to retry",
	}
}

var (
	smallStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Padding(0, 1)

	retryStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSecondary)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(ui.ColorMuted).
				Faint(true)
)

// DefaultRowRenderers returns the built-in renderers for every slot.
func DefaultRowRenderers() RowRenderers {
	return DefaultRowRenderersWith(DefaultRowHints())
}

// DefaultRowRenderersWith returns the built-in renderers using hints.
func DefaultRowRenderersWith(h RowHints) RowRenderers {
	return RowRenderers{
		RefreshLoading: func(ctx RowContext) string {
			return fullRow(ctx, statusbox.DefaultLoadingView(ctx.area(ctx.Height), statusbox.Hidden()))
		},
		RefreshError: func(ctx RowContext, err error) string {
			view := statusbox.DefaultErrorView(ctx.area(0), statusbox.ErrorState{Message: h.Error, Cause: err}, h.Error)
			view = lipgloss.JoinVertical(lipgloss.Center, view, "", retryStyle.Render(ui.SymbolRetry+" "+h.Retry))
			return fullRow(ctx, view)
		},
		PrependLoading: func(ctx RowContext) string {
			return inlineRow(ctx, statusbox.DefaultLoadingView(ctx.area(1), statusbox.Hidden()))
		},
		PrependError: func(ctx RowContext, err error) string {
			return inlineRow(ctx, smallStyle.Render(h.PrependError)+retryStyle.Render(ui.SymbolRetry+" "+h.Retry))
		},
		AppendLoading: func(ctx RowContext) string {
			return inlineRow(ctx, statusbox.DefaultLoadingView(ctx.area(1), statusbox.Hidden()))
		},
		AppendError: func(ctx RowContext, err error) string {
			return inlineRow(ctx, smallStyle.Render(h.LoadMoreError)+retryStyle.Render(ui.SymbolRetry+" "+h.Retry))
		},
		Empty: func(ctx RowContext) string {
			return fullRow(ctx, statusbox.DefaultEmptyView(ctx.area(0), h.Empty))
		},
		NoMore: func(ctx RowContext) string {
			return inlineRow(ctx, smallStyle.Render(h.NoMore))
		},
		Placeholder: func(ctx RowContext, index int) string {
			return placeholderStyle.Render(ui.SymbolPending + " …")
		},
	}
}

// fullRow centers view in the whole list area, like a status page.
func fullRow(ctx RowContext, view string) string {
	if ctx.Width <= 0 {
		return view
	}
	if ctx.Height <= 0 {
		return lipgloss.PlaceHorizontal(ctx.Width, lipgloss.Center, view)
	}
	return lipgloss.Place(ctx.Width, ctx.Height, lipgloss.Center, lipgloss.Center, view)
}

// inlineRow centers view on a single padded line.
func inlineRow(ctx RowContext, view string) string {
	if ctx.Width <= 0 {
		return view
	}
	return lipgloss.PlaceHorizontal(ctx.Width, lipgloss.Center, view)
}
