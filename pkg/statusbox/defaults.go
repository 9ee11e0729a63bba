package statusbox

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/statusbox/internal/ui"
)

// Hints are the texts shown by the built-in Empty and Error views.
type Hints struct {
	Empty string
	Error string
}

// DefaultHints returns the built-in hint texts.
func DefaultHints() Hints {
	return Hints{
		Empty: "No data",
		Error: "Something went wrong",
	}
}

var (
	emptyIconStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Bold(true)

	errorIconStyle = lipgloss.NewStyle().
			Foreground(ui.ColorError).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			PaddingTop(1)

	causeStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSecondary)
)

// DefaultInitialView renders nothing.
func DefaultInitialView(Area) string {
	return ""
}

// DefaultEmptyView renders the empty icon above hint.
func DefaultEmptyView(a Area, hint string) string {
	return iconText(a, emptyIconStyle.Render(ui.SymbolEmpty), hint)
}

// DefaultErrorView renders the error icon above the state's message, or hint
// when the message is empty. The cause, if any, goes on a muted line below.
func DefaultErrorView(a Area, s ErrorState, hint string) string {
	text := s.Message
	if text == "" {
		text = hint
	}
	view := iconText(a, errorIconStyle.Render(ui.SymbolFail), text)
	if s.Cause != nil {
		cause := causeStyle.Render(truncate(s.Cause.Error(), a.Width))
		view = lipgloss.JoinVertical(lipgloss.Center, view, cause)
	}
	return view
}

// DefaultLoadingView renders an animated spinner. A string Extra is shown as
// a label next to it.
func DefaultLoadingView(a Area, l LoadingState) string {
	glyph := spinnerStyle.Render(ui.SpinnerFrame(a.Frame))
	switch extra := l.Extra.(type) {
	case nil:
		return glyph
	case string:
		if extra == "" {
			return glyph
		}
		return glyph + " " + extra
	default:
		return glyph + " " + fmt.Sprint(extra)
	}
}

func iconText(a Area, icon, text string) string {
	return lipgloss.JoinVertical(lipgloss.Center, icon, hintStyle.Render(truncate(text, a.Width)))
}

// truncate shortens s to width cells. width <= 0 means unbounded.
func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
