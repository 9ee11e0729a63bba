package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DividerWidth is the default width for divider lines.
const DividerWidth = 50

// StatusWriter prints one-line results of CLI steps.
type StatusWriter struct {
	w io.Writer
}

// NewStatusWriter creates a StatusWriter writing to w.
func NewStatusWriter(w io.Writer) *StatusWriter {
	return &StatusWriter{w: w}
}

// Success prints a completed step.
// Shows: ✓ Created .statusbox.yaml
func (s *StatusWriter) Success(msg string) {
	style := lipgloss.NewStyle().Foreground(ColorSuccess)
	fmt.Fprintf(s.w, "%s %s\n", style.Render(SymbolSuccess), msg)
}

// Fail prints a failed step, with the error on a muted line below.
// Shows: ✗ Invalid value for paging.page_size
func (s *StatusWriter) Fail(msg string, err error) {
	fmt.Fprintf(s.w, "%s %s\n", ErrorStyle().Render(SymbolFail), msg)
	if err != nil {
		fmt.Fprintf(s.w, "  %s\n", MutedStyle().Render(err.Error()))
	}
}

// Skip prints a step that did nothing.
// Shows: ∅ Config unchanged (cancelled)
func (s *StatusWriter) Skip(msg, reason string) {
	style := lipgloss.NewStyle().Foreground(ColorWarning)
	if reason == "" {
		fmt.Fprintf(s.w, "%s %s\n", style.Render(SymbolEmpty), msg)
		return
	}
	fmt.Fprintf(s.w, "%s %s %s\n", style.Render(SymbolEmpty), msg, MutedStyle().Render("("+reason+")"))
}

// Sub prints an indented detail line.
// Shows:   • statusbox demo      try the widgets
func (s *StatusWriter) Sub(name, detail string) {
	fmt.Fprintf(s.w, "  %s %s %s\n", MutedStyle().Render(SymbolBullet), padRight(name, 20), MutedStyle().Render(detail))
}

// Divider prints a thin horizontal line.
func (s *StatusWriter) Divider() {
	fmt.Fprintf(s.w, "%s\n", FormatDivider(DividerWidth))
}

// FormatDivider returns a divider line as a string.
func FormatDivider(width int) string {
	return MutedStyle().Render(strings.Repeat("─", width))
}
