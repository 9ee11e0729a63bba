package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderInfo contains information to display in a screen header.
type HeaderInfo struct {
	Title    string // Screen title (e.g., "StatusBox Demo")
	Subtitle string // Optional subtitle shown muted on the second line
	Back     bool   // Show the "esc back" affordance
}

// HeaderWidth is the default width of the header divider
const HeaderWidth = 50

// RenderHeader renders the title bar used at the top of every demo screen.
// width <= 0 falls back to HeaderWidth.
func RenderHeader(info HeaderInfo, width int) string {
	if width <= 0 {
		width = HeaderWidth
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	backStyle := lipgloss.NewStyle().
		Foreground(ColorMuted)

	dividerStyle := lipgloss.NewStyle().
		Foreground(ColorBorder)

	var output strings.Builder

	if info.Back {
		output.WriteString(backStyle.Render("← esc"))
		output.WriteString("  ")
	}
	output.WriteString(titleStyle.Render(info.Title))
	output.WriteString("\n")

	if info.Subtitle != "" {
		output.WriteString(MutedStyle().Render(info.Subtitle))
		output.WriteString("\n")
	}

	output.WriteString(dividerStyle.Render(strings.Repeat("━", width)))

	return output.String()
}

// HeaderHeight returns the number of lines RenderHeader produces.
func HeaderHeight(info HeaderInfo) int {
	if info.Subtitle != "" {
		return 3
	}
	return 2
}
