package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRow is one line of the config key table.
type ConfigRow struct {
	Key   string // Dotted config key
	Value string // Effective value
	Env   string // Environment variable that overrides the key
	// Overridden marks values that differ from the built-in default.
	Overridden bool
}

// RenderConfigTable renders config keys as an aligned, non-interactive table.
func RenderConfigTable(rows []ConfigRow) string {
	if len(rows) == 0 {
		return "No config keys"
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(ColorMuted)
	changedStyle := lipgloss.NewStyle().Foreground(ColorInfo)

	keyWidth, valueWidth := len("KEY"), len("VALUE")
	for _, row := range rows {
		keyWidth = max(keyWidth, lipgloss.Width(row.Key))
		valueWidth = max(valueWidth, lipgloss.Width(row.Value))
	}
	keyWidth += 2
	valueWidth += 2

	var output strings.Builder
	header := "  " + padRight("KEY", keyWidth) + padRight("VALUE", valueWidth) + "ENV"
	output.WriteString(headerStyle.Render(header))
	output.WriteString("\n")

	for _, row := range rows {
		marker := "  "
		value := row.Value
		if row.Overridden {
			marker = changedStyle.Render("*") + " "
			value = changedStyle.Render(value)
		}
		output.WriteString(marker)
		output.WriteString(padRight(row.Key, keyWidth))
		output.WriteString(padRight(value, valueWidth))
		output.WriteString(MutedStyle().Render(row.Env))
		output.WriteString("\n")
	}

	return output.String()
}

// padRight pads a string to the specified width.
func padRight(s string, width int) string {
	// Account for ANSI codes when calculating visible length
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visibleLen)
}
