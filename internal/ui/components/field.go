package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/yatra/internal/theme"
)

// RenderField frames an input widget with its label and an optional hint
// line (character counters, format tips).
func RenderField(label, input, hint string, focused bool, c theme.Colors) string {
	styles := theme.NewStyles(c)
	frame := styles.Input
	if focused {
		frame = styles.InputFocus
	}

	rows := []string{styles.Label.Render(label), frame.Render(input)}
	if hint != "" {
		rows = append(rows, styles.Muted.Render(hint))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
