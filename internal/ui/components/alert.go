package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/yatra/internal/theme"
)

// AlertKind picks the accent colour of an alert.
type AlertKind int

const (
	AlertInfo AlertKind = iota
	AlertSuccess
	AlertError
)

// Alert is a blocking modal. Buttons are listed left to right; the
// selected one is highlighted.
type Alert struct {
	Title    string
	Message  string
	Kind     AlertKind
	Buttons  []string
	Selected int
}

// Render draws the alert centred in a width x height area.
func (a Alert) Render(c theme.Colors, width, height int) string {
	accent := c.Primary
	switch a.Kind {
	case AlertSuccess:
		accent = c.Success
	case AlertError:
		accent = c.Error
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(a.Title)
	body := lipgloss.NewStyle().Foreground(c.Text).Render(a.Message)

	buttons := a.Buttons
	if len(buttons) == 0 {
		buttons = []string{"OK"}
	}
	rendered := make([]string, len(buttons))
	for i, label := range buttons {
		style := lipgloss.NewStyle().Padding(0, 2).Foreground(c.TextSecondary)
		if i == a.Selected {
			style = style.Foreground(accent).Bold(true).Underline(true)
		}
		rendered[i] = style.Render(strings.ToUpper(label))
	}

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(accent).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Center,
			title,
			"",
			body,
			"",
			lipgloss.JoinHorizontal(lipgloss.Top, rendered...),
		))

	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
