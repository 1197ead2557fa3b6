package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/yatra/internal/theme"
)

type shellStyles struct {
	tabBar    lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	hint      lipgloss.Style
}

func newShellStyles(c theme.Colors) shellStyles {
	return shellStyles{
		tabBar: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(c.Border),
		tab:       lipgloss.NewStyle().Foreground(c.TextSecondary).Padding(0, 1),
		activeTab: lipgloss.NewStyle().Foreground(c.Primary).Bold(true).Underline(true).Padding(0, 1),
		hint:      lipgloss.NewStyle().Foreground(c.TextSecondary).Faint(true),
	}
}
