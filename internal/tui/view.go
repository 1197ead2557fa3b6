package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/yatra/internal/ui/components"
)

// View renders the current model state
func (m Model) View() string {
	colors := m.deps.Theme.Colors()

	if len(m.alerts) > 0 {
		a := m.alerts[0]
		labels := make([]string, 0, len(a.alert.Buttons))
		for _, b := range alertButtons(a.alert) {
			labels = append(labels, b.Label)
		}
		return components.Alert{
			Title:    a.alert.Title,
			Message:  a.alert.Message,
			Kind:     a.alert.Kind,
			Buttons:  labels,
			Selected: a.selected,
		}.Render(colors, m.width, m.height)
	}

	current := m.current()
	if current == nil {
		return ""
	}

	body := current.View()
	if !m.showTabs || len(m.stack) > 0 {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderTabBar())
}

// renderTabBar renders the bottom navigation with the active tab highlighted
func (m Model) renderTabBar() string {
	styles := newShellStyles(m.deps.Theme.Colors())

	items := make([]string, len(m.tabs))
	for i, t := range Tabs[:len(m.tabs)] {
		label := string(rune('1'+i)) + " " + t.Title
		if i == m.active {
			items[i] = styles.activeTab.Render(label)
		} else {
			items[i] = styles.tab.Render(label)
		}
	}
	bar := strings.Join(items, " ")
	return styles.tabBar.Width(m.width).Render(bar + "   " + styles.hint.Render("t theme • q quit"))
}
