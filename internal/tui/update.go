package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/yatra/internal/theme"
	"github.com/alexisbeaulieu97/yatra/internal/tui/screens"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Screens get the height left above the tab bar.
		cmd := m.broadcast(tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 2})
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	// Navigation messages
	case screens.PushMsg:
		s := screens.New(msg.Route, m.deps)
		s, sizeCmd := s.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height - 2})
		m.stack = append(m.stack, s)
		return m, tea.Batch(s.Init(), sizeCmd)

	case screens.BackMsg:
		if m.canPop() {
			m.stack = m.stack[:len(m.stack)-1]
		}
		return m, nil

	case screens.ReplaceMsg:
		m.reset(msg.Route)
		sizeCmd := m.broadcast(tea.WindowSizeMsg{Width: m.width, Height: m.height - 2})
		return m, tea.Batch(m.Init(), sizeCmd)

	case screens.ShowAlertMsg:
		m.alerts = append(m.alerts, alertState{alert: msg})
		return m, nil

	case theme.ChangedMsg:
		cmd := m.broadcast(msg)
		return m, cmd
	}

	// Async results, spinner ticks and chat replies go to every live screen;
	// each one ignores what it did not start.
	cmd := m.broadcast(msg)
	return m, cmd
}

func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	if m.showTabs {
		for i := range m.tabs {
			var cmd tea.Cmd
			m.tabs[i], cmd = m.tabs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	for i := range m.stack {
		var cmd tea.Cmd
		m.stack[i], cmd = m.stack[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if len(m.alerts) > 0 {
		return m.handleAlertKey(key)
	}
	if key == "ctrl+t" {
		return m, m.deps.Theme.Toggle()
	}

	current := m.current()
	if current == nil {
		return m, nil
	}

	if !current.Capturing() {
		switch key {
		case "q":
			return m, tea.Quit
		case "t":
			return m, m.deps.Theme.Toggle()
		case "esc", "backspace":
			if m.canPop() {
				m.stack = m.stack[:len(m.stack)-1]
				return m, nil
			}
		}
		if len(m.stack) == 0 && m.showTabs {
			switch key {
			case "tab", "right":
				m.active = (m.active + 1) % len(m.tabs)
				return m, nil
			case "shift+tab", "left":
				m.active = (m.active - 1 + len(m.tabs)) % len(m.tabs)
				return m, nil
			case "1", "2", "3", "4", "5":
				if i := int(key[0] - '1'); i < len(m.tabs) {
					m.active = i
				}
				return m, nil
			}
		}
	}

	updated, cmd := current.Update(msg)
	m.replaceCurrent(updated)
	return m, cmd
}

func (m *Model) replaceCurrent(s screens.Screen) {
	if len(m.stack) > 0 {
		m.stack[len(m.stack)-1] = s
		return
	}
	if m.showTabs && m.active < len(m.tabs) {
		m.tabs[m.active] = s
	}
}

// handleAlertKey drives the blocking alert. Keys other than the button
// bindings are swallowed.
func (m Model) handleAlertKey(key string) (tea.Model, tea.Cmd) {
	a := &m.alerts[0]
	buttons := alertButtons(a.alert)

	switch key {
	case "left", "h", "shift+tab":
		if a.selected > 0 {
			a.selected--
		}
		return m, nil
	case "right", "l", "tab":
		if a.selected < len(buttons)-1 {
			a.selected++
		}
		return m, nil
	case "enter", " ", "space":
		return m.dismissAlert(buttons[a.selected].Msg)
	case "esc":
		// Escape cancels a choice but acknowledges a notice.
		if len(buttons) == 1 {
			return m.dismissAlert(buttons[0].Msg)
		}
		return m.dismissAlert(nil)
	}
	return m, nil
}

func (m Model) dismissAlert(follow tea.Msg) (tea.Model, tea.Cmd) {
	m.alerts = append([]alertState(nil), m.alerts[1:]...)
	if follow == nil {
		return m, nil
	}
	return m, func() tea.Msg { return follow }
}

func alertButtons(a screens.ShowAlertMsg) []screens.AlertButton {
	if len(a.Buttons) == 0 {
		return []screens.AlertButton{{Label: "OK"}}
	}
	return a.Buttons
}
