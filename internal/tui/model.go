// Package tui is the application shell: tab bar, navigation stack, blocking
// alerts and the theme toggle. The screens themselves live in
// internal/tui/screens.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/yatra/internal/tui/screens"
)

// Tab is an entry of the bottom tab bar.
type Tab struct {
	Title string
	Route screens.RouteName
}

// Tabs are the top-level sections in display order.
var Tabs = []Tab{
	{Title: "Home", Route: screens.RouteHome},
	{Title: "Posts", Route: screens.RoutePosts},
	{Title: "Map", Route: screens.RouteMap},
	{Title: "Chat", Route: screens.RouteChat},
	{Title: "Profile", Route: screens.RouteProfile},
}

// alertState is a queued alert and its highlighted button.
type alertState struct {
	alert    screens.ShowAlertMsg
	selected int
}

// Model is the root Bubble Tea model.
type Model struct {
	deps screens.Deps

	// Navigation
	tabs     []screens.Screen
	active   int
	showTabs bool
	stack    []screens.Screen

	// Alerts are shown one at a time in arrival order.
	alerts []alertState

	width  int
	height int
}

// NewModel creates the shell. start is RouteTabs for the tab bar or any other
// route to open that screen alone.
func NewModel(deps screens.Deps, start screens.Route) Model {
	m := Model{deps: deps, width: 80, height: 24}
	m.reset(start)
	return m
}

// Init initializes the visible screens.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, s := range m.live() {
		cmds = append(cmds, s.Init())
	}
	return tea.Batch(cmds...)
}

func (m *Model) reset(route screens.Route) {
	m.stack = nil
	m.tabs = nil
	m.active = 0
	m.showTabs = route.Name == screens.RouteTabs || route.Name == ""
	if m.showTabs {
		for _, t := range Tabs {
			m.tabs = append(m.tabs, screens.New(screens.Route{Name: t.Route}, m.deps))
		}
		return
	}
	m.stack = []screens.Screen{screens.New(route, m.deps)}
}

// live returns every screen that can still receive messages.
func (m Model) live() []screens.Screen {
	out := make([]screens.Screen, 0, len(m.tabs)+len(m.stack))
	if m.showTabs {
		out = append(out, m.tabs...)
	}
	return append(out, m.stack...)
}

// current returns the screen receiving keys.
func (m Model) current() screens.Screen {
	if len(m.stack) > 0 {
		return m.stack[len(m.stack)-1]
	}
	if m.showTabs && m.active < len(m.tabs) {
		return m.tabs[m.active]
	}
	return nil
}

func (m Model) canPop() bool {
	if len(m.stack) == 0 {
		return false
	}
	return m.showTabs || len(m.stack) > 1
}

// ActiveTab returns the selected tab index.
func (m Model) ActiveTab() int { return m.active }

// Depth is the number of screens pushed over the base.
func (m Model) Depth() int { return len(m.stack) }

// ShowingTabs reports whether the tab bar is the navigation base.
func (m Model) ShowingTabs() bool { return m.showTabs }

// Current returns the screen receiving keys.
func (m Model) Current() screens.Screen { return m.current() }

// Alert returns the alert being shown.
func (m Model) Alert() (screens.ShowAlertMsg, bool) {
	if len(m.alerts) == 0 {
		return screens.ShowAlertMsg{}, false
	}
	return m.alerts[0].alert, true
}
