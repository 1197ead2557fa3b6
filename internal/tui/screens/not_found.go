package screens

import tea "github.com/charmbracelet/bubbletea"

// NotFound is shown for a route with no screen.
type NotFound struct {
	frame frame
	route string
}

// NewNotFound returns the fallback screen for route.
func NewNotFound(deps Deps, route string) NotFound {
	return NotFound{frame: newFrame(deps.Theme), route: route}
}

func (n NotFound) Init() tea.Cmd { return nil }

func (n NotFound) Capturing() bool { return false }

func (n NotFound) Update(msg tea.Msg) (Screen, tea.Cmd) {
	n.frame.apply(msg)
	return n, nil
}

func (n NotFound) View() string {
	st := n.frame.styles
	return st.Title.Render("This screen doesn't exist.") + "\n" +
		st.Muted.Render(n.route) + "\n" +
		st.Footer.Render("esc back")
}
