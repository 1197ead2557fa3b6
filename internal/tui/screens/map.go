package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/yatra/internal/fixtures"
	"github.com/alexisbeaulieu97/yatra/internal/model"
	"github.com/alexisbeaulieu97/yatra/internal/ui/components"
)

// Map lists the static points of interest around the initial region and
// opens a detail modal for the selected one.
type Map struct {
	deps     Deps
	frame    frame
	region   model.Coordinates
	markers  []model.MarkerData
	cursor   int
	selected *model.MarkerData
}

// NewMap loads the fixture markers, monuments first.
func NewMap(deps Deps) Map {
	return Map{
		deps:    deps,
		frame:   newFrame(deps.Theme),
		region:  fixtures.InitialRegion,
		markers: fixtures.Markers(),
	}
}

func (m Map) Init() tea.Cmd { return nil }

// Capturing is true while the detail modal is open so esc closes it.
func (m Map) Capturing() bool { return m.selected != nil }

// Selected returns the marker shown in the modal.
func (m Map) Selected() (model.MarkerData, bool) {
	if m.selected == nil {
		return model.MarkerData{}, false
	}
	return *m.selected, true
}

func (m Map) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if m.frame.apply(msg) {
		return m, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.selected != nil {
		switch key.String() {
		case "esc", "enter", "q":
			m.selected = nil
		}
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.markers)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(m.markers) {
			marker := m.markers[m.cursor]
			m.selected = &marker
		}
	}
	return m, nil
}

func (m Map) View() string {
	if m.selected != nil {
		return m.renderModal(*m.selected)
	}

	st := m.frame.styles
	c := m.frame.colors
	monument := lipgloss.NewStyle().Foreground(c.Primary)
	restaurant := lipgloss.NewStyle().Foreground(c.Error)

	var b strings.Builder
	b.WriteString(st.Title.Render("Explore Map"))
	b.WriteString("\n")
	b.WriteString(st.Subtitle.Render("Discover tourist spots & restaurants"))
	b.WriteString("\n")
	b.WriteString(st.Muted.Render("Region: " + m.region.String()))
	b.WriteString("\n\n")

	for i, marker := range m.markers {
		pin := monument.Render("●")
		if marker.Type == model.MarkerRestaurant {
			pin = restaurant.Render("●")
		}
		line := fmt.Sprintf("%s %-28s %s", pin, marker.Name, st.Muted.Render(marker.Coordinates.String()))
		if i == m.cursor {
			line = st.Selected.Render(line)
		} else {
			line = " " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(monument.Render("●") + " Tourist Spots   " + restaurant.Render("●") + " Restaurants")
	b.WriteString("\n")
	b.WriteString(st.Footer.Render("↑/↓ move • enter details"))
	return b.String()
}

func (m Map) renderModal(marker model.MarkerData) string {
	st := m.frame.styles
	c := m.frame.colors

	var rows []string
	if marker.Type == model.MarkerMonument {
		rows = []string{
			st.Title.Foreground(c.Primary).Render("📍 " + marker.Name),
			st.Label.Render("Description"),
			st.Body.Width(50).Render(marker.Description),
			"",
			st.Body.Render("📍 Historic Monument"),
			st.Body.Render("🎫 Entry may require tickets"),
			st.Body.Render("📸 Photography allowed"),
		}
	} else {
		rows = []string{
			st.Title.Foreground(c.Error).Render("🍴 " + marker.Name),
			st.Label.Render("Cuisine"),
			st.Body.Render(marker.Cuisine),
			st.Body.Render(fmt.Sprintf("⭐ %.1f / 5.0", marker.Rating)),
			"",
			st.Body.Render("🍽️ Dine-in available"),
			st.Body.Render("🚗 Parking available"),
			st.Body.Render("💳 Cards accepted"),
		}
	}
	rows = append(rows, "", components.Button{Title: "Get Directions", Focused: true}.Render(c, ""), st.Muted.Render("esc close"))

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c.Border).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.Place(m.frame.width, m.frame.height-2, lipgloss.Center, lipgloss.Center, box)
}
