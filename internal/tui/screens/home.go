package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/yatra/internal/fixtures"
	"github.com/alexisbeaulieu97/yatra/internal/model"
	"github.com/alexisbeaulieu97/yatra/internal/ui/components"
)

// cardHeight is the rendered height of a state card including its border.
const cardHeight = 9

// Home lists the destinations.
type Home struct {
	deps   Deps
	frame  frame
	states []model.State
	cursor int
	offset int
}

// NewHome builds the destination list from the fixtures.
func NewHome(deps Deps) Home {
	return Home{deps: deps, frame: newFrame(deps.Theme), states: fixtures.States()}
}

func (h Home) Init() tea.Cmd { return nil }

func (h Home) Capturing() bool { return false }

// Selected returns the highlighted state.
func (h Home) Selected() (model.State, bool) {
	if h.cursor < 0 || h.cursor >= len(h.states) {
		return model.State{}, false
	}
	return h.states[h.cursor], true
}

func (h Home) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if h.frame.apply(msg) {
		h.clampOffset()
		return h, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch key.String() {
	case "up", "k":
		if h.cursor > 0 {
			h.cursor--
		}
	case "down", "j":
		if h.cursor < len(h.states)-1 {
			h.cursor++
		}
	case "enter":
		if s, ok := h.Selected(); ok {
			return h, Push(Route{Name: RouteStateDetail, Param: s.ID})
		}
	}
	h.clampOffset()
	return h, nil
}

func (h Home) visibleCards() int {
	n := (h.frame.height - 8) / cardHeight
	if n < 1 {
		return 1
	}
	return n
}

func (h *Home) clampOffset() {
	visible := h.visibleCards()
	if h.cursor < h.offset {
		h.offset = h.cursor
	}
	if h.cursor >= h.offset+visible {
		h.offset = h.cursor - visible + 1
	}
}

func (h Home) View() string {
	st := h.frame.styles
	width := h.frame.contentWidth()

	var b strings.Builder
	b.WriteString(st.Title.Render("Explore India"))
	b.WriteString("\n")
	b.WriteString(st.Subtitle.Render("Discover amazing destinations"))
	b.WriteString("\n\n")

	end := h.offset + h.visibleCards()
	if end > len(h.states) {
		end = len(h.states)
	}
	for i := h.offset; i < end; i++ {
		b.WriteString(components.RenderStateCard(h.states[i], h.frame.colors, width, i == h.cursor))
		b.WriteString("\n")
	}
	b.WriteString(st.Footer.Render("↑/↓ move • enter open"))
	return b.String()
}
