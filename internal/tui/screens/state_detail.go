package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/yatra/internal/fixtures"
	"github.com/alexisbeaulieu97/yatra/internal/model"
)

// StateDetail shows everything known about one state.
type StateDetail struct {
	deps     Deps
	frame    frame
	id       string
	state    model.State
	found    bool
	viewport viewport.Model
}

// NewStateDetail looks id up in the fixtures. An unknown id renders a not
// found message instead of failing.
func NewStateDetail(deps Deps, id string) StateDetail {
	s, ok := fixtures.StateByID(id)
	d := StateDetail{deps: deps, frame: newFrame(deps.Theme), id: id, state: s, found: ok}
	d.viewport = viewport.New(d.frame.contentWidth(), d.frame.height-2)
	d.viewport.SetContent(d.body())
	return d
}

func (d StateDetail) Init() tea.Cmd { return nil }

func (d StateDetail) Capturing() bool { return false }

// Found reports whether the id matched a state.
func (d StateDetail) Found() bool { return d.found }

func (d StateDetail) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if d.frame.apply(msg) {
		d.viewport.Width = d.frame.contentWidth()
		d.viewport.Height = d.frame.height - 2
		d.viewport.SetContent(d.body())
		return d, nil
	}
	if _, ok := msg.(tea.KeyMsg); !ok {
		return d, nil
	}
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

func (d StateDetail) body() string {
	st := d.frame.styles
	if !d.found {
		return st.Error.Render("State not found")
	}

	body := st.Body.Width(d.frame.contentWidth() - 2)
	var b strings.Builder
	section := func(title string) {
		b.WriteString(st.Section.Render(title))
		b.WriteString("\n")
	}

	b.WriteString(st.Title.Render(d.state.Name))
	b.WriteString("\n")
	b.WriteString(st.Muted.Render("📅 Best Time: " + d.state.BestTime))
	b.WriteString("\n")
	b.WriteString(st.Muted.Render("💰 Budget: " + d.state.Budget))
	b.WriteString("\n")

	section("Tourist Attractions")
	for _, a := range d.state.TouristAttractions {
		b.WriteString(st.Accent.Render("• " + a.Name))
		b.WriteString("\n")
		b.WriteString(body.Render("  " + a.Description))
		b.WriteString("\n")
	}

	section("Famous Restaurants")
	for _, r := range d.state.Restaurants {
		b.WriteString(st.Body.Render(fmt.Sprintf("• %s (%s)  ⭐ %.1f", r.Name, r.Cuisine, r.Rating)))
		b.WriteString("\n")
	}

	section("Culture")
	b.WriteString(body.Render(d.state.Culture))
	b.WriteString("\n")
	section("Festivals")
	b.WriteString(body.Render(d.state.Festivals))
	b.WriteString("\n")
	section("Famous Places")
	b.WriteString(body.Render(d.state.FamousPlaces))
	return b.String()
}

func (d StateDetail) View() string {
	return d.viewport.View() + "\n" + d.frame.styles.Footer.Render("↑/↓ scroll • esc back")
}
