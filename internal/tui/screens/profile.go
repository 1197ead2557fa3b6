package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/yatra/internal/fixtures"
	"github.com/alexisbeaulieu97/yatra/internal/logger"
	"github.com/alexisbeaulieu97/yatra/internal/model"
	"github.com/alexisbeaulieu97/yatra/internal/ui/components"
)

// logoutConfirmedMsg is sent by the logout alert's confirm button.
type logoutConfirmedMsg struct {
	screen string
}

// Profile shows the signed-in traveller.
type Profile struct {
	id       string
	deps     Deps
	log      *logger.Logger
	frame    frame
	profile  model.UserProfile
	viewport viewport.Model
}

// NewProfile loads the fixture profile.
func NewProfile(deps Deps) Profile {
	p := Profile{
		id:      newID(),
		deps:    deps,
		log:     deps.logger("profile"),
		frame:   newFrame(deps.Theme),
		profile: fixtures.Profile(),
	}
	p.viewport = viewport.New(p.frame.contentWidth(), p.frame.height-4)
	p.viewport.SetContent(p.body())
	return p
}

func (p Profile) Init() tea.Cmd { return nil }

func (p Profile) Capturing() bool { return false }

func (p Profile) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if p.frame.apply(msg) {
		p.viewport.Width = p.frame.contentWidth()
		p.viewport.Height = p.frame.height - 4
		p.viewport.SetContent(p.body())
		return p, nil
	}

	switch msg := msg.(type) {
	case logoutConfirmedMsg:
		if msg.screen != p.id {
			return p, nil
		}
		p.log.Info("logged out")
		return p, tea.Batch(
			ShowAlert("Success", "Logged out successfully", components.AlertSuccess),
			Replace(Route{Name: RouteLogin}),
		)

	case tea.KeyMsg:
		switch msg.String() {
		case "e":
			return p, Push(Route{Name: RouteEditProfile})
		case "x", "L":
			return p, ShowAlert("Logout", "Are you sure you want to logout?", components.AlertInfo,
				AlertButton{Label: "Cancel"},
				AlertButton{Label: "Logout", Msg: logoutConfirmedMsg{screen: p.id}},
			)
		}
		var cmd tea.Cmd
		p.viewport, cmd = p.viewport.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p Profile) body() string {
	st := p.frame.styles
	c := p.frame.colors
	width := p.frame.contentWidth()

	stat := func(value, label string) string {
		return lipgloss.JoinVertical(lipgloss.Center,
			st.Accent.Render(value),
			st.Muted.Render(label),
		)
	}
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		stat(fmt.Sprint(len(p.profile.Posts)), "Posts"), "    ",
		stat(components.FormatCount(p.profile.Followers), "Followers"), "    ",
		stat(fmt.Sprint(p.profile.Following), "Following"),
	)

	var b strings.Builder
	b.WriteString(st.Title.Render(p.profile.Username))
	b.WriteString("\n")
	b.WriteString(stats)
	b.WriteString("\n\n")
	b.WriteString(st.Body.Bold(true).Render(p.profile.Name))
	b.WriteString("\n")
	b.WriteString(st.Body.Width(width - 2).Render(p.profile.Bio))
	b.WriteString("\n\n")
	b.WriteString(components.Button{Title: "Edit Profile"}.Render(c, ""))
	b.WriteString("\n")

	b.WriteString(st.Section.Render("Posts"))
	b.WriteString("\n")
	for _, post := range p.profile.Posts {
		b.WriteString(st.Body.Render("▦ " + components.Truncate(post.Caption, width-4)))
		b.WriteString("\n")
	}

	b.WriteString(st.Section.Render("Saved Travel Plans"))
	b.WriteString("\n")
	for _, plan := range p.profile.SavedPlans {
		card := lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(c.Border).
			Padding(0, 1).
			Width(width - 4).
			Render(lipgloss.JoinVertical(lipgloss.Left,
				st.Body.Bold(true).Render(plan.Destination),
				st.Muted.Render("⏱️ "+plan.Duration+"   💰 "+plan.Budget),
			))
		b.WriteString(card)
		b.WriteString("\n")
	}
	return b.String()
}

func (p Profile) View() string {
	return p.viewport.View() + "\n" + p.frame.styles.Footer.Render("e edit profile • x logout • ↑/↓ scroll")
}
