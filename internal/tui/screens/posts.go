package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/yatra/internal/fixtures"
	"github.com/alexisbeaulieu97/yatra/internal/logger"
	"github.com/alexisbeaulieu97/yatra/internal/ui/components"
	"github.com/alexisbeaulieu97/yatra/internal/validation"
)

// postCardHeight approximates a rendered post card for scrolling.
const postCardHeight = 10

// Posts is the social feed. Likes and comments stay on this screen.
type Posts struct {
	deps   Deps
	log    *logger.Logger
	frame  frame
	cards  []components.PostCard
	cursor int
	offset int

	commenting    bool
	commentPostID string
	comment       textarea.Model
}

// NewPosts seeds the feed from the fixtures.
func NewPosts(deps Deps) Posts {
	p := Posts{deps: deps, log: deps.logger("posts"), frame: newFrame(deps.Theme)}
	for _, post := range fixtures.Posts() {
		p.cards = append(p.cards, components.NewPostCard(post))
	}
	p.comment = areaField("Add Comment", "Write a comment...", 0, 4).area
	return p
}

func (p Posts) Init() tea.Cmd { return nil }

// Capturing is true while the comment modal is open.
func (p Posts) Capturing() bool { return p.commenting }

// Card returns the card at i.
func (p Posts) Card(i int) components.PostCard { return p.cards[i] }

// Commenting reports whether the comment modal is open.
func (p Posts) Commenting() bool { return p.commenting }

func (p Posts) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if p.frame.apply(msg) {
		p.comment.SetWidth(p.frame.contentWidth() - 8)
		return p, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	if p.commenting {
		return p.updateComment(key)
	}

	switch key.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.cards)-1 {
			p.cursor++
		}
	case "l", " ", "space":
		if len(p.cards) > 0 {
			card := &p.cards[p.cursor]
			liked := card.ToggleLike()
			p.log.WithFields(map[string]any{"post_id": card.Post().ID, "liked": liked}).Info("liked post")
		}
	case "c":
		if len(p.cards) > 0 {
			p.commenting = true
			p.commentPostID = p.cards[p.cursor].Post().ID
			p.comment.Focus()
		}
	case "s":
		return p, ShowAlert("Share", "Share functionality coming soon!", components.AlertInfo)
	case "n", "+":
		return p, Push(Route{Name: RouteCreatePost})
	}
	p.clampOffset()
	return p, nil
}

func (p Posts) updateComment(key tea.KeyMsg) (Screen, tea.Cmd) {
	switch key.String() {
	case "esc":
		p.closeComment()
		return p, nil
	case "enter", "ctrl+s":
		text := p.comment.Value()
		if validation.IsBlank(text) {
			return p, nil
		}
		p.log.WithFields(map[string]any{"post_id": p.commentPostID}).Info("comment posted")
		p.comment.Reset()
		p.closeComment()
		return p, ShowAlert("Success", "Comment posted!", components.AlertSuccess)
	}
	var cmd tea.Cmd
	p.comment, cmd = p.comment.Update(key)
	return p, cmd
}

func (p *Posts) closeComment() {
	p.commenting = false
	p.commentPostID = ""
	p.comment.Blur()
}

func (p Posts) visibleCards() int {
	n := (p.frame.height - 6) / postCardHeight
	if n < 1 {
		return 1
	}
	return n
}

func (p *Posts) clampOffset() {
	visible := p.visibleCards()
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+visible {
		p.offset = p.cursor - visible + 1
	}
}

func (p Posts) View() string {
	st := p.frame.styles
	width := p.frame.contentWidth()

	var b strings.Builder
	b.WriteString(st.Accent.Render("TravelSphere"))
	b.WriteString("\n\n")

	end := p.offset + p.visibleCards()
	if end > len(p.cards) {
		end = len(p.cards)
	}
	for i := p.offset; i < end; i++ {
		b.WriteString(p.cards[i].Render(p.frame.colors, width, i == p.cursor))
		b.WriteString("\n")
	}
	b.WriteString(st.Footer.Render("l like • c comment • s share • n new post"))

	if !p.commenting {
		return b.String()
	}
	return p.renderCommentModal()
}

func (p Posts) renderCommentModal() string {
	st := p.frame.styles
	submit := components.Button{Title: "Post Comment", Disabled: validation.IsBlank(p.comment.Value())}
	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.frame.colors.Primary).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			st.Section.Render("Add Comment"),
			st.InputFocus.Render(p.comment.View()),
			submit.Render(p.frame.colors, ""),
			st.Muted.Render("enter post • ctrl+j new line • esc close"),
		))
	return lipgloss.Place(p.frame.width, p.frame.height-2, lipgloss.Center, lipgloss.Center, box)
}
