package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/yatra/internal/model"
	"github.com/alexisbeaulieu97/yatra/internal/theme"
)

func cardStyle(c theme.Colors, width int, selected bool) lipgloss.Style {
	border := c.Border
	if selected {
		border = c.Primary
	}
	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style
}

// RenderStateCard draws a state summary for the home list.
func RenderStateCard(s model.State, c theme.Colors, width int, selected bool) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(c.Text).Render(s.Name)
	if selected {
		title = lipgloss.NewStyle().Bold(true).Foreground(c.Primary).Render("▸ " + s.Name)
	}

	label := lipgloss.NewStyle().Foreground(c.Primary).Bold(true)
	value := lipgloss.NewStyle().Foreground(c.TextSecondary)
	inner := width - 6

	rows := []string{
		title,
		label.Render("Culture"),
		value.Render(Truncate(s.Culture, 2*inner)),
		label.Render("Festivals"),
		value.Render(s.Festivals),
		label.Render("Famous Places"),
		value.Render(Truncate(s.FamousPlaces, 2*inner)),
	}
	return cardStyle(c, width, selected).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// PostCard renders a feed entry and owns its like state.
type PostCard struct {
	post  model.Post
	liked bool
	likes int
}

// NewPostCard seeds the like state from the post.
func NewPostCard(p model.Post) PostCard {
	return PostCard{post: p, liked: p.IsLiked, likes: p.Likes}
}

// ToggleLike flips the like and adjusts the count by one. It returns the new
// liked state.
func (p *PostCard) ToggleLike() bool {
	if p.liked {
		p.likes--
	} else {
		p.likes++
	}
	p.liked = !p.liked
	return p.liked
}

// Post returns the underlying post.
func (p PostCard) Post() model.Post { return p.post }

// Liked reports whether the heart is filled.
func (p PostCard) Liked() bool { return p.liked }

// Likes is the displayed like count.
func (p PostCard) Likes() int { return p.likes }

// HeartIcon is the filled or outlined heart.
func (p PostCard) HeartIcon() string {
	if p.liked {
		return "♥"
	}
	return "♡"
}

// Render draws the card.
func (p PostCard) Render(c theme.Colors, width int, selected bool) string {
	name := lipgloss.NewStyle().Bold(true).Foreground(c.Text)
	muted := lipgloss.NewStyle().Foreground(c.TextSecondary)

	heart := lipgloss.NewStyle().Foreground(c.Text)
	if p.liked {
		heart = heart.Foreground(c.Like)
	}

	rows := []string{
		name.Render(p.post.Username),
		muted.Render("📍 " + p.post.Location),
		muted.Render("[" + Truncate(p.post.PostImage, width-8) + "]"),
		heart.Render(p.HeartIcon()) + "  💬  ➤",
		name.Render(FormatCount(p.likes) + " likes"),
		name.Render(p.post.Username) + " " + lipgloss.NewStyle().Foreground(c.Text).Render(p.post.Caption),
	}
	if p.post.Comments > 0 {
		rows = append(rows, muted.Render(fmt.Sprintf("View all %d comments", p.post.Comments)))
	}
	rows = append(rows, muted.Render(p.post.Timestamp))

	return cardStyle(c, width, selected).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// FormatCount renders n with thousands separators.
func FormatCount(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String()
}

// Truncate shortens s to at most max runes, ending with an ellipsis.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
