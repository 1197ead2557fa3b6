package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/yatra/internal/model"
	"github.com/alexisbeaulieu97/yatra/internal/theme"
)

// RenderChatBubble draws one message. User messages sit on the right in the
// primary colour; assistant messages on the left in a card.
func RenderChatBubble(m model.ChatMessage, c theme.Colors, width int) string {
	maxBubble := width * 3 / 4
	if maxBubble < 20 {
		maxBubble = 20
	}

	bubble := lipgloss.NewStyle().Padding(0, 1).MaxWidth(maxBubble)
	stamp := lipgloss.NewStyle()
	if m.IsUser {
		bubble = bubble.Background(c.Primary).Foreground(c.OnPrimary)
		stamp = stamp.Foreground(c.OnPrimary).Faint(true)
	} else {
		bubble = bubble.
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(c.Border).
			Foreground(c.Text)
		stamp = stamp.Foreground(c.TextSecondary)
	}

	content := m.Text
	if m.Timestamp != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, m.Text, stamp.Render(m.Timestamp))
	}
	rendered := bubble.Render(content)

	align := lipgloss.Left
	if m.IsUser {
		align = lipgloss.Right
	}
	return lipgloss.PlaceHorizontal(width, align, rendered)
}
