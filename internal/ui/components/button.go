package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/yatra/internal/theme"
)

// ButtonVariant selects the button's colours.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonSecondary
	ButtonOutline
)

// Button is a labelled action. While Loading it shows the spinner frame in
// place of the title and, like Disabled, cannot be pressed.
type Button struct {
	Title    string
	Variant  ButtonVariant
	Loading  bool
	Disabled bool
	Focused  bool
}

// Pressable reports whether the button accepts a press.
func (b Button) Pressable() bool {
	return !b.Loading && !b.Disabled
}

// Render draws the button. spinnerFrame is shown while loading.
func (b Button) Render(c theme.Colors, spinnerFrame string) string {
	style := lipgloss.NewStyle().Padding(0, 3).Bold(true)

	switch b.Variant {
	case ButtonSecondary:
		style = style.Background(c.TextSecondary).Foreground(c.OnPrimary)
	case ButtonOutline:
		style = style.
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(c.Border).
			Foreground(c.Text).
			Padding(0, 2)
	default:
		style = style.Background(c.Primary).Foreground(c.OnPrimary)
	}

	if !b.Pressable() {
		style = style.Faint(true)
	}
	if b.Focused && b.Pressable() {
		style = style.Underline(true)
	}

	label := b.Title
	if b.Loading {
		label = spinnerFrame
	}
	return style.Render(label)
}
