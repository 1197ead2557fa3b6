package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the shared lipgloss styles derived from a palette.
type Styles struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Body       lipgloss.Style
	Muted      lipgloss.Style
	Label      lipgloss.Style
	Section    lipgloss.Style
	Selected   lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	Accent     lipgloss.Style
	Input      lipgloss.Style
	InputFocus lipgloss.Style
	Footer     lipgloss.Style
}

// NewStyles builds Styles for c.
func NewStyles(c Colors) Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(c.Text).MarginBottom(1),
		Subtitle: lipgloss.NewStyle().Foreground(c.TextSecondary),
		Body:     lipgloss.NewStyle().Foreground(c.Text),
		Muted:    lipgloss.NewStyle().Foreground(c.TextSecondary),
		Label:    lipgloss.NewStyle().Foreground(c.TextSecondary).Bold(true),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Text).
			MarginTop(1),
		Selected: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(c.Primary),
		Error:   lipgloss.NewStyle().Foreground(c.Error).Bold(true),
		Success: lipgloss.NewStyle().Foreground(c.Success).Bold(true),
		Accent:  lipgloss.NewStyle().Foreground(c.Primary).Bold(true),
		Input: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(c.Border).
			Padding(0, 1),
		InputFocus: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(c.Primary).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Foreground(c.TextSecondary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(c.Border).
			MarginTop(1),
	}
}

// Styles returns the styles for the active palette.
func (p *Provider) Styles() Styles {
	return NewStyles(p.Colors())
}
