// Package theme holds the light and dark palettes and the session-wide
// provider that screens read their colours from.
package theme

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Mode selects a palette.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode converts a config value to a Mode, defaulting to Light.
func ParseMode(s string) Mode {
	if Mode(s) == Dark {
		return Dark
	}
	return Light
}

// Colors is the semantic palette consumed by every component.
type Colors struct {
	Primary         lipgloss.Color
	Background      lipgloss.Color
	Card            lipgloss.Color
	Border          lipgloss.Color
	Text            lipgloss.Color
	TextSecondary   lipgloss.Color
	InputBackground lipgloss.Color
	Success         lipgloss.Color
	Error           lipgloss.Color
	// OnPrimary is the text colour used on top of Primary.
	OnPrimary lipgloss.Color
	// Like is the filled heart colour.
	Like lipgloss.Color
}

var palettes = map[Mode]Colors{
	Light: {
		Primary:         lipgloss.Color("#FF6B35"),
		Background:      lipgloss.Color("#FFFFFF"),
		Card:            lipgloss.Color("#F8F9FA"),
		Border:          lipgloss.Color("#E1E4E8"),
		Text:            lipgloss.Color("#1A1A1A"),
		TextSecondary:   lipgloss.Color("#6B7280"),
		InputBackground: lipgloss.Color("#F3F4F6"),
		Success:         lipgloss.Color("#10B981"),
		Error:           lipgloss.Color("#EF4444"),
		OnPrimary:       lipgloss.Color("#FFFFFF"),
		Like:            lipgloss.Color("#ED4956"),
	},
	Dark: {
		Primary:         lipgloss.Color("#FF8C5A"),
		Background:      lipgloss.Color("#0F0F0F"),
		Card:            lipgloss.Color("#1C1C1E"),
		Border:          lipgloss.Color("#2C2C2E"),
		Text:            lipgloss.Color("#F5F5F5"),
		TextSecondary:   lipgloss.Color("#9CA3AF"),
		InputBackground: lipgloss.Color("#2C2C2E"),
		Success:         lipgloss.Color("#34D399"),
		Error:           lipgloss.Color("#F87171"),
		OnPrimary:       lipgloss.Color("#FFFFFF"),
		Like:            lipgloss.Color("#ED4956"),
	},
}

// Palette returns the colours for mode.
func Palette(mode Mode) Colors {
	if c, ok := palettes[mode]; ok {
		return c
	}
	return palettes[Light]
}

// ChangedMsg is broadcast after the mode flips so screens rebuild styles.
type ChangedMsg struct {
	Mode Mode
}

// Provider is created once at the root of the app and passed to every
// screen. It is only touched from the Bubble Tea update loop.
type Provider struct {
	mode Mode
}

// New returns a provider starting in mode.
func New(mode Mode) *Provider {
	return &Provider{mode: ParseMode(string(mode))}
}

// Mode returns the active mode.
func (p *Provider) Mode() Mode {
	if p == nil {
		return Light
	}
	return p.mode
}

// IsDark reports whether the dark palette is active.
func (p *Provider) IsDark() bool {
	return p.Mode() == Dark
}

// Colors returns the active palette.
func (p *Provider) Colors() Colors {
	return Palette(p.Mode())
}

// Toggle flips between light and dark and returns the command announcing it.
func (p *Provider) Toggle() tea.Cmd {
	if p.mode == Dark {
		p.mode = Light
	} else {
		p.mode = Dark
	}
	mode := p.mode
	return func() tea.Msg { return ChangedMsg{Mode: mode} }
}
