package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ahpham123/uart-testing-2/internal/port"
	"github.com/ahpham123/uart-testing-2/internal/ui"
)

// Status indicator glyphs
const (
	StatusGlyphConnected    = "◉"
	StatusGlyphDisconnected = "◌"
	StatusGlyphError        = "✕"
	StatusGlyphLoading      = "◐"
)

// Card styles
var (
	// CardStyle is the base style for port cards
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorGlassBorder).
			Padding(0, 1).
			MarginRight(1).
			MarginBottom(1)

	// CardSelectedStyle highlights the currently selected card
	CardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ui.ColorNeonPink).
				Padding(0, 1).
				MarginRight(1).
				MarginBottom(1)
)

// Header and footer styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorNeonPink).
			Bold(true)

	HeaderStatsStyle = lipgloss.NewStyle().
				Foreground(ui.ColorSecondary)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Padding(0, 1)
)

// Text styles
var (
	PortNameStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSecondary)
)

// Status styles
var (
	StatusConnectedStyle = lipgloss.NewStyle().
				Foreground(ui.ColorSuccess)

	StatusDisconnectedStyle = lipgloss.NewStyle().
				Foreground(ui.ColorMuted)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ui.ColorError)

	StatusLoadingStyle = lipgloss.NewStyle().
				Foreground(ui.ColorNeonAmber)
)

// Selector and action styles for the interactive card controls
var (
	SelectorStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSecondary)

	SelectorFocusedStyle = lipgloss.NewStyle().
				Foreground(ui.ColorNeonCyan).
				Bold(true)

	ActionStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	ActionFocusedStyle = lipgloss.NewStyle().
				Foreground(ui.ColorNeonPink).
				Bold(true)
)

// Message styles by kind
var (
	MessageInfoStyle = lipgloss.NewStyle().
				Foreground(ui.ColorInfo)

	MessageSuccessStyle = lipgloss.NewStyle().
				Foreground(ui.ColorSuccess)

	MessageErrorStyle = lipgloss.NewStyle().
				Foreground(ui.ColorError)

	// BannerStyle wraps global messages shown under the header
	BannerStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// statusGlyph returns the indicator glyph and style for a port status.
func statusGlyph(status port.Status) (string, lipgloss.Style) {
	switch status {
	case port.StatusConnected:
		return StatusGlyphConnected, StatusConnectedStyle
	case port.StatusError:
		return StatusGlyphError, StatusErrorStyle
	default:
		return StatusGlyphDisconnected, StatusDisconnectedStyle
	}
}
