package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Electric synthwave palette. Neon accents on a near-black void,
// tuned for dark terminals.
const (
	ColorNeonPink   lipgloss.Color = "#FF2E97" // Hot pink accent
	ColorNeonCyan   lipgloss.Color = "#00FFFF" // Electric cyan
	ColorNeonPurple lipgloss.Color = "#BF40FF" // Vivid purple
	ColorNeonGreen  lipgloss.Color = "#39FF14" // Radioactive green
	ColorNeonOrange lipgloss.Color = "#FF6B35" // Burnt neon orange
	ColorNeonAmber  lipgloss.Color = "#FFAA00" // Electric amber
)

// Surface colors for backgrounds and borders.
const (
	ColorDeepVoid    lipgloss.Color = "#0A0A0F" // Near-black background
	ColorDarkSurface lipgloss.Color = "#12121A" // Elevated surface
	ColorGlassBorder lipgloss.Color = "#2A2A4A" // Subtle border
)

// Semantic colors for status indication.
const (
	ColorSuccess lipgloss.Color = "#39FF14" // Neon green
	ColorError   lipgloss.Color = "#FF0055" // Hot red-pink
	ColorWarning lipgloss.Color = "#FFAA00" // Electric amber
	ColorInfo    lipgloss.Color = "#00FFFF" // Electric cyan
)

// Text colors for content hierarchy.
const (
	ColorPrimary   lipgloss.Color = "#FFFFFF" // Bright white
	ColorSecondary lipgloss.Color = "#B4B4D0" // Lavender gray
	ColorMuted     lipgloss.Color = "#6B6B8D" // Dimmed purple-gray
)

// GradientColors cycles pink -> purple -> cyan -> green for animated
// elements like spinners.
var GradientColors = []lipgloss.Color{
	ColorNeonPink,
	ColorNeonPurple,
	ColorNeonCyan,
	ColorNeonGreen,
}

// SuccessStyle returns a style for success messages.
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorSuccess)
}

// ErrorStyle returns a style for error messages.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorError)
}

// WarningStyle returns a style for warning messages.
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorWarning)
}

// InfoStyle returns a style for informational messages.
func InfoStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorInfo)
}

// MutedStyle returns a style for de-emphasized text.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

// PrintWarning writes a warning message to stderr with the warning symbol.
func PrintWarning(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", WarningStyle().Render(SymbolWarning), msg)
}

// DisableColors forces plain-text rendering for all lipgloss styles.
// Used when output is piped or the user passes --no-color.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
