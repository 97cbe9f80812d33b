package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ahpham123/uart-testing-2/internal/ui"
)

var helpBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ui.ColorNeonPurple).
	Padding(1, 2)

// renderHelpOverlay centers the key reference over the dashboard. When
// the terminal size is not known yet, the box is appended below the view
// instead of centered.
func (m Model) renderHelpOverlay(base string) string {
	var b strings.Builder
	b.WriteString(detailSectionTitleStyle.Render("Keys"))
	b.WriteString("\n")

	for _, group := range keys.FullHelp() {
		b.WriteString("\n")
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(SelectorFocusedStyle.Render(fmt.Sprintf("%-12s", h.Key)))
			b.WriteString(ValueStyle.Render(h.Desc))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(ui.MutedStyle().Render("press ? or esc to close"))

	box := helpBoxStyle.Render(b.String())
	if m.width <= 0 || m.height <= 0 {
		return base + "\n" + box
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars("·"),
		lipgloss.WithWhitespaceForeground(ui.ColorMuted),
	)
}
