package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ahpham123/uart-testing-2/internal/controller"
	"github.com/ahpham123/uart-testing-2/internal/ui"
)

// renderDashboard assembles the card grid view: header, global message
// stack, cards, footer.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if banners := m.renderBanners(); banners != "" {
		b.WriteString(banners)
		b.WriteString("\n\n")
	}

	b.WriteString(m.layoutCards())

	if m.ShowFooter() {
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
	}

	return b.String()
}

// renderHeader renders the title row and the counter line.
func (m Model) renderHeader() string {
	title := TitleStyle.Render("uartdash")

	tally := m.view.Registry.Tally()
	stats := fmt.Sprintf("%d ports | %d connected | %d disconnected | %d errors | updated %s",
		tally.Total(), tally.Connected, tally.Disconnected, tally.Errors, m.formatLastUpdate())

	line := m.renderIndicator() + "  " + HeaderStatsStyle.Render(stats)
	if m.view.Fallback {
		line += "  " + StatusLoadingStyle.Render(ui.SymbolWarning + " fallback data")
	}

	return HeaderStyle.Render(title + "\n" + line)
}

// renderIndicator renders the server link state at the left of the stats
// line. While a sync is in flight the spinner replaces the static glyph.
func (m Model) renderIndicator() string {
	if m.syncing || m.view.Indicator == controller.IndicatorLoading {
		return m.spin.View() + " " + StatusLoadingStyle.Render("syncing")
	}

	switch m.view.Indicator {
	case controller.IndicatorConnected:
		return StatusConnectedStyle.Render(StatusGlyphConnected + " connected")
	case controller.IndicatorError:
		return StatusErrorStyle.Render(StatusGlyphError + " error")
	default:
		return ui.MutedStyle().Render(StatusGlyphDisconnected + " idle")
	}
}

// formatLastUpdate describes how fresh the rendered snapshot is.
func (m Model) formatLastUpdate() string {
	if m.lastUpdate.IsZero() {
		return "never"
	}
	seconds := m.SecondsSinceUpdate()
	switch {
	case seconds <= 0:
		return "just now"
	case seconds == 1:
		return "1s ago"
	default:
		return fmt.Sprintf("%ds ago", seconds)
	}
}

// renderBanners renders the dashboard-wide message stack, oldest first.
// Messages read live from the bus so they disappear on schedule even
// though the cards render from a held snapshot.
func (m Model) renderBanners() string {
	msgs := m.ctrl.Bus().GlobalVisible()
	if len(msgs) == 0 {
		return ""
	}

	lines := make([]string, 0, len(msgs))
	for _, gm := range msgs {
		lines = append(lines, renderBanner(gm))
	}
	return strings.Join(lines, "\n")
}

// renderBanner renders one global message with its kind glyph.
func renderBanner(gm controller.GlobalMessage) string {
	glyph := messageStyle(gm.Kind).Render(messageGlyph(gm.Kind))
	return BannerStyle.Render(glyph + " " + gm.Text)
}

// layoutCards arranges port cards into rows for the current terminal
// width.
func (m Model) layoutCards() string {
	if len(m.order) == 0 {
		return ui.MutedStyle().Render("No ports detected. Press r to refresh.")
	}

	width := m.calculateCardWidth()
	cards := make([]string, 0, len(m.order))
	for i, id := range m.order {
		cards = append(cards, m.renderCard(id, i == m.selected, width))
	}

	perRow := m.cardsPerRow()
	rows := make([]string, 0, (len(cards)+perRow-1)/perRow)
	for start := 0; start < len(cards); start += perRow {
		end := start + perRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// cardsPerRow returns how many cards sit side by side in the current
// layout mode.
func (m Model) cardsPerRow() int {
	switch m.LayoutMode() {
	case LayoutWide:
		return 3
	case LayoutStandard:
		return 2
	default:
		return 1
	}
}

// calculateCardWidth returns the inner card width. Minimal layouts shrink
// cards to fit the terminal.
func (m Model) calculateCardWidth() int {
	if m.LayoutMode() == LayoutMinimal && m.width > 0 {
		w := m.width - 6
		if w < MinCardWidth {
			w = MinCardWidth
		}
		return w
	}
	return CardWidth
}

// renderFooter renders the key hints line from the short help bindings.
func (m Model) renderFooter() string {
	parts := make([]string, 0, 5)
	for _, b := range keys.ShortHelp() {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	parts = append(parts, keys.Help.Help().Key+" "+keys.Help.Help().Desc)
	return FooterStyle.Render(strings.Join(parts, " | "))
}

// messageStyle maps a message kind to its text style.
func messageStyle(k controller.Kind) lipgloss.Style {
	switch k {
	case controller.KindSuccess:
		return MessageSuccessStyle
	case controller.KindError:
		return MessageErrorStyle
	default:
		return MessageInfoStyle
	}
}

// messageGlyph maps a message kind to its glyph.
func messageGlyph(k controller.Kind) string {
	switch k {
	case controller.KindSuccess:
		return ui.SymbolSuccess
	case controller.KindError:
		return ui.SymbolFail
	default:
		return "•"
	}
}
