package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ahpham123/uart-testing-2/internal/ui"
)

// detailActivityLimit caps the recent-activity section.
const detailActivityLimit = 10

var detailSectionStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ui.ColorGlassBorder).
	Padding(0, 1).
	MarginBottom(1)

var detailSectionTitleStyle = lipgloss.NewStyle().
	Foreground(ui.ColorNeonCyan).
	Bold(true)

// renderDetail renders the single-port view: a fixed header, a scrollable
// body, and a fixed footer.
func (m Model) renderDetail() string {
	header := m.renderDetailHeader()
	footer := FooterStyle.Render("esc back | r refresh | q quit")

	body := ""
	if m.viewportReady {
		body = m.detailViewport.View()
	}

	return header + "\n" + body + "\n" + footer
}

// renderDetailHeader renders the port name, its status, and any live
// message for the port.
func (m Model) renderDetailHeader() string {
	id := m.SelectedPort()
	if id == "" {
		return TitleStyle.Render("uartdash")
	}

	st, _ := m.view.Registry.Get(id)
	glyph, glyphStyle := statusGlyph(st.Status)
	line := glyphStyle.Render(glyph) + " " + TitleStyle.Render(id) + "  " + glyphStyle.Render(string(st.Status))

	if pm, ok := m.ctrl.Bus().PortVisible(id); ok {
		line += "\n" + messageStyle(pm.Kind).Render(messageGlyph(pm.Kind)+" "+pm.Text)
	} else {
		line += "\n"
	}

	return line
}

// updateDetailViewportContent rebuilds the scrollable body for the
// selected port.
func (m *Model) updateDetailViewportContent() {
	if !m.viewportReady {
		return
	}

	id := m.SelectedPort()
	if id == "" {
		m.detailViewport.SetContent(ui.MutedStyle().Render("No port selected."))
		return
	}

	width := m.detailSectionWidth()
	sections := []string{
		m.renderConfigSection(id, width),
		m.renderCapabilitiesSection(width),
		m.renderActivitySection(id, width),
	}

	m.detailViewport.SetContent(strings.Join(sections, "\n"))
}

// detailSectionWidth fits sections to the terminal, capped for
// readability on wide screens.
func (m Model) detailSectionWidth() int {
	w := m.width - 4
	if w > 72 {
		w = 72
	}
	if w < MinCardWidth {
		w = MinCardWidth
	}
	return w
}

// renderConfigSection shows the port's applied configuration.
func (m Model) renderConfigSection(id string, width int) string {
	st, ok := m.view.Registry.Get(id)
	if !ok {
		return ""
	}

	rows := []string{
		detailSectionTitleStyle.Render("Configuration"),
		"",
		detailRow("Baud rate", fmt.Sprintf("%d", st.BaudRate)),
		detailRow("Parity", string(st.Parity)),
		detailRow("Status", string(st.Status)),
		"",
		ui.MutedStyle().Render(st.Summary()),
	}

	return detailSectionStyle.Width(width).Render(strings.Join(rows, "\n"))
}

// renderCapabilitiesSection lists what the server accepts, so the
// selector ranges on the card are explainable from here.
func (m Model) renderCapabilitiesSection(width int) string {
	rows := []string{
		detailSectionTitleStyle.Render("Capabilities"),
		"",
		detailRow("Baud rates", strings.Join(m.view.Caps.BaudStrings(), ", ")),
		detailRow("Parity", strings.Join(m.view.Caps.ParityStrings(), ", ")),
	}

	return detailSectionStyle.Width(width).Render(strings.Join(rows, "\n"))
}

// renderActivitySection shows the port's recent history, newest first.
// Dashboard-wide sync events are included.
func (m Model) renderActivitySection(id string, width int) string {
	rows := []string{
		detailSectionTitleStyle.Render("Recent activity"),
		"",
	}

	events := m.ctrl.Events().ForPort(id, detailActivityLimit)
	if len(events) == 0 {
		rows = append(rows, ui.MutedStyle().Render("No activity yet."))
	}
	for _, e := range events {
		stamp := ui.MutedStyle().Render(e.Time.Format("15:04:05"))
		text := ValueStyle.Render(e.Text)
		glyph := ui.SuccessStyle().Render(ui.SymbolSuccess)
		if e.Failed() {
			glyph = ui.ErrorStyle().Render(ui.SymbolFail)
			text = ui.ErrorStyle().Render(e.Text)
		}
		rows = append(rows, fmt.Sprintf("%s  %s %s", stamp, glyph, text))
	}

	return detailSectionStyle.Width(width).Render(strings.Join(rows, "\n"))
}

// detailRow formats a label/value pair.
func detailRow(label, value string) string {
	return LabelStyle.Render(fmt.Sprintf("%-12s", label)) + ValueStyle.Render(value)
}
