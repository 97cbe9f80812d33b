package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ahpham123/uart-testing-2/internal/port"
	"github.com/ahpham123/uart-testing-2/internal/ui"
	"github.com/ahpham123/uart-testing-2/internal/util"
)

// Card dimensions. CardWidth is the inner content width; the border and
// padding sit outside it.
const (
	CardWidth    = 44
	MinCardWidth = 30

	selectorLabelWidth = 8
)

// renderCard renders a single port card at the given inner width.
func (m Model) renderCard(id string, selected bool, width int) string {
	st, ok := m.view.Registry.Get(id)
	if !ok {
		return ""
	}

	glyph, glyphStyle := statusGlyph(st.Status)
	name := util.TruncateMiddle(id, width-4)
	title := glyphStyle.Render(glyph) + " " + PortNameStyle.Render(name)

	lines := []string{
		title,
		m.renderSelector(id, FieldBaud, selected),
		m.renderSelector(id, FieldParity, selected),
		ui.MutedStyle().Render(strings.Repeat("─", width)),
		renderSummary(st),
		m.renderActions(selected),
	}

	if pm, ok := m.ctrl.Bus().PortVisible(id); ok {
		text := util.TruncateMiddle(pm.Text, width-2)
		lines = append(lines, messageStyle(pm.Kind).Render(messageGlyph(pm.Kind)+" "+text))
	}

	style := CardStyle
	if selected {
		style = CardSelectedStyle
	}
	return style.Width(width + 2).Render(strings.Join(lines, "\n"))
}

// renderSelector renders the baud or parity selector line. It shows the
// card's pending value, which can differ from the applied state below the
// divider until the user applies it.
func (m Model) renderSelector(id string, field Field, selected bool) string {
	var label, value string
	switch field {
	case FieldBaud:
		label = "Baud"
		value = m.editorBaud(id)
	case FieldParity:
		label = "Parity"
		value = m.editorParity(id)
	}

	prefix := LabelStyle.Render(fmt.Sprintf("%-*s", selectorLabelWidth, label))
	if selected && m.focus == field {
		return prefix + SelectorFocusedStyle.Render("‹ "+value+" ›")
	}
	return prefix + SelectorStyle.Render("  "+value)
}

// editorBaud returns the pending baud value for the card's selector.
func (m Model) editorBaud(id string) string {
	ed := m.editors[id]
	bauds := m.view.Caps.BaudRates
	if ed == nil || len(bauds) == 0 {
		return ""
	}
	i := ed.baudIdx
	if i < 0 || i >= len(bauds) {
		i = 0
	}
	return strconv.Itoa(bauds[i])
}

// editorParity returns the pending parity value for the card's selector.
func (m Model) editorParity(id string) string {
	ed := m.editors[id]
	parities := m.view.Caps.Parities
	if ed == nil || len(parities) == 0 {
		return ""
	}
	i := ed.parityIdx
	if i < 0 || i >= len(parities) {
		i = 0
	}
	return string(parities[i])
}

// renderSummary renders the applied state line. It reads the snapshot,
// not the selectors above it, so pending edits and changes still inside
// their render delay leave it untouched.
func renderSummary(st port.State) string {
	_, style := statusGlyph(st.Status)
	prefix := fmt.Sprintf("%d baud · parity %s · ", st.BaudRate, st.Parity)
	return ValueStyle.Render(prefix) + style.Render(string(st.Status))
}

// renderActions renders the card's action row.
func (m Model) renderActions(selected bool) string {
	actions := []struct {
		field Field
		label string
	}{
		{FieldApply, "[apply]"},
		{FieldDisconnect, "[disconnect]"},
		{FieldTest, "[test]"},
	}

	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		if selected && m.focus == a.field {
			parts = append(parts, ActionFocusedStyle.Render(a.label))
		} else {
			parts = append(parts, ActionStyle.Render(a.label))
		}
	}
	return strings.Join(parts, "  ")
}
