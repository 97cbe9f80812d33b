package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewMode represents which screen the dashboard is showing.
type ViewMode int

const (
	// ViewList shows the card grid.
	ViewList ViewMode = iota
	// ViewDetail shows a single port full-screen.
	ViewDetail
)

// SortOrder determines how port cards are ordered.
type SortOrder int

const (
	// SortByName orders cards by port ID.
	SortByName SortOrder = iota
	// SortByStatus orders cards connected first, then errored, then the rest.
	SortByStatus
)

// String returns the config-file name of the sort order.
func (s SortOrder) String() string {
	if s == SortByStatus {
		return "status"
	}
	return "name"
}

// ParseSort maps a config value to a SortOrder. Unknown values fall back
// to sorting by name.
func ParseSort(s string) SortOrder {
	if s == "status" {
		return SortByStatus
	}
	return SortByName
}

// toggle flips between the two sort orders.
func (s SortOrder) toggle() SortOrder {
	if s == SortByName {
		return SortByStatus
	}
	return SortByName
}

// Field identifies the focused element inside the selected card.
type Field int

const (
	// FieldBaud focuses the baud rate selector.
	FieldBaud Field = iota
	// FieldParity focuses the parity selector.
	FieldParity
	// FieldApply focuses the apply action.
	FieldApply
	// FieldDisconnect focuses the disconnect action.
	FieldDisconnect
	// FieldTest focuses the test action.
	FieldTest

	fieldCount
)

// Next returns the following field, wrapping around.
func (f Field) Next() Field {
	return (f + 1) % fieldCount
}

// Prev returns the preceding field, wrapping around.
func (f Field) Prev() Field {
	return (f + fieldCount - 1) % fieldCount
}

// KeyMap defines the key bindings for the dashboard.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextField key.Binding
	PrevField key.Binding
	Left      key.Binding
	Right     key.Binding
	Select    key.Binding
	Refresh   key.Binding
	Detail    key.Binding
	Sort      key.Binding
	Help      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// keys is the default key map.
var keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous port"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next port"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous value"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next value"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "activate"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Detail: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "details"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "toggle sort"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns all bindings grouped for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextField, k.PrevField},
		{k.Left, k.Right, k.Select, k.Refresh},
		{k.Detail, k.Sort, k.Back, k.Help, k.Quit},
	}
}

// handleKeyMsg processes a key press. It returns true if the key was
// consumed; unconsumed keys in detail view fall through to the viewport.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	// The help overlay swallows everything until dismissed.
	if m.showHelp {
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return true, tea.Quit
		case key.Matches(msg, keys.Help), key.Matches(msg, keys.Back):
			m.showHelp = false
		}
		return true, nil
	}

	if m.viewMode == ViewDetail {
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return true, tea.Quit
		case key.Matches(msg, keys.Back):
			m.viewMode = ViewList
			return true, nil
		case key.Matches(msg, keys.Refresh):
			m.syncing = true
			return true, m.syncCmd()
		case key.Matches(msg, keys.Help):
			m.showHelp = true
			return true, nil
		}
		return false, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, keys.Help):
		m.showHelp = true

	case key.Matches(msg, keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, keys.Down):
		if m.selected < len(m.order)-1 {
			m.selected++
		}

	case key.Matches(msg, keys.NextField):
		m.focus = m.focus.Next()

	case key.Matches(msg, keys.PrevField):
		m.focus = m.focus.Prev()

	case key.Matches(msg, keys.Left):
		m.cycleSelector(-1)

	case key.Matches(msg, keys.Right):
		m.cycleSelector(1)

	case key.Matches(msg, keys.Select):
		return true, m.activateSelected()

	case key.Matches(msg, keys.Refresh):
		m.syncing = true
		return true, m.syncCmd()

	case key.Matches(msg, keys.Detail):
		if m.SelectedPort() != "" {
			m.viewMode = ViewDetail
			if m.viewportReady {
				m.updateDetailViewportContent()
				m.detailViewport.GotoTop()
			}
		}

	case key.Matches(msg, keys.Sort):
		m.sortOrder = m.sortOrder.toggle()
		m.rebuildOrder()
		m.clampSelection()
	}

	return true, nil
}

// cycleSelector steps the focused selector by delta. On the action row it
// moves focus between the three actions instead.
func (m *Model) cycleSelector(delta int) {
	ed := m.selectedEditor()
	if ed == nil {
		return
	}

	switch m.focus {
	case FieldBaud:
		if n := len(m.view.Caps.BaudRates); n > 0 {
			ed.baudIdx = (ed.baudIdx + delta + n) % n
		}
	case FieldParity:
		if n := len(m.view.Caps.Parities); n > 0 {
			ed.parityIdx = (ed.parityIdx + delta + n) % n
		}
	case FieldApply, FieldDisconnect, FieldTest:
		f := m.focus + Field(delta)
		if f < FieldApply {
			f = FieldApply
		}
		if f > FieldTest {
			f = FieldTest
		}
		m.focus = f
	}
}

// activateSelected runs the command for the focused field on the selected
// card. Enter on a selector applies the pending configuration.
func (m *Model) activateSelected() tea.Cmd {
	id := m.SelectedPort()
	if id == "" {
		return nil
	}

	switch m.focus {
	case FieldBaud, FieldParity, FieldApply:
		baud, parity := m.pendingConfig(id)
		return m.configureCmd(id, baud, parity)
	case FieldDisconnect:
		return m.disconnectCmd(id)
	case FieldTest:
		return m.testCmd(id)
	}
	return nil
}
