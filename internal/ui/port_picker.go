package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ahpham123/uart-testing-2/internal/errors"
)

// PortInfo contains information about a serial port for display in the picker.
type PortInfo struct {
	Name   string // Device path (e.g., "/dev/ttyAMA0")
	Baud   int    // Configured baud rate
	Parity string // Parity mode
	Status string // "connected", "disconnected", or "error"
}

// portItem implements list.Item for the Bubbles list component.
type portItem struct {
	port PortInfo
}

func (i portItem) Title() string {
	return i.port.Name
}

func (i portItem) Description() string {
	var parts []string

	if i.port.Baud > 0 {
		parts = append(parts, fmt.Sprintf("%d baud", i.port.Baud))
	}

	if i.port.Parity != "" {
		parts = append(parts, "parity "+i.port.Parity)
	}

	if i.port.Status != "" {
		parts = append(parts, i.port.Status)
	}

	return strings.Join(parts, " | ")
}

func (i portItem) FilterValue() string {
	// Allow searching by device path, parity, and status
	values := []string{i.port.Name}
	if i.port.Parity != "" {
		values = append(values, i.port.Parity)
	}
	if i.port.Status != "" {
		values = append(values, i.port.Status)
	}
	return strings.Join(values, " ")
}

// PortPickerModel is a Bubble Tea model for selecting a port.
type PortPickerModel struct {
	list     list.Model
	ports    []PortInfo
	selected *PortInfo
	quitting bool
	width    int
	height   int
}

// portPickerKeyMap defines key bindings for the port picker.
type portPickerKeyMap struct {
	Enter key.Binding
	Quit  key.Binding
}

var portPickerKeys = portPickerKeyMap{
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "cancel"),
	),
}

// NewPortPickerModel creates a new port picker model.
func NewPortPickerModel(ports []PortInfo) PortPickerModel {
	items := make([]list.Item, len(ports))
	for i, p := range ports {
		items[i] = portItem{port: p}
	}

	// Create list with custom delegate for styling
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(ColorPrimary).
		BorderForeground(ColorSecondary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(ColorMuted)

	l := list.New(items, delegate, 0, 0)
	l.Title = "Select a port"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 0, 1, 0)
	l.Styles.HelpStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	return PortPickerModel{
		list:   l,
		ports:  ports,
		width:  80,
		height: 15,
	}
}

// Init implements tea.Model.
func (m PortPickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PortPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, portPickerKeys.Enter):
			if item, ok := m.list.SelectedItem().(portItem); ok {
				m.selected = &item.port
			}
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, portPickerKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m PortPickerModel) View() string {
	if m.quitting {
		return ""
	}
	return m.list.View()
}

// Selected returns the selected port, or nil if cancelled.
func (m PortPickerModel) Selected() *PortInfo {
	return m.selected
}

// PickPort displays an interactive port picker and returns the selected port.
// Returns nil if the user cancels (ESC/q/Ctrl+C).
func PickPort(ports []PortInfo) (*PortInfo, error) {
	return PickPortWithOutput(ports, os.Stdout, os.Stdin)
}

// PickPortWithOutput displays the port picker using custom I/O.
func PickPortWithOutput(ports []PortInfo, output io.Writer, input io.Reader) (*PortInfo, error) {
	if len(ports) == 0 {
		return nil, errors.New(errors.ErrPort, "No ports to pick from", "Check that the dashboard server is running and has detected ports.")
	}

	if len(ports) == 1 {
		// Only one port, no need to pick
		return &ports[0], nil
	}

	model := NewPortPickerModel(ports)

	p := tea.NewProgram(
		model,
		tea.WithOutput(output),
		tea.WithInput(input),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrInput, "Port picker failed", "Try running again or pass the port path directly.")
	}

	if m, ok := finalModel.(PortPickerModel); ok {
		return m.Selected(), nil
	}

	return nil, nil
}

// IsTerminal returns true if the file descriptor is a terminal.
func IsTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
