package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ahpham123/uart-testing-2/internal/controller"
	"github.com/ahpham123/uart-testing-2/internal/port"
	"github.com/ahpham123/uart-testing-2/internal/ui"
)

// DefaultInterval is the refresh cadence when none is configured.
const DefaultInterval = 30 * time.Second

// syncTimeout bounds a single sync pass so a hung server cannot stall
// the refresh loop past the next tick.
const syncTimeout = 15 * time.Second

// LayoutMode represents the responsive layout mode based on terminal size.
type LayoutMode int

const (
	// LayoutMinimal is for terminals < 80 columns: single column, trimmed cards
	LayoutMinimal LayoutMode = iota
	// LayoutCompact is for terminals 80-120 columns: full cards, single or double column
	LayoutCompact
	// LayoutStandard is for terminals 120-160 columns: full cards, 2-3 columns
	LayoutStandard
	// LayoutWide is for terminals 160+ columns: three-column layout
	LayoutWide
)

// Width breakpoints for layout modes
const (
	BreakpointCompact  = 80
	BreakpointStandard = 120
	BreakpointWide     = 160
)

// HeightMinimal is the minimum terminal height for showing the footer.
const HeightMinimal = 24

// editor holds the pending selector values for one card. The indexes
// point into the capability lists; they only become port state when the
// user applies them.
type editor struct {
	baudIdx   int
	parityIdx int
}

// Model is the Bubble Tea model for the port dashboard.
type Model struct {
	ctrl *controller.Controller

	// view is the snapshot cards render from. It is only replaced on
	// sync completion and deferred card refreshes, so a just-applied
	// config stays off the cards until the refresh fires.
	view    controller.View
	order   []string           // port IDs in render order
	editors map[string]*editor // pending selector values per port

	selected int
	focus    Field

	sortOrder SortOrder
	viewMode  ViewMode
	showHelp  bool

	interval   time.Duration
	width      int
	height     int
	lastUpdate time.Time
	syncing    bool
	quitting   bool

	spin spinner.Model

	// Detail view viewport for scrollable content
	detailViewport viewport.Model
	viewportReady  bool
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// syncDoneMsg carries the outcome of a completed sync pass.
type syncDoneMsg struct {
	outcome controller.SyncOutcome
}

// commandDoneMsg carries the outcome of a configure, disconnect, or test.
type commandDoneMsg struct {
	outcome controller.CommandOutcome
}

// cardRefreshMsg fires after a command's render delay to fold the applied
// state into the rendered snapshot.
type cardRefreshMsg struct{}

// NewModel creates a dashboard model around the given controller.
// interval is the sync cadence (0 uses DefaultInterval).
func NewModel(ctrl *controller.Controller, interval time.Duration, sortOrder SortOrder) Model {
	if interval <= 0 {
		interval = DefaultInterval
	}

	sp := spinner.New()
	sp.Spinner = ui.SpinnerFrames
	sp.Style = lipgloss.NewStyle().Foreground(ui.ColorNeonAmber)

	m := Model{
		ctrl:      ctrl,
		editors:   make(map[string]*editor),
		selected:  -1,
		sortOrder: sortOrder,
		interval:  interval,
		spin:      sp,
	}

	m.refreshView()
	if len(m.order) > 0 {
		m.selected = 0
	}

	return m
}

// Init starts the tick timer, the spinner, and an initial sync.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.syncCmd(),
		m.tickCmd(),
		m.spin.Tick,
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.handleKeyMsg(msg)
		if handled {
			return m, cmd
		}
		// In detail view, unhandled keys scroll the viewport
		if m.viewMode == ViewDetail && m.viewportReady {
			var cmd tea.Cmd
			m.detailViewport, cmd = m.detailViewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Initialize or resize the detail viewport.
		// Reserve space for header and footer.
		headerHeight := 3
		footerHeight := 2
		viewportHeight := m.height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.viewportReady {
			m.detailViewport = viewport.New(m.width, viewportHeight)
			m.detailViewport.YPosition = headerHeight
			m.viewportReady = true
		} else {
			m.detailViewport.Width = m.width
			m.detailViewport.Height = viewportHeight
		}

		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}

	case tickMsg:
		m.syncing = true
		return m, tea.Batch(m.tickCmd(), m.syncCmd())

	case spinner.TickMsg:
		// The spinner tick doubles as the repaint heartbeat that lets
		// timed messages disappear without their own timers.
		m.ctrl.Bus().Prune()
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case syncDoneMsg:
		if msg.outcome.Dropped {
			// Another sync is still in flight; its own completion will
			// clear the flag and refresh the snapshot.
			return m, nil
		}
		m.syncing = false
		m.refreshView()
		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}

	case commandDoneMsg:
		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}
		if msg.outcome.RenderDelay > 0 {
			return m, cardRefreshCmd(msg.outcome.RenderDelay)
		}

	case cardRefreshMsg:
		m.refreshView()
		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	base := m.renderDashboard()
	if m.viewMode == ViewDetail {
		base = m.renderDetail()
	}

	if m.showHelp {
		return m.renderHelpOverlay(base)
	}
	return base
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// syncCmd returns a command that runs one sync pass against the server.
func (m Model) syncCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()
		return syncDoneMsg{outcome: ctrl.Sync(ctx)}
	}
}

// configureCmd returns a command that applies the given configuration.
func (m Model) configureCmd(id string, baud int, parity port.Parity) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()
		return commandDoneMsg{outcome: ctrl.Configure(ctx, id, baud, parity)}
	}
}

// disconnectCmd returns a command that disconnects the given port.
func (m Model) disconnectCmd(id string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()
		return commandDoneMsg{outcome: ctrl.Disconnect(ctx, id)}
	}
}

// testCmd returns a command that probes the given port.
func (m Model) testCmd(id string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()
		return commandDoneMsg{outcome: ctrl.Test(ctx, id)}
	}
}

// cardRefreshCmd schedules the deferred snapshot refresh after a command.
// Fire-and-forget: it is never cancelled, and refreshing a snapshot that
// already matches the live state is a no-op.
func cardRefreshCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return cardRefreshMsg{}
	})
}

// refreshView replaces the rendered snapshot with the controller's current
// state and rebuilds the render order and pending selectors. Cards are
// rebuilt wholesale, so unapplied selector edits reset to the port's
// actual configuration.
func (m *Model) refreshView() {
	m.view = m.ctrl.View()
	if !m.view.LastSync.IsZero() {
		m.lastUpdate = m.view.LastSync
	}
	m.rebuildOrder()
	m.rebuildEditors()
	m.clampSelection()
}

// rebuildOrder recomputes the card order for the current sort, keeping the
// selected port selected across re-sorts.
func (m *Model) rebuildOrder() {
	selectedID := m.SelectedPort()

	m.order = m.view.Registry.IDs()

	if m.sortOrder == SortByStatus {
		reg := &m.view.Registry
		sort.SliceStable(m.order, func(i, j int) bool {
			si, _ := reg.Get(m.order[i])
			sj, _ := reg.Get(m.order[j])
			ri, rj := statusRank(si.Status), statusRank(sj.Status)
			if ri != rj {
				return ri < rj
			}
			return m.order[i] < m.order[j]
		})
	}

	if selectedID != "" {
		for i, id := range m.order {
			if id == selectedID {
				m.selected = i
				break
			}
		}
	}
}

// statusRank orders statuses for SortByStatus: connected first, then
// errors, then everything else.
func statusRank(s port.Status) int {
	switch s {
	case port.StatusConnected:
		return 0
	case port.StatusError:
		return 1
	default:
		return 2
	}
}

// rebuildEditors reseeds each card's pending selector values from the
// snapshot state.
func (m *Model) rebuildEditors() {
	editors := make(map[string]*editor, len(m.order))
	for _, id := range m.order {
		state, _ := m.view.Registry.Get(id)
		editors[id] = &editor{
			baudIdx:   indexOfBaud(m.view.Caps.BaudRates, state.BaudRate),
			parityIdx: indexOfParity(m.view.Caps.Parities, state.Parity),
		}
	}
	m.editors = editors
}

func indexOfBaud(bauds []int, baud int) int {
	for i, b := range bauds {
		if b == baud {
			return i
		}
	}
	return 0
}

func indexOfParity(parities []port.Parity, p port.Parity) int {
	for i, v := range parities {
		if v == p {
			return i
		}
	}
	return 0
}

// clampSelection keeps the selection inside the current card list.
func (m *Model) clampSelection() {
	if len(m.order) == 0 {
		m.selected = -1
		return
	}
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= len(m.order) {
		m.selected = len(m.order) - 1
	}
}

// SelectedPort returns the ID of the currently selected port.
func (m Model) SelectedPort() string {
	if m.selected >= 0 && m.selected < len(m.order) {
		return m.order[m.selected]
	}
	return ""
}

// selectedEditor returns the pending selector state for the selected card.
func (m Model) selectedEditor() *editor {
	id := m.SelectedPort()
	if id == "" {
		return nil
	}
	return m.editors[id]
}

// pendingConfig resolves the selected card's pending selector values.
func (m Model) pendingConfig(id string) (int, port.Parity) {
	ed := m.editors[id]
	state, _ := m.view.Registry.Get(id)
	baud := state.BaudRate
	parity := state.Parity

	if ed != nil {
		if ed.baudIdx >= 0 && ed.baudIdx < len(m.view.Caps.BaudRates) {
			baud = m.view.Caps.BaudRates[ed.baudIdx]
		}
		if ed.parityIdx >= 0 && ed.parityIdx < len(m.view.Caps.Parities) {
			parity = m.view.Caps.Parities[ed.parityIdx]
		}
	}
	return baud, parity
}

// SecondsSinceUpdate returns how many seconds have passed since the last
// successful sync.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(time.Since(m.lastUpdate).Seconds())
}

// LayoutMode returns the current layout mode based on terminal width.
func (m Model) LayoutMode() LayoutMode {
	switch {
	case m.width >= BreakpointWide:
		return LayoutWide
	case m.width >= BreakpointStandard:
		return LayoutStandard
	case m.width >= BreakpointCompact:
		return LayoutCompact
	default:
		return LayoutMinimal
	}
}

// ShowFooter returns true if the terminal is tall enough to show the footer.
func (m Model) ShowFooter() bool {
	return m.height >= HeightMinimal
}
