package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahpham123/uart-testing-2/internal/api"
	"github.com/ahpham123/uart-testing-2/internal/controller"
	"github.com/ahpham123/uart-testing-2/internal/port"
)

func TestRenderCardContents(t *testing.T) {
	m, _ := syncedModel(t, &scriptedBackend{})

	card := m.renderCard("/dev/ttyAMA1", false, CardWidth)
	assert.Contains(t, card, "/dev/ttyAMA1")
	assert.Contains(t, card, "Baud")
	assert.Contains(t, card, "Parity")
	assert.Contains(t, card, "115200")
	assert.Contains(t, card, "parity even")
	assert.Contains(t, card, "connected")
	assert.Contains(t, card, "[apply]")
	assert.Contains(t, card, "[disconnect]")
	assert.Contains(t, card, "[test]")
}

func TestRenderCardUnknownPort(t *testing.T) {
	m, _ := syncedModel(t, &scriptedBackend{})
	assert.Equal(t, "", m.renderCard("/dev/nope", false, CardWidth))
}

func TestRenderCardFocusedSelectorArrows(t *testing.T) {
	m, _ := syncedModel(t, &scriptedBackend{})
	require.Equal(t, "/dev/ttyAMA0", m.SelectedPort())
	require.Equal(t, FieldBaud, m.focus)

	selected := m.renderCard("/dev/ttyAMA0", true, CardWidth)
	assert.Contains(t, selected, "‹ 9600 ›")

	unselected := m.renderCard("/dev/ttyAMA1", false, CardWidth)
	assert.NotContains(t, unselected, "‹")
}

func TestRenderCardPendingValueLeavesSummaryAlone(t *testing.T) {
	m, _ := syncedModel(t, &scriptedBackend{})

	// bump the selector without applying
	m.cycleSelector(1)

	card := m.renderCard("/dev/ttyAMA0", true, CardWidth)
	assert.Contains(t, card, "‹ 57600 ›")
	assert.Contains(t, card, "9600 baud")
}

func TestRenderCardPortMessage(t *testing.T) {
	m, ctrl := syncedModel(t, &scriptedBackend{})

	before := m.renderCard("/dev/ttyAMA0", false, CardWidth)
	assert.NotContains(t, before, "Configured")

	ctrl.Bus().ShowPort("/dev/ttyAMA0", "Configured", controller.KindSuccess)

	after := m.renderCard("/dev/ttyAMA0", false, CardWidth)
	assert.Contains(t, after, "Configured")

	// the message belongs to one card only
	other := m.renderCard("/dev/ttyAMA1", false, CardWidth)
	assert.NotContains(t, other, "Configured")
}

func TestRenderCardTruncatesLongName(t *testing.T) {
	long := "/dev/serial/by-id/usb-FTDI_FT232R_USB_UART_A50285BI-if00-port0"
	backend := &scriptedBackend{
		portsFn: func(ctx context.Context) (*api.Snapshot, error) {
			return &api.Snapshot{
				Ports: map[string]api.PortConfig{
					long: {BaudRate: 9600, Parity: "none", Status: "connected"},
				},
				AvailableBaudRates: []int{9600},
				AvailableParity:    []string{"none"},
			}, nil
		},
	}
	m, _ := syncedModel(t, backend)

	card := m.renderCard(long, false, CardWidth)
	assert.Contains(t, card, "…")
	assert.Contains(t, card, "port0")
	assert.NotContains(t, card, long)
}

func TestRenderSummaryUsesAppliedState(t *testing.T) {
	st := port.State{ID: "/dev/ttyUSB0", BaudRate: 57600, Parity: port.ParityOdd, Status: port.StatusError}

	line := renderSummary(st)
	assert.Contains(t, line, "57600 baud")
	assert.Contains(t, line, "parity odd")
	assert.Contains(t, line, "error")
}

func TestEditorValueHelpers(t *testing.T) {
	m, _ := syncedModel(t, &scriptedBackend{})

	assert.Equal(t, "9600", m.editorBaud("/dev/ttyAMA0"))
	assert.Equal(t, "none", m.editorParity("/dev/ttyAMA0"))
	assert.Equal(t, "115200", m.editorBaud("/dev/ttyAMA1"))
	assert.Equal(t, "even", m.editorParity("/dev/ttyAMA1"))

	assert.Equal(t, "", m.editorBaud("/dev/nope"))
	assert.Equal(t, "", m.editorParity("/dev/nope"))
}

func TestRenderActions(t *testing.T) {
	m, _ := syncedModel(t, &scriptedBackend{})
	m.focus = FieldDisconnect

	row := m.renderActions(true)
	assert.Contains(t, row, "[apply]")
	assert.Contains(t, row, "[disconnect]")
	assert.Contains(t, row, "[test]")
}
