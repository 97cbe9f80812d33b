package dashboard

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahpham123/uart-testing-2/internal/api"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapShortHelp(t *testing.T) {
	assert.Len(t, keys.ShortHelp(), 4)
}

func TestKeyMapFullHelp(t *testing.T) {
	rows := keys.FullHelp()
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.NotEmpty(t, row)
	}
}

func TestKeyMapBindingsHaveHelp(t *testing.T) {
	for _, row := range keys.FullHelp() {
		for _, b := range row {
			assert.NotEmpty(t, b.Help().Key)
			assert.NotEmpty(t, b.Help().Desc)
		}
	}
}

func TestFieldNextWrapsAround(t *testing.T) {
	f := FieldBaud
	seen := []Field{f}
	for i := 0; i < int(fieldCount); i++ {
		f = f.Next()
		seen = append(seen, f)
	}
	assert.Equal(t, FieldBaud, f)
	assert.Contains(t, seen, FieldParity)
	assert.Contains(t, seen, FieldTest)
}

func TestFieldPrevWrapsAround(t *testing.T) {
	assert.Equal(t, FieldTest, FieldBaud.Prev())
	assert.Equal(t, FieldBaud, FieldParity.Prev())
}

func TestParseSort(t *testing.T) {
	assert.Equal(t, SortByStatus, ParseSort("status"))
	assert.Equal(t, SortByName, ParseSort("name"))
	assert.Equal(t, SortByName, ParseSort(""))
	assert.Equal(t, SortByName, ParseSort("bogus"))
}

func TestSortOrderString(t *testing.T) {
	assert.Equal(t, "name", SortByName.String())
	assert.Equal(t, "status", SortByStatus.String())
}

func TestSortOrderToggle(t *testing.T) {
	assert.Equal(t, SortByStatus, SortByName.toggle())
	assert.Equal(t, SortByName, SortByStatus.toggle())
}

func TestNavigationKeys(t *testing.T) {
	m, _ := syncedModel(t, &scriptedBackend{})
	require.Equal(t, 0, m.selected)

	updated, _ := m.Update(runeKey('j'))
	m = updated.(Model)
	assert.Equal(t, 1, m.selected)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	assert.Equal(t, 2, m.selected)

	// clamped at the bottom
	updated, _ = m.Update(runeKey('j'))
	m = updated.(Model)
	assert.Equal(t, 2, m.selected)

	updated, _ = m.Update(runeKey('k'))
	m = updated.(Model)
	assert.Equal(t, 1, m.selected)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	assert.Equal(t, 0, m.selected)

	// clamped at the top
	updated, _ = m.Update(runeKey('k'))
	m = updated.(Model)
	assert.Equal(t, 0, m.selected)
}

func TestTabCyclesFocus(t *testing.T) {
	m, _ := syncedModel(t, &scriptedBackend{})
	require.Equal(t, FieldBaud, m.focus)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, FieldParity, m.focus)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	assert.Equal(t, FieldBaud, m.focus)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	assert.Equal(t, FieldTest, m.focus)
}

func TestArrowsCycleSelector(t *testing.T) {
	m, _ := syncedModel(t, &scriptedBackend{})
	ed := m.editors["/dev/ttyAMA0"]
	require.Equal(t, 0, ed.baudIdx)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	assert.Equal(t, 1, m.editors["/dev/ttyAMA0"].baudIdx)

	updated, _ = m.Update(runeKey('h'))
	m = updated.(Model)
	assert.Equal(t, 0, m.editors["/dev/ttyAMA0"].baudIdx)

	// wraps below zero
	updated, _ = m.Update(runeKey('h'))
	m = updated.(Model)
	assert.Equal(t, 2, m.editors["/dev/ttyAMA0"].baudIdx)
}

func TestArrowsCycleParity(t *testing.T) {
	m, _ := syncedModel(t, &scriptedBackend{})
	m.focus = FieldParity

	updated, _ := m.Update(runeKey('l'))
	m = updated.(Model)
	assert.Equal(t, 1, m.editors["/dev/ttyAMA0"].parityIdx)
}

func TestArrowsMoveWithinActionRow(t *testing.T) {
	m, _ := syncedModel(t, &scriptedBackend{})
	m.focus = FieldApply

	updated, _ := m.Update(runeKey('l'))
	m = updated.(Model)
	assert.Equal(t, FieldDisconnect, m.focus)

	updated, _ = m.Update(runeKey('l'))
	m = updated.(Model)
	assert.Equal(t, FieldTest, m.focus)

	// clamped at the edge of the row
	updated, _ = m.Update(runeKey('l'))
	m = updated.(Model)
	assert.Equal(t, FieldTest, m.focus)

	updated, _ = m.Update(runeKey('h'))
	m = updated.(Model)
	assert.Equal(t, FieldDisconnect, m.focus)
}

func TestEnterAppliesPendingSelector(t *testing.T) {
	var got api.ConfigureRequest
	backend := &scriptedBackend{
		configureFn: func(ctx context.Context, req api.ConfigureRequest) (*api.CommandResult, error) {
			got = req
			return &api.CommandResult{
				Success: true,
				Message: "Configured",
				Config:  &api.PortConfig{BaudRate: req.BaudRate, Parity: req.Parity, Status: "connected"},
			}, nil
		},
	}
	m, _ := syncedModel(t, backend)

	// bump the baud selector, then apply
	m.cycleSelector(1)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(commandDoneMsg)
	require.True(t, ok)
	assert.True(t, done.outcome.Success)

	assert.Equal(t, "/dev/ttyAMA0", got.Port)
	assert.Equal(t, 57600, got.BaudRate)
	assert.Equal(t, "none", got.Parity)
}

func TestEnterOnDisconnect(t *testing.T) {
	var gotPort string
	backend := &scriptedBackend{
		disconnectFn: func(ctx context.Context, portID string) (*api.CommandResult, error) {
			gotPort = portID
			return &api.CommandResult{
				Success: true,
				Message: "Disconnected",
				Config:  &api.PortConfig{BaudRate: 9600, Parity: "none", Status: "disconnected"},
			}, nil
		},
	}
	m, _ := syncedModel(t, backend)
	m.focus = FieldDisconnect

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	done, ok := cmd().(commandDoneMsg)
	require.True(t, ok)
	assert.True(t, done.outcome.Success)
	assert.Equal(t, "/dev/ttyAMA0", gotPort)
}

func TestEnterOnTest(t *testing.T) {
	backend := &scriptedBackend{
		testFn: func(ctx context.Context, portID string) (*api.CommandResult, error) {
			return &api.CommandResult{
				Success: true,
				Message: "Port test successful",
				Details: &api.TestDetails{BaudRate: 9600, Parity: "none", IsOpen: true},
			}, nil
		},
	}
	m, _ := syncedModel(t, backend)
	m.focus = FieldTest

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	done, ok := cmd().(commandDoneMsg)
	require.True(t, ok)
	require.NotNil(t, done.outcome.Details)
	assert.True(t, done.outcome.Details.IsOpen)
}

func TestEnterWithoutPortsDoesNothing(t *testing.T) {
	ctrl := newIdleController(t)
	m := NewModel(ctrl, 0, SortByName)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestQuitKey(t *testing.T) {
	m, _ := syncedModel(t, &scriptedBackend{})

	updated, cmd := m.Update(runeKey('q'))
	m = updated.(Model)

	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRefreshKeyStartsSync(t *testing.T) {
	m, _ := syncedModel(t, &scriptedBackend{})

	updated, cmd := m.Update(runeKey('r'))
	m = updated.(Model)

	assert.True(t, m.syncing)
	assert.NotNil(t, cmd)
}

func TestSortKeyReorders(t *testing.T) {
	m, _ := syncedModel(t, &scriptedBackend{})

	updated, _ := m.Update(runeKey('s'))
	m = updated.(Model)

	assert.Equal(t, SortByStatus, m.sortOrder)
	assert.Equal(t, "/dev/ttyAMA1", m.order[0])

	updated, _ = m.Update(runeKey('s'))
	m = updated.(Model)
	assert.Equal(t, SortByName, m.sortOrder)
	assert.Equal(t, "/dev/ttyAMA0", m.order[0])
}

func TestDetailKeyAndBack(t *testing.T) {
	m, _ := syncedModel(t, &scriptedBackend{})

	updated, _ := m.Update(runeKey('d'))
	m = updated.(Model)
	assert.Equal(t, ViewDetail, m.viewMode)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	assert.Equal(t, ViewList, m.viewMode)
}

func TestDetailKeyIgnoredWithoutSelection(t *testing.T) {
	ctrl := newIdleController(t)
	m := NewModel(ctrl, 0, SortByName)

	updated, _ := m.Update(runeKey('d'))
	m = updated.(Model)
	assert.Equal(t, ViewList, m.viewMode)
}

func TestHelpToggle(t *testing.T) {
	m, _ := syncedModel(t, &scriptedBackend{})

	updated, _ := m.Update(runeKey('?'))
	m = updated.(Model)
	assert.True(t, m.showHelp)

	// selection keys are swallowed while help is open
	updated, _ = m.Update(runeKey('j'))
	m = updated.(Model)
	assert.Equal(t, 0, m.selected)
	assert.True(t, m.showHelp)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	assert.False(t, m.showHelp)
}

func TestQuitFromHelpOverlay(t *testing.T) {
	m, _ := syncedModel(t, &scriptedBackend{})
	m.showHelp = true

	updated, cmd := m.Update(runeKey('q'))
	m = updated.(Model)

	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
}

func TestDetailViewKeys(t *testing.T) {
	m, _ := syncedModel(t, &scriptedBackend{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)
	m.viewMode = ViewDetail

	// refresh works from the detail view
	updated, cmd := m.Update(runeKey('r'))
	m = updated.(Model)
	assert.True(t, m.syncing)
	assert.NotNil(t, cmd)

	// unbound keys fall through to the viewport without crashing
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	assert.Equal(t, ViewDetail, m.viewMode)

	updated, cmd = m.Update(runeKey('q'))
	m = updated.(Model)
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
}
