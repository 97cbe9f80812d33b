package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// busClock drives a Bus with a controllable clock so expiry tests do not
// sleep.
type busClock struct {
	t time.Time
}

func (c *busClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestBus() (*Bus, *busClock) {
	clock := &busClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	b := NewBus()
	b.now = func() time.Time { return clock.t }
	return b, clock
}

func TestPortMessageAutoHides(t *testing.T) {
	b, clock := newTestBus()

	b.ShowPort("/dev/ttyAMA0", "Port configured", KindSuccess)

	msg, visible := b.PortVisible("/dev/ttyAMA0")
	require.True(t, visible)
	assert.Equal(t, "Port configured", msg.Text)
	assert.Equal(t, KindSuccess, msg.Kind)

	// Still visible just before the hide deadline
	clock.advance(PortMessageTTL - time.Millisecond)
	_, visible = b.PortVisible("/dev/ttyAMA0")
	assert.True(t, visible)

	// Hidden at the deadline, but the slot retains the message
	clock.advance(time.Millisecond)
	_, visible = b.PortVisible("/dev/ttyAMA0")
	assert.False(t, visible)

	retained, ok := b.PortRetained("/dev/ttyAMA0")
	require.True(t, ok, "hidden message stays in its slot until replaced")
	assert.Equal(t, "Port configured", retained.Text)
}

func TestPortMessageReplacedResetsWindow(t *testing.T) {
	b, clock := newTestBus()

	b.ShowPort("/dev/ttyAMA0", "first", KindInfo)
	clock.advance(3 * time.Second)

	b.ShowPort("/dev/ttyAMA0", "second", KindError)

	// Past the first message's deadline, inside the second's
	clock.advance(2 * time.Second)

	msg, visible := b.PortVisible("/dev/ttyAMA0")
	require.True(t, visible)
	assert.Equal(t, "second", msg.Text)
	assert.Equal(t, KindError, msg.Kind)
}

func TestPortMessagesAreIndependent(t *testing.T) {
	b, clock := newTestBus()

	b.ShowPort("/dev/ttyAMA0", "zero", KindInfo)
	clock.advance(3 * time.Second)
	b.ShowPort("/dev/ttyAMA1", "one", KindInfo)

	clock.advance(2 * time.Second)

	_, visible := b.PortVisible("/dev/ttyAMA0")
	assert.False(t, visible, "first port's message expired")

	_, visible = b.PortVisible("/dev/ttyAMA1")
	assert.True(t, visible, "second port's message still inside its window")
}

func TestGlobalMessageLifecycle(t *testing.T) {
	b, clock := newTestBus()

	b.ShowGlobal("Failed to load ports from server", KindError)

	visible := b.GlobalVisible()
	require.Len(t, visible, 1)
	assert.Equal(t, "Failed to load ports from server", visible[0].Text)

	// Hidden at the five second mark but still in the stack
	clock.advance(GlobalMessageTTL)
	assert.Empty(t, b.GlobalVisible())
	assert.Equal(t, 1, b.GlobalLen())

	// Not yet removable before the removal delay elapses
	b.Prune()
	assert.Equal(t, 1, b.GlobalLen())

	// Gone once the removal deadline passes
	clock.advance(GlobalRemoveDelay)
	b.Prune()
	assert.Equal(t, 0, b.GlobalLen())
}

func TestGlobalMessagesNotDeduplicated(t *testing.T) {
	b, _ := newTestBus()

	b.ShowGlobal("Failed to load ports from server", KindError)
	b.ShowGlobal("Failed to load ports from server", KindError)

	visible := b.GlobalVisible()
	assert.Len(t, visible, 2, "identical messages each get their own entry")
}

func TestGlobalMessagesExpireIndependently(t *testing.T) {
	b, clock := newTestBus()

	b.ShowGlobal("first", KindError)
	clock.advance(2 * time.Second)
	b.ShowGlobal("second", KindInfo)

	clock.advance(3*time.Second + time.Millisecond) // first past 5s, second at 3s

	visible := b.GlobalVisible()
	require.Len(t, visible, 1)
	assert.Equal(t, "second", visible[0].Text)

	// Prune only drops the first once its removal delay also passed
	b.Prune()
	assert.Equal(t, 2, b.GlobalLen())

	clock.advance(GlobalRemoveDelay)
	b.Prune()
	assert.Equal(t, 1, b.GlobalLen())
}

func TestPruneIdempotent(t *testing.T) {
	b, clock := newTestBus()

	b.ShowGlobal("gone soon", KindInfo)
	clock.advance(GlobalMessageTTL + GlobalRemoveDelay)

	b.Prune()
	assert.Equal(t, 0, b.GlobalLen())

	// A stale second prune is a harmless no-op
	b.Prune()
	assert.Equal(t, 0, b.GlobalLen())
}

func TestPortVisibleUnknownPort(t *testing.T) {
	b, _ := newTestBus()

	_, visible := b.PortVisible("/dev/ttyAMA0")
	assert.False(t, visible)

	_, ok := b.PortRetained("/dev/ttyAMA0")
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "info", KindInfo.String())
	assert.Equal(t, "success", KindSuccess.String())
	assert.Equal(t, "error", KindError.String())
}
