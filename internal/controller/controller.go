// Package controller owns the dashboard's state: the port registry, the
// capability set, the loading flag, the connection indicator, and the
// message bus. All mutation goes through Sync and the command methods;
// renderers work from immutable snapshots.
package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ahpham123/uart-testing-2/internal/api"
	"github.com/ahpham123/uart-testing-2/internal/logger"
	"github.com/ahpham123/uart-testing-2/internal/port"
)

// Backend is the part of the port server API the controller drives.
// *api.Client satisfies it.
type Backend interface {
	Ports(ctx context.Context) (*api.Snapshot, error)
	Configure(ctx context.Context, req api.ConfigureRequest) (*api.CommandResult, error)
	Disconnect(ctx context.Context, portID string) (*api.CommandResult, error)
	Test(ctx context.Context, portID string) (*api.CommandResult, error)
}

// Indicator is the header connection state.
type Indicator int

const (
	IndicatorIdle Indicator = iota
	IndicatorLoading
	IndicatorConnected
	IndicatorError
)

// String returns a human-readable indicator name.
func (i Indicator) String() string {
	switch i {
	case IndicatorLoading:
		return "loading"
	case IndicatorConnected:
		return "connected"
	case IndicatorError:
		return "error"
	default:
		return "idle"
	}
}

// Controller coordinates sync and commands against the backend and owns
// every piece of dashboard state. Methods are safe for concurrent use;
// the TUI calls them from tea.Cmd goroutines while one-shot commands call
// them directly.
type Controller struct {
	mu        sync.Mutex
	backend   Backend
	registry  port.Registry
	caps      port.Capabilities
	indicator Indicator
	loading   bool
	fallback  bool
	lastSync  time.Time
	bus       *Bus
	events    *EventLog
	log       logger.Logger
}

// New creates a controller. Capabilities start at the built-in fallback
// set so validation works before the first successful sync.
func New(backend Backend, log logger.Logger) *Controller {
	if log == nil {
		log = logger.Noop()
	}
	return &Controller{
		backend:   backend,
		registry:  port.NewRegistry(),
		caps:      port.DefaultCapabilities(),
		indicator: IndicatorIdle,
		bus:       NewBus(),
		events:    NewEventLog(DefaultEventLogSize),
		log:       log,
	}
}

// Bus returns the message bus for rendering.
func (c *Controller) Bus() *Bus {
	return c.bus
}

// Events returns the event log for rendering.
func (c *Controller) Events() *EventLog {
	return c.events
}

// View is an immutable snapshot of controller state for one render pass.
type View struct {
	Registry  port.Registry
	Caps      port.Capabilities
	Indicator Indicator
	Loading   bool
	Fallback  bool
	LastSync  time.Time
}

// View returns a snapshot of the current state. The returned copy stays
// stable while the live state changes underneath, which is what lets the
// dashboard keep drawing pre-command cards until a delayed refresh fires.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return View{
		Registry:  c.registry.Snapshot(),
		Caps:      c.caps.Snapshot(),
		Indicator: c.indicator,
		Loading:   c.loading,
		Fallback:  c.fallback,
		LastSync:  c.lastSync,
	}
}

// SyncOutcome describes one completed (or dropped) sync pass.
type SyncOutcome struct {
	Dropped      bool  // a sync was already in flight; nothing happened
	UsedFallback bool  // registry was empty on failure and got seeded
	Ports        int   // registry size after the sync
	Err          error // transport error, nil on success
}

// Sync fetches the port snapshot and replaces the registry and capability
// set wholesale. Overlapping calls are dropped no-ops: whoever finds the
// loading flag set returns immediately. On failure with an empty registry
// the built-in fallback ports are seeded so the dashboard has cards to
// draw. The loading flag is cleared in the final step on every path.
func (c *Controller) Sync(ctx context.Context) SyncOutcome {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		c.log.Debug("[controller] sync dropped, already in flight")
		return SyncOutcome{Dropped: true}
	}
	c.loading = true
	c.indicator = IndicatorLoading
	c.mu.Unlock()

	snap, err := c.backend.Ports(ctx)

	var out SyncOutcome
	c.mu.Lock()
	if err != nil {
		out.Err = err
		c.indicator = IndicatorError
		if c.registry.Empty() {
			c.registry.ReplaceAll(port.FallbackStates())
			c.fallback = true
			out.UsedFallback = true
			c.events.Add(EventSyncFailed, "", "sync failed, showing fallback ports")
		} else {
			c.events.Add(EventSyncFailed, "", "sync failed, keeping last known state")
		}
		c.bus.ShowGlobal("Failed to load ports from server", KindError)
	} else {
		c.registry.ReplaceAll(snap.States())
		c.caps = snap.Capabilities()
		c.indicator = IndicatorConnected
		c.fallback = false
		c.lastSync = time.Now()
		c.events.Add(EventSync, "", fmt.Sprintf("synced %d ports", c.registry.Len()))
	}
	out.Ports = c.registry.Len()
	c.loading = false
	c.mu.Unlock()

	if err != nil {
		c.log.Debug("[controller] sync failed: %v", err)
	} else {
		c.log.Debug("[controller] sync ok: %d ports", out.Ports)
	}
	return out
}
