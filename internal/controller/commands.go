package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/ahpham123/uart-testing-2/internal/api"
	"github.com/ahpham123/uart-testing-2/internal/port"
)

// RenderDelay is how long a successful configure or disconnect waits
// before the card refresh, so the success message is read against the
// card the user acted on rather than the rebuilt one.
const RenderDelay = 1500 * time.Millisecond

// CommandKind identifies which port command ran.
type CommandKind int

const (
	CommandConfigure CommandKind = iota
	CommandDisconnect
	CommandTest
)

// String returns a human-readable command name.
func (k CommandKind) String() string {
	switch k {
	case CommandConfigure:
		return "configure"
	case CommandDisconnect:
		return "disconnect"
	case CommandTest:
		return "test"
	default:
		return "unknown"
	}
}

// CommandOutcome describes one completed command dispatch.
type CommandOutcome struct {
	Kind        CommandKind
	Port        string
	Success     bool             // server reported success
	Applied     bool             // registry entry was replaced
	Message     string           // text shown to the user
	Details     *api.TestDetails // test responses only
	Err         error            // validation or transport error
	RenderDelay time.Duration    // >0 schedules a deferred card refresh
}

// Configure validates a requested configuration locally and, if it passes,
// sends it to the server. A validation failure never produces a request.
// On server success the port's registry entry is replaced with the
// returned config and the outcome carries RenderDelay; every path leaves
// a per-port message on the bus.
func (c *Controller) Configure(ctx context.Context, id string, baud int, parity port.Parity) CommandOutcome {
	out := CommandOutcome{Kind: CommandConfigure, Port: id}

	c.mu.Lock()
	caps := c.caps.Snapshot()
	c.mu.Unlock()

	if err := caps.Validate(baud, parity); err != nil {
		out.Err = err
		out.Message = validationMessage(err)
		c.bus.ShowPort(id, out.Message, KindError)
		c.log.Debug("[controller] configure %s rejected locally: %v", id, err)
		return out
	}

	c.bus.ShowPort(id, "Configuring...", KindInfo)

	res, err := c.backend.Configure(ctx, api.ConfigureRequest{
		Port:     id,
		BaudRate: baud,
		Parity:   parity.String(),
	})
	if err != nil {
		out.Err = err
		out.Message = "Failed to configure port: server unreachable"
		c.bus.ShowPort(id, out.Message, KindError)
		c.events.Add(EventCommandFailed, id, "configure failed: "+err.Error())
		return out
	}

	out.Success = res.Success
	out.Message = res.Message

	if !res.Success {
		c.bus.ShowPort(id, res.Message, KindError)
		c.events.Add(EventCommandFailed, id, "configure rejected: "+res.Message)
		return out
	}

	c.mu.Lock()
	if res.Config != nil {
		c.registry.Set(res.Config.State(id))
		out.Applied = true
	}
	c.mu.Unlock()

	c.bus.ShowPort(id, res.Message, KindSuccess)
	c.events.Add(EventCommand, id, fmt.Sprintf("configured %d baud, parity %s", baud, parity))
	out.RenderDelay = RenderDelay
	return out
}

// Disconnect asks the server to close a port. Response handling matches
// Configure: success replaces the single registry entry and defers the
// card refresh; there is no local validation and no request body.
func (c *Controller) Disconnect(ctx context.Context, id string) CommandOutcome {
	out := CommandOutcome{Kind: CommandDisconnect, Port: id}

	res, err := c.backend.Disconnect(ctx, id)
	if err != nil {
		out.Err = err
		out.Message = "Failed to disconnect port: server unreachable"
		c.bus.ShowPort(id, out.Message, KindError)
		c.events.Add(EventCommandFailed, id, "disconnect failed: "+err.Error())
		return out
	}

	out.Success = res.Success
	out.Message = res.Message

	if !res.Success {
		c.bus.ShowPort(id, res.Message, KindError)
		c.events.Add(EventCommandFailed, id, "disconnect rejected: "+res.Message)
		return out
	}

	c.mu.Lock()
	if res.Config != nil {
		c.registry.Set(res.Config.State(id))
		out.Applied = true
	}
	c.mu.Unlock()

	c.bus.ShowPort(id, res.Message, KindSuccess)
	c.events.Add(EventCommand, id, "disconnected")
	out.RenderDelay = RenderDelay
	return out
}

// Test asks the server to probe a port. It only ever produces messages
// and an event log entry: the registry is never touched and no card
// refresh is scheduled, whatever the server answers.
func (c *Controller) Test(ctx context.Context, id string) CommandOutcome {
	out := CommandOutcome{Kind: CommandTest, Port: id}

	res, err := c.backend.Test(ctx, id)
	if err != nil {
		out.Err = err
		out.Message = "Failed to test port: server unreachable"
		c.bus.ShowPort(id, out.Message, KindError)
		c.events.Add(EventCommandFailed, id, "test failed: "+err.Error())
		return out
	}

	out.Success = res.Success
	out.Message = res.Message
	out.Details = res.Details

	if !res.Success {
		c.bus.ShowPort(id, res.Message, KindError)
		c.events.Add(EventCommandFailed, id, "test rejected: "+res.Message)
		return out
	}

	c.bus.ShowPort(id, res.Message, KindSuccess)
	if res.Details != nil {
		c.events.Add(EventCommand, id, fmt.Sprintf("test ok: %d baud, parity %s, open=%t",
			res.Details.BaudRate, res.Details.Parity, res.Details.IsOpen))
	} else {
		c.events.Add(EventCommand, id, "test ok")
	}
	return out
}

// validationMessage renders a local validation failure the way the server
// words the same rejection, so the user sees one vocabulary.
func validationMessage(err error) string {
	vErr, ok := err.(*port.ValidationError)
	if !ok {
		return err.Error()
	}
	switch vErr.Field {
	case "baud rate":
		return "Invalid baud rate"
	case "parity":
		return "Invalid parity setting"
	default:
		return fmt.Sprintf("Invalid %s", vErr.Field)
	}
}
