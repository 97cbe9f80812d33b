package doctor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ahpham123/uart-testing-2/internal/api"
	"github.com/ahpham123/uart-testing-2/internal/port"
)

// serverCheckTimeout bounds each probe so doctor never hangs on a dead
// server.
const serverCheckTimeout = 5 * time.Second

// ServerReachableCheck verifies the port server answers the snapshot
// endpoint.
type ServerReachableCheck struct {
	Client *api.Client
}

func (c *ServerReachableCheck) Name() string     { return "server_reachable" }
func (c *ServerReachableCheck) Category() string { return "SERVER" }

func (c *ServerReachableCheck) Run() CheckResult {
	if c.Client == nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: "Server check: no client configured",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), serverCheckTimeout)
	defer cancel()

	start := time.Now()
	snap, err := c.Client.Ports(ctx)
	if err != nil {
		suggestion := "Check the dashboard server is running and server.url in .uartdash.yaml points at it"
		if api.IsTimeout(err) {
			suggestion = "The server accepted the connection but never answered - check its logs"
		}
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Cannot reach %s: %v", c.Client.BaseURL(), err),
			Suggestion: suggestion,
		}
	}

	return CheckResult{
		Name:   c.Name(),
		Status: StatusPass,
		Message: fmt.Sprintf("%s answered in %s (%d port%s)",
			c.Client.BaseURL(), time.Since(start).Round(time.Millisecond), len(snap.Ports), pluralize(len(snap.Ports))),
	}
}

func (c *ServerReachableCheck) Fix() error {
	return nil // Starting the server is out of scope here
}

// CapabilitiesCheck verifies the server advertises baud rates and parity
// modes, without which the card selectors have nothing to offer.
type CapabilitiesCheck struct {
	Client *api.Client
}

func (c *CapabilitiesCheck) Name() string     { return "server_capabilities" }
func (c *CapabilitiesCheck) Category() string { return "SERVER" }

func (c *CapabilitiesCheck) Run() CheckResult {
	if c.Client == nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: "Capabilities check: no client configured",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), serverCheckTimeout)
	defer cancel()

	snap, err := c.Client.Ports(ctx)
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: "Cannot check capabilities: server unreachable",
		}
	}

	caps := snap.Capabilities()
	if len(caps.BaudRates) == 0 || len(caps.Parities) == 0 {
		fallback := port.DefaultCapabilities()
		return CheckResult{
			Name:   c.Name(),
			Status: StatusWarn,
			Message: fmt.Sprintf("Server advertises %d baud rates and %d parity modes",
				len(caps.BaudRates), len(caps.Parities)),
			Suggestion: fmt.Sprintf("Selectors fall back to the built-in set (%s baud; %s)",
				strings.Join(fallback.BaudStrings(), "/"), strings.Join(fallback.ParityStrings(), "/")),
		}
	}

	return CheckResult{
		Name:   c.Name(),
		Status: StatusPass,
		Message: fmt.Sprintf("%d baud rates, %d parity modes",
			len(caps.BaudRates), len(caps.Parities)),
	}
}

func (c *CapabilitiesCheck) Fix() error {
	return nil
}

// PortHealthCheck summarizes the status of the server's ports and flags
// ports stuck in the error state.
type PortHealthCheck struct {
	Client *api.Client
}

func (c *PortHealthCheck) Name() string     { return "port_health" }
func (c *PortHealthCheck) Category() string { return "SERVER" }

func (c *PortHealthCheck) Run() CheckResult {
	if c.Client == nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: "Port health check: no client configured",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), serverCheckTimeout)
	defer cancel()

	snap, err := c.Client.Ports(ctx)
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: "Cannot check port health: server unreachable",
		}
	}

	var reg port.Registry
	reg.ReplaceAll(snap.States())
	tally := reg.Tally()

	msg := fmt.Sprintf("%d connected, %d disconnected, %d error%s",
		tally.Connected, tally.Disconnected, tally.Errors, pluralize(tally.Errors))

	if tally.Errors > 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    msg,
			Suggestion: "Run 'uartdash test <port>' against the errored ports to see what the server reports",
		}
	}

	if tally.Total() == 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Server reports no ports",
			Suggestion: "Check the server's device discovery; the dashboard will show fallback cards",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: msg,
	}
}

func (c *PortHealthCheck) Fix() error {
	return nil
}

// NewServerChecks creates all server-related checks.
func NewServerChecks(client *api.Client) []Check {
	return []Check{
		&ServerReachableCheck{Client: client},
		&CapabilitiesCheck{Client: client},
		&PortHealthCheck{Client: client},
	}
}
