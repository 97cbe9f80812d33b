// Package port holds the domain model for UART ports: per-port state,
// the registry the dashboard renders from, and the capability set that
// local validation checks against.
package port

import (
	"fmt"
	"strings"
)

// Parity is a UART parity setting.
type Parity string

const (
	ParityNone Parity = "none"
	ParityEven Parity = "even"
	ParityOdd  Parity = "odd"
)

// ParseParity converts a string to a Parity, case-insensitively.
func ParseParity(s string) (Parity, error) {
	switch Parity(strings.ToLower(s)) {
	case ParityNone:
		return ParityNone, nil
	case ParityEven:
		return ParityEven, nil
	case ParityOdd:
		return ParityOdd, nil
	default:
		return "", fmt.Errorf("invalid parity %q (expected none, even, or odd)", s)
	}
}

// String returns the wire representation of the parity setting.
func (p Parity) String() string {
	return string(p)
}

// Status is a port's connection status as reported by the server.
type Status string

const (
	StatusConnected    Status = "connected"
	StatusDisconnected Status = "disconnected"
	StatusError        Status = "error"
)

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// Bucket maps a status onto one of the three dashboard counters.
// Anything that is not connected or error counts as disconnected,
// including statuses this client does not know about.
func (s Status) Bucket() Status {
	switch s {
	case StatusConnected, StatusError:
		return s
	default:
		return StatusDisconnected
	}
}

// State is the client-side record for a single port.
type State struct {
	ID       string
	BaudRate int
	Parity   Parity
	Status   Status
}

// Summary renders the one-line description shown on a port card,
// e.g. "9600 baud · parity none · disconnected".
func (s State) Summary() string {
	return fmt.Sprintf("%d baud · parity %s · %s", s.BaudRate, s.Parity, s.Status)
}
