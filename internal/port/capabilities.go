package port

import (
	"fmt"
	"strconv"
)

// Capabilities is the set of baud rates and parity modes the server
// accepts. It is replaced wholesale on each successful sync.
type Capabilities struct {
	BaudRates []int
	Parities  []Parity
}

// DefaultCapabilities returns the built-in fallback capability set used
// until the server has reported its own.
func DefaultCapabilities() Capabilities {
	return Capabilities{
		BaudRates: []int{9600, 19200, 38400, 57600, 115200, 230400, 460800, 921600},
		Parities:  []Parity{ParityNone, ParityEven, ParityOdd},
	}
}

// FallbackStates returns the placeholder ports shown when the server
// cannot be reached before any state has ever been loaded.
func FallbackStates() []State {
	return []State{
		{ID: "/dev/ttyAMA0", BaudRate: 9600, Parity: ParityNone, Status: StatusDisconnected},
		{ID: "/dev/ttyAMA1", BaudRate: 9600, Parity: ParityNone, Status: StatusDisconnected},
		{ID: "/dev/ttyAMA2", BaudRate: 9600, Parity: ParityNone, Status: StatusDisconnected},
	}
}

// AllowsBaud reports whether the capability set includes the baud rate.
func (c Capabilities) AllowsBaud(baud int) bool {
	for _, b := range c.BaudRates {
		if b == baud {
			return true
		}
	}
	return false
}

// AllowsParity reports whether the capability set includes the parity mode.
func (c Capabilities) AllowsParity(p Parity) bool {
	for _, q := range c.Parities {
		if q == p {
			return true
		}
	}
	return false
}

// Validate checks a requested configuration against the capability set.
// It returns a *ValidationError describing the first offending field, or
// nil when the request is acceptable. Validation happens before any
// request is sent; a failure here never reaches the server.
func (c Capabilities) Validate(baud int, parity Parity) error {
	if !c.AllowsBaud(baud) {
		return &ValidationError{
			Field:   "baud rate",
			Value:   strconv.Itoa(baud),
			Allowed: c.baudStrings(),
		}
	}
	if !c.AllowsParity(parity) {
		return &ValidationError{
			Field:   "parity",
			Value:   string(parity),
			Allowed: c.parityStrings(),
		}
	}
	return nil
}

// BaudStrings returns the baud rates formatted for selector rendering.
func (c Capabilities) BaudStrings() []string {
	return c.baudStrings()
}

// ParityStrings returns the parity modes formatted for selector rendering.
func (c Capabilities) ParityStrings() []string {
	return c.parityStrings()
}

func (c Capabilities) baudStrings() []string {
	out := make([]string, len(c.BaudRates))
	for i, b := range c.BaudRates {
		out[i] = strconv.Itoa(b)
	}
	return out
}

func (c Capabilities) parityStrings() []string {
	out := make([]string, len(c.Parities))
	for i, p := range c.Parities {
		out[i] = string(p)
	}
	return out
}

// Snapshot returns a deep copy of the capability set.
func (c Capabilities) Snapshot() Capabilities {
	return Capabilities{
		BaudRates: append([]int(nil), c.BaudRates...),
		Parities:  append([]Parity(nil), c.Parities...),
	}
}

// ValidationError is a locally detected invalid configuration request.
type ValidationError struct {
	Field   string
	Value   string
	Allowed []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Value)
}
