package api

import (
	"sort"

	"github.com/ahpham123/uart-testing-2/internal/port"
)

// Snapshot is the response body of GET /api/ports: every port the server
// manages plus the capability lists configuration requests are checked
// against.
type Snapshot struct {
	Ports              map[string]PortConfig `json:"ports"`
	AvailableBaudRates []int                 `json:"available_baud_rates"`
	AvailableParity    []string              `json:"available_parity"`
}

// PortConfig is the server's record for one port.
type PortConfig struct {
	BaudRate int    `json:"baud_rate"`
	Parity   string `json:"parity"`
	Status   string `json:"status"`
}

// ConfigureRequest is the body of POST /api/configure.
type ConfigureRequest struct {
	Port     string `json:"port"`
	BaudRate int    `json:"baud_rate"`
	Parity   string `json:"parity"`
}

// CommandResult is the response body shared by the configure, disconnect,
// and test endpoints. The server reports application-level failures with
// Success false and a human-readable Message; Config is present when the
// command changed or reported the port's configuration, Details only on
// test responses.
type CommandResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Config  *PortConfig  `json:"config,omitempty"`
	Details *TestDetails `json:"details,omitempty"`
}

// TestDetails carries what the server measured while testing a port.
// Field names follow the server's response body.
type TestDetails struct {
	BaudRate int    `json:"baudrate"`
	Parity   string `json:"parity"`
	IsOpen   bool   `json:"is_open"`
}

// States converts the snapshot's port map into domain states, sorted by
// port identifier. Status and parity strings are carried verbatim; the
// dashboard buckets unknown statuses when counting.
func (s *Snapshot) States() []port.State {
	ids := make([]string, 0, len(s.Ports))
	for id := range s.Ports {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	states := make([]port.State, 0, len(ids))
	for _, id := range ids {
		states = append(states, s.Ports[id].State(id))
	}
	return states
}

// Capabilities converts the snapshot's capability lists into the domain type.
func (s *Snapshot) Capabilities() port.Capabilities {
	caps := port.Capabilities{
		BaudRates: append([]int(nil), s.AvailableBaudRates...),
		Parities:  make([]port.Parity, 0, len(s.AvailableParity)),
	}
	for _, p := range s.AvailableParity {
		caps.Parities = append(caps.Parities, port.Parity(p))
	}
	return caps
}

// State converts a server port record into the domain state for id.
func (c PortConfig) State(id string) port.State {
	return port.State{
		ID:       id,
		BaudRate: c.BaudRate,
		Parity:   port.Parity(c.Parity),
		Status:   port.Status(c.Status),
	}
}
