package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/ahpham123/uart-testing-2/internal/api"
	"github.com/ahpham123/uart-testing-2/internal/errors"
	"github.com/ahpham123/uart-testing-2/internal/port"
	"github.com/ahpham123/uart-testing-2/internal/ui"
)

// StatusOutput represents the JSON output for the status command.
type StatusOutput struct {
	Server string       `json:"server"`
	Ports  []PortStatus `json:"ports"`
	Tally  TallyOutput  `json:"tally"`
}

// PortStatus represents a single port in status output.
type PortStatus struct {
	Port     string `json:"port"`
	BaudRate int    `json:"baud_rate"`
	Parity   string `json:"parity"`
	Status   string `json:"status"`
}

// TallyOutput summarizes port states.
type TallyOutput struct {
	Total        int `json:"total"`
	Connected    int `json:"connected"`
	Disconnected int `json:"disconnected"`
	Errors       int `json:"errors"`
}

// statusCommand implements the status command logic.
func statusCommand(flags ServerFlags) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	client, err := newServerClient(cfg, flags)
	if err != nil {
		return err
	}

	snap, err := client.Ports(context.Background())
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrAPI,
			"Couldn't reach the port server at "+client.BaseURL(),
			"Check the server is running, or run 'uartdash doctor' for a full diagnosis.")
	}

	states := snap.States()

	var reg port.Registry
	reg.ReplaceAll(states)
	tally := reg.Tally()

	if MachineMode() {
		return outputStatusJSON(client, states, tally)
	}

	return outputStatusText(client, states, tally)
}

// outputStatusJSON outputs status in the machine envelope.
func outputStatusJSON(client *api.Client, states []port.State, tally port.Tally) error {
	output := StatusOutput{
		Server: client.BaseURL(),
		Ports:  make([]PortStatus, 0, len(states)),
		Tally: TallyOutput{
			Total:        tally.Total(),
			Connected:    tally.Connected,
			Disconnected: tally.Disconnected,
			Errors:       tally.Errors,
		},
	}

	for _, st := range states {
		output.Ports = append(output.Ports, PortStatus{
			Port:     st.ID,
			BaudRate: st.BaudRate,
			Parity:   string(st.Parity),
			Status:   string(st.Status),
		})
	}

	return WriteJSONSuccess(os.Stdout, output)
}

// outputStatusText outputs status in human-readable format using a table.
func outputStatusText(client *api.Client, states []port.State, tally port.Tally) error {
	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)

	fmt.Println(ui.RenderStatusTable(statusTableRows(states)))

	fmt.Printf("%d ports: %d connected, %d disconnected, %d error%s\n",
		tally.Total(), tally.Connected, tally.Disconnected, tally.Errors,
		pluralSuffix(tally.Errors))
	fmt.Printf("Server: %s\n", mutedStyle.Render(client.BaseURL()))

	return nil
}

// statusTableRows converts port states into table rows. The status
// column buckets anything that isn't connected or error as disconnected,
// matching the dashboard's tally.
func statusTableRows(states []port.State) []ui.StatusTableRow {
	rows := make([]ui.StatusTableRow, 0, len(states))
	for _, st := range states {
		rows = append(rows, ui.StatusTableRow{
			Status: string(st.Status.Bucket()),
			Port:   st.ID,
			Baud:   strconv.Itoa(st.BaudRate),
			Parity: string(st.Parity),
		})
	}
	return rows
}

// pluralSuffix returns "s" if n != 1.
func pluralSuffix(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
