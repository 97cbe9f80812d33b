package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/ahpham123/uart-testing-2/internal/errors"
	"github.com/ahpham123/uart-testing-2/internal/ui"
)

// TestOutput represents the JSON output for the test command.
type TestOutput struct {
	Port    string       `json:"port"`
	Message string       `json:"message"`
	Details *TestDetails `json:"details,omitempty"`
}

// TestDetails carries what the server measured during the test.
type TestDetails struct {
	BaudRate int    `json:"baud_rate"`
	Parity   string `json:"parity"`
	IsOpen   bool   `json:"is_open"`
}

// testCommand implements the test command logic.
func testCommand(flags ServerFlags, portID string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	client, err := newServerClient(cfg, flags)
	if err != nil {
		return err
	}

	res, err := client.Test(context.Background(), portID)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrAPI,
			fmt.Sprintf("Test request for %s failed", portID),
			"The server never answered; check it's still running.")
	}

	if !res.Success {
		return errors.New(errors.ErrAPI,
			fmt.Sprintf("Test %s failed: %s", portID, res.Message),
			"The port may be in an error state. Run 'uartdash status' to check.")
	}

	if MachineMode() {
		output := TestOutput{Port: portID, Message: res.Message}
		if res.Details != nil {
			output.Details = &TestDetails{
				BaudRate: res.Details.BaudRate,
				Parity:   res.Details.Parity,
				IsOpen:   res.Details.IsOpen,
			}
		}
		return WriteJSONSuccess(os.Stdout, output)
	}

	successStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)

	fmt.Printf("%s %s\n", successStyle.Render(ui.SymbolSuccess), res.Message)

	if res.Details != nil {
		open := "open"
		if !res.Details.IsOpen {
			open = "closed"
		}
		fmt.Println(mutedStyle.Render(fmt.Sprintf(
			"measured %d baud, parity %s, port %s",
			res.Details.BaudRate, res.Details.Parity, open)))
	}

	return nil
}
