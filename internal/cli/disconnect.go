package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/ahpham123/uart-testing-2/internal/errors"
	"github.com/ahpham123/uart-testing-2/internal/ui"
)

// DisconnectOutput represents the JSON output for the disconnect command.
type DisconnectOutput struct {
	Port    string `json:"port"`
	Message string `json:"message"`
}

// disconnectCommand implements the disconnect command logic.
func disconnectCommand(flags ServerFlags, portID string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	client, err := newServerClient(cfg, flags)
	if err != nil {
		return err
	}

	res, err := client.Disconnect(context.Background(), portID)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrAPI,
			fmt.Sprintf("Disconnect request for %s failed", portID),
			"The server never answered; check it's still running.")
	}

	if !res.Success {
		return errors.New(errors.ErrAPI,
			fmt.Sprintf("Disconnect %s failed: %s", portID, res.Message),
			"Run 'uartdash status' to check the port's current state.")
	}

	if MachineMode() {
		return WriteJSONSuccess(os.Stdout, DisconnectOutput{
			Port:    portID,
			Message: res.Message,
		})
	}

	successStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	fmt.Printf("%s %s\n", successStyle.Render(ui.SymbolSuccess), res.Message)

	return nil
}
