package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ahpham123/uart-testing-2/internal/api"
	"github.com/ahpham123/uart-testing-2/internal/errors"
	"github.com/ahpham123/uart-testing-2/internal/port"
	"github.com/ahpham123/uart-testing-2/internal/ui"
	"github.com/ahpham123/uart-testing-2/internal/util"
)

// ConfigureOutput represents the JSON output for the configure command.
type ConfigureOutput struct {
	Port    string      `json:"port"`
	Message string      `json:"message"`
	Config  *PortStatus `json:"config,omitempty"`
}

// configureCommand implements the configure command logic.
func configureCommand(flags ServerFlags, portArg string, baudFlag int, parityFlag string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	client, err := newServerClient(cfg, flags)
	if err != nil {
		return err
	}

	ctx := context.Background()

	// The snapshot supplies the port list, current values, and the
	// capability lists validation runs against.
	snap, err := client.Ports(ctx)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrAPI,
			"Couldn't reach the port server at "+client.BaseURL(),
			"Check the server is running, or run 'uartdash doctor' for a full diagnosis.")
	}

	caps := snap.Capabilities()
	if len(caps.BaudRates) == 0 || len(caps.Parities) == 0 {
		caps = port.DefaultCapabilities()
	}

	var reg port.Registry
	reg.ReplaceAll(snap.States())

	id, err := resolvePortArg(portArg, reg)
	if err != nil || id == "" {
		return err
	}

	state, ok := reg.Get(id)
	if !ok {
		suggestion := "Run 'uartdash status' to list the server's ports."
		if match := util.ClosestMatch(id, reg.IDs(), 5); match != "" {
			suggestion = fmt.Sprintf("Did you mean %s? %s", match, suggestion)
		}
		return errors.New(errors.ErrPort,
			fmt.Sprintf("Unknown port: %s", id),
			suggestion)
	}

	baud, parity, err := resolveConfigureValues(state, caps, baudFlag, parityFlag)
	if err != nil {
		return err
	}

	// Validate locally before anything goes over the wire
	parsed, err := port.ParseParity(parity)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrInput,
			fmt.Sprintf("Invalid parity: %s", parity),
			"Supported modes: "+util.JoinOrNone(caps.ParityStrings()))
	}
	if err := caps.Validate(baud, parsed); err != nil {
		return errors.WrapWithCode(err, errors.ErrInput,
			fmt.Sprintf("Invalid configuration for %s", id),
			"Run 'uartdash status' to see the supported values.")
	}

	res, err := client.Configure(ctx, api.ConfigureRequest{
		Port:     id,
		BaudRate: baud,
		Parity:   string(parsed),
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrAPI,
			fmt.Sprintf("Configure request for %s failed", id),
			"The server never answered; check it's still running.")
	}

	if !res.Success {
		return errors.New(errors.ErrAPI,
			fmt.Sprintf("Configure %s failed: %s", id, res.Message),
			"The server rejected the change. Check the port is present and try again.")
	}

	if MachineMode() {
		output := ConfigureOutput{Port: id, Message: res.Message}
		if res.Config != nil {
			output.Config = &PortStatus{
				Port:     id,
				BaudRate: res.Config.BaudRate,
				Parity:   res.Config.Parity,
				Status:   res.Config.Status,
			}
		}
		return WriteJSONSuccess(os.Stdout, output)
	}

	successStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)

	fmt.Printf("%s %s\n", successStyle.Render(ui.SymbolSuccess), res.Message)
	if res.Config != nil {
		fmt.Println(mutedStyle.Render(res.Config.State(id).Summary()))
	}

	return nil
}

// resolvePortArg returns the port to operate on: the argument when given,
// otherwise an interactive pick from the snapshot. An empty return with
// nil error means the user cancelled.
func resolvePortArg(portArg string, reg port.Registry) (string, error) {
	if portArg != "" {
		return portArg, nil
	}

	if !ui.IsTerminal(os.Stdin) {
		return "", errors.New(errors.ErrInput,
			"Port argument required",
			"Pass the port path, e.g. 'uartdash configure /dev/ttyAMA0'.")
	}

	infos := make([]ui.PortInfo, 0, reg.Len())
	for _, id := range reg.IDs() {
		st, _ := reg.Get(id)
		infos = append(infos, ui.PortInfo{
			Name:   st.ID,
			Baud:   st.BaudRate,
			Parity: string(st.Parity),
			Status: string(st.Status),
		})
	}

	if len(infos) == 0 {
		return "", errors.New(errors.ErrPort,
			"The server reports no ports",
			"Check the server's device discovery, then try again.")
	}

	selected, err := ui.PickPort(infos)
	if err != nil {
		return "", err
	}
	if selected == nil {
		fmt.Println("Cancelled.")
		return "", nil
	}
	return selected.Name, nil
}

// resolveConfigureValues settles the baud and parity to apply: flags when
// both are given, otherwise an interactive form seeded with the port's
// current values.
func resolveConfigureValues(state port.State, caps port.Capabilities, baudFlag int, parityFlag string) (int, string, error) {
	if baudFlag > 0 && parityFlag != "" {
		return baudFlag, parityFlag, nil
	}

	if !ui.IsTerminal(os.Stdin) {
		return 0, "", errors.New(errors.ErrInput,
			"Both --baud and --parity are required",
			"Pass both flags, e.g. '--baud 115200 --parity even', or run interactively.")
	}

	// Seed from the port's current configuration, flag values winning
	baud := state.BaudRate
	if baudFlag > 0 {
		baud = baudFlag
	}
	parity := string(state.Parity)
	if parityFlag != "" {
		parity = parityFlag
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Baud rate").
				Description("Serial speed for "+state.ID).
				Options(huh.NewOptions(caps.BaudRates...)...).
				Value(&baud),
			huh.NewSelect[string]().
				Title("Parity").
				Options(huh.NewOptions(caps.ParityStrings()...)...).
				Value(&parity),
		),
	)

	if err := form.Run(); err != nil {
		return 0, "", errors.WrapWithCode(err, errors.ErrInput,
			"Failed to get configuration values",
			"Check terminal compatibility, or pass --baud and --parity directly.")
	}

	return baud, parity, nil
}
