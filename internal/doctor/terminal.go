package doctor

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/ahpham123/uart-testing-2/internal/dashboard"
	"github.com/ahpham123/uart-testing-2/internal/ui"
)

// TTYCheck verifies stdout is an interactive terminal.
type TTYCheck struct {
	// Out overrides os.Stdout, mainly for tests.
	Out *os.File
}

func (c *TTYCheck) Name() string     { return "tty" }
func (c *TTYCheck) Category() string { return "TERMINAL" }

func (c *TTYCheck) out() *os.File {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

func (c *TTYCheck) Run() CheckResult {
	if !ui.IsTerminal(c.out()) {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "stdout is not a terminal",
			Suggestion: "The dashboard needs an interactive terminal. 'uartdash status --json' works in pipes and scripts.",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "stdout is a terminal",
	}
}

func (c *TTYCheck) Fix() error {
	return nil
}

// TermEnvCheck verifies $TERM advertises a usable terminal type.
type TermEnvCheck struct{}

func (c *TermEnvCheck) Name() string     { return "term_env" }
func (c *TermEnvCheck) Category() string { return "TERMINAL" }

func (c *TermEnvCheck) Run() CheckResult {
	termEnv := os.Getenv("TERM")

	switch termEnv {
	case "":
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "TERM is not set",
			Suggestion: "Set TERM (e.g. export TERM=xterm-256color) so colors and alternate screen mode work.",
		}
	case "dumb":
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "TERM=dumb",
			Suggestion: "Dumb terminals cannot render the dashboard. Use 'uartdash status' instead.",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("TERM=%s", termEnv),
	}
}

func (c *TermEnvCheck) Fix() error {
	return nil
}

// TerminalSizeCheck warns when the terminal is too narrow for the card grid.
type TerminalSizeCheck struct {
	Out *os.File
}

func (c *TerminalSizeCheck) Name() string     { return "terminal_size" }
func (c *TerminalSizeCheck) Category() string { return "TERMINAL" }

func (c *TerminalSizeCheck) out() *os.File {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

func (c *TerminalSizeCheck) Run() CheckResult {
	width, height, err := term.GetSize(int(c.out().Fd()))
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusWarn,
			Message: "Cannot determine terminal size",
		}
	}

	if width < dashboard.BreakpointCompact {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Terminal is %dx%d", width, height),
			Suggestion: fmt.Sprintf("Below %d columns the port cards stack in a single column. Widen the terminal for the grid layout.", dashboard.BreakpointCompact),
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Terminal is %dx%d", width, height),
	}
}

func (c *TerminalSizeCheck) Fix() error {
	return nil
}

// NewTerminalChecks creates all terminal environment checks.
func NewTerminalChecks() []Check {
	return []Check{
		&TTYCheck{},
		&TermEnvCheck{},
		&TerminalSizeCheck{},
	}
}
