package dashboard

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ahpham123/uart-testing-2/internal/controller"
	"github.com/ahpham123/uart-testing-2/internal/errors"
)

// Run starts the full-screen dashboard and blocks until the user quits.
func Run(ctrl *controller.Controller, interval time.Duration, sortOrder SortOrder) error {
	model := NewModel(ctrl, interval, sortOrder)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrInput,
			"Dashboard exited unexpectedly",
			"Run 'uartdash status' for a one-shot view, or check the terminal supports alternate screen mode.")
	}
	return nil
}
