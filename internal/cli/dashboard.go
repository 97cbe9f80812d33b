package cli

import (
	"github.com/ahpham123/uart-testing-2/internal/controller"
	"github.com/ahpham123/uart-testing-2/internal/dashboard"
	"github.com/ahpham123/uart-testing-2/internal/logger"
)

// dashboardCommand starts the TUI dashboard.
func dashboardCommand(flags ServerFlags, intervalFlag, sortFlag string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	// Flag beats config for the refresh interval
	interval := cfg.Refresh.Interval
	if intervalFlag != "" {
		interval, err = ParseInterval(intervalFlag)
		if err != nil {
			return err
		}
	}
	if interval <= 0 {
		interval = dashboard.DefaultInterval
	}

	// Same for the initial sort order; unknown values fall back to name
	sortName := cfg.Dashboard.Sort
	if sortFlag != "" {
		sortName = sortFlag
	}
	sortOrder := dashboard.ParseSort(sortName)

	client, err := newServerClient(cfg, flags)
	if err != nil {
		return err
	}

	ctrl := controller.New(client, logger.NewEnvLogger("[dashboard]"))

	return dashboard.Run(ctrl, interval, sortOrder)
}
