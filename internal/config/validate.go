package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/ahpham123/uart-testing-2/internal/errors"
)

// MinRefreshInterval is the fastest allowed sync cadence. Anything
// quicker hammers the port server for state that changes on human
// timescales.
const MinRefreshInterval = time.Second

// Validate checks the config for errors and returns structured error
// messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but uartdash only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest uartdash release, or drop the version field to use the current schema.")
	}

	if err := validateServer(cfg.Server); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'server' section in your .uartdash.yaml.")
	}

	if err := validateRefresh(cfg.Refresh); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'refresh' section in your .uartdash.yaml.")
	}

	if err := validateDashboard(cfg.Dashboard); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'dashboard' section in your .uartdash.yaml.")
	}

	return nil
}

// validateServer checks the server section.
func validateServer(server ServerConfig) error {
	if server.URL == "" {
		return fmt.Errorf("server.url is empty - uartdash needs to know where the port server lives")
	}

	u, err := url.Parse(server.URL)
	if err != nil {
		return fmt.Errorf("server.url '%s' isn't a valid URL", server.URL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server.url '%s' needs an http or https scheme - try 'http://%s'", server.URL, server.URL)
	}
	if u.Host == "" {
		return fmt.Errorf("server.url '%s' is missing a host", server.URL)
	}

	if server.Timeout < 0 {
		return fmt.Errorf("server.timeout can't be negative - that doesn't make sense")
	}

	return nil
}

// validateRefresh checks the refresh section.
func validateRefresh(refresh RefreshConfig) error {
	if refresh.Interval < 0 {
		return fmt.Errorf("refresh.interval can't be negative - that doesn't make sense")
	}
	if refresh.Interval > 0 && refresh.Interval < MinRefreshInterval {
		return fmt.Errorf("refresh.interval %v is too aggressive - use %v or longer", refresh.Interval, MinRefreshInterval)
	}
	return nil
}

// validateDashboard checks the dashboard section.
func validateDashboard(dash DashboardConfig) error {
	switch dash.Sort {
	case "", "name", "status":
		return nil
	default:
		return fmt.Errorf("dashboard.sort '%s' isn't valid - use 'name' or 'status'", dash.Sort)
	}
}
