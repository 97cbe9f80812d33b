package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ahpham123/uart-testing-2/internal/api"
	"github.com/ahpham123/uart-testing-2/internal/config"
	"github.com/ahpham123/uart-testing-2/internal/dashboard"
	"github.com/ahpham123/uart-testing-2/internal/errors"
)

// ServerFlags holds the standard flags used by commands that talk to the
// port server.
type ServerFlags struct {
	Server  string
	Timeout string
}

// AddServerFlags registers --server and --timeout flags on a command.
func AddServerFlags(cmd *cobra.Command, flags *ServerFlags) {
	cmd.Flags().StringVar(&flags.Server, "server", "", "port server URL (overrides config)")
	cmd.Flags().StringVar(&flags.Timeout, "timeout", "", "request timeout (e.g., 5s, 30s)")
}

// ParseTimeout parses a timeout flag into a duration.
// Returns zero duration if the flag is empty.
func ParseTimeout(flag string) (time.Duration, error) {
	if flag == "" {
		return 0, nil
	}

	duration, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid timeout", flag),
			"Try something like 5s, 30s, or 500ms.")
	}
	return duration, nil
}

// ParseInterval parses the dashboard refresh interval flag.
// Returns the default interval if the flag is empty.
func ParseInterval(flag string) (time.Duration, error) {
	if flag == "" {
		return dashboard.DefaultInterval, nil
	}

	duration, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid interval", flag),
			"Try something like 5s, 30s, or 1m.")
	}
	if duration < time.Second {
		return 0, errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh interval %s is too aggressive", duration),
			"Use at least 1s so the server isn't hammered.")
	}
	return duration, nil
}

// newServerClient builds the api client for a command run.
//
// URL precedence: --server flag, then UARTDASH_SERVER (picked up inside
// the client), then the config file. Timeout: --timeout flag, then the
// config file, then the client default.
func newServerClient(cfg *config.Config, flags ServerFlags) (*api.Client, error) {
	var opts []api.Option

	switch {
	case flags.Server != "":
		opts = append(opts, api.WithBaseURL(flags.Server))
	case os.Getenv("UARTDASH_SERVER") != "":
		// Leave the base URL to the client's env handling
	case cfg != nil && cfg.Server.URL != "":
		opts = append(opts, api.WithBaseURL(cfg.Server.URL))
	}

	timeout := api.DefaultTimeout
	if cfg != nil && cfg.Server.Timeout > 0 {
		timeout = cfg.Server.Timeout
	}
	if flags.Timeout != "" {
		parsed, err := ParseTimeout(flags.Timeout)
		if err != nil {
			return nil, err
		}
		if parsed > 0 {
			timeout = parsed
		}
	}
	opts = append(opts, api.WithTimeout(timeout))

	return api.NewClient(opts...), nil
}

// resolveConfig loads and validates the config for a command run.
// A missing config file is not an error; defaults apply.
func resolveConfig() (*config.Config, error) {
	cfg, path, err := config.Resolve(Config())
	if err != nil {
		return nil, err
	}

	if path != "" {
		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
