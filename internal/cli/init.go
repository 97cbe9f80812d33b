package cli

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/ahpham123/uart-testing-2/internal/api"
	"github.com/ahpham123/uart-testing-2/internal/config"
	"github.com/ahpham123/uart-testing-2/internal/errors"
	"github.com/ahpham123/uart-testing-2/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Server         string // Pre-specified server URL
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
}

// Init creates a new .uartdash.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		var overwrite bool

		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	// Collect the server URL
	serverURL := opts.Server
	if serverURL == "" {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				"Server URL is required in non-interactive mode",
				"Provide --server flag or run interactively")
		}

		serverURL = api.DefaultBaseURL
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Port server URL").
					Description("Where the UART port server listens").
					Placeholder(api.DefaultBaseURL).
					Value(&serverURL).
					Validate(validateServerURL),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or pass --server directly")
		}
	}

	if err := validateServerURL(serverURL); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid server URL: %s", serverURL),
			"Use a full URL like http://127.0.0.1:5000")
	}

	// Probe the server before saving
	fmt.Println()
	spinner := ui.NewSpinner("Checking the port server at " + serverURL)
	spinner.Start()

	probe := api.NewClient(api.WithBaseURL(serverURL), api.WithTimeout(5*time.Second))
	_, err := probe.Ports(context.Background())
	if err != nil {
		spinner.Fail()

		// No server answered, but still offer to save the config
		var saveAnyway bool
		if !opts.NonInteractive {
			fmt.Printf("\n%s No port server answered at '%s': %v\n\n", ui.SymbolFail, serverURL, err)

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title("Save config anyway? (You can start the server later)").
						Value(&saveAnyway),
				),
			)

			if formErr := form.Run(); formErr != nil {
				return errors.WrapWithCode(err, errors.ErrAPI,
					fmt.Sprintf("No port server at '%s'", serverURL),
					"Start the server, then run 'uartdash doctor' to verify.")
			}

			if !saveAnyway {
				return errors.WrapWithCode(err, errors.ErrAPI,
					fmt.Sprintf("No port server at '%s'", serverURL),
					"Start the server, then run 'uartdash doctor' to verify.")
			}
		} else {
			return errors.WrapWithCode(err, errors.ErrAPI,
				fmt.Sprintf("No port server at '%s'", serverURL),
				"Start the server, then run 'uartdash doctor' to verify.")
		}
	} else {
		spinner.Success()
		fmt.Println()
	}

	// Build config from the defaults plus the chosen URL
	cfg := config.DefaultConfig()
	cfg.Server.URL = serverURL

	data, err := renderInitConfig(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	// Add a header comment
	header := `# uartdash configuration
# Run 'uartdash dashboard' to open the port dashboard
# See: https://github.com/ahpham123/uart-testing-2 for documentation

`
	content := header + string(data)

	// Write config file
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Println("Next steps:")
	fmt.Println("  uartdash dashboard  - Open the port dashboard")
	fmt.Println("  uartdash status     - One-shot port snapshot")
	fmt.Println("  uartdash doctor     - Check configuration")

	return nil
}

// initFileConfig mirrors Config with human-readable durations for the
// generated YAML.
type initFileConfig struct {
	Version int `yaml:"version"`
	Server  struct {
		URL     string `yaml:"url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"server"`
	Refresh struct {
		Interval string `yaml:"interval"`
	} `yaml:"refresh"`
	Dashboard struct {
		Sort string `yaml:"sort"`
	} `yaml:"dashboard"`
	Log struct {
		Debug bool `yaml:"debug"`
	} `yaml:"log"`
}

// renderInitConfig marshals the config to YAML with durations written as
// strings like "10s" rather than nanosecond integers.
func renderInitConfig(cfg *config.Config) ([]byte, error) {
	var out initFileConfig
	out.Version = cfg.Version
	out.Server.URL = cfg.Server.URL
	out.Server.Timeout = cfg.Server.Timeout.String()
	out.Refresh.Interval = cfg.Refresh.Interval.String()
	out.Dashboard.Sort = cfg.Dashboard.Sort
	out.Log.Debug = cfg.Log.Debug
	return yaml.Marshal(out)
}

// validateServerURL checks that a server URL parses with an http scheme
// and a host.
func validateServerURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("server URL is required")
	}

	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("not a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL needs an http:// or https:// scheme")
	}
	if u.Host == "" {
		return fmt.Errorf("URL needs a host")
	}
	return nil
}

// initCommand is the implementation called by the cobra command.
func initCommand(serverFlag string, force bool) error {
	return Init(InitOptions{
		Server:    serverFlag,
		Overwrite: force,
	})
}
