package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ahpham123/uart-testing-2/internal/errors"
)

// Command-specific flags
var (
	dashboardFlags    ServerFlags
	dashboardInterval string
	dashboardSort     string
	statusFlags       ServerFlags
	configureFlags    ServerFlags
	configureBaud     int
	configureParity   string
	disconnectFlags   ServerFlags
	testFlags         ServerFlags
	initServerFlag    string
	initForce         bool
	doctorFlags       ServerFlags
	doctorFix         bool
)

// dashboardCmd starts the full-screen port dashboard TUI
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Full-screen port dashboard",
	Long: `Start the interactive TUI dashboard showing every port the server
manages, with live status, baud rate and parity selectors, and
disconnect/test actions.

The dashboard refreshes from the server on an interval and immediately
after every configuration change.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  r           Force refresh
  s           Toggle sort order (name/status)
  up/k        Select previous port
  down/j      Select next port
  tab         Cycle field focus
  left/right  Cycle the focused selector
  Enter       Activate the focused action
  d           Port detail view
  ?           Show help

Examples:
  uartdash dashboard
  uartdash dashboard --interval 5s
  uartdash dashboard --server http://pi.local:5000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(dashboardFlags, dashboardInterval, dashboardSort)
	},
}

// statusCmd shows a one-shot port snapshot
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show port status",
	Long: `Fetch the current port snapshot from the server and print it.

Shows every port's device path, baud rate, parity, and connection
state, plus the connected/disconnected/error tally.

Examples:
  uartdash status
  uartdash status --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statusCommand(statusFlags)
	},
}

// configureCmd changes a port's serial parameters
var configureCmd = &cobra.Command{
	Use:   "configure [port]",
	Short: "Set a port's baud rate and parity",
	Long: `Configure a serial port's baud rate and parity.

With --baud and --parity the change is applied directly. Without them
an interactive form opens, pre-filled with the port's current values
and limited to what the server supports. With no port argument a picker
lists the server's ports.

Values are validated against the server's capability lists before
anything is sent.

Examples:
  uartdash configure /dev/ttyAMA0 --baud 115200 --parity even
  uartdash configure /dev/ttyAMA0
  uartdash configure`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		portArg := ""
		if len(args) > 0 {
			portArg = args[0]
		}
		return configureCommand(configureFlags, portArg, configureBaud, configureParity)
	},
}

// disconnectCmd disconnects a port
var disconnectCmd = &cobra.Command{
	Use:   "disconnect <port>",
	Short: "Disconnect a port",
	Long: `Ask the server to disconnect a serial port.

Examples:
  uartdash disconnect /dev/ttyAMA0
  uartdash disconnect /dev/serial/by-id/usb-FTDI_FT232R-if00-port0`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return disconnectCommand(disconnectFlags, args[0])
	},
}

// testCmd tests a port without changing it
var testCmd = &cobra.Command{
	Use:   "test <port>",
	Short: "Test a port",
	Long: `Ask the server to test a serial port and report what it measured.

Testing never changes the port's configuration or state; it just
reports whether the port is open and the parameters the server saw.

Examples:
  uartdash test /dev/ttyAMA0`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return testCommand(testFlags, args[0])
	},
}

// initCmd creates a new .uartdash.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .uartdash.yaml configuration",
	Long: `Initialize a new uartdash configuration file.

Creates a .uartdash.yaml file in the current directory, asking for the
port server URL and probing it before saving.

Examples:
  uartdash init
  uartdash init --server http://pi.local:5000
  uartdash init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initServerFlag, initForce)
	},
}

// doctorCmd diagnoses config and server issues
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose config and server issues",
	Long: `Run diagnostic checks to identify common issues.

Checks:
  - Config file discovery and schema
  - Server reachability and capability lists
  - Port health summary
  - Terminal environment for the dashboard

Examples:
  uartdash doctor
  uartdash doctor --fix
  uartdash doctor --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand(doctorFlags, doctorFix)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for uartdash.

Examples:
  # Bash
  uartdash completion bash > /etc/bash_completion.d/uartdash

  # Zsh
  uartdash completion zsh > "${fpath[1]}/_uartdash"

  # Fish
  uartdash completion fish > ~/.config/fish/completions/uartdash.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrInput,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// dashboard command flags
	AddServerFlags(dashboardCmd, &dashboardFlags)
	dashboardCmd.Flags().StringVar(&dashboardInterval, "interval", "", "refresh interval (e.g., 5s, 30s, 1m)")
	dashboardCmd.Flags().StringVar(&dashboardSort, "sort", "", "initial sort order: name or status")

	// status command flags
	AddServerFlags(statusCmd, &statusFlags)

	// configure command flags
	AddServerFlags(configureCmd, &configureFlags)
	configureCmd.Flags().IntVar(&configureBaud, "baud", 0, "baud rate to apply")
	configureCmd.Flags().StringVar(&configureParity, "parity", "", "parity mode to apply (none, even, odd)")

	// disconnect and test command flags
	AddServerFlags(disconnectCmd, &disconnectFlags)
	AddServerFlags(testCmd, &testFlags)

	// init command flags
	initCmd.Flags().StringVar(&initServerFlag, "server", "", "pre-specify the port server URL")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	// doctor command flags
	AddServerFlags(doctorCmd, &doctorFlags)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "attempt automatic fixes where possible")

	// Register all commands
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(disconnectCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(completionCmd)
}
