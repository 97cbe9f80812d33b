package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ahpham123/uart-testing-2/internal/errors"
)

// Global flags available to all subcommands
var (
	cfgFile   string
	debugFlag bool
)

// rootCmd is the base command for uartdash.
var rootCmd = &cobra.Command{
	Use:   "uartdash",
	Short: "Terminal dashboard for a UART port server",
	Long: `uartdash is a terminal client for a UART port-management server.

It polls the server's port snapshot and lets you watch and reconfigure
serial ports: baud rate, parity, connect state. The dashboard command
runs a full-screen TUI; the other commands are one-shot equivalents
suitable for scripts.

Examples:
  uartdash dashboard
  uartdash status
  uartdash configure /dev/ttyAMA0 --baud 115200 --parity even
  uartdash doctor`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugFlag {
			// The loggers are gated on this variable
			os.Setenv("UARTDASH_DEBUG", "1")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: search for .uartdash.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&machineMode, "json", false, "machine-readable JSON output")
}

// Config returns the explicit --config flag value, or empty when unset.
func Config() string {
	return cfgFile
}

// Execute runs the root command and exits with an appropriate code on
// error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// A bare exit code means the command already reported its
		// failure (doctor prints its own summary)
		if code, ok := errors.GetExitCode(err); ok {
			os.Exit(code)
		}

		if machineMode {
			_ = WriteJSONFromError(os.Stdout, err)
		} else {
			// Structured errors render their own symbol and suggestion
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
