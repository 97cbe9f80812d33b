package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

// Version information, set at build time via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionShort bool

// VersionOutput is the machine-readable version report.
type VersionOutput struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display uartdash version, build, and platform information.

Examples:
  uartdash version
  uartdash version --short`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return versionCommand(versionShort)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print just the version number")
	rootCmd.AddCommand(versionCmd)
}

func versionCommand(short bool) error {
	if MachineMode() {
		return WriteJSONSuccess(os.Stdout, VersionOutput{
			Version:   formatVersion(version),
			Commit:    commit,
			BuildDate: date,
			GoVersion: runtime.Version(),
			Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		})
	}

	if short {
		fmt.Println(formatVersion(version))
		return nil
	}

	fmt.Printf("uartdash %s\n", formatVersion(version))
	fmt.Printf("  commit:  %s\n", commit)
	fmt.Printf("  built:   %s\n", date)
	fmt.Printf("  go:      %s\n", runtime.Version())
	fmt.Printf("  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return nil
}

// formatVersion normalizes a version string for display. Release
// versions get a "v" prefix; "dev" stays as-is.
func formatVersion(v string) string {
	if v == "dev" || v == "" {
		return "dev"
	}
	if strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}

// SetVersionInfo sets the version information from main.
func SetVersionInfo(v, c, d string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		date = d
	}
}

// GetVersion returns the current version string.
func GetVersion() string {
	return formatVersion(version)
}
