package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .uartdash.yaml configuration file.
type Config struct {
	Version   int             `yaml:"version" mapstructure:"version"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Refresh   RefreshConfig   `yaml:"refresh" mapstructure:"refresh"`
	Dashboard DashboardConfig `yaml:"dashboard" mapstructure:"dashboard"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// ServerConfig points the client at the port server.
type ServerConfig struct {
	// URL is the base URL of the port server, e.g. http://127.0.0.1:5000.
	URL string `yaml:"url" mapstructure:"url"`

	// Timeout bounds each HTTP request.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// RefreshConfig controls the dashboard's sync loop.
type RefreshConfig struct {
	// Interval is how often the dashboard re-fetches port state.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// DashboardConfig controls dashboard presentation.
type DashboardConfig struct {
	// Sort orders the port cards: "name" or "status".
	Sort string `yaml:"sort" mapstructure:"sort"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	// Debug enables debug logging to stderr, same as UARTDASH_DEBUG=1.
	Debug bool `yaml:"debug" mapstructure:"debug"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Server: ServerConfig{
			URL:     "http://127.0.0.1:5000",
			Timeout: 10 * time.Second,
		},
		Refresh: RefreshConfig{
			Interval: 30 * time.Second,
		},
		Dashboard: DashboardConfig{
			Sort: "name",
		},
		Log: LogConfig{
			Debug: false,
		},
	}
}
