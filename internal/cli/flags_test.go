package cli

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahpham123/uart-testing-2/internal/api"
	"github.com/ahpham123/uart-testing-2/internal/config"
	"github.com/ahpham123/uart-testing-2/internal/dashboard"
)

func TestParseTimeout(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		want    time.Duration
		wantErr bool
	}{
		{name: "empty means unset", flag: "", want: 0},
		{name: "seconds", flag: "5s", want: 5 * time.Second},
		{name: "milliseconds", flag: "750ms", want: 750 * time.Millisecond},
		{name: "minutes", flag: "2m", want: 2 * time.Minute},
		{name: "garbage", flag: "banana", wantErr: true},
		{name: "bare number", flag: "30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeout(tt.flag)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "timeout")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInterval(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		want    time.Duration
		wantErr string
	}{
		{name: "empty means default", flag: "", want: dashboard.DefaultInterval},
		{name: "seconds", flag: "5s", want: 5 * time.Second},
		{name: "one minute", flag: "1m", want: time.Minute},
		{name: "exactly one second", flag: "1s", want: time.Second},
		{name: "sub-second rejected", flag: "500ms", wantErr: "too aggressive"},
		{name: "garbage", flag: "often", wantErr: "valid interval"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInterval(tt.flag)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddServerFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "probe"}
	var flags ServerFlags

	AddServerFlags(cmd, &flags)

	assert.NotNil(t, cmd.Flags().Lookup("server"))
	assert.NotNil(t, cmd.Flags().Lookup("timeout"))
}

func TestNewServerClient_URLPrecedence(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.URL = "http://from-config:5000"

	t.Run("flag wins over config", func(t *testing.T) {
		t.Setenv("UARTDASH_SERVER", "")

		client, err := newServerClient(cfg, ServerFlags{Server: "http://from-flag:5000"})
		require.NoError(t, err)
		assert.Equal(t, "http://from-flag:5000", client.BaseURL())
	})

	t.Run("env wins over config", func(t *testing.T) {
		t.Setenv("UARTDASH_SERVER", "http://from-env:5000")

		client, err := newServerClient(cfg, ServerFlags{})
		require.NoError(t, err)
		assert.Equal(t, "http://from-env:5000", client.BaseURL())
	})

	t.Run("config when no flag or env", func(t *testing.T) {
		t.Setenv("UARTDASH_SERVER", "")

		client, err := newServerClient(cfg, ServerFlags{})
		require.NoError(t, err)
		assert.Equal(t, "http://from-config:5000", client.BaseURL())
	})

	t.Run("default when nothing set", func(t *testing.T) {
		t.Setenv("UARTDASH_SERVER", "")

		client, err := newServerClient(nil, ServerFlags{})
		require.NoError(t, err)
		assert.Equal(t, api.DefaultBaseURL, client.BaseURL())
	})
}

func TestNewServerClient_BadTimeout(t *testing.T) {
	_, err := newServerClient(nil, ServerFlags{Timeout: "soon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}
