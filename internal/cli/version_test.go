package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "dev stays bare", in: "dev", want: "dev"},
		{name: "empty falls back to dev", in: "", want: "dev"},
		{name: "bare version gets prefix", in: "1.2.3", want: "v1.2.3"},
		{name: "prefixed version untouched", in: "v2.0.0", want: "v2.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatVersion(tt.in))
		})
	}
}

func TestSetVersionInfo(t *testing.T) {
	oldVersion, oldCommit, oldDate := version, commit, date
	defer func() {
		version, commit, date = oldVersion, oldCommit, oldDate
	}()

	SetVersionInfo("9.9.9", "abc1234", "2026-01-01")

	assert.Equal(t, "v9.9.9", GetVersion())
	assert.Equal(t, "abc1234", commit)
	assert.Equal(t, "2026-01-01", date)
}

func TestSetVersionInfo_EmptyValuesKeepDefaults(t *testing.T) {
	oldVersion, oldCommit, oldDate := version, commit, date
	defer func() {
		version, commit, date = oldVersion, oldCommit, oldDate
	}()

	SetVersionInfo("", "", "")

	assert.Equal(t, oldVersion, version)
	assert.Equal(t, oldCommit, commit)
	assert.Equal(t, oldDate, date)
}

func TestVersionCommandRegistered(t *testing.T) {
	cmd := findCommand(t, "version")
	require.NotNil(t, cmd.Flags().Lookup("short"))
}
