package doctor

import (
	"os"
	"strings"
	"testing"
)

// tempFile returns an open regular file, which never looks like a
// terminal.
func tempFile(t *testing.T) *os.File {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "doctor")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestTTYCheck(t *testing.T) {
	t.Run("not a terminal", func(t *testing.T) {
		check := &TTYCheck{Out: tempFile(t)}
		result := check.Run()

		if result.Status != StatusWarn {
			t.Fatalf("expected StatusWarn, got %v: %s", result.Status, result.Message)
		}
		if !strings.Contains(result.Suggestion, "uartdash status") {
			t.Errorf("expected status fallback suggestion, got %q", result.Suggestion)
		}
	})

	t.Run("name and category", func(t *testing.T) {
		check := &TTYCheck{}
		if check.Name() != "tty" {
			t.Errorf("expected name 'tty', got %s", check.Name())
		}
		if check.Category() != "TERMINAL" {
			t.Errorf("expected category 'TERMINAL', got %s", check.Category())
		}
	})
}

func TestTermEnvCheck(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		expected CheckStatus
	}{
		{"unset", "", StatusWarn},
		{"dumb", "dumb", StatusWarn},
		{"xterm", "xterm-256color", StatusPass},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TERM", tc.term)

			check := &TermEnvCheck{}
			result := check.Run()

			if result.Status != tc.expected {
				t.Errorf("TERM=%q: expected %v, got %v: %s", tc.term, tc.expected, result.Status, result.Message)
			}
		})
	}
}

func TestTerminalSizeCheck(t *testing.T) {
	t.Run("not a terminal", func(t *testing.T) {
		check := &TerminalSizeCheck{Out: tempFile(t)}
		result := check.Run()

		if result.Status != StatusWarn {
			t.Fatalf("expected StatusWarn, got %v: %s", result.Status, result.Message)
		}
		if !strings.Contains(result.Message, "Cannot determine") {
			t.Errorf("expected size failure message, got %q", result.Message)
		}
	})

	t.Run("name and category", func(t *testing.T) {
		check := &TerminalSizeCheck{}
		if check.Name() != "terminal_size" {
			t.Errorf("expected name 'terminal_size', got %s", check.Name())
		}
		if check.Category() != "TERMINAL" {
			t.Errorf("expected category 'TERMINAL', got %s", check.Category())
		}
	})
}

func TestNewTerminalChecks(t *testing.T) {
	checks := NewTerminalChecks()

	if len(checks) != 3 {
		t.Errorf("expected 3 terminal checks, got %d", len(checks))
	}

	for _, check := range checks {
		if check.Category() != "TERMINAL" {
			t.Errorf("expected TERMINAL category, got %s", check.Category())
		}
	}
}
