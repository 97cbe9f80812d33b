package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahpham123/uart-testing-2/internal/doctor"
)

// stubFixCheck is a fixable check whose state flips after a successful Fix.
type stubFixCheck struct {
	name     string
	category string
	fixable  bool
	fixErr   error
	fixed    bool
	fixCalls int
}

func (c *stubFixCheck) Name() string     { return c.name }
func (c *stubFixCheck) Category() string { return c.category }

func (c *stubFixCheck) Run() doctor.CheckResult {
	status := doctor.StatusFail
	if c.fixed {
		status = doctor.StatusPass
	}
	return doctor.CheckResult{Name: c.name, Status: status, Fixable: c.fixable}
}

func (c *stubFixCheck) Fix() error {
	c.fixCalls++
	if c.fixErr != nil {
		return c.fixErr
	}
	c.fixed = true
	return nil
}

func TestCollectChecks(t *testing.T) {
	checks := collectChecks(ServerFlags{})
	require.Len(t, checks, 8)

	wantCategories := []string{
		"CONFIG", "CONFIG",
		"SERVER", "SERVER", "SERVER",
		"TERMINAL", "TERMINAL", "TERMINAL",
	}
	for i, check := range checks {
		assert.Equal(t, wantCategories[i], check.Category(), "check %d (%s)", i, check.Name())
	}
}

func TestAttemptFixes_FixesAndRefreshes(t *testing.T) {
	stub := &stubFixCheck{name: "config_file", category: "CONFIG", fixable: true}
	checks := []doctor.Check{stub}

	results := doctor.RunAll(checks)
	require.Equal(t, doctor.StatusFail, results[0].Status)

	results = attemptFixes(checks, results)

	assert.Equal(t, 1, stub.fixCalls)
	assert.Equal(t, doctor.StatusPass, results[0].Status)
}

func TestAttemptFixes_SkipsPassingChecks(t *testing.T) {
	stub := &stubFixCheck{name: "config_file", category: "CONFIG", fixable: true, fixed: true}
	checks := []doctor.Check{stub}

	results := doctor.RunAll(checks)
	results = attemptFixes(checks, results)

	assert.Equal(t, 0, stub.fixCalls)
	assert.Equal(t, doctor.StatusPass, results[0].Status)
}

func TestAttemptFixes_SkipsNonFixable(t *testing.T) {
	stub := &stubFixCheck{name: "server_reachable", category: "SERVER", fixable: false}
	checks := []doctor.Check{stub}

	results := doctor.RunAll(checks)
	results = attemptFixes(checks, results)

	assert.Equal(t, 0, stub.fixCalls)
	assert.Equal(t, doctor.StatusFail, results[0].Status)
}

func TestAttemptFixes_FailedFixKeepsResult(t *testing.T) {
	stub := &stubFixCheck{
		name:     "config_file",
		category: "CONFIG",
		fixable:  true,
		fixErr:   fmt.Errorf("disk full"),
	}
	checks := []doctor.Check{stub}

	results := doctor.RunAll(checks)
	results = attemptFixes(checks, results)

	assert.Equal(t, 1, stub.fixCalls)
	assert.Equal(t, doctor.StatusFail, results[0].Status)
}
