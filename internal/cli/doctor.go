package cli

import (
	"fmt"
	"os"

	"github.com/ahpham123/uart-testing-2/internal/config"
	"github.com/ahpham123/uart-testing-2/internal/doctor"
	"github.com/ahpham123/uart-testing-2/internal/errors"
	"github.com/ahpham123/uart-testing-2/internal/ui"
)

// DoctorCheckOutput is one check in the machine-readable doctor report.
type DoctorCheckOutput struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	Fixable    bool   `json:"fixable,omitempty"`
}

// DoctorSummary aggregates check counts for machine output.
type DoctorSummary struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	Fixable  int  `json:"fixable"`
	AllClear bool `json:"all_clear"`
}

// DoctorOutput is the machine-readable doctor report.
type DoctorOutput struct {
	Checks  []DoctorCheckOutput `json:"checks"`
	Summary DoctorSummary       `json:"summary"`
}

// doctorCommand runs the diagnostic suite and reports the results.
func doctorCommand(flags ServerFlags, fix bool) error {
	checks := collectChecks(flags)

	if !MachineMode() {
		fmt.Println("Running diagnostics...")
		fmt.Println()
	}

	results := doctor.RunAllParallel(checks)

	if fix {
		results = attemptFixes(checks, results)
	}

	if MachineMode() {
		return outputDoctorJSON(checks, results)
	}
	return outputDoctorText(checks, results, fix)
}

// collectChecks assembles the diagnostic suite: config discovery and
// schema, port server reachability, and the local terminal.
func collectChecks(flags ServerFlags) []doctor.Check {
	checks := doctor.NewConfigChecks(Config())

	// A broken config still gets a server probe; the schema check
	// reports the config problem on its own.
	cfg, _, err := config.Resolve(Config())
	if err != nil {
		cfg = config.DefaultConfig()
	}

	client, err := newServerClient(cfg, flags)
	if err != nil {
		client = nil
	}
	checks = append(checks, doctor.NewServerChecks(client)...)
	checks = append(checks, doctor.NewTerminalChecks()...)

	return checks
}

// attemptFixes re-runs Fix on every fixable failed or warned check and
// refreshes its result.
func attemptFixes(checks []doctor.Check, results []doctor.CheckResult) []doctor.CheckResult {
	for i, result := range results {
		if !result.Fixable {
			continue
		}
		if result.Status != doctor.StatusFail && result.Status != doctor.StatusWarn {
			continue
		}

		if !MachineMode() {
			fmt.Printf("Attempting to fix: %s\n", result.Name)
		}

		if err := checks[i].Fix(); err != nil {
			if !MachineMode() {
				fmt.Printf("%s Fix failed: %v\n", ui.SymbolFail, err)
			}
			continue
		}

		results[i] = checks[i].Run()
	}
	return results
}

func outputDoctorJSON(checks []doctor.Check, results []doctor.CheckResult) error {
	out := DoctorOutput{
		Checks: make([]DoctorCheckOutput, 0, len(results)),
	}

	for i, result := range results {
		out.Checks = append(out.Checks, DoctorCheckOutput{
			Name:       result.Name,
			Category:   checks[i].Category(),
			Status:     result.Status.String(),
			Message:    result.Message,
			Suggestion: result.Suggestion,
			Fixable:    result.Fixable,
		})
	}

	counts := doctor.CountByStatus(results)
	out.Summary = DoctorSummary{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		Fixable:  doctor.FixableCount(results),
		AllClear: !doctor.HasIssues(results),
	}

	if err := WriteJSONSuccess(os.Stdout, out); err != nil {
		return err
	}

	if doctor.HasFailures(results) {
		return errors.NewExitError(1)
	}
	return nil
}

func outputDoctorText(checks []doctor.Check, results []doctor.CheckResult, fixAttempted bool) error {
	rows := make([]ui.DoctorCheckRow, 0, len(results))
	for i, result := range results {
		rows = append(rows, ui.DoctorCheckRow{
			Status:     result.Status.String(),
			Category:   checks[i].Category(),
			Message:    result.Message,
			Suggestion: result.Suggestion,
		})
	}

	fmt.Println(ui.RenderDoctorTable(rows))

	if !doctor.HasIssues(results) {
		fmt.Printf("%s %s\n", ui.SymbolSuccess, doctor.Summary(results))
		return nil
	}

	fmt.Printf("%s %s\n", ui.SymbolWarning, doctor.Summary(results))

	if fixable := doctor.FixableCount(results); fixable > 0 && !fixAttempted {
		fmt.Printf("\nRun 'uartdash doctor --fix' to attempt automatic fixes (%d fixable)\n", fixable)
	}

	if doctor.HasFailures(results) {
		return errors.NewExitError(1)
	}
	return nil
}
