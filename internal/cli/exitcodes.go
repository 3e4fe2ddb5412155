package cli

import (
	"errors"

	"github.com/yaklabco/jwslint/pkg/config"
	"github.com/yaklabco/jwslint/pkg/runner"
)

// Exit codes for jwslint.
const (
	// ExitSuccess indicates the run found nothing to report.
	ExitSuccess = 0

	// ExitLintIssues indicates lint completed but found failing issues or
	// files that could not be linted.
	ExitLintIssues = 1

	// ExitUsageError indicates invalid command-line usage or configuration.
	ExitUsageError = 2

	// ExitInternalError indicates an unexpected failure.
	ExitInternalError = 3
)

var (
	// ErrLintIssuesFound is returned when lint issues are found.
	ErrLintIssuesFound = errors.New("lint issues found")

	// ErrUsage marks errors caused by bad flags, arguments or configuration.
	ErrUsage = errors.New("usage error")
)

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrLintIssuesFound):
		return ExitLintIssues
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	default:
		return ExitInternalError
	}
}

// ResultFails reports whether result should fail the run. Errors and files
// that could not be linted always fail; warnings fail only in strict mode.
func ResultFails(result *runner.Result, strict bool) bool {
	if result.HasErrors() || result.HasFailures() {
		return true
	}

	return result != nil && strict && result.Stats.DiagnosticsBySeverity[config.SeverityWarning] > 0
}
