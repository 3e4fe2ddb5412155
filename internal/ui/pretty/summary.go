package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/jwslint/pkg/config"
	"github.com/yaklabco/jwslint/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 issues (8 errors, 4 warnings) in 3 files".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.DiagnosticsTotal == 0 {
		msg := s.Success.Render("No issues found") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesProcessed-stats.FilesSkipped,
				plural(stats.FilesProcessed-stats.FilesSkipped, wordFile, wordFiles)))
		if stats.FilesErrored > 0 {
			msg += ", " + s.Failure.Render(fmt.Sprintf("%d %s failed", stats.FilesErrored,
				plural(stats.FilesErrored, wordFile, wordFiles)))
		}
		return msg + "\n"
	}

	var severityParts []string
	if n := stats.DiagnosticsBySeverity[config.SeverityError]; n > 0 {
		severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d %s", n, plural(n, "error", "errors"))))
	}
	if n := stats.DiagnosticsBySeverity[config.SeverityWarning]; n > 0 {
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d %s", n, plural(n, "warning", "warnings"))))
	}
	if n := stats.DiagnosticsBySeverity[config.SeverityInfo]; n > 0 {
		severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", n)))
	}

	issues := fmt.Sprintf("%d %s", stats.DiagnosticsTotal, plural(stats.DiagnosticsTotal, "issue", "issues"))
	if len(severityParts) > 0 {
		issues += " (" + strings.Join(severityParts, ", ") + ")"
	}

	parts := []string{
		issues + fmt.Sprintf(" in %d %s", stats.FilesWithIssues, plural(stats.FilesWithIssues, wordFile, wordFiles)),
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s failed", stats.FilesErrored,
			plural(stats.FilesErrored, wordFile, wordFiles))))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed-stats.FilesSkipped)) + "\n")

	if stats.FilesSkipped > 0 {
		builder.WriteString("  Files skipped:     " +
			s.Dim.Render(strconv.Itoa(stats.FilesSkipped)) + "\n")
	}

	if stats.FilesWithIssues > 0 {
		builder.WriteString("  Files with issues: " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithIssues)) + "\n")
	}

	if stats.FilesErrored > 0 {
		builder.WriteString("  Files failed:      " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Total issues:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.DiagnosticsTotal)) + "\n")

	if n := stats.DiagnosticsBySeverity[config.SeverityError]; n > 0 {
		builder.WriteString("    Errors:          " + s.Error.Render(strconv.Itoa(n)) + "\n")
	}
	if n := stats.DiagnosticsBySeverity[config.SeverityWarning]; n > 0 {
		builder.WriteString("    Warnings:        " + s.Warning.Render(strconv.Itoa(n)) + "\n")
	}
	if n := stats.DiagnosticsBySeverity[config.SeverityInfo]; n > 0 {
		builder.WriteString("    Info:            " + s.Info.Render(strconv.Itoa(n)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case stats.DiagnosticsBySeverity[config.SeverityError] > 0 || stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Lint failed"))
	case stats.DiagnosticsTotal > 0:
		builder.WriteString(s.Warning.Render("Lint completed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Lint passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
