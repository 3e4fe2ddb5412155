package runner

import (
	"github.com/yaklabco/jwslint/pkg/config"
	"github.com/yaklabco/jwslint/pkg/lint"
)

// FileOutcome wraps PipelineResult with resolved path metadata.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the pipeline result for this file.
	// May be nil if the file encountered an error during processing.
	Result *lint.PipelineResult

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files that went through the pipeline.
	FilesProcessed int

	// FilesSkipped is the number of files the pipeline declined to lint.
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// DiagnosticsTotal is the total number of diagnostics across all files.
	DiagnosticsTotal int

	// DiagnosticsBySeverity maps severity levels to counts.
	DiagnosticsBySeverity map[config.Severity]int

	// DiagnosticsByRule maps rule IDs to counts.
	DiagnosticsByRule map[string]int

	// FilesWithIssues is the number of files with at least one diagnostic.
	FilesWithIssues int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Errors contains any non-file-specific errors encountered.
	Errors []error
}

// HasFailures reports whether any diagnostics with error severity occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsBySeverity[config.SeverityError] > 0
}

// HasIssues reports whether any diagnostics were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsTotal > 0
}

// HasErrors reports whether any file could not be processed.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0 || len(r.Errors) > 0
}

// Diagnostics returns every diagnostic of the run in file order.
func (r *Result) Diagnostics() []lint.Diagnostic {
	if r == nil {
		return nil
	}
	var diags []lint.Diagnostic
	for _, outcome := range r.Files {
		if outcome.Result == nil || outcome.Result.FileResult == nil {
			continue
		}
		diags = append(diags, outcome.Result.Diagnostics...)
	}
	return diags
}

func newStats() Stats {
	return Stats{
		DiagnosticsBySeverity: make(map[config.Severity]int),
		DiagnosticsByRule:     make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++

	if outcome.Result.Skipped {
		r.Stats.FilesSkipped++
		return
	}

	if outcome.Result.FileResult == nil {
		return
	}

	diagCount := outcome.Result.IssueCount()
	r.Stats.DiagnosticsTotal += diagCount
	if diagCount > 0 {
		r.Stats.FilesWithIssues++
	}

	for _, diag := range outcome.Result.Diagnostics {
		severity := diag.Severity
		if severity == "" {
			severity = config.SeverityWarning
		}
		r.Stats.DiagnosticsBySeverity[severity]++
		r.Stats.DiagnosticsByRule[diag.RuleID]++
	}
}
