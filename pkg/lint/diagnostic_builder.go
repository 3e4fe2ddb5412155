package lint

import (
	"github.com/yaklabco/jwslint/pkg/config"
	"github.com/yaklabco/jwslint/pkg/syntax"
)

// DiagnosticBuilder helps construct Diagnostic values.
type DiagnosticBuilder struct {
	diag Diagnostic
}

// NewDiagnostic starts building a diagnostic for the given rule, anchored on
// a node or token of file.
func NewDiagnostic(ruleID string, file *syntax.File, anchor syntax.Spanner, message string) *DiagnosticBuilder {
	var filePath string
	if file != nil {
		filePath = file.Path
	}

	var span syntax.Range
	if anchor != nil {
		span = anchor.Span()
	}

	return NewDiagnosticAt(ruleID, filePath, span, message)
}

// NewDiagnosticAt starts building a diagnostic at a specific range.
func NewDiagnosticAt(ruleID string, filePath string, span syntax.Range, message string) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		diag: Diagnostic{
			RuleID:      ruleID,
			Message:     message,
			FilePath:    filePath,
			StartLine:   span.Start.Line,
			StartColumn: span.Start.Column,
			EndLine:     span.End.Line,
			EndColumn:   span.End.Column,
		},
	}
}

// WithRuleName sets the human-readable rule name.
func (b *DiagnosticBuilder) WithRuleName(name string) *DiagnosticBuilder {
	b.diag.RuleName = name
	return b
}

// WithSeverity sets the severity.
func (b *DiagnosticBuilder) WithSeverity(s config.Severity) *DiagnosticBuilder {
	b.diag.Severity = s
	return b
}

// Build returns the constructed Diagnostic.
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.diag
}
