// Package lint provides the rule engine, diagnostics, and registry for jwslint.
package lint

import (
	"github.com/yaklabco/jwslint/pkg/config"
	"github.com/yaklabco/jwslint/pkg/syntax"
)

// Diagnostic represents a single lint issue found in a file.
type Diagnostic struct {
	// RuleID is the identifier of the rule that produced this diagnostic.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "no-whitespace-after").
	RuleName string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the diagnostic.
	Severity config.Severity

	// FilePath is the path to the file containing the issue.
	FilePath string

	// StartLine is the 1-based line number where the issue starts.
	StartLine int

	// StartColumn is the 1-based column number where the issue starts.
	StartColumn int

	// EndLine is the 1-based line number where the issue ends.
	EndLine int

	// EndColumn is the 1-based column number where the issue ends (exclusive).
	EndColumn int
}

// Range returns the diagnostic position as a syntax.Range.
func (d *Diagnostic) Range() syntax.Range {
	return syntax.Range{
		Start: syntax.Position{Line: d.StartLine, Column: d.StartColumn},
		End:   syntax.Position{Line: d.EndLine, Column: d.EndColumn},
	}
}

// Rule defines the interface that all lint rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "JW001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a one-line description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule (e.g., ["whitespace"]).
	Tags() []string

	// Apply executes the rule against the given context and returns diagnostics.
	//
	// Rules must:
	//   - Return diagnostics for each violation found.
	//   - Respect context cancellation.
	//   - Return error only for internal failures, not violations.
	//   - Wrap ErrContractViolation when the tree breaks an assumption the
	//     rule depends on; the engine aborts the file in that case.
	Apply(ctx *RuleContext) ([]Diagnostic, error)
}

// Configurable is implemented by rules that accept options.
type Configurable interface {
	// Options documents every option the rule reads, with its default.
	Options() []config.OptionInfo
}

// Documented is implemented by rules that carry long-form documentation.
type Documented interface {
	// Docs returns Markdown documentation for the rule.
	Docs() string
}

// RuleInfo builds template metadata for rule.
func RuleInfo(rule Rule) config.RuleInfo {
	info := config.RuleInfo{
		ID:          rule.ID(),
		Name:        rule.Name(),
		Description: rule.Description(),
		Enabled:     rule.DefaultEnabled(),
		Severity:    rule.DefaultSeverity(),
		Tags:        rule.Tags(),
	}
	if c, ok := rule.(Configurable); ok {
		info.Options = c.Options()
	}
	return info
}
