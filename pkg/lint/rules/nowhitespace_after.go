package rules

import (
	"github.com/yaklabco/jwslint/pkg/config"
	"github.com/yaklabco/jwslint/pkg/lint"
)

// NoWhitespaceAfterRule checks that selected tokens are not followed by
// whitespace, e.g. "~ a", "a. b" or "@ Deprecated".
type NoWhitespaceAfterRule struct {
	lint.BaseRule

	constructs []construct
}

// NewNoWhitespaceAfterRule creates the no-whitespace-after rule.
func NewNoWhitespaceAfterRule() *NoWhitespaceAfterRule {
	return &NoWhitespaceAfterRule{
		BaseRule: lint.NewBaseRule(
			"JW001",
			"no-whitespace-after",
			"Tokens should not be followed by whitespace",
			[]string{"whitespace"},
		),
		constructs: afterConstructs,
	}
}

// Apply reports every enabled construct whose token is followed by whitespace.
func (r *NoWhitespaceAfterRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.File == nil || ctx.Root == nil {
		return nil, nil
	}

	p := newPass(ctx, r, r.constructs)
	if err := p.checkConstructs(msgFollowed, true); err != nil {
		return nil, err
	}

	return p.result(), nil
}

// Options documents the rule's options.
func (r *NoWhitespaceAfterRule) Options() []config.OptionInfo {
	return optionInfos(r.constructs)
}

// Docs returns the rule's Markdown documentation.
func (r *NoWhitespaceAfterRule) Docs() string {
	return ruleDocs(r, noWhitespaceAfterDocs)
}
