package rules

import (
	"github.com/yaklabco/jwslint/pkg/config"
	"github.com/yaklabco/jwslint/pkg/lint"
)

// NoWhitespaceBeforeRule checks that selected tokens are not preceded by
// whitespace, e.g. "int x ;", "i ++" or "String ::valueOf".
type NoWhitespaceBeforeRule struct {
	lint.BaseRule

	constructs []construct
}

// NewNoWhitespaceBeforeRule creates the no-whitespace-before rule.
func NewNoWhitespaceBeforeRule() *NoWhitespaceBeforeRule {
	return &NoWhitespaceBeforeRule{
		BaseRule: lint.NewBaseRule(
			"JW002",
			"no-whitespace-before",
			"Tokens should not be preceded by whitespace",
			[]string{"whitespace"},
		),
		constructs: beforeConstructs,
	}
}

// Apply reports raw punctuation tokens and constructs preceded by whitespace.
//
// Raw tokens are reported on their enclosing node, constructs on the
// token itself.
func (r *NoWhitespaceBeforeRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.File == nil || ctx.Root == nil {
		return nil, nil
	}

	p := newPass(ctx, r, r.constructs)
	if p.policy.HasLiterals() {
		if err := p.checkLiterals(msgPreceded); err != nil {
			return nil, err
		}
	}
	if err := p.checkConstructs(msgPreceded, false); err != nil {
		return nil, err
	}

	return p.result(), nil
}

// Options documents the rule's options.
func (r *NoWhitespaceBeforeRule) Options() []config.OptionInfo {
	return optionInfos(r.constructs)
}

// Docs returns the rule's Markdown documentation.
func (r *NoWhitespaceBeforeRule) Docs() string {
	return ruleDocs(r, noWhitespaceBeforeDocs)
}
