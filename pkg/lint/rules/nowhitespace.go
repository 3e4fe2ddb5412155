package rules

import (
	"fmt"

	"github.com/yaklabco/jwslint/pkg/lint"
	"github.com/yaklabco/jwslint/pkg/srctext"
	"github.com/yaklabco/jwslint/pkg/syntax"
)

// Diagnostic message formats.
const (
	msgFollowed = "'%s' is followed by whitespace."
	msgPreceded = "'%s' is preceded by whitespace."
)

// pass is the state of one rule invocation over one file.
type pass struct {
	ctx    *lint.RuleContext
	rule   lint.Rule
	text   *srctext.Text
	policy *Policy
	diags  []lint.Diagnostic
}

func newPass(ctx *lint.RuleContext, rule lint.Rule, table []construct) *pass {
	return &pass{
		ctx:    ctx,
		rule:   rule,
		text:   srctext.New(ctx.File.Lines, ctx.File.Separator),
		policy: newPolicy(table, ctx),
	}
}

// hasWhitespace reports whether tok has offending whitespace on side.
// A line break counts only when line breaks are not allowed; forceBreak
// treats the token as line-broken regardless of the text.
func (p *pass) hasWhitespace(tok *syntax.Token, side srctext.Direction, forceBreak bool) (bool, error) {
	pos := tok.Range.End
	if side == srctext.Left {
		pos = tok.Range.Start
	}

	offset, err := tokenOffset(p.text, tok, pos)
	if err != nil {
		return false, err
	}

	if forceBreak || p.text.HasPattern(offset, side, srctext.LineBreak) {
		return !p.policy.AllowLineBreaks, nil
	}
	return p.text.HasPattern(offset, side, srctext.Whitespace), nil
}

func (p *pass) report(anchor syntax.Spanner, format, label string) {
	diag := lint.NewDiagnostic(p.rule.ID(), p.ctx.File, anchor, fmt.Sprintf(format, label)).
		WithRuleName(p.rule.Name()).
		WithSeverity(p.rule.DefaultSeverity()).
		Build()
	p.diags = append(p.diags, diag)
}

func (p *pass) cancelled() error {
	if p.ctx.Cancelled() {
		return fmt.Errorf("rule cancelled: %w", p.ctx.Ctx.Err())
	}
	return nil
}

// checkConstructs runs the tree constructs of the policy. anchorOnNode
// selects the construct node rather than the token as the report anchor.
func (p *pass) checkConstructs(format string, anchorOnNode bool) error {
	return syntax.WalkKinds(p.ctx.Root, p.policy.Kinds(), func(n *syntax.Node) error {
		if err := p.cancelled(); err != nil {
			return err
		}

		tok, err := tokenUnderTest(n, p.text)
		if err != nil {
			return err
		}
		if tok == nil {
			return nil
		}

		entry, _ := p.policy.Kind(n.Kind)
		found, err := p.hasWhitespace(tok, entry.Side, entry.Side == srctext.Right && castSpansLines(n))
		if err != nil {
			return err
		}
		if !found || !entry.Enabled {
			return nil
		}

		if anchorOnNode {
			p.report(n, format, entry.Label)
		} else {
			p.report(tok, format, entry.Label)
		}
		return nil
	})
}

// checkLiterals runs the literal-token constructs over every raw token.
func (p *pass) checkLiterals(format string) error {
	for _, tok := range p.ctx.File.Tokens {
		if err := p.cancelled(); err != nil {
			return err
		}

		if !literalUnderTest(tok) {
			continue
		}
		entry, ok := p.policy.Literal(tok.Text)
		if !ok {
			continue
		}

		found, err := p.hasWhitespace(tok, entry.Side, false)
		if err != nil {
			return err
		}
		if !found || !entry.Enabled {
			continue
		}

		p.report(literalAnchor(tok), format, tok.Text)
	}
	return nil
}

// containerTypes are grammar nodes that hold declarations or statements.
// A token sitting directly in one, such as a stray ';' in a class body,
// is its own statement.
//
//nolint:gochecknoglobals // Read-only lookup table.
var containerTypes = map[string]bool{
	"program":                true,
	"block":                  true,
	"class_body":             true,
	"interface_body":         true,
	"enum_body":              true,
	"enum_body_declarations": true,
	"annotation_type_body":   true,
	"constructor_body":       true,
	"switch_block":           true,
}

// literalAnchor reports a raw token on its enclosing construct, or on the
// token itself when it belongs to no construct smaller than a container.
func literalAnchor(tok *syntax.Token) syntax.Spanner {
	parent := tok.Parent
	if parent == nil || parent.Kind == syntax.KindFile || containerTypes[parent.Type] {
		return tok
	}
	return parent
}

func (p *pass) result() []lint.Diagnostic {
	lint.SortDiagnostics(p.diags)
	return p.diags
}

// castSpansLines reports whether a cast's parentheses sit on different lines.
func castSpansLines(n *syntax.Node) bool {
	if n.Kind != syntax.KindTypeCast {
		return false
	}
	open := n.Token(syntax.RoleOpenParen)
	closing := n.Token(syntax.RoleCloseParen)
	if open == nil || closing == nil {
		return false
	}
	return open.Range.Start.Line != closing.Range.Start.Line
}
