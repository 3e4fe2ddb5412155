package rules

import (
	"fmt"

	"github.com/yaklabco/jwslint/pkg/lint"
	"github.com/yaklabco/jwslint/pkg/srctext"
	"github.com/yaklabco/jwslint/pkg/syntax"
)

// tokenUnderTest returns the token of n whose neighbourhood is checked.
// A nil token with a nil error means the construct is exempt.
func tokenUnderTest(n *syntax.Node, text *srctext.Text) (*syntax.Token, error) {
	switch n.Kind {
	case syntax.KindAnnotation:
		return n.Token(syntax.RoleAt), nil

	case syntax.KindBitwiseNot, syntax.KindLogicalNot,
		syntax.KindUnaryPlus, syntax.KindUnaryMinus,
		syntax.KindPrefixIncrement, syntax.KindPrefixDecrement,
		syntax.KindPostfixIncrement, syntax.KindPostfixDecrement:
		return n.Token(syntax.RoleOperator), nil

	case syntax.KindMemberSelect, syntax.KindMethodReference:
		return n.Token(syntax.RoleSeparator), nil

	case syntax.KindArrayInitializer:
		return n.Token(syntax.RoleOpenBrace), nil

	case syntax.KindSynchronized:
		return n.Token(syntax.RoleFirst), nil

	case syntax.KindArrayAccess:
		return n.Token(syntax.RoleOpenBracket), nil

	case syntax.KindArrayType:
		return arrayTypeBracket(n, text)

	case syntax.KindTypeCast:
		return n.Token(syntax.RoleCloseParen), nil

	case syntax.KindLabeledStatement:
		return n.Token(syntax.RoleColon), nil

	case syntax.KindOther, syntax.KindFile, syntax.KindForStatement,
		syntax.KindTypeArguments, syntax.KindTypeParameters:
		return nil, fmt.Errorf("%w: no token extraction for %s", lint.ErrContractViolation, n.Kind)

	default:
		return nil, fmt.Errorf("%w: unknown construct kind %s", lint.ErrContractViolation, n.Kind)
	}
}

// arrayTypeBracket skips brackets of annotated dimensions such as
// "String @NonNull [] a": the space there belongs to the annotation.
func arrayTypeBracket(n *syntax.Node, text *srctext.Text) (*syntax.Token, error) {
	bracket := n.Token(syntax.RoleOpenBracket)
	if bracket == nil {
		return nil, nil
	}

	offset, err := tokenOffset(text, bracket, bracket.Range.Start)
	if err != nil {
		return nil, err
	}
	if text.HasPattern(offset, srctext.Left, srctext.AnnotationMarker) {
		return nil, nil
	}

	return bracket, nil
}

// tokenOffset resolves pos of tok in text. A position outside the text means
// the tree and the text disagree, so the failure is a contract violation.
func tokenOffset(text *srctext.Text, tok *syntax.Token, pos syntax.Position) (int, error) {
	offset, err := text.Offset(pos)
	if err != nil {
		return 0, fmt.Errorf("%w: token %q at %s: %w", lint.ErrContractViolation, tok.Text, pos, err)
	}
	return offset, nil
}

// literalUnderTest reports whether a raw token is a literal-token construct
// of the before direction.
func literalUnderTest(tok *syntax.Token) bool {
	if !tok.Punct {
		return false
	}

	switch tok.Text {
	case ".", "...", ",":
		return true
	case ";":
		return !inEmptyForHeader(tok)
	case "<", ">":
		return tok.Parent != nil &&
			(tok.Parent.Kind == syntax.KindTypeArguments || tok.Parent.Kind == syntax.KindTypeParameters)
	default:
		return false
	}
}

// inEmptyForHeader reports whether tok is a separator of "for (;;)".
func inEmptyForHeader(tok *syntax.Token) bool {
	parent := tok.Parent
	if parent == nil || parent.Kind != syntax.KindForStatement || parent.For == nil {
		return false
	}
	return parent.For.Empty()
}
