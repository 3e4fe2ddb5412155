package treesitter

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/jwslint/pkg/syntax"
)

// Grammar node types the mapper recognises.
const (
	typeAnnotation         = "annotation"
	typeMarkerAnnotation   = "marker_annotation"
	typeArrayAccess        = "array_access"
	typeArrayCreation      = "array_creation_expression"
	typeArrayInitializer   = "array_initializer"
	typeCast               = "cast_expression"
	typeDimensions         = "dimensions"
	typeForStatement       = "for_statement"
	typeLabeledStatement   = "labeled_statement"
	typeLocalVariableDecl  = "local_variable_declaration"
	typeMethodReference    = "method_reference"
	typeSynchronized       = "synchronized_statement"
	typeTypeArguments      = "type_arguments"
	typeTypeParameters     = "type_parameters"
	typeUnaryExpression    = "unary_expression"
	typeUpdateExpression   = "update_expression"
	typeLineComment        = "line_comment"
	typeBlockComment       = "block_comment"
	syntheticArrayTypeType = "dimension"
)

// memberSelectTypes are the node types whose '.' separates a qualifier from a member.
//
//nolint:gochecknoglobals // Read-only lookup table.
var memberSelectTypes = map[string]bool{
	"field_access":                    true,
	"method_invocation":               true,
	"scoped_identifier":               true,
	"scoped_type_identifier":          true,
	"class_literal":                   true,
	"explicit_constructor_invocation": true,
	"import_declaration":              true,
	"object_creation_expression":      true,
}

// mapper converts a tree-sitter tree into a syntax tree.
type mapper struct {
	src  []byte
	file *syntax.File
}

func newMapper(src []byte, file *syntax.File) *mapper {
	return &mapper{src: src, file: file}
}

// mapRoot maps the program node and everything below it.
func (m *mapper) mapRoot(ts *sitter.Node) *syntax.Node {
	root := &syntax.Node{
		Kind:  syntax.KindFile,
		Type:  ts.Type(),
		Range: rangeOf(ts),
	}
	m.mapChildren(ts, root)
	return root
}

func (m *mapper) mapChildren(ts *sitter.Node, parent *syntax.Node) {
	for i := 0; i < int(ts.ChildCount()); i++ {
		child := ts.Child(i)
		if child == nil || child.IsMissing() {
			continue
		}
		if child.ChildCount() == 0 {
			m.addToken(child, parent)
			continue
		}
		parent.AppendChild(m.mapNode(child, ts))
	}
}

func (m *mapper) addToken(ts *sitter.Node, parent *syntax.Node) *syntax.Token {
	tok := &syntax.Token{
		Text:  ts.Content(m.src),
		Range: rangeOf(ts),
		Punct: !ts.IsNamed(),
	}
	parent.AppendToken(tok)
	m.file.Tokens = append(m.file.Tokens, tok)
	return tok
}

func (m *mapper) mapNode(ts, tsParent *sitter.Node) *syntax.Node {
	node := &syntax.Node{
		Type:  ts.Type(),
		Range: rangeOf(ts),
	}

	if ts.Type() == typeDimensions && tsParent.Type() != typeArrayCreation {
		m.mapDimensions(ts, node, declaredTypeStart(tsParent))
		return node
	}

	m.mapChildren(ts, node)
	m.classify(ts, node)

	return node
}

// mapDimensions gives every "[ ]" pair of an array type its own node so
// each bracket is checked as a separate array-type construct. Each node
// spans from the start of the declared type to its closing bracket.
func (m *mapper) mapDimensions(ts *sitter.Node, node *syntax.Node, start syntax.Position) {
	var current *syntax.Node

	for i := 0; i < int(ts.ChildCount()); i++ {
		child := ts.Child(i)
		if child == nil || child.IsMissing() {
			continue
		}

		if child.ChildCount() > 0 {
			node.AppendChild(m.mapNode(child, ts))
			continue
		}

		switch child.Type() {
		case "[":
			current = &syntax.Node{
				Kind:  syntax.KindArrayType,
				Type:  syntheticArrayTypeType,
				Range: syntax.Range{Start: start, End: rangeOf(child).End},
			}
			node.AppendChild(current)
			current.SetToken(syntax.RoleOpenBracket, m.addToken(child, current))
		case "]":
			if current == nil {
				m.addToken(child, node)
				continue
			}
			m.addToken(child, current)
			current.Range.End = rangeOf(child).End
			current = nil
		default:
			m.addToken(child, node)
		}
	}
}

// classify sets the node's Kind and role tokens once its tokens are mapped.
func (m *mapper) classify(ts *sitter.Node, node *syntax.Node) {
	switch ts.Type() {
	case typeAnnotation, typeMarkerAnnotation:
		node.Kind = syntax.KindAnnotation
		node.SetToken(syntax.RoleAt, node.FirstToken("@"))

	case typeArrayAccess:
		node.Kind = syntax.KindArrayAccess
		node.SetToken(syntax.RoleOpenBracket, node.FirstToken("["))

	case typeUnaryExpression:
		m.classifyUnary(ts, node)

	case typeUpdateExpression:
		m.classifyUpdate(ts, node)

	case typeMethodReference:
		node.Kind = syntax.KindMethodReference
		node.SetToken(syntax.RoleSeparator, node.FirstToken("::"))

	case typeArrayInitializer:
		node.Kind = syntax.KindArrayInitializer
		node.SetToken(syntax.RoleOpenBrace, node.FirstToken("{"))

	case typeSynchronized:
		node.Kind = syntax.KindSynchronized
		if len(node.Tokens) > 0 {
			node.SetToken(syntax.RoleFirst, node.Tokens[0])
		}

	case typeCast:
		node.Kind = syntax.KindTypeCast
		node.SetToken(syntax.RoleOpenParen, node.FirstToken("("))
		node.SetToken(syntax.RoleCloseParen, node.FirstToken(")"))

	case typeLabeledStatement:
		node.Kind = syntax.KindLabeledStatement
		node.SetToken(syntax.RoleColon, node.FirstToken(":"))

	case typeForStatement:
		node.Kind = syntax.KindForStatement
		header := forHeader(ts)
		node.For = &header

	case typeTypeArguments:
		node.Kind = syntax.KindTypeArguments

	case typeTypeParameters:
		node.Kind = syntax.KindTypeParameters

	default:
		if !memberSelectTypes[ts.Type()] {
			return
		}
		if dot := node.LastToken("."); dot != nil && dot.Punct {
			node.Kind = syntax.KindMemberSelect
			node.SetToken(syntax.RoleSeparator, dot)
		}
	}
}

func (m *mapper) classifyUnary(ts *sitter.Node, node *syntax.Node) {
	op := ts.ChildByFieldName("operator")
	if op == nil {
		return
	}

	text := op.Content(m.src)
	switch text {
	case "~":
		node.Kind = syntax.KindBitwiseNot
	case "!":
		node.Kind = syntax.KindLogicalNot
	case "+":
		node.Kind = syntax.KindUnaryPlus
	case "-":
		node.Kind = syntax.KindUnaryMinus
	default:
		return
	}
	node.SetToken(syntax.RoleOperator, node.FirstToken(text))
}

// classifyUpdate tells prefix from postfix by whether the operator is the first child.
func (m *mapper) classifyUpdate(ts *sitter.Node, node *syntax.Node) {
	first := ts.Child(0)
	if first == nil {
		return
	}

	prefix := first.Type() == "++" || first.Type() == "--"

	var op *syntax.Token
	if prefix {
		op = node.FirstToken(first.Type())
	} else {
		for i := len(node.Tokens) - 1; i >= 0; i-- {
			if t := node.Tokens[i].Text; t == "++" || t == "--" {
				op = node.Tokens[i]
				break
			}
		}
	}
	if op == nil {
		return
	}

	switch {
	case prefix && op.Text == "++":
		node.Kind = syntax.KindPrefixIncrement
	case prefix:
		node.Kind = syntax.KindPrefixDecrement
	case op.Text == "++":
		node.Kind = syntax.KindPostfixIncrement
	default:
		node.Kind = syntax.KindPostfixDecrement
	}
	node.SetToken(syntax.RoleOperator, op)
}

// forHeader counts the elements of each clause of a for-loop header by
// walking the children between '(' and ')'. A local variable declaration
// carries its own ';' and so also closes the init clause.
func forHeader(ts *sitter.Node) syntax.ForHeader {
	var header syntax.ForHeader
	clause := -1

	for i := 0; i < int(ts.ChildCount()); i++ {
		child := ts.Child(i)
		if child == nil || child.IsMissing() {
			continue
		}

		switch child.Type() {
		case "(":
			if clause < 0 {
				clause = 0
			}
			continue
		case ")":
			return header
		case ";":
			clause++
			continue
		case ",", typeLineComment, typeBlockComment:
			continue
		}

		if clause < 0 || !child.IsNamed() {
			continue
		}

		switch clause {
		case 0:
			header.Init++
			if child.Type() == typeLocalVariableDecl {
				clause++
			}
		case 1:
			header.Condition++
		default:
			header.Update++
		}
	}

	return header
}

// declaredTypeStart finds where the type owning a dimensions node begins:
// the element type of an array type, or the declared type of the
// declaration a "name[]" declarator belongs to.
func declaredTypeStart(owner *sitter.Node) syntax.Position {
	if owner.Type() == "array_type" {
		return rangeOf(owner).Start
	}
	for n := owner; n != nil; n = n.Parent() {
		if typ := n.ChildByFieldName("type"); typ != nil {
			return rangeOf(typ).Start
		}
	}
	return rangeOf(owner).Start
}

func rangeOf(ts *sitter.Node) syntax.Range {
	return syntax.Range{
		Start: pointToPosition(ts.StartPoint()),
		End:   pointToPosition(ts.EndPoint()),
	}
}

// pointToPosition converts tree-sitter's 0-based row and byte column.
func pointToPosition(pt sitter.Point) syntax.Position {
	return syntax.Position{Line: int(pt.Row) + 1, Column: int(pt.Column) + 1}
}
