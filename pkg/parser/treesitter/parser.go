// Package treesitter provides a lint.Parser for Java built on tree-sitter.
package treesitter

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/yaklabco/jwslint/pkg/srctext"
	"github.com/yaklabco/jwslint/pkg/syntax"
)

// ErrSyntax is returned when the source contains syntax errors.
var ErrSyntax = errors.New("java syntax error")

// Parser implements lint.Parser for Java sources.
// It is safe for concurrent use: each Parse call owns its tree-sitter parser.
type Parser struct {
	lang *sitter.Language
}

// New creates a Java parser.
func New() *Parser {
	return &Parser{lang: java.GetLanguage()}
}

// Parse converts Java source into a syntax.File.
//
// The method:
//  1. Checks for context cancellation.
//  2. Parses content with tree-sitter.
//  3. Rejects trees containing ERROR or MISSING nodes.
//  4. Maps the concrete syntax tree onto syntax nodes and tokens.
//
// Tree-sitter counts rows on LF and columns in bytes, so the file's lines
// are split on LF with any CR left in place.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*syntax.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	src := make([]byte, len(content))
	copy(src, content)

	tsParser := sitter.NewParser()
	defer tsParser.Close()
	tsParser.SetLanguage(p.lang)

	tree, err := tsParser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		line, col := firstErrorPoint(root)
		return nil, fmt.Errorf("%w: %s:%d:%d", ErrSyntax, path, line, col)
	}

	file := &syntax.File{
		Path:      path,
		Content:   src,
		Lines:     srctext.SplitLines(src),
		Separator: srctext.LF,
	}

	m := newMapper(src, file)
	file.Root = m.mapRoot(root)

	return file, nil
}

// firstErrorPoint returns the 1-based position of the first ERROR or MISSING node.
func firstErrorPoint(n *sitter.Node) (int, int) {
	if n.Type() == "ERROR" || n.IsMissing() {
		pt := n.StartPoint()
		return int(pt.Row) + 1, int(pt.Column) + 1
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		if child.HasError() || child.IsMissing() {
			return firstErrorPoint(child)
		}
	}
	pt := n.StartPoint()
	return int(pt.Row) + 1, int(pt.Column) + 1
}
