package syntax

// Token is a leaf of the syntax tree with its exact source text.
type Token struct {
	// Text is the literal source text of the token.
	Text string

	// Range is where the token sits in the file.
	Range Range

	// Parent is the innermost node containing the token.
	Parent *Node

	// Punct is true for anonymous grammar tokens (punctuation and keywords),
	// false for named leaves such as identifiers, literals and comments.
	Punct bool
}

// Span returns the token's range.
func (t *Token) Span() Range {
	return t.Range
}

// ForHeader records how many elements each clause of a C-style for loop has.
type ForHeader struct {
	Init      int
	Condition int
	Update    int
}

// Empty reports whether the header is "for (;;)".
func (h ForHeader) Empty() bool {
	return h.Init == 0 && h.Condition == 0 && h.Update == 0
}

// Node is a node of the host-neutral syntax tree.
type Node struct {
	// Kind is the whitespace-relevant shape of the node.
	Kind Kind

	// Type is the host grammar's name for the node (e.g. "field_access").
	Type string

	// Range spans the node's first to last token.
	Range Range

	Parent   *Node
	Children []*Node

	// Tokens are the node's direct leaf tokens, in source order.
	Tokens []*Token

	// For is set on KindForStatement nodes.
	For *ForHeader

	roles map[Role]*Token
}

// Span returns the node's range.
func (n *Node) Span() Range {
	return n.Range
}

// Token returns the sub-token playing role, or nil.
func (n *Node) Token(role Role) *Token {
	if n == nil || n.roles == nil {
		return nil
	}
	return n.roles[role]
}

// SetToken records tok as the sub-token playing role.
func (n *Node) SetToken(role Role, tok *Token) {
	if tok == nil {
		return
	}
	if n.roles == nil {
		n.roles = make(map[Role]*Token)
	}
	n.roles[role] = tok
}

// AppendChild adds child as the last child of n.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// AppendToken adds tok as the last direct token of n.
func (n *Node) AppendToken(tok *Token) {
	tok.Parent = n
	n.Tokens = append(n.Tokens, tok)
}

// FirstToken returns the first direct token of n with the given text, or nil.
func (n *Node) FirstToken(text string) *Token {
	for _, tok := range n.Tokens {
		if tok.Text == text {
			return tok
		}
	}
	return nil
}

// LastToken returns the last direct token of n with the given text, or nil.
func (n *Node) LastToken(text string) *Token {
	for i := len(n.Tokens) - 1; i >= 0; i-- {
		if n.Tokens[i].Text == text {
			return n.Tokens[i]
		}
	}
	return nil
}
