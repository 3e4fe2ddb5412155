package syntax

// File is a parsed source file together with the text it was parsed from.
type File struct {
	// Path is the logical path of the file (for diagnostics only).
	Path string

	// Content is the raw file content.
	Content []byte

	// Lines are the file's lines without separators.
	Lines []string

	// Separator is the line separator the positions in the tree assume.
	// Joining Lines with Separator reproduces Content.
	Separator string

	// Root is the root of the syntax tree, always of KindFile.
	Root *Node

	// Tokens are all leaf tokens of the tree in document order.
	Tokens []*Token
}
