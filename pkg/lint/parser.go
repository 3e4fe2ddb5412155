package lint

import (
	"context"

	"github.com/yaklabco/jwslint/pkg/syntax"
)

// Parser parses source content into a syntax.File.
//
// The lint package defines this interface in the consumer package.
// Implementations (e.g., parser/treesitter) provide the concrete parsing logic.
//
// Implementations must be:
//   - deterministic for a given (path, content) pair,
//   - safe for concurrent use by multiple goroutines,
//   - side-effect free (no I/O, no global state mutation).
type Parser interface {
	// Parse converts raw source bytes into a fully-populated syntax.File.
	//
	// The returned File must satisfy:
	//   - file.Path == path
	//   - strings.Join(file.Lines, file.Separator) == string(content)
	//   - every token position resolves inside that joined text
	//   - file.Root != nil && file.Root.Kind == syntax.KindFile
	//
	// On error no partial File is returned.
	Parse(ctx context.Context, path string, content []byte) (*syntax.File, error)
}
