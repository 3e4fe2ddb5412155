package syntax

import "fmt"

// Position represents a 1-based line and column in a file.
// Columns count bytes from the start of the line.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if this position has valid (positive) values.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// Before reports whether p comes strictly before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Range is a span between two positions. End is exclusive.
type Range struct {
	Start Position
	End   Position
}

// IsSingleLine returns true if start and end are on the same line.
func (r Range) IsSingleLine() bool {
	return r.Start.Line == r.End.Line
}

// Spanner is implemented by anything that occupies a range of source text.
// Diagnostics are anchored on Spanners.
type Spanner interface {
	Span() Range
}
