// Package srctext reconstructs a file's full text from its lines and answers
// whitespace-adjacency questions at exact byte offsets.
package srctext

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/jwslint/pkg/syntax"
)

// LF is the line separator used by SplitLines.
const LF = "\n"

// ErrPositionOutOfRange is returned when a position does not fall inside the text.
// It means the tree and the text disagree, which is never a user error.
var ErrPositionOutOfRange = errors.New("position out of range")

// Text is the full text of one file with precomputed line starts.
// A Text is immutable and owned by a single analysis pass.
type Text struct {
	text       string
	sep        string
	lines      []string
	lineStarts []int
}

// New joins lines with sep. Positions passed to Offset must have been
// computed by a parser using the same separator.
func New(lines []string, sep string) *Text {
	starts := make([]int, len(lines))
	offset := 0
	for i, line := range lines {
		starts[i] = offset
		offset += len(line) + len(sep)
	}

	return &Text{
		text:       strings.Join(lines, sep),
		sep:        sep,
		lines:      lines,
		lineStarts: starts,
	}
}

// SplitLines splits content on LF. The result always has at least one line.
// A trailing CR stays part of its line, matching parsers that count only LF
// as a line terminator.
func SplitLines(content []byte) []string {
	return strings.Split(string(content), LF)
}

// Len returns the length of the text in bytes.
func (t *Text) Len() int {
	return len(t.text)
}

// LineCount returns the number of lines.
func (t *Text) LineCount() int {
	return len(t.lines)
}

// Line returns the 1-based line without its separator, or "" if out of range.
func (t *Text) Line(n int) string {
	if n < 1 || n > len(t.lines) {
		return ""
	}
	return t.lines[n-1]
}

// Offset converts a 1-based position into a byte offset into the text.
// The column may point one past the end of the line (an exclusive end).
func (t *Text) Offset(pos syntax.Position) (int, error) {
	if pos.Line < 1 || pos.Line > t.LineCount() {
		return 0, fmt.Errorf("%w: line %d not in [1, %d]", ErrPositionOutOfRange, pos.Line, t.LineCount())
	}

	maxCol := len(t.Line(pos.Line)) + len(t.sep) + 1
	if pos.Column < 1 || pos.Column > maxCol {
		return 0, fmt.Errorf("%w: column %d not in [1, %d] on line %d",
			ErrPositionOutOfRange, pos.Column, maxCol, pos.Line)
	}

	offset := t.lineStarts[pos.Line-1] + pos.Column - 1
	if offset > t.Len() {
		return 0, fmt.Errorf("%w: %s is past the end of the text", ErrPositionOutOfRange, pos)
	}

	return offset, nil
}
