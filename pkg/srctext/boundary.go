package srctext

import (
	"unicode/utf8"
)

// Direction selects which side of an offset a pattern is matched against.
type Direction uint8

const (
	// Left matches text ending exactly at the offset.
	Left Direction = iota + 1
	// Right matches text starting exactly at the offset.
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Pattern is an anchored boundary pattern.
// before reports whether the pattern matches ending at the end of s;
// after reports whether it matches starting at the start of s.
type Pattern struct {
	name   string
	before func(s string) bool
	after  func(s string) bool
}

func (p Pattern) String() string {
	return p.name
}

//nolint:gochecknoglobals // Fixed, stateless patterns.
var (
	// Whitespace is a single whitespace character.
	Whitespace = Pattern{
		name: "whitespace",
		before: func(s string) bool {
			return len(s) > 0 && isSpace(s[len(s)-1])
		},
		after: func(s string) bool {
			return len(s) > 0 && isSpace(s[0])
		},
	}

	// LineBreak is a line-break character followed by any amount of whitespace.
	LineBreak = Pattern{
		name:   "line-break",
		before: endsWithLineBreak,
		after: func(s string) bool {
			r, _ := utf8.DecodeRuneInString(s)
			return isLineBreak(r)
		},
	}

	// AnnotationMarker is '@', then word characters, then whitespace.
	AnnotationMarker = Pattern{
		name:   "annotation-marker",
		before: endsWithAnnotation,
		after: func(s string) bool {
			return len(s) > 0 && s[0] == '@'
		},
	}
)

// HasPattern reports whether p matches anchored at offset in direction dir.
// Offsets outside the text never match.
func (t *Text) HasPattern(offset int, dir Direction, p Pattern) bool {
	if offset < 0 || offset > t.Len() {
		return false
	}

	switch dir {
	case Left:
		return p.before(t.text[:offset])
	case Right:
		return p.after(t.text[offset:])
	default:
		return false
	}
}

// isSpace matches the ASCII whitespace class: space, \t, \n, \v, \f, \r.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\v', '\f', '\r', '\u0085', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// endsWithLineBreak scans backward over whitespace until it meets a line break.
func endsWithLineBreak(s string) bool {
	for len(s) > 0 {
		r, size := utf8.DecodeLastRuneInString(s)
		if isLineBreak(r) {
			return true
		}
		if size != 1 || !isSpace(s[len(s)-1]) {
			return false
		}
		s = s[:len(s)-size]
	}
	return false
}

func endsWithAnnotation(s string) bool {
	end := len(s)
	for end > 0 && isSpace(s[end-1]) {
		end--
	}
	for end > 0 && isWordByte(s[end-1]) {
		end--
	}
	return end > 0 && s[end-1] == '@'
}
