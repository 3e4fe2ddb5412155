// Package rules provides the built-in lint rules for jwslint.
//
// # Rules
//
//   - JW001: no-whitespace-after - Tokens should not be followed by whitespace
//     (Checkstyle NoWhitespaceAfter)
//   - JW002: no-whitespace-before - Tokens should not be preceded by whitespace
//     (Checkstyle NoWhitespaceBefore)
//
// Each rule resolves a Policy from its options on every Apply: one boolean
// per construct plus allow_line_breaks. Tokens under test are taken from
// the syntax tree; the surrounding characters are inspected through a
// srctext.Text built from the file's lines.
//
// # Rule Packs
//
// Rule packs are configuration presets for common use cases:
//
//   - default: both rules as warnings with their built-in options
//   - strict: every construct as an error, line breaks forbidden
//   - relaxed: only commas and semicolons, as info
//
// Use PackByName or Packs to access pack definitions programmatically.
package rules
