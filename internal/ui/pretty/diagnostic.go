package pretty

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/jwslint/pkg/config"
	"github.com/yaklabco/jwslint/pkg/lint"
)

// FormatDiagnostic formats a single diagnostic for terminal output.
//
// sourceLine is the text of the diagnostic's start line; when showContext
// is set and it is non-empty, the line is printed with a marker under the
// reported range.
func (s *Styles) FormatDiagnostic(diag *lint.Diagnostic, showContext bool, sourceLine string, ruleFormat config.RuleFormat) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(diag.FilePath),
		diag.StartLine,
		diag.StartColumn,
	)

	ruleIdentifier := config.FormatRuleID(ruleFormat, diag.RuleID, diag.RuleName)

	fmt.Fprintf(&builder, "  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(diag.Severity),
		s.Message.Render(diag.Message),
		s.RuleID.Render("("+ruleIdentifier+")"),
	)

	if showContext && sourceLine != "" {
		width := 1
		if diag.EndLine == diag.StartLine && diag.EndColumn > diag.StartColumn {
			width = diag.EndColumn - diag.StartColumn
		}
		builder.WriteString(s.FormatSourceContext(sourceLine, diag.StartColumn, width))
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	return s.ForSeverity(sev).Render(string(sev))
}

// FormatSourceContext formats the source line with a "^~~" marker starting
// at the 1-based byte column and spanning width bytes.
func (s *Styles) FormatSourceContext(line string, column, width int) string {
	var builder strings.Builder

	const indent = "        "

	line = strings.TrimRight(line, "\r")
	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column <= 0 || column > len(line)+1 {
		return builder.String()
	}

	prefix := line[:column-1]
	marked := line[column-1:]
	if width > len(marked) {
		width = len(marked)
	}

	marker := "^"
	if runes := utf8.RuneCountInString(marked[:width]); runes > 1 {
		marker += strings.Repeat("~", runes-1)
	}

	builder.WriteString(indent + padding(prefix) + s.Caret.Render(marker) + "\n")

	return builder.String()
}

// tabWidth matches lipgloss' default tab expansion in Render.
const tabWidth = 4

// padding returns spaces as wide as prefix renders.
func padding(prefix string) string {
	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteString(strings.Repeat(" ", tabWidth))
			continue
		}
		b.WriteByte(' ')
	}
	return b.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	switch {
	case issueCount == 1:
		header += s.Dim.Render(" (1 issue)")
	case issueCount > 1:
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
