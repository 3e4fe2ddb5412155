// Package pretty renders diagnostics and summaries for the terminal with
// Lipgloss.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/jwslint/pkg/config"
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ANSI palette indexes.
const (
	ansiGray   = "8"
	ansiRed    = "9"
	ansiGreen  = "10"
	ansiYellow = "11"
	ansiBlue   = "12"
	ansiSilver = "7"
)

// Styles holds the renderers used by the text reporter.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	FilePath   lipgloss.Style
	Location   lipgloss.Style
	RuleID     lipgloss.Style
	Message    lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style

	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles returns colored styles, or plain ones when colorEnabled is false.
func NewStyles(colorEnabled bool) *Styles {
	plain := lipgloss.NewStyle()
	if !colorEnabled {
		return &Styles{
			Error: plain, Warning: plain, Info: plain,
			FilePath: plain, Location: plain, RuleID: plain,
			Message: plain, SourceLine: plain, Caret: plain,
			SummaryTitle: plain, SummaryValue: plain,
			Success: plain, Failure: plain,
			Dim: plain, Bold: plain,
		}
	}

	fg := func(c string) lipgloss.Style { return plain.Foreground(lipgloss.Color(c)) }
	bold := plain.Bold(true)

	return &Styles{
		Error:   fg(ansiRed).Bold(true),
		Warning: fg(ansiYellow).Bold(true),
		Info:    fg(ansiBlue).Bold(true),

		FilePath:   bold,
		Location:   fg(ansiGray),
		RuleID:     fg(ansiGray),
		Message:    plain,
		SourceLine: fg(ansiSilver),
		Caret:      fg(ansiRed),

		SummaryTitle: bold,
		SummaryValue: plain,
		Success:      fg(ansiGreen).Bold(true),
		Failure:      fg(ansiRed).Bold(true),

		Dim:  fg(ansiGray),
		Bold: bold,
	}
}

// ForSeverity returns the style for sev. Unknown severities render plain.
func (s *Styles) ForSeverity(sev config.Severity) lipgloss.Style {
	switch sev {
	case config.SeverityError:
		return s.Error
	case config.SeverityWarning:
		return s.Warning
	case config.SeverityInfo:
		return s.Info
	default:
		return lipgloss.NewStyle()
	}
}

// IsColorEnabled resolves a color mode against writer. Auto mode colors
// only terminals, and NO_COLOR (https://no-color.org/) turns it off.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
