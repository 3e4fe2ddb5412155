package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/jwslint/internal/ui/pretty"
)

// HelpStyles contains Lipgloss styles for command help formatting.
type HelpStyles struct {
	Command     lipgloss.Style
	Heading     lipgloss.Style
	Subcommand  lipgloss.Style
	Flag        lipgloss.Style
	Description lipgloss.Style
	Example     lipgloss.Style
	Dim         lipgloss.Style
}

// NewHelpStyles creates help styles; with color disabled every style is plain.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &HelpStyles{
			Command:     plain,
			Heading:     plain,
			Subcommand:  plain,
			Flag:        plain,
			Description: plain,
			Example:     plain,
			Dim:         plain,
		}
	}

	fg := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return &HelpStyles{
		Command:     fg("14").Bold(true),
		Heading:     fg("11").Bold(true),
		Subcommand:  fg("10"),
		Flag:        fg("12"),
		Description: lipgloss.NewStyle(),
		Example:     fg("8"),
		Dim:         fg("8"),
	}
}

// HelpFormatter renders Cobra help and usage text with HelpStyles.
type HelpFormatter struct {
	styles *HelpStyles
}

// NewHelpFormatter creates a new help formatter with the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{
		styles: NewHelpStyles(pretty.IsColorEnabled(colorMode, writer)),
	}
}

const usageTemplate = `{{ heading "Usage:" }}
{{- if .Runnable }}
  {{ command .UseLine }}{{ end }}
{{- if .HasAvailableSubCommands }}
  {{ command .CommandPath }} [command]{{ end }}

{{- if .HasExample }}

{{ heading "Examples:" }}
{{ example .Example }}
{{- end }}

{{- if .HasAvailableSubCommands }}

{{ heading "Available Commands:" }}
{{- range .Commands }}{{ if (or .IsAvailableCommand (eq .Name "help")) }}
  {{ subcommand (rpad .Name .NamePadding) }} {{ description .Short }}{{ end }}{{ end }}
{{- end }}

{{- if .HasAvailableLocalFlags }}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end }}

{{- if .HasAvailableInheritedFlags }}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end }}

{{- if .HasAvailableSubCommands }}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end }}
`

const helpTemplate = `{{ with (or .Long .Short) }}{{ . | trimTrailingWhitespaces }}

{{ end }}` + usageTemplate

func (h *HelpFormatter) funcs() template.FuncMap {
	return template.FuncMap{
		"command":                 h.styles.Command.Render,
		"heading":                 h.styles.Heading.Render,
		"subcommand":              h.styles.Subcommand.Render,
		"description":             h.styles.Description.Render,
		"example":                 h.styles.Example.Render,
		"flags":                   h.formatFlags,
		"rpad":                    rpad,
		"trimTrailingWhitespaces": trimTrailingWhitespaces,
	}
}

// formatFlags renders pflag's usage block with styled flag names.
func (h *HelpFormatter) formatFlags(set *pflag.FlagSet) string {
	usages := strings.TrimSuffix(set.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		lines[i] = h.formatFlagLine(line)
	}
	return strings.Join(lines, "\n")
}

// formatFlagLine styles one "  -f, --flag type   description" line.
// The flag column ends at the first run of two or more spaces.
func (h *HelpFormatter) formatFlagLine(line string) string {
	body := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(body)]

	gap := strings.Index(body, "  ")
	if gap < 0 {
		return line
	}
	names, desc := body[:gap], strings.TrimLeft(body[gap:], " ")

	fields := strings.Fields(names)
	for i, field := range fields {
		if !strings.HasPrefix(field, "-") {
			fields[i] = h.styles.Dim.Render(field)
			continue
		}
		name, comma := strings.CutSuffix(field, ",")
		fields[i] = h.styles.Flag.Render(name)
		if comma {
			fields[i] += ","
		}
	}

	return indent + strings.Join(fields, " ") + "   " + h.styles.Description.Render(desc)
}

// ApplyToCommand installs the styled help and usage functions on cmd; Cobra
// inherits them in subcommands.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	usage := template.Must(template.New("usage").Funcs(h.funcs()).Parse(usageTemplate))
	help := template.Must(template.New("help").Funcs(h.funcs()).Parse(helpTemplate))

	cmd.SetUsageFunc(func(c *cobra.Command) error {
		if err := usage.Execute(c.OutOrStdout(), c); err != nil {
			return fmt.Errorf("render usage: %w", err)
		}
		return nil
	})

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := help.Execute(c.OutOrStdout(), c); err != nil {
			c.PrintErrln(err)
		}
	})
}

func rpad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
