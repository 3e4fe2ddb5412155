package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// Template formats.
const (
	TemplateYAML = "yaml"
	TemplateJSON = "json"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes every rule option with its documentation.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string

	// Rules describes the rules to document in a full template.
	Rules []RuleInfo
}

// OptionInfo documents one rule option.
type OptionInfo struct {
	Key         string
	Default     bool
	Description string
}

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
	Severity    Severity
	Tags        []string
	Options     []OptionInfo
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == TemplateJSON {
		return generateJSONTemplate(opts)
	}
	if opts.Format != "" && opts.Format != TemplateYAML {
		return nil, fmt.Errorf("unsupported template format %q", opts.Format)
	}
	if opts.Full {
		return generateFullTemplate(opts), nil
	}
	return generateMinimalTemplate(), nil
}

func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`

# Default severity for all rules: error, warning, or info
# severity_default: warning

# File extensions treated as Java sources
# extensions:
#   - ".java"

# File patterns to ignore (glob patterns)
# ignore:
#   - "build/**"
#   - "target/**"

# Output format: text, json, or sarif
# format: text

# Rule identifiers in output: name, id, or combined
# rule_format: name

# Rule-specific configuration
# rules:
#   JW001:
#     enabled: true
#     options:
#       allow_line_breaks: true
#       type_cast: true
#   JW002:
#     severity: error
#     options:
#       dot: true
`)

	return buf.Bytes()
}

func generateFullTemplate(opts TemplateOptions) []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`
#
# This template lists every rule with its default settings.

# Default severity for all rules: error, warning, or info
# severity_default: warning

extensions:
  - ".java"

ignore:
  - "build/**"
  - "target/**"

rules:
`)

	for _, rule := range sortedRules(opts.Rules) {
		fmt.Fprintf(&buf, "\n  # %s: %s\n", rule.ID, rule.Name)
		fmt.Fprintf(&buf, "  # %s\n", wrapComment(rule.Description, commentWrapWidth))
		if len(rule.Tags) > 0 {
			fmt.Fprintf(&buf, "  # Tags: %s\n", strings.Join(rule.Tags, ", "))
		}
		fmt.Fprintf(&buf, "  %s:\n", rule.ID)
		fmt.Fprintf(&buf, "    enabled: %t\n", rule.Enabled)
		fmt.Fprintf(&buf, "    severity: %s\n", rule.Severity)
		if len(rule.Options) == 0 {
			continue
		}
		buf.WriteString("    options:\n")
		for _, opt := range rule.Options {
			if opt.Description != "" {
				fmt.Fprintf(&buf, "      # %s\n", opt.Description)
			}
			fmt.Fprintf(&buf, "      %s: %t\n", opt.Key, opt.Default)
		}
	}

	return buf.Bytes()
}

func generateJSONTemplate(opts TemplateOptions) ([]byte, error) {
	cfg := Config{
		Extensions: DefaultExtensions(),
		Rules:      make(map[string]RuleConfig),
	}

	if opts.Full {
		cfg.Ignore = []string{"build/**", "target/**"}
		for _, rule := range opts.Rules {
			enabled := rule.Enabled
			severity := string(rule.Severity)
			rc := RuleConfig{Enabled: &enabled, Severity: &severity}
			if len(rule.Options) > 0 {
				rc.Options = make(map[string]any, len(rule.Options))
				for _, opt := range rule.Options {
					rc.Options[opt.Key] = opt.Default
				}
			}
			cfg.Rules[rule.ID] = rc
		}
	}

	data, err := json.MarshalIndent(&cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return append(data, '\n'), nil
}

func sortedRules(rules []RuleInfo) []RuleInfo {
	sorted := slices.Clone(rules)
	slices.SortFunc(sorted, func(a, b RuleInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return sorted
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(text) {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# jwslint configuration
# See: https://github.com/yaklabco/jwslint`
}
