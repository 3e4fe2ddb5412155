// Package config defines core configuration types for jwslint.
// These types are pure data structures; loading and layering live in internal/configloader.
package config

// Severity represents the severity level of a lint diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid returns true if s is a known severity.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `json:"enabled,omitempty"  yaml:"enabled,omitempty"`
	Severity *string        `json:"severity,omitempty" yaml:"severity,omitempty"`
	Options  map[string]any `json:"options,omitempty"  yaml:"options,omitempty"`
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatJSON  OutputFormat = "json"
	FormatSARIF OutputFormat = "sarif"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "no-whitespace-after"
	RuleFormatID       RuleFormat = "id"       // "JW001"
	RuleFormatCombined RuleFormat = "combined" // "JW001/no-whitespace-after"
)

// DefaultExtensions are the file extensions linted when none are configured.
func DefaultExtensions() []string {
	return []string{".java"}
}

// Config is the root configuration structure for jwslint.
type Config struct {
	// SeverityDefault is the severity for rules that don't specify one.
	// Empty means each rule's own default.
	SeverityDefault string `json:"severity_default,omitempty" yaml:"severity_default,omitempty"`

	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `json:"rules,omitempty" yaml:"rules,omitempty"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty"`

	// Extensions are the file extensions treated as Java sources.
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`

	// NoGitignore disables reading .gitignore files during discovery.
	NoGitignore bool `json:"no_gitignore,omitempty" yaml:"no_gitignore,omitempty"`

	// IncludeVendored lints files in vendored directories.
	IncludeVendored bool `json:"include_vendored,omitempty" yaml:"include_vendored,omitempty"`

	// IncludeGenerated lints files that look machine-generated.
	IncludeGenerated bool `json:"include_generated,omitempty" yaml:"include_generated,omitempty"`

	// Format specifies the output format.
	Format OutputFormat `json:"format,omitempty" yaml:"format,omitempty"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `json:"rule_format,omitempty" yaml:"rule_format,omitempty"`

	// CLI-level options (not persisted to config files).

	// Jobs specifies the number of parallel workers.
	Jobs int `json:"-" yaml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `json:"-" yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `json:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rules:      make(map[string]RuleConfig),
		Extensions: DefaultExtensions(),
		Format:     FormatText,
		RuleFormat: RuleFormatName,
		Jobs:       0, // 0 means use NumCPU
	}
}

// EffectiveExtensions returns the configured extensions or the defaults.
func (c *Config) EffectiveExtensions() []string {
	if c == nil || len(c.Extensions) == 0 {
		return DefaultExtensions()
	}
	return c.Extensions
}
