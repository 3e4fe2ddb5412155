package configloader

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yaklabco/jwslint/pkg/config"
	"github.com/yaklabco/jwslint/pkg/lint"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "rules.JW001.severity").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown rules).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[config.OutputFormat]bool{
	config.FormatText:  true,
	config.FormatJSON:  true,
	config.FormatSARIF: true,
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownRuleFormats = map[config.RuleFormat]bool{
	config.RuleFormatName:     true,
	config.RuleFormatID:       true,
	config.RuleFormatCombined: true,
}

// Validate checks a configuration against the default rule registry.
func Validate(cfg *config.Config) *ValidationResult {
	return ValidateWithRegistry(cfg, lint.DefaultRegistry)
}

// ValidateWithRegistry checks a configuration for errors and warnings,
// resolving rule keys against registry.
func ValidateWithRegistry(cfg *config.Config, registry *lint.Registry) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.SeverityDefault != "" && !IsValidSeverity(cfg.SeverityDefault) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "severity_default",
			Value:   cfg.SeverityDefault,
			Message: fmt.Sprintf("invalid severity %q; must be one of: error, warning, info", cfg.SeverityDefault),
		})
	}

	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json, sarif", cfg.Format),
		})
	}

	if cfg.RuleFormat != "" && !knownRuleFormats[cfg.RuleFormat] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "rule_format",
			Value:   cfg.RuleFormat,
			Message: fmt.Sprintf("invalid rule format %q; must be one of: name, id, combined", cfg.RuleFormat),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("extensions[%d]", i),
				Value:   ext,
				Message: fmt.Sprintf("invalid extension %q; must start with a dot", ext),
			})
		}
	}

	validateRules(cfg, registry, result)
	validateRuleLists(cfg, registry, result)
	validateIgnorePatterns(cfg, result)

	return result
}

// validateRules checks rule configurations for errors and warnings.
func validateRules(cfg *config.Config, registry *lint.Registry, result *ValidationResult) {
	keys := make([]string, 0, len(cfg.Rules))
	for key := range cfg.Rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		ruleCfg := cfg.Rules[key]
		field := "rules." + key

		_, rule, found := registry.Resolve(key)
		if !found {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   field,
				Value:   key,
				Message: fmt.Sprintf("unknown rule %q; it will be ignored", key),
			})
		}

		if ruleCfg.Severity != nil && !IsValidSeverity(*ruleCfg.Severity) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field + ".severity",
				Value:   *ruleCfg.Severity,
				Message: fmt.Sprintf("invalid severity %q; must be one of: error, warning, info", *ruleCfg.Severity),
			})
		}

		if found {
			validateRuleOptions(field, rule, ruleCfg.Options, result)
		}
	}
}

// validateRuleOptions requires every option to be a boolean and warns about
// keys the rule does not read.
func validateRuleOptions(field string, rule lint.Rule, options map[string]any, result *ValidationResult) {
	known := make(map[string]bool)
	if c, ok := rule.(lint.Configurable); ok {
		for _, opt := range c.Options() {
			known[opt.Key] = true
		}
	}

	keys := make([]string, 0, len(options))
	for key := range options {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := options[key]
		optField := field + ".options." + key

		if !known[key] {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   optField,
				Value:   value,
				Message: fmt.Sprintf("unknown option %q for rule %s; it will be ignored", key, rule.ID()),
			})
			continue
		}

		if _, ok := value.(bool); !ok {
			result.Errors = append(result.Errors, ValidationError{
				Field:   optField,
				Value:   value,
				Message: fmt.Sprintf("option %q must be true or false, got %v", key, value),
			})
		}
	}
}

// validateRuleLists warns about --enable/--disable entries no rule answers to.
func validateRuleLists(cfg *config.Config, registry *lint.Registry, result *ValidationResult) {
	check := func(list string, keys []string) {
		for _, key := range keys {
			if _, _, found := registry.Resolve(key); !found {
				result.Warnings = append(result.Warnings, ValidationError{
					Field:   list,
					Value:   key,
					Message: fmt.Sprintf("unknown rule %q", key),
				})
			}
		}
	}
	check("enable", cfg.EnableRules)
	check("disable", cfg.DisableRules)
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		// filepath.Match returns an error only for malformed patterns
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidSeverity returns true if the severity string is valid.
func IsValidSeverity(s string) bool {
	return config.Severity(s).IsValid()
}

// IsValidFormat returns true if the format is valid.
func IsValidFormat(f config.OutputFormat) bool {
	return knownFormats[f]
}
