package rules

import "github.com/yaklabco/jwslint/pkg/lint"

// Checkstyle check names accepted as rule aliases in configuration.
const (
	CheckstyleNoWhitespaceAfter  = "NoWhitespaceAfter"
	CheckstyleNoWhitespaceBefore = "NoWhitespaceBefore"
)

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewNoWhitespaceAfterRule())  // JW001
	registry.Register(NewNoWhitespaceBeforeRule()) // JW002
}

// RegisterCheckstyleAliases lets configurations name rules by their
// Checkstyle check names, e.g. "NoWhitespaceAfter" for JW001.
func RegisterCheckstyleAliases(registry *lint.Registry) {
	registry.RegisterAlias(CheckstyleNoWhitespaceAfter, "JW001")
	registry.RegisterAlias(CheckstyleNoWhitespaceBefore, "JW002")
}

// Register adds the built-in rules and their aliases to registry.
func Register(registry *lint.Registry) {
	RegisterAll(registry)
	RegisterCheckstyleAliases(registry)
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	Register(lint.DefaultRegistry)
}
