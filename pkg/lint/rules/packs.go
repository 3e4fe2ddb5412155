package rules

import "github.com/yaklabco/jwslint/pkg/config"

// Pack describes a named group of rule defaults for a particular use case.
// Packs are configuration fragments that can be used as starting points
// for .jwslint.yml files.
type Pack struct {
	// Name is the short identifier for the pack (e.g., "default", "strict").
	Name string

	// Description explains the purpose and characteristics of the pack.
	Description string

	// Rules contains rule configurations keyed by rule ID.
	Rules map[string]config.RuleConfig
}

// DefaultPack mirrors the built-in defaults of both rules.
func DefaultPack() Pack {
	return Pack{
		Name:        "default",
		Description: "Checkstyle defaults: both rules as warnings, line breaks allowed",
		Rules: map[string]config.RuleConfig{
			"JW001": enabled("warning", nil), // no-whitespace-after
			"JW002": enabled("warning", nil), // no-whitespace-before
		},
	}
}

// StrictPack reports every construct as an error and forbids line breaks.
func StrictPack() Pack {
	return Pack{
		Name:        "strict",
		Description: "Strict pack: every construct checked as an error, no line breaks",
		Rules: map[string]config.RuleConfig{
			"JW001": enabled("error", allOptions(afterConstructs)),
			"JW002": enabled("error", allOptions(beforeConstructs)),
		},
	}
}

// RelaxedPack keeps only separators and reports them as info.
func RelaxedPack() Pack {
	return Pack{
		Name:        "relaxed",
		Description: "Relaxed pack: only commas and semicolons, minimal noise",
		Rules: map[string]config.RuleConfig{
			"JW002": enabled("info", onlyOptions(beforeConstructs, "comma", "semicolon")),
		},
	}
}

// Packs returns all built-in rule packs.
func Packs() []Pack {
	return []Pack{
		DefaultPack(),
		StrictPack(),
		RelaxedPack(),
	}
}

// PackByName returns a pack by name, or nil if not found.
func PackByName(name string) *Pack {
	for _, p := range Packs() {
		if p.Name == name {
			return &p
		}
	}
	return nil
}

// PackNames returns the names of all available packs.
func PackNames() []string {
	packs := Packs()
	names := make([]string, len(packs))
	for i, p := range packs {
		names[i] = p.Name
	}
	return names
}

// enabled creates a RuleConfig with the rule enabled and the given severity.
func enabled(sev string, options map[string]any) config.RuleConfig {
	on := true
	return config.RuleConfig{
		Enabled:  &on,
		Severity: &sev,
		Options:  options,
	}
}

// allOptions turns every construct on and line breaks off.
func allOptions(table []construct) map[string]any {
	opts := map[string]any{OptAllowLineBreaks: false}
	for _, c := range table {
		opts[c.key] = true
	}
	return opts
}

// onlyOptions enables the named constructs and disables the rest.
func onlyOptions(table []construct, keys ...string) map[string]any {
	opts := make(map[string]any, len(table))
	for _, c := range table {
		opts[c.key] = false
	}
	for _, k := range keys {
		opts[k] = true
	}
	return opts
}
