package lint

import (
	"slices"

	"github.com/yaklabco/jwslint/pkg/config"
)

// ResolvedRule is a registered rule with its effective settings for a run.
type ResolvedRule struct {
	Rule     Rule
	Enabled  bool
	Severity config.Severity
	Config   *config.RuleConfig // nil when the configuration does not mention the rule
}

// ResolveRules returns the enabled rules of registry in registration order.
// Rule keys in cfg must already be canonical IDs.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	all := registry.Rules()
	resolved := make([]ResolvedRule, 0, len(all))

	for _, rule := range all {
		if rr := resolveRule(rule, cfg); rr.Enabled {
			resolved = append(resolved, rr)
		}
	}

	return resolved
}

// resolveRule resolves the configuration for a single rule.
// Precedence, lowest first: rule defaults, severity_default, rule config,
// CLI enable/disable lists.
func resolveRule(rule Rule, cfg *config.Config) ResolvedRule {
	rr := ResolvedRule{
		Rule:     rule,
		Enabled:  rule.DefaultEnabled(),
		Severity: rule.DefaultSeverity(),
	}

	if cfg == nil {
		return rr
	}

	if sev := config.Severity(cfg.SeverityDefault); sev.IsValid() {
		rr.Severity = sev
	}

	if ruleCfg, ok := cfg.Rules[rule.ID()]; ok {
		rr.Config = &ruleCfg

		if ruleCfg.Enabled != nil {
			rr.Enabled = *ruleCfg.Enabled
		}
		if ruleCfg.Severity != nil {
			rr.Severity = config.Severity(*ruleCfg.Severity)
		}
	}

	switch {
	case slices.Contains(cfg.DisableRules, rule.ID()):
		rr.Enabled = false
	case slices.Contains(cfg.EnableRules, rule.ID()):
		rr.Enabled = true
	}

	return rr
}
