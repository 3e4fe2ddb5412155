package lint_test

import (
	"testing"

	"github.com/yaklabco/jwslint/pkg/config"
	"github.com/yaklabco/jwslint/pkg/lint"
)

const (
	testRuleID1 = "JW001"
	testRuleID2 = "JW002"
)

// testRule is a simple rule implementation for testing.
type testRule struct {
	lint.BaseRule
}

func newTestRule(id string) *testRule {
	return &testRule{
		BaseRule: lint.NewBaseRule(id, id+"-name", "", nil),
	}
}

func TestResolveRules_Empty(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	cfg := config.NewConfig()

	resolved := lint.ResolveRules(registry, cfg)

	if len(resolved) != 0 {
		t.Errorf("expected 0 rules, got %d", len(resolved))
	}
}

func TestResolveRules_DefaultEnabled(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newTestRule(testRuleID1))
	registry.Register(newTestRule(testRuleID2))

	cfg := config.NewConfig()

	resolved := lint.ResolveRules(registry, cfg)

	// Both rules should be enabled by default (BaseRule.DefaultEnabled returns true).
	if len(resolved) != 2 {
		t.Errorf("expected 2 rules, got %d", len(resolved))
	}
}

func TestResolveRules_DisableViaConfig(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newTestRule(testRuleID1))
	registry.Register(newTestRule(testRuleID2))

	cfg := config.NewConfig()
	enabled := false
	cfg.Rules[testRuleID1] = config.RuleConfig{Enabled: &enabled}

	resolved := lint.ResolveRules(registry, cfg)

	if len(resolved) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(resolved))
	}

	if resolved[0].Rule.ID() != testRuleID2 {
		t.Errorf("expected %s to be enabled, got %s", testRuleID2, resolved[0].Rule.ID())
	}
}

func TestResolveRules_CLIDisableOverridesConfig(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newTestRule(testRuleID1))

	cfg := config.NewConfig()
	cfg.DisableRules = []string{testRuleID1}
	enabled := true
	cfg.Rules[testRuleID1] = config.RuleConfig{Enabled: &enabled}

	resolved := lint.ResolveRules(registry, cfg)

	if len(resolved) != 0 {
		t.Fatalf("expected 0 rules, got %d", len(resolved))
	}
}

func TestResolveRules_CLIEnableOverridesConfig(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newTestRule(testRuleID1))

	cfg := config.NewConfig()
	cfg.EnableRules = []string{testRuleID1}
	enabled := false
	cfg.Rules[testRuleID1] = config.RuleConfig{Enabled: &enabled}

	resolved := lint.ResolveRules(registry, cfg)

	if len(resolved) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(resolved))
	}
}

func TestResolveRules_CLIEnable(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newTestRule(testRuleID1))

	cfg := config.NewConfig()
	cfg.EnableRules = []string{testRuleID1}

	resolved := lint.ResolveRules(registry, cfg)

	if len(resolved) != 1 {
		t.Errorf("expected 1 rule, got %d", len(resolved))
	}
}

func TestResolveRules_CLIDisable(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newTestRule(testRuleID1))
	registry.Register(newTestRule(testRuleID2))

	cfg := config.NewConfig()
	cfg.DisableRules = []string{testRuleID1}

	resolved := lint.ResolveRules(registry, cfg)

	if len(resolved) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(resolved))
	}

	if resolved[0].Rule.ID() != testRuleID2 {
		t.Errorf("expected %s, got %s", testRuleID2, resolved[0].Rule.ID())
	}
}

func TestResolveRules_SeverityOverride(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newTestRule(testRuleID1))

	cfg := config.NewConfig()
	severity := string(config.SeverityError)
	cfg.Rules[testRuleID1] = config.RuleConfig{Severity: &severity}

	resolved := lint.ResolveRules(registry, cfg)

	if len(resolved) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(resolved))
	}

	if resolved[0].Severity != config.SeverityError {
		t.Errorf("expected error severity, got %v", resolved[0].Severity)
	}
}

func TestResolveRules_SeverityDefault(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newTestRule(testRuleID1))
	registry.Register(newTestRule(testRuleID2))

	cfg := config.NewConfig()
	cfg.SeverityDefault = string(config.SeverityInfo)
	severity := string(config.SeverityError)
	cfg.Rules[testRuleID2] = config.RuleConfig{Severity: &severity}

	resolved := lint.ResolveRules(registry, cfg)

	if len(resolved) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(resolved))
	}
	if resolved[0].Severity != config.SeverityInfo {
		t.Errorf("%s severity = %v, want info", testRuleID1, resolved[0].Severity)
	}
	if resolved[1].Severity != config.SeverityError {
		t.Errorf("%s severity = %v, want error", testRuleID2, resolved[1].Severity)
	}
}

func TestResolveRules_InvalidSeverityDefaultIgnored(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newTestRule(testRuleID1))

	cfg := config.NewConfig()
	cfg.SeverityDefault = "fatal"

	resolved := lint.ResolveRules(registry, cfg)

	if resolved[0].Severity != config.SeverityWarning {
		t.Errorf("severity = %v, want warning", resolved[0].Severity)
	}
}

func TestResolveRules_NilConfig(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newTestRule(testRuleID1))

	resolved := lint.ResolveRules(registry, nil)

	if len(resolved) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(resolved))
	}

	// With nil config, defaults should apply.
	if resolved[0].Severity != config.SeverityWarning {
		t.Errorf("expected warning severity, got %v", resolved[0].Severity)
	}
}

func TestResolvedRule_ConfigPresent(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newTestRule(testRuleID1))

	cfg := config.NewConfig()
	cfg.Rules[testRuleID1] = config.RuleConfig{
		Options: map[string]any{"allow_line_breaks": false},
	}

	resolved := lint.ResolveRules(registry, cfg)

	if len(resolved) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(resolved))
	}

	if resolved[0].Config == nil {
		t.Fatal("expected Config to be set")
	}

	if resolved[0].Config.Options["allow_line_breaks"] != false {
		t.Errorf("expected allow_line_breaks option to be false")
	}
}
