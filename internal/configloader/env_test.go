package configloader

import (
	"strings"
	"testing"

	"github.com/yaklabco/jwslint/pkg/config"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("JWSLINT_FORMAT", "sarif")
	t.Setenv("JWSLINT_RULE_FORMAT", "combined")
	t.Setenv("JWSLINT_IGNORE", " build/** , ,gen/**")
	t.Setenv("JWSLINT_NO_GITIGNORE", "1")
	t.Setenv("JWSLINT_INCLUDE_GENERATED", "true")

	cfg := config.NewConfig()
	if err := LoadFromEnv(cfg); err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Format != config.FormatSARIF {
		t.Errorf("Format = %q, want sarif", cfg.Format)
	}
	if cfg.RuleFormat != config.RuleFormatCombined {
		t.Errorf("RuleFormat = %q, want combined", cfg.RuleFormat)
	}
	if len(cfg.Ignore) != 2 || cfg.Ignore[0] != "build/**" || cfg.Ignore[1] != "gen/**" {
		t.Errorf("Ignore = %v, want [build/** gen/**]", cfg.Ignore)
	}
	if !cfg.NoGitignore || !cfg.IncludeGenerated {
		t.Error("expected boolean environment overrides to apply")
	}
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{name: "bad bool", env: "JWSLINT_INCLUDE_VENDORED", value: "maybe"},
		{name: "bad int", env: "JWSLINT_JOBS", value: "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)

			err := LoadFromEnv(config.NewConfig())
			if err == nil || !strings.Contains(err.Error(), tt.env) {
				t.Errorf("expected error naming %s, got %v", tt.env, err)
			}
		})
	}
}

func TestLoadFromEnv_NilConfig(t *testing.T) {
	t.Parallel()

	if err := LoadFromEnv(nil); err != nil {
		t.Errorf("LoadFromEnv(nil) error = %v", err)
	}
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	if len(vars) != len(envMappings) {
		t.Fatalf("expected %d variables, got %d", len(envMappings), len(vars))
	}
	for name, help := range vars {
		if !strings.HasPrefix(name, "JWSLINT_") {
			t.Errorf("variable %s lacks prefix", name)
		}
		if help == "" {
			t.Errorf("variable %s has no description", name)
		}
	}
}
