package configloader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/jwslint/pkg/config"
	_ "github.com/yaklabco/jwslint/pkg/lint/rules" // Register rules
)

// newProject creates a temp directory marked as a VCS root so the upward
// config search never leaves it, and writes files into it.
func newProject(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func isolated(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), isolated(newProject(t, nil)))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}
	if got := result.Config.EffectiveExtensions(); len(got) != 1 || got[0] != ".java" {
		t.Errorf("expected default extensions [.java], got %v", got)
	}
	if result.Config.RuleFormat != config.RuleFormatName {
		t.Errorf("expected rule format %q, got %q", config.RuleFormatName, result.Config.RuleFormat)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no loaded files, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	dir := newProject(t, map[string]string{
		".jwslint.yml": `
severity_default: error
include_vendored: true
rules:
  JW001:
    enabled: false
`,
	})

	result, err := Load(context.Background(), isolated(dir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.SeverityDefault != "error" {
		t.Errorf("expected severity_default error, got %q", result.Config.SeverityDefault)
	}
	if !result.Config.IncludeVendored {
		t.Error("expected include_vendored to be loaded")
	}

	jw001, ok := result.Config.Rules["JW001"]
	if !ok {
		t.Fatal("JW001 rule not found in config")
	}
	if jw001.Enabled == nil || *jw001.Enabled {
		t.Error("expected JW001 to be disabled")
	}

	if len(result.LoadedFrom) != 1 {
		t.Errorf("expected 1 loaded file, got %d", len(result.LoadedFrom))
	}
}

func TestLoad_ProjectConfigFromSubdirectory(t *testing.T) {
	t.Parallel()

	dir := newProject(t, map[string]string{
		".jwslint.yaml":      "severity_default: info\n",
		"src/main/Demo.java": "class Demo {}\n",
	})

	result, err := Load(context.Background(), isolated(filepath.Join(dir, "src", "main")))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Paths.Project != filepath.Join(dir, ".jwslint.yaml") {
		t.Errorf("expected project config in %s, got %q", dir, result.Paths.Project)
	}
	if result.Config.SeverityDefault != "info" {
		t.Errorf("expected severity_default info, got %q", result.Config.SeverityDefault)
	}
}

func TestLoad_JSONConfig(t *testing.T) {
	t.Parallel()

	dir := newProject(t, map[string]string{
		".jwslint.json": `{
  "extensions": [".java", ".jav"],
  "rules": {
    "no-whitespace-before": {"options": {"generic_start": true}}
  }
}`,
	})

	result, err := Load(context.Background(), isolated(dir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := result.Config.Extensions; len(got) != 2 || got[1] != ".jav" {
		t.Errorf("expected extensions [.java .jav], got %v", got)
	}
	jw002, ok := result.Config.Rules["JW002"]
	if !ok {
		t.Fatal("expected JW002 after normalization")
	}
	if jw002.Options["generic_start"] != true {
		t.Errorf("expected generic_start option true, got %v", jw002.Options["generic_start"])
	}
}

func TestLoad_ExplicitConfig(t *testing.T) {
	t.Parallel()

	dir := newProject(t, map[string]string{
		".jwslint.yml":       "severity_default: error\n",
		"custom-config.yaml": "severity_default: warning\n",
	})

	opts := isolated(dir)
	opts.ExplicitPath = filepath.Join(dir, "custom-config.yaml")

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.SeverityDefault != "warning" {
		t.Errorf("expected explicit config to win, got severity_default %q", result.Config.SeverityDefault)
	}
	if len(result.LoadedFrom) != 2 || result.LoadedFrom[1] != opts.ExplicitPath {
		t.Errorf("expected project then explicit config, got %v", result.LoadedFrom)
	}
}

func TestLoad_MissingExplicitConfig(t *testing.T) {
	t.Parallel()

	opts := isolated(newProject(t, nil))
	opts.ExplicitPath = filepath.Join(t.TempDir(), "missing.yml")

	if _, err := Load(context.Background(), opts); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	dir := newProject(t, map[string]string{
		".jwslint.yml": `
severity_default: info
rules:
  JW001:
    enabled: false
`,
	})

	opts := isolated(dir)
	opts.CLIConfig = &config.Config{
		SeverityDefault: "error",
		Jobs:            8,
		EnableRules:     []string{"no-whitespace-after"},
		DisableRules:    []string{"NoWhitespaceBefore"},
	}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.SeverityDefault != "error" {
		t.Errorf("expected severity_default error (CLI override), got %q", result.Config.SeverityDefault)
	}
	if result.Config.Jobs != 8 {
		t.Errorf("expected jobs 8 (CLI override), got %d", result.Config.Jobs)
	}
	if got := result.Config.EnableRules; len(got) != 1 || got[0] != "JW001" {
		t.Errorf("expected enable list normalized to [JW001], got %v", got)
	}
	if got := result.Config.DisableRules; len(got) != 1 || got[0] != "JW002" {
		t.Errorf("expected disable list normalized to [JW002], got %v", got)
	}
}

func TestLoad_OutputFormatFromFile(t *testing.T) {
	t.Parallel()

	dir := newProject(t, map[string]string{
		".jwslint.yml": "format: json\nrule_format: combined\n",
	})

	result, err := Load(context.Background(), isolated(dir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Format != config.FormatJSON {
		t.Errorf("expected format %q, got %q", config.FormatJSON, result.Config.Format)
	}
	if result.Config.RuleFormat != config.RuleFormatCombined {
		t.Errorf("expected rule format %q, got %q", config.RuleFormatCombined, result.Config.RuleFormat)
	}

	opts := isolated(dir)
	opts.CLIConfig = &config.Config{Format: config.FormatSARIF}

	result, err = Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.Format != config.FormatSARIF {
		t.Errorf("expected --format to win, got %q", result.Config.Format)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "bad severity default",
			content: "severity_default: fatal\n",
			wantErr: "severity_default",
		},
		{
			name:    "bad rule severity",
			content: "rules:\n  JW001:\n    severity: critical\n",
			wantErr: "rules.JW001.severity",
		},
		{
			name:    "non-boolean option",
			content: "rules:\n  JW001:\n    options:\n      allow_line_breaks: \"no\"\n",
			wantErr: "rules.JW001.options.allow_line_breaks",
		},
		{
			name:    "bad extension",
			content: "extensions: [java]\n",
			wantErr: "extensions[0]",
		},
		{
			name:    "bad format",
			content: "format: xml\n",
			wantErr: "invalid format",
		},
		{
			name:    "bad rule format",
			content: "rule_format: short\n",
			wantErr: "invalid rule format",
		},
		{
			name:    "malformed yaml",
			content: "rules: [\n",
			wantErr: "parse yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := newProject(t, map[string]string{".jwslint.yml": tt.content})

			_, err := Load(context.Background(), isolated(dir))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Load(ctx, isolated(newProject(t, nil))); err == nil {
		t.Fatal("expected context cancellation error")
	}
}

func TestLoader_NormalizesRuleKeys(t *testing.T) {
	t.Parallel()

	dir := newProject(t, map[string]string{
		".jwslint.yml": `
rules:
  no-whitespace-after:
    enabled: false
  NoWhitespaceBefore:
    severity: error
`,
	})

	result, err := Load(context.Background(), isolated(dir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	for _, key := range []string{"no-whitespace-after", "NoWhitespaceBefore"} {
		if _, ok := result.Config.Rules[key]; ok {
			t.Errorf("expected %q to be normalized away", key)
		}
	}

	jw001, ok := result.Config.Rules["JW001"]
	if !ok || jw001.Enabled == nil || *jw001.Enabled {
		t.Errorf("expected JW001 disabled, got %+v", jw001)
	}

	jw002, ok := result.Config.Rules["JW002"]
	if !ok || jw002.Severity == nil || *jw002.Severity != "error" {
		t.Errorf("expected JW002 severity error, got %+v", jw002)
	}
}

func TestLoader_WarnsDuplicateRules(t *testing.T) {
	t.Parallel()

	dir := newProject(t, map[string]string{
		".jwslint.yml": `
rules:
  JW001:
    enabled: false
  no-whitespace-after:
    enabled: true
    severity: error
`,
	})

	result, err := Load(context.Background(), isolated(dir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	foundWarning := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "duplicate") && strings.Contains(w, "JW001") {
			foundWarning = true
			break
		}
	}
	if !foundWarning {
		t.Errorf("expected warning about duplicate rule, got warnings: %v", result.Warnings)
	}

	// The entry under the ID wins; fields it leaves unset come from the alias.
	jw001 := result.Config.Rules["JW001"]
	if jw001.Enabled == nil || *jw001.Enabled {
		t.Error("expected JW001 to stay disabled")
	}
	if jw001.Severity == nil || *jw001.Severity != "error" {
		t.Error("expected JW001 severity from the name entry")
	}
}

func TestLoad_UnknownRuleWarns(t *testing.T) {
	t.Parallel()

	dir := newProject(t, map[string]string{
		".jwslint.yml": "rules:\n  JW999:\n    enabled: false\n",
	})

	result, err := Load(context.Background(), isolated(dir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], `unknown rule "JW999"`) {
		t.Errorf("expected unknown rule warning, got %v", result.Warnings)
	}
}

func TestLoad_Environment(t *testing.T) {
	dir := newProject(t, map[string]string{".jwslint.yml": "severity_default: info\n"})

	t.Setenv("JWSLINT_SEVERITY_DEFAULT", "error")
	t.Setenv("JWSLINT_JOBS", "3")

	opts := isolated(dir)
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.SeverityDefault != "error" {
		t.Errorf("expected environment to override project config, got %q", result.Config.SeverityDefault)
	}
	if result.Config.Jobs != 3 {
		t.Errorf("expected jobs 3, got %d", result.Config.Jobs)
	}
}

func TestLoad_UserConfig(t *testing.T) {
	home := t.TempDir()
	userDir := filepath.Join(home, "jwslint")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte("severity_default: info\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", home)

	opts := isolated(newProject(t, nil))
	opts.IgnoreUserConfig = false

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Paths.User != filepath.Join(userDir, "config.yaml") {
		t.Errorf("expected user config path, got %q", result.Paths.User)
	}
	if result.Config.SeverityDefault != "info" {
		t.Errorf("expected severity_default info, got %q", result.Config.SeverityDefault)
	}
}
