// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// environment variable support, and validation.
package configloader

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/yaklabco/jwslint/pkg/config"
	"github.com/yaklabco/jwslint/pkg/lint"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config

	// Registry resolves rule names and aliases; nil means lint.DefaultRegistry.
	Registry *lint.Registry
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (JWSLINT_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.jwslint.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/jwslint/config.yaml)
//  6. System config (/etc/jwslint/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	registry := opts.Registry
	if registry == nil {
		registry = lint.DefaultRegistry
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layers := []struct {
		name string
		path string
		skip bool
	}{
		{name: "system", path: paths.System, skip: opts.IgnoreSystemConfig},
		{name: "user", path: paths.User, skip: opts.IgnoreUserConfig},
		{name: "project", path: paths.Project, skip: opts.IgnoreProjectConfig},
		{name: "explicit", path: paths.Explicit},
	}

	for _, layer := range layers {
		if layer.skip || layer.path == "" {
			continue
		}

		layerCfg, err := loadConfigFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		normalizeRuleKeys(layerCfg, registry, result)

		cfg = merge(cfg, layerCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	cfg.EnableRules = normalizeRuleList(cfg.EnableRules, registry)
	cfg.DisableRules = normalizeRuleList(cfg.DisableRules, registry)

	validation := ValidateWithRegistry(cfg, registry)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}

	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML or JSON file.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	if IsJSONConfig(path) {
		return config.FromJSON(content)
	}
	return config.FromYAML(content)
}

// normalizeRuleKeys rewrites rule names and aliases to canonical IDs so that
// "no-whitespace-after" and "NoWhitespaceAfter" configure JW001.
// If one file names a rule twice, a warning is recorded and the entries are
// merged with the canonical ID's own entry winning.
func normalizeRuleKeys(cfg *config.Config, registry *lint.Registry, result *LoadResult) {
	if len(cfg.Rules) == 0 {
		return
	}

	normalized := make(map[string]config.RuleConfig, len(cfg.Rules))
	seen := make(map[string]string) // canonical ID -> original key

	// Non-canonical keys first so an entry under the ID itself wins.
	keys := sortedRuleKeys(cfg.Rules, registry)

	for _, key := range keys {
		ruleCfg := cfg.Rules[key]

		canonicalID, _, found := registry.Resolve(key)
		if !found {
			// Unknown rule; validation warns about it.
			normalized[key] = ruleCfg
			continue
		}

		if originalKey, exists := seen[canonicalID]; exists {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("duplicate rule configuration: %q and %q both refer to %s",
					originalKey, key, canonicalID))
			ruleCfg = mergeRuleConfig(normalized[canonicalID], ruleCfg)
		}

		seen[canonicalID] = key
		normalized[canonicalID] = ruleCfg
	}

	cfg.Rules = normalized
}

// normalizeRuleList maps rule names and aliases in list to IDs, keeping
// unknown entries unchanged.
func normalizeRuleList(list []string, registry *lint.Registry) []string {
	if list == nil {
		return nil
	}

	out := make([]string, 0, len(list))
	for _, key := range list {
		if id, _, found := registry.Resolve(key); found {
			out = append(out, id)
			continue
		}
		out = append(out, key)
	}
	return out
}

// sortedRuleKeys orders keys deterministically, with keys that are not
// already canonical IDs first.
func sortedRuleKeys(rules map[string]config.RuleConfig, registry *lint.Registry) []string {
	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}

	isID := func(key string) bool {
		_, ok := registry.GetByID(key)
		return ok
	}

	sort.Slice(keys, func(i, j int) bool {
		if a, b := isID(keys[i]), isID(keys[j]); a != b {
			return !a
		}
		return keys[i] < keys[j]
	})
	return keys
}
