// Package runner provides multi-file linting orchestration.
package runner

import "github.com/yaklabco/jwslint/pkg/config"

// Ignore files read from the working directory during discovery.
const (
	GitignoreFile = ".gitignore"
	IgnoreFile    = ".jwslintignore"
)

// Options controls multi-file linting behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (with leading dot) treated
	// as Java sources. Defaults to config.DefaultExtensions().
	Extensions []string

	// IncludeGlobs are additional glob patterns to include, relative to WorkingDir.
	// Empty means "include everything that matches Extensions".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// These merge ignore rules from config and CLI (e.g. --ignore).
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// NoGitignore disables reading GitignoreFile. IgnoreFile is always read.
	NoGitignore bool

	// IncludeVendored walks vendored and third-party trees.
	IncludeVendored bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// OptionsFromConfig fills the discovery fields of Options from cfg.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	opts := Options{
		Paths:  paths,
		Config: cfg,
	}
	if cfg == nil {
		return opts
	}

	opts.Extensions = cfg.EffectiveExtensions()
	opts.ExcludeGlobs = append(opts.ExcludeGlobs, cfg.Ignore...)
	opts.NoGitignore = cfg.NoGitignore
	opts.IncludeVendored = cfg.IncludeVendored
	opts.Jobs = cfg.Jobs

	return opts
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
