package lint

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/jwslint/internal/logging"
	"github.com/yaklabco/jwslint/pkg/config"
	"github.com/yaklabco/jwslint/pkg/fsutil"
	"github.com/yaklabco/jwslint/pkg/langdetect"
)

// PipelineResult contains the result of processing a single file.
type PipelineResult struct {
	// FileResult contains lint diagnostics. Nil when the file was skipped.
	*FileResult

	// Path is the file path that was processed.
	Path string

	// Info is the file state when it was read.
	Info *fsutil.FileInfo

	// Skipped is true if the file was not linted.
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string
}

// Summary returns a human-readable summary of the pipeline result.
func (pr *PipelineResult) Summary() string {
	if pr.Skipped {
		return "skipped: " + pr.SkipReason
	}
	if pr.FileResult != nil && pr.HasIssues() {
		return "issues found"
	}
	return "ok"
}

// PipelineOptions controls which files the pipeline lints.
type PipelineOptions struct {
	// RequireJava skips files whose content is not detected as Java.
	RequireJava bool

	// SkipGenerated skips files that look machine-generated.
	SkipGenerated bool

	// MaxFileSize skips files larger than this many bytes (0 means no limit).
	MaxFileSize int64
}

// DefaultMaxFileSize is the default upper bound on linted file size.
const DefaultMaxFileSize = 8 << 20

// DefaultPipelineOptions returns sensible defaults.
func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		RequireJava:   true,
		SkipGenerated: true,
		MaxFileSize:   DefaultMaxFileSize,
	}
}

// PipelineOptionsFromConfig creates PipelineOptions from config.Config.
func PipelineOptionsFromConfig(cfg *config.Config) PipelineOptions {
	opts := DefaultPipelineOptions()
	if cfg != nil {
		opts.SkipGenerated = !cfg.IncludeGenerated
	}
	return opts
}

// Pipeline reads, classifies and lints one file at a time.
type Pipeline struct {
	// Engine is the lint engine used for parsing and rule execution.
	Engine *Engine
}

// NewPipeline creates a new pipeline with the given engine.
func NewPipeline(engine *Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ProcessFile reads path from disk and lints it.
func (p *Pipeline) ProcessFile(
	ctx context.Context,
	path string,
	cfg *config.Config,
	opts PipelineOptions,
) (*PipelineResult, error) {
	content, info, err := fsutil.ReadFile(ctx, path, opts.MaxFileSize)
	if err != nil {
		if errors.Is(err, fsutil.ErrTooLarge) {
			return &PipelineResult{Path: path, Skipped: true, SkipReason: "file too large"}, nil
		}
		return nil, categorizeError(err)
	}

	result, err := p.ProcessContent(ctx, path, content, cfg, opts)
	if err != nil {
		return nil, err
	}
	result.Info = info

	return result, nil
}

// ProcessContent lints in-memory content without file I/O.
func (p *Pipeline) ProcessContent(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
	opts PipelineOptions,
) (*PipelineResult, error) {
	logger := logging.FromContext(ctx)
	result := &PipelineResult{Path: path}

	if opts.RequireJava && !langdetect.IsJava(path, content) {
		result.Skipped = true
		result.SkipReason = ErrNotJava.Error()
		logger.Debug("skipping file", logging.FieldPath, path, logging.FieldReason, result.SkipReason)
		return result, nil
	}

	if opts.SkipGenerated && langdetect.IsGenerated(path, content) {
		result.Skipped = true
		result.SkipReason = "generated file"
		logger.Debug("skipping file", logging.FieldPath, path, logging.FieldReason, result.SkipReason)
		return result, nil
	}

	fileResult, err := p.Engine.LintFile(ctx, path, content, cfg)
	if err != nil {
		return nil, err
	}

	for ruleID, ruleErr := range fileResult.RuleErrors {
		logger.Warn("rule failed", logging.FieldRule, ruleID, logging.FieldPath, path, logging.FieldError, ruleErr)
	}

	result.FileResult = fileResult
	return result, nil
}

// categorizeError wraps an error with the appropriate pipeline error type.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}

	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}

	return err
}
