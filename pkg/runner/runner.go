package runner

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/jwslint/internal/logging"
	"github.com/yaklabco/jwslint/pkg/config"
	"github.com/yaklabco/jwslint/pkg/lint"
)

// Runner orchestrates multi-file linting using a lint.Pipeline.
type Runner struct {
	// Pipeline handles per-file processing.
	Pipeline *lint.Pipeline
}

// New creates a new Runner with the given pipeline.
func New(pipeline *lint.Pipeline) *Runner {
	return &Runner{Pipeline: pipeline}
}

// Run discovers files under opts.Paths and processes them concurrently.
// Outcomes are returned in discovery order regardless of which worker
// finished first. A failing file is recorded in its FileOutcome and does
// not stop the run; only cancellation does.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	pipelineOpts := lint.PipelineOptionsFromConfig(opts.Config)

	// Each worker writes only its own slots, so no locking is needed.
	outcomes := make([]FileOutcome, len(files))
	done := make([]bool, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	indexCh := make(chan int, jobs*2)

	group.Go(func() error {
		defer close(indexCh)
		for idx := range files {
			select {
			case indexCh <- idx:
			case <-groupCtx.Done():
				return groupCtx.Err()
			}
		}
		return nil
	})

	for range jobs {
		group.Go(func() error {
			for idx := range indexCh {
				if groupCtx.Err() != nil {
					return groupCtx.Err()
				}
				outcomes[idx] = r.process(groupCtx, files[idx], opts.Config, pipelineOpts)
				done[idx] = true
			}
			return nil
		})
	}

	waitErr := group.Wait()

	for idx, outcome := range outcomes {
		if done[idx] {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	if waitErr != nil {
		return result, fmt.Errorf("run: %w", waitErr)
	}

	return result, nil
}

func (r *Runner) process(
	ctx context.Context,
	path string,
	cfg *config.Config,
	opts lint.PipelineOptions,
) FileOutcome {
	outcome := FileOutcome{Path: path}

	pr, err := r.Pipeline.ProcessFile(ctx, path, cfg, opts)
	if err != nil {
		logger := logging.FromContext(ctx)
		if lint.IsPipelineError(err) {
			logger.Debug("file failed", logging.FieldPath, path, logging.FieldError, err)
		} else {
			logger.Warn("file failed", logging.FieldPath, path, logging.FieldError, err)
		}
		outcome.Error = err
		return outcome
	}

	outcome.Result = pr
	return outcome
}
