// Package reporter renders lint results as styled text, JSON or SARIF.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/jwslint/pkg/runner"
)

// Reporter writes a lint result in one output format.
type Reporter interface {
	// Report writes result and returns the number of diagnostics written.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New returns the reporter for opts.Format, defaulting to text on stdout.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	switch opts.Format {
	case FormatText, "":
		return NewTextReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatSARIF:
		return NewSARIFReporter(opts), nil
	}
	return nil, fmt.Errorf("unsupported format: %s", opts.Format)
}
