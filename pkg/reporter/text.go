package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/jwslint/internal/ui/pretty"
	"github.com/yaklabco/jwslint/pkg/runner"
	"github.com/yaklabco/jwslint/pkg/syntax"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int
	for _, file := range result.Files {
		total += r.reportFile(file)
	}

	if r.opts.ShowSummary {
		if r.opts.DetailedSummary {
			fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))
		} else {
			fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
		}
	}

	return total, nil
}

// reportFile writes one file's error or diagnostics and returns the count.
func (r *TextReporter) reportFile(file runner.FileOutcome) int {
	path := r.opts.displayPath(file.Path)

	if file.Error != nil {
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(path),
			r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
		)
		return 0
	}

	if file.Result == nil || file.Result.FileResult == nil {
		return 0
	}

	diagnostics := file.Result.Diagnostics
	if len(diagnostics) == 0 {
		return 0
	}

	if r.opts.GroupByFile {
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(diagnostics)))
	}

	for _, diag := range diagnostics {
		var sourceLine string
		if r.opts.ShowContext {
			sourceLine = lineText(file.Result.File, diag.StartLine)
		}

		diag.FilePath = path
		fmt.Fprint(r.bw, r.styles.FormatDiagnostic(&diag, r.opts.ShowContext, sourceLine, r.opts.RuleFormat))
	}

	if r.opts.GroupByFile {
		fmt.Fprintln(r.bw)
	}

	return len(diagnostics)
}

// lineText returns the 1-based line of file, or "" when unavailable.
func lineText(file *syntax.File, line int) string {
	if file == nil || line < 1 || line > len(file.Lines) {
		return ""
	}
	return file.Lines[line-1]
}

var _ Reporter = (*TextReporter)(nil)
