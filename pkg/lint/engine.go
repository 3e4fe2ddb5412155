package lint

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/yaklabco/jwslint/pkg/config"
	"github.com/yaklabco/jwslint/pkg/syntax"
)

// FileResult contains the results of linting a single file.
type FileResult struct {
	// File is the parsed file.
	File *syntax.File

	// Diagnostics contains all issues found, ordered by position.
	Diagnostics []Diagnostic

	// RuleErrors contains any non-fatal errors from rule execution.
	RuleErrors map[string]error
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// IssueCount returns the total number of diagnostics.
func (fr *FileResult) IssueCount() int {
	return len(fr.Diagnostics)
}

// Engine coordinates parsing and rule execution for linting.
type Engine struct {
	// Parser parses source files into syntax trees.
	Parser Parser

	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given parser and registry.
func NewEngine(parser Parser, registry *Registry) *Engine {
	return &Engine{
		Parser:   parser,
		Registry: registry,
	}
}

// LintFile parses and lints a single file.
//
// A rule error wrapping ErrContractViolation aborts the file and is returned;
// any other rule error is recorded in FileResult.RuleErrors and the
// remaining rules still run.
func (e *Engine) LintFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	file, err := e.Parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}

	resolved := ResolveRules(e.Registry, cfg)

	result := &FileResult{
		File:       file,
		RuleErrors: make(map[string]error),
	}

	for _, rr := range resolved {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("linting cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, file, cfg, rr.Config)
		ruleCtx.Registry = e.Registry

		diags, err := rr.Rule.Apply(ruleCtx)
		if err != nil {
			if errors.Is(err, ErrContractViolation) {
				return nil, fmt.Errorf("rule %s: %w", rr.Rule.ID(), err)
			}
			result.RuleErrors[rr.Rule.ID()] = err
			continue
		}

		for diagIdx := range diags {
			diags[diagIdx].Severity = rr.Severity

			if diags[diagIdx].FilePath == "" {
				diags[diagIdx].FilePath = path
			}

			if diags[diagIdx].RuleName == "" {
				diags[diagIdx].RuleName = rr.Rule.Name()
			}
		}

		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	SortDiagnostics(result.Diagnostics)

	return result, nil
}

// SortDiagnostics orders diagnostics by position, then rule ID.
func SortDiagnostics(diags []Diagnostic) {
	slices.SortStableFunc(diags, func(a, b Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.StartLine, b.StartLine),
			cmp.Compare(a.StartColumn, b.StartColumn),
			cmp.Compare(a.RuleID, b.RuleID),
		)
	})
}
