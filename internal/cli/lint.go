package cli

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/jwslint/internal/configloader"
	"github.com/yaklabco/jwslint/internal/logging"
	"github.com/yaklabco/jwslint/internal/ui/pretty"
	"github.com/yaklabco/jwslint/pkg/config"
	"github.com/yaklabco/jwslint/pkg/lint"
	"github.com/yaklabco/jwslint/pkg/parser/treesitter"
	"github.com/yaklabco/jwslint/pkg/reporter"
	"github.com/yaklabco/jwslint/pkg/runner"
)

type lintFlags struct {
	format          string
	ruleFormat      string
	jobs            int
	ignore          []string
	include         []string
	extensions      []string
	enable          []string
	disable         []string
	severity        string
	strict          bool
	noContext       bool
	noSummary       bool
	detailed        bool
	compact         bool
	noGitignore     bool
	includeVendored bool
	includeGen      bool
	followSymlinks  bool
}

func newLintCommand(info BuildInfo) *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint Java source files",
		Long:  lintLongDescription + "\n\n" + envHelp(),
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags, info)
		},
	}

	addLintFlags(cmd, flags)

	return cmd
}

const lintLongDescription = `Lint Java files for whitespace next to tokens.

By default, lints all .java files in the current directory and its
subdirectories, honouring .gitignore and .jwslintignore. Specify paths to
lint specific files or directories.

Examples:
  jwslint lint                           # Lint current directory
  jwslint lint src/main/java             # Lint one source tree
  jwslint lint Foo.java                  # Lint a single file
  jwslint lint --disable JW002           # Only check whitespace after tokens
  jwslint lint --format sarif > out.sarif
  jwslint lint --strict                  # Fail on warnings too`

func runLint(cmd *cobra.Command, args []string, flags *lintFlags, info BuildInfo) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.Default()
	ctx = logging.WithLogger(ctx, logger)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = pretty.ColorAuto
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliConfig(cmd, flags),
	})
	if err != nil {
		return fmt.Errorf("%w: load configuration: %w", ErrUsage, err)
	}

	cfg := loadResult.Config
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldConfig, loadResult.LoadedFrom)
	}

	logger.Debug("configuration resolved",
		logging.FieldFormat, cfg.Format,
		logging.FieldJobs, cfg.Jobs,
	)

	registry := lint.DefaultRegistry
	resolved := lint.ResolveRules(registry, cfg)
	logger.Debug("rules resolved", logging.FieldRule, ruleIDs(resolved))

	lintRunner := runner.New(lint.NewPipeline(lint.NewEngine(treesitter.New(), registry)))

	runOpts := runner.OptionsFromConfig(cfg, args)
	runOpts.WorkingDir = workDir
	runOpts.IncludeGlobs = flags.include
	runOpts.FollowSymlinks = flags.followSymlinks

	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("lint run failed: %w", err)
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:          cmd.OutOrStdout(),
		Format:          format,
		Color:           colorMode,
		ShowContext:     !flags.noContext,
		ShowSummary:     !flags.noSummary,
		DetailedSummary: flags.detailed,
		GroupByFile:     true,
		Compact:         flags.compact,
		RuleFormat:      cfg.RuleFormat,
		WorkingDir:      workDir,
		Registry:        registry,
		ToolVersion:     info.Version,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	logger.Debug("lint run finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesSkipped, result.Stats.FilesSkipped,
		logging.FieldFilesWithIssues, result.Stats.FilesWithIssues,
		logging.FieldDiagnosticsTotal, result.Stats.DiagnosticsTotal,
	)

	if ResultFails(result, flags.strict) {
		return ErrLintIssuesFound
	}

	return nil
}

// cliConfig builds the highest-precedence configuration layer from the flags
// the user actually set.
func cliConfig(cmd *cobra.Command, flags *lintFlags) *config.Config {
	changed := cmd.Flags().Changed
	cfg := &config.Config{}

	if changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if changed("rule-format") {
		cfg.RuleFormat = config.RuleFormat(flags.ruleFormat)
	}
	if changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	if changed("severity") {
		cfg.SeverityDefault = flags.severity
	}
	if changed("ignore") {
		cfg.Ignore = flags.ignore
	}
	if changed("ext") {
		cfg.Extensions = flags.extensions
	}

	cfg.EnableRules = flags.enable
	cfg.DisableRules = flags.disable
	cfg.NoGitignore = flags.noGitignore
	cfg.IncludeVendored = flags.includeVendored
	cfg.IncludeGenerated = flags.includeGen

	return cfg
}

// envHelp lists the JWSLINT_* variables the lint command reads.
func envHelp() string {
	vars := configloader.ListEnvVars()
	names := slices.Sorted(maps.Keys(vars))

	var b strings.Builder
	b.WriteString("Environment:")
	for _, name := range names {
		fmt.Fprintf(&b, "\n  %-28s %s", name, vars[name])
	}
	return b.String()
}

func ruleIDs(resolved []lint.ResolvedRule) []string {
	ids := make([]string, 0, len(resolved))
	for _, rr := range resolved {
		ids = append(ids, rr.Rule.ID())
	}
	return ids
}

func addLintFlags(cmd *cobra.Command, flags *lintFlags) {
	fs := cmd.Flags()

	fs.StringVar(&flags.format, "format", "text", "output format: text, json, sarif")
	fs.StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
	fs.IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	fs.StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	fs.StringSliceVar(&flags.include, "include", nil, "only lint files matching these glob patterns")
	fs.StringSliceVar(&flags.extensions, "ext", nil, "file extensions to lint (default .java)")
	fs.StringSliceVar(&flags.enable, "enable", nil, "rules to enable (ID, name or Checkstyle name)")
	fs.StringSliceVar(&flags.disable, "disable", nil, "rules to disable (ID, name or Checkstyle name)")
	fs.StringVar(&flags.severity, "severity", "", "severity for all rules: error, warning, info")
	fs.BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	fs.BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	fs.BoolVar(&flags.noSummary, "no-summary", false, "omit the summary line")
	fs.BoolVar(&flags.detailed, "detailed-summary", false, "print a summary block instead of one line")
	fs.BoolVar(&flags.compact, "compact", false, "minify JSON and SARIF output")
	fs.BoolVar(&flags.noGitignore, "no-gitignore", false, "do not read .gitignore files")
	fs.BoolVar(&flags.includeVendored, "include-vendored", false, "lint files in vendored directories")
	fs.BoolVar(&flags.includeGen, "include-generated", false, "lint files that look generated")
	fs.BoolVar(&flags.followSymlinks, "follow-symlinks", false, "follow symbolic links to directories")
}
