package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/jwslint/internal/logging"
	"github.com/yaklabco/jwslint/pkg/config"
	"github.com/yaklabco/jwslint/pkg/lint"
	"github.com/yaklabco/jwslint/pkg/lint/rules"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

type initFlags struct {
	force  bool
	full   bool
	format string
	output string
	pack   string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new jwslint configuration file",
		Long: `Create a new .jwslint.yml configuration file in the current directory.

Examples:
  jwslint init                      Create minimal .jwslint.yml
  jwslint init --full               Document every rule option with its default
  jwslint init --pack strict        Start from the strict rule pack
  jwslint init --format json        Create .jwslint.json instead
  jwslint init --output custom.yml  Write to a custom file path

Packs: ` + strings.Join(rules.PackNames(), ", "),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "generate a full template with all rule options documented")
	cmd.Flags().StringVar(&flags.format, "format", config.TemplateYAML, "output format: yaml or json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: .jwslint.yml or .jwslint.json)")
	cmd.Flags().StringVar(&flags.pack, "pack", "", "start from a rule pack: "+strings.Join(rules.PackNames(), ", "))

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive(cmd.OutOrStdout())

	if flags.format != config.TemplateYAML && flags.format != config.TemplateJSON {
		return fmt.Errorf("%w: invalid format %q: must be yaml or json", ErrUsage, flags.format)
	}
	if flags.pack != "" && flags.full {
		return fmt.Errorf("%w: --pack and --full cannot be combined", ErrUsage)
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".jwslint.yml"
		if flags.format == config.TemplateJSON {
			outputPath = ".jwslint.json"
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil && !flags.force {
		overwrite, err := confirmOverwrite(cmd, outputPath)
		if err != nil {
			return err
		}
		if !overwrite {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrUsage, outputPath)
		}
	}

	content, err := initContent(flags)
	if err != nil {
		return err
	}

	if err := os.WriteFile(absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldOutput, outputPath)
	logger.Info("run 'jwslint rules --options' to see every option")

	return nil
}

// initContent renders the configuration file to write.
func initContent(flags *initFlags) ([]byte, error) {
	if flags.pack == "" {
		infos := make([]config.RuleInfo, 0)
		for _, rule := range lint.DefaultRegistry.Rules() {
			infos = append(infos, lint.RuleInfo(rule))
		}

		content, err := config.GenerateTemplate(config.TemplateOptions{
			Full:   flags.full,
			Format: flags.format,
			Rules:  infos,
		})
		if err != nil {
			return nil, fmt.Errorf("generate template: %w", err)
		}
		return content, nil
	}

	pack := rules.PackByName(flags.pack)
	if pack == nil {
		return nil, fmt.Errorf("%w: unknown pack %q; available: %s",
			ErrUsage, flags.pack, strings.Join(rules.PackNames(), ", "))
	}

	cfg := config.Config{Rules: pack.Rules}

	if flags.format == config.TemplateJSON {
		content, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal pack: %w", err)
		}
		return append(content, '\n'), nil
	}

	body, err := cfg.ToYAML()
	if err != nil {
		return nil, fmt.Errorf("marshal pack: %w", err)
	}
	header := config.DefaultTemplateHeader() + "\n# Pack: " + pack.Name + " - " + pack.Description + "\n\n"
	return append([]byte(header), body...), nil
}

// confirmOverwrite asks before replacing path when stdin is a terminal.
// Non-interactive sessions never overwrite without --force.
func confirmOverwrite(cmd *cobra.Command, path string) (bool, error) {
	if !isTerminal(cmd.InOrStdin()) {
		return false, nil
	}

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s already exists. Overwrite? [y/N] ", path); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	response, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read response: %w", err)
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
