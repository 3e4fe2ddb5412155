package cli

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yaklabco/jwslint/internal/logging"
	"github.com/yaklabco/jwslint/pkg/config"
	"github.com/yaklabco/jwslint/pkg/lint"
	"github.com/yaklabco/jwslint/pkg/lint/rules"
)

type rulesFlags struct {
	ruleFormat string
	format     string
	options    bool
}

const (
	formatText = "text"
	formatJSON = "json"
	formatHTML = "html"
)

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Aliases     []string     `json:"aliases,omitempty"`
	Description string       `json:"description"`
	Severity    string       `json:"severity"`
	Enabled     bool         `json:"enabled"`
	Tags        []string     `json:"tags,omitempty"`
	Options     []optionInfo `json:"options,omitempty"`
}

type optionInfo struct {
	Key         string `json:"key"`
	Default     bool   `json:"default"`
	Description string `json:"description"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules [rule...]",
		Short: "List available lint rules",
		Long: `List the available lint rules with their IDs, names, default severity
and options. Rules may be selected by ID, name or Checkstyle check name.

Examples:
  jwslint rules                         List all rules
  jwslint rules --options               Include every option and its default
  jwslint rules JW002 --format json     Describe one rule as JSON
  jwslint rules --format html > rules.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := selectRules(lint.DefaultRegistry, args)
			if err != nil {
				return err
			}
			return writeRules(cmd.OutOrStdout(), lint.DefaultRegistry, selected, flags)
		},
	}

	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.format, "format", formatText,
		"output format: text, json, html")
	cmd.Flags().BoolVar(&flags.options, "options", false, "list each rule's options (text format)")

	return cmd
}

// selectRules returns the rules named by keys, or every rule when keys is empty.
func selectRules(registry *lint.Registry, keys []string) ([]lint.Rule, error) {
	if len(keys) == 0 {
		return registry.Rules(), nil
	}

	selected := make([]lint.Rule, 0, len(keys))
	for _, key := range keys {
		_, rule, ok := registry.Resolve(key)
		if !ok {
			return nil, fmt.Errorf("%w: unknown rule %q", ErrUsage, key)
		}
		selected = append(selected, rule)
	}
	return selected, nil
}

func writeRules(w io.Writer, registry *lint.Registry, selected []lint.Rule, flags *rulesFlags) error {
	switch flags.format {
	case formatJSON:
		return writeRulesJSON(w, registry, selected)
	case formatHTML:
		return writeRulesHTML(w, selected)
	case formatText, "":
		writeRulesText(w, selected, config.RuleFormat(flags.ruleFormat), flags.options)
		return nil
	default:
		return fmt.Errorf("%w: invalid format %q; must be text, json or html", ErrUsage, flags.format)
	}
}

func writeRulesText(w io.Writer, selected []lint.Rule, ruleFormat config.RuleFormat, withOptions bool) {
	logger := logging.NewWithWriter(w, "info")

	for _, rule := range selected {
		logger.Info(config.FormatRuleID(ruleFormat, rule.ID(), rule.Name()),
			logging.FieldSeverity, rule.DefaultSeverity(),
			logging.FieldDescription, rule.Description(),
		)

		if !withOptions {
			continue
		}
		if c, ok := rule.(lint.Configurable); ok {
			for _, opt := range c.Options() {
				logger.Info("  "+opt.Key,
					logging.FieldDefault, strconv.FormatBool(opt.Default),
					logging.FieldDescription, opt.Description,
				)
			}
		}
	}
}

func writeRulesJSON(w io.Writer, registry *lint.Registry, selected []lint.Rule) error {
	infos := make([]ruleInfo, 0, len(selected))
	for _, rule := range selected {
		meta := lint.RuleInfo(rule)
		info := ruleInfo{
			ID:          meta.ID,
			Name:        meta.Name,
			Aliases:     registry.AliasesFor(meta.ID),
			Description: meta.Description,
			Severity:    string(meta.Severity),
			Enabled:     meta.Enabled,
			Tags:        meta.Tags,
		}
		for _, opt := range meta.Options {
			info.Options = append(info.Options, optionInfo{
				Key:         opt.Key,
				Default:     opt.Default,
				Description: opt.Description,
			})
		}
		infos = append(infos, info)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}

func writeRulesHTML(w io.Writer, selected []lint.Rule) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>jwslint rules</title></head>\n<body>\n"); err != nil {
		return fmt.Errorf("write html: %w", err)
	}

	for _, rule := range selected {
		body, err := rules.RenderHTML(rule)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<section id=%q>\n<h2>%s <small>%s</small></h2>\n%s</section>\n",
			rule.ID(), html.EscapeString(rule.Name()), html.EscapeString(rule.ID()), body); err != nil {
			return fmt.Errorf("write html: %w", err)
		}
	}

	if _, err := io.WriteString(w, "</body>\n</html>\n"); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}
