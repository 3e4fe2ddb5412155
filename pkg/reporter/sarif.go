package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/yaklabco/jwslint/pkg/config"
	"github.com/yaklabco/jwslint/pkg/lint"
	"github.com/yaklabco/jwslint/pkg/runner"
)

// SARIF version used by this reporter.
const sarifVersion = "2.1.0"

// SARIF schema URI.
const sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

const (
	sarifToolName       = "jwslint"
	sarifInformationURI = "https://github.com/yaklabco/jwslint"
)

// SARIFOutput represents the root SARIF document.
type SARIFOutput struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun represents a single analysis run.
type SARIFRun struct {
	Tool      SARIFTool       `json:"tool"`
	Artifacts []SARIFArtifact `json:"artifacts,omitempty"`
	Results   []SARIFResult   `json:"results"`
}

// SARIFTool describes the analysis tool.
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver contains tool metadata and rules.
type SARIFDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version,omitempty"`
	InformationURI string      `json:"informationUri"`
	Rules          []SARIFRule `json:"rules"`
}

// SARIFRule describes a rule (linter check).
type SARIFRule struct {
	ID               string                `json:"id"`
	Name             string                `json:"name,omitempty"`
	ShortDescription SARIFMultiformatText  `json:"shortDescription"`
	FullDescription  *SARIFMultiformatText `json:"fullDescription,omitempty"`
	Help             *SARIFMultiformatText `json:"help,omitempty"`
	DefaultConfig    *SARIFRuleConfig      `json:"defaultConfiguration,omitempty"`
	Properties       map[string]any        `json:"properties,omitempty"`
}

// SARIFMultiformatText contains text in multiple formats.
type SARIFMultiformatText struct {
	Text     string `json:"text"`
	Markdown string `json:"markdown,omitempty"`
}

// SARIFRuleConfig contains rule configuration.
type SARIFRuleConfig struct {
	Enabled bool   `json:"enabled"`
	Level   string `json:"level"`
}

// SARIFArtifact describes a file that was analyzed.
type SARIFArtifact struct {
	Location SARIFArtifactLocation `json:"location"`
	Length   int64                 `json:"length,omitempty"`
	Hashes   map[string]string     `json:"hashes,omitempty"`
}

// SARIFResult represents a single diagnostic result.
type SARIFResult struct {
	RuleID    string          `json:"ruleId"`
	RuleIndex int             `json:"ruleIndex"`
	Level     string          `json:"level"`
	Message   SARIFMessage    `json:"message"`
	Locations []SARIFLocation `json:"locations"`
}

// SARIFMessage contains the result message.
type SARIFMessage struct {
	Text string `json:"text"`
}

// SARIFLocation describes a code location.
type SARIFLocation struct {
	PhysicalLocation SARIFPhysicalLocation `json:"physicalLocation"`
}

// SARIFPhysicalLocation contains file path and region.
type SARIFPhysicalLocation struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Region           SARIFRegion           `json:"region"`
}

// SARIFArtifactLocation contains the file URI.
type SARIFArtifactLocation struct {
	URI   string `json:"uri"`
	Index *int   `json:"index,omitempty"`
}

// SARIFRegion describes the affected text region.
type SARIFRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
	EndLine     int `json:"endLine,omitempty"`
	EndColumn   int `json:"endColumn,omitempty"`
}

// SARIFReporter formats results as SARIF.
type SARIFReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewSARIFReporter creates a new SARIF reporter.
func NewSARIFReporter(opts Options) *SARIFReporter {
	return &SARIFReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SARIFReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode SARIF: %w", err)
	}

	return len(output.Runs[0].Results), nil
}

func (r *SARIFReporter) buildOutput(result *runner.Result) *SARIFOutput {
	rules, ruleIndex := r.buildRules()

	run := SARIFRun{
		Tool: SARIFTool{
			Driver: SARIFDriver{
				Name:           sarifToolName,
				Version:        r.opts.ToolVersion,
				InformationURI: sarifInformationURI,
				Rules:          rules,
			},
		},
		Results: make([]SARIFResult, 0),
	}

	if result != nil {
		for _, file := range result.Files {
			if file.Result == nil {
				continue
			}

			uri := filepath.ToSlash(r.opts.displayPath(file.Path))
			artifactIdx := len(run.Artifacts)
			artifact := SARIFArtifact{Location: SARIFArtifactLocation{URI: uri}}
			if info := file.Result.Info; info != nil {
				artifact.Length = info.Size
				artifact.Hashes = map[string]string{"sha-256": info.HashHex()}
			}
			run.Artifacts = append(run.Artifacts, artifact)

			if file.Result.FileResult == nil {
				continue
			}

			for _, diag := range file.Result.Diagnostics {
				idx, ok := ruleIndex[diag.RuleID]
				if !ok {
					// Rule unknown to the registry; describe it from the diagnostic.
					idx = len(run.Tool.Driver.Rules)
					ruleIndex[diag.RuleID] = idx
					run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, SARIFRule{
						ID:               diag.RuleID,
						Name:             diag.RuleName,
						ShortDescription: SARIFMultiformatText{Text: diag.RuleName},
					})
				}

				run.Results = append(run.Results, SARIFResult{
					RuleID:    diag.RuleID,
					RuleIndex: idx,
					Level:     severityToSARIFLevel(diag.Severity),
					Message:   SARIFMessage{Text: diag.Message},
					Locations: []SARIFLocation{{
						PhysicalLocation: SARIFPhysicalLocation{
							ArtifactLocation: SARIFArtifactLocation{URI: uri, Index: &artifactIdx},
							Region: SARIFRegion{
								StartLine:   diag.StartLine,
								StartColumn: diag.StartColumn,
								EndLine:     diag.EndLine,
								EndColumn:   diag.EndColumn,
							},
						},
					}},
				})
			}
		}
	}

	return &SARIFOutput{
		Schema:  sarifSchemaURI,
		Version: sarifVersion,
		Runs:    []SARIFRun{run},
	}
}

// buildRules describes every registered rule, in ID order.
func (r *SARIFReporter) buildRules() ([]SARIFRule, map[string]int) {
	registered := r.opts.registry().Rules()
	rules := make([]SARIFRule, 0, len(registered))
	index := make(map[string]int, len(registered))

	for _, rule := range registered {
		sr := SARIFRule{
			ID:               rule.ID(),
			Name:             rule.Name(),
			ShortDescription: SARIFMultiformatText{Text: rule.Description()},
			DefaultConfig: &SARIFRuleConfig{
				Enabled: rule.DefaultEnabled(),
				Level:   severityToSARIFLevel(rule.DefaultSeverity()),
			},
		}
		if tags := rule.Tags(); len(tags) > 0 {
			sr.Properties = map[string]any{"tags": tags}
		}
		if d, ok := rule.(lint.Documented); ok {
			if docs := d.Docs(); docs != "" {
				sr.FullDescription = &SARIFMultiformatText{Text: rule.Description(), Markdown: docs}
				sr.Help = &SARIFMultiformatText{Text: rule.Description(), Markdown: docs}
			}
		}

		index[sr.ID] = len(rules)
		rules = append(rules, sr)
	}

	return rules, index
}

// severityToSARIFLevel converts a severity to a SARIF level.
func severityToSARIFLevel(severity config.Severity) string {
	switch severity {
	case config.SeverityError:
		return "error"
	case config.SeverityWarning:
		return "warning"
	case config.SeverityInfo:
		return "note"
	default:
		return "warning"
	}
}
