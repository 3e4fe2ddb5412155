package lint

import (
	"context"

	"github.com/yaklabco/jwslint/pkg/config"
	"github.com/yaklabco/jwslint/pkg/syntax"
)

// RuleContext is what a rule sees during one Apply call: the parsed file,
// the run configuration and the rule's own settings.
//
// It is created per rule invocation, so the context.Context travels as a
// field and rules poll Cancelled between constructs.
type RuleContext struct {
	Ctx        context.Context
	File       *syntax.File
	Root       *syntax.Node // File.Root
	Config     *config.Config
	RuleConfig *config.RuleConfig // nil when the rule is not configured
	Registry   *Registry
}

// NewRuleContext creates a RuleContext for file. Registry is left for the
// engine to fill in.
func NewRuleContext(
	ctx context.Context,
	file *syntax.File,
	cfg *config.Config,
	ruleCfg *config.RuleConfig,
) *RuleContext {
	rc := &RuleContext{Ctx: ctx, File: file, Config: cfg, RuleConfig: ruleCfg}
	if file != nil {
		rc.Root = file.Root
	}
	return rc
}

// Cancelled reports whether Ctx is done.
func (rc *RuleContext) Cancelled() bool {
	return rc.Ctx != nil && rc.Ctx.Err() != nil
}

// Option returns the configured value of key, or defaultValue.
func (rc *RuleContext) Option(key string, defaultValue any) any {
	if rc.RuleConfig == nil {
		return defaultValue
	}
	if v, ok := rc.RuleConfig.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionBool returns the boolean option key. Missing and non-boolean values
// yield defaultValue.
func (rc *RuleContext) OptionBool(key string, defaultValue bool) bool {
	if b, ok := rc.Option(key, defaultValue).(bool); ok {
		return b
	}
	return defaultValue
}
