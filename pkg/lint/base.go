package lint

import (
	"slices"

	"github.com/yaklabco/jwslint/pkg/config"
)

// BaseRule carries a rule's static metadata. Concrete rules embed it and
// supply Apply; the embedded Apply reports nothing.
type BaseRule struct {
	id, name, desc string
	tags           []string
}

// NewBaseRule returns metadata for a rule that is enabled by default and
// reports warnings.
func NewBaseRule(id, name, desc string, tags []string) BaseRule {
	return BaseRule{id: id, name: name, desc: desc, tags: slices.Clone(tags)}
}

func (r *BaseRule) ID() string                       { return r.id }
func (r *BaseRule) Name() string                     { return r.name }
func (r *BaseRule) Description() string              { return r.desc }
func (r *BaseRule) Tags() []string                   { return r.tags }
func (r *BaseRule) DefaultEnabled() bool             { return true }
func (r *BaseRule) DefaultSeverity() config.Severity { return config.SeverityWarning }

func (r *BaseRule) Apply(_ *RuleContext) ([]Diagnostic, error) {
	return nil, nil
}
