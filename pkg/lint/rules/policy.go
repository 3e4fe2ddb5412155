package rules

import (
	"github.com/yaklabco/jwslint/pkg/config"
	"github.com/yaklabco/jwslint/pkg/srctext"
	"github.com/yaklabco/jwslint/pkg/syntax"
)

// OptAllowLineBreaks is the option shared by every construct of a rule.
const OptAllowLineBreaks = "allow_line_breaks"

// construct is one row of a rule's policy table.
//
// Tree constructs are keyed by Kind; literal-token constructs have
// KindOther and are keyed by Text instead.
type construct struct {
	key         string
	kind        syntax.Kind
	text        string
	label       string
	enabled     bool
	side        srctext.Direction
	description string
}

// afterConstructs drives no-whitespace-after.
//
// Array access and array types are tested on the left of their bracket:
// "a [0]" and "int []" put the whitespace after the operand, not after
// the bracket.
//
//nolint:gochecknoglobals // Read-only policy table.
var afterConstructs = []construct{
	{key: "annotation", kind: syntax.KindAnnotation, label: "@", enabled: true, side: srctext.Right,
		description: "Annotation '@'"},
	{key: "array_access_expression", kind: syntax.KindArrayAccess, label: "ARRAY_ACCESS_EXPRESSION", enabled: true, side: srctext.Left,
		description: "Array access expression 'a[i]'"},
	{key: "array_type", kind: syntax.KindArrayType, label: "ARRAY_TYPE", enabled: true, side: srctext.Left,
		description: "Array type 'int[]'"},
	{key: "bitwise_complement", kind: syntax.KindBitwiseNot, label: "~", enabled: true, side: srctext.Right,
		description: "Bitwise complement '~'"},
	{key: "logical_complement", kind: syntax.KindLogicalNot, label: "!", enabled: true, side: srctext.Right,
		description: "Logical complement '!'"},
	{key: "member_select", kind: syntax.KindMemberSelect, label: ".", enabled: true, side: srctext.Right,
		description: "Member select '.'"},
	{key: "method_reference", kind: syntax.KindMethodReference, label: "::", enabled: false, side: srctext.Right,
		description: "Method reference '::'"},
	{key: "new_array", kind: syntax.KindArrayInitializer, label: "{", enabled: true, side: srctext.Right,
		description: "Array initializer '{'"},
	{key: "prefix_decrement", kind: syntax.KindPrefixDecrement, label: "--", enabled: true, side: srctext.Right,
		description: "Prefix decrement '--i'"},
	{key: "prefix_increment", kind: syntax.KindPrefixIncrement, label: "++", enabled: true, side: srctext.Right,
		description: "Prefix increment '++i'"},
	{key: "synchronized_statement", kind: syntax.KindSynchronized, label: "synchronized", enabled: false,
		side: srctext.Right, description: "Keyword 'synchronized'"},
	{key: "type_cast", kind: syntax.KindTypeCast, label: ")", enabled: false, side: srctext.Right,
		description: "Type cast '(T)'"},
	{key: "unary_minus", kind: syntax.KindUnaryMinus, label: "-", enabled: true, side: srctext.Right,
		description: "Unary minus '-i'"},
	{key: "unary_plus", kind: syntax.KindUnaryPlus, label: "+", enabled: true, side: srctext.Right,
		description: "Unary plus '+i'"},
}

//nolint:gochecknoglobals // Read-only policy table.
var beforeConstructs = []construct{
	{key: "comma", text: ",", label: ",", enabled: true, side: srctext.Left,
		description: "Comma ','"},
	{key: "semicolon", text: ";", label: ";", enabled: true, side: srctext.Left,
		description: "Semicolon ';'"},
	{key: "dot", text: ".", label: ".", enabled: false, side: srctext.Left,
		description: "Dot '.'"},
	{key: "ellipsis", text: "...", label: "...", enabled: true, side: srctext.Left,
		description: "Ellipsis '...'"},
	{key: "generic_start", text: "<", label: "<", enabled: false, side: srctext.Left,
		description: "Generic start '<'"},
	{key: "generic_end", text: ">", label: ">", enabled: false, side: srctext.Left,
		description: "Generic end '>'"},
	{key: "labeled_statement", kind: syntax.KindLabeledStatement, label: ":", enabled: true, side: srctext.Left,
		description: "Labeled statement ':'"},
	{key: "method_reference", kind: syntax.KindMethodReference, label: "::", enabled: true, side: srctext.Left,
		description: "Method reference '::'"},
	{key: "postfix_decrement", kind: syntax.KindPostfixDecrement, label: "--", enabled: true, side: srctext.Left,
		description: "Postfix decrement 'i--'"},
	{key: "postfix_increment", kind: syntax.KindPostfixIncrement, label: "++", enabled: true, side: srctext.Left,
		description: "Postfix increment 'i++'"},
}

// OptionSource supplies boolean options; *lint.RuleContext satisfies it.
type OptionSource interface {
	OptionBool(key string, defaultValue bool) bool
}

// Entry is the resolved policy for one construct.
type Entry struct {
	Enabled bool
	Label   string
	Side    srctext.Direction
}

// Policy is the resolved per-invocation configuration of one rule.
// It is built from the rule's options and never mutated afterwards.
type Policy struct {
	AllowLineBreaks bool

	kinds    map[syntax.Kind]Entry
	literals map[string]Entry
	order    []syntax.Kind
}

// newPolicy resolves table against opts. A nil opts yields the defaults.
func newPolicy(table []construct, opts OptionSource) *Policy {
	p := &Policy{
		AllowLineBreaks: optionBool(opts, OptAllowLineBreaks, true),
		kinds:           make(map[syntax.Kind]Entry),
		literals:        make(map[string]Entry),
	}

	for _, c := range table {
		entry := Entry{
			Enabled: optionBool(opts, c.key, c.enabled),
			Label:   c.label,
			Side:    c.side,
		}
		if c.text != "" {
			p.literals[c.text] = entry
			continue
		}
		p.kinds[c.kind] = entry
		p.order = append(p.order, c.kind)
	}

	return p
}

func optionBool(opts OptionSource, key string, def bool) bool {
	if opts == nil {
		return def
	}
	return opts.OptionBool(key, def)
}

// Kinds returns the tree construct kinds the policy covers.
func (p *Policy) Kinds() []syntax.Kind {
	return p.order
}

// Kind returns the entry for a tree construct.
func (p *Policy) Kind(k syntax.Kind) (Entry, bool) {
	e, ok := p.kinds[k]
	return e, ok
}

// Literal returns the entry for a literal token construct.
func (p *Policy) Literal(text string) (Entry, bool) {
	e, ok := p.literals[text]
	return e, ok
}

// HasLiterals reports whether the policy covers any literal tokens.
func (p *Policy) HasLiterals() bool {
	return len(p.literals) > 0
}

// optionInfos documents a policy table for rule metadata and templates.
func optionInfos(table []construct) []config.OptionInfo {
	infos := make([]config.OptionInfo, 0, len(table)+1)
	infos = append(infos, config.OptionInfo{
		Key:         OptAllowLineBreaks,
		Default:     true,
		Description: "Allow the token to be separated by a line break",
	})
	for _, c := range table {
		infos = append(infos, config.OptionInfo{
			Key:         c.key,
			Default:     c.enabled,
			Description: c.description,
		})
	}
	return infos
}
