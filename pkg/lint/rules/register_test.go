package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jwslint/pkg/lint"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	reg := lint.NewRegistry()
	Register(reg)

	assert.Equal(t, []string{"JW001", "JW002"}, reg.IDs())

	tests := []struct {
		key  string
		want string
	}{
		{"JW001", "JW001"},
		{"no-whitespace-after", "JW001"},
		{"NoWhitespaceAfter", "JW001"},
		{"JW002", "JW002"},
		{"no-whitespace-before", "JW002"},
		{"NoWhitespaceBefore", "JW002"},
	}

	for _, tt := range tests {
		id, rule, ok := reg.Resolve(tt.key)
		require.True(t, ok, "Resolve(%q)", tt.key)
		assert.Equal(t, tt.want, id)
		assert.Equal(t, tt.want, rule.ID())
	}

	assert.Equal(t, []string{"NoWhitespaceAfter"}, reg.AliasesFor("JW001"))
}

func TestDefaultRegistryPopulated(t *testing.T) {
	t.Parallel()

	_, ok := lint.DefaultRegistry.GetByName("no-whitespace-before")
	assert.True(t, ok)
}

func TestRuleOptions(t *testing.T) {
	t.Parallel()

	after := NewNoWhitespaceAfterRule().Options()
	require.Len(t, after, len(afterConstructs)+1)
	assert.Equal(t, OptAllowLineBreaks, after[0].Key)
	assert.True(t, after[0].Default)

	defaults := make(map[string]bool)
	for _, opt := range after {
		defaults[opt.Key] = opt.Default
	}
	assert.False(t, defaults["method_reference"])
	assert.False(t, defaults["synchronized_statement"])
	assert.False(t, defaults["type_cast"])
	assert.True(t, defaults["array_type"])

	before := NewNoWhitespaceBeforeRule().Options()
	defaults = make(map[string]bool)
	for _, opt := range before {
		defaults[opt.Key] = opt.Default
	}
	assert.False(t, defaults["dot"])
	assert.False(t, defaults["generic_start"])
	assert.False(t, defaults["generic_end"])
	assert.True(t, defaults["labeled_statement"])
	assert.True(t, defaults["method_reference"])
}

func TestRenderHTML(t *testing.T) {
	t.Parallel()

	html, err := RenderHTML(NewNoWhitespaceAfterRule())
	require.NoError(t, err)

	assert.Contains(t, html, "<h1>JW001: no-whitespace-after</h1>")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<code>allow_line_breaks</code>")
	assert.True(t, strings.Contains(html, "<pre><code class=\"language-java\">"))
}
