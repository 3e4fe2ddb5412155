package srctext_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jwslint/pkg/srctext"
	"github.com/yaklabco/jwslint/pkg/syntax"
)

func TestOffset(t *testing.T) {
	t.Parallel()

	text := srctext.New([]string{"class A {", "  int x;", "}"}, "\n")

	tests := []struct {
		name string
		pos  syntax.Position
		want int
	}{
		{"first byte", syntax.Position{Line: 1, Column: 1}, 0},
		{"middle of first line", syntax.Position{Line: 1, Column: 7}, 6},
		{"second line start", syntax.Position{Line: 2, Column: 1}, 10},
		{"second line token", syntax.Position{Line: 2, Column: 3}, 12},
		{"exclusive end of line", syntax.Position{Line: 2, Column: 9}, 18},
		{"last line", syntax.Position{Line: 3, Column: 1}, 19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := text.Offset(tt.pos)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOffset_SeparatorLength(t *testing.T) {
	t.Parallel()

	lines := []string{"a;", "b;", "c;"}
	lf := srctext.New(lines, "\n")
	crlf := srctext.New(lines, "\r\n")
	assert.Equal(t, 8, lf.Len())
	assert.Equal(t, 10, crlf.Len())

	pos := syntax.Position{Line: 3, Column: 2}

	got, err := lf.Offset(pos)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Equal(t, byte(';'), strings.Join(lines, "\n")[got])

	got, err = crlf.Offset(pos)
	require.NoError(t, err)
	assert.Equal(t, 9, got)
	assert.Equal(t, byte(';'), strings.Join(lines, "\r\n")[got])
}

func TestOffset_OutOfRange(t *testing.T) {
	t.Parallel()

	text := srctext.New([]string{"ab", "c"}, "\n")

	for _, pos := range []syntax.Position{
		{Line: 0, Column: 1},
		{Line: 3, Column: 1},
		{Line: 1, Column: 0},
		{Line: 1, Column: 5},
		{Line: 2, Column: 4},
	} {
		_, err := text.Offset(pos)
		require.ErrorIs(t, err, srctext.ErrPositionOutOfRange, "position %s", pos)
	}
}

func TestSplitLines_KeepsCarriageReturn(t *testing.T) {
	t.Parallel()

	content := []byte("int a;\r\nint b;\r\n")
	text := srctext.New(srctext.SplitLines(content), srctext.LF)

	assert.Equal(t, len(content), text.Len())
	assert.Equal(t, 3, text.LineCount())
	assert.Equal(t, "int a;\r", text.Line(1))
	assert.Equal(t, "", text.Line(3))
	assert.Equal(t, "", text.Line(4))

	off, err := text.Offset(syntax.Position{Line: 2, Column: 5})
	require.NoError(t, err)
	assert.Equal(t, byte('b'), content[off])
}
