package rules

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/yaklabco/jwslint/pkg/lint"
)

const noWhitespaceAfterDocs = "Checks that there is no whitespace after a token. " +
	"A token may be followed by a line break when `allow_line_breaks` is set.\n\n" +
	"Array access and array type brackets are checked on their left side, so " +
	"`a [0]` and `int []x` are reported. A bracket that directly follows an " +
	"annotation, as in `String @NonNull [] a`, is never reported. A type cast " +
	"whose parentheses sit on different lines counts as a line break.\n\n" +
	"## Examples\n\n" +
	"```java\n" +
	"a = ~ a;               // '~' is followed by whitespace.\n" +
	"Integer. parseInt(s);  // '.' is followed by whitespace.\n" +
	"int []b;               // 'ARRAY_TYPE' is followed by whitespace.\n" +
	"a = ~a;                // ok\n" +
	"```\n"

const noWhitespaceBeforeDocs = "Checks that there is no whitespace before a token. " +
	"A token may start its own line when `allow_line_breaks` is set.\n\n" +
	"Angle brackets are only checked in type argument and type parameter " +
	"lists. The separators of an empty `for (;;)` header are never reported.\n\n" +
	"## Examples\n\n" +
	"```java\n" +
	"int b ;                // ';' is preceded by whitespace.\n" +
	"a ++;                  // '++' is preceded by whitespace.\n" +
	"outer : while (true)   // ':' is preceded by whitespace.\n" +
	"for ( ; ; ) {}         // ok\n" +
	"```\n"

// ruleDocs assembles a rule's Markdown page from its metadata and body.
func ruleDocs(rule lint.Rule, body string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s: %s\n\n", rule.ID(), rule.Name())
	fmt.Fprintf(&b, "%s.\n\n", rule.Description())
	b.WriteString(body)

	if c, ok := rule.(lint.Configurable); ok {
		b.WriteString("\n## Options\n\n")
		b.WriteString("| Option | Default | Description |\n")
		b.WriteString("|---|---|---|\n")
		for _, opt := range c.Options() {
			fmt.Fprintf(&b, "| `%s` | `%t` | %s |\n", opt.Key, opt.Default, opt.Description)
		}
	}

	return b.String()
}

// RenderHTML renders the documentation of rule as an HTML fragment.
// Rules without documentation render their description only.
func RenderHTML(rule lint.Rule) (string, error) {
	source := rule.Description()
	if d, ok := rule.(lint.Documented); ok {
		source = d.Docs()
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render %s docs: %w", rule.ID(), err)
	}

	return buf.String(), nil
}
