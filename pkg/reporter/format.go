package reporter

import (
	"fmt"

	"github.com/yaklabco/jwslint/pkg/config"
)

// Format names an output format. The values mirror config.OutputFormat so a
// configured format converts directly.
type Format string

const (
	FormatText  = Format(config.FormatText)
	FormatJSON  = Format(config.FormatJSON)
	FormatSARIF = Format(config.FormatSARIF)
)

// ParseFormat converts s to a Format. The empty string selects text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	if f := Format(s); f.IsValid() {
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q; valid formats: text, json, sarif", s)
}

func (f Format) String() string { return string(f) }

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f == FormatText || f == FormatJSON || f == FormatSARIF
}
