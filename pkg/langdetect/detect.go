// Package langdetect decides which files jwslint should treat as Java.
// It uses go-enry for extension, vendoring and generated-code heuristics,
// falling back to Java-specific patterns and the enry classifier for
// files whose extension does not settle the question.
package langdetect

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language names returned by Detect.
const (
	LangJava    = "java"
	LangUnknown = "unknown"
)

// classifierCandidates are the JVM-family and C-family languages most often
// confused with Java when only content is available.
//
//nolint:gochecknoglobals // Read-only candidate list.
var classifierCandidates = []string{
	"Java", "Kotlin", "Scala", "Groovy", "C#", "C++", "C", "JavaScript", "TypeScript",
}

// patternScanLines bounds how much of a file the pattern check reads.
const patternScanLines = 50

// Detect returns the lowercase language name for a file, or "unknown".
func Detect(path string, content []byte) string {
	// Strategy 1: unambiguous extension.
	if lang, safe := enry.GetLanguageByExtension(filepath.Base(path)); safe && lang != "" {
		return normalize(lang)
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return LangUnknown
	}

	// Strategy 2: Java compilation-unit headers.
	if looksLikeJava(content) {
		return LangJava
	}

	// Strategy 3: classifier restricted to likely candidates.
	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return LangUnknown
}

// IsJava reports whether the file should be linted as Java.
func IsJava(path string, content []byte) bool {
	return Detect(path, content) == LangJava
}

// IsVendored reports whether path lies in a vendored or third-party tree.
func IsVendored(path string) bool {
	return enry.IsVendor(filepath.ToSlash(path))
}

// IsGenerated reports whether the file looks machine-generated.
func IsGenerated(path string, content []byte) bool {
	return enry.IsGenerated(filepath.ToSlash(path), content)
}

// looksLikeJava checks the first lines for a package or import declaration
// ending in a semicolon, which no other candidate language requires.
func looksLikeJava(content []byte) bool {
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for i := 0; i < patternScanLines && scanner.Scan(); i++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "/*") || strings.HasPrefix(line, "*") {
			continue
		}
		if strings.HasPrefix(line, "package ") || strings.HasPrefix(line, "import ") {
			return strings.HasSuffix(line, ";")
		}
		return false
	}
	return false
}

func normalize(lang string) string {
	return strings.ToLower(lang)
}
