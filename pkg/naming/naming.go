// Package naming derives Java identifiers and class names from JSON keys.
package naming

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize upper-cases the first rune of word and lower-cases the rest.
func Capitalize(word string) string {
	if word == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(word)
	// Casers hold state; build them per call so the helpers stay goroutine safe.
	return cases.Upper(language.Und).String(word[:size]) + cases.Lower(language.Und).String(word[size:])
}

// UpperFirst upper-cases the first rune of word and leaves the rest as is.
func UpperFirst(word string) string {
	if word == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(word)
	return cases.Upper(language.Und).String(word[:size]) + word[size:]
}

// CamelCase converts a snake_case key to camelCase. The first segment is kept
// verbatim, so keys that are already camelCase pass through unchanged.
func CamelCase(key string) string {
	parts := strings.Split(key, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		b.WriteString(Capitalize(p))
	}
	return b.String()
}

// PascalCase converts a snake_case key to PascalCase.
func PascalCase(key string) string {
	var b strings.Builder
	for _, p := range strings.Split(key, "_") {
		b.WriteString(Capitalize(p))
	}
	return b.String()
}

// Singular strips every trailing "s" from key. A key made only of "s"
// characters is returned unchanged.
func Singular(key string) string {
	trimmed := strings.TrimRight(key, "s")
	if trimmed == "" {
		return key
	}
	return trimmed
}

// ClassName derives the class name for an object held under key.
func ClassName(key string) string {
	return PascalCase(key)
}

// ElementClassName derives the class name for the objects of an array held
// under key.
func ElementClassName(key string) string {
	return PascalCase(Singular(key))
}

// ClassNameFromFile derives the root class name from an input file path:
// the base name without extension, with dashes and spaces treated as
// underscores.
func ClassNameFromFile(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("-", "_", " ", "_").Replace(base)
	return PascalCase(base)
}
