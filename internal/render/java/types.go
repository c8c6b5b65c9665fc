package java

import (
	"strings"
	"unicode"

	"github.com/usestring/jackgen/pkg/infer"
)

// Imports of types outside java.lang.
const (
	importList          = "import java.util.List;"
	importLocalDate     = "import java.time.LocalDate;"
	importLocalTime     = "import java.time.LocalTime;"
	importLocalDateTime = "import java.time.LocalDateTime;"
	importJSONProperty  = "import com.fasterxml.jackson.annotation.JsonProperty;"
)

// TypeName returns the Java type of an inferred type.
func TypeName(t infer.Type) string {
	switch t.Kind {
	case infer.Boolean:
		return "Boolean"
	case infer.Integer:
		return "Integer"
	case infer.Double:
		return "Double"
	case infer.Date:
		return "LocalDate"
	case infer.Time:
		return "LocalTime"
	case infer.DateTime:
		return "LocalDateTime"
	case infer.List:
		if t.Elem == nil {
			return "List<Object>"
		}
		return "List<" + TypeName(*t.Elem) + ">"
	case infer.Object:
		return Identifier(t.Class)
	}
	return "String"
}

// typeImports adds the imports t needs to set.
func typeImports(t infer.Type, set map[string]bool) {
	if t.Kind == infer.List {
		set[importList] = true
	}
	switch t.Innermost().Kind {
	case infer.Date:
		set[importLocalDate] = true
	case infer.Time:
		set[importLocalTime] = true
	case infer.DateTime:
		set[importLocalDateTime] = true
	}
}

var javaKeywords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true, "byte": true,
	"case": true, "catch": true, "char": true, "class": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extends": true, "final": true, "finally": true, "float": true,
	"for": true, "goto": true, "if": true, "implements": true, "import": true,
	"instanceof": true, "int": true, "interface": true, "long": true, "native": true,
	"new": true, "package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true, "super": true,
	"switch": true, "synchronized": true, "this": true, "throw": true, "throws": true,
	"transient": true, "try": true, "void": true, "volatile": true, "while": true,
	"true": true, "false": true, "null": true, "_": true,
}

// Identifier turns a field name into a legal Java identifier: characters
// outside letters, digits, "_" and "$" become "_", a leading digit gets a
// "_" prefix and keywords get a "_" suffix.
func Identifier(name string) string {
	if name == "" {
		return "_field"
	}
	var b strings.Builder
	for i, r := range name {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
			b.WriteRune(r)
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteRune('_')
			}
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	id := b.String()
	if javaKeywords[id] {
		id += "_"
	}
	return id
}

var javaStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// javaString escapes s for use inside a Java string literal.
func javaString(s string) string {
	return javaStringEscaper.Replace(s)
}
