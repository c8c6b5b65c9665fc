// Package prompts contains MCP prompt implementations for jackgen.
package prompts

// Config holds configuration needed by prompts.
type Config struct {
	DefaultPackage string
	DefaultAccess  string
}
