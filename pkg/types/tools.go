package types

import (
	"github.com/usestring/jackgen/pkg/jsonschema"
)

// InferClassesOutput is the output of jackgen_infer_classes.
type InferClassesOutput struct {
	RootClass   string                 `json:"root_class"`
	RootIsArray bool                   `json:"root_is_array,omitempty"`
	ClassCount  int                    `json:"class_count"`
	Classes     []ClassView            `json:"classes,omitempty"`
	Conflicts   []ConflictView         `json:"conflicts,omitempty"`
	FieldStats  []jsonschema.FieldStat `json:"field_stats,omitempty"`
	Optional    []string               `json:"optional_fields,omitempty"` // Class.field paths missing from some instances
	Schema      any                    `json:"schema,omitempty"`
	Sample      string                 `json:"sample,omitempty"` // shortened modeled document
	Hint        string                 `json:"hint,omitempty"`
}

// GeneratedFile describes one rendered Java class.
type GeneratedFile struct {
	Class       string `json:"class"`
	FileName    string `json:"file_name"`
	Path        string `json:"path,omitempty"`         // set when written to disk
	ResourceURI string `json:"resource_uri,omitempty"` // full source, served as a resource
	Content     string `json:"content,omitempty"`      // source, when requested inline
}

// GenerateClassesOutput is the output of jackgen_generate_classes.
type GenerateClassesOutput struct {
	RootClass  string            `json:"root_class"`
	Package    string            `json:"package"`
	OutputDir  string            `json:"output_dir,omitempty"`
	Files      []GeneratedFile   `json:"files,omitempty"`
	Conflicts  []ConflictView    `json:"conflicts,omitempty"`
	Validation *ValidationResult `json:"validation,omitempty"`
	Hint       string            `json:"hint,omitempty"`
}

// ValidateSampleOutput is the output of jackgen_validate_sample.
type ValidateSampleOutput struct {
	Valid      bool     `json:"valid"`
	Summary    string   `json:"summary"`
	Errors     []string `json:"errors,omitempty"`
	RootClass  string   `json:"root_class"`
	ClassCount int      `json:"class_count"`
	Hint       string   `json:"hint,omitempty"`
}

// OptionalPaths lists the Class.field paths of the fields some instances
// lacked.
func OptionalPaths(stats []jsonschema.FieldStat) []string {
	optional := jsonschema.OptionalFields(stats)
	if len(optional) == 0 {
		return nil
	}
	paths := make([]string, 0, len(optional))
	for _, s := range optional {
		paths = append(paths, s.Path)
	}
	return paths
}
