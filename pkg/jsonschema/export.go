// Package jsonschema exports a class model as a JSON Schema (Draft 2020-12),
// with one $defs entry per class.
package jsonschema

import (
	"github.com/invopop/jsonschema"

	"github.com/usestring/jackgen/pkg/classmodel"
	"github.com/usestring/jackgen/pkg/infer"
)

// DefsPrefix is the reference prefix of class definitions.
const DefsPrefix = "#/$defs/"

// ExportOptions controls schema export.
type ExportOptions struct {
	// StrictRequired marks a field required when every visited instance of
	// its class carried it. When false no field is required.
	// Default: true
	StrictRequired bool
	// AdditionalProperties sets additionalProperties on every class schema.
	// Default: nil (not set)
	AdditionalProperties *bool
	// MarkNullableAsOptional keeps fields that were ever null out of required.
	// Default: true
	MarkNullableAsOptional bool
}

// DefaultExportOptions returns the default export options.
func DefaultExportOptions() *ExportOptions {
	return &ExportOptions{
		StrictRequired:         true,
		AdditionalProperties:   nil,
		MarkNullableAsOptional: true,
	}
}

// FromModel builds the JSON Schema of the document the model was built from.
// An object document references the root class; an array document is an
// array of the root class. A model without classes yields an empty schema.
func FromModel(m *classmodel.Model, opts *ExportOptions) *jsonschema.Schema {
	if opts == nil {
		opts = DefaultExportOptions()
	}

	schema := &jsonschema.Schema{Version: jsonschema.Version}
	if m == nil || m.Len() == 0 {
		return schema
	}

	schema.Definitions = make(jsonschema.Definitions, m.Len())
	for _, c := range m.ClassList() {
		schema.Definitions[c.Name] = classSchema(c, opts)
	}

	if _, ok := m.Class(m.Root); !ok {
		return schema
	}
	root := &jsonschema.Schema{Ref: DefsPrefix + m.Root}
	if m.RootIsArray {
		schema.Type = "array"
		schema.Items = root
	} else {
		schema.Ref = root.Ref
	}
	return schema
}

func classSchema(c *classmodel.Class, opts *ExportOptions) *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Type:       "object",
		Title:      c.Name,
		Properties: jsonschema.NewProperties(),
	}

	var required []string
	for _, f := range c.FieldList() {
		prop := TypeSchema(f.Type)
		if f.Nullable {
			prop = &jsonschema.Schema{AnyOf: []*jsonschema.Schema{prop, {Type: "null"}}}
		}
		schema.Properties.Set(f.SourceKey, prop)

		if opts.StrictRequired && isRequired(f, c, opts.MarkNullableAsOptional) {
			required = append(required, f.SourceKey)
		}
	}
	if len(required) > 0 {
		schema.Required = required
	}

	if opts.AdditionalProperties != nil {
		if *opts.AdditionalProperties {
			schema.AdditionalProperties = jsonschema.TrueSchema
		} else {
			schema.AdditionalProperties = jsonschema.FalseSchema
		}
	}
	return schema
}

// isRequired reports whether every instance of c carried f.
func isRequired(f *classmodel.Field, c *classmodel.Class, markNullableAsOptional bool) bool {
	if f.Occurrences < c.Instances {
		return false
	}
	return !(markNullableAsOptional && f.Nullable)
}

// TypeSchema returns the schema of a single inferred type.
func TypeSchema(t infer.Type) *jsonschema.Schema {
	switch t.Kind {
	case infer.Boolean:
		return &jsonschema.Schema{Type: "boolean"}
	case infer.Integer:
		return &jsonschema.Schema{Type: "integer"}
	case infer.Double:
		return &jsonschema.Schema{Type: "number"}
	case infer.Date:
		return &jsonschema.Schema{Type: "string", Format: "date"}
	case infer.Time:
		return &jsonschema.Schema{Type: "string", Format: "time"}
	case infer.DateTime:
		return &jsonschema.Schema{Type: "string", Format: "date-time"}
	case infer.List:
		schema := &jsonschema.Schema{Type: "array"}
		if t.Elem != nil {
			schema.Items = TypeSchema(*t.Elem)
		}
		return schema
	case infer.Object:
		return &jsonschema.Schema{Ref: DefsPrefix + t.Class}
	}
	return &jsonschema.Schema{Type: "string"}
}
