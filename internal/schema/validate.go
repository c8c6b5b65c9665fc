// Package schema validates JSON documents against the schema exported from a
// class model.
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	gojson "github.com/goccy/go-json"
	invopop "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/usestring/jackgen/pkg/types"
)

// resourceURL names the compiled schema inside the compiler.
const resourceURL = "schema.json"

// Validator validates JSON data against a compiled schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles an exported class-model schema.
func NewValidator(s *invopop.Schema) (*Validator, error) {
	if s == nil {
		return nil, errors.New("schema is required")
	}
	data, err := gojson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshaling schema: %w", err)
	}
	return NewValidatorFromJSON(data)
}

// NewValidatorFromJSON compiles a JSON Schema document.
func NewValidatorFromJSON(schemaJSON []byte) (*Validator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(resourceURL, doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}

	compiled, err := compiler.Compile(resourceURL)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}

	return &Validator{schema: compiled}, nil
}

// Validate validates raw JSON data against the schema.
func (v *Validator) Validate(data []byte) *types.ValidationResult {
	value, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return &types.ValidationResult{
			Valid:  false,
			Errors: []string{fmt.Sprintf("invalid JSON: %s", err.Error())},
		}
	}
	return v.ValidateValue(value)
}

// ValidateValue validates an already-decoded value. Numbers should be
// json.Number, as produced by jsonschema.UnmarshalJSON.
func (v *Validator) ValidateValue(value any) *types.ValidationResult {
	err := v.schema.Validate(value)
	if err == nil {
		return &types.ValidationResult{Valid: true}
	}

	return &types.ValidationResult{
		Valid:  false,
		Errors: extractValidationErrors(err),
	}
}

// Summary renders a one-line description of a result.
func Summary(r *types.ValidationResult) string {
	if r.Valid {
		return "document matches the generated classes"
	}
	return printer.Sprintf("document violates the generated classes in %d place(s)", len(r.Errors))
}

// extractValidationErrors extracts human-readable error messages from a validation error.
func extractValidationErrors(err error) []string {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		return extractDetailedErrors(validationErr)
	}
	return []string{err.Error()}
}

// printer is a default English printer for localized error messages.
var printer = message.NewPrinter(language.English)

// extractDetailedErrors flattens a ValidationError into "path: message"
// lines, deduplicated and sorted by path.
func extractDetailedErrors(err *jsonschema.ValidationError) []string {
	errorsByPath := make(map[string][]string)
	collectErrors(err, errorsByPath)

	paths := make([]string, 0, len(errorsByPath))
	for path := range errorsByPath {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var result []string
	for _, path := range paths {
		seen := make(map[string]bool)
		for _, msg := range errorsByPath[path] {
			if seen[msg] {
				continue
			}
			seen[msg] = true
			if path != "" {
				result = append(result, fmt.Sprintf("%s: %s", path, msg))
			} else {
				result = append(result, msg)
			}
		}
	}
	return result
}

// collectErrors recursively collects leaf errors (those without causes).
func collectErrors(err *jsonschema.ValidationError, errorsByPath map[string][]string) {
	instancePath := ""
	if len(err.InstanceLocation) > 0 {
		instancePath = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind != nil && len(err.Causes) == 0 {
		errMsg := err.ErrorKind.LocalizedString(printer)
		// $ref wrappers only point at the failing definition.
		if !strings.HasPrefix(errMsg, "$ref ") && !strings.HasPrefix(errMsg, "doesn't validate with") {
			errorsByPath[instancePath] = append(errorsByPath[instancePath], errMsg)
		}
	}

	for _, cause := range err.Causes {
		collectErrors(cause, errorsByPath)
	}
}
