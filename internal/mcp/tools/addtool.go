package tools

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// AddTool registers a tool after checking that the zero value of its output
// type satisfies the schema the SDK infers for it.
//
// Panics if the check fails, so a bad output type is caught at startup.
func AddTool[In, Out any](srv *sdkmcp.Server, t *sdkmcp.Tool, h sdkmcp.ToolHandlerFor[In, Out]) {
	CheckOutputSchema[Out](t.Name)
	sdkmcp.AddTool(srv, t, h)
}

// CheckOutputSchema validates the zero value of T against the JSON schema
// inferred from T.
//
// The SDK encodes results with encoding/json, which writes nil slices as
// null, while the inferred schema says "array". Slice fields therefore need
// omitempty or omitzero. json.RawMessage fields are rejected as well: they
// encode as arbitrary JSON but are inferred as arrays of bytes.
//
// Output type any is not checked, and inference failures are left for the
// SDK to report.
func CheckOutputSchema[T any](toolName string) {
	rt := reflect.TypeFor[T]()
	if rt == reflect.TypeFor[any]() {
		return
	}
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}

	if paths := rawMessagePaths(rt, "", map[reflect.Type]bool{}); len(paths) > 0 {
		panic(fmt.Sprintf(
			"AddTool %q: output type %s uses json.RawMessage at %s; use any and convert with types.ToAny",
			toolName, rt, strings.Join(paths, ", "),
		))
	}

	schema, err := jsonschema.ForType(rt, &jsonschema.ForOptions{})
	if err != nil {
		return
	}
	resolved, err := schema.Resolve(&jsonschema.ResolveOptions{})
	if err != nil {
		return
	}

	data, err := json.Marshal(reflect.Zero(rt).Interface())
	if err != nil {
		return
	}
	var zero map[string]any
	if err := json.Unmarshal(data, &zero); err != nil {
		return
	}

	if err := resolved.Validate(&zero); err != nil {
		panic(fmt.Sprintf(
			"AddTool %q: zero value of output type %s fails its schema: %v (JSON: %s); add omitempty to slice fields",
			toolName, rt, err, data,
		))
	}
}

var rawMessageType = reflect.TypeFor[json.RawMessage]()

// rawMessagePaths lists the dotted paths under t that hold json.RawMessage.
func rawMessagePaths(t reflect.Type, path string, visiting map[reflect.Type]bool) []string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == rawMessageType {
		return []string{path}
	}
	if visiting[t] {
		return nil
	}
	visiting[t] = true
	defer delete(visiting, t)

	join := func(elem string) string {
		if path == "" {
			return elem
		}
		return path + "." + elem
	}

	var found []string
	switch t.Kind() {
	case reflect.Struct:
		for i := range t.NumField() {
			f := t.Field(i)
			if f.IsExported() {
				found = append(found, rawMessagePaths(f.Type, join(f.Name), visiting)...)
			}
		}
	case reflect.Slice, reflect.Array:
		found = rawMessagePaths(t.Elem(), join("[]"), visiting)
	case reflect.Map:
		found = rawMessagePaths(t.Elem(), join("[value]"), visiting)
	}
	return found
}
