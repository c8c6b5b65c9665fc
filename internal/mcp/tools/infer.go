package tools

import (
	"context"
	"fmt"
	"strconv"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/jackgen/internal/cache"
	"github.com/usestring/jackgen/internal/generator"
	"github.com/usestring/jackgen/pkg/jsoncompact"
	"github.com/usestring/jackgen/pkg/jsonschema"
	"github.com/usestring/jackgen/pkg/types"
)

// InferClassesInput is the input for jackgen_infer_classes.
type InferClassesInput struct {
	JSON          string `json:"json" jsonschema:"JSON document to analyze"`
	RootClass     string `json:"root_class,omitempty" jsonschema:"Name of the root class (default: Root)"`
	Select        string `json:"select,omitempty" jsonschema:"jq path expression selecting the sub-document to model, e.g. .data.items"`
	IncludeStats  bool   `json:"include_stats,omitempty" jsonschema:"Include per-field frequency statistics"`
	IncludeSchema bool   `json:"include_schema,omitempty" jsonschema:"Include the JSON Schema of the inferred classes"`
	IncludeSample bool   `json:"include_sample,omitempty" jsonschema:"Include a shortened copy of the modeled document (arrays trimmed to 3 items)"`
}

// ToolInferClasses infers the class model of a JSON document without
// rendering any Java.
func ToolInferClasses(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input InferClassesInput) (*sdkmcp.CallToolResult, types.InferClassesOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input InferClassesInput) (*sdkmcp.CallToolResult, types.InferClassesOutput, error) {
		if err := d.checkSize("json", input.JSON); err != nil {
			return nil, types.InferClassesOutput{}, err
		}

		rootClass := firstNonEmpty(input.RootClass, generator.DefaultRootClass)
		key := cache.Key("infer", input.JSON, rootClass, input.Select,
			strconv.FormatBool(input.IncludeStats), strconv.FormatBool(input.IncludeSchema),
			strconv.FormatBool(input.IncludeSample))

		output, err := cached(d, key, func() (types.InferClassesOutput, error) {
			m, doc, err := d.Generator.Analyze([]byte(input.JSON), rootClass, input.Select)
			if err != nil {
				return types.InferClassesOutput{}, WrapGenerationError(err)
			}

			out := types.InferClassesOutput{
				RootClass:   m.Root,
				RootIsArray: m.RootIsArray,
				ClassCount:  m.Len(),
				Classes:     types.ClassViews(m),
				Conflicts:   types.ConflictViews(m),
			}
			if input.IncludeStats {
				out.FieldStats = jsonschema.ComputeFieldStats(m)
				out.Optional = types.OptionalPaths(out.FieldStats)
			}
			if input.IncludeSchema {
				s, err := types.ToAny(jsonschema.FromModel(m, jsonschema.DefaultExportOptions()))
				if err != nil {
					return types.InferClassesOutput{}, WrapGenerationError(fmt.Errorf("encode schema: %w", err))
				}
				out.Schema = s
			}
			if input.IncludeSample {
				sample, err := jsoncompact.Marshal(jsoncompact.Compact(doc, jsoncompact.DefaultOptions()))
				if err != nil {
					return types.InferClassesOutput{}, WrapGenerationError(fmt.Errorf("encode sample: %w", err))
				}
				out.Sample = string(sample)
			}

			switch {
			case m.Len() == 0:
				out.Hint = "The document has no objects to model. Use select to point at an object or an array of objects."
			case len(out.Conflicts) > 0:
				out.Hint = "Some fields changed type between instances; the later type is kept. Use jackgen_validate_sample to see which values no longer fit."
			case len(out.Optional) > 0:
				out.Hint = "Fields in optional_fields were missing from some instances and may be null after deserialization. Use jackgen_generate_classes with the same json to render these classes as Java."
			default:
				out.Hint = "Use jackgen_generate_classes with the same json to render these classes as Java."
			}
			return out, nil
		})
		if err != nil {
			return nil, types.InferClassesOutput{}, err
		}

		return nil, output, nil
	}
}
