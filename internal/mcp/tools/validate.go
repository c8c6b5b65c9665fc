package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/jackgen/internal/cache"
	"github.com/usestring/jackgen/internal/generator"
	"github.com/usestring/jackgen/internal/schema"
	"github.com/usestring/jackgen/pkg/jsonschema"
	"github.com/usestring/jackgen/pkg/types"
)

// ValidateSampleInput is the input for jackgen_validate_sample.
type ValidateSampleInput struct {
	Reference string `json:"reference" jsonschema:"JSON document the classes are generated from"`
	Sample    string `json:"sample" jsonschema:"JSON document to check against those classes"`
	RootClass string `json:"root_class,omitempty" jsonschema:"Name of the root class (default: Root)"`
	Select    string `json:"select,omitempty" jsonschema:"jq path expression applied to both documents before modeling"`
}

// ToolValidateSample checks whether a sample document fits the classes that
// would be generated from a reference document.
func ToolValidateSample(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ValidateSampleInput) (*sdkmcp.CallToolResult, types.ValidateSampleOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ValidateSampleInput) (*sdkmcp.CallToolResult, types.ValidateSampleOutput, error) {
		if err := d.checkSize("reference", input.Reference); err != nil {
			return nil, types.ValidateSampleOutput{}, err
		}
		if err := d.checkSize("sample", input.Sample); err != nil {
			return nil, types.ValidateSampleOutput{}, err
		}

		rootClass := firstNonEmpty(input.RootClass, generator.DefaultRootClass)
		key := cache.Key("validate", input.Reference, input.Sample, rootClass, input.Select)

		output, err := cached(d, key, func() (types.ValidateSampleOutput, error) {
			m, _, err := d.Generator.Analyze([]byte(input.Reference), rootClass, input.Select)
			if err != nil {
				return types.ValidateSampleOutput{}, WrapGenerationError(err)
			}
			sample, err := generator.SelectDocument([]byte(input.Sample), input.Select)
			if err != nil {
				return types.ValidateSampleOutput{}, WrapGenerationError(err)
			}

			result, err := generator.Verify(jsonschema.FromModel(m, jsonschema.DefaultExportOptions()), sample)
			if err != nil {
				return types.ValidateSampleOutput{}, WrapGenerationError(err)
			}

			out := types.ValidateSampleOutput{
				Valid:      result.Valid,
				Summary:    schema.Summary(result),
				Errors:     result.Errors,
				RootClass:  m.Root,
				ClassCount: m.Len(),
			}
			if !out.Valid {
				out.Hint = "Merge the sample into the reference (e.g. as another array element) and regenerate to cover these fields."
			}
			return out, nil
		})
		if err != nil {
			return nil, types.ValidateSampleOutput{}, err
		}

		return nil, output, nil
	}
}
