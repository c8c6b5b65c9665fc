package tools

import (
	"context"
	"strconv"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/jackgen/internal/cache"
	"github.com/usestring/jackgen/internal/generator"
	"github.com/usestring/jackgen/pkg/types"
)

// GenerateClassesInput is the input for jackgen_generate_classes.
type GenerateClassesInput struct {
	JSON           string `json:"json" jsonschema:"JSON document to generate classes from"`
	RootClass      string `json:"root_class,omitempty" jsonschema:"Name of the root class (default: Root)"`
	Select         string `json:"select,omitempty" jsonschema:"jq path expression selecting the sub-document to model"`
	Package        string `json:"package,omitempty" jsonschema:"Java package of the generated classes (default: com.example.model)"`
	Access         string `json:"access,omitempty" jsonschema:"JsonProperty access mode: READ_ONLY, WRITE_ONLY, READ_WRITE or AUTO (default: none)"`
	Getters        *bool  `json:"getters,omitempty" jsonschema:"Generate getters (default: JACKGEN_GETTERS)"`
	Setters        *bool  `json:"setters,omitempty" jsonschema:"Generate setters (default: JACKGEN_SETTERS)"`
	OutputDir      string `json:"output_dir,omitempty" jsonschema:"Directory to write the .java files to (default: nothing is written)"`
	IncludeSources bool   `json:"include_sources,omitempty" jsonschema:"Return the Java sources inline instead of as resource URIs"`
	Verify         bool   `json:"verify,omitempty" jsonschema:"Check that the document validates against the generated classes"`
}

// ToolGenerateClasses renders Jackson-annotated Java classes for a JSON
// document. Sources stay available as resources for as long as the result is
// cached.
func ToolGenerateClasses(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GenerateClassesInput) (*sdkmcp.CallToolResult, types.GenerateClassesOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GenerateClassesInput) (*sdkmcp.CallToolResult, types.GenerateClassesOutput, error) {
		if err := d.checkSize("json", input.JSON); err != nil {
			return nil, types.GenerateClassesOutput{}, err
		}
		renderOpts, err := d.renderOptions(input.Package, input.Access, input.Getters, input.Setters)
		if err != nil {
			return nil, types.GenerateClassesOutput{}, err
		}

		rootClass := firstNonEmpty(input.RootClass, generator.DefaultRootClass)
		digest := cache.Key("generate", input.JSON, rootClass, input.Select,
			renderOpts.Package, string(renderOpts.Access),
			strconv.FormatBool(renderOpts.Getters), strconv.FormatBool(renderOpts.Setters))

		opts := generator.Options{
			Data:      []byte(input.JSON),
			RootClass: rootClass,
			Select:    input.Select,
			Render:    renderOpts,
			Verify:    input.Verify,
			Output:    input.OutputDir,
			DryRun:    input.OutputDir == "",
		}
		if d.Config != nil {
			opts.Workers = d.Config.WriteWorkers
			if d.Config.ToolTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, d.Config.ToolTimeout)
				defer cancel()
			}
		}

		res, err := d.Generator.Run(ctx, opts)
		if err != nil {
			return nil, types.GenerateClassesOutput{}, WrapGenerationError(err)
		}
		if d.Cache != nil {
			d.Cache.Put(sourcesKey(digest), res.Files)
		}

		output := types.GenerateClassesOutput{
			RootClass:  res.Model.Root,
			Package:    renderOpts.Package,
			OutputDir:  res.Dir,
			Files:      generatedFiles(res, digest, input.IncludeSources || d.Cache == nil),
			Conflicts:  types.ConflictViews(res.Model),
			Validation: res.Validation,
		}

		switch {
		case len(res.Files) == 0:
			output.Hint = "No classes were generated. Use select to point at an object or an array of objects."
		case output.Validation != nil && !output.Validation.Valid:
			output.Hint = "The document does not fully validate against the generated classes; see validation.errors and conflicts."
		case !input.IncludeSources && d.Cache != nil:
			output.Hint = "Read a file's resource_uri to fetch its full Java source."
		}

		return nil, output, nil
	}
}

func generatedFiles(res *generator.Result, digest string, inline bool) []types.GeneratedFile {
	files := make([]types.GeneratedFile, 0, len(res.Files))
	for i, f := range res.Files {
		gf := types.GeneratedFile{
			Class:    f.Class,
			FileName: f.FileName,
		}
		if i < len(res.Paths) {
			gf.Path = res.Paths[i]
		}
		if inline {
			gf.Content = string(f.Content)
		} else {
			gf.ResourceURI = ClassResourceURI(digest, f.Class)
		}
		files = append(files, gf)
	}
	return files
}
