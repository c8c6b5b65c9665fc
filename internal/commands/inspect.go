package commands

import (
	"fmt"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/usestring/jackgen/internal/generator"
	"github.com/usestring/jackgen/pkg/jsoncompact"
	"github.com/usestring/jackgen/pkg/jsonschema"
	"github.com/usestring/jackgen/pkg/types"
)

type inspectOptions struct {
	input     string
	rootClass string
	selectExp string
	stats     bool
	sample    bool
	schema    bool
}

func newInspectCmd(a *app) *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the inferred class model as JSON",
		Long: `Print the classes, fields and type conflicts inferred from a JSON file
without rendering any Java. With --schema the JSON Schema of the model is
printed instead.`,
		Example: `  # Show the class model
  jackgen inspect -i data.json

  # Include per-field frequency
  jackgen inspect -i data.json --stats

  # Print the JSON Schema of the part under .data
  jackgen inspect -i response.json --select .data --schema`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", `Input JSON file, or "-" for stdin (required)`)
	cmd.Flags().StringVar(&opts.rootClass, "root-class", "", "Root class name (default: derived from the input file name)")
	cmd.Flags().StringVar(&opts.selectExp, "select", "", "jq path expression choosing the part of the document to model")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Include per-field frequency statistics")
	cmd.Flags().BoolVar(&opts.sample, "sample", false, "Include a shortened copy of the modeled document")
	cmd.Flags().BoolVar(&opts.schema, "schema", false, "Print the JSON Schema of the model instead")

	return cmd
}

func runInspect(cmd *cobra.Command, a *app, opts *inspectOptions) error {
	if opts.input == "" {
		return usageErrorf("input file is required")
	}

	if err := a.setupLogging(cmd, "warn"); err != nil {
		return err
	}
	defer a.close()

	data, err := generator.ReadInput(opts.input, a.cfg.MaxInputBytes)
	if err != nil {
		return describeInputError(opts.input, err)
	}
	rootClass := opts.rootClass
	if rootClass == "" {
		rootClass = generator.RootClassName(opts.input)
	}

	m, doc, err := generator.New(a.logger).Analyze(data, rootClass, opts.selectExp)
	if err != nil {
		return describeInputError(opts.input, err)
	}

	var v any
	if opts.schema {
		v = jsonschema.FromModel(m, jsonschema.DefaultExportOptions())
	} else {
		out := types.InferClassesOutput{
			RootClass:   m.Root,
			RootIsArray: m.RootIsArray,
			ClassCount:  m.Len(),
			Classes:     types.ClassViews(m),
			Conflicts:   types.ConflictViews(m),
		}
		if opts.stats {
			out.FieldStats = jsonschema.ComputeFieldStats(m)
			out.Optional = types.OptionalPaths(out.FieldStats)
		}
		if opts.sample {
			sample, err := jsoncompact.Marshal(jsoncompact.Compact(doc, jsoncompact.DefaultOptions()))
			if err != nil {
				return fmt.Errorf("encode sample: %w", err)
			}
			out.Sample = string(sample)
		}
		v = out
	}

	encoded, err := gojson.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}
