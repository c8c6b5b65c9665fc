package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/usestring/jackgen/internal/generator"
	"github.com/usestring/jackgen/internal/render/java"
	"github.com/usestring/jackgen/internal/schema"
)

type generateOptions struct {
	input     string
	output    string
	pkg       string
	access    string
	getters   bool
	setters   bool
	rootClass string
	selectExp string
	schemaOut string
	verify    bool
	dryRun    bool
	workers   int
}

func newGenerateCmd(a *app) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Java classes from a JSON file",
		Long: `Generate one Jackson-annotated Java class per inferred class.

The root class is named after the input file (user-profile.json -> UserProfile).
The output path is used as a directory; a path ending in .java writes into
its parent directory.`,
		Example: `  # Generate into ./generated with the default package
  jackgen generate -i data.json

  # Custom directory, package and access mode
  jackgen generate -i data.json -o generated/ -p com.mycompany.dto -a READ_WRITE

  # Getters and setters
  jackgen generate -i data.json -g -s

  # Model only part of the document and check the result covers it
  jackgen generate -i response.json --select .data.items --verify`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", `Input JSON file, or "-" for stdin (required)`)
	cmd.Flags().StringVarP(&opts.output, "output", "o", a.cfg.OutputPath, "Output directory or file path")
	cmd.Flags().StringVarP(&opts.pkg, "package", "p", a.cfg.Package, "Java package name")
	cmd.Flags().StringVarP(&opts.access, "access", "a", a.cfg.Access, "Jackson access modifier (options: READ_ONLY, WRITE_ONLY, READ_WRITE, AUTO)")
	cmd.Flags().BoolVarP(&opts.getters, "getters", "g", a.cfg.Getters, "Generate getters")
	cmd.Flags().BoolVarP(&opts.setters, "setters", "s", a.cfg.Setters, "Generate setters")
	cmd.Flags().StringVar(&opts.rootClass, "root-class", "", "Root class name (default: derived from the input file name)")
	cmd.Flags().StringVar(&opts.selectExp, "select", "", "jq path expression choosing the part of the document to model")
	cmd.Flags().StringVar(&opts.schemaOut, "schema-out", "", "Also write the JSON Schema of the classes to this file")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "Check that the input validates against the generated classes")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the classes that would be generated without writing them")
	cmd.Flags().IntVar(&opts.workers, "workers", a.cfg.WriteWorkers, "Concurrent file writes")

	return cmd
}

func runGenerate(cmd *cobra.Command, a *app, opts *generateOptions) error {
	access, err := java.ParseAccess(opts.access)
	if err != nil {
		return &usageError{err: err}
	}
	if opts.input == "" {
		return usageErrorf("input file is required")
	}
	renderOpts := java.Options{
		Package: opts.pkg,
		Access:  access,
		Getters: opts.getters,
		Setters: opts.setters,
	}
	if err := renderOpts.Validate(); err != nil {
		return &usageError{err: err}
	}

	if err := a.setupLogging(cmd, "warn"); err != nil {
		return err
	}
	defer a.close()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Analyzing JSON structure from %s...\n", opts.input)

	res, err := generator.New(a.logger).Run(cmd.Context(), generator.Options{
		Input:         opts.input,
		RootClass:     opts.rootClass,
		Select:        opts.selectExp,
		Output:        opts.output,
		Render:        renderOpts,
		SchemaOut:     opts.schemaOut,
		Verify:        opts.verify,
		DryRun:        opts.dryRun,
		Workers:       opts.workers,
		MaxInputBytes: a.cfg.MaxInputBytes,
	})
	if err != nil {
		return describeInputError(opts.input, err)
	}

	fmt.Fprintf(out, "Found %d classes to generate:\n", len(res.Files))
	for _, f := range res.Files {
		fmt.Fprintf(out, "  - %s\n", f.Class)
	}
	printConflicts(cmd.ErrOrStderr(), res)

	if opts.dryRun {
		fmt.Fprintf(out, "\nDry run: %d Java classes not written\n", len(res.Files))
	} else {
		for _, p := range res.Paths {
			fmt.Fprintf(out, "Generated: %s\n", p)
		}
		fmt.Fprintf(out, "\nSuccessfully generated %d Java classes in '%s'\n", len(res.Paths), res.Dir)
	}
	fmt.Fprintf(out, "Package: %s\n", renderOpts.Package)
	if opts.schemaOut != "" {
		fmt.Fprintf(out, "Schema: %s\n", opts.schemaOut)
	}

	if res.Validation != nil {
		fmt.Fprintf(out, "Verification: %s\n", schema.Summary(res.Validation))
		for _, e := range res.Validation.Errors {
			fmt.Fprintf(out, "  %s\n", e)
		}
		if !res.Validation.Valid {
			return fmt.Errorf("input does not validate against the generated classes")
		}
	}
	return nil
}

func printConflicts(w io.Writer, res *generator.Result) {
	for _, c := range res.Model.Conflicts {
		fmt.Fprintf(w, "Warning: %s.%s changed type from %s to %s; keeping %s\n",
			c.Class, c.Field, c.Previous, c.Current, c.Current)
	}
}

// describeInputError prefixes input errors with the input path.
func describeInputError(input string, err error) error {
	if generator.IsInputError(err) {
		return fmt.Errorf("invalid input '%s': %w", input, err)
	}
	return err
}
