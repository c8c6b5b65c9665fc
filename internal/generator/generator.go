// Package generator runs the JSON to Java pipeline: read, parse, select,
// build the class model, render and write.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	gojson "github.com/goccy/go-json"
	invopop "github.com/invopop/jsonschema"

	"github.com/usestring/jackgen/internal/emit"
	"github.com/usestring/jackgen/internal/query"
	"github.com/usestring/jackgen/internal/render/java"
	"github.com/usestring/jackgen/internal/schema"
	"github.com/usestring/jackgen/pkg/classmodel"
	"github.com/usestring/jackgen/pkg/jsonschema"
	"github.com/usestring/jackgen/pkg/jsonvalue"
	"github.com/usestring/jackgen/pkg/naming"
	"github.com/usestring/jackgen/pkg/types"
)

// DefaultRootClass names the root class when no file name is available.
const DefaultRootClass = "Root"

// StdinPath is the input path that reads the document from standard input.
const StdinPath = "-"

// InputError reports a problem with the input document or the selection
// expression, as opposed to a failure while generating.
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return e.Err.Error()
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// IsInputError reports whether err was caused by the input.
func IsInputError(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}

func inputErrorf(format string, args ...any) error {
	return &InputError{Err: fmt.Errorf(format, args...)}
}

// Options configures one generation run.
type Options struct {
	Input         string       // JSON file, or "-" for stdin; ignored when Data is set
	Data          []byte       // document bytes
	RootClass     string       // root class name; derived from Input when empty
	Select        string       // optional jq path expression choosing the sub-document
	Output        string       // output directory, or a .java path whose parent is used
	Render        java.Options // Java rendering options
	SchemaOut     string       // optional path of the exported JSON Schema
	Verify        bool         // validate the document against the exported schema
	DryRun        bool         // render without writing class files
	Workers       int          // concurrent file writes
	MaxInputBytes int          // input size cap; 0 means unlimited
}

// Result is the outcome of a generation run.
type Result struct {
	Model      *classmodel.Model
	Files      []java.File
	Dir        string   // resolved output directory; empty on dry runs
	Paths      []string // written files, in class order
	Schema     *invopop.Schema
	Validation *types.ValidationResult // set when Verify is on
}

// Generator runs the pipeline. It holds no per-run state and is safe for
// concurrent use.
type Generator struct {
	logger *slog.Logger
}

// New creates a Generator. A nil logger uses slog.Default().
func New(logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{logger: logger}
}

// Logger returns the logger the generator reports through.
func (g *Generator) Logger() *slog.Logger {
	return g.logger
}

// ReadInput reads the document at path, or stdin for "-". maxBytes caps
// the size when positive.
func ReadInput(path string, maxBytes int) ([]byte, error) {
	if path == "" {
		return nil, inputErrorf("input file is required")
	}

	var r io.Reader
	if path == StdinPath {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, &InputError{Err: fmt.Errorf("open input: %w", err)}
		}
		defer f.Close()
		r = f
	}

	if maxBytes > 0 {
		r = io.LimitReader(r, int64(maxBytes)+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &InputError{Err: fmt.Errorf("read input: %w", err)}
	}
	if maxBytes > 0 && len(data) > maxBytes {
		return nil, inputErrorf("input exceeds %d bytes", maxBytes)
	}
	return data, nil
}

// RootClassName derives the root class name from an input path.
func RootClassName(input string) string {
	if input == "" || input == StdinPath {
		return DefaultRootClass
	}
	if name := naming.ClassNameFromFile(input); name != "" {
		return name
	}
	return DefaultRootClass
}

// SelectDocument parses data and applies the optional jq selection.
func SelectDocument(data []byte, selectExpr string) (jsonvalue.Value, error) {
	doc, err := jsonvalue.Parse(data)
	if err != nil {
		return jsonvalue.Value{}, &InputError{Err: err}
	}
	if selectExpr == "" {
		return doc, nil
	}

	sel, err := query.Compile(selectExpr)
	if err != nil {
		return jsonvalue.Value{}, &InputError{Err: err}
	}
	doc, err = sel.SelectOne(doc)
	if err != nil {
		return jsonvalue.Value{}, &InputError{Err: err}
	}
	return doc, nil
}

// Analyze parses data, applies the optional selection and builds the class
// model. The returned value is the document the model was built from.
func (g *Generator) Analyze(data []byte, rootClass, selectExpr string) (*classmodel.Model, jsonvalue.Value, error) {
	doc, err := SelectDocument(data, selectExpr)
	if err != nil {
		return nil, jsonvalue.Value{}, err
	}

	if rootClass == "" {
		rootClass = DefaultRootClass
	}

	g.logger.Debug("analyzing JSON structure",
		slog.String("root_class", rootClass),
		slog.String("root_kind", doc.Kind().String()),
	)
	m := classmodel.Build(doc, rootClass, classmodel.WithLogger(g.logger))
	return m, doc, nil
}

// Run executes the pipeline described by opts.
func (g *Generator) Run(ctx context.Context, opts Options) (*Result, error) {
	data := opts.Data
	if data == nil {
		var err error
		data, err = ReadInput(opts.Input, opts.MaxInputBytes)
		if err != nil {
			return nil, err
		}
	}

	rootClass := opts.RootClass
	if rootClass == "" {
		rootClass = RootClassName(opts.Input)
	}

	renderer, err := java.NewRenderer(opts.Render)
	if err != nil {
		return nil, &InputError{Err: err}
	}

	m, doc, err := g.Analyze(data, rootClass, opts.Select)
	if err != nil {
		return nil, err
	}

	files, err := renderer.RenderModel(m)
	if err != nil {
		return nil, fmt.Errorf("render classes: %w", err)
	}

	res := &Result{Model: m, Files: files}

	if opts.Verify || opts.SchemaOut != "" {
		res.Schema = jsonschema.FromModel(m, jsonschema.DefaultExportOptions())
	}
	if opts.Verify {
		res.Validation, err = Verify(res.Schema, doc)
		if err != nil {
			return nil, err
		}
		if !res.Validation.Valid {
			g.logger.Warn("generated classes do not cover the document",
				slog.Int("violations", len(res.Validation.Errors)),
			)
		}
	}
	if opts.SchemaOut != "" {
		if err := WriteSchema(opts.SchemaOut, res.Schema); err != nil {
			return nil, err
		}
	}

	if opts.DryRun {
		return res, nil
	}

	res.Dir, err = emit.ResolveDir(opts.Output)
	if err != nil {
		return nil, err
	}
	res.Paths, err = emit.NewWriter(opts.Workers, g.logger).Write(ctx, res.Dir, files)
	if err != nil {
		return nil, err
	}

	g.logger.Info("generated classes",
		slog.Int("classes", len(files)),
		slog.String("dir", res.Dir),
		slog.Int("conflicts", len(m.Conflicts)),
	)
	return res, nil
}

// Verify validates doc against s.
func Verify(s *invopop.Schema, doc jsonvalue.Value) (*types.ValidationResult, error) {
	v, err := schema.NewValidator(s)
	if err != nil {
		return nil, fmt.Errorf("compile exported schema: %w", err)
	}
	data, err := gojson.Marshal(doc.ToAny())
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return v.Validate(data), nil
}

// WriteSchema writes s as indented JSON to path, creating parent directories.
func WriteSchema(path string, s *invopop.Schema) error {
	data, err := gojson.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode schema: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	return nil
}
