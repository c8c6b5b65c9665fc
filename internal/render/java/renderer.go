// Package java renders class models as Jackson-annotated Java classes.
package java

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"text/template"

	"github.com/usestring/jackgen/pkg/classmodel"
	"github.com/usestring/jackgen/pkg/naming"
)

// FileExtension is the extension of generated files.
const FileExtension = ".java"

//go:embed java.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("").Funcs(template.FuncMap{
	"javaString": javaString,
}).ParseFS(tmplFS, "java.go.tmpl"))

// Renderer renders classes with fixed options. It is safe for concurrent use.
type Renderer struct {
	opts Options
}

// NewRenderer creates a renderer after validating opts.
func NewRenderer(opts Options) (*Renderer, error) {
	if opts.Package == "" {
		opts.Package = DefaultPackage
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	access, err := ParseAccess(string(opts.Access))
	if err != nil {
		return nil, err
	}
	opts.Access = access
	return &Renderer{opts: opts}, nil
}

// Options returns the renderer options.
func (r *Renderer) Options() Options {
	return r.opts
}

type classData struct {
	Package   string
	Imports   []string
	ClassName string
	Access    Access
	Getters   bool
	Setters   bool
	Fields    []fieldData
}

type fieldData struct {
	Name      string
	Accessor  string
	JavaType  string
	SourceKey string
}

// FileName returns the file name of the class.
func (r *Renderer) FileName(c *classmodel.Class) string {
	return Identifier(c.Name) + FileExtension
}

// Render returns the Java source of one class.
func (r *Renderer) Render(c *classmodel.Class) ([]byte, error) {
	data := classData{
		Package:   r.opts.Package,
		ClassName: Identifier(c.Name),
		Access:    r.opts.Access,
		Getters:   r.opts.Getters,
		Setters:   r.opts.Setters,
	}

	imports := map[string]bool{importJSONProperty: true}
	for _, f := range c.FieldList() {
		name := Identifier(f.Name)
		data.Fields = append(data.Fields, fieldData{
			Name:      name,
			Accessor:  naming.UpperFirst(name),
			JavaType:  TypeName(f.Type),
			SourceKey: f.SourceKey,
		})
		typeImports(f.Type, imports)
	}
	for imp := range imports {
		data.Imports = append(data.Imports, imp)
	}
	sort.Strings(data.Imports)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "java.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template for class %s: %w", c.Name, err)
	}
	return buf.Bytes(), nil
}

// File is a rendered output unit.
type File struct {
	Class    string
	FileName string
	Content  []byte
}

// RenderModel renders every class of the model in discovery order.
func (r *Renderer) RenderModel(m *classmodel.Model) ([]File, error) {
	files := make([]File, 0, m.Len())
	for _, c := range m.ClassList() {
		content, err := r.Render(c)
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Class:    c.Name,
			FileName: r.FileName(c),
			Content:  content,
		})
	}
	return files, nil
}
