package classmodel

import (
	"log/slog"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/usestring/jackgen/pkg/infer"
	"github.com/usestring/jackgen/pkg/jsonvalue"
	"github.com/usestring/jackgen/pkg/naming"
)

// Builder accumulates a Model over one or more documents. A Builder is not
// safe for concurrent use.
type Builder struct {
	model  *Model
	logger *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for merge diagnostics. The default is
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBuilder creates a builder whose top-level objects become rootClassName.
func NewBuilder(rootClassName string, opts ...Option) *Builder {
	b := &Builder{
		model: &Model{
			Root:    rootClassName,
			Classes: orderedmap.New[string, *Class](),
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build returns the class model of a single document.
func Build(root jsonvalue.Value, rootClassName string, opts ...Option) *Model {
	b := NewBuilder(rootClassName, opts...)
	b.Add(root)
	return b.Model()
}

// Add merges a document into the model. An object document is visited as
// the root class; every object element of an array document is visited as
// the root class, with no wrapper class for the array itself. Other
// documents contribute nothing.
func (b *Builder) Add(root jsonvalue.Value) {
	switch root.Kind() {
	case jsonvalue.Object:
		b.visitObject(root, b.model.Root)
	case jsonvalue.Array:
		b.model.RootIsArray = true
		b.visitElements(root.Items(), b.model.Root)
	default:
		b.logger.Debug("document root is not an object or array; nothing to model",
			slog.String("kind", root.Kind().String()))
	}
}

// Model returns the accumulated model. The builder must not be used after
// the model has been handed out.
func (b *Builder) Model() *Model {
	return b.model
}

func (b *Builder) class(name string) *Class {
	if c, ok := b.model.Classes.Get(name); ok {
		return c
	}
	c := newClass(name)
	b.model.Classes.Set(name, c)
	return c
}

func (b *Builder) visitObject(obj jsonvalue.Value, className string) {
	c := b.class(className)
	c.Instances++

	// Keys that map to the same field count once per object.
	seen := make(map[string]bool, obj.Len())
	for _, m := range obj.Members() {
		b.upsert(c, m.Key, m.Value, seen)
		b.descend(m.Key, m.Value)
	}
}

// descend visits the objects nested under key so their classes exist.
func (b *Builder) descend(key string, v jsonvalue.Value) {
	switch v.Kind() {
	case jsonvalue.Object:
		if v.Len() > 0 {
			b.visitObject(v, naming.ClassName(key))
		}
	case jsonvalue.Array:
		b.visitElements(v.Items(), naming.ElementClassName(key))
	}
}

// visitElements visits every object of an array whose first element is an
// object, merging them into one class. Arrays of arrays are followed so that
// list<list<object<X>>> fields reference a class that exists.
func (b *Builder) visitElements(items []jsonvalue.Value, className string) {
	if len(items) == 0 {
		return
	}
	switch items[0].Kind() {
	case jsonvalue.Object:
		for _, item := range items {
			if item.Kind() == jsonvalue.Object {
				b.visitObject(item, className)
			}
		}
	case jsonvalue.Array:
		for _, item := range items {
			if item.Kind() == jsonvalue.Array {
				b.visitElements(item.Items(), className)
			}
		}
	}
}

// upsert writes the field for key into c. The last type seen wins.
// seen holds the field names already written for the current object.
func (b *Builder) upsert(c *Class, key string, v jsonvalue.Value, seen map[string]bool) {
	name := naming.CamelCase(key)
	typ := infer.Infer(v, key)
	isNull := v.Kind() == jsonvalue.Null
	first := !seen[name]
	seen[name] = true

	existing, ok := c.Fields.Get(name)
	if !ok {
		c.Fields.Set(name, &Field{
			Name:        name,
			SourceKey:   key,
			Type:        typ,
			Occurrences: 1,
			Nullable:    isNull,
		})
		return
	}

	if !existing.Type.Equal(typ) {
		b.model.Conflicts = append(b.model.Conflicts, Conflict{
			Class:    c.Name,
			Field:    name,
			Previous: existing.Type,
			Current:  typ,
		})
		b.logger.Warn("field type changed while merging; keeping the later type",
			slog.String("class", c.Name),
			slog.String("field", name),
			slog.String("previous", existing.Type.String()),
			slog.String("current", typ.String()),
		)
	}

	existing.Type = typ
	existing.SourceKey = key
	if first {
		existing.Occurrences++
	}
	existing.Nullable = existing.Nullable || isNull
}
