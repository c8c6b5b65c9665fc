// Package classmodel builds the class model of a JSON document: one class per
// object shape, with fields merged across every object visited under the
// same class name.
package classmodel

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/usestring/jackgen/pkg/infer"
)

// Field is a typed field of a generated class.
type Field struct {
	Name        string     `json:"name"`        // camelCase identifier
	SourceKey   string     `json:"source_key"`  // JSON key, kept for serialization
	Type        infer.Type `json:"type"`        // last inferred type
	Occurrences int        `json:"occurrences"` // objects that carried the key
	Nullable    bool       `json:"nullable"`    // some occurrence was null
}

// Class is the merged field set discovered for one class name.
type Class struct {
	Name      string                                  `json:"name"`
	Fields    *orderedmap.OrderedMap[string, *Field] `json:"fields"`
	Instances int                                     `json:"instances"` // objects visited under this name
}

func newClass(name string) *Class {
	return &Class{
		Name:   name,
		Fields: orderedmap.New[string, *Field](),
	}
}

// Field returns the field with the given name.
func (c *Class) Field(name string) (*Field, bool) {
	return c.Fields.Get(name)
}

// FieldList returns the fields in insertion order.
func (c *Class) FieldList() []*Field {
	out := make([]*Field, 0, c.Fields.Len())
	for pair := c.Fields.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// FieldNames returns the field names in insertion order.
func (c *Class) FieldNames() []string {
	out := make([]string, 0, c.Fields.Len())
	for pair := c.Fields.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Conflict records a field whose inferred type changed while merging. The
// current type is the one kept.
type Conflict struct {
	Class    string     `json:"class"`
	Field    string     `json:"field"`
	Previous infer.Type `json:"previous"`
	Current  infer.Type `json:"current"`
}

// Model is the class model of a document. Classes are kept in discovery
// order, root first.
type Model struct {
	Root        string                                  `json:"root"`
	RootIsArray bool                                    `json:"root_is_array"`
	Classes     *orderedmap.OrderedMap[string, *Class] `json:"classes"`
	Conflicts   []Conflict                              `json:"conflicts,omitempty"`
}

// Class returns the class with the given name.
func (m *Model) Class(name string) (*Class, bool) {
	return m.Classes.Get(name)
}

// ClassList returns the classes in discovery order.
func (m *Model) ClassList() []*Class {
	out := make([]*Class, 0, m.Classes.Len())
	for pair := m.Classes.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// ClassNames returns the class names in discovery order.
func (m *Model) ClassNames() []string {
	out := make([]string, 0, m.Classes.Len())
	for pair := m.Classes.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Len returns the number of classes.
func (m *Model) Len() int {
	return m.Classes.Len()
}
