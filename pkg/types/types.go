// Package types provides shared types for jackgen.
// These types are used across multiple packages and are designed for external consumption.
package types

import (
	gojson "github.com/goccy/go-json"

	"github.com/usestring/jackgen/pkg/classmodel"
)

// ToAny round-trips a typed value through JSON to produce an untyped any.
// Use this when a tool output field must be any (instead of json.RawMessage)
// to satisfy the MCP SDK's schema validation.
func ToAny(v any) (any, error) {
	b, err := gojson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := gojson.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ClassView is a flat, serializable view of a generated class.
type ClassView struct {
	Name      string      `json:"name"`
	Instances int         `json:"instances"`
	Fields    []FieldView `json:"fields,omitempty"`
}

// FieldView is a flat, serializable view of a class field.
type FieldView struct {
	Name        string `json:"name"`
	SourceKey   string `json:"source_key"`
	Type        string `json:"type"`
	Occurrences int    `json:"occurrences"`
	Nullable    bool   `json:"nullable,omitempty"`
}

// ConflictView describes a field whose type changed while merging.
type ConflictView struct {
	Class    string `json:"class"`
	Field    string `json:"field"`
	Previous string `json:"previous"`
	Current  string `json:"current"`
}

// ClassViews converts the classes of a model, in discovery order.
func ClassViews(m *classmodel.Model) []ClassView {
	views := make([]ClassView, 0, m.Len())
	for _, c := range m.ClassList() {
		view := ClassView{Name: c.Name, Instances: c.Instances}
		for _, f := range c.FieldList() {
			view.Fields = append(view.Fields, FieldView{
				Name:        f.Name,
				SourceKey:   f.SourceKey,
				Type:        f.Type.String(),
				Occurrences: f.Occurrences,
				Nullable:    f.Nullable,
			})
		}
		views = append(views, view)
	}
	return views
}

// ConflictViews converts the merge conflicts of a model.
func ConflictViews(m *classmodel.Model) []ConflictView {
	if len(m.Conflicts) == 0 {
		return nil
	}
	views := make([]ConflictView, 0, len(m.Conflicts))
	for _, c := range m.Conflicts {
		views = append(views, ConflictView{
			Class:    c.Class,
			Field:    c.Field,
			Previous: c.Previous.String(),
			Current:  c.Current.String(),
		})
	}
	return views
}
