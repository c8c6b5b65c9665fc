package jsonschema

import (
	"github.com/usestring/jackgen/pkg/classmodel"
)

// FieldStat contains per-field statistics gathered while merging the
// instances of a class.
type FieldStat struct {
	Path      string  `json:"path"`       // Class.field (e.g., "Item.price")
	SourceKey string  `json:"source_key"` // Original JSON key
	Type      string  `json:"type"`       // Inferred type (e.g., "list<object<Item>>")
	Frequency float64 `json:"frequency"`  // Fraction of instances carrying this field (0.0-1.0)
	Required  bool    `json:"required"`   // Present in all instances and never null
	Nullable  bool    `json:"nullable"`   // At least one instance had null
}

// ComputeFieldStats returns one row per field of every class, in class
// discovery order and field insertion order.
func ComputeFieldStats(m *classmodel.Model) []FieldStat {
	if m == nil {
		return nil
	}

	stats := make([]FieldStat, 0)
	for _, c := range m.ClassList() {
		for _, f := range c.FieldList() {
			stats = append(stats, computeSingleFieldStat(c, f))
		}
	}
	return stats
}

func computeSingleFieldStat(c *classmodel.Class, f *classmodel.Field) FieldStat {
	stat := FieldStat{
		Path:      c.Name + "." + f.Name,
		SourceKey: f.SourceKey,
		Type:      f.Type.String(),
		Nullable:  f.Nullable,
		Required:  isRequired(f, c, true),
	}
	if c.Instances > 0 {
		stat.Frequency = float64(f.Occurrences) / float64(c.Instances)
	}
	return stat
}

// OptionalFields returns the stats of fields missing from at least one
// instance, which is where merging across array elements added fields.
func OptionalFields(stats []FieldStat) []FieldStat {
	out := make([]FieldStat, 0)
	for _, s := range stats {
		if s.Frequency < 1.0 {
			out = append(out, s)
		}
	}
	return out
}
