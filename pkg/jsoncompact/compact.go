// Package jsoncompact shortens JSON documents for display by trimming arrays
// and long strings. Member order is preserved.
package jsoncompact

import (
	"fmt"

	gojson "github.com/goccy/go-json"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/usestring/jackgen/pkg/jsonvalue"
)

// Options controls compaction.
type Options struct {
	MaxArrayItems int // Trim arrays to N items (0 = no limit)
	MaxStringLen  int // Truncate strings longer than N bytes (0 = no limit)
	MaxDepth      int // Max nesting depth (0 = unlimited)
}

// Default values for compaction options.
const (
	DefaultMaxArrayItems = 3
	DefaultMaxStringLen  = 200
	DefaultMaxDepth      = 0 // unlimited
)

// DefaultOptions returns the default compaction settings.
func DefaultOptions() *Options {
	return &Options{
		MaxArrayItems: DefaultMaxArrayItems,
		MaxStringLen:  DefaultMaxStringLen,
		MaxDepth:      DefaultMaxDepth,
	}
}

// Compact returns a shortened copy of v. Trimmed arrays end with a string
// marker counting the dropped items. If opts is nil, DefaultOptions() is used.
func Compact(v jsonvalue.Value, opts *Options) jsonvalue.Value {
	if opts == nil {
		opts = DefaultOptions()
	}
	return compactRecursive(v, opts, 0)
}

// CompactJSON parses data, compacts it and encodes the result.
func CompactJSON(data []byte, opts *Options) ([]byte, error) {
	v, err := jsonvalue.Parse(data)
	if err != nil {
		return nil, err
	}
	return Marshal(Compact(v, opts))
}

// Marshal encodes v as compact JSON, keeping member order and number
// literals as written.
func Marshal(v jsonvalue.Value) ([]byte, error) {
	return gojson.Marshal(ordered(v))
}

func ordered(v jsonvalue.Value) any {
	switch v.Kind() {
	case jsonvalue.Bool:
		return v.Bool()
	case jsonvalue.Number:
		return gojson.Number(v.Literal())
	case jsonvalue.String:
		return v.Str()
	case jsonvalue.Array:
		out := make([]any, 0, v.Len())
		for _, item := range v.Items() {
			out = append(out, ordered(item))
		}
		return out
	case jsonvalue.Object:
		om := orderedmap.New[string, any](orderedmap.WithCapacity[string, any](v.Len()))
		for _, m := range v.Members() {
			om.Set(m.Key, ordered(m.Value))
		}
		return om
	}
	return nil
}

func compactRecursive(v jsonvalue.Value, opts *Options, depth int) jsonvalue.Value {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth && isContainer(v) {
		return jsonvalue.StringValue("[max depth]")
	}

	switch v.Kind() {
	case jsonvalue.Array:
		return compactArray(v.Items(), opts, depth)
	case jsonvalue.Object:
		members := make([]jsonvalue.Member, 0, v.Len())
		for _, m := range v.Members() {
			members = append(members, jsonvalue.Member{Key: m.Key, Value: compactRecursive(m.Value, opts, depth+1)})
		}
		return jsonvalue.ObjectValue(members...)
	case jsonvalue.String:
		return jsonvalue.StringValue(compactString(v.Str(), opts))
	default:
		return v
	}
}

func isContainer(v jsonvalue.Value) bool {
	return v.Kind() == jsonvalue.Array || v.Kind() == jsonvalue.Object
}

func compactString(s string, opts *Options) string {
	if opts.MaxStringLen <= 0 || len(s) <= opts.MaxStringLen {
		return s
	}
	remaining := len(s) - opts.MaxStringLen
	return s[:opts.MaxStringLen] + fmt.Sprintf("... (%d more chars)", remaining)
}

func compactArray(items []jsonvalue.Value, opts *Options, depth int) jsonvalue.Value {
	keep := len(items)
	if opts.MaxArrayItems > 0 && keep > opts.MaxArrayItems {
		keep = opts.MaxArrayItems
	}

	out := make([]jsonvalue.Value, 0, keep+1)
	for _, item := range items[:keep] {
		out = append(out, compactRecursive(item, opts, depth+1))
	}
	if remaining := len(items) - keep; remaining > 0 {
		out = append(out, jsonvalue.StringValue(fmt.Sprintf("... (%d more items)", remaining)))
	}
	return jsonvalue.ArrayValue(out...)
}
