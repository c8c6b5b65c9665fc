// Package query selects the part of a JSON document to model with a jq
// expression.
package query

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/itchyny/gojq"

	"github.com/usestring/jackgen/pkg/jsonvalue"
)

// Selector runs a compiled jq expression and resolves its matches against the
// ordered document, so member order survives selection.
type Selector struct {
	expression string
	code       *gojq.Code
}

// Compile parses and compiles expression. The expression must be a path
// expression such as ".data.items" or ".results[0]".
func Compile(expression string) (*Selector, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, errors.New("empty jq expression")
	}
	if err := ValidateExpression(expression); err != nil {
		return nil, err
	}

	query, err := gojq.Parse("path(" + expression + ")")
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}
	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}

	return &Selector{expression: expression, code: code}, nil
}

// Expression returns the source expression.
func (s *Selector) Expression() string {
	return s.expression
}

// Select returns every value the expression matches, in jq output order.
// Paths that lead nowhere in the document (e.g. ".missing") yield nothing.
func (s *Selector) Select(doc jsonvalue.Value) ([]jsonvalue.Value, error) {
	var out []jsonvalue.Value

	iter := s.code.Run(doc.ToAny())
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return nil, errors.New(formatJQError(s.expression, err))
		}

		path, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("%s: unexpected path %v", s.expression, v)
		}
		if found, ok := resolve(doc, path); ok {
			out = append(out, found)
		}
	}

	return out, nil
}

// SelectOne applies the expression and folds its matches into one document:
// a single match is returned as is and several matches become an array.
func (s *Selector) SelectOne(doc jsonvalue.Value) (jsonvalue.Value, error) {
	matches, err := s.Select(doc)
	if err != nil {
		return jsonvalue.Value{}, err
	}
	switch len(matches) {
	case 0:
		return jsonvalue.Value{}, fmt.Errorf("%s: expression matched nothing", s.expression)
	case 1:
		return matches[0], nil
	}
	return jsonvalue.ArrayValue(matches...), nil
}

// resolve walks path (string keys and numeric indices, as produced by jq's
// path/1) through doc.
func resolve(doc jsonvalue.Value, path []any) (jsonvalue.Value, bool) {
	cur := doc
	for _, step := range path {
		var ok bool
		switch key := step.(type) {
		case string:
			if cur.Kind() != jsonvalue.Object {
				return jsonvalue.Value{}, false
			}
			cur, ok = cur.Get(key)
		case int:
			cur, ok = cur.Index(normalizeIndex(key, cur.Len()))
		case float64:
			if key != math.Trunc(key) {
				return jsonvalue.Value{}, false
			}
			cur, ok = cur.Index(normalizeIndex(int(key), cur.Len()))
		default:
			// Slice paths ({"start":..,"end":..}) are not resolvable to a single value.
			return jsonvalue.Value{}, false
		}
		if !ok {
			return jsonvalue.Value{}, false
		}
	}
	return cur, true
}

func normalizeIndex(i, n int) int {
	if i < 0 {
		return i + n
	}
	return i
}

// formatJQError creates a helpful error message for JQ execution errors.
// It adds contextual hints to help users fix common issues.
//
// Runtime JQ errors (like "cannot iterate over: null") are plain errors
// without typed wrappers in gojq, so the hints rely on string matching.
func formatJQError(label string, err error) string {
	var haltErr *gojq.HaltError
	if errors.As(err, &haltErr) {
		if haltErr.Value() == nil {
			return fmt.Sprintf("%s: query halted", label)
		}
		return fmt.Sprintf("%s: query halted with: %v", label, haltErr.Value())
	}

	errStr := err.Error()

	var hint string
	switch {
	case strings.Contains(errStr, "invalid path"):
		hint = " (only path expressions can select a sub-document)"
	case strings.Contains(errStr, "cannot iterate over: null"):
		hint = " (the path may not exist in this document)"
	case strings.Contains(errStr, "cannot index") && strings.Contains(errStr, "with"):
		hint = " (field not found or wrong type)"
	case strings.Contains(errStr, "object") && strings.Contains(errStr, "cannot be iterated"):
		hint = " (expected array but got object, try removing '[]')"
	case strings.Contains(errStr, "array") && strings.Contains(errStr, "cannot be indexed"):
		hint = " (expected object but got array, try adding '[]')"
	}

	return fmt.Sprintf("%s: %s%s", label, errStr, hint)
}

// ValidateExpression checks if a JQ expression is valid without executing it.
func ValidateExpression(expression string) error {
	query, err := gojq.Parse(expression)
	if err != nil {
		var parseErr *gojq.ParseError
		if errors.As(err, &parseErr) {
			return fmt.Errorf("invalid jq expression at position %d: %w", parseErr.Offset, err)
		}
		return fmt.Errorf("invalid jq expression: %w", err)
	}

	if _, err := gojq.Compile(query); err != nil {
		return fmt.Errorf("failed to compile jq expression: %w", err)
	}

	return nil
}
