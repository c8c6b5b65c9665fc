package jsonvalue

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
	gojson "github.com/goccy/go-json"
)

// ErrEmptyInput is returned by Parse when the input holds no JSON value.
var ErrEmptyInput = errors.New("empty JSON input")

// Parse decodes a single JSON document into a Value.
//
// Syntax is checked up front so that malformed documents fail with the
// decoder's positioned error instead of a partially walked tree.
func Parse(data []byte) (Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Value{}, ErrEmptyInput
	}
	if !gojson.Valid(data) {
		var probe any
		if err := gojson.Unmarshal(data, &probe); err != nil {
			return Value{}, fmt.Errorf("invalid JSON: %w", err)
		}
		return Value{}, errors.New("invalid JSON")
	}

	raw, typ, _, err := jsonparser.Get(data)
	if err != nil {
		return Value{}, fmt.Errorf("invalid JSON: %w", err)
	}
	return fromRaw(raw, typ)
}

// MustParse is like Parse but panics on error. It is intended for tests and
// static fixtures.
func MustParse(s string) Value {
	v, err := Parse([]byte(s))
	if err != nil {
		panic(fmt.Sprintf("jsonvalue: MustParse(%q): %v", s, err))
	}
	return v
}

func fromRaw(raw []byte, typ jsonparser.ValueType) (Value, error) {
	switch typ {
	case jsonparser.Null:
		return NullValue(), nil

	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return Value{}, fmt.Errorf("parsing boolean %q: %w", raw, err)
		}
		return BoolValue(b), nil

	case jsonparser.Number:
		return NumberValue(string(raw)), nil

	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return Value{}, fmt.Errorf("parsing string %q: %w", raw, err)
		}
		return StringValue(s), nil

	case jsonparser.Array:
		return parseArray(raw)

	case jsonparser.Object:
		return parseObject(raw)
	}
	return Value{}, fmt.Errorf("unsupported JSON token %q", raw)
}

func parseArray(raw []byte) (Value, error) {
	if isEmptyContainer(raw) {
		return ArrayValue(), nil
	}

	var (
		items []Value
		inner error
	)
	_, err := jsonparser.ArrayEach(raw, func(value []byte, typ jsonparser.ValueType, _ int, err error) {
		if inner != nil {
			return
		}
		if err != nil {
			inner = err
			return
		}
		item, err := fromRaw(value, typ)
		if err != nil {
			inner = err
			return
		}
		items = append(items, item)
	})
	if inner != nil {
		return Value{}, inner
	}
	if err != nil {
		return Value{}, fmt.Errorf("parsing array: %w", err)
	}
	return ArrayValue(items...), nil
}

func parseObject(raw []byte) (Value, error) {
	if isEmptyContainer(raw) {
		return ObjectValue(), nil
	}

	var members []Member
	err := jsonparser.ObjectEach(raw, func(key, value []byte, typ jsonparser.ValueType, _ int) error {
		v, err := fromRaw(value, typ)
		if err != nil {
			return err
		}
		members = append(members, Member{Key: string(key), Value: v})
		return nil
	})
	if err != nil {
		return Value{}, fmt.Errorf("parsing object: %w", err)
	}
	return ObjectValue(members...), nil
}

// isEmptyContainer reports whether raw is "[]" or "{}" with optional inner whitespace.
func isEmptyContainer(raw []byte) bool {
	if len(raw) < 2 {
		return false
	}
	return len(bytes.TrimSpace(raw[1:len(raw)-1])) == 0
}
