// Package jsonvalue provides an order-preserving JSON value model.
//
// Decoding into map[string]any loses key order, which drives the order of
// generated fields. Value keeps object members in document order and numbers
// as their literal text, so integral and fractional literals stay distinct.
package jsonvalue

import (
	"strconv"
	"strings"
)

// Kind identifies the shape of a JSON value.
type Kind int

// JSON value kinds.
const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

var kindNames = [...]string{
	Null:   "null",
	Bool:   "boolean",
	Number: "number",
	String: "string",
	Array:  "array",
	Object: "object",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Member is a key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Value is a parsed JSON value. The zero Value is null.
type Value struct {
	kind    Kind
	boolean bool
	text    string // string contents or number literal
	items   []Value
	members []Member
}

// NullValue returns the JSON null.
func NullValue() Value { return Value{kind: Null} }

// BoolValue returns a JSON boolean.
func BoolValue(b bool) Value { return Value{kind: Bool, boolean: b} }

// NumberValue returns a JSON number holding the given literal.
func NumberValue(literal string) Value { return Value{kind: Number, text: literal} }

// StringValue returns a JSON string.
func StringValue(s string) Value { return Value{kind: String, text: s} }

// ArrayValue returns a JSON array of the given items.
func ArrayValue(items ...Value) Value { return Value{kind: Array, items: items} }

// ObjectValue returns a JSON object with members in the given order.
func ObjectValue(members ...Member) Value { return Value{kind: Object, members: members} }

// Kind returns the shape of v.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload. It is false for non-boolean values.
func (v Value) Bool() bool { return v.boolean }

// Str returns the contents of a string value, or "" for other kinds.
func (v Value) Str() string {
	if v.kind != String {
		return ""
	}
	return v.text
}

// Literal returns the literal text of a number value, or "" for other kinds.
func (v Value) Literal() string {
	if v.kind != Number {
		return ""
	}
	return v.text
}

// IsIntegral reports whether v is a number written without fraction or exponent.
func (v Value) IsIntegral() bool {
	return v.kind == Number && v.text != "" && !strings.ContainsAny(v.text, ".eE")
}

// Items returns the elements of an array value.
func (v Value) Items() []Value { return v.items }

// Members returns the members of an object value in document order.
func (v Value) Members() []Member { return v.members }

// Len returns the number of elements or members, and 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.items)
	case Object:
		return len(v.members)
	}
	return 0
}

// Get returns the value of the last member named key.
func (v Value) Get(key string) (Value, bool) {
	for i := len(v.members) - 1; i >= 0; i-- {
		if v.members[i].Key == key {
			return v.members[i].Value, true
		}
	}
	return Value{}, false
}

// Index returns the i-th element of an array value.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != Array || i < 0 || i >= len(v.items) {
		return Value{}, false
	}
	return v.items[i], true
}

// ToAny converts v to plain Go values: nil, bool, int or float64, string,
// []any and map[string]any. Member order is lost.
func (v Value) ToAny() any {
	switch v.kind {
	case Bool:
		return v.boolean
	case Number:
		if v.IsIntegral() {
			if i, err := strconv.Atoi(v.text); err == nil {
				return i
			}
		}
		f, err := strconv.ParseFloat(v.text, 64)
		if err != nil {
			return v.text
		}
		return f
	case String:
		return v.text
	case Array:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.ToAny()
		}
		return out
	case Object:
		out := make(map[string]any, len(v.members))
		for _, m := range v.members {
			out[m.Key] = m.Value.ToAny()
		}
		return out
	}
	return nil
}
