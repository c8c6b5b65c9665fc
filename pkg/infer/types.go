// Package infer maps JSON values to the semantic types of generated fields.
package infer

import (
	"fmt"
	"strconv"
)

// Kind is the variant tag of a Type.
type Kind int

// Type kinds. String, Boolean, Integer and Double are the primitive kinds.
const (
	String Kind = iota
	Boolean
	Integer
	Double
	Date
	Time
	DateTime
	List
	Object
)

var kindNames = [...]string{
	String:   "string",
	Boolean:  "boolean",
	Integer:  "integer",
	Double:   "double",
	Date:     "date",
	Time:     "time",
	DateTime: "datetime",
	List:     "list",
	Object:   "object",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsPrimitive reports whether k is one of the four primitive kinds.
func (k Kind) IsPrimitive() bool {
	return k == String || k == Boolean || k == Integer || k == Double
}

// IsTemporal reports whether k is a date, time or date-time kind.
func (k Kind) IsTemporal() bool {
	return k == Date || k == Time || k == DateTime
}

// Type is the inferred type of a field. Elem is set for List, Class for Object.
type Type struct {
	Kind  Kind   `json:"kind"`
	Elem  *Type  `json:"elem,omitempty"`
	Class string `json:"class,omitempty"`
}

// Primitive returns the primitive type of the given kind.
func Primitive(k Kind) Type {
	if !k.IsPrimitive() && !k.IsTemporal() {
		panic(fmt.Sprintf("infer: %s is not a scalar kind", k))
	}
	return Type{Kind: k}
}

// ListOf returns a list type with the given element type.
func ListOf(elem Type) Type {
	return Type{Kind: List, Elem: &elem}
}

// ObjectRef returns a reference to the named class.
func ObjectRef(class string) Type {
	return Type{Kind: Object, Class: class}
}

// Equal reports whether t and o describe the same type.
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case List:
		if t.Elem == nil || o.Elem == nil {
			return t.Elem == o.Elem
		}
		return t.Elem.Equal(*o.Elem)
	case Object:
		return t.Class == o.Class
	}
	return true
}

// String renders t as e.g. "integer", "list<string>" or "object<Address>".
func (t Type) String() string {
	switch t.Kind {
	case List:
		if t.Elem == nil {
			return "list<?>"
		}
		return "list<" + t.Elem.String() + ">"
	case Object:
		return "object<" + t.Class + ">"
	}
	return t.Kind.String()
}

// Innermost returns the element type at the bottom of any list nesting.
func (t Type) Innermost() Type {
	for t.Kind == List && t.Elem != nil {
		t = *t.Elem
	}
	return t
}
