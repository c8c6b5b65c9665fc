package infer

import (
	"github.com/usestring/jackgen/pkg/jsonvalue"
	"github.com/usestring/jackgen/pkg/naming"
)

// Infer returns the type of a field holding v. The hint is the field's JSON
// key and names the class of nested objects and object arrays.
//
// Rules apply in order and the first match wins:
//
//	null                          -> string
//	"YYYY-MM-DD"                  -> date
//	"HH:MM[:SS[.f]][offset]"      -> time
//	date + "T"/" " + time         -> datetime
//	boolean                       -> boolean
//	number without fraction/exp   -> integer
//	other number                  -> double
//	other string                  -> string
//	[]                            -> list<string>
//	[{...}, ...]                  -> list<object<Pascal(Singular(hint))>>
//	[x, ...]                      -> list<Infer(x, hint)>
//	non-empty object              -> object<Pascal(hint)>
//	anything else ({})            -> string
//
// Only the first element of a list is inspected. Infer never fails.
func Infer(v jsonvalue.Value, hint string) Type {
	switch v.Kind() {
	case jsonvalue.Null:
		return Primitive(String)

	case jsonvalue.String:
		// Narrowest grammar first: a date-time must not be taken for a date.
		s := v.Str()
		switch {
		case IsDate(s):
			return Primitive(Date)
		case IsTime(s):
			return Primitive(Time)
		case IsDateTime(s):
			return Primitive(DateTime)
		}
		return Primitive(String)

	case jsonvalue.Bool:
		return Primitive(Boolean)

	case jsonvalue.Number:
		if v.IsIntegral() {
			return Primitive(Integer)
		}
		return Primitive(Double)

	case jsonvalue.Array:
		items := v.Items()
		if len(items) == 0 {
			return ListOf(Primitive(String))
		}
		if items[0].Kind() == jsonvalue.Object {
			return ListOf(ObjectRef(naming.ElementClassName(hint)))
		}
		return ListOf(Infer(items[0], hint))

	case jsonvalue.Object:
		if v.Len() > 0 {
			return ObjectRef(naming.ClassName(hint))
		}
	}
	return Primitive(String)
}
