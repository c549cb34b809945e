package dsl

import (
	"fmt"
	"reflect"
	"sort"

	goshape "github.com/reoring/goshape"
)

// Primitive names a runtime type category in schema literals. Of turns it into
// a typeOf matcher.
type Primitive goshape.TypeTag

// Primitive tokens accepted by Of.
const (
	Number   = Primitive(goshape.TypeNumber)
	String   = Primitive(goshape.TypeString)
	Boolean  = Primitive(goshape.TypeBoolean)
	Object   = Primitive(goshape.TypeObject)
	Array    = Primitive(goshape.TypeArray)
	Function = Primitive(goshape.TypeFunction)
	Null     = Primitive(goshape.TypeNull)
)

// Field is one entry of an ordered object literal.
type Field struct {
	Name   string
	Schema any
}

// F is shorthand for Field{Name: name, Schema: schema}.
func F(name string, schema any) Field { return Field{Name: name, Schema: schema} }

// Fields is an object literal whose key order is kept in descriptions.
type Fields []Field

// UnrecognizedSchemaError reports a schema expression Of cannot normalize.
type UnrecognizedSchemaError struct {
	Path  string // Position inside the literal, e.g. "[0].items".
	Value any
}

func (e *UnrecognizedSchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("dsl: unrecognized schema %#v", e.Value)
	}
	return fmt.Sprintf("dsl: unrecognized schema %#v at %s", e.Value, e.Path)
}

// Of normalizes a schema expression into a matcher:
//
//	*goshape.Matcher         as is
//	*goshape.Spec            its closed matcher
//	Check                    custom matcher
//	Primitive, TypeTag       typeOf
//	reflect.Type             instanceOf, described by the type name
//	[]any{elem}              arrayOf(Of(elem))
//	map[string]any           keyed, keys sorted
//	Fields                   keyed, keys in order
//
// Anything else fails with *UnrecognizedSchemaError.
func Of(x any) (*goshape.Matcher, error) { return of(x, "") }

// MustOf is like Of but panics on error.
func MustOf(x any) *goshape.Matcher {
	m, err := Of(x)
	if err != nil {
		panic(err)
	}
	return m
}

func of(x any, at string) (*goshape.Matcher, error) {
	switch t := x.(type) {
	case *goshape.Matcher:
		if t != nil {
			return t, nil
		}
	case *goshape.Spec:
		if t != nil {
			return t.Matcher(), nil
		}
	case Check:
		if t.IsValid != nil {
			return goshape.Custom(t.Descriptor, t.IsValid), nil
		}
	case Primitive:
		return goshape.TypeOf(goshape.TypeTag(t)), nil
	case goshape.TypeTag:
		return goshape.TypeOf(t), nil
	case reflect.Type:
		if t != nil {
			return goshape.InstanceOf(t.String(), t), nil
		}
	case []any:
		if len(t) == 1 {
			elem, err := of(t[0], at+"[0]")
			if err != nil {
				return nil, err
			}
			return goshape.ArrayOf(elem), nil
		}
	case Fields:
		fs := make([]goshape.Field, 0, len(t))
		for _, f := range t {
			m, err := of(f.Schema, at+"."+f.Name)
			if err != nil {
				return nil, err
			}
			fs = append(fs, goshape.F(f.Name, m))
		}
		return goshape.Keyed(fs...), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fs := make(Fields, 0, len(keys))
		for _, k := range keys {
			fs = append(fs, F(k, t[k]))
		}
		return of(fs, at)
	}
	return nil, &UnrecognizedSchemaError{Path: at, Value: x}
}
